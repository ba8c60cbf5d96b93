// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration shared by the libads CLI and packages.
package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero disables the deadline.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// ADSConfig holds settings for the ADS fetch client.
type ADSConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the origin of the legacy ADS service
	// (default "http://adsabs.harvard.edu").
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url" validate:"required,url"`
}

// LibraryConfig holds settings for the local entry archive.
type LibraryConfig struct {
	// Dir is the directory containing the SQLite database.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir" validate:"required"`

	// File is the database filename inside Dir (default "libads.db").
	File string `json:"file" yaml:"file" mapstructure:"file" validate:"required"`
}

// LogConfig selects the level and output format of diagnostic logs.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format string `json:"format" yaml:"format" mapstructure:"format" validate:"omitempty,oneof=text json"`
}

// Config groups all settings loaded by the CLI.
type Config struct {
	ADS     ADSConfig     `json:"ads" yaml:"ads" mapstructure:"ads"`
	Library LibraryConfig `json:"library" yaml:"library" mapstructure:"library"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}
