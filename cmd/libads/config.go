// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pdiddy/libads/internal/ads"
	"github.com/pdiddy/libads/internal/httputil"
	"github.com/pdiddy/libads/pkg/types"
)

const envPrefix = "LIBADS"

// loadConfig merges defaults, an optional config file, a .env file, and
// LIBADS_* environment variables, then validates the result.
func loadConfig(cfgFile string, w io.Writer) (types.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return types.Config{}, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("ads.base_url", ads.DefaultBaseURL)
	v.SetDefault("ads.timeout", httputil.DefaultTimeout)
	v.SetDefault("ads.user_agent", "libads/"+version)
	v.SetDefault("library.dir", "library")
	v.SetDefault("library.file", "libads.db")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("libads")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "libads"))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("reading config: %w", err)
		}
	} else {
		fmt.Fprintln(w, "Using config file:", v.ConfigFileUsed())
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
