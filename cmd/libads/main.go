// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the libads CLI. It validates ADS
// bibcodes, fetches their BibTeX entries, and manages a local library of
// saved entries.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/libads/internal/logging"
	"github.com/pdiddy/libads/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// app carries the state resolved before any subcommand runs.
type app struct {
	cfg    types.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.Discard()}

	root := &cobra.Command{
		Use:   "libads",
		Short: "Validate ADS bibcodes and fetch their BibTeX entries",
		Long: `libads checks ADS bibliographic codes against the 19-character
YYYYJJJJJVVVVMPPPPA layout and retrieves BibTeX entries from the ADS
abstract service. Fetched entries can be saved to a local SQLite library
and exported as a .bib file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			cfg, err := loadConfig(cfgFile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
				cfg.Log.Level = lvl
			}
			a.cfg = cfg
			a.logger = logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
			return nil
		},
	}

	root.PersistentFlags().String("config", "", "config file (default: ./libads.yaml or ~/.config/libads/libads.yaml)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newValidateCmd(),
		newFetchCmd(a),
		newLibraryCmd(a),
		newVersionCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
