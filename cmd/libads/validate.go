// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/libads/internal/bibcode"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <bibcode>...",
		Short: "Check bibcodes against the ADS layout",
		Long: `Validate reports, for each argument, whether it is a well-formed
19-character ADS bibcode. It exits non-zero when any argument is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	invalid := 0
	for _, code := range args {
		status := "valid"
		if !bibcode.Valid(code) {
			status = "invalid"
			invalid++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", code, status)
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d bibcode(s) invalid", invalid, len(args))
	}
	return nil
}
