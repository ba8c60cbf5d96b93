// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/libads/internal/bibcode"
	"github.com/pdiddy/libads/internal/library"
)

func newLibraryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Manage saved BibTeX entries",
		Long: `Library manages the local SQLite archive of entries saved with
"fetch --save". Use subcommands to list, show, export, or remove entries.`,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved bibcodes",
		Args:  cobra.NoArgs,
		RunE:  a.runLibraryList,
	}

	showCmd := &cobra.Command{
		Use:   "show <bibcode>",
		Short: "Print a saved entry",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runLibraryShow,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export all saved entries as BibTeX or YAML",
		Args:  cobra.NoArgs,
		RunE:  a.runLibraryExport,
	}
	exportCmd.Flags().String("format", "bib", "output format: bib or yaml")
	exportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")

	removeCmd := &cobra.Command{
		Use:   "remove <bibcode>",
		Short: "Remove a saved entry",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runLibraryRemove,
	}

	cmd.AddCommand(listCmd, showCmd, exportCmd, removeCmd)
	return cmd
}

func (a *app) openLibrary() (*library.Library, error) {
	return library.Open(a.cfg.Library)
}

func (a *app) runLibraryList(cmd *cobra.Command, args []string) error {
	lib, err := a.openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	entries, err := lib.List(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, e := range entries {
		fmt.Fprintf(out, "%s\t%s\n", e.Bibcode, e.FetchedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%d entries\n", len(entries))
	return nil
}

func (a *app) runLibraryShow(cmd *cobra.Command, args []string) error {
	code, err := bibcode.New(args[0])
	if err != nil {
		return err
	}
	lib, err := a.openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	e, err := lib.Get(cmd.Context(), code)
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), e.Text)
	return err
}

func (a *app) runLibraryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "bib" && format != "yaml" {
		return fmt.Errorf("unsupported export format %q (want bib or yaml)", format)
	}

	lib, err := a.openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	var w io.Writer = cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	if format == "yaml" {
		return lib.ExportYAML(cmd.Context(), w)
	}
	return lib.ExportBib(cmd.Context(), w)
}

func (a *app) runLibraryRemove(cmd *cobra.Command, args []string) error {
	code, err := bibcode.New(args[0])
	if err != nil {
		return err
	}
	lib, err := a.openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	if err := lib.Remove(cmd.Context(), code); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "removed: %s\n", code)
	return nil
}
