// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/libads/internal/ads"
	"github.com/pdiddy/libads/internal/bibcode"
	"github.com/pdiddy/libads/internal/httputil"
	"github.com/pdiddy/libads/internal/library"
)

// errNoEntry is returned when ADS answers without a BibTeX entry.
var errNoEntry = errors.New("no entry found")

func newFetchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <bibcode>",
		Short: "Fetch the BibTeX entry for a bibcode from ADS",
		Long: `Fetch validates the bibcode, queries the ADS abstract service, and
prints the BibTeX entry to stdout. Use --save to also store the entry in
the local library.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFetch(cmd, args[0])
		},
	}
	cmd.Flags().Bool("save", false, "store the fetched entry in the library")
	cmd.Flags().Bool("url", false, "print the request URL and exit without fetching")
	return cmd
}

func (a *app) adsClient() *ads.Client {
	return ads.NewClient(
		ads.WithHTTPClient(httputil.NewClient(a.cfg.ADS.HTTPConfig)),
		ads.WithBaseURL(a.cfg.ADS.BaseURL),
		ads.WithUserAgent(a.cfg.ADS.UserAgent),
		ads.WithLogger(a.logger),
	)
}

func (a *app) runFetch(cmd *cobra.Command, arg string) error {
	code, err := bibcode.New(arg)
	if err != nil {
		return err
	}

	client := a.adsClient()
	out := cmd.OutOrStdout()

	if printURL, _ := cmd.Flags().GetBool("url"); printURL {
		fmt.Fprintln(out, client.RequestURL(code))
		return nil
	}

	entry, found, err := client.FetchBibtex(cmd.Context(), code)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w for %s", errNoEntry, code)
	}
	io.WriteString(out, entry)

	if save, _ := cmd.Flags().GetBool("save"); save {
		lib, err := library.Open(a.cfg.Library)
		if err != nil {
			return err
		}
		defer lib.Close()
		if err := lib.Save(cmd.Context(), code, entry); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "saved: %s (%s)\n", code, lib.Path())
	}
	return nil
}
