// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ads retrieves BibTeX entries from the legacy ADS abstract service.
package ads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/libads/internal/bibcode"
	"github.com/pdiddy/libads/internal/httputil"
	"github.com/pdiddy/libads/pkg/types"
)

// DefaultBaseURL is the origin of the legacy ADS service.
const DefaultBaseURL = "http://adsabs.harvard.edu"

// queryPath is appended to the base URL. The trailing slash is part of
// the endpoint.
const queryPath = "/cgi-bin/nph-bib_query/"

// entryDelimiter marks the start of the first BibTeX entry in a response.
const entryDelimiter = "\n@"

var (
	// ErrNetwork is returned when the request cannot be completed or the
	// server answers with a non-2xx status.
	ErrNetwork = errors.New("ads: network error")

	// ErrDecode is returned when the response body cannot be read as text.
	ErrDecode = errors.New("ads: decode error")
)

// Client fetches BibTeX entries. It holds no per-request state and is safe
// for concurrent use.
type Client struct {
	http      httputil.Doer
	logger    *slog.Logger
	baseURL   string
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the sink for diagnostic events. A nil logger keeps the
// default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHTTPClient sets the transport used for requests.
func WithHTTPClient(d httputil.Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.http = d
		}
	}
}

// WithBaseURL overrides DefaultBaseURL. Tests point this at an
// httptest server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient returns a Client with the given options applied.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:    httputil.NewClient(types.HTTPConfig{}),
		logger:  slog.New(slog.DiscardHandler),
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestURL returns the query URL for code.
func (c *Client) RequestURL(code bibcode.BibCode) string {
	return c.baseURL + queryPath + "?data_type=BIBTEX&bibcode=" + url.QueryEscape(code.String())
}

// FetchBibtex retrieves the BibTeX entry for code. When the response
// carries no entry, found is false and err is nil. Errors wrap
// ErrNetwork or ErrDecode.
func (c *Client) FetchBibtex(ctx context.Context, code bibcode.BibCode) (entry string, found bool, err error) {
	if code.IsZero() {
		return "", false, fmt.Errorf("fetching entry: %w", bibcode.ErrInvalid)
	}
	u := c.RequestURL(code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", false, fmt.Errorf("%w: creating request: %v", ErrNetwork, err)
	}
	httputil.SetUserAgent(req, c.userAgent)

	c.logger.DebugContext(ctx, "querying ADS", "url", u)
	resp, err := c.http.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("%w: GET %s: %w", ErrNetwork, u, err)
	}
	defer resp.Body.Close()
	c.logger.DebugContext(ctx, "ADS request completed", "status", resp.Status)

	if !httputil.IsSuccess(resp.StatusCode) {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", false, fmt.Errorf("%w: ADS returned HTTP %d for %s", ErrNetwork, resp.StatusCode, code)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, fmt.Errorf("%w: reading response: %w", ErrDecode, err)
	}
	if !utf8.Valid(body) {
		return "", false, fmt.Errorf("%w: response for %s is not valid UTF-8", ErrDecode, code)
	}

	entry, found = ExtractEntry(string(body))
	return entry, found, nil
}

// ExtractEntry returns the text from the first "\n@" delimiter to the end
// of body, with the leading @ kept. It reports false when body holds no
// delimiter.
func ExtractEntry(body string) (string, bool) {
	i := strings.Index(body, entryDelimiter)
	if i < 0 {
		return "", false
	}
	return body[i+1:], true
}
