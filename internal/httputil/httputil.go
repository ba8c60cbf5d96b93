// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP client plumbing shared by libads.
package httputil

import (
	"net/http"
	"time"

	"github.com/pdiddy/libads/pkg/types"
)

const (
	// DefaultUserAgent is sent when no User-Agent is configured.
	DefaultUserAgent = "libads/0.1"

	// DefaultTimeout is the request timeout used when none is configured.
	DefaultTimeout = 30 * time.Second
)

// Doer is the subset of *http.Client used to send requests. Tests and
// callers needing custom transports supply their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient returns an *http.Client configured from cfg. A zero Timeout
// leaves the client without a deadline.
func NewClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout,
	}
}

// SetUserAgent sets the User-Agent header on req, falling back to
// DefaultUserAgent when ua is empty.
func SetUserAgent(req *http.Request, ua string) {
	if req == nil {
		return
	}
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
}

// IsSuccess reports whether status is in the 2xx range.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}
