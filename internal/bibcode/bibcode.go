// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bibcode validates ADS bibliographic codes.
//
// A bibcode is a fixed 19-character identifier laid out as
// YYYYJJJJJVVVVMPPPPA: year, journal abbreviation, volume, qualifier,
// page, and the first author's initial. See
// http://doc.adsabs.harvard.edu/abs_doc/help_pages/data.html#bibcodes.
package bibcode

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

// Length is the fixed width of a bibcode.
const Length = 19

// ErrInvalid is returned when a string does not match the bibcode layout.
var ErrInvalid = errors.New("invalid bibcode")

// pattern compiles the bibcode grammar on first use.
//
// Position 14 accepts E, L, P, or Q-Z, a digit, or a dot.
var pattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^[0-9]{4}[A-Za-z0-9.]{5}[0-9.]{4}[ELPQ-Z0-9.][0-9.]{4}[A-Za-z]$`)
})

// Valid reports whether code is a well-formed bibcode. The match spans
// the whole string, so anything other than exactly 19 characters fails.
func Valid(code string) bool {
	if len(code) != Length {
		return false
	}
	return pattern().MatchString(code)
}

// BibCode is a bibcode that has passed Valid. The zero value holds no
// code; use New to obtain one.
type BibCode struct {
	code string
}

// New validates s and wraps it.
func New(s string) (BibCode, error) {
	if !Valid(s) {
		return BibCode{}, fmt.Errorf("%w: %q does not match YYYYJJJJJVVVVMPPPPA", ErrInvalid, s)
	}
	return BibCode{code: s}, nil
}

// MustNew is like New but panics on invalid input. It is meant for
// constants and tests.
func MustNew(s string) BibCode {
	c, err := New(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the underlying code.
func (c BibCode) String() string { return c.code }

// IsZero reports whether c was not produced by New.
func (c BibCode) IsZero() bool { return c.code == "" }

// Year returns the four-digit publication year prefix.
func (c BibCode) Year() string {
	if c.IsZero() {
		return ""
	}
	return c.code[:4]
}

// Journal returns the journal abbreviation with padding dots kept.
func (c BibCode) Journal() string {
	if c.IsZero() {
		return ""
	}
	return c.code[4:9]
}

// Initial returns the first author's initial.
func (c BibCode) Initial() string {
	if c.IsZero() {
		return ""
	}
	return c.code[18:]
}

// MarshalText implements encoding.TextMarshaler.
func (c BibCode) MarshalText() ([]byte, error) {
	return []byte(c.code), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It validates the
// input, so decoded values keep the same guarantee as New.
func (c *BibCode) UnmarshalText(text []byte) error {
	v, err := New(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
