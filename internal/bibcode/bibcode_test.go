// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibcode

import (
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"journal article", "2015MNRAS.452.2597X", true},
		{"arXiv preprint", "2017arXiv170503917B", true},
		{"arXiv sample", "2017arXiv170503937B", true},
		{"letter qualifier", "1998ApJ...500L.143W", true},
		{"lowercase initial", "2015MNRAS.452.2597x", true},

		{"empty", "", false},
		{"18 chars", "2015MNRAS.452.2597", false},
		{"20 chars", "2015MNRAS.452.2597XY", false},
		{"trailing newline", "2015MNRAS.452.2597X\n", false},
		{"leading space", " 2015MNRAS.452.2597", false},
		{"letter in year", "20a5MNRAS.452.2597X", false},
		{"dash in journal", "2015MN-AS.452.2597X", false},
		{"ampersand in journal", "2015A&A...575A..60B", false},
		{"letter in volume", "2015MNRAS.4a2.2597X", false},
		{"letter in page", "2015MNRAS.452.25a7X", false},
		{"digit initial", "2015MNRAS.452.25970", false},
		{"dot initial", "2015MNRAS.452.2597.", false},
		{"non-ASCII initial", "2015MNRAS.452.2597É", false},
		{"non-ASCII journal", "2015MNRÄS.452.2597", false},
		{"fullwidth digit year", "２015MNRAS.452.2597X", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.code), "Valid(%q)", tt.code)
		})
	}
}

// The qualifier at position 14 accepts E, L, P, Q through Z, digits, and
// a dot. Everything else, lowercase included, is rejected.
func TestValidQualifier(t *testing.T) {
	const prefix, suffix = "2015MNRAS.452", "2597X"
	accepted := "ELPQRSTUVWXYZ0123456789."
	for _, q := range accepted {
		code := prefix + string(q) + suffix
		assert.True(t, Valid(code), "qualifier %q should be accepted", q)
	}

	rejected := "ABCDFGHIJKMNO" + "elpqz" + "-_&+ "
	for _, q := range rejected {
		code := prefix + string(q) + suffix
		assert.False(t, Valid(code), "qualifier %q should be rejected", q)
	}
}

func TestValidGeneratedCodes(t *testing.T) {
	const (
		digits  = "0123456789"
		letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	)
	classes := []struct {
		chars string
		n     int
	}{
		{digits, 4},
		{letters + digits + ".", 5},
		{digits + ".", 4},
		{"ELPQRSTUVWXYZ" + digits + ".", 1},
		{digits + ".", 4},
		{letters, 1},
	}

	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		var b strings.Builder
		for _, c := range classes {
			for j := 0; j < c.n; j++ {
				b.WriteByte(c.chars[r.IntN(len(c.chars))])
			}
		}
		code := b.String()
		require.Len(t, code, Length)
		assert.True(t, Valid(code), "generated %q", code)

		// Dropping or adding a character must always fail.
		assert.False(t, Valid(code[:Length-1]), "truncated %q", code)
		assert.False(t, Valid(code+"X"), "extended %q", code)
	}
}

func TestValidConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if !Valid("2015MNRAS.452.2597X") {
					t.Error("expected valid")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNew(t *testing.T) {
	for _, s := range []string{"2015MNRAS.452.2597X", "2017arXiv170503937B"} {
		c, err := New(s)
		require.NoError(t, err)
		assert.Equal(t, s, c.String())
		assert.False(t, c.IsZero())
	}
}

func TestNewInvalid(t *testing.T) {
	for _, s := range []string{"", "2015MNRAS.452.2597", "not a bibcode at all"} {
		c, err := New(s)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalid)
		assert.True(t, c.IsZero())
	}
}

func TestNewAgreesWithValid(t *testing.T) {
	inputs := []string{
		"2015MNRAS.452.2597X", "2015MNRAS.452.2597", "1998ApJ...500L.143W",
		"2015MNRAS.452A2597X", "", "2017arXiv170503937B",
	}
	for _, s := range inputs {
		_, err := New(s)
		assert.Equal(t, Valid(s), err == nil, "New(%q)", s)
	}
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { MustNew("bad") })
	assert.NotPanics(t, func() { MustNew("2015MNRAS.452.2597X") })
}

func TestParts(t *testing.T) {
	c := MustNew("2015MNRAS.452.2597X")
	assert.Equal(t, "2015", c.Year())
	assert.Equal(t, "MNRAS", c.Journal())
	assert.Equal(t, "X", c.Initial())

	var zero BibCode
	assert.Equal(t, "", zero.Year())
	assert.Equal(t, "", zero.Journal())
	assert.Equal(t, "", zero.Initial())
}

func TestYAMLDecodeValidates(t *testing.T) {
	var doc struct {
		Code BibCode `yaml:"code"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("code: 2015MNRAS.452.2597X\n"), &doc))
	assert.Equal(t, "2015MNRAS.452.2597X", doc.Code.String())

	err := yaml.Unmarshal([]byte("code: 2015MNRAS\n"), &doc)
	assert.ErrorIs(t, err, ErrInvalid)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "code: 2015MNRAS.452.2597X\n", string(out))
}
