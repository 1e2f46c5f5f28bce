// Package shift implements a substitution cipher that rotates characters within a fixed alphabet.
package shift

import (
	"errors"
	"fmt"
	"shifter/internal/rot"
	"strings"
	"unicode/utf8"
)

var ErrSeparator = errors.New("invalid separator")

type Config struct {
	Alphabet  string `yaml:"alphabet"`
	Separator string `yaml:"separator"`
	Offset    int    `yaml:"offset"`
}

// Default is the lowercase latin alphabet split on spaces, shifted by one.
var Default = Config{
	Alphabet:  "abcdefghijklmnopqrstuvwxyz",
	Separator: " ",
	Offset:    1,
}

// Cipher is immutable once built and safe for concurrent use.
type Cipher struct {
	alphabet  *Alphabet
	separator string
	offset    int
}

func New(config Config) (*Cipher, error) {
	a, err := NewAlphabet(config.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("shift: %w", err)
	}

	if utf8.RuneCountInString(config.Separator) > 1 {
		return nil, fmt.Errorf("shift: %w: %q is longer than one character", ErrSeparator, config.Separator)
	}
	if strings.ContainsFunc(config.Separator, a.Contains) {
		return nil, fmt.Errorf("shift: %w: %q is part of the alphabet", ErrSeparator, config.Separator)
	}

	return &Cipher{
		alphabet:  a,
		separator: config.Separator,
		offset:    rot.Norm(config.Offset, a.Len()),
	}, nil
}

func Must(config Config) *Cipher {
	c, err := New(config)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultCipher = Must(Default)

// Convert shifts s with the Default cipher.
func Convert(s string) string {
	return defaultCipher.Convert(s)
}

func (c *Cipher) Alphabet() *Alphabet {
	return c.alphabet
}

func (c *Cipher) Separator() string {
	return c.separator
}

// Offset returns the normalized offset, always in [0, alphabet length).
func (c *Cipher) Offset() int {
	return c.offset
}

// WithOffset returns a copy of c rotating by n instead.
func (c *Cipher) WithOffset(n int) *Cipher {
	return &Cipher{
		alphabet:  c.alphabet,
		separator: c.separator,
		offset:    rot.Norm(n, c.alphabet.Len()),
	}
}

// Inverse returns the cipher that undoes c.
func (c *Cipher) Inverse() *Cipher {
	return c.WithOffset(rot.Inverse(c.offset, c.alphabet.Len()))
}

func (c *Cipher) shiftRune(r rune) rune {
	i, ok := c.alphabet.Index(r)
	if !ok {
		return r
	}
	return c.alphabet.At(rot.Index(i, c.offset, c.alphabet.Len()))
}

// Convert replaces every alphabet character of s with the one offset positions
// later. The separator and characters outside the alphabet are kept as is.
func (c *Cipher) Convert(s string) string {
	if s == "" {
		return ""
	}

	segments := strings.Split(s, c.separator)
	for i, seg := range segments {
		segments[i] = c.convertSegment(seg)
	}
	return strings.Join(segments, c.separator)
}

// convertSegment copies bytes that are not valid UTF-8 through unchanged.
func (c *Cipher) convertSegment(seg string) string {
	b := &strings.Builder{}
	b.Grow(len(seg))

	for i := 0; i < len(seg); {
		r, width := utf8.DecodeRuneInString(seg[i:])
		if r == utf8.RuneError && width == 1 {
			b.WriteString(seg[i : i+width])
		} else {
			b.WriteRune(c.shiftRune(r))
		}
		i += width
	}
	return b.String()
}
