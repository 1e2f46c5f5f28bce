package shift

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrEmptyAlphabet      = errors.New("alphabet is empty")
	ErrDuplicateCharacter = errors.New("duplicate character in alphabet")
)

// Alphabet is an ordered set of distinct characters with a reverse lookup table.
type Alphabet struct {
	chars []rune
	index map[rune]int
}

func NewAlphabet(s string) (*Alphabet, error) {
	if s == "" {
		return nil, ErrEmptyAlphabet
	}

	a := &Alphabet{
		chars: make([]rune, 0, utf8.RuneCountInString(s)),
		index: make(map[rune]int, len(s)),
	}
	for _, r := range s {
		if _, ok := a.index[r]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCharacter, r)
		}
		a.index[r] = len(a.chars)
		a.chars = append(a.chars, r)
	}
	return a, nil
}

func (a *Alphabet) Len() int {
	return len(a.chars)
}

// Index returns the position of r, or false if r is not in the alphabet.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

func (a *Alphabet) At(i int) rune {
	return a.chars[i]
}

func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

func (a *Alphabet) String() string {
	return string(a.chars)
}
