// Package rotate recovers the rotation offset between a plain text and its shifted form.
package rotate

import (
	"errors"
	"fmt"
	"shifter/internal/rot"
	"shifter/internal/shift"
)

var (
	ErrLength       = errors.New("plain and cipher text must have the same number of characters")
	ErrMismatch     = errors.New("cipher text is not a rotation of the plain text")
	ErrUndetermined = errors.New("no alphabet characters to compare")
)

// Infer returns the offset, in [0, a.Len()), that turns plain into cipher.
func Infer(a *shift.Alphabet, plain, cipher string) (int, error) {
	pr := []rune(plain)
	cr := []rune(cipher)
	if len(pr) != len(cr) {
		return 0, ErrLength
	}

	offset := -1
	for i := range pr {
		pi, pok := a.Index(pr[i])
		ci, cok := a.Index(cr[i])

		if !pok {
			if pr[i] != cr[i] {
				return 0, fmt.Errorf("%w: character %d %q became %q", ErrMismatch, i, pr[i], cr[i])
			}
			continue
		}
		if !cok {
			return 0, fmt.Errorf("%w: character %d %q left the alphabet", ErrMismatch, i, pr[i])
		}

		n := rot.Norm(ci-pi, a.Len())
		if offset == -1 {
			offset = n
		} else if offset != n {
			return 0, fmt.Errorf("%w: character %d is shifted by %d, not %d", ErrMismatch, i, n, offset)
		}
	}

	if offset == -1 {
		return 0, ErrUndetermined
	}
	return offset, nil
}
