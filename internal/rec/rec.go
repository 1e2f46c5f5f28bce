// Package rec turns panics into errors at command and request boundaries.
package rec

import (
	"fmt"
	"runtime/debug"
)

// asError wraps a recovered value with the stack, or returns nil.
func asError(r any) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(error); ok {
		return fmt.Errorf("recovered panic: %w\n%s", err, debug.Stack())
	}
	return fmt.Errorf("recovered panic: %v\n%s", r, debug.Stack())
}

// Error recovers a panic into *err. Must be deferred directly.
func Error(err *error) {
	if r := asError(recover()); r != nil {
		*err = r
	}
}

// Wrap recovers a panic, or takes the existing *err, and wraps it with format
// and a. The error is passed as the last argument to format.
func Wrap(err *error, format string, a ...any) {
	if r := asError(recover()); r != nil {
		*err = fmt.Errorf(format, append(a, r)...)
	} else if *err != nil {
		*err = fmt.Errorf(format, append(a, *err)...)
	}
}
