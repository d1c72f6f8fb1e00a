// Package types defines shared domain types and error kinds used across
// the application.
package types

import (
	"errors"
	"fmt"
)

// Error kinds. Adapters wrap underlying OS and netlink failures with one of
// these sentinels so callers can classify errors with errors.Is without
// depending on adapter internals.
var (
	// ErrNotFound indicates a device or file was absent when its presence
	// was required.
	ErrNotFound = errors.New("not found")

	// ErrPermission indicates insufficient privilege for a kernel mutation.
	ErrPermission = errors.New("permission denied")

	// ErrIO indicates an underlying read/write/exec failure outside input
	// validation, including non-zero exit codes from supervised processes.
	ErrIO = errors.New("i/o failure")
)

// ValidationError reports an input that fails a stated constraint. It is
// always returned before any mutation is attempted.
type ValidationError struct {
	Field      string
	Value      string
	Constraint string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Constraint)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Constraint)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
