// Package sysfs provides the attribute store adapter over kernel virtual
// filesystems (sysfs and procfs).
package sysfs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"netifctl/internal/port"
	"netifctl/internal/types"
)

// Accessor is an adapter that implements the AttributeStore port by reading
// and writing kernel attribute files directly. It performs no validation or
// unit conversion; that is the caller's responsibility.
type Accessor struct {
	root string
}

// Ensure Accessor implements the AttributeStore port
var _ port.AttributeStore = (*Accessor)(nil)

// New creates an attribute store accessor rooted at the real filesystem.
func New() *Accessor {
	return &Accessor{root: "/"}
}

// NewWithRoot creates an accessor that resolves attribute paths below an
// alternate root directory. Used by tests.
func NewWithRoot(root string) *Accessor {
	return &Accessor{root: root}
}

// Read returns the attribute value with the trailing newline stripped.
func (a *Accessor) Read(path string) (string, error) {
	data, err := os.ReadFile(a.resolve(path))
	if err != nil {
		return "", mapError("read", path, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// Write stores the raw attribute value.
func (a *Accessor) Write(path, value string) error {
	if err := os.WriteFile(a.resolve(path), []byte(value), 0644); err != nil {
		return mapError("write", path, err)
	}
	return nil
}

func (a *Accessor) resolve(path string) string {
	if a.root == "/" {
		return path
	}
	return filepath.Join(a.root, path)
}

// mapError classifies an OS error into one of the shared error kinds so
// callers can distinguish a missing attribute from a privilege problem.
func mapError(op, path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%s %s: %w", op, path, types.ErrNotFound)
	case os.IsPermission(err):
		return fmt.Errorf("%s %s: %w", op, path, types.ErrPermission)
	default:
		return fmt.Errorf("%s %s: %w: %v", op, path, types.ErrIO, err)
	}
}
