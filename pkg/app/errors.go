package app

import (
	"errors"
	"fmt"
)

// ErrMountTarget is returned by Mount when the target resolves to nothing.
var ErrMountTarget = errors.New("app: mount target not found")

// MountError describes a failed Mount.
type MountError struct {
	Target any   // the target passed to Mount
	Err    error // underlying error
}

// Error returns the error message with the target.
func (e *MountError) Error() string {
	if s, ok := e.Target.(string); ok {
		return fmt.Sprintf("app: mount %q: %v", s, e.Err)
	}
	return fmt.Sprintf("app: mount %T: %v", e.Target, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *MountError) Unwrap() error {
	return e.Err
}
