package singleton

import (
	"errors"
	"fmt"
)

// Sentinel errors for construction control.
var (
	// ErrIllegalConstruction indicates a direct construction attempt on a
	// type that must be reached through its singleton accessor.
	ErrIllegalConstruction = errors.New("illegal construction: use the singleton accessor")

	// ErrNilConstructor indicates a holder was created without a constructor.
	ErrNilConstructor = errors.New("constructor cannot be nil")
)

// InitializationError wraps a failure from the underlying constructor.
// The holder stays uninitialized when this is returned, so a subsequent
// accessor call may retry construction.
type InitializationError struct {
	// Op names the holder or accessor that was initializing.
	Op string

	// Err is the constructor's error.
	Err error
}

// Error implements the error interface.
func (e *InitializationError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("initialize %s: %s", e.Op, e.Err)
	}
	return fmt.Sprintf("initialize: %s", e.Err)
}

// Unwrap returns the constructor's error.
func (e *InitializationError) Unwrap() error {
	return e.Err
}
