package ndarray

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of them,
// so callers match with errors.Is.
var (
	ErrDimensionMismatch  = errors.New("dimension mismatch")
	ErrShapeMismatch      = errors.New("shape mismatch")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrInvalidPermutation = errors.New("invalid permutation")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrInvalidShape       = errors.New("invalid shape")
	ErrEmptyArray         = errors.New("empty array")
)

// Error describes a rejected operation.
type Error struct {
	Op      string // Operation that failed (e.g., "transpose", "concatenate")
	Kind    error  // One of the Err* kinds above
	Details string // Conflicting shapes, axis or index
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Details)
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

func errorf(op string, kind error, format string, args ...any) error {
	return &Error{Op: op, Kind: kind, Details: fmt.Sprintf(format, args...)}
}
