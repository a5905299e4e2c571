package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input, including
	// entities that lack a capability an operation requires.
	ErrInvalidArgument = errors.New("invalid argument")
)

// PersistenceError is the single failure category the lifecycle manager
// recognizes and converts into an error-hook invocation. Everything else
// propagates to the caller untouched.
type PersistenceError struct {
	Op      string
	Message string
	Err     error
}

func (e *PersistenceError) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistence builds a PersistenceError. msg is the human-readable text
// handed to error hooks; err is the underlying cause and may be nil.
func NewPersistence(op, msg string, err error) error {
	return &PersistenceError{Op: op, Message: msg, Err: err}
}

// AsPersistence reports whether err belongs to the recognized persistence
// failure category, unwrapping as needed.
func AsPersistence(err error) (*PersistenceError, bool) {
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
