package content

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation references an unknown backup or city.
	ErrNotFound = errors.New("content: not found")

	// ErrInvalidArgument is returned when a required field is empty or out of range.
	// The operation is refused before any state changes.
	ErrInvalidArgument = errors.New("content: invalid argument")

	// ErrNoSavedState is returned by Adapter.Load when the slot has never been written.
	ErrNoSavedState = errors.New("content: no saved state")
)

// PersistenceError reports that the durable slot could not be read or written.
// When returned from a mutation the in-memory change has still been applied.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("content: persist %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// SerializationError reports a malformed persisted blob. The store recovers by
// keeping its built-in defaults.
type SerializationError struct {
	Key string
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("content: malformed data under %q: %v", e.Key, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}

func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...)
}
