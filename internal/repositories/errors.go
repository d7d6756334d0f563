package repositories

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that zero rows matched an identifier. Controllers
// treat it as "the row vanished", not as a store failure.
var ErrNotFound = errors.New("record not found")

// TransportError wraps any network or store failure. It carries the
// operation name so controllers can log something useful before surfacing
// a transient message. No operation is retried internally; retry policy
// belongs to the caller.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err classifies as a missing row.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func transport(op string, err error) error {
	return &TransportError{Op: op, Err: err}
}
