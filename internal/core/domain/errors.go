package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced keyword does not exist.
	ErrNotFound = errors.New("keyword not found")
	// ErrTerminalStatus is returned when a transition is requested for a
	// keyword that is already removed.
	ErrTerminalStatus = errors.New("keyword is removed and cannot change status")
	// ErrStatusUnchanged is returned when a keyword already has the
	// requested status. Nothing is written.
	ErrStatusUnchanged = errors.New("keyword already has the requested status")
	// ErrUpstreamUnavailable is returned when the storage connection could
	// not be established.
	ErrUpstreamUnavailable = errors.New("storage unavailable")
)

// ValidationError reports malformed or missing input. Err usually holds
// ozzo-validation field errors.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// PersistenceError reports a storage operation that failed or affected no
// rows.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return e.Op + ": no rows affected"
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
