package recordstore

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrVersionMismatch is wrapped by OpenError when the file carries a
	// schema version this build cannot accept.
	ErrVersionMismatch = errors.New("schema version mismatch")

	// ErrMissingID is wrapped by WriteError when a memo without an ID is added.
	ErrMissingID = errors.New("memo has no id")
)

// OpenError reports that the store file could not be opened. Once returned,
// the store stays unusable until it is opened again.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open store %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// WriteError reports a mutation whose transaction did not commit. The store
// is left as it was before the call.
type WriteError struct {
	Op  string
	ID  uuid.UUID
	Err error
}

func (e *WriteError) Error() string {
	if e.ID == uuid.Nil {
		return fmt.Sprintf("%s memo: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s memo %s: %v", e.Op, e.ID, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
