package services

import (
	"errors"
	"fmt"
)

// ErrNotFoundOrForbidden covers both a missing resource and one the caller does not own.
// Callers must not tell the two apart in responses.
var ErrNotFoundOrForbidden = errors.New("resource not found or not owned by caller")

// StoreError wraps a persistence failure that happened during an otherwise permitted call.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// storeErr leaves ownership failures alone so they surface as-is out of a transaction.
func storeErr(op string, err error) error {
	if err == nil || errors.Is(err, ErrNotFoundOrForbidden) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
