package errs

import (
	"errors"
	"fmt"
)

var ErrConflictRetry = errors.New("concurrent modification, retry")

// ConflictRetryError reports that a concurrent writer modified the aggregate first.
// The caller must re-read the aggregate and reapply its change.
type ConflictRetryError struct {
	Aggregate string
	ID        any
	Cause     error
}

func NewConflictRetryError(aggregate string, id any) *ConflictRetryError {
	return &ConflictRetryError{
		Aggregate: aggregate,
		ID:        id,
	}
}

func NewConflictRetryErrorWithCause(aggregate string, id any, cause error) *ConflictRetryError {
	return &ConflictRetryError{
		Aggregate: aggregate,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ConflictRetryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %v (cause: %v)", ErrConflictRetry, e.Aggregate, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrConflictRetry, e.Aggregate, e.ID)
}

func (e *ConflictRetryError) Unwrap() error {
	return ErrConflictRetry
}
