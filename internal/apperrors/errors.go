package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrDepthExceeded indicates that a relocation or paste would push a node
// outside the [1, maxDepth] level bound of its family.
var ErrDepthExceeded = errors.New("hierarchy depth exceeded")

// ErrCyclicMove indicates that a relocation or cut-paste targets the moving
// node itself or one of its descendants.
var ErrCyclicMove = errors.New("cyclic move")

// ErrLinkedEntries indicates that a node cannot be deleted because budget
// entries still reference it or one of its descendants.
var ErrLinkedEntries = errors.New("linked entries exist")

// PartialFailureError reports a multi-step operation that failed after some
// steps already completed. Completed steps are not rolled back; the caller
// decides whether to retry the remainder or abandon it.
type PartialFailureError struct {
	Completed int
	Total     int
	Err       error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("operation failed after %d of %d steps: %v", e.Completed, e.Total, e.Err)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}
