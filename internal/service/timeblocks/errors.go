package timeblocks

import (
	"fmt"

	"planner/backend/internal/domain"
	"planner/backend/internal/store"
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// ConflictError rejects a write whose interval overlaps existing blocks of the
// same owner. Conflicts lists every overlapping block, ordered by start.
type ConflictError struct {
	Conflicts []domain.TimeBlock
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("time block overlaps %d existing block(s)", len(e.Conflicts))
}

func (e *ConflictError) Unwrap() error {
	return store.ErrConflict
}
