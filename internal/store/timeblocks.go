package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"planner/backend/internal/domain"
)

// TimeBlockRepository is the durable home of time blocks. Every method is
// owner-scoped: a block that belongs to another owner is reported as ErrNotFound.
type TimeBlockRepository interface {
	// FindOverlapping returns the owner's blocks intersecting [windowStart, windowEnd),
	// ordered by start time.
	FindOverlapping(ctx context.Context, ownerID string, windowStart, windowEnd time.Time) ([]domain.TimeBlock, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.TimeBlock, error)
	Get(ctx context.Context, ownerID string, id uuid.UUID) (domain.TimeBlock, error)
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error

	// InOwnerTransaction runs fn while holding the owner's write lock. Writes made
	// through tx are committed only if fn returns nil.
	InOwnerTransaction(ctx context.Context, ownerID string, fn func(ctx context.Context, tx TimeBlockTx) error) error
}
