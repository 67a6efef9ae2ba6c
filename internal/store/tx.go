package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"planner/backend/internal/domain"
)

type TimeBlockTx interface {
	FindOverlapping(ctx context.Context, ownerID string, windowStart, windowEnd time.Time) ([]domain.TimeBlock, error)
	Get(ctx context.Context, ownerID string, id uuid.UUID) (domain.TimeBlock, error)
	Insert(ctx context.Context, block domain.TimeBlock) (domain.TimeBlock, error)
	// Update replaces the mutable fields of an existing block. The caller sets
	// the new Version; the row must still carry Version-1.
	Update(ctx context.Context, block domain.TimeBlock) (domain.TimeBlock, error)
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
}
