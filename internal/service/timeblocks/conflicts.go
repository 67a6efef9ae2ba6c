package timeblocks

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"planner/backend/internal/domain"
)

// overlapFinder is satisfied by both the repository and an open transaction.
type overlapFinder interface {
	FindOverlapping(ctx context.Context, ownerID string, windowStart, windowEnd time.Time) ([]domain.TimeBlock, error)
}

func findConflicts(ctx context.Context, f overlapFinder, ownerID string, start, end time.Time, exclude uuid.UUID) ([]domain.TimeBlock, error) {
	candidates, err := f.FindOverlapping(ctx, ownerID, start, end)
	if err != nil {
		return nil, err
	}

	conflicts := make([]domain.TimeBlock, 0, len(candidates))
	for _, b := range candidates {
		if exclude != uuid.Nil && b.ID == exclude {
			continue
		}
		if !b.Overlaps(start, end) {
			continue
		}
		conflicts = append(conflicts, b)
	}
	slices.SortStableFunc(conflicts, func(a, b domain.TimeBlock) int {
		return a.StartTime.Compare(b.StartTime)
	})
	return conflicts, nil
}
