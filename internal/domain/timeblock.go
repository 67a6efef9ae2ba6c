package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

type TimeBlock struct {
	bun.BaseModel `bun:"table:time_blocks"`

	ID          uuid.UUID  `bun:"id,pk,type:uuid"`
	OwnerID     string     `bun:"owner_id,notnull"`
	Title       string     `bun:"title,notnull"`
	Description string     `bun:"description"`
	StartTime   time.Time  `bun:"start_time,notnull"`
	EndTime     time.Time  `bun:"end_time,notnull"`
	Recurrence  string     `bun:"recurrence"`
	Color       string     `bun:"color"`
	TaskID      *uuid.UUID `bun:"task_id,type:uuid"`
	TaskTitle   string     `bun:"task_title"`
	Version     int64      `bun:"version,notnull"`
	SyncedAt    *time.Time `bun:"synced_at"`
	CreatedAt   time.Time  `bun:"created_at,notnull"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull"`
}

func (b *TimeBlock) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if b.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			b.ID = id
		}
		if b.Version == 0 {
			b.Version = 1
		}
		if b.CreatedAt.IsZero() {
			b.CreatedAt = now
		}
		if b.UpdatedAt.IsZero() {
			b.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		b.UpdatedAt = now
	}
	return nil
}

// Overlaps reports whether the block's [start,end) interval intersects [start,end).
func (b TimeBlock) Overlaps(start, end time.Time) bool {
	return Overlaps(b.StartTime, b.EndTime, start, end)
}

func (b TimeBlock) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}

// Overlaps implements the half-open interval rule: touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
