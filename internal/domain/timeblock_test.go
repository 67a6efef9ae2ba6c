package domain

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func TestOverlaps_HalfOpen(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2023, 6, 15, h, m, 0, 0, time.UTC)
	}

	cases := []struct {
		name         string
		aStart, aEnd time.Time
		bStart, bEnd time.Time
		want         bool
	}{
		{"touching end to start", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"touching start to end", at(10, 0), at(11, 0), at(9, 0), at(10, 0), false},
		{"partial overlap", at(9, 0), at(10, 0), at(9, 30), at(10, 30), true},
		{"contained", at(9, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"identical", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
		{"disjoint", at(9, 0), at(10, 0), at(11, 0), at(12, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Fatalf("Overlaps = %v, want %v", got, tc.want)
			}
			if got := Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd); got != tc.want {
				t.Fatalf("Overlaps (swapped) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTimeBlockBeforeAppendModel_InsertAssignsDefaults(t *testing.T) {
	b := TimeBlock{}
	if err := b.BeforeAppendModel(context.Background(), &bun.InsertQuery{}); err != nil {
		t.Fatalf("BeforeAppendModel error: %v", err)
	}
	if b.ID == uuid.Nil {
		t.Fatalf("expected id to be assigned")
	}
	if b.Version != 1 {
		t.Fatalf("version = %d, want 1", b.Version)
	}
	if b.CreatedAt.IsZero() || b.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestTimeBlockBeforeAppendModel_InsertKeepsExistingID(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := TimeBlock{ID: id, Version: 4}
	if err := b.BeforeAppendModel(context.Background(), &bun.InsertQuery{}); err != nil {
		t.Fatalf("BeforeAppendModel error: %v", err)
	}
	if b.ID != id {
		t.Fatalf("id = %s, want %s", b.ID, id)
	}
	if b.Version != 4 {
		t.Fatalf("version = %d, want 4", b.Version)
	}
}
