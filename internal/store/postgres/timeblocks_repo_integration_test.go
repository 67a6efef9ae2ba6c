package postgres

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"planner/backend/internal/domain"
	"planner/backend/internal/store"
)

func TestPostgresIntegration_TimeBlockOverlapUpdateDelete(t *testing.T) {
	databaseURL := strings.TrimSpace(os.Getenv("PLANNER_TEST_DATABASE_URL"))
	if databaseURL == "" {
		t.Skip("PLANNER_TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := Open(ctx, databaseURL, Options{Pool: PoolConfig{MaxOpenConns: 2}, Migrate: true})
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close(db)
	})

	ownerID := "it_" + randomHex(t, 8)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, _ = db.NewDelete().Model((*domain.TimeBlock)(nil)).Where("owner_id = ?", ownerID).Exec(ctx)
	})

	repo := NewTimeBlockRepo(db)
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	var first domain.TimeBlock
	err = repo.InOwnerTransaction(ctx, ownerID, func(ctx context.Context, tx store.TimeBlockTx) error {
		b, err := tx.Insert(ctx, domain.TimeBlock{OwnerID: ownerID, Title: "focus", StartTime: start, EndTime: end})
		first = b
		return err
	})
	if err != nil {
		t.Fatalf("insert error: %v", err)
	}
	if first.ID == uuid.Nil || first.Version != 1 {
		t.Fatalf("inserted block id=%s version=%d", first.ID, first.Version)
	}

	err = repo.InOwnerTransaction(ctx, ownerID, func(ctx context.Context, tx store.TimeBlockTx) error {
		_, err := tx.Insert(ctx, domain.TimeBlock{OwnerID: ownerID, Title: "overlap", StartTime: start.Add(30 * time.Minute), EndTime: end.Add(30 * time.Minute)})
		return err
	})
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("overlap err = %v, want %v", err, store.ErrConflict)
	}

	err = repo.InOwnerTransaction(ctx, ownerID, func(ctx context.Context, tx store.TimeBlockTx) error {
		_, err := tx.Insert(ctx, domain.TimeBlock{OwnerID: ownerID, Title: "touching", StartTime: end, EndTime: end.Add(time.Hour)})
		return err
	})
	if err != nil {
		t.Fatalf("touching insert error: %v", err)
	}

	rows, err := repo.FindOverlapping(ctx, ownerID, start, end)
	if err != nil {
		t.Fatalf("FindOverlapping error: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != first.ID {
		t.Fatalf("FindOverlapping = %v, want only %s", rows, first.ID)
	}

	err = repo.InOwnerTransaction(ctx, ownerID, func(ctx context.Context, tx store.TimeBlockTx) error {
		updated := first
		updated.Title = "renamed"
		updated.Version = first.Version + 1
		_, err := tx.Update(ctx, updated)
		return err
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}

	err = repo.InOwnerTransaction(ctx, ownerID, func(ctx context.Context, tx store.TimeBlockTx) error {
		stale := first
		stale.Version = first.Version + 1
		_, err := tx.Update(ctx, stale)
		return err
	})
	if !errors.Is(err, store.ErrVersionConflict) {
		t.Fatalf("stale update err = %v, want %v", err, store.ErrVersionConflict)
	}

	got, err := repo.Get(ctx, ownerID, first.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Title != "renamed" || got.Version != 2 {
		t.Fatalf("got title=%q version=%d", got.Title, got.Version)
	}

	if _, err := repo.Get(ctx, "someone_else", first.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("foreign Get err = %v, want %v", err, store.ErrNotFound)
	}

	if err := repo.Delete(ctx, ownerID, first.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := repo.Delete(ctx, ownerID, first.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("second Delete err = %v, want %v", err, store.ErrNotFound)
	}

	all, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("len(all) = %d, want 1", len(all))
	}
}

func randomHex(t *testing.T, bytesLen int) string {
	t.Helper()
	b := make([]byte, bytesLen)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("rand.Read error: %v", err)
	}
	return hex.EncodeToString(b)
}
