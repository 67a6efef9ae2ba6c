package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"planner/backend/internal/domain"
	"planner/backend/internal/store"
)

func insert(t *testing.T, r *TimeBlockRepo, b domain.TimeBlock) (domain.TimeBlock, error) {
	t.Helper()
	var out domain.TimeBlock
	err := r.InOwnerTransaction(context.Background(), b.OwnerID, func(ctx context.Context, tx store.TimeBlockTx) error {
		created, err := tx.Insert(ctx, b)
		out = created
		return err
	})
	return out, err
}

func TestTimeBlockRepo_InsertRejectsOverlapAllowsTouching(t *testing.T) {
	r := NewTimeBlockRepo()
	start := time.Date(2023, 6, 15, 9, 0, 0, 0, time.UTC)

	first, err := insert(t, r, domain.TimeBlock{OwnerID: "u1", Title: "a", StartTime: start, EndTime: start.Add(time.Hour)})
	if err != nil {
		t.Fatalf("insert error: %v", err)
	}
	if first.ID == uuid.Nil || first.Version != 1 {
		t.Fatalf("first id=%s version=%d", first.ID, first.Version)
	}

	_, err = insert(t, r, domain.TimeBlock{OwnerID: "u1", Title: "b", StartTime: start.Add(30 * time.Minute), EndTime: start.Add(90 * time.Minute)})
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("overlap err = %v, want %v", err, store.ErrConflict)
	}

	if _, err := insert(t, r, domain.TimeBlock{OwnerID: "u1", Title: "c", StartTime: start.Add(time.Hour), EndTime: start.Add(2 * time.Hour)}); err != nil {
		t.Fatalf("touching insert error: %v", err)
	}

	if _, err := insert(t, r, domain.TimeBlock{OwnerID: "u2", Title: "d", StartTime: start, EndTime: start.Add(time.Hour)}); err != nil {
		t.Fatalf("other owner insert error: %v", err)
	}

	all, err := r.ListByOwner(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len(all) = %d, want 2", len(all))
	}
	if !all[0].StartTime.Before(all[1].StartTime) {
		t.Fatalf("expected blocks sorted by start")
	}
}

func TestTimeBlockRepo_FailedTransactionDiscardsWrites(t *testing.T) {
	r := NewTimeBlockRepo()
	start := time.Date(2023, 6, 15, 9, 0, 0, 0, time.UTC)
	boom := errors.New("boom")

	err := r.InOwnerTransaction(context.Background(), "u1", func(ctx context.Context, tx store.TimeBlockTx) error {
		if _, err := tx.Insert(ctx, domain.TimeBlock{OwnerID: "u1", Title: "a", StartTime: start, EndTime: start.Add(time.Hour)}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}

	all, err := r.ListByOwner(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("len(all) = %d, want 0", len(all))
	}
}

func TestTimeBlockRepo_UpdateChecksVersionAndOwner(t *testing.T) {
	r := NewTimeBlockRepo()
	start := time.Date(2023, 6, 15, 9, 0, 0, 0, time.UTC)
	b, err := insert(t, r, domain.TimeBlock{OwnerID: "u1", Title: "a", StartTime: start, EndTime: start.Add(time.Hour)})
	if err != nil {
		t.Fatalf("insert error: %v", err)
	}

	update := func(owner string, blk domain.TimeBlock) error {
		return r.InOwnerTransaction(context.Background(), owner, func(ctx context.Context, tx store.TimeBlockTx) error {
			_, err := tx.Update(ctx, blk)
			return err
		})
	}

	stale := b
	stale.Version = b.Version + 2
	if err := update("u1", stale); !errors.Is(err, store.ErrVersionConflict) {
		t.Fatalf("stale update err = %v, want %v", err, store.ErrVersionConflict)
	}

	foreign := b
	foreign.OwnerID = "u2"
	foreign.Version = b.Version + 1
	if err := update("u2", foreign); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("foreign update err = %v, want %v", err, store.ErrNotFound)
	}

	moved := b
	moved.Version = b.Version + 1
	moved.StartTime = start.Add(30 * time.Minute)
	moved.EndTime = start.Add(90 * time.Minute)
	if err := update("u1", moved); err != nil {
		t.Fatalf("update error: %v", err)
	}

	got, err := r.Get(context.Background(), "u1", b.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Version != 2 || !got.StartTime.Equal(moved.StartTime) {
		t.Fatalf("got version=%d start=%v", got.Version, got.StartTime)
	}
	if !got.CreatedAt.Equal(b.CreatedAt) {
		t.Fatalf("created_at changed on update")
	}
}

func TestTimeBlockRepo_DeleteIsOwnerScoped(t *testing.T) {
	r := NewTimeBlockRepo()
	start := time.Date(2023, 6, 15, 9, 0, 0, 0, time.UTC)
	b, err := insert(t, r, domain.TimeBlock{OwnerID: "u1", Title: "a", StartTime: start, EndTime: start.Add(time.Hour)})
	if err != nil {
		t.Fatalf("insert error: %v", err)
	}

	if err := r.Delete(context.Background(), "u2", b.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("foreign delete err = %v, want %v", err, store.ErrNotFound)
	}
	if err := r.Delete(context.Background(), "u1", b.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := r.Get(context.Background(), "u1", b.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get after delete err = %v, want %v", err, store.ErrNotFound)
	}
}

func TestTimeBlockRepo_ConcurrentOverlappingInsertsOnlyOneWins(t *testing.T) {
	r := NewTimeBlockRepo()
	start := time.Date(2023, 6, 15, 9, 0, 0, 0, time.UTC)

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			offset := time.Duration(i) * time.Minute
			_, errs[i] = insert(t, r, domain.TimeBlock{OwnerID: "u1", Title: "x", StartTime: start.Add(offset), EndTime: start.Add(offset + time.Hour)})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, store.ErrConflict):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("succeeded = %d, want 1", succeeded)
	}
}

func TestTimeBlockRepo_ReadsDoNotRetainOwners(t *testing.T) {
	r := NewTimeBlockRepo()
	ctx := context.Background()
	start := time.Date(2023, 6, 15, 9, 0, 0, 0, time.UTC)

	for _, owner := range []string{"a", "b", "c"} {
		if _, err := r.FindOverlapping(ctx, owner, start, start.Add(time.Hour)); err != nil {
			t.Fatalf("FindOverlapping error: %v", err)
		}
		if _, err := r.Get(ctx, owner, uuid.New()); !errors.Is(err, store.ErrNotFound) {
			t.Fatalf("Get err = %v, want ErrNotFound", err)
		}
	}
	if n := r.Owners(); n != 0 {
		t.Fatalf("owners after reads = %d, want 0", n)
	}

	b, err := insert(t, r, domain.TimeBlock{OwnerID: "u1", Title: "a", StartTime: start, EndTime: start.Add(time.Hour)})
	if err != nil {
		t.Fatalf("insert error: %v", err)
	}
	if n := r.Owners(); n != 1 {
		t.Fatalf("owners after insert = %d, want 1", n)
	}

	if err := r.Delete(ctx, "u1", b.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if n := r.Owners(); n != 0 {
		t.Fatalf("owners after last delete = %d, want 0", n)
	}

	again, err := insert(t, r, domain.TimeBlock{OwnerID: "u1", Title: "b", StartTime: start, EndTime: start.Add(time.Hour)})
	if err != nil {
		t.Fatalf("insert after removal error: %v", err)
	}
	got, err := r.Get(ctx, "u1", again.ID)
	if err != nil || got.Title != "b" {
		t.Fatalf("Get = %+v, %v", got, err)
	}
}
