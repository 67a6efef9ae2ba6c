package timeblocks

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"planner/backend/internal/calendar"
	"planner/backend/internal/clock"
	"planner/backend/internal/domain"
	"planner/backend/internal/store"
	"planner/backend/internal/store/memory"
	"planner/backend/internal/viewcache"
)

type fakeRepo struct {
	findOverlappingFn    func(ctx context.Context, ownerID string, windowStart, windowEnd time.Time) ([]domain.TimeBlock, error)
	listByOwnerFn        func(ctx context.Context, ownerID string) ([]domain.TimeBlock, error)
	getFn                func(ctx context.Context, ownerID string, id uuid.UUID) (domain.TimeBlock, error)
	deleteFn             func(ctx context.Context, ownerID string, id uuid.UUID) error
	inOwnerTransactionFn func(ctx context.Context, ownerID string, fn func(ctx context.Context, tx store.TimeBlockTx) error) error
}

func (f *fakeRepo) FindOverlapping(ctx context.Context, ownerID string, windowStart, windowEnd time.Time) ([]domain.TimeBlock, error) {
	if f.findOverlappingFn == nil {
		panic("FindOverlapping not configured")
	}
	return f.findOverlappingFn(ctx, ownerID, windowStart, windowEnd)
}

func (f *fakeRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.TimeBlock, error) {
	if f.listByOwnerFn == nil {
		panic("ListByOwner not configured")
	}
	return f.listByOwnerFn(ctx, ownerID)
}

func (f *fakeRepo) Get(ctx context.Context, ownerID string, id uuid.UUID) (domain.TimeBlock, error) {
	if f.getFn == nil {
		panic("Get not configured")
	}
	return f.getFn(ctx, ownerID, id)
}

func (f *fakeRepo) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	if f.deleteFn == nil {
		panic("Delete not configured")
	}
	return f.deleteFn(ctx, ownerID, id)
}

func (f *fakeRepo) InOwnerTransaction(ctx context.Context, ownerID string, fn func(ctx context.Context, tx store.TimeBlockTx) error) error {
	if f.inOwnerTransactionFn == nil {
		panic("InOwnerTransaction not configured")
	}
	return f.inOwnerTransactionFn(ctx, ownerID, fn)
}

// countingRepo counts window queries against a real in-memory store.
type countingRepo struct {
	*memory.TimeBlockRepo

	mu      sync.Mutex
	queries int
}

func (r *countingRepo) FindOverlapping(ctx context.Context, ownerID string, windowStart, windowEnd time.Time) ([]domain.TimeBlock, error) {
	r.mu.Lock()
	r.queries++
	r.mu.Unlock()
	return r.TimeBlockRepo.FindOverlapping(ctx, ownerID, windowStart, windowEnd)
}

func (r *countingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queries
}

var baseTime = time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return baseTime.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func newTestService(t *testing.T, repo store.TimeBlockRepository) *Service {
	t.Helper()
	clk := clock.NewManual(baseTime)
	cache := viewcache.New[calendar.ViewResult](time.Minute, clk)
	return NewService(repo, cache, DefaultSettings(), WithClock(clk))
}

func createBlock(t *testing.T, svc *Service, owner, title string, start, end time.Time) domain.TimeBlock {
	t.Helper()
	b, err := svc.Create(context.Background(), CreateInput{
		OwnerID:     owner,
		BlockFields: BlockFields{Title: title, StartTime: start, EndTime: end},
	})
	if err != nil {
		t.Fatalf("Create(%s) error: %v", title, err)
	}
	return b
}

func TestServiceCreate_ValidationErrorType(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})

	_, err := svc.Create(context.Background(), CreateInput{
		OwnerID:     "",
		BlockFields: BlockFields{Title: "x", StartTime: at(10, 0), EndTime: at(11, 0)},
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if vErr.Error() != "owner_id is required" {
		t.Fatalf("error = %q, want %q", vErr.Error(), "owner_id is required")
	}
}

func TestServiceCreate_RejectsInvalidFields(t *testing.T) {
	long := make([]rune, domain.MaxTitleLength+1)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name   string
		fields BlockFields
		want   string
	}{
		{"empty title", BlockFields{Title: "   ", StartTime: at(9, 0), EndTime: at(10, 0)}, "title is required"},
		{"long title", BlockFields{Title: string(long), StartTime: at(9, 0), EndTime: at(10, 0)}, "title too long"},
		{"zero duration", BlockFields{Title: "t", StartTime: at(9, 0), EndTime: at(9, 0)}, "end_time must be after start_time"},
		{"inverted", BlockFields{Title: "t", StartTime: at(10, 0), EndTime: at(9, 0)}, "end_time must be after start_time"},
		{"bad color", BlockFields{Title: "t", StartTime: at(9, 0), EndTime: at(10, 0), Color: "blue"}, "color must be a #RRGGBB hex value"},
	}

	svc := newTestService(t, &fakeRepo{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), CreateInput{OwnerID: "u1", BlockFields: tt.fields})
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if vErr.Error() != tt.want {
				t.Fatalf("error = %q, want %q", vErr.Error(), tt.want)
			}
		})
	}
}

func TestServiceCreate_NormalizesFields(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatalf("LoadLocation error: %v", err)
	}
	svc := newTestService(t, memory.NewTimeBlockRepo())
	task := uuid.New()

	got, err := svc.Create(context.Background(), CreateInput{
		OwnerID: "u1",
		BlockFields: BlockFields{
			Title:     "  focus  ",
			StartTime: time.Date(2023, 6, 15, 9, 0, 0, 0, loc),
			EndTime:   time.Date(2023, 6, 15, 10, 0, 0, 0, loc),
			Color:     "AABBCC",
			TaskID:    &task,
			TaskTitle: " write report ",
		},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.Title != "focus" {
		t.Fatalf("title = %q, want %q", got.Title, "focus")
	}
	if got.StartTime.Location() != time.UTC || got.EndTime.Location() != time.UTC {
		t.Fatalf("expected UTC times, got start=%v end=%v", got.StartTime, got.EndTime)
	}
	if got.Color != "#aabbcc" {
		t.Fatalf("color = %q, want %q", got.Color, "#aabbcc")
	}
	if got.TaskTitle != "write report" {
		t.Fatalf("task_title = %q, want %q", got.TaskTitle, "write report")
	}
	if got.ID == uuid.Nil || got.Version != 1 {
		t.Fatalf("id = %s version = %d, want assigned id and version 1", got.ID, got.Version)
	}
}

func TestServiceCreate_ConflictListsOverlappingBlocks(t *testing.T) {
	svc := newTestService(t, memory.NewTimeBlockRepo())
	a := createBlock(t, svc, "u1", "a", at(9, 0), at(10, 0))
	b := createBlock(t, svc, "u1", "b", at(11, 0), at(12, 0))
	createBlock(t, svc, "u1", "c", at(13, 0), at(14, 0))

	_, err := svc.Create(context.Background(), CreateInput{
		OwnerID:     "u1",
		BlockFields: BlockFields{Title: "x", StartTime: at(9, 30), EndTime: at(11, 30)},
	})
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("error = %v, want %v", err, store.ErrConflict)
	}
	var cErr *ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("error type = %T, want *ConflictError", err)
	}
	if len(cErr.Conflicts) != 2 || cErr.Conflicts[0].ID != a.ID || cErr.Conflicts[1].ID != b.ID {
		t.Fatalf("conflicts = %v, want [a b]", cErr.Conflicts)
	}
}

func TestServiceCreate_TouchingBlocksDoNotConflict(t *testing.T) {
	svc := newTestService(t, memory.NewTimeBlockRepo())
	createBlock(t, svc, "u1", "a", at(9, 0), at(10, 0))
	createBlock(t, svc, "u1", "b", at(10, 0), at(11, 0))
	createBlock(t, svc, "u1", "c", at(8, 0), at(9, 0))
}

func TestServiceCreate_OwnersDoNotConflict(t *testing.T) {
	svc := newTestService(t, memory.NewTimeBlockRepo())
	createBlock(t, svc, "u1", "a", at(9, 0), at(10, 0))
	createBlock(t, svc, "u2", "a", at(9, 0), at(10, 0))
}

func TestServiceCreate_StoreRejectionResolvedToConflictList(t *testing.T) {
	winner := domain.TimeBlock{ID: uuid.New(), OwnerID: "u1", Title: "winner", StartTime: at(9, 0), EndTime: at(10, 0)}
	svc := newTestService(t, &fakeRepo{
		inOwnerTransactionFn: func(ctx context.Context, ownerID string, fn func(ctx context.Context, tx store.TimeBlockTx) error) error {
			return store.ErrConflict
		},
		findOverlappingFn: func(ctx context.Context, ownerID string, windowStart, windowEnd time.Time) ([]domain.TimeBlock, error) {
			return []domain.TimeBlock{winner}, nil
		},
	})

	_, err := svc.Create(context.Background(), CreateInput{
		OwnerID:     "u1",
		BlockFields: BlockFields{Title: "loser", StartTime: at(9, 30), EndTime: at(10, 30)},
	})
	var cErr *ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("error type = %T, want *ConflictError", err)
	}
	if len(cErr.Conflicts) != 1 || cErr.Conflicts[0].ID != winner.ID {
		t.Fatalf("conflicts = %v, want [winner]", cErr.Conflicts)
	}
}

func TestServiceCreate_PropagatesStoreErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := newTestService(t, &fakeRepo{
		inOwnerTransactionFn: func(ctx context.Context, ownerID string, fn func(ctx context.Context, tx store.TimeBlockTx) error) error {
			return boom
		},
	})

	_, err := svc.Create(context.Background(), CreateInput{
		OwnerID:     "u1",
		BlockFields: BlockFields{Title: "t", StartTime: at(9, 0), EndTime: at(10, 0)},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
}

func TestServiceUpdate_ExcludesItselfFromConflicts(t *testing.T) {
	svc := newTestService(t, memory.NewTimeBlockRepo())
	a := createBlock(t, svc, "u1", "a", at(9, 0), at(10, 0))

	got, err := svc.Update(context.Background(), UpdateInput{
		OwnerID:         "u1",
		ID:              a.ID,
		ExpectedVersion: a.Version,
		BlockFields:     BlockFields{Title: "a moved", StartTime: at(9, 30), EndTime: at(10, 30)},
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Version != 2 {
		t.Fatalf("version = %d, want 2", got.Version)
	}
	if !got.StartTime.Equal(at(9, 30)) || got.Title != "a moved" {
		t.Fatalf("updated block = %+v", got)
	}
}

func TestServiceUpdate_ConflictWithAnotherBlock(t *testing.T) {
	svc := newTestService(t, memory.NewTimeBlockRepo())
	a := createBlock(t, svc, "u1", "a", at(9, 0), at(10, 0))
	b := createBlock(t, svc, "u1", "b", at(11, 0), at(12, 0))

	_, err := svc.Update(context.Background(), UpdateInput{
		OwnerID:     "u1",
		ID:          a.ID,
		BlockFields: BlockFields{Title: "a", StartTime: at(9, 0), EndTime: at(11, 15)},
	})
	var cErr *ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("error type = %T, want *ConflictError", err)
	}
	if len(cErr.Conflicts) != 1 || cErr.Conflicts[0].ID != b.ID {
		t.Fatalf("conflicts = %v, want [b]", cErr.Conflicts)
	}

	stored, err := svc.Get(context.Background(), "u1", a.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !stored.EndTime.Equal(at(10, 0)) || stored.Version != 1 {
		t.Fatalf("rejected update changed the block: %+v", stored)
	}
}

func TestServiceUpdate_StaleVersion(t *testing.T) {
	svc := newTestService(t, memory.NewTimeBlockRepo())
	a := createBlock(t, svc, "u1", "a", at(9, 0), at(10, 0))

	_, err := svc.Update(context.Background(), UpdateInput{
		OwnerID:         "u1",
		ID:              a.ID,
		ExpectedVersion: a.Version + 1,
		BlockFields:     BlockFields{Title: "a", StartTime: at(9, 0), EndTime: at(10, 0)},
	})
	if !errors.Is(err, store.ErrVersionConflict) {
		t.Fatalf("error = %v, want %v", err, store.ErrVersionConflict)
	}
}

func TestServiceUpdate_ForeignOwnerIsNotFound(t *testing.T) {
	svc := newTestService(t, memory.NewTimeBlockRepo())
	a := createBlock(t, svc, "u1", "a", at(9, 0), at(10, 0))

	_, err := svc.Update(context.Background(), UpdateInput{
		OwnerID:     "u2",
		ID:          a.ID,
		BlockFields: BlockFields{Title: "a", StartTime: at(9, 0), EndTime: at(10, 0)},
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, store.ErrNotFound)
	}
}

func TestServiceDelete_FreesTheInterval(t *testing.T) {
	svc := newTestService(t, memory.NewTimeBlockRepo())
	a := createBlock(t, svc, "u1", "a", at(9, 0), at(10, 0))

	if err := svc.Delete(context.Background(), "u1", a.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := svc.Get(context.Background(), "u1", a.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get after delete error = %v, want %v", err, store.ErrNotFound)
	}
	createBlock(t, svc, "u1", "b", at(9, 0), at(10, 0))
}

func TestServiceFindConflicts_ExcludesGivenID(t *testing.T) {
	svc := newTestService(t, memory.NewTimeBlockRepo())
	a := createBlock(t, svc, "u1", "a", at(9, 0), at(10, 0))
	b := createBlock(t, svc, "u1", "b", at(10, 0), at(11, 0))

	got, err := svc.FindConflicts(context.Background(), "u1", at(9, 30), at(10, 30), a.ID)
	if err != nil {
		t.Fatalf("FindConflicts error: %v", err)
	}
	if len(got) != 1 || got[0].ID != b.ID {
		t.Fatalf("conflicts = %v, want [b]", got)
	}

	got, err = svc.FindConflicts(context.Background(), "u1", at(11, 0), at(12, 0), uuid.Nil)
	if err != nil {
		t.Fatalf("FindConflicts error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("touching interval reported conflicts: %v", got)
	}
}

func TestService_ConcurrentCreatesKeepOwnerFreeOfOverlaps(t *testing.T) {
	svc := newTestService(t, memory.NewTimeBlockRepo())

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start := at(8, 0).Add(time.Duration(i%10) * 20 * time.Minute)
			_, err := svc.Create(context.Background(), CreateInput{
				OwnerID:     "u1",
				BlockFields: BlockFields{Title: "slot", StartTime: start, EndTime: start.Add(45 * time.Minute)},
			})
			if err != nil && !errors.Is(err, store.ErrConflict) {
				t.Errorf("Create error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	page, err := svc.List(context.Background(), "u1", calendar.PageQuery{PageSize: 500})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(page.Items) == 0 {
		t.Fatalf("expected at least one block to be created")
	}
	for i, a := range page.Items {
		for _, b := range page.Items[i+1:] {
			if a.Overlaps(b.StartTime, b.EndTime) {
				t.Fatalf("stored blocks overlap: %v-%v and %v-%v", a.StartTime, a.EndTime, b.StartTime, b.EndTime)
			}
		}
	}
}
