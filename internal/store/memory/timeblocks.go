// Package memory keeps time blocks in process memory. It is used by the
// "memory" store driver and as a real store in service tests.
package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
	expmaps "golang.org/x/exp/maps"

	"planner/backend/internal/domain"
	"planner/backend/internal/store"
)

type TimeBlockRepo struct {
	owners *xsync.MapOf[string, *ownerShard]
}

// ownerShard holds one owner's blocks. mu is held for the full length of a
// transaction, which gives per-owner write serialization without blocking
// other owners. A shard emptied by a transaction is unlinked from the map and
// marked removed; holders of a stale pointer look it up again.
type ownerShard struct {
	mu      sync.Mutex
	removed bool
	blocks  map[uuid.UUID]domain.TimeBlock
}

func NewTimeBlockRepo() *TimeBlockRepo {
	return &TimeBlockRepo{owners: xsync.NewMapOf[string, *ownerShard]()}
}

// lockShard returns the owner's live shard with mu held. Without create it
// returns nil when the owner has no blocks.
func (r *TimeBlockRepo) lockShard(ownerID string, create bool) *ownerShard {
	for {
		var s *ownerShard
		if create {
			s, _ = r.owners.LoadOrCompute(ownerID, func() *ownerShard {
				return &ownerShard{blocks: make(map[uuid.UUID]domain.TimeBlock)}
			})
		} else {
			var ok bool
			if s, ok = r.owners.Load(ownerID); !ok {
				return nil
			}
		}
		s.mu.Lock()
		if !s.removed {
			return s
		}
		s.mu.Unlock()
	}
}

// release unlocks s, first unlinking it when it holds no blocks.
func (r *TimeBlockRepo) release(ownerID string, s *ownerShard) {
	if len(s.blocks) == 0 {
		s.removed = true
		r.owners.Compute(ownerID, func(cur *ownerShard, loaded bool) (*ownerShard, bool) {
			return cur, loaded && cur == s
		})
	}
	s.mu.Unlock()
}

// Owners reports how many owners currently hold blocks.
func (r *TimeBlockRepo) Owners() int {
	return r.owners.Size()
}

func (r *TimeBlockRepo) FindOverlapping(ctx context.Context, ownerID string, windowStart, windowEnd time.Time) ([]domain.TimeBlock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := r.lockShard(ownerID, false)
	if s == nil {
		return []domain.TimeBlock{}, nil
	}
	defer s.mu.Unlock()
	return overlapping(s.blocks, windowStart, windowEnd), nil
}

func (r *TimeBlockRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.TimeBlock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := r.lockShard(ownerID, false)
	if s == nil {
		return nil, nil
	}
	defer s.mu.Unlock()
	return sortedByStart(expmaps.Values(s.blocks)), nil
}

func (r *TimeBlockRepo) Get(ctx context.Context, ownerID string, id uuid.UUID) (domain.TimeBlock, error) {
	if err := ctx.Err(); err != nil {
		return domain.TimeBlock{}, err
	}
	s := r.lockShard(ownerID, false)
	if s == nil {
		return domain.TimeBlock{}, store.ErrNotFound
	}
	defer s.mu.Unlock()
	b, ok := s.blocks[id]
	if !ok {
		return domain.TimeBlock{}, store.ErrNotFound
	}
	return b, nil
}

func (r *TimeBlockRepo) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	return r.InOwnerTransaction(ctx, ownerID, func(ctx context.Context, tx store.TimeBlockTx) error {
		return tx.Delete(ctx, ownerID, id)
	})
}

func (r *TimeBlockRepo) InOwnerTransaction(ctx context.Context, ownerID string, fn func(ctx context.Context, tx store.TimeBlockTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s := r.lockShard(ownerID, true)
	defer r.release(ownerID, s)

	tx := &timeBlockTx{ownerID: ownerID, blocks: maps.Clone(s.blocks)}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.blocks = tx.blocks
	return nil
}

// timeBlockTx works on a staged copy of the owner's blocks.
type timeBlockTx struct {
	ownerID string
	blocks  map[uuid.UUID]domain.TimeBlock
}

func (t *timeBlockTx) FindOverlapping(ctx context.Context, ownerID string, windowStart, windowEnd time.Time) ([]domain.TimeBlock, error) {
	if ownerID != t.ownerID {
		return nil, nil
	}
	return overlapping(t.blocks, windowStart, windowEnd), nil
}

func (t *timeBlockTx) Get(ctx context.Context, ownerID string, id uuid.UUID) (domain.TimeBlock, error) {
	b, ok := t.blocks[id]
	if !ok || ownerID != t.ownerID {
		return domain.TimeBlock{}, store.ErrNotFound
	}
	return b, nil
}

func (t *timeBlockTx) Insert(ctx context.Context, block domain.TimeBlock) (domain.TimeBlock, error) {
	if block.OwnerID != t.ownerID {
		return domain.TimeBlock{}, fmt.Errorf("insert for owner %q inside transaction of %q", block.OwnerID, t.ownerID)
	}
	if block.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return domain.TimeBlock{}, err
		}
		block.ID = id
	}
	if _, exists := t.blocks[block.ID]; exists {
		return domain.TimeBlock{}, fmt.Errorf("time block %s already exists", block.ID)
	}
	if t.collides(block) {
		return domain.TimeBlock{}, store.ErrConflict
	}

	now := time.Now().UTC()
	if block.Version == 0 {
		block.Version = 1
	}
	if block.CreatedAt.IsZero() {
		block.CreatedAt = now
	}
	if block.UpdatedAt.IsZero() {
		block.UpdatedAt = now
	}
	t.blocks[block.ID] = block
	return block, nil
}

func (t *timeBlockTx) Update(ctx context.Context, block domain.TimeBlock) (domain.TimeBlock, error) {
	existing, ok := t.blocks[block.ID]
	if !ok || block.OwnerID != t.ownerID {
		return domain.TimeBlock{}, store.ErrNotFound
	}
	if existing.Version != block.Version-1 {
		return domain.TimeBlock{}, store.ErrVersionConflict
	}
	if t.collides(block) {
		return domain.TimeBlock{}, store.ErrConflict
	}

	block.CreatedAt = existing.CreatedAt
	block.UpdatedAt = time.Now().UTC()
	t.blocks[block.ID] = block
	return block, nil
}

func (t *timeBlockTx) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	if _, ok := t.blocks[id]; !ok || ownerID != t.ownerID {
		return store.ErrNotFound
	}
	delete(t.blocks, id)
	return nil
}

// collides is the post-hoc equivalent of the Postgres exclusion constraint.
func (t *timeBlockTx) collides(block domain.TimeBlock) bool {
	for id, other := range t.blocks {
		if id == block.ID {
			continue
		}
		if other.Overlaps(block.StartTime, block.EndTime) {
			return true
		}
	}
	return false
}

func overlapping(blocks map[uuid.UUID]domain.TimeBlock, windowStart, windowEnd time.Time) []domain.TimeBlock {
	out := make([]domain.TimeBlock, 0)
	for _, b := range blocks {
		if b.Overlaps(windowStart, windowEnd) {
			out = append(out, b)
		}
	}
	return sortedByStart(out)
}

func sortedByStart(blocks []domain.TimeBlock) []domain.TimeBlock {
	slices.SortFunc(blocks, func(a, b domain.TimeBlock) int {
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c
		}
		return a.EndTime.Compare(b.EndTime)
	})
	return blocks
}
