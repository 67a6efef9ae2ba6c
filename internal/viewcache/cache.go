// Package viewcache holds computed calendar views for a bounded time and drops
// all of an owner's entries whenever that owner's blocks change.
package viewcache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"planner/backend/internal/clock"
)

const DefaultTTL = 5 * time.Minute

// Key identifies one cached view. Day is the reference date truncated to a
// calendar day, together with its location; see DayKey.
type Key struct {
	Owner string
	View  string
	Day   string
}

// DayKey formats the calendar day of t for use in Key.Day. The UTC offset is
// part of the key because fixed zones decoded from timestamps are unnamed, so
// the location name alone does not tell their days apart.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02Z07:00") + "@" + t.Location().String()
}

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// bucket holds one owner's entries. gen is the sequence number of the
// owner's latest invalidation. A bucket emptied by Sweep is unlinked and
// marked removed; holders of a stale pointer look it up again.
type bucket[V any] struct {
	mu      sync.Mutex
	gen     uint64
	removed bool
	entries map[Key]entry[V]
}

// Cache is safe for concurrent use. Owners live in separate buckets, so
// operations on different owners never wait on each other.
//
// Generations come from one cache-wide sequence. floor is at least the gen of
// every bucket Sweep has unlinked, and new buckets start at floor, so an
// owner's generation never moves backwards when its bucket is recreated.
type Cache[V any] struct {
	ttl    time.Duration
	clock  clock.Clock
	owners *xsync.MapOf[string, *bucket[V]]
	seq    atomic.Uint64
	floor  atomic.Uint64
}

func New[V any](ttl time.Duration, c clock.Clock) *Cache[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if c == nil {
		c = clock.Real{}
	}
	return &Cache[V]{
		ttl:    ttl,
		clock:  c,
		owners: xsync.NewMapOf[string, *bucket[V]](),
	}
}

func (c *Cache[V]) TTL() time.Duration {
	return c.ttl
}

// lockBucket returns the owner's live bucket with mu held. Without create it
// returns nil when the owner has no bucket.
func (c *Cache[V]) lockBucket(owner string, create bool) *bucket[V] {
	for {
		var b *bucket[V]
		if create {
			b, _ = c.owners.LoadOrCompute(owner, func() *bucket[V] {
				return &bucket[V]{gen: c.floor.Load(), entries: make(map[Key]entry[V])}
			})
		} else {
			var ok bool
			if b, ok = c.owners.Load(owner); !ok {
				return nil
			}
		}
		b.mu.Lock()
		if !b.removed {
			return b
		}
		b.mu.Unlock()
	}
}

// Get returns the cached value for key. Expired entries count as misses and
// are evicted.
func (c *Cache[V]) Get(key Key) (V, bool) {
	var zero V
	b := c.lockBucket(key.Owner, false)
	if b == nil {
		return zero, false
	}
	defer b.mu.Unlock()

	e, ok := b.entries[key]
	if !ok {
		return zero, false
	}
	if c.expired(e) {
		delete(b.entries, key)
		return zero, false
	}
	return e.value, true
}

func (c *Cache[V]) Put(key Key, value V) {
	b := c.lockBucket(key.Owner, true)
	defer b.mu.Unlock()
	b.entries[key] = entry[V]{value: value, storedAt: c.clock.Now()}
}

// Generation returns a token for PutIfCurrent, taken before a value is
// computed outside the cache. It does not allocate anything for owner.
func (c *Cache[V]) Generation(owner string) uint64 {
	return c.seq.Load()
}

// PutIfCurrent stores value only if the owner has not been invalidated since
// gen was read. It reports whether the value was stored.
func (c *Cache[V]) PutIfCurrent(key Key, value V, gen uint64) bool {
	b := c.lockBucket(key.Owner, true)
	defer b.mu.Unlock()
	if b.gen > gen {
		return false
	}
	b.entries[key] = entry[V]{value: value, storedAt: c.clock.Now()}
	return true
}

// InvalidateOwner drops every entry of owner, whatever the view or date.
func (c *Cache[V]) InvalidateOwner(owner string) {
	b := c.lockBucket(owner, true)
	defer b.mu.Unlock()
	b.gen = c.seq.Add(1)
	clear(b.entries)
}

// Sweep evicts expired entries of all owners and returns how many were
// removed. Buckets left empty are dropped.
func (c *Cache[V]) Sweep() int {
	removed := 0
	c.owners.Range(func(owner string, b *bucket[V]) bool {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.removed {
			return true
		}
		for k, e := range b.entries {
			if c.expired(e) {
				delete(b.entries, k)
				removed++
			}
		}
		if len(b.entries) == 0 {
			c.raiseFloor(b.gen)
			b.removed = true
			c.owners.Compute(owner, func(cur *bucket[V], loaded bool) (*bucket[V], bool) {
				return cur, loaded && cur == b
			})
		}
		return true
	})
	return removed
}

// Owners counts owners that currently have a bucket.
func (c *Cache[V]) Owners() int {
	return c.owners.Size()
}

func (c *Cache[V]) raiseFloor(gen uint64) {
	for {
		cur := c.floor.Load()
		if cur >= gen || c.floor.CompareAndSwap(cur, gen) {
			return
		}
	}
}

// Len counts stored entries, expired ones included.
func (c *Cache[V]) Len() int {
	n := 0
	c.owners.Range(func(_ string, b *bucket[V]) bool {
		b.mu.Lock()
		n += len(b.entries)
		b.mu.Unlock()
		return true
	})
	return n
}

func (c *Cache[V]) expired(e entry[V]) bool {
	return !c.clock.Now().Before(e.storedAt.Add(c.ttl))
}
