// Package perf records wall-clock durations of named operations and samples
// process memory. It is observational only.
package perf

import (
	"runtime"
	"slices"
	"sync"
	"time"

	"planner/backend/internal/clock"
)

const maxSamples = 100

// Token marks the start of one measured call.
type Token struct {
	start time.Time
}

type Stats struct {
	Count   int
	Min     float64
	Max     float64
	Average float64
}

type MemoryStats struct {
	HeapUsed  uint64
	HeapTotal uint64
	// RSS approximates the resident set with the bytes obtained from the OS.
	RSS uint64
	// External is memory obtained from the OS outside the heap (stacks, runtime metadata).
	External uint64
}

type Monitor struct {
	clock clock.Clock

	mu      sync.Mutex
	samples map[string][]float64
}

func NewMonitor(c clock.Clock) *Monitor {
	if c == nil {
		c = clock.Real{}
	}
	return &Monitor{clock: c, samples: make(map[string][]float64)}
}

func (m *Monitor) Start(op string) Token {
	return Token{start: m.clock.Now()}
}

// End records the duration since tok in milliseconds and returns it.
func (m *Monitor) End(op string, tok Token) float64 {
	ms := float64(m.clock.Now().Sub(tok.start)) / float64(time.Millisecond)

	m.mu.Lock()
	defer m.mu.Unlock()
	s := append(m.samples[op], ms)
	if len(s) > maxSamples {
		s = slices.Clone(s[len(s)-maxSamples:])
	}
	m.samples[op] = s
	return ms
}

// Metrics summarizes the retained samples of op.
func (m *Monitor) Metrics(op string) (Stats, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.samples[op]
	if len(s) == 0 {
		return Stats{}, false
	}

	st := Stats{Count: len(s), Min: s[0], Max: s[0]}
	var sum float64
	for _, v := range s {
		sum += v
		st.Min = min(st.Min, v)
		st.Max = max(st.Max, v)
	}
	st.Average = sum / float64(len(s))
	return st, true
}

// Operations lists the names that have samples, sorted.
func (m *Monitor) Operations() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ops := make([]string, 0, len(m.samples))
	for op := range m.samples {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}

func (m *Monitor) Memory() MemoryStats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return MemoryStats{
		HeapUsed:  ms.HeapAlloc,
		HeapTotal: ms.HeapSys,
		RSS:       ms.Sys,
		External:  ms.Sys - ms.HeapSys,
	}
}
