package viewcache

import (
	"context"
	"sync"
	"time"

	"invoice-dashboard/internal/pkg/clock"
)

type memoryEntry struct {
	entry     Entry
	expiresAt time.Time
}

// MemoryStore is an in-process Store with a fixed TTL per entry.
type MemoryStore struct {
	mu    sync.RWMutex
	views map[string]map[string]memoryEntry
	gens  map[string]Generation
	ttl   time.Duration
	clock clock.Clock
}

func NewMemoryStore(ttl time.Duration, clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		views: make(map[string]map[string]memoryEntry),
		gens:  make(map[string]Generation),
		ttl:   ttl,
		clock: clk,
	}
}

func (s *MemoryStore) Get(_ context.Context, path, variant string) (Entry, bool) {
	s.mu.RLock()
	e, ok := s.views[path][variant]
	s.mu.RUnlock()
	if !ok {
		return Entry{}, false
	}
	if !e.expiresAt.IsZero() && s.clock.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.views[path], variant)
		s.mu.Unlock()
		return Entry{}, false
	}
	return e.entry, true
}

func (s *MemoryStore) Generation(_ context.Context, path string) (Generation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gens[path], true
}

func (s *MemoryStore) Set(_ context.Context, path, variant string, gen Generation, e Entry) bool {
	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.clock.Now().Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gens[path] != gen {
		return false
	}
	variants, ok := s.views[path]
	if !ok {
		variants = make(map[string]memoryEntry)
		s.views[path] = variants
	}
	variants[variant] = memoryEntry{entry: e, expiresAt: expiresAt}
	return true
}

func (s *MemoryStore) Invalidate(_ context.Context, path string) {
	s.mu.Lock()
	delete(s.views, path)
	s.gens[path]++
	s.mu.Unlock()
}
