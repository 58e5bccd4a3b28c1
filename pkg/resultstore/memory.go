package resultstore

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore is a thread-safe in-memory Store scoped to a single process.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

// Put saves a copy of the payload so later mutation of the caller's slice
// cannot affect the stored entry.
func (s *MemoryStore) Put(_ context.Context, id string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[Key(id)] = slices.Clone(payload)
	return nil
}

// Get returns a copy of the stored payload.
func (s *MemoryStore) Get(_ context.Context, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.entries[Key(id)]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(payload), nil
}
