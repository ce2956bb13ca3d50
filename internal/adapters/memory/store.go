package memory

import (
	"context"
	"sync"

	"edet/internal/ports"
)

// Store implements ports.KeyValueStore in process memory
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailGet and FailSet, when set, make every Get or Set call fail.
	// Used by tests to simulate a broken store.
	FailGet error
	FailSet error
}

// Ensure Store implements KeyValueStore
var _ ports.KeyValueStore = (*Store)(nil)

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get returns copies of the stored values for the requested keys
func (s *Store) Get(_ context.Context, keys ...string) (map[string][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.FailGet != nil {
		return nil, s.FailGet
	}

	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		if v, ok := s.data[k]; ok {
			out[k] = append([]byte(nil), v...)
		}
	}
	return out, nil
}

// Set stores copies of all entries
func (s *Store) Set(_ context.Context, entries map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailSet != nil {
		return s.FailSet
	}

	for k, v := range entries {
		s.data[k] = append([]byte(nil), v...)
	}
	return nil
}

// Len returns the number of stored keys
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
