package memory

import (
	"context"
	"sync"

	apperrors "github.com/nithishkannan87/AIM-FOOTWEAR/pkg/errors"
)

// Store implements store.Store using an in-memory map. Used in tests and
// when no Redis address is configured. Thread-safe via sync.RWMutex.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New creates a new in-memory snapshot store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get retrieves the value stored under key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, apperrors.NotFound("snapshot", key)
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set writes the value under key, overwriting any previous value.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

// Delete removes the key.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
