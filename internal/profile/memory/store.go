// Package memory implements the profile store with an in-process map. It is
// the default when no database is configured and the backing store for tests.
package memory

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/nithishkannan87/AIM-FOOTWEAR/pkg/errors"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/profile"
)

// Store is an in-memory profile.Store.
type Store struct {
	mu   sync.RWMutex
	docs map[string]profile.Document
}

// NewStore creates an empty in-memory profile store.
func NewStore() *Store {
	return &Store{docs: make(map[string]profile.Document)}
}

// Get retrieves the profile document for the given UID.
func (s *Store) Get(ctx context.Context, uid string) (*profile.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[uid]
	if !ok {
		return nil, apperrors.NotFound("profile", uid)
	}

	copied := doc
	return &copied, nil
}

// Upsert inserts or replaces the profile document, preserving CreatedAt
// across updates.
func (s *Store) Upsert(ctx context.Context, doc *profile.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	stored := *doc
	stored.UpdatedAt = now

	if existing, ok := s.docs[doc.UID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.CreatedAt = now
	}

	s.docs[doc.UID] = stored
	return nil
}
