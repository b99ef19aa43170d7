// Package profile persists per-user profile documents keyed by account UID.
// The session layer reconciles these documents with the identity provider's
// account data.
package profile

import (
	"context"
	"time"
)

// Document is one user's stored profile.
type Document struct {
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store reads and writes profile documents. Get returns a wrapped
// ErrNotFound when no document exists for the UID. Upsert assigns the
// timestamps itself: CreatedAt on first write, UpdatedAt on every write.
type Store interface {
	Get(ctx context.Context, uid string) (*Document, error)
	Upsert(ctx context.Context, doc *Document) error
}
