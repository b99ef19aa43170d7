// Package postgres implements the profile store on PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/nithishkannan87/AIM-FOOTWEAR/pkg/errors"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/profile"
)

// DB is the subset of pgxpool.Pool the store needs. Tests substitute a mock.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements profile.Store using PostgreSQL.
type Store struct {
	db DB
}

// NewStore creates a new PostgreSQL-backed profile store.
func NewStore(db DB) *Store {
	return &Store{db: db}
}

// Get retrieves the profile document for the given UID.
func (s *Store) Get(ctx context.Context, uid string) (*profile.Document, error) {
	query := `
		SELECT uid, name, email, created_at, updated_at
		FROM profiles
		WHERE uid = $1`

	var doc profile.Document
	err := s.db.QueryRow(ctx, query, uid).Scan(
		&doc.UID,
		&doc.Name,
		&doc.Email,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("profile", uid)
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}

	return &doc, nil
}

// Upsert inserts or replaces the profile document. CreatedAt is kept from
// the first insert; UpdatedAt is set to now on every write.
func (s *Store) Upsert(ctx context.Context, doc *profile.Document) error {
	now := time.Now().UTC()

	query := `
		INSERT INTO profiles (uid, name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (uid) DO UPDATE
		SET name = EXCLUDED.name, email = EXCLUDED.email, updated_at = EXCLUDED.updated_at`

	_, err := s.db.Exec(ctx, query, doc.UID, doc.Name, doc.Email, now)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	return nil
}
