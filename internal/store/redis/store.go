package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/nithishkannan87/AIM-FOOTWEAR/pkg/errors"
)

// Store implements store.Store on a Redis instance. Snapshots are kept
// without a TTL: the storefront's cart and wishlist survive until the user
// clears them.
type Store struct {
	client *redis.Client
}

// New creates a new Redis-backed snapshot store.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get retrieves the snapshot stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFound("snapshot", key)
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

// Set writes the snapshot under key, overwriting any previous value.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes the snapshot under key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
