package store

import "context"

// Store is the durable key-value snapshot store the state containers persist
// to. Each container owns one fixed key and overwrites it wholesale on every
// mutation.
type Store interface {
	// Get retrieves the value stored under key. Returns an error wrapping
	// errors.ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes the value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Absent keys are not an error.
	Delete(ctx context.Context, key string) error
}
