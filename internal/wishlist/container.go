package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/event"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/store"
	apperrors "github.com/nithishkannan87/AIM-FOOTWEAR/pkg/errors"
)

// StorageKey is the fixed snapshot key the wishlist persists under.
const StorageKey = "storefront:wishlist"

// Container owns the set of wishlisted product IDs and the open/closed UI
// flag. Set semantics with insertion order preserved. Safe for concurrent
// use. Persistence follows the same snapshot contract as the cart; unlike
// the cart, mutations never auto-open the flag.
type Container struct {
	mu  sync.RWMutex
	ids []string

	open bool

	kv       store.Store
	producer *event.Producer
	logger   *slog.Logger
}

// NewContainer creates a wishlist container and restores its snapshot from
// the store. A missing, unreadable, or malformed snapshot yields an empty
// wishlist, never an error.
func NewContainer(ctx context.Context, kv store.Store, producer *event.Producer, logger *slog.Logger) *Container {
	c := &Container{
		ids:      []string{},
		kv:       kv,
		producer: producer,
		logger:   logger,
	}
	c.restore(ctx)
	return c
}

func (c *Container) restore(ctx context.Context) {
	data, err := c.kv.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			c.logger.WarnContext(ctx, "failed to read wishlist snapshot, starting empty",
				slog.String("error", err.Error()),
			)
		}
		return
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		c.logger.WarnContext(ctx, "discarding malformed wishlist snapshot",
			slog.String("error", err.Error()),
		)
		return
	}

	// Restored snapshots may carry duplicates; the container holds a set.
	seen := make(map[string]struct{}, len(ids))
	restored := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		restored = append(restored, id)
	}
	c.ids = restored

	c.logger.InfoContext(ctx, "wishlist restored", slog.Int("count", len(c.ids)))
}

// Add inserts the product ID if absent. Idempotent.
func (c *Container) Add(ctx context.Context, productID string) {
	c.mu.Lock()
	if c.indexLocked(productID) >= 0 {
		c.mu.Unlock()
		return
	}
	c.ids = append(c.ids, productID)
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.persist(ctx, snapshot)
	c.publishUpdated(ctx, snapshot)

	c.logger.InfoContext(ctx, "product added to wishlist",
		slog.String("product_id", productID),
	)
}

// Remove deletes the product ID if present. No-op otherwise.
func (c *Container) Remove(ctx context.Context, productID string) {
	c.mu.Lock()
	i := c.indexLocked(productID)
	if i < 0 {
		c.mu.Unlock()
		return
	}
	c.ids = append(c.ids[:i], c.ids[i+1:]...)
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.persist(ctx, snapshot)
	c.publishUpdated(ctx, snapshot)

	c.logger.InfoContext(ctx, "product removed from wishlist",
		slog.String("product_id", productID),
	)
}

// Toggle removes the product ID if present, else adds it.
func (c *Container) Toggle(ctx context.Context, productID string) {
	if c.Contains(productID) {
		c.Remove(ctx, productID)
	} else {
		c.Add(ctx, productID)
	}
}

// Contains reports whether the product ID is wishlisted.
func (c *Container) Contains(productID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.indexLocked(productID) >= 0
}

// Clear empties the wishlist.
func (c *Container) Clear(ctx context.Context) {
	c.mu.Lock()
	c.ids = []string{}
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.persist(ctx, snapshot)
	c.publishUpdated(ctx, snapshot)

	c.logger.InfoContext(ctx, "wishlist cleared")
}

// IDs returns a copy of the wishlisted product IDs in insertion order.
func (c *Container) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

// Count returns the wishlist cardinality.
func (c *Container) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ids)
}

// IsOpen reports the wishlist UI flag.
func (c *Container) IsOpen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.open
}

// SetOpen sets the wishlist UI flag.
func (c *Container) SetOpen(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = open
}

func (c *Container) indexLocked(productID string) int {
	for i, id := range c.ids {
		if id == productID {
			return i
		}
	}
	return -1
}

func (c *Container) snapshotLocked() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

func (c *Container) persist(ctx context.Context, ids []string) {
	data, err := json.Marshal(ids)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to marshal wishlist snapshot",
			slog.String("error", err.Error()),
		)
		return
	}

	if err := c.kv.Set(ctx, StorageKey, data); err != nil {
		c.logger.ErrorContext(ctx, "failed to persist wishlist snapshot",
			slog.String("error", err.Error()),
		)
	}
}

func (c *Container) publishUpdated(ctx context.Context, ids []string) {
	if err := c.producer.PublishWishlistUpdated(ctx, ids); err != nil {
		c.logger.ErrorContext(ctx, "failed to publish wishlist.updated event",
			slog.String("error", err.Error()),
		)
	}
}
