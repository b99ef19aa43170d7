package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/domain"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/event"
	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/store"
	apperrors "github.com/nithishkannan87/AIM-FOOTWEAR/pkg/errors"
)

// StorageKey is the fixed snapshot key the cart persists under.
const StorageKey = "storefront:cart"

// Container owns the cart line items, their mutation rules, and the open/closed
// UI flag. It is created once by the composition root and passed to consumers;
// there are no package-level singletons. Safe for concurrent use.
//
// Every mutation rewrites the whole snapshot to the store. Writes are
// fire-and-forget: failures are logged, never returned, and the in-memory
// state stays authoritative.
type Container struct {
	mu    sync.RWMutex
	items domain.CartItems
	open  bool

	kv       store.Store
	producer *event.Producer
	logger   *slog.Logger
}

// NewContainer creates a cart container and restores its snapshot from the
// store. A missing, unreadable, or malformed snapshot yields an empty cart,
// never an error.
func NewContainer(ctx context.Context, kv store.Store, producer *event.Producer, logger *slog.Logger) *Container {
	c := &Container{
		items:    domain.CartItems{},
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
			c.logger.WarnContext(ctx, "failed to read cart snapshot, starting empty",
				slog.String("error", err.Error()),
			)
		}
		return
	}

	var items domain.CartItems
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.WarnContext(ctx, "discarding malformed cart snapshot",
			slog.String("error", err.Error()),
		)
		return
	}

	// Drop any lines a corrupted snapshot could have left with a
	// non-positive quantity; the container never holds such a line.
	restored := make(domain.CartItems, 0, len(items))
	for _, item := range items {
		if item.Quantity > 0 {
			restored = append(restored, item)
		}
	}
	c.items = restored

	c.logger.InfoContext(ctx, "cart restored",
		slog.Int("lines", len(c.items)),
		slog.Int("item_count", c.items.ItemCount()),
	)
}

// Add puts one unit of the product in the given size into the cart. If a line
// with the same (product id, size) key exists its quantity is incremented by
// one; otherwise a new line is appended, capturing the product fields as they
// are now. Adding always opens the cart flag.
//
// A size outside the product's available sizes is rejected with an
// invalid-selection error rather than silently accepted.
func (c *Container) Add(ctx context.Context, product domain.Product, size int) error {
	if !product.HasSize(size) {
		return apperrors.InvalidSelection(
			fmt.Sprintf("size %d is not available for product %s", size, product.ID),
		)
	}

	c.mu.Lock()
	key := domain.CartKey{ProductID: product.ID, Size: size}
	if i := c.items.FindIndex(key); i >= 0 {
		c.items[i].Quantity++
	} else {
		c.items = append(c.items, domain.CartItem{
			Product:      product,
			SelectedSize: size,
			Quantity:     1,
		})
	}
	c.open = true
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.persist(ctx, snapshot)
	c.publishUpdated(ctx, snapshot)

	c.logger.InfoContext(ctx, "item added to cart",
		slog.String("product_id", product.ID),
		slog.Int("size", size),
	)

	return nil
}

// Remove deletes the line matching (productID, size). Removing an absent line
// is a no-op, not an error.
func (c *Container) Remove(ctx context.Context, productID string, size int) {
	c.mu.Lock()
	key := domain.CartKey{ProductID: productID, Size: size}
	i := c.items.FindIndex(key)
	if i < 0 {
		c.mu.Unlock()
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.persist(ctx, snapshot)
	c.publishUpdated(ctx, snapshot)

	c.logger.InfoContext(ctx, "item removed from cart",
		slog.String("product_id", productID),
		slog.Int("size", size),
	)
}

// UpdateQuantity sets the line's quantity to the given absolute value. A
// quantity of zero or less removes the line. Updating an absent line is a
// no-op.
func (c *Container) UpdateQuantity(ctx context.Context, productID string, size, quantity int) {
	if quantity <= 0 {
		c.Remove(ctx, productID, size)
		return
	}

	c.mu.Lock()
	key := domain.CartKey{ProductID: productID, Size: size}
	i := c.items.FindIndex(key)
	if i < 0 {
		c.mu.Unlock()
		return
	}
	c.items[i].Quantity = quantity
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.persist(ctx, snapshot)
	c.publishUpdated(ctx, snapshot)

	c.logger.InfoContext(ctx, "cart line quantity updated",
		slog.String("product_id", productID),
		slog.Int("size", size),
		slog.Int("quantity", quantity),
	)
}

// Clear empties the cart.
func (c *Container) Clear(ctx context.Context) {
	c.mu.Lock()
	c.items = domain.CartItems{}
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.persist(ctx, snapshot)

	if err := c.producer.PublishCartCleared(ctx); err != nil {
		c.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("error", err.Error()),
		)
	}

	c.logger.InfoContext(ctx, "cart cleared")
}

// Items returns a copy of the current cart lines in insertion order.
func (c *Container) Items() domain.CartItems {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

// ItemCount returns the sum of quantities across all lines.
func (c *Container) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items.ItemCount()
}

// Subtotal returns the sum of price*quantity across all lines, in whole rupees.
func (c *Container) Subtotal() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items.Subtotal()
}

// IsOpen reports the cart UI flag.
func (c *Container) IsOpen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.open
}

// SetOpen sets the cart UI flag. Independent of item mutations, except that
// Add forces it true.
func (c *Container) SetOpen(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = open
}

// snapshotLocked copies the line list; callers must hold the mutex.
func (c *Container) snapshotLocked() domain.CartItems {
	out := make(domain.CartItems, len(c.items))
	copy(out, c.items)
	return out
}

// persist writes the whole snapshot under the fixed key. Last write wins.
func (c *Container) persist(ctx context.Context, items domain.CartItems) {
	data, err := json.Marshal(items)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to marshal cart snapshot",
			slog.String("error", err.Error()),
		)
		return
	}

	if err := c.kv.Set(ctx, StorageKey, data); err != nil {
		c.logger.ErrorContext(ctx, "failed to persist cart snapshot",
			slog.String("error", err.Error()),
		)
	}
}

func (c *Container) publishUpdated(ctx context.Context, items domain.CartItems) {
	if err := c.producer.PublishCartUpdated(ctx, items); err != nil {
		c.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("error", err.Error()),
		)
	}
}
