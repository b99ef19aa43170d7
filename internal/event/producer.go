package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/domain"
	pkgkafka "github.com/nithishkannan87/AIM-FOOTWEAR/pkg/kafka"
)

// Kafka topics for storefront analytics events.
const (
	TopicCartUpdated     = "storefront.cart.updated"
	TopicCartCleared     = "storefront.cart.cleared"
	TopicWishlistUpdated = "storefront.wishlist.updated"
)

// Aggregate type constants.
const (
	AggregateTypeCart     = "cart"
	AggregateTypeWishlist = "wishlist"
)

// Source identifier for events originating from the storefront.
const SourceStorefront = "storefront"

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	Items     []CartLineData `json:"items"`
	ItemCount int            `json:"item_count"`
	Subtotal  int64          `json:"subtotal"`
}

// CartLineData is the line payload within cart events.
type CartLineData struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	SelectedSize int    `json:"selected_size"`
	Quantity     int    `json:"quantity"`
}

// WishlistUpdatedData is the payload for a wishlist.updated event.
type WishlistUpdatedData struct {
	ProductIDs []string `json:"product_ids"`
	Count      int      `json:"count"`
}

// Producer publishes storefront analytics events to Kafka. A nil Producer is
// valid and publishes nothing, so the library core runs without a broker.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new analytics event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishCartUpdated publishes a cart.updated event with the full cart snapshot.
func (p *Producer) PublishCartUpdated(ctx context.Context, items domain.CartItems) error {
	if p == nil {
		return nil
	}

	lines := make([]CartLineData, len(items))
	for i, item := range items {
		lines[i] = CartLineData{
			ProductID:    item.Product.ID,
			Name:         item.Name,
			Price:        item.Price,
			SelectedSize: item.SelectedSize,
			Quantity:     item.Quantity,
		}
	}

	data := CartUpdatedData{
		Items:     lines,
		ItemCount: items.ItemCount(),
		Subtotal:  items.Subtotal(),
	}

	event, err := pkgkafka.NewEvent(TopicCartUpdated, "cart", AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartUpdated, event); err != nil {
		return fmt.Errorf("publish cart.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.updated event",
		slog.Int("item_count", data.ItemCount),
	)

	return nil
}

// PublishCartCleared publishes a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context) error {
	if p == nil {
		return nil
	}

	event, err := pkgkafka.NewEvent(TopicCartCleared, "cart", AggregateTypeCart, SourceStorefront, struct{}{})
	if err != nil {
		return fmt.Errorf("create cart.cleared event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartCleared, event); err != nil {
		return fmt.Errorf("publish cart.cleared event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.cleared event")

	return nil
}

// PublishWishlistUpdated publishes a wishlist.updated event with the full membership.
func (p *Producer) PublishWishlistUpdated(ctx context.Context, productIDs []string) error {
	if p == nil {
		return nil
	}

	data := WishlistUpdatedData{
		ProductIDs: productIDs,
		Count:      len(productIDs),
	}

	event, err := pkgkafka.NewEvent(TopicWishlistUpdated, "wishlist", AggregateTypeWishlist, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create wishlist.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicWishlistUpdated, event); err != nil {
		return fmt.Errorf("publish wishlist.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published wishlist.updated event",
		slog.Int("count", data.Count),
	)

	return nil
}
