package events

import (
	"context"

	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/domain"
)

// OrderPublisher announces placed orders to downstream consumers.
// Publishing is best effort; callers must not fail a checkout on a
// publish error.
type OrderPublisher interface {
	PublishOrderCreated(ctx context.Context, order *domain.Order) error
	Close() error
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderCreated(context.Context, *domain.Order) error { return nil }
func (NoopPublisher) Close() error                                             { return nil }
