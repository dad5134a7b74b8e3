package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/cache"
	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/domain"
	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/events"
	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/repository"
	"github.com/google/uuid"
)

type OrderService struct {
	orders    repository.OrderRepository
	carts     repository.CartRepository
	cache     cache.CartCache
	publisher events.OrderPublisher
}

func NewOrderService(orders repository.OrderRepository, carts repository.CartRepository, cartCache cache.CartCache, publisher events.OrderPublisher) *OrderService {
	return &OrderService{
		orders:    orders,
		carts:     carts,
		cache:     cartCache,
		publisher: publisher,
	}
}

// PlaceOrder converts the supplied cart lines into an immutable order
// and clears the owner's stored cart. The total is recomputed from the
// items server-side; the client-supplied value is not trusted. Order
// creation is the commit point: the cart clear that follows is
// idempotent, so a failed clear leaves a placed order and a cart the
// owner can still clear independently.
func (s *OrderService) PlaceOrder(ctx context.Context, ownerID string, items []domain.OrderItem, totalAmount float64) (*domain.Order, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	if totalAmount <= 0 {
		return nil, ErrMissingTotal
	}

	var total float64
	for _, item := range items {
		if item.ProductID == "" {
			return nil, ErrInvalidProduct
		}
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		total += item.Subtotal()
	}

	order := &domain.Order{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Items:       items,
		TotalAmount: total,
		CreatedAt:   time.Now(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.carts.DeleteCart(ctx, ownerID); err != nil && !errors.Is(err, repository.ErrCartNotFound) {
		// The order is already placed; do not fail the checkout. The
		// clear is idempotent and the cart can still be emptied via the
		// cart endpoints.
		log.Printf("failed to clear cart for owner %s after order %s: %v", ownerID, order.ID, err)
	}
	s.invalidateCart(ownerID)

	if err := s.publisher.PublishOrderCreated(ctx, order); err != nil {
		log.Printf("failed to publish order created event for order %s: %v", order.ID, err)
	}

	return order, nil
}

// ListOrders returns the owner's order history, newest first.
func (s *OrderService) ListOrders(ctx context.Context, ownerID string) ([]*domain.Order, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	return s.orders.ListByOwner(ctx, ownerID)
}

func (s *OrderService) invalidateCart(ownerID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, ownerID); err != nil {
		log.Printf("cart cache invalidate error: %v", err)
	}
}
