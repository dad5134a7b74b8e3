package repository

import (
	"context"
	"errors"

	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/domain"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("item not found in cart")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
)

// CartRepository defines the interface for cart data operations.
// Consumers define this interface, not the MongoDB implementation.
type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (*domain.Cart, error)
	// AddItem accumulates quantity when the product is already in the
	// cart, appends the item otherwise, and creates the cart lazily on
	// first add. The whole operation is atomic at the storage layer.
	AddItem(ctx context.Context, ownerID string, item domain.CartItem) error
	SetItemQuantity(ctx context.Context, ownerID, productID string, quantity int) error
	RemoveItem(ctx context.Context, ownerID, productID string) error
	ReplaceItems(ctx context.Context, ownerID string, items []domain.CartItem) error
	DeleteCart(ctx context.Context, ownerID string) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Order, error)
}

type ProductRepository interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, products []domain.Product) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id string) error
}
