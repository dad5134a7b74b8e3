package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/cache"
	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/domain"
	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/repository"
	"golang.org/x/sync/singleflight"
)

// ProductCatalog is the read-only view of the catalog the cart needs:
// resolving a product reference into its display fields.
type ProductCatalog interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
}

type CartService struct {
	carts    repository.CartRepository
	products ProductCatalog
	cache    cache.CartCache
	sfg      singleflight.Group // Prevents cache stampede
}

func NewCartService(carts repository.CartRepository, products ProductCatalog, cartCache cache.CartCache) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		cache:    cartCache,
	}
}

// GetCart returns the owner's cart, or an empty cart when none is
// stored. Absence is a valid default state, never an error.
func (s *CartService) GetCart(ctx context.Context, ownerID string) (*domain.Cart, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}

	// Use singleflight to collapse concurrent cache misses for the same owner
	v, err, _ := s.sfg.Do(ownerID, func() (interface{}, error) {
		cart, err := s.cache.Get(ctx, ownerID)
		if err == nil {
			return cart, nil
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cart cache get error: %v", err) // degraded, keep serving from the repo
		}

		cart, err = s.carts.GetCart(ctx, ownerID)
		if errors.Is(err, repository.ErrCartNotFound) {
			return domain.EmptyCart(ownerID), nil
		}
		if err != nil {
			return nil, err
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := s.cache.Set(ctx, ownerID, cart); err != nil {
				log.Printf("cart cache set error: %v", err)
			}
		}()

		return cart, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Cart), nil
}

// AddItem puts quantity units of a product into the owner's cart. The
// cart is created lazily on first add. When the product is already in
// the cart the quantity accumulates; otherwise a new line is appended
// with name, price and image snapshotted from the catalog. Returns the
// cart exactly as persisted.
func (s *CartService) AddItem(ctx context.Context, ownerID, productID string, quantity int) (*domain.Cart, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	if productID == "" {
		return nil, ErrInvalidProduct
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	item := domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
		ImageURL:  product.ImageURL,
	}

	if err := s.carts.AddItem(ctx, ownerID, item); err != nil {
		return nil, err
	}

	return s.reload(ctx, ownerID)
}

// UpdateQuantity sets the item's quantity to exactly the given value.
// Quantities below one are rejected rather than treated as removal;
// callers that want the item gone use RemoveItem.
func (s *CartService) UpdateQuantity(ctx context.Context, ownerID, productID string, quantity int) (*domain.Cart, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	if productID == "" {
		return nil, ErrInvalidProduct
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	if err := s.carts.SetItemQuantity(ctx, ownerID, productID, quantity); err != nil {
		return nil, err
	}

	return s.reload(ctx, ownerID)
}

// RemoveItem removes the product's line from the cart. The cart itself
// survives, possibly empty.
func (s *CartService) RemoveItem(ctx context.Context, ownerID, productID string) (*domain.Cart, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	if productID == "" {
		return nil, ErrInvalidProduct
	}

	if err := s.carts.RemoveItem(ctx, ownerID, productID); err != nil {
		return nil, err
	}

	return s.reload(ctx, ownerID)
}

// RefreshPrices re-resolves every line against the catalog and rewrites
// the stored snapshots. Lines whose product vanished from the catalog
// keep their old snapshot. Refreshing an absent cart is a no-op that
// returns the empty cart.
func (s *CartService) RefreshPrices(ctx context.Context, ownerID string) (*domain.Cart, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}

	cart, err := s.carts.GetCart(ctx, ownerID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return domain.EmptyCart(ownerID), nil
	}
	if err != nil {
		return nil, err
	}

	for i, item := range cart.Items {
		product, err := s.products.Get(ctx, item.ProductID)
		if errors.Is(err, repository.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		cart.Items[i].Name = product.Name
		cart.Items[i].Price = product.Price
		cart.Items[i].ImageURL = product.ImageURL
	}

	if err := s.carts.ReplaceItems(ctx, ownerID, cart.Items); err != nil {
		return nil, err
	}

	return s.reload(ctx, ownerID)
}

// reload invalidates the cached cart and reads back the persisted state,
// so mutating calls always return exactly what was stored. The fresh
// state is re-cached under its updated_at version; a stale fill from a
// concurrent read carries an older version and loses against it.
func (s *CartService) reload(ctx context.Context, ownerID string) (*domain.Cart, error) {
	s.invalidate(ownerID)

	cart, err := s.carts.GetCart(ctx, ownerID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return domain.EmptyCart(ownerID), nil
	}
	if err != nil {
		return nil, err
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := s.cache.Set(ctx, ownerID, cart); err != nil {
			log.Printf("cart cache set error: %v", err)
		}
	}()

	return cart, nil
}

func (s *CartService) invalidate(ownerID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, ownerID); err != nil {
		log.Printf("cart cache invalidate error: %v", err)
	}
}
