package service

import (
	"context"
	"log"

	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/domain"
	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/repository"
)

type ProductService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, ErrInvalidProduct
	}
	return s.products.Get(ctx, id)
}

// Seed inserts the demo catalog when the collection is empty.
func (s *ProductService) Seed(ctx context.Context) error {
	count, err := s.products.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := s.products.InsertMany(ctx, seedProducts()); err != nil {
		return err
	}

	log.Printf("seeded %d products", len(seedProducts()))
	return nil
}
