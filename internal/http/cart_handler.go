package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/domain"
	"github.com/go-chi/chi/v5"
)

// CartAPI is the slice of the cart service the handlers need.
type CartAPI interface {
	GetCart(ctx context.Context, ownerID string) (*domain.Cart, error)
	AddItem(ctx context.Context, ownerID, productID string, quantity int) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, ownerID, productID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, ownerID, productID string) (*domain.Cart, error)
	RefreshPrices(ctx context.Context, ownerID string) (*domain.Cart, error)
}

type CartHandler struct {
	cart    CartAPI
	timeout time.Duration
}

func NewCartHandler(cart CartAPI, timeout time.Duration) *CartHandler {
	return &CartHandler{
		cart:    cart,
		timeout: timeout,
	}
}

type AddItemRequestDTO struct {
	OwnerID   string `json:"ownerId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	ownerID := chi.URLParam(r, "ownerId")
	if !requireOwner(w, r, ownerID) {
		return
	}

	cart, err := h.cart.GetCart(ctx, ownerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if !requireOwner(w, r, req.OwnerID) {
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "productId is required")
		return
	}
	if req.Quantity < 1 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be a positive integer")
		return
	}

	cart, err := h.cart.AddItem(ctx, req.OwnerID, req.ProductID, req.Quantity)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, cart)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	ownerID := chi.URLParam(r, "ownerId")
	productID := chi.URLParam(r, "productId")
	if !requireOwner(w, r, ownerID) {
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.Quantity < 1 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be a positive integer")
		return
	}

	cart, err := h.cart.UpdateQuantity(ctx, ownerID, productID, req.Quantity)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	ownerID := chi.URLParam(r, "ownerId")
	productID := chi.URLParam(r, "productId")
	if !requireOwner(w, r, ownerID) {
		return
	}

	cart, err := h.cart.RemoveItem(ctx, ownerID, productID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) RefreshPrices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	ownerID := chi.URLParam(r, "ownerId")
	if !requireOwner(w, r, ownerID) {
		return
	}

	cart, err := h.cart.RefreshPrices(ctx, ownerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cart)
}
