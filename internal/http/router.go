package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterConfig struct {
	RequestTimeout time.Duration
	CORSOrigins    []string
}

// NewRouter wires handlers and middleware into the HTTP surface.
// Catalog and auth routes are public; cart and order routes require a
// bearer token matching the addressed owner.
func NewRouter(
	cfg RouterConfig,
	verifier TokenVerifier,
	cart *CartHandler,
	orders *OrderHandler,
	products *ProductHandler,
	auth *AuthHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(CORS(cfg.CORSOrigins))
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/products", products.List)
	r.Get("/products/{id}", products.Get)

	r.Post("/auth/register", auth.Register)
	r.Post("/auth/login", auth.Login)

	r.Group(func(r chi.Router) {
		r.Use(Authenticator(verifier))

		r.Route("/cart", func(r chi.Router) {
			r.Post("/", cart.AddItem)
			r.Get("/{ownerId}", cart.GetCart)
			r.Post("/{ownerId}/refresh", cart.RefreshPrices)
			r.Put("/{ownerId}/{productId}", cart.UpdateQuantity)
			r.Delete("/{ownerId}/{productId}", cart.RemoveItem)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orders.PlaceOrder)
			r.Get("/{ownerId}", orders.ListOrders)
		})
	})

	return r
}
