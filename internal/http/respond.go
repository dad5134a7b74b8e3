package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/repository"
	"github.com/KarthikNatarajan321/Furniture-sale-E-Commerce/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleServiceError maps domain and service errors onto the HTTP error
// taxonomy: invalid input → 400, unknown product/cart/item → 404,
// duplicate registration → 409, everything else → 500.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidOwner),
		errors.Is(err, service.ErrInvalidProduct),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrEmptyOrder),
		errors.Is(err, service.ErrMissingTotal),
		errors.Is(err, service.ErrMissingFields):
		respondError(w, http.StatusBadRequest, "invalid_argument", err.Error())

	case errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrCartNotFound),
		errors.Is(err, repository.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())

	case errors.Is(err, repository.ErrEmailTaken):
		respondError(w, http.StatusConflict, "conflict", err.Error())

	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "unauthenticated", err.Error())

	default:
		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
