package service

import "errors"

var (
	ErrInvalidOwner       = errors.New("owner id is required")
	ErrInvalidProduct     = errors.New("product id is required")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrMissingTotal       = errors.New("total amount is required")
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
