package model

import "errors"

// Custom errors for cart operations
var (
	ErrInvalidQuantity = errors.New("quantity must be >= 1")
	ErrInvalidPrice    = errors.New("price must be >= 0")
	ErrInvalidDiscount = errors.New("discount must be between 0 and 100")
	ErrLineNotFound    = errors.New("cart line not found")
	ErrEmptyCart       = errors.New("cart is empty")
)
