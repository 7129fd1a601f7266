package order

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrInvalidStatus = errors.New("invalid status")
	ErrNotFound      = errors.New("order not found")
)

// MissingFieldError reports which required customer field was empty after
// sanitization, so the storefront can highlight the exact input.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

// InvalidQuantityError reports a cart entry whose quantity is outside 1..999.
type InvalidQuantityError struct {
	ProductID string
	Qty       int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %d for product %s", e.Qty, e.ProductID)
}

// UnknownProductError reports a cart entry whose product id is not in the
// catalog.
type UnknownProductError struct {
	ProductID string
}

func (e *UnknownProductError) Error() string {
	return "product not found: " + e.ProductID
}

// IsValidation reports whether err is one of the checkout validation
// failures a client can fix (as opposed to an internal failure).
func IsValidation(err error) bool {
	var mf *MissingFieldError
	var iq *InvalidQuantityError
	var up *UnknownProductError
	return errors.Is(err, ErrEmptyCart) ||
		errors.As(err, &mf) ||
		errors.As(err, &iq) ||
		errors.As(err, &up)
}
