package product

import (
	"errors"

	"github.com/google/uuid"

	"github.com/avansten/marketplace/internal/money"
	"github.com/avansten/marketplace/internal/textutil"
)

const (
	maxNameLen        = 120
	maxLogoLen        = 600
	maxDescriptionLen = 2000
)

// ErrInvalidFields is returned when a create or edit would leave the
// product without a name or with a price that is negative or not a number.
var ErrInvalidFields = errors.New("invalid product fields")

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Logo        string  `json:"logo"`
	Description string  `json:"description"`
}

// New sanitizes the raw fields, normalizes the price to cents and assigns a
// fresh id.
func New(name string, price float64, logo, description string) (Product, error) {
	p := Product{
		ID:          uuid.NewString(),
		Name:        textutil.Sanitize(name, maxNameLen),
		Logo:        textutil.Sanitize(logo, maxLogoLen),
		Description: textutil.Sanitize(description, maxDescriptionLen),
	}
	norm, err := money.Normalize(price)
	if err != nil || norm < 0 || p.Name == "" {
		return Product{}, ErrInvalidFields
	}
	p.Price = norm
	return p, nil
}

// Update carries a partial edit. Nil fields keep their current values.
type Update struct {
	Name        *string
	Price       *float64
	Logo        *string
	Description *string
}

// Apply returns a copy of p with the update merged in, re-running the same
// sanitization and validation as New. The id never changes.
func (p Product) Apply(u Update) (Product, error) {
	if u.Name != nil {
		p.Name = textutil.Sanitize(*u.Name, maxNameLen)
	}
	if u.Logo != nil {
		p.Logo = textutil.Sanitize(*u.Logo, maxLogoLen)
	}
	if u.Description != nil {
		p.Description = textutil.Sanitize(*u.Description, maxDescriptionLen)
	}
	if u.Price != nil {
		norm, err := money.Normalize(*u.Price)
		if err != nil || norm < 0 {
			return Product{}, ErrInvalidFields
		}
		p.Price = norm
	}
	if p.Name == "" {
		return Product{}, ErrInvalidFields
	}
	return p, nil
}
