package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avansten/marketplace/internal/money"
	"github.com/avansten/marketplace/internal/product"
	"github.com/avansten/marketplace/internal/textutil"
)

const (
	maxNameLen    = 120
	maxEmailLen   = 200
	maxPhoneLen   = 60
	maxAddressLen = 400

	minQty = 1
	maxQty = 999
)

// CartItem is one entry of a checkout submission.
type CartItem struct {
	ProductID string
	Qty       int
}

// Checkout is the typed command built from a POST /api/orders body.
type Checkout struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	Items           []CartItem
}

// Builder validates cart submissions against the live catalog and turns
// them into persisted, immutable orders.
type Builder struct {
	products product.Repository
	orders   Repository

	now   func() time.Time
	newID func() string
}

func NewBuilder(products product.Repository, orders Repository) *Builder {
	return &Builder{
		products: products,
		orders:   orders,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Place runs the checkout: sanitize and require the customer fields,
// resolve every cart entry against the catalog, snapshot unit prices,
// accumulate the total at cent granularity, then prepend the new order to
// the orders document. Validation is all-or-nothing; a bad entry anywhere
// means no order is written.
func (b *Builder) Place(ctx context.Context, c Checkout) (*Order, error) {
	cust := Customer{
		Name:    textutil.Sanitize(c.CustomerName, maxNameLen),
		Email:   textutil.Sanitize(c.CustomerEmail, maxEmailLen),
		Phone:   textutil.Sanitize(c.CustomerPhone, maxPhoneLen),
		Address: textutil.Sanitize(c.CustomerAddress, maxAddressLen),
	}
	switch {
	case cust.Name == "":
		return nil, &MissingFieldError{Field: "customerName"}
	case cust.Email == "":
		return nil, &MissingFieldError{Field: "customerEmail"}
	case cust.Phone == "":
		return nil, &MissingFieldError{Field: "customerPhone"}
	case cust.Address == "":
		return nil, &MissingFieldError{Field: "customerAddress"}
	}

	if len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}

	catalog, _, err := b.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	byID := make(map[string]product.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	items := make([]LineItem, 0, len(c.Items))
	var total float64
	for _, it := range c.Items {
		if it.Qty < minQty || it.Qty > maxQty {
			return nil, &InvalidQuantityError{ProductID: it.ProductID, Qty: it.Qty}
		}
		p, ok := byID[it.ProductID]
		if !ok {
			return nil, &UnknownProductError{ProductID: it.ProductID}
		}

		unit, err := money.Normalize(p.Price)
		if err != nil {
			return nil, fmt.Errorf("normalize price of %s: %w", p.ID, err)
		}
		line := money.Line(unit, it.Qty)
		total = money.Add(total, line)

		items = append(items, LineItem{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: unit,
			Qty:       it.Qty,
			LineTotal: line,
		})
	}

	o := &Order{
		ID:        b.newID(),
		CreatedAt: b.now().UTC(),
		Status:    StatusNew,
		Customer:  cust,
		Items:     items,
		Total:     total,
	}
	if err := b.orders.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}
	return o, nil
}
