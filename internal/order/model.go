package order

import "time"

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// LineItem is a priced snapshot of one product taken at checkout time.
// Later edits or deletion of the product do not touch historical orders.
type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Qty       int     `json:"qty"`
	LineTotal float64 `json:"lineTotal"`
}

// Order is immutable after creation except for Status and the UpdatedAt
// stamp written alongside a status change.
type Order struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	Status    Status     `json:"status"`
	Customer  Customer   `json:"customer"`
	Items     []LineItem `json:"items"`
	Total     float64    `json:"total"`
}
