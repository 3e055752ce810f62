package domain

import "time"

type Order struct {
	ID               int64       `json:"id"`
	AccountID        *int64      `json:"user"`
	ShippingAddress  string      `json:"shipping_address"`
	ContactNumber    string      `json:"contact_number"`
	PaymentMethod    string      `json:"payment_method"`
	PaymentReference *string     `json:"payment_reference"`
	Paid             bool        `json:"is_paid"`
	CreatedAt        time.Time   `json:"created_at"`
	Lines            []OrderLine `json:"items"`
}

// OrderLine is immutable once created. The referenced product cannot be
// deleted while the line exists.
type OrderLine struct {
	ID        int64    `json:"id"`
	OrderID   int64    `json:"-"`
	ProductID int64    `json:"-"`
	Product   *Product `json:"product,omitempty"`
	Quantity  int      `json:"quantity"`
}
