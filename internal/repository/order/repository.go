package order

import (
	"context"

	"watchstore/internal/domain"
)

// Envelope carries the non-item fields of an order placement request.
type Envelope struct {
	AccountID        *int64
	ShippingAddress  string
	ContactNumber    string
	PaymentMethod    string
	PaymentReference *string
	Paid             bool
}

type LineInput struct {
	ProductID int64
	Quantity  int
}

type Repository interface {
	// Create places the order atomically: every line's stock is checked and
	// decremented and every order line inserted in one transaction, or
	// nothing is persisted at all.
	Create(ctx context.Context, env Envelope, lines []LineInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}
