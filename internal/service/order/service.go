package order

import (
	"context"
	"strings"

	"watchstore/internal/domain"
	orderrepo "watchstore/internal/repository/order"
)

type Service struct {
	repo orderRepo
}

type orderRepo interface {
	Create(ctx context.Context, env orderrepo.Envelope, lines []orderrepo.LineInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

type PlaceInput struct {
	AccountID        *int64      `json:"user"`
	ShippingAddress  string      `json:"shipping_address"`
	ContactNumber    string      `json:"contact_number"`
	PaymentMethod    string      `json:"payment_method"`
	PaymentReference *string     `json:"payment_reference"`
	Paid             bool        `json:"is_paid"`
	Items            []ItemInput `json:"items"`
}

type ItemInput struct {
	ProductID *int64 `json:"product_id"`
	Quantity  *int   `json:"quantity"`
}

// Place validates the envelope and items and hands the whole request to the
// repository, which performs the stock check and decrement atomically.
func (s *Service) Place(ctx context.Context, in PlaceInput) (*domain.Order, error) {
	if strings.TrimSpace(in.ShippingAddress) == "" {
		return nil, domain.ValidationError("shipping_address is required")
	}
	if strings.TrimSpace(in.ContactNumber) == "" {
		return nil, domain.ValidationError("contact_number is required")
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return nil, domain.ValidationError("payment_method is required")
	}
	if len(in.Items) == 0 {
		return nil, domain.ValidationError("items must not be empty")
	}

	lines := make([]orderrepo.LineInput, 0, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == nil {
			return nil, domain.ValidationError("product_id is required for every item")
		}
		quantity := 1
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		if quantity <= 0 {
			return nil, domain.ValidationError("quantity must be a positive integer")
		}
		lines = append(lines, orderrepo.LineInput{ProductID: *item.ProductID, Quantity: quantity})
	}

	return s.repo.Create(ctx, orderrepo.Envelope{
		AccountID:        in.AccountID,
		ShippingAddress:  in.ShippingAddress,
		ContactNumber:    in.ContactNumber,
		PaymentMethod:    in.PaymentMethod,
		PaymentReference: in.PaymentReference,
		Paid:             in.Paid,
	}, lines)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}
