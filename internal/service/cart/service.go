package cart

import (
	"context"

	"watchstore/internal/domain"
	cartrepo "watchstore/internal/repository/cart"
)

type Service struct {
	repo     cartRepo
	products productRepo
}

type cartRepo interface {
	Upsert(ctx context.Context, in cartrepo.UpsertInput) (*domain.CartLine, bool, error)
	List(ctx context.Context, accountID *int64) ([]domain.CartLine, error)
	Delete(ctx context.Context, id int64) error
	ClearOrdered(ctx context.Context, accountID *int64) (int64, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

func New(repo cartrepo.Repository, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

type UpsertInput struct {
	AccountID *int64 `json:"user"`
	ProductID *int64 `json:"product_id"`
	Quantity  *int   `json:"quantity"`
}

// Upsert merges the request into an existing unordered line for the same
// (account-or-guest, product) pair, or creates a new one. Stock is not
// touched here; the check happens at order placement.
func (s *Service) Upsert(ctx context.Context, in UpsertInput) (*domain.CartLine, bool, error) {
	if in.ProductID == nil {
		return nil, false, domain.ValidationError("product_id is required")
	}
	quantity := 1
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	if quantity <= 0 {
		return nil, false, domain.ValidationError("quantity must be a positive integer")
	}

	product, err := s.products.GetByID(ctx, *in.ProductID)
	if err != nil {
		return nil, false, err
	}

	line, created, err := s.repo.Upsert(ctx, cartrepo.UpsertInput{
		AccountID: in.AccountID,
		ProductID: product.ID,
		Quantity:  quantity,
	})
	if err != nil {
		return nil, false, err
	}
	line.Product = product
	return line, created, nil
}

func (s *Service) List(ctx context.Context, accountID *int64) ([]domain.CartLine, error) {
	return s.repo.List(ctx, accountID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ClearOrdered deletes already-ordered lines, scoped to the account when one
// is given, otherwise across all owners.
func (s *Service) ClearOrdered(ctx context.Context, accountID *int64) (int64, error) {
	return s.repo.ClearOrdered(ctx, accountID)
}
