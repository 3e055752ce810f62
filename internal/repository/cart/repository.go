package cart

import (
	"context"

	"watchstore/internal/domain"
)

type UpsertInput struct {
	AccountID *int64
	ProductID int64
	Quantity  int
}

type Repository interface {
	// Upsert increments the matching unordered line or inserts a new one.
	// The second return value reports whether a new line was created.
	Upsert(ctx context.Context, in UpsertInput) (*domain.CartLine, bool, error)
	List(ctx context.Context, accountID *int64) ([]domain.CartLine, error)
	Delete(ctx context.Context, id int64) error
	ClearOrdered(ctx context.Context, accountID *int64) (int64, error)
}
