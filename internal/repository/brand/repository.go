package brand

import (
	"context"

	"watchstore/internal/domain"
)

// BrandWithCount pairs a brand with the number of products it owns, for the
// operator-facing brand listing.
type BrandWithCount struct {
	domain.Brand
	ProductCount int `json:"product_count"`
}

type Repository interface {
	List(ctx context.Context) ([]BrandWithCount, error)
	GetByID(ctx context.Context, id int64) (*domain.Brand, error)
}
