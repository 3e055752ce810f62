package catalog

import (
	"context"

	"watchstore/internal/domain"
	brandrepo "watchstore/internal/repository/brand"
	productrepo "watchstore/internal/repository/product"
)

type Service struct {
	products productrepo.Repository
	brands   brandrepo.Repository
}

func New(products productrepo.Repository, brands brandrepo.Repository) *Service {
	return &Service{products: products, brands: brands}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *Service) ListBrands(ctx context.Context) ([]brandrepo.BrandWithCount, error) {
	return s.brands.List(ctx)
}
