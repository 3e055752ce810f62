package cart

import (
	"context"
	"errors"
	"testing"

	"watchstore/internal/domain"
	cartrepo "watchstore/internal/repository/cart"
)

type stubRepo struct {
	upsertLine      *domain.CartLine
	upsertCreated   bool
	upsertErr       error
	lastUpsert      cartrepo.UpsertInput
	listLines       []domain.CartLine
	listErr         error
	deleteErr       error
	lastDeleteID    int64
	clearDeleted    int64
	clearErr        error
	lastClearOwner  *int64
	clearOwnerIsNil bool
}

func (s *stubRepo) Upsert(_ context.Context, in cartrepo.UpsertInput) (*domain.CartLine, bool, error) {
	s.lastUpsert = in
	return s.upsertLine, s.upsertCreated, s.upsertErr
}

func (s *stubRepo) List(_ context.Context, _ *int64) ([]domain.CartLine, error) {
	return s.listLines, s.listErr
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	s.lastDeleteID = id
	return s.deleteErr
}

func (s *stubRepo) ClearOrdered(_ context.Context, accountID *int64) (int64, error) {
	s.lastClearOwner = accountID
	s.clearOwnerIsNil = accountID == nil
	return s.clearDeleted, s.clearErr
}

type stubProductRepo struct {
	product *domain.Product
	err     error
	lastID  int64
}

func (s *stubProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	s.lastID = id
	return s.product, s.err
}

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

func TestUpsertRequiresProductID(t *testing.T) {
	svc := &Service{repo: &stubRepo{}, products: &stubProductRepo{}}
	_, _, err := svc.Upsert(context.Background(), UpsertInput{Quantity: intPtr(1)})
	var validationErr domain.ValidationError
	if !errors.As(err, &validationErr) || validationErr.Error() != "product_id is required" {
		t.Fatalf("expected product_id validation error, got %v", err)
	}
}

func TestUpsertRejectsNonPositiveQuantity(t *testing.T) {
	svc := &Service{repo: &stubRepo{}, products: &stubProductRepo{}}
	for _, quantity := range []int{0, -3} {
		_, _, err := svc.Upsert(context.Background(), UpsertInput{ProductID: int64Ptr(1), Quantity: intPtr(quantity)})
		var validationErr domain.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("quantity %d: expected validation error, got %v", quantity, err)
		}
	}
}

func TestUpsertDefaultsQuantityToOne(t *testing.T) {
	repo := &stubRepo{upsertLine: &domain.CartLine{ID: 1, ProductID: 7, Quantity: 1}, upsertCreated: true}
	products := &stubProductRepo{product: &domain.Product{ID: 7, Title: "Chrono X"}}
	svc := &Service{repo: repo, products: products}

	_, created, err := svc.Upsert(context.Background(), UpsertInput{ProductID: int64Ptr(7)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected created line")
	}
	if repo.lastUpsert.Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %d", repo.lastUpsert.Quantity)
	}
}

func TestUpsertProductNotFound(t *testing.T) {
	svc := &Service{repo: &stubRepo{}, products: &stubProductRepo{err: domain.ErrNotFound}}
	_, _, err := svc.Upsert(context.Background(), UpsertInput{ProductID: int64Ptr(99), Quantity: intPtr(1)})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpsertMergeAttachesProduct(t *testing.T) {
	product := &domain.Product{ID: 7, Title: "Chrono X", PriceCents: 10000}
	repo := &stubRepo{upsertLine: &domain.CartLine{ID: 3, ProductID: 7, Quantity: 5}}
	svc := &Service{repo: repo, products: &stubProductRepo{product: product}}

	line, created, err := svc.Upsert(context.Background(), UpsertInput{ProductID: int64Ptr(7), Quantity: intPtr(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatalf("expected merge, not create")
	}
	if line.Product == nil || line.Product.Title != "Chrono X" {
		t.Fatalf("expected product attached to line, got %+v", line.Product)
	}
	if repo.lastUpsert.ProductID != 7 || repo.lastUpsert.Quantity != 3 {
		t.Fatalf("unexpected upsert input %+v", repo.lastUpsert)
	}
}

func TestUpsertPassesOwner(t *testing.T) {
	repo := &stubRepo{upsertLine: &domain.CartLine{ID: 1}, upsertCreated: true}
	svc := &Service{repo: repo, products: &stubProductRepo{product: &domain.Product{ID: 7}}}

	_, _, err := svc.Upsert(context.Background(), UpsertInput{AccountID: int64Ptr(42), ProductID: int64Ptr(7), Quantity: intPtr(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastUpsert.AccountID == nil || *repo.lastUpsert.AccountID != 42 {
		t.Fatalf("expected account id 42, got %v", repo.lastUpsert.AccountID)
	}

	_, _, err = svc.Upsert(context.Background(), UpsertInput{ProductID: int64Ptr(7), Quantity: intPtr(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastUpsert.AccountID != nil {
		t.Fatalf("expected guest upsert, got account %v", *repo.lastUpsert.AccountID)
	}
}

func TestClearOrderedScoping(t *testing.T) {
	repo := &stubRepo{clearDeleted: 4}
	svc := &Service{repo: repo, products: &stubProductRepo{}}

	deleted, err := svc.ClearOrdered(context.Background(), int64Ptr(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 4 {
		t.Fatalf("expected 4 deleted, got %d", deleted)
	}
	if repo.lastClearOwner == nil || *repo.lastClearOwner != 42 {
		t.Fatalf("expected owner 42, got %v", repo.lastClearOwner)
	}

	if _, err := svc.ClearOrdered(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.clearOwnerIsNil {
		t.Fatalf("expected unscoped clear")
	}
}

func TestUpsertRepoError(t *testing.T) {
	repo := &stubRepo{upsertErr: errors.New("boom")}
	svc := &Service{repo: repo, products: &stubProductRepo{product: &domain.Product{ID: 7}}}
	_, _, err := svc.Upsert(context.Background(), UpsertInput{ProductID: int64Ptr(7), Quantity: intPtr(1)})
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected repo error, got %v", err)
	}
}
