package order

import (
	"context"
	"errors"
	"testing"

	"watchstore/internal/domain"
	orderrepo "watchstore/internal/repository/order"
)

type stubRepo struct {
	created   *domain.Order
	createErr error
	lastEnv   orderrepo.Envelope
	lastLines []orderrepo.LineInput
	got       *domain.Order
	getErr    error
	list      []domain.Order
	listErr   error
}

func (s *stubRepo) Create(_ context.Context, env orderrepo.Envelope, lines []orderrepo.LineInput) (*domain.Order, error) {
	s.lastEnv = env
	s.lastLines = lines
	return s.created, s.createErr
}

func (s *stubRepo) GetByID(_ context.Context, _ int64) (*domain.Order, error) {
	return s.got, s.getErr
}

func (s *stubRepo) List(_ context.Context) ([]domain.Order, error) {
	return s.list, s.listErr
}

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

func validInput() PlaceInput {
	return PlaceInput{
		AccountID:       int64Ptr(1),
		ShippingAddress: "12 Canal Street",
		ContactNumber:   "555-0101",
		PaymentMethod:   "card",
		Items:           []ItemInput{{ProductID: int64Ptr(7), Quantity: intPtr(2)}},
	}
}

func TestPlaceEnvelopeValidation(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}

	cases := []struct {
		name   string
		mutate func(*PlaceInput)
	}{
		{"missing shipping address", func(in *PlaceInput) { in.ShippingAddress = "  " }},
		{"missing contact number", func(in *PlaceInput) { in.ContactNumber = "" }},
		{"missing payment method", func(in *PlaceInput) { in.PaymentMethod = "" }},
		{"empty items", func(in *PlaceInput) { in.Items = nil }},
		{"item without product", func(in *PlaceInput) { in.Items = []ItemInput{{Quantity: intPtr(1)}} }},
		{"non-positive quantity", func(in *PlaceInput) {
			in.Items = []ItemInput{{ProductID: int64Ptr(7), Quantity: intPtr(0)}}
		}},
	}

	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		_, err := svc.Place(context.Background(), in)
		var validationErr domain.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestPlaceDefaultsItemQuantityToOne(t *testing.T) {
	repo := &stubRepo{created: &domain.Order{ID: 1}}
	svc := &Service{repo: repo}

	in := validInput()
	in.Items = []ItemInput{{ProductID: int64Ptr(7)}}
	if _, err := svc.Place(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.lastLines) != 1 || repo.lastLines[0].Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %+v", repo.lastLines)
	}
}

func TestPlacePassesEnvelopeAndLines(t *testing.T) {
	repo := &stubRepo{created: &domain.Order{ID: 9}}
	svc := &Service{repo: repo}

	ref := "pay-123"
	in := validInput()
	in.PaymentReference = &ref
	in.Paid = true
	in.Items = append(in.Items, ItemInput{ProductID: int64Ptr(8), Quantity: intPtr(1)})

	got, err := svc.Place(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 9 {
		t.Fatalf("unexpected order %+v", got)
	}
	if repo.lastEnv.ShippingAddress != "12 Canal Street" || !repo.lastEnv.Paid {
		t.Fatalf("unexpected envelope %+v", repo.lastEnv)
	}
	if repo.lastEnv.PaymentReference == nil || *repo.lastEnv.PaymentReference != "pay-123" {
		t.Fatalf("expected payment reference, got %v", repo.lastEnv.PaymentReference)
	}
	if len(repo.lastLines) != 2 || repo.lastLines[1].ProductID != 8 {
		t.Fatalf("unexpected lines %+v", repo.lastLines)
	}
}

func TestPlaceInsufficientStockPassthrough(t *testing.T) {
	stockErr := &domain.InsufficientStockError{Title: "Chrono X", Available: 3, Requested: 5}
	svc := &Service{repo: &stubRepo{createErr: stockErr}}

	_, err := svc.Place(context.Background(), validInput())
	var got *domain.InsufficientStockError
	if !errors.As(err, &got) {
		t.Fatalf("expected insufficient stock error, got %v", err)
	}
	if got.Title != "Chrono X" || got.Available != 3 || got.Requested != 5 {
		t.Fatalf("unexpected error fields %+v", got)
	}
}

func TestPlaceGuestOrder(t *testing.T) {
	repo := &stubRepo{created: &domain.Order{ID: 2}}
	svc := &Service{repo: repo}

	in := validInput()
	in.AccountID = nil
	if _, err := svc.Place(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastEnv.AccountID != nil {
		t.Fatalf("expected guest envelope, got account %v", *repo.lastEnv.AccountID)
	}
}
