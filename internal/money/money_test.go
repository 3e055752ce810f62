package money

import "testing"

func TestFromCents(t *testing.T) {
	if got := String(FromCents(10000)); got != "100.00" {
		t.Fatalf("expected 100.00, got %s", got)
	}
	if got := String(FromCents(99)); got != "0.99" {
		t.Fatalf("expected 0.99, got %s", got)
	}
	if got := String(FromCents(0)); got != "0.00" {
		t.Fatalf("expected 0.00, got %s", got)
	}
}

func TestSubtotal(t *testing.T) {
	if got := String(Subtotal(10000, 5)); got != "500.00" {
		t.Fatalf("expected 500.00, got %s", got)
	}
	if got := String(Subtotal(1999, 3)); got != "59.97" {
		t.Fatalf("expected 59.97, got %s", got)
	}
}

func TestSum(t *testing.T) {
	total := Sum(Subtotal(10000, 2), Subtotal(2550, 1))
	if got := String(total); got != "225.50" {
		t.Fatalf("expected 225.50, got %s", got)
	}
}

func TestFormat(t *testing.T) {
	if got := Format("₹", Subtotal(10000, 5)); got != "₹500.00" {
		t.Fatalf("expected ₹500.00, got %s", got)
	}
}
