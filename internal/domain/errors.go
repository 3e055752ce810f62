package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports malformed or missing request input.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// InsufficientStockError reports the first order line whose requested
// quantity exceeds the product's available stock.
type InsufficientStockError struct {
	Title     string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %d, requested %d", e.Title, e.Available, e.Requested)
}
