package domain

import "time"

// CartLine is a single cart entry. AccountID is nil for guest lines. At most
// one line with Ordered=false exists per (account-or-guest, product) pair;
// the upsert merge rule maintains this, not a uniqueness constraint.
type CartLine struct {
	ID        int64     `json:"id"`
	AccountID *int64    `json:"user"`
	ProductID int64     `json:"-"`
	Product   *Product  `json:"product,omitempty"`
	Quantity  int       `json:"quantity"`
	Ordered   bool      `json:"is_ordered"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
