package domain

import "time"

type Product struct {
	ID          int64     `json:"id"`
	BrandID     int64     `json:"-"`
	Brand       *Brand    `json:"brand,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"-"`
	ImageURL    *string   `json:"image,omitempty"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"-"`
}
