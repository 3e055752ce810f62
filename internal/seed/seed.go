package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Brand       string
	Title       string
	Description string
	PriceCents  int64
	Stock       int
}

// Apply inserts basic seed data for manual testing. It is idempotent: brands
// upsert on name, products on (brand, title).
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Brand:       "Chrono",
			Title:       "Chrono X",
			Description: "Flagship automatic chronograph",
			PriceCents:  10000,
			Stock:       10,
		},
		{
			Brand:       "Chrono",
			Title:       "Chrono Lite",
			Description: "Entry-level quartz chronograph",
			PriceCents:  4599,
			Stock:       25,
		},
		{
			Brand:       "Meridian",
			Title:       "Meridian Diver 200",
			Description: "200m dive watch with ceramic bezel",
			PriceCents:  28950,
			Stock:       6,
		},
	}

	for _, p := range products {
		brandID, err := ensureBrand(ctx, pool, p.Brand)
		if err != nil {
			return fmt.Errorf("ensure brand %s: %w", p.Brand, err)
		}
		if err := upsertProduct(ctx, pool, brandID, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Title, err)
		}
	}

	return nil
}

func ensureBrand(ctx context.Context, pool *pgxpool.Pool, name string) (int64, error) {
	const q = `
INSERT INTO brands (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id
`
	var id int64
	if err := pool.QueryRow(ctx, q, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, brandID int64, p productSeed) error {
	const update = `
UPDATE products
SET description = $1, price_cents = $2, stock = $3
WHERE brand_id = $4 AND title = $5
`
	cmd, err := pool.Exec(ctx, update, p.Description, p.PriceCents, p.Stock, brandID, p.Title)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	const insert = `
INSERT INTO products (brand_id, title, description, price_cents, stock)
VALUES ($1, $2, $3, $4, $5)
`
	_, err = pool.Exec(ctx, insert, brandID, p.Title, p.Description, p.PriceCents, p.Stock)
	return err
}
