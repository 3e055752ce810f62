package brand

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"watchstore/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]BrandWithCount, error) {
	const q = `
SELECT b.id, b.name, b.created_at, COUNT(p.id)
FROM brands b
LEFT JOIN products p ON p.brand_id = b.id
GROUP BY b.id, b.name, b.created_at
ORDER BY b.name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []BrandWithCount
	for rows.Next() {
		var b BrandWithCount
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt, &b.ProductCount); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Brand, error) {
	const q = `
SELECT id, name, created_at
FROM brands
WHERE id = $1
`
	var b domain.Brand
	if err := r.pool.QueryRow(ctx, q, id).Scan(&b.ID, &b.Name, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}
