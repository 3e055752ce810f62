package cart

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

const lineColumns = `id, account_id, product_id, quantity, ordered, created_at, updated_at`

// Upsert adds quantity to the unordered line matching (account-or-guest,
// product), or inserts a new line when none exists. The increment is a
// relative update in SQL so concurrent requests for the same line cannot
// lose updates.
func (r *postgresRepo) Upsert(ctx context.Context, in UpsertInput) (*domain.CartLine, bool, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback(ctx)

	const update = `
UPDATE cart_lines
SET quantity = quantity + $1,
    updated_at = now()
WHERE product_id = $2 AND ordered = false AND account_id IS NOT DISTINCT FROM $3
RETURNING ` + lineColumns + `
`
	line, err := scanLine(tx.QueryRow(ctx, update, in.Quantity, in.ProductID, in.AccountID))
	if err == nil {
		return line, false, tx.Commit(ctx)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	const insert = `
INSERT INTO cart_lines (account_id, product_id, quantity, ordered)
VALUES ($1, $2, $3, false)
RETURNING ` + lineColumns + `
`
	line, err = scanLine(tx.QueryRow(ctx, insert, in.AccountID, in.ProductID, in.Quantity))
	if err != nil {
		return nil, false, err
	}
	return line, true, tx.Commit(ctx)
}

func (r *postgresRepo) List(ctx context.Context, accountID *int64) ([]domain.CartLine, error) {
	q := `
SELECT c.id, c.account_id, c.product_id, c.quantity, c.ordered, c.created_at, c.updated_at,
       p.id, p.brand_id, p.title, COALESCE(p.description, ''), p.price_cents, p.image_url, p.stock, p.created_at,
       b.id, b.name, b.created_at
FROM cart_lines c
JOIN products p ON p.id = c.product_id
JOIN brands b ON b.id = p.brand_id
WHERE c.ordered = false
`
	args := []interface{}{}
	if accountID != nil {
		q += ` AND c.account_id = $1`
		args = append(args, *accountID)
	}
	q += ` ORDER BY c.updated_at DESC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CartLine
	for rows.Next() {
		var line domain.CartLine
		var p domain.Product
		var b domain.Brand
		if err := rows.Scan(
			&line.ID, &line.AccountID, &line.ProductID, &line.Quantity, &line.Ordered, &line.CreatedAt, &line.UpdatedAt,
			&p.ID, &p.BrandID, &p.Title, &p.Description, &p.PriceCents, &p.ImageURL, &p.Stock, &p.CreatedAt,
			&b.ID, &b.Name, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		p.Brand = &b
		line.Product = &p
		result = append(result, line)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_lines WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ClearOrdered(ctx context.Context, accountID *int64) (int64, error) {
	q := `DELETE FROM cart_lines WHERE ordered = true`
	args := []interface{}{}
	if accountID != nil {
		q += ` AND account_id = $1`
		args = append(args, *accountID)
	}
	cmd, err := r.pool.Exec(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func scanLine(row pgx.Row) (*domain.CartLine, error) {
	var line domain.CartLine
	if err := row.Scan(
		&line.ID, &line.AccountID, &line.ProductID, &line.Quantity, &line.Ordered, &line.CreatedAt, &line.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &line, nil
}
