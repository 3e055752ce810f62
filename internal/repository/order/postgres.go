package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"watchstore/internal/db"
	"watchstore/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

// Create runs the whole placement in one serializable transaction. Product
// rows are locked FOR UPDATE in request order, so the first line that fails
// the stock check is the first one the caller sees, and concurrent orders
// against the same product serialize on the row lock instead of both passing
// the check.
func (r *postgresRepo) Create(ctx context.Context, env Envelope, lines []LineInput) (*domain.Order, error) {
	var orderID int64

	err := db.InSerializableTx(ctx, r.pool, func(tx pgx.Tx) error {
		if env.AccountID != nil {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE id = $1)`, *env.AccountID).Scan(&exists); err != nil {
				return fmt.Errorf("check account: %w", err)
			}
			if !exists {
				return domain.ErrNotFound
			}
		}

		for _, line := range lines {
			var title string
			var stock int
			err := tx.QueryRow(ctx, `
SELECT title, stock
FROM products
WHERE id = $1
FOR UPDATE
`, line.ProductID).Scan(&title, &stock)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domain.ErrNotFound
				}
				return fmt.Errorf("lock product %d: %w", line.ProductID, err)
			}
			if stock < line.Quantity {
				return &domain.InsufficientStockError{Title: title, Available: stock, Requested: line.Quantity}
			}
		}

		err := tx.QueryRow(ctx, `
INSERT INTO orders (account_id, shipping_address, contact_number, payment_method, payment_reference, paid)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`, env.AccountID, env.ShippingAddress, env.ContactNumber, env.PaymentMethod, env.PaymentReference, env.Paid).Scan(&orderID)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for _, line := range lines {
			if _, err := tx.Exec(ctx, `
INSERT INTO order_lines (order_id, product_id, quantity)
VALUES ($1, $2, $3)
`, orderID, line.ProductID, line.Quantity); err != nil {
				return fmt.Errorf("insert order line: %w", err)
			}

			cmd, err := tx.Exec(ctx, `
UPDATE products
SET stock = stock - $1
WHERE id = $2 AND stock >= $1
`, line.Quantity, line.ProductID)
			if err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			}
			if cmd.RowsAffected() == 0 {
				// Unreachable while the row lock is held; kept as a guard so
				// the invariant cannot silently break.
				return &domain.InsufficientStockError{Title: fmt.Sprintf("product %d", line.ProductID), Requested: line.Quantity}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Printf("order repo: created order id=%d lines=%d", orderID, len(lines))
	return r.GetByID(ctx, orderID)
}

const orderColumns = `id, account_id, shipping_address, contact_number, payment_method, payment_reference, paid, created_at`

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
`
	var o domain.Order
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&o.ID, &o.AccountID, &o.ShippingAddress, &o.ContactNumber, &o.PaymentMethod, &o.PaymentReference, &o.Paid, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	lines, err := r.fetchLines(ctx, []int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Lines = lines[o.ID]
	if o.Lines == nil {
		o.Lines = []domain.OrderLine{}
	}
	return &o, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
ORDER BY created_at DESC, id DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	var ids []int64
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID, &o.AccountID, &o.ShippingAddress, &o.ContactNumber, &o.PaymentMethod, &o.PaymentReference, &o.Paid, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	lines, err := r.fetchLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Lines = lines[orders[i].ID]
		if orders[i].Lines == nil {
			orders[i].Lines = []domain.OrderLine{}
		}
	}
	return orders, nil
}

func (r *postgresRepo) fetchLines(ctx context.Context, orderIDs []int64) (map[int64][]domain.OrderLine, error) {
	const q = `
SELECT l.id, l.order_id, l.product_id, l.quantity,
       p.id, p.brand_id, p.title, COALESCE(p.description, ''), p.price_cents, p.image_url, p.stock, p.created_at,
       b.id, b.name, b.created_at
FROM order_lines l
JOIN products p ON p.id = l.product_id
JOIN brands b ON b.id = p.brand_id
WHERE l.order_id = ANY($1)
ORDER BY l.id ASC
`
	rows, err := r.pool.Query(ctx, q, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64][]domain.OrderLine)
	for rows.Next() {
		var line domain.OrderLine
		var p domain.Product
		var b domain.Brand
		if err := rows.Scan(
			&line.ID, &line.OrderID, &line.ProductID, &line.Quantity,
			&p.ID, &p.BrandID, &p.Title, &p.Description, &p.PriceCents, &p.ImageURL, &p.Stock, &p.CreatedAt,
			&b.ID, &b.Name, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		p.Brand = &b
		line.Product = &p
		result[line.OrderID] = append(result[line.OrderID], line)
	}
	return result, rows.Err()
}
