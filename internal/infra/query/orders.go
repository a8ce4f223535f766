package query

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertOrder = `
INSERT INTO orders (
    id, order_number, session_id, customer_name, customer_phone,
    customer_email, subtotal, notes, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
ON CONFLICT (order_number) DO NOTHING
RETURNING id`

type InsertOrderParams struct {
	ID            uuid.UUID
	OrderNumber   string
	SessionID     string
	CustomerName  string
	CustomerPhone string
	CustomerEmail pgtype.Text
	Subtotal      pgtype.Numeric
	Notes         pgtype.Text
	Status        string
	CreatedAt     pgtype.Timestamptz
}

// InsertOrder reports false when order_number is already taken.
func (q *Queries) InsertOrder(ctx context.Context, db DBTX, arg InsertOrderParams) (bool, error) {
	row := db.QueryRow(ctx, insertOrder,
		arg.ID,
		arg.OrderNumber,
		arg.SessionID,
		arg.CustomerName,
		arg.CustomerPhone,
		arg.CustomerEmail,
		arg.Subtotal,
		arg.Notes,
		arg.Status,
		arg.CreatedAt,
	)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

const insertOrderItem = `
INSERT INTO order_items (order_id, position, product_id, name, price, image, size, color, quantity)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

type InsertOrderItemParams = OrderItems

func (q *Queries) InsertOrderItem(ctx context.Context, db DBTX, arg InsertOrderItemParams) error {
	_, err := db.Exec(ctx, insertOrderItem,
		arg.OrderID,
		arg.Position,
		arg.ProductID,
		arg.Name,
		arg.Price,
		arg.Image,
		arg.Size,
		arg.Color,
		arg.Quantity,
	)
	return err
}

const getOrder = `
SELECT id, order_number, session_id, customer_name, customer_phone, customer_email,
       subtotal, notes, status, created_at, updated_at
FROM orders
WHERE id = $1`

func (q *Queries) GetOrder(ctx context.Context, db DBTX, id uuid.UUID) (Orders, error) {
	row := db.QueryRow(ctx, getOrder, id)
	var i Orders
	err := row.Scan(
		&i.ID,
		&i.OrderNumber,
		&i.SessionID,
		&i.CustomerName,
		&i.CustomerPhone,
		&i.CustomerEmail,
		&i.Subtotal,
		&i.Notes,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listOrderItems = `
SELECT order_id, position, product_id, name, price, image, size, color, quantity
FROM order_items
WHERE order_id = $1
ORDER BY position`

func (q *Queries) ListOrderItems(ctx context.Context, db DBTX, orderID uuid.UUID) ([]OrderItems, error) {
	rows, err := db.Query(ctx, listOrderItems, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItems
	for rows.Next() {
		var i OrderItems
		if err := rows.Scan(
			&i.OrderID,
			&i.Position,
			&i.ProductID,
			&i.Name,
			&i.Price,
			&i.Image,
			&i.Size,
			&i.Color,
			&i.Quantity,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
