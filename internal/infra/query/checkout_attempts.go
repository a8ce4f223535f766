package query

import (
	"context"

	"github.com/google/uuid"
)

const tryInsertCheckoutAttempt = `
INSERT INTO checkout_attempts (key, session_id, status)
VALUES ($1, $2, 'processing')
ON CONFLICT (key) DO NOTHING`

func (q *Queries) TryInsertCheckoutAttempt(ctx context.Context, db DBTX, key, sessionID string) error {
	_, err := db.Exec(ctx, tryInsertCheckoutAttempt, key, sessionID)
	return err
}

const getCheckoutAttemptForUpdate = `
SELECT key, session_id, status, order_id, created_at, updated_at
FROM checkout_attempts
WHERE key = $1
FOR UPDATE`

func (q *Queries) GetCheckoutAttemptForUpdate(ctx context.Context, db DBTX, key string) (CheckoutAttempts, error) {
	row := db.QueryRow(ctx, getCheckoutAttemptForUpdate, key)
	var i CheckoutAttempts
	err := row.Scan(
		&i.Key,
		&i.SessionID,
		&i.Status,
		&i.OrderID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const completeCheckoutAttempt = `
UPDATE checkout_attempts
SET status = 'completed', order_id = $2, updated_at = now()
WHERE key = $1`

func (q *Queries) CompleteCheckoutAttempt(ctx context.Context, db DBTX, key string, orderID uuid.UUID) error {
	_, err := db.Exec(ctx, completeCheckoutAttempt, key, orderID)
	return err
}
