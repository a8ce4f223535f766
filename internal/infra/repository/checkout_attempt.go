package repository

import (
	"context"

	"storefront/internal/infra"
	"storefront/internal/infra/query"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutAttemptQueries interface {
	TryInsertCheckoutAttempt(ctx context.Context, db query.DBTX, key, sessionID string) error
	GetCheckoutAttemptForUpdate(ctx context.Context, db query.DBTX, key string) (query.CheckoutAttempts, error)
	CompleteCheckoutAttempt(ctx context.Context, db query.DBTX, key string, orderID uuid.UUID) error
}

type CheckoutAttemptRepository struct {
	queries CheckoutAttemptQueries
	db      query.DBTX
}

func NewCheckoutAttemptRepository(queries CheckoutAttemptQueries, db query.DBTX) *CheckoutAttemptRepository {
	return &CheckoutAttemptRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CheckoutAttemptRepository) TryInsert(ctx context.Context, tx query.DBTX, key, sessionID string) error {
	if err := r.queries.TryInsertCheckoutAttempt(ctx, tx, key, sessionID); err != nil {
		return infra.WrapRepoErr("failed to try insert checkout attempt", err)
	}
	return nil
}

// GetForUpdate locks the attempt row until the surrounding transaction ends.
func (r *CheckoutAttemptRepository) GetForUpdate(ctx context.Context, tx query.DBTX, key string) (*shared.CheckoutAttempt, error) {
	row, err := r.queries.GetCheckoutAttemptForUpdate(ctx, tx, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("checkout attempt not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get checkout attempt", err)
	}

	return &shared.CheckoutAttempt{
		Key:       row.Key,
		SessionID: row.SessionID,
		Status:    row.Status,
		OrderID:   pgconv.UUIDPtrFromPgtype(row.OrderID),
	}, nil
}

func (r *CheckoutAttemptRepository) Complete(ctx context.Context, tx query.DBTX, key string, orderID uuid.UUID) error {
	if err := r.queries.CompleteCheckoutAttempt(ctx, tx, key, orderID); err != nil {
		return infra.WrapRepoErr("failed to complete checkout attempt", err)
	}
	return nil
}
