package readstore

import (
	"context"

	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/infra/query"
	"storefront/internal/infra/repository/converter"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderReadQueries interface {
	GetOrder(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Orders, error)
	ListOrderItems(ctx context.Context, db query.DBTX, orderID uuid.UUID) ([]query.OrderItems, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      query.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db query.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrder(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}

	items, err := r.queries.ListOrderItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	o, err := converter.OrderFromRows(row, items)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode order", err)
	}
	return o, nil
}
