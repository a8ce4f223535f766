package repository

import (
	"context"

	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/infra/query"
	"storefront/internal/infra/repository/converter"
)

type OrderWriteQueries interface {
	InsertOrder(ctx context.Context, db query.DBTX, arg query.InsertOrderParams) (bool, error)
	InsertOrderItem(ctx context.Context, db query.DBTX, arg query.InsertOrderItemParams) error
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      query.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db query.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the order header and its lines. It reports false without
// writing any line when the order number is already taken.
func (r *OrderRepository) Create(ctx context.Context, tx query.DBTX, o *order.Order) (bool, error) {
	inserted, err := r.queries.InsertOrder(ctx, tx, converter.OrderToInsertParams(o))
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert order", err)
	}
	if !inserted {
		return false, nil
	}

	for _, item := range converter.OrderItemsToParams(o) {
		if err := r.queries.InsertOrderItem(ctx, tx, item); err != nil {
			return false, infra.WrapRepoErr("failed to insert order item", err)
		}
	}
	return true, nil
}
