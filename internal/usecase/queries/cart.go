package queries

import (
	"context"

	"storefront/internal/domain/cart"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
)

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/queries/mock_cart.go -package=queriesmock

var ErrCartReadFailed = errs.New("failed to read cart")

type CartReader interface {
	Load(ctx context.Context, sessionID string) (*cart.Cart, error)
}

type CartQueries interface {
	// Get never fails for a missing cart; it returns an unsaved empty one.
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)
}

type cartQueriesImpl struct {
	reader CartReader
	clock  clock.Clock
}

func NewCartQueries(reader CartReader, clk clock.Clock) CartQueries {
	return &cartQueriesImpl{reader: reader, clock: clk}
}

func (q *cartQueriesImpl) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	c, err := q.reader.Load(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return cart.New(sessionID, q.clock.Now()), nil
		}
		return nil, errs.Mark(err, ErrCartReadFailed)
	}
	return c, nil
}
