package commands

import (
	"context"
	"log/slog"

	"storefront/internal/domain/cart"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
)

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/commands/mock_cart.go -package=commandsmock

var (
	ErrCartLoadFailed    = errs.New("failed to load cart")
	ErrCartSaveFailed    = errs.New("failed to save cart")
	ErrCartContended     = errs.New("cart changed concurrently too many times")
	ErrCatalogReadFailed = errs.New("failed to read catalog")
)

const maxCartWriteAttempts = 5

type CartCommands interface {
	Add(ctx context.Context, sessionID string, req reqdto.AddCartItemRequest) (*cart.Cart, error)
	SetQuantity(ctx context.Context, sessionID string, req reqdto.UpdateCartItemRequest) (*cart.Cart, error)
	Remove(ctx context.Context, sessionID string, req reqdto.RemoveCartItemRequest) (*cart.Cart, error)
	// Settle empties the lines an order was placed from. Lines added after
	// the order snapshot survive.
	Settle(ctx context.Context, sessionID string, placed *cart.Cart) error
}

type cartCommandsImpl struct {
	store    CartStore
	products ProductReader
	clock    clock.Clock
}

func NewCartCommands(store CartStore, products ProductReader, clk clock.Clock) CartCommands {
	return &cartCommandsImpl{
		store:    store,
		products: products,
		clock:    clk,
	}
}

func (c *cartCommandsImpl) Add(ctx context.Context, sessionID string, req reqdto.AddCartItemRequest) (*cart.Cart, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	snap, err := c.products.Snapshot(ctx, req.ProductID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrCatalogReadFailed)
	}
	if !snap.InStock {
		return nil, errs.ErrProductOutOfStock
	}

	line, err := cart.NewLine(snap.CartSnapshot(), req.Size, req.Color, req.Qty())
	if err != nil {
		return nil, err
	}

	return c.mutate(ctx, sessionID, true, func(ct *cart.Cart) (bool, error) {
		if err := ct.Add(line); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (c *cartCommandsImpl) SetQuantity(ctx context.Context, sessionID string, req reqdto.UpdateCartItemRequest) (*cart.Cart, error) {
	key := req.Key()
	return c.mutate(ctx, sessionID, false, func(ct *cart.Cart) (bool, error) {
		if err := ct.SetQuantity(key, *req.Quantity); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (c *cartCommandsImpl) Remove(ctx context.Context, sessionID string, req reqdto.RemoveCartItemRequest) (*cart.Cart, error) {
	key := req.Key()
	return c.mutate(ctx, sessionID, true, func(ct *cart.Cart) (bool, error) {
		return ct.Remove(key), nil
	})
}

func (c *cartCommandsImpl) Settle(ctx context.Context, sessionID string, placed *cart.Cart) error {
	_, err := c.mutate(ctx, sessionID, false, func(ct *cart.Cart) (bool, error) {
		if ct.Version() == placed.Version() {
			if ct.IsEmpty() {
				return false, nil
			}
			ct.Drain()
			return true, nil
		}

		changed := false
		for _, ordered := range placed.Lines() {
			current, ok := ct.Find(ordered.Key())
			if !ok {
				continue
			}
			// SetQuantity drops the line once nothing is left
			if err := ct.SetQuantity(ordered.Key(), current.Quantity()-ordered.Quantity()); err != nil {
				return false, err
			}
			changed = true
		}
		return changed, nil
	})
	if errs.Is(err, errs.ErrCartNotFound) {
		return nil
	}
	return err
}

// mutate applies fn to the freshest stored cart and writes it back with a
// version check, re-reading and re-applying fn when another writer won.
// Carts that fn leaves unchanged are returned without a write.
func (c *cartCommandsImpl) mutate(ctx context.Context, sessionID string, createMissing bool, fn func(*cart.Cart) (bool, error)) (*cart.Cart, error) {
	for attempt := 1; attempt <= maxCartWriteAttempts; attempt++ {
		current, err := c.load(ctx, sessionID, createMissing)
		if err != nil {
			return nil, err
		}

		changed, err := fn(current)
		if err != nil {
			return nil, err
		}
		if !changed {
			return current, nil
		}

		current.Touch(c.clock.Now())
		saved, err := c.store.Save(ctx, current)
		if err == nil {
			return saved, nil
		}
		if !infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrCartSaveFailed)
		}

		slog.Debug("cart version conflict, retrying", "session_id", sessionID, "attempt", attempt)
	}

	slog.Warn("cart write abandoned after repeated conflicts", "session_id", sessionID, "attempts", maxCartWriteAttempts)
	return nil, ErrCartContended
}

func (c *cartCommandsImpl) load(ctx context.Context, sessionID string, createMissing bool) (*cart.Cart, error) {
	current, err := c.store.Load(ctx, sessionID)
	if err == nil {
		return current, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrCartLoadFailed)
	}
	if !createMissing {
		return nil, errs.ErrCartNotFound
	}
	return cart.New(sessionID, c.clock.Now()), nil
}
