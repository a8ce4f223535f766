package commands

import (
	"context"
	"io"

	"storefront/internal/domain/cart"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/mock_ports.go -package=commandsmock

// CartStore persists carts with compare-and-swap on the cart version.
type CartStore interface {
	// Load returns a NOT_FOUND repository error when the session has no cart.
	Load(ctx context.Context, sessionID string) (*cart.Cart, error)
	// Save writes c if the stored version still equals c.Version() and returns
	// the cart with its new version. A lost race is a CONFLICT repository error.
	Save(ctx context.Context, c *cart.Cart) (*cart.Cart, error)
}

// Write-side snapshot of a catalog product, decoupled from the read models.
type ProductSnapshot struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	Image   string          `json:"image"`
	InStock bool            `json:"inStock"`
}

func (p *ProductSnapshot) CartSnapshot() cart.Snapshot {
	return cart.Snapshot{ProductID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image}
}

type ProductReader interface {
	Snapshot(ctx context.Context, productID string) (*ProductSnapshot, error)
}

// ProductCache drops cached snapshots after catalog writes.
type ProductCache interface {
	Invalidate(ctx context.Context, productIDs ...string) error
}

type ObjectStorage interface {
	// Put stores the object and returns its public URL.
	Put(ctx context.Context, path, contentType string, body io.Reader) (string, error)
}
