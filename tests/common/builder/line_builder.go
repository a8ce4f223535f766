//go:build unit || integration || e2e

package builder

import (
	"time"

	"storefront/internal/domain/cart"
	reqdto "storefront/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LineBuilder struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Image     string
	Size      string
	Color     string
	Quantity  int
}

func NewLineBuilder() *LineBuilder {
	return &LineBuilder{
		ProductID: uuid.NewString(),
		Name:      "Biquíni Cortininha",
		Price:     decimal.RequireFromString("10.00"),
		Image:     "https://cdn.example.com/biquini.jpg",
		Size:      "M",
		Color:     "Azul",
		Quantity:  1,
	}
}

func (b *LineBuilder) With(mutate func(*LineBuilder)) *LineBuilder {
	mutate(b)
	return b
}

func (b *LineBuilder) WithProductID(id string) *LineBuilder { b.ProductID = id; return b }
func (b *LineBuilder) WithPrice(p string) *LineBuilder {
	b.Price = decimal.RequireFromString(p)
	return b
}
func (b *LineBuilder) WithSize(s string) *LineBuilder  { b.Size = s; return b }
func (b *LineBuilder) WithColor(c string) *LineBuilder { b.Color = c; return b }
func (b *LineBuilder) WithQuantity(q int) *LineBuilder { b.Quantity = q; return b }
func (b *LineBuilder) WithName(n string) *LineBuilder  { b.Name = n; return b }

func (b *LineBuilder) Snapshot() cart.Snapshot {
	return cart.Snapshot{ProductID: b.ProductID, Name: b.Name, Price: b.Price, Image: b.Image}
}

func (b *LineBuilder) BuildDomain() (cart.Line, error) {
	return cart.NewLine(b.Snapshot(), b.Size, b.Color, b.Quantity)
}

func (b *LineBuilder) MustBuild() cart.Line {
	l, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return l
}

func (b *LineBuilder) Key() cart.VariantKey {
	return cart.NewVariantKey(b.ProductID, b.Size, b.Color)
}

func (b *LineBuilder) BuildAddRequestDTO() reqdto.AddCartItemRequest {
	price := b.Price
	qty := b.Quantity
	return reqdto.AddCartItemRequest{
		ProductID: b.ProductID,
		Name:      b.Name,
		Price:     &price,
		Image:     b.Image,
		Size:      b.Size,
		Color:     b.Color,
		Quantity:  &qty,
	}
}

// NewCart builds a persisted-looking cart holding lines.
func NewCart(sessionID string, version int64, lines ...cart.Line) *cart.Cart {
	now := time.Now()
	return cart.Reconstruct(sessionID, lines, version, now, now)
}
