package cart

import (
	"math"
	"strings"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxLineQuantity bounds one line so merged quantities cannot overflow and
// still fit the order_items quantity column.
const MaxLineQuantity = math.MaxInt32

// VariantKey identifies a purchasable line. Size and color default to "".
type VariantKey struct {
	ProductID string
	Size      string
	Color     string
}

func NewVariantKey(productID, size, color string) VariantKey {
	return VariantKey{
		ProductID: canonicalProductID(productID),
		Size:      size,
		Color:     color,
	}
}

// canonicalProductID folds the spellings uuid.Parse accepts (upper case,
// braces, urn:uuid:) into the lowercase form lines are stored with.
func canonicalProductID(productID string) string {
	productID = strings.TrimSpace(productID)
	if id, err := uuid.Parse(productID); err == nil {
		return id.String()
	}
	return productID
}

// Snapshot is the product state frozen into a line when it is first added.
type Snapshot struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Image     string
}

// Line is a value object: product attributes captured at add time plus the
// chosen variant and quantity.
type Line struct {
	productID string
	name      string
	price     decimal.Decimal
	image     string
	size      string
	color     string
	quantity  int
}

func NewLine(snap Snapshot, size, color string, quantity int) (Line, error) {
	if strings.TrimSpace(snap.ProductID) == "" || strings.TrimSpace(snap.Name) == "" {
		return Line{}, errs.ErrProductRequired
	}
	if snap.Price.IsNegative() {
		return Line{}, errs.Validation("price must not be negative")
	}
	if quantity < 1 {
		return Line{}, errs.ErrInvalidQuantity
	}
	if quantity > MaxLineQuantity {
		return Line{}, errs.ErrQuantityTooLarge
	}

	return Line{
		productID: canonicalProductID(snap.ProductID),
		name:      snap.Name,
		price:     snap.Price,
		image:     snap.Image,
		size:      size,
		color:     color,
		quantity:  quantity,
	}, nil
}

// ReconstructLine rebuilds a persisted line without validation.
func ReconstructLine(productID, name string, price decimal.Decimal, image, size, color string, quantity int) Line {
	return Line{
		productID: productID,
		name:      name,
		price:     price,
		image:     image,
		size:      size,
		color:     color,
		quantity:  quantity,
	}
}

func (l Line) Key() VariantKey {
	return VariantKey{ProductID: l.productID, Size: l.size, Color: l.color}
}

// Total is price × quantity.
func (l Line) Total() decimal.Decimal {
	return l.price.Mul(decimal.NewFromInt(int64(l.quantity)))
}

func (l Line) ProductID() string      { return l.productID }
func (l Line) Name() string           { return l.name }
func (l Line) Price() decimal.Decimal { return l.price }
func (l Line) Image() string          { return l.image }
func (l Line) Size() string           { return l.size }
func (l Line) Color() string          { return l.color }
func (l Line) Quantity() int          { return l.quantity }
