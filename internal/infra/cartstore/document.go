package cartstore

import (
	"time"

	"storefront/internal/domain/cart"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type cartDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	SessionID string             `bson:"session_id"`
	Items     []itemDocument     `bson:"items"`
	Version   int64              `bson:"version"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

type itemDocument struct {
	ProductID string               `bson:"product_id"`
	Name      string               `bson:"name"`
	Price     primitive.Decimal128 `bson:"price"`
	Image     string               `bson:"image"`
	Size      string               `bson:"size"`
	Color     string               `bson:"color"`
	Quantity  int                  `bson:"quantity"`
}

func toItems(lines []cart.Line) ([]itemDocument, error) {
	items := make([]itemDocument, 0, len(lines))
	for _, l := range lines {
		price, err := primitive.ParseDecimal128(l.Price().String())
		if err != nil {
			return nil, err
		}
		items = append(items, itemDocument{
			ProductID: l.ProductID(),
			Name:      l.Name(),
			Price:     price,
			Image:     l.Image(),
			Size:      l.Size(),
			Color:     l.Color(),
			Quantity:  l.Quantity(),
		})
	}
	return items, nil
}

func (d *cartDocument) toDomain() (*cart.Cart, error) {
	lines := make([]cart.Line, 0, len(d.Items))
	for _, it := range d.Items {
		price, err := decimal.NewFromString(it.Price.String())
		if err != nil {
			return nil, err
		}
		lines = append(lines, cart.ReconstructLine(it.ProductID, it.Name, price, it.Image, it.Size, it.Color, it.Quantity))
	}
	return cart.Reconstruct(d.SessionID, lines, d.Version, d.CreatedAt, d.UpdatedAt), nil
}
