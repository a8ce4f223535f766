package response

import (
	"time"

	"storefront/internal/domain/cart"

	"github.com/shopspring/decimal"
)

func init() {
	// storefront clients read money as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

type CartItemResponse struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	Quantity  int             `json:"quantity"`
}

type CartBody struct {
	SessionID string             `json:"sessionId"`
	Items     []CartItemResponse `json:"items"`
	UpdatedAt *time.Time         `json:"updatedAt,omitempty"`
}

type CartResponse struct {
	Cart      CartBody `json:"cart"`
	ItemCount int      `json:"itemCount"`
	Message   string   `json:"message,omitempty"`
}

func FromCart(c *cart.Cart, message string) *CartResponse {
	items := make([]CartItemResponse, 0, len(c.Lines()))
	for _, l := range c.Lines() {
		items = append(items, CartItemResponse{
			ProductID: l.ProductID(),
			Name:      l.Name(),
			Price:     l.Price(),
			Image:     l.Image(),
			Size:      l.Size(),
			Color:     l.Color(),
			Quantity:  l.Quantity(),
		})
	}

	body := CartBody{SessionID: c.SessionID(), Items: items}
	if c.Version() > 0 {
		updated := c.UpdatedAt()
		body.UpdatedAt = &updated
	}

	return &CartResponse{
		Cart:      body,
		ItemCount: c.ItemCount(),
		Message:   message,
	}
}
