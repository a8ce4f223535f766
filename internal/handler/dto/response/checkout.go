package response

import (
	"storefront/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlacedOrder struct {
	ID          uuid.UUID       `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type CheckoutResponse struct {
	Order       PlacedOrder `json:"order"`
	WhatsAppURL string      `json:"whatsappUrl"`
	Message     string      `json:"message"`
}

func FromCheckout(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		Order: PlacedOrder{
			ID:          r.Order.ID(),
			OrderNumber: r.Order.Number(),
			Subtotal:    r.Order.Subtotal(),
		},
		WhatsAppURL: r.WhatsAppURL,
		Message:     "Order placed",
	}
}

type WhatsAppConfigResponse struct {
	Number string `json:"number"`
}
