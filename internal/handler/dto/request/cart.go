package request

import (
	"strings"

	"storefront/internal/domain/cart"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// AddCartItemRequest carries the product fields the storefront page already
// shows. Name, price and image are replaced by the catalog snapshot.
type AddCartItemRequest struct {
	ProductID string           `json:"productId"`
	Name      string           `json:"name"`
	Price     *decimal.Decimal `json:"price"`
	Image     string           `json:"image"`
	Size      string           `json:"size"`
	Color     string           `json:"color"`
	Quantity  *int             `json:"quantity"`
}

func (r *AddCartItemRequest) Validate() error {
	if strings.TrimSpace(r.ProductID) == "" || strings.TrimSpace(r.Name) == "" || r.Price == nil {
		return errs.ErrProductRequired
	}
	if r.Quantity != nil && *r.Quantity < 1 {
		return errs.ErrInvalidQuantity
	}
	return nil
}

// Qty defaults an absent quantity to one.
func (r *AddCartItemRequest) Qty() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

type UpdateCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  *int   `json:"quantity" binding:"required"`
}

func (r *UpdateCartItemRequest) Key() cart.VariantKey {
	return cart.NewVariantKey(r.ProductID, r.Size, r.Color)
}

type RemoveCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

func (r *RemoveCartItemRequest) Key() cart.VariantKey {
	return cart.NewVariantKey(r.ProductID, r.Size, r.Color)
}
