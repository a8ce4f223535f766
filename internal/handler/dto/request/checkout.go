package request

import (
	"strings"

	"storefront/internal/domain/order"
)

type CheckoutRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`
	Notes         string `json:"notes"`
}

func (r *CheckoutRequest) ToDomain() (order.Customer, string, error) {
	customer, err := order.NewCustomer(r.CustomerName, r.CustomerPhone, r.CustomerEmail)
	if err != nil {
		return order.Customer{}, "", err
	}
	return customer, strings.TrimSpace(r.Notes), nil
}
