package order

import (
	"strings"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pendente"
	StatusConfirmed Status = "confirmado"
	StatusShipped   Status = "enviado"
	StatusDelivered Status = "entregue"
	StatusCanceled  Status = "cancelado"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCanceled:
		return true
	}
	return false
}

// Line is a cart line copied verbatim at checkout.
type Line = cart.Line

type Customer struct {
	name  string
	phone string
	email string
}

func NewCustomer(name, phone, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return Customer{}, errs.ErrCustomerNameRequired
	}
	if phone == "" {
		return Customer{}, errs.ErrCustomerPhoneRequired
	}
	return Customer{name: name, phone: phone, email: strings.TrimSpace(email)}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Phone() string { return c.phone }
func (c Customer) Email() string { return c.email }

// Order is immutable once created; status changes happen outside this service.
type Order struct {
	id        uuid.UUID
	number    string
	customer  Customer
	lines     []Line
	subtotal  decimal.Decimal
	notes     string
	status    Status
	sessionID string
	createdAt time.Time
}

// NewOrder snapshots the cart into a pending order. The subtotal is computed
// from the cart's own line prices.
func NewOrder(number string, customer Customer, c *cart.Cart, notes string, now time.Time) (*Order, error) {
	if c == nil || c.IsEmpty() {
		return nil, errs.ErrCartEmpty
	}

	return &Order{
		id:        uuid.New(),
		number:    number,
		customer:  customer,
		lines:     c.Lines(),
		subtotal:  c.Subtotal(),
		notes:     strings.TrimSpace(notes),
		status:    StatusPending,
		sessionID: c.SessionID(),
		createdAt: now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	number string,
	customer Customer,
	lines []Line,
	subtotal decimal.Decimal,
	notes string,
	status Status,
	sessionID string,
	createdAt time.Time,
) *Order {
	return &Order{
		id:        id,
		number:    number,
		customer:  customer,
		lines:     lines,
		subtotal:  subtotal,
		notes:     notes,
		status:    status,
		sessionID: sessionID,
		createdAt: createdAt,
	}
}

// ReconstructCustomer skips validation for persisted rows.
func ReconstructCustomer(name, phone, email string) Customer {
	return Customer{name: name, phone: phone, email: email}
}

// WithNumber returns a copy carrying a regenerated order number.
func (o *Order) WithNumber(number string) *Order {
	cp := *o
	cp.number = number
	return &cp
}

func (o *Order) ID() uuid.UUID             { return o.id }
func (o *Order) Number() string            { return o.number }
func (o *Order) Customer() Customer        { return o.customer }
func (o *Order) Lines() []Line             { return o.lines }
func (o *Order) Subtotal() decimal.Decimal { return o.subtotal }
func (o *Order) Notes() string             { return o.notes }
func (o *Order) Status() Status            { return o.status }
func (o *Order) SessionID() string         { return o.sessionID }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }
