package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CheckoutProcessing = "processing"
	CheckoutCompleted  = "completed"
)

type CheckoutAttempt struct {
	Key       string
	SessionID string
	Status    string
	OrderID   *uuid.UUID
}

func (a *CheckoutAttempt) Completed() bool {
	return a.Status == CheckoutCompleted && a.OrderID != nil
}

const (
	JobKindEvent = "event"
	JobKindEmail = "email"

	JobStatusQueued  = "queued"
	JobStatusSent    = "sent"
	JobStatusFailed  = "failed"
	JobStatusSkipped = "skipped"

	TopicOrderCreated      = "order.created"
	TopicOrderConfirmation = "order.confirmation"
)

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	Status    string
	Attempts  int32
	LastError *string
	RunAt     time.Time
}

// OrderCreatedEvent is the payload of an event/order.created job.
type OrderCreatedEvent struct {
	OrderID     uuid.UUID        `json:"orderId"`
	OrderNumber string           `json:"orderNumber"`
	SessionID   string           `json:"sessionId"`
	Customer    EventCustomer    `json:"customer"`
	Items       []EventOrderItem `json:"items"`
	Subtotal    decimal.Decimal  `json:"subtotal"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type EventCustomer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

type EventOrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
	Quantity  int             `json:"quantity"`
}

// OrderEmail is the payload of an email/order.confirmation job.
type OrderEmail struct {
	To      string `json:"to"`
	ToName  string `json:"toName"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
