package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/order"
	reqdto "storefront/internal/handler/dto/request"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"
)

//go:generate mockgen -source=checkout.go -destination=../../../tests/mock/commands/mock_checkout.go -package=commandsmock

var (
	ErrCheckoutFailed     = errs.New("checkout failed")
	ErrOrderNumberFailed  = errs.New("failed to generate order number")
	ErrOrderNumberExhaust = errs.New("order number collided too many times")
	ErrCartSettleFailed   = errs.New("order placed but cart was not cleared")
)

const maxOrderNumberAttempts = 5

type OrderNumbers interface {
	Next() (string, error)
}

type CheckoutResult struct {
	Order       *order.Order
	Message     string
	WhatsAppURL string
	// Replayed is set when the same cart was already checked out and the
	// stored order was returned instead of a new one.
	Replayed bool
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, sessionID string, req reqdto.CheckoutRequest) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	uow     shared.UnitOfWork
	carts   CartStore
	cartCmd CartCommands
	numbers OrderNumbers
	clock   clock.Clock
	store   config.StoreConfig
}

func NewCheckoutCommands(
	uow shared.UnitOfWork,
	carts CartStore,
	cartCmd CartCommands,
	numbers OrderNumbers,
	clk clock.Clock,
	cfg config.Config,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:     uow,
		carts:   carts,
		cartCmd: cartCmd,
		numbers: numbers,
		clock:   clk,
		store:   cfg.Store,
	}
}

func (c *checkoutCommandsImpl) Checkout(ctx context.Context, sessionID string, req reqdto.CheckoutRequest) (*CheckoutResult, error) {
	customer, notes, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	current, err := c.carts.Load(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCartEmpty
		}
		return nil, errs.Mark(err, ErrCartLoadFailed)
	}
	if current.IsEmpty() {
		return nil, errs.ErrCartEmpty
	}

	number, err := c.numbers.Next()
	if err != nil {
		return nil, errs.Mark(err, ErrOrderNumberFailed)
	}
	draft, err := order.NewOrder(number, customer, current, notes, c.clock.Now())
	if err != nil {
		return nil, err
	}

	key := checkoutKey(current)

	var (
		placed   *order.Order
		replayed bool
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		placed, replayed = nil, false

		if err := tx.CheckoutAttempts().TryInsert(ctx, tx.DB(), key, sessionID); err != nil {
			return err
		}
		attempt, err := tx.CheckoutAttempts().GetForUpdate(ctx, tx.DB(), key)
		if err != nil {
			return err
		}

		if attempt.Completed() {
			stored, err := tx.Reads().OrderByID(ctx, *attempt.OrderID)
			if err != nil {
				return err
			}
			placed, replayed = stored, true
			return nil
		}

		created, err := c.insertOrder(ctx, tx, draft)
		if err != nil {
			return err
		}
		if err := c.enqueueNotifications(ctx, tx, created); err != nil {
			return err
		}
		if err := tx.CheckoutAttempts().Complete(ctx, tx.DB(), key, created.ID()); err != nil {
			return err
		}

		placed = created
		return nil
	})
	if err != nil {
		if errs.Is(err, ErrOrderNumberFailed) || errs.Is(err, ErrOrderNumberExhaust) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}

	if replayed {
		slog.Info("checkout replayed", "session_id", sessionID, "order_number", placed.Number())
	} else {
		slog.Info("order created", "session_id", sessionID, "order_number", placed.Number(), "subtotal", placed.Subtotal().StringFixed(2))
	}

	message := order.BuildMessage(order.MessageSettings{
		StoreName:          c.store.Name,
		PixDiscountPercent: c.store.PixDiscountPercent,
	}, placed)

	if err := c.cartCmd.Settle(ctx, sessionID, current); err != nil {
		slog.Error("failed to clear cart after checkout", "session_id", sessionID, "order_number", placed.Number(), "error", err)
		return nil, errs.Mark(err, ErrCartSettleFailed)
	}

	return &CheckoutResult{
		Order:       placed,
		Message:     message,
		WhatsAppURL: order.DeepLink(c.store.MessagingHost, c.store.WhatsAppNumber, message),
		Replayed:    replayed,
	}, nil
}

// insertOrder writes o, drawing a fresh number whenever the current one is
// already taken.
func (c *checkoutCommandsImpl) insertOrder(ctx context.Context, tx shared.Tx, o *order.Order) (*order.Order, error) {
	for attempt := 1; attempt <= maxOrderNumberAttempts; attempt++ {
		inserted, err := tx.Orders().Create(ctx, tx.DB(), o)
		if err != nil {
			return nil, err
		}
		if inserted {
			return o, nil
		}

		slog.Warn("order number collision", "order_number", o.Number(), "attempt", attempt)
		number, err := c.numbers.Next()
		if err != nil {
			return nil, errs.Mark(err, ErrOrderNumberFailed)
		}
		o = o.WithNumber(number)
	}
	return nil, ErrOrderNumberExhaust
}

func (c *checkoutCommandsImpl) enqueueNotifications(ctx context.Context, tx shared.Tx, o *order.Order) error {
	now := c.clock.Now()

	event, err := json.Marshal(orderCreatedEvent(o))
	if err != nil {
		return errs.Wrap(err, "failed to encode order event")
	}
	if err := tx.Notifications().CreateJob(ctx, tx.DB(), shared.JobKindEvent, shared.TopicOrderCreated, event, now); err != nil {
		return err
	}

	if o.Customer().Email() == "" {
		return nil
	}

	email, err := json.Marshal(shared.OrderEmail{
		To:      o.Customer().Email(),
		ToName:  o.Customer().Name(),
		Subject: fmt.Sprintf("Pedido #%s - %s", o.Number(), c.store.Name),
		Body: order.BuildMessage(order.MessageSettings{
			StoreName:          c.store.Name,
			PixDiscountPercent: c.store.PixDiscountPercent,
		}, o),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode order email")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), shared.JobKindEmail, shared.TopicOrderConfirmation, email, now)
}

func orderCreatedEvent(o *order.Order) shared.OrderCreatedEvent {
	items := make([]shared.EventOrderItem, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		items = append(items, shared.EventOrderItem{
			ProductID: l.ProductID(),
			Name:      l.Name(),
			Price:     l.Price(),
			Size:      l.Size(),
			Color:     l.Color(),
			Quantity:  l.Quantity(),
		})
	}
	return shared.OrderCreatedEvent{
		OrderID:     o.ID(),
		OrderNumber: o.Number(),
		SessionID:   o.SessionID(),
		Customer: shared.EventCustomer{
			Name:  o.Customer().Name(),
			Phone: o.Customer().Phone(),
			Email: o.Customer().Email(),
		},
		Items:     items,
		Subtotal:  o.Subtotal(),
		Status:    string(o.Status()),
		CreatedAt: o.CreatedAt(),
	}
}

// checkoutKey identifies one checkout of one cart state. A cart evicted by the
// TTL index comes back at version 1 under the same session, so the document's
// creation time is part of the key. Milliseconds match what Mongo stores.
func checkoutKey(c *cart.Cart) string {
	var b strings.Builder
	b.WriteString(c.SessionID())
	b.WriteByte('|')
	b.WriteString(strconv.FormatInt(c.CreatedAt().UnixMilli(), 10))
	b.WriteByte('|')
	b.WriteString(strconv.FormatInt(c.Version(), 10))
	for _, l := range c.Lines() {
		fmt.Fprintf(&b, "|%s\x1f%s\x1f%s\x1f%d\x1f%s", l.ProductID(), l.Size(), l.Color(), l.Quantity(), l.Price().String())
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
