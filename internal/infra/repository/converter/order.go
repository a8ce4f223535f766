package converter

import (
	"fmt"
	"math"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/order"
	"storefront/internal/infra/query"
	"storefront/internal/pkg/pgconv"
)

func OrderToInsertParams(o *order.Order) query.InsertOrderParams {
	customer := o.Customer()
	return query.InsertOrderParams{
		ID:            o.ID(),
		OrderNumber:   o.Number(),
		SessionID:     o.SessionID(),
		CustomerName:  customer.Name(),
		CustomerPhone: customer.Phone(),
		CustomerEmail: pgconv.OptionalStringToPgtype(customer.Email()),
		Subtotal:      pgconv.DecimalToNumeric(o.Subtotal()),
		Notes:         pgconv.OptionalStringToPgtype(o.Notes()),
		Status:        string(o.Status()),
		CreatedAt:     pgconv.TimeToPgtype(o.CreatedAt()),
	}
}

func OrderItemsToParams(o *order.Order) []query.InsertOrderItemParams {
	lines := o.Lines()
	items := make([]query.InsertOrderItemParams, 0, len(lines))
	for i, l := range lines {
		qty := l.Quantity()
		if qty > math.MaxInt32 {
			panic(fmt.Sprintf("quantity out of int32 range: %d", qty))
		}
		items = append(items, query.InsertOrderItemParams{
			OrderID:   o.ID(),
			Position:  int32(i), // #nosec G115 -- bounded by cart size
			ProductID: l.ProductID(),
			Name:      l.Name(),
			Price:     pgconv.DecimalToNumeric(l.Price()),
			Image:     l.Image(),
			Size:      l.Size(),
			Color:     l.Color(),
			Quantity:  int32(qty),
		})
	}
	return items
}

func OrderFromRows(row query.Orders, items []query.OrderItems) (*order.Order, error) {
	status := order.Status(row.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("unknown order status %q", row.Status)
	}

	subtotal, err := pgconv.DecimalFromNumeric(row.Subtotal)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(items))
	for _, it := range items {
		price, err := pgconv.DecimalFromNumeric(it.Price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, cart.ReconstructLine(it.ProductID, it.Name, price, it.Image, it.Size, it.Color, int(it.Quantity)))
	}

	customer := order.ReconstructCustomer(row.CustomerName, row.CustomerPhone, pgconv.StringFromPgtype(row.CustomerEmail))
	return order.Reconstruct(
		row.ID,
		row.OrderNumber,
		customer,
		lines,
		subtotal,
		pgconv.StringFromPgtype(row.Notes),
		status,
		row.SessionID,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
