package tracking

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// NumberPrefix is printed in front of order ids on shipping labels.
const NumberPrefix = "SB"

// orderReader is the part of the order repository the tracker needs.
type orderReader interface {
	Get(ctx context.Context, orderID int64) (*domain.Order, error)
}

// OrderTracker answers tracking lookups from the order's own status.
// Tracking numbers are order ids, optionally prefixed with "SB".
type OrderTracker struct {
	orders orderReader
}

var _ ports.ShipmentTracker = (*OrderTracker)(nil)

// NewOrderTracker creates a tracker backed by orders.
func NewOrderTracker(orders orderReader) *OrderTracker {
	return &OrderTracker{orders: orders}
}

// Number formats the tracking number of an order.
func Number(orderID int64) string {
	return NumberPrefix + strconv.FormatInt(orderID, 10)
}

// Track returns nil, nil for numbers that do not name an order.
func (t *OrderTracker) Track(ctx context.Context, number string) (*ports.TrackingInfo, error) {
	raw := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(number)), NumberPrefix)
	orderID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || orderID <= 0 {
		return nil, nil
	}

	order, err := t.orders.Get(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("track order %d: %w", orderID, err)
	}
	if order == nil {
		return nil, nil
	}

	return &ports.TrackingInfo{
		Number:  Number(order.ID),
		Status:  order.Status,
		History: history(order),
	}, nil
}

// history lists every lifecycle step the order has passed through.
func history(order *domain.Order) []ports.TrackingEvent {
	stamp := order.CreatedAt.Format("02.01.2006 15:04")
	if order.Status == domain.OrderCancelled {
		return []ports.TrackingEvent{
			{Status: domain.OrderPending, Description: stamp},
			{Status: domain.OrderCancelled, Description: Number(order.ID)},
		}
	}

	var events []ports.TrackingEvent
	for _, s := range domain.OrderStatuses {
		if s == domain.OrderCancelled {
			break
		}
		desc := Number(order.ID)
		if s == domain.OrderPending {
			desc = stamp
		}
		events = append(events, ports.TrackingEvent{Status: s, Description: desc})
		if s == order.Status {
			break
		}
	}
	return events
}
