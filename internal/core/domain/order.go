package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Emoji is the status marker used in order lists.
func (s OrderStatus) Emoji() string {
	switch s {
	case OrderPending:
		return "⏳"
	case OrderConfirmed:
		return "✅"
	case OrderShipped:
		return "🚚"
	case OrderDelivered:
		return "📦"
	case OrderCancelled:
		return "❌"
	default:
		return "❓"
	}
}

// PaymentMethod is how the customer pays for an order.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// LocationAddress is stored as the address when only a geolocation was shared.
const LocationAddress = "Геолокация отправлена"

// Order is a placed order. Items snapshot name and price at purchase time.
type Order struct {
	ID            int64
	UserID        uuid.UUID
	Subtotal      Money
	Discount      Money
	Total         Money
	Status        OrderStatus
	Address       string
	PaymentMethod PaymentMethod
	Latitude      *float64
	Longitude     *float64
	PromoCode     *string
	PointsEarned  int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Items         []OrderItem
}

// OrderItem is a denormalized snapshot of one purchased line.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	UnitPrice   Money
	Quantity    int
}

// LineTotal is quantity × unit price.
func (i OrderItem) LineTotal() Money {
	return i.UnitPrice.Mul(i.Quantity)
}

// ItemsTotal sums the snapshot lines; it equals Subtotal for every persisted order.
func (o *Order) ItemsTotal() Money {
	var total Money
	for _, it := range o.Items {
		total += it.LineTotal()
	}
	return total
}

// Cancellable reports whether the customer may still cancel the order.
func (o *Order) Cancellable() bool {
	return o.Status == OrderPending
}

// CheckoutRequest carries everything needed to turn a cart into an order.
type CheckoutRequest struct {
	UserID        uuid.UUID
	Address       string
	PaymentMethod PaymentMethod
	Latitude      *float64
	Longitude     *float64
	PromoCode     string
}
