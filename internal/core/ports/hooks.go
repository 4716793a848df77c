package ports

import (
	"ShopBot/internal/core/domain"
	"context"
)

// OrderNotifier is told about every successfully placed order. Optional.
type OrderNotifier interface {
	OrderCreated(ctx context.Context, order *domain.Order, customer *domain.User) error
}

// MarketingHook is told about every completed registration. Optional.
type MarketingHook interface {
	UserRegistered(ctx context.Context, user *domain.User) error
}

// PaymentRequest asks a provider to start collecting money for an order.
type PaymentRequest struct {
	Provider string
	OrderID  int64
	Amount   domain.Money
	Customer *domain.User
}

// PaymentResult is what the customer needs to complete a payment.
type PaymentResult struct {
	Reference    string
	Provider     string
	Amount       domain.Money
	PaymentURL   string
	Instructions string
}

// PaymentPort starts payments with an external processor.
type PaymentPort interface {
	CreatePayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error)
}

// TrackingEvent is one step in a shipment history.
type TrackingEvent struct {
	Description string
	Status      domain.OrderStatus
}

// TrackingInfo describes a shipment.
type TrackingInfo struct {
	Number  string
	Status  domain.OrderStatus
	History []TrackingEvent
}

// ShipmentTracker looks up shipments by tracking number. Optional.
type ShipmentTracker interface {
	// Track returns nil, nil when the number is unknown.
	Track(ctx context.Context, number string) (*TrackingInfo, error)
}
