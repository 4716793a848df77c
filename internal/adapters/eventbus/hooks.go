package eventbus

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
)

// Hooks turns checkout and registration callbacks into bus events.
type Hooks struct {
	bus ports.EventBus
}

var (
	_ ports.OrderNotifier = (*Hooks)(nil)
	_ ports.MarketingHook = (*Hooks)(nil)
)

// NewHooks creates hooks that publish on bus.
func NewHooks(bus ports.EventBus) *Hooks {
	return &Hooks{bus: bus}
}

// OrderCreated publishes "order:created".
func (h *Hooks) OrderCreated(ctx context.Context, order *domain.Order, customer *domain.User) error {
	return h.bus.Publish(ctx, ports.TopicOrderCreated, domain.OrderPlaced{Order: order, Customer: customer})
}

// UserRegistered publishes "user:registered".
func (h *Hooks) UserRegistered(ctx context.Context, user *domain.User) error {
	return h.bus.Publish(ctx, ports.TopicUserRegistered, user)
}
