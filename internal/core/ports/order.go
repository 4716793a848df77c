package ports

import (
	"ShopBot/internal/core/domain"
	"context"
	"time"

	"github.com/google/uuid"
)

// CartRepository defines persistence for cart lines.
type CartRepository interface {
	// ListItems returns the user's cart joined with current product name and price.
	ListItems(ctx context.Context, userID uuid.UUID) ([]domain.CartItem, error)

	// Add inserts a line or increases an existing one. It returns
	// domain.ErrProductUnavailable when the product is inactive or lacks stock.
	Add(ctx context.Context, userID uuid.UUID, productID int64, qty int) error

	// GetItem returns a line only if it belongs to userID.
	GetItem(ctx context.Context, userID uuid.UUID, itemID int64) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, userID uuid.UUID, itemID int64, qty int) error
	Remove(ctx context.Context, userID uuid.UUID, itemID int64) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

// OrderFilter narrows admin order listings.
type OrderFilter struct {
	Status domain.OrderStatus
	Search string
	Limit  int
	Offset int
}

// DashboardStats feeds the admin dashboard.
type DashboardStats struct {
	Users         int
	Orders        int
	PendingOrders int
	Products      int
	Revenue       domain.Money
}

// OrderRepository defines persistence for orders.
type OrderRepository interface {
	// CreateFromCart turns the user's cart into an order in one transaction:
	// items are snapshotted, stock decremented, the promo applied, loyalty
	// points credited and the cart cleared. On error nothing is changed.
	CreateFromCart(ctx context.Context, req domain.CheckoutRequest) (*domain.Order, error)

	// GetForUser returns the order with items only if it belongs to userID.
	GetForUser(ctx context.Context, orderID int64, userID uuid.UUID) (*domain.Order, error)
	Get(ctx context.Context, orderID int64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*domain.Order, int, error)

	UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error
	// CancelForUser cancels a pending order owned by userID. It restocks the
	// items and reverses the loyalty points the order earned.
	CancelForUser(ctx context.Context, orderID int64, userID uuid.UUID) error

	HasPurchased(ctx context.Context, userID uuid.UUID, productID int64) (bool, error)
	UserStats(ctx context.Context, userID uuid.UUID) (domain.UserStats, error)
	Dashboard(ctx context.Context) (DashboardStats, error)
}

// LoyaltyRepository defines persistence for loyalty balances.
type LoyaltyRepository interface {
	// Get returns a zero account when the user has none yet.
	Get(ctx context.Context, userID uuid.UUID) (*domain.LoyaltyAccount, error)
	Ensure(ctx context.Context, userID uuid.UUID) error
}

// PromoRepository defines persistence for promo codes.
type PromoRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Promo, error)
	ListAvailable(ctx context.Context, now time.Time) ([]*domain.Promo, error)
}

// NotificationRepository stores in-bot notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListUnread(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id int64) error
}

// SellerRepository stores become-seller applications.
type SellerRepository interface {
	Create(ctx context.Context, app *domain.SellerApplication) error
	List(ctx context.Context, params ListParams) ([]*domain.SellerApplication, int, error)
}
