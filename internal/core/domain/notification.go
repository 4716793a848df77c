package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind categorizes an in-bot notification.
type NotificationKind string

const (
	NotifyOrder       NotificationKind = "order"
	NotifyOrderStatus NotificationKind = "order_status"
	NotifyPromotion   NotificationKind = "promotion"
	NotifySystem      NotificationKind = "system"
	NotifyInfo        NotificationKind = "info"
)

// Emoji is the marker shown next to the notification title.
func (k NotificationKind) Emoji() string {
	switch k {
	case NotifyOrder:
		return "📦"
	case NotifyOrderStatus:
		return "📋"
	case NotifyPromotion:
		return "🎁"
	case NotifySystem:
		return "⚙️"
	default:
		return "ℹ️"
	}
}

// Notification is a message stored for the user to read via /notifications.
type Notification struct {
	ID        int64
	UserID    uuid.UUID
	Title     string
	Body      string
	Kind      NotificationKind
	IsRead    bool
	CreatedAt time.Time
}

// SellerStatus is the review state of a seller application.
type SellerStatus string

const (
	SellerPending  SellerStatus = "pending"
	SellerApproved SellerStatus = "approved"
	SellerRejected SellerStatus = "rejected"
)

// SellerApplication is submitted through the become-seller wizard.
type SellerApplication struct {
	ID          int64
	UserID      uuid.UUID
	ContactName string
	Phone       string
	Brand       string
	Products    string
	Status      SellerStatus
	CreatedAt   time.Time
}

// OrderStatusChange is published when an admin moves an order to a new status.
type OrderStatusChange struct {
	Order    *Order
	Previous OrderStatus
}

// OrderPlaced is published after a successful checkout.
type OrderPlaced struct {
	Order    *Order
	Customer *User
}
