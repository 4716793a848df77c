package customer

import (
	"ShopBot/internal/bot/deeplink"
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/core/callback"
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"ShopBot/internal/shared/config"
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Deps is everything a handler may need. Tracker, OrderNotifier and
// Marketing are optional and may be nil.
type Deps struct {
	Config *config.Config
	Log    *zerolog.Logger

	Bot      ports.BotClientPort
	Sessions ports.SessionStore

	Users         ports.UserRepository
	Categories    ports.CategoryRepository
	Products      ports.ProductRepository
	Cart          ports.CartRepository
	Orders        ports.OrderRepository
	Loyalty       ports.LoyaltyRepository
	Promos        ports.PromoRepository
	Notifications ports.NotificationRepository
	Sellers       ports.SellerRepository

	Payments      ports.PaymentPort
	Tracker       ports.ShipmentTracker
	OrderNotifier ports.OrderNotifier
	Marketing     ports.MarketingHook

	// Now defaults to time.Now.
	Now func() time.Time
}

// Clock returns the configured time source.
func (d *Deps) Clock() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Support returns the configured support phone and username. Both are empty
// when no config is set.
func (d *Deps) Support() (phone, username string) {
	if d.Config == nil {
		return "", ""
	}
	return d.Config.Bot.SupportPhone, d.Config.Bot.SupportUsername
}

// Request is one inbound update together with its sender.
type Request struct {
	Update *ports.BotUpdate
	// User is nil until registration completes.
	User *domain.User

	toast string
	alert bool
}

// Lang is the sender's language, or the default one for guests.
func (r *Request) Lang() domain.Language {
	return r.User.Lang()
}

// Toast sets the text shown when the router answers the callback query.
func (r *Request) Toast(text string, alert bool) {
	r.toast = text
	r.alert = alert
}

// CommandHandler handles an exact slash command such as /start.
type CommandHandler interface {
	// Command returns the command string (without the "/").
	Command() string
	Handle(ctx context.Context, req *Request) error
}

// GuestCommand is implemented by commands that work before registration.
type GuestCommand interface {
	AllowGuests() bool
}

// DeepLinkHandler handles one deep-link family.
type DeepLinkHandler interface {
	Family() deeplink.Family
	Handle(ctx context.Context, req *Request, link deeplink.Link) error
}

// StateHandler handles messages while a wizard step is in flight.
type StateHandler interface {
	States() []domain.StateKind
	Handle(ctx context.Context, req *Request, state domain.ConversationState) error
}

// MenuHandler handles fixed reply-keyboard labels.
type MenuHandler interface {
	Buttons() []i18n.Button
	Handle(ctx context.Context, req *Request, button i18n.Button) error
}

// CallbackHandler handles parsed inline-button actions.
type CallbackHandler interface {
	Kinds() []callback.Kind
	Handle(ctx context.Context, req *Request, action callback.Action) error
}

// TextHandler receives every registered user's message that nothing else claimed.
type TextHandler interface {
	Handle(ctx context.Context, req *Request) error
}
