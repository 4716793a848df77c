package handlers

import (
	"ShopBot/internal/bot/customer"
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/bot/keyboards"
	"ShopBot/internal/core/domain"
	"context"
	"errors"
	"fmt"
	"strings"
)

const minAddressLength = 10

func init() {
	customer.RegisterMenu(NewCheckoutMenu)
	customer.RegisterState(NewCheckoutWizard)
}

type checkoutMenu struct {
	deps *customer.Deps
}

func NewCheckoutMenu(deps *customer.Deps) customer.MenuHandler {
	return &checkoutMenu{deps: deps}
}

func (h *checkoutMenu) Buttons() []i18n.Button {
	return []i18n.Button{i18n.BtnCheckout}
}

// Handle shows the order summary and asks for the delivery address.
func (h *checkoutMenu) Handle(ctx context.Context, req *customer.Request, _ i18n.Button) error {
	lang := req.Lang()
	items, err := h.deps.Cart.ListItems(ctx, req.User.ID)
	if err != nil {
		return fmt.Errorf("list cart: %w", err)
	}
	if len(items) == 0 {
		return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgCartEmpty), keyboards.Cart(lang, false))
	}

	units := 0
	for _, it := range items {
		units += it.Quantity
	}
	h.deps.Sessions.SetState(req.Update.UserID, domain.OrderAddress{})
	text := i18n.T(lang, i18n.MsgCheckoutSummary, units, domain.CartTotal(items).String())
	return h.deps.Reply(ctx, req, text, keyboards.Address(lang))
}

// checkoutWizard collects the address and payment method, then places the order.
type checkoutWizard struct {
	deps *customer.Deps
}

func NewCheckoutWizard(deps *customer.Deps) customer.StateHandler {
	return &checkoutWizard{deps: deps}
}

func (h *checkoutWizard) States() []domain.StateKind {
	return []domain.StateKind{domain.StateOrderAddress, domain.StateOrderPayment}
}

func (h *checkoutWizard) Handle(ctx context.Context, req *customer.Request, state domain.ConversationState) error {
	switch s := state.(type) {
	case domain.OrderAddress:
		return h.handleAddress(ctx, req)
	case domain.OrderPayment:
		return h.handlePayment(ctx, req, s)
	default:
		return fmt.Errorf("checkout: unexpected state %T", state)
	}
}

func (h *checkoutWizard) handleAddress(ctx context.Context, req *customer.Request) error {
	lang := req.Lang()
	userID := req.Update.UserID
	text := strings.TrimSpace(req.Update.Text)

	var next domain.OrderPayment
	switch {
	case req.Update.Location != nil:
		lat, lon := req.Update.Location.Latitude, req.Update.Location.Longitude
		next = domain.OrderPayment{Address: domain.LocationAddress, Latitude: &lat, Longitude: &lon}
	case i18n.Is(text, i18n.BtnBack), i18n.Is(text, i18n.BtnHome):
		h.deps.Sessions.ClearState(userID)
		return h.deps.MainMenu(ctx, req, i18n.MsgWelcomeBack)
	case i18n.Is(text, i18n.BtnEnterAddress):
		return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgEnterAddress), keyboards.Address(lang))
	case longEnough(text, minAddressLength):
		next = domain.OrderPayment{Address: text}
	default:
		return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgAddressTooShort), keyboards.Address(lang))
	}

	h.deps.Sessions.SetState(userID, next)
	return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgChoosePayment), keyboards.PaymentMethods(lang))
}

func (h *checkoutWizard) handlePayment(ctx context.Context, req *customer.Request, s domain.OrderPayment) error {
	lang := req.Lang()
	userID := req.Update.UserID
	text := strings.TrimSpace(req.Update.Text)

	var method domain.PaymentMethod
	switch {
	case i18n.Is(text, i18n.BtnPayCash):
		method = domain.PaymentCash
	case i18n.Is(text, i18n.BtnPayCard):
		method = domain.PaymentCard
	case isCancel(text), i18n.Is(text, i18n.BtnHome):
		h.deps.Sessions.ClearState(userID)
		return h.deps.MainMenu(ctx, req, i18n.MsgWelcomeBack)
	default:
		return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgPickPayment), keyboards.PaymentMethods(lang))
	}

	return h.placeOrder(ctx, req, s, method)
}

// placeOrder creates the order atomically. Any failure leaves the cart untouched.
// Store failures keep the payment step so the user can retry; an empty cart or a
// line out of stock ends checkout, since the cart has to change first.
func (h *checkoutWizard) placeOrder(ctx context.Context, req *customer.Request, s domain.OrderPayment, method domain.PaymentMethod) error {
	log := handlerLogger(ctx, h.deps, "checkout_handler")
	lang := req.Lang()
	userID := req.Update.UserID

	order, err := h.deps.Orders.CreateFromCart(ctx, domain.CheckoutRequest{
		UserID:        req.User.ID,
		Address:       s.Address,
		PaymentMethod: method,
		Latitude:      s.Latitude,
		Longitude:     s.Longitude,
		PromoCode:     h.deps.Sessions.PromoCode(userID),
	})
	switch {
	case errors.Is(err, domain.ErrCartEmpty):
		h.deps.Sessions.ClearState(userID)
		return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgCartEmpty), keyboards.Cart(lang, false))
	case errors.Is(err, domain.ErrProductUnavailable):
		h.deps.Sessions.ClearState(userID)
		return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgProductUnavailable), keyboards.Cart(lang, true))
	case err != nil:
		log.Error().Err(err).Str("payment", string(method)).Msg("Failed to create order")
		return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgOrderFailed), keyboards.PaymentMethods(lang))
	}

	h.deps.Sessions.ClearState(userID)
	h.deps.Sessions.SetPromoCode(userID, "")
	log.Info().Int64("order_id", order.ID).Str("total", order.Total.String()).Msg("Order created")

	text := i18n.T(lang, i18n.MsgOrderCreated, order.ID, order.Total.String(), esc(order.Address), paymentName(lang, method), order.PointsEarned)
	if order.Discount > 0 {
		text += "\n" + i18n.T(lang, i18n.MsgOrderDiscount, order.Discount.String())
	}
	if err := h.deps.Reply(ctx, req, text, keyboards.Main(lang)); err != nil {
		return err
	}

	followup := i18n.MsgOrderCashFollowup
	if method == domain.PaymentCard {
		followup = i18n.MsgOrderCardFollowup
	}
	if err := h.deps.Reply(ctx, req, i18n.T(lang, followup), keyboards.Payment(lang, order)); err != nil {
		return err
	}

	if h.deps.OrderNotifier != nil {
		if err := h.deps.OrderNotifier.OrderCreated(ctx, order, req.User); err != nil {
			log.Warn().Err(err).Int64("order_id", order.ID).Msg("Order notifier failed")
		}
	}
	return nil
}

func paymentName(lang domain.Language, method domain.PaymentMethod) string {
	if method == domain.PaymentCard {
		return i18n.Label(lang, i18n.BtnPayCard)
	}
	return i18n.Label(lang, i18n.BtnPayCash)
}
