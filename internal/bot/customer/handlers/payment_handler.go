package handlers

import (
	"ShopBot/internal/bot/customer"
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/core/callback"
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"fmt"
)

func init() {
	customer.RegisterCallback(NewPaymentCallbacks)
}

// paymentCallbacks handles the buttons attached to a freshly placed order.
type paymentCallbacks struct {
	deps *customer.Deps
}

func NewPaymentCallbacks(deps *customer.Deps) customer.CallbackHandler {
	return &paymentCallbacks{deps: deps}
}

func (h *paymentCallbacks) Kinds() []callback.Kind {
	return []callback.Kind{callback.KindPay, callback.KindCancelPayment}
}

func (h *paymentCallbacks) Handle(ctx context.Context, req *customer.Request, action callback.Action) error {
	switch a := action.(type) {
	case callback.Pay:
		return h.pay(ctx, req, a)
	case callback.CancelPayment:
		req.Toast(i18n.T(req.Lang(), i18n.MsgPaymentCancelled), false)
		if err := editMarkup(ctx, h.deps, req, nil); err != nil {
			return err
		}
		return h.deps.MainMenu(ctx, req, i18n.MsgPaymentCancelled)
	default:
		return fmt.Errorf("payment: unexpected action %T", action)
	}
}

func (h *paymentCallbacks) pay(ctx context.Context, req *customer.Request, a callback.Pay) error {
	log := handlerLogger(ctx, h.deps, "payment_handler")
	lang := req.Lang()

	order, err := h.deps.Orders.GetForUser(ctx, a.OrderID, req.User.ID)
	if err != nil {
		return fmt.Errorf("get order %d: %w", a.OrderID, err)
	}
	if order == nil {
		req.Toast(i18n.T(lang, i18n.MsgOrderNotFound, a.OrderID), true)
		return nil
	}
	if a.Amount != nil && *a.Amount != int64(order.Total) {
		log.Warn().Int64("order_id", order.ID).Int64("button_amount", *a.Amount).Msg("Payment button amount differs from order total")
	}

	switch domain.PaymentMethod(a.Provider) {
	case domain.PaymentCash:
		return h.deps.ReplyT(ctx, req, i18n.MsgCashPayment, order.ID)

	case domain.PaymentCard:
		if h.deps.Payments == nil {
			return h.deps.ReplyT(ctx, req, i18n.MsgPaymentFailed)
		}
		result, err := h.deps.Payments.CreatePayment(ctx, ports.PaymentRequest{
			Provider: a.Provider,
			OrderID:  order.ID,
			Amount:   order.Total,
			Customer: req.User,
		})
		if err != nil {
			log.Error().Err(err).Int64("order_id", order.ID).Msg("Failed to create payment")
			return h.deps.ReplyT(ctx, req, i18n.MsgPaymentFailed)
		}

		text := i18n.T(lang, i18n.MsgCardPayment, order.ID, result.Amount.String(), esc(result.Reference), esc(result.Instructions))
		var markup *ports.ReplyMarkup
		if result.PaymentURL != "" {
			markup = &ports.ReplyMarkup{
				IsInline: true,
				Buttons:  [][]ports.Button{{{Text: i18n.Label(lang, i18n.BtnPayNow), URL: result.PaymentURL}}},
			}
		}
		return h.deps.Reply(ctx, req, text, markup)

	default:
		log.Warn().Str("provider", a.Provider).Msg("Unknown payment provider")
		req.Toast(i18n.T(lang, i18n.MsgActionUnsupported), false)
		return nil
	}
}
