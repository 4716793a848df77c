package handlers

import (
	"ShopBot/internal/bot/customer"
	"ShopBot/internal/bot/deeplink"
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/bot/keyboards"
	"ShopBot/internal/core/callback"
	"ShopBot/internal/core/domain"
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	recentOrdersLimit = 10
	orderTimeLayout   = "02.01.2006 15:04"
)

func init() {
	customer.RegisterMenu(NewOrdersMenu)
	customer.RegisterDeepLink(NewOrderLink)
	customer.RegisterCallback(NewOrderCallbacks)
}

// showOrder sends an order card with its items.
func showOrder(ctx context.Context, deps *customer.Deps, req *customer.Request, orderID int64) error {
	lang := req.Lang()
	order, err := deps.Orders.GetForUser(ctx, orderID, req.User.ID)
	if err != nil {
		return fmt.Errorf("get order %d: %w", orderID, err)
	}
	if order == nil {
		return deps.ReplyT(ctx, req, i18n.MsgOrderNotFound, orderID)
	}

	lines := []string{i18n.T(lang, i18n.MsgOrderDetails,
		order.ID,
		order.Status.Emoji(),
		i18n.StatusText(lang, order.Status),
		order.Total.String(),
		order.CreatedAt.Format(orderTimeLayout),
		esc(order.Address),
		paymentName(lang, order.PaymentMethod),
	)}
	if order.Discount > 0 {
		lines = append(lines, i18n.T(lang, i18n.MsgOrderDiscount, order.Discount.String()))
	}
	if len(order.Items) > 0 {
		lines = append(lines, "", i18n.T(lang, i18n.MsgOrderItemsHeader))
		for _, it := range order.Items {
			lines = append(lines, i18n.T(lang, i18n.MsgOrderItemLine, esc(it.ProductName), it.Quantity, it.LineTotal().String()))
		}
	}
	return deps.Reply(ctx, req, strings.Join(lines, "\n"), keyboards.OrderDetails(lang, order))
}

type ordersMenu struct {
	deps *customer.Deps
}

func NewOrdersMenu(deps *customer.Deps) customer.MenuHandler {
	return &ordersMenu{deps: deps}
}

func (h *ordersMenu) Buttons() []i18n.Button {
	return []i18n.Button{i18n.BtnOrders}
}

// Handle lists the most recent orders.
func (h *ordersMenu) Handle(ctx context.Context, req *customer.Request, _ i18n.Button) error {
	lang := req.Lang()
	orders, err := h.deps.Orders.ListByUser(ctx, req.User.ID, recentOrdersLimit)
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}
	if len(orders) == 0 {
		return h.deps.ReplyT(ctx, req, i18n.MsgNoOrders)
	}

	blocks := []string{i18n.T(lang, i18n.MsgOrdersTitle)}
	for _, o := range orders {
		blocks = append(blocks, i18n.T(lang, i18n.MsgOrderSummaryLine,
			o.Status.Emoji(), o.ID, o.Total.String(), o.CreatedAt.Format(orderTimeLayout), i18n.StatusText(lang, o.Status)))
	}
	blocks = append(blocks, i18n.T(lang, i18n.MsgOrdersHint))
	return h.deps.Reply(ctx, req, strings.Join(blocks, "\n\n"), keyboards.Main(lang))
}

// orderLink handles /order_<id>.
type orderLink struct {
	deps *customer.Deps
}

func NewOrderLink(deps *customer.Deps) customer.DeepLinkHandler {
	return &orderLink{deps: deps}
}

func (h *orderLink) Family() deeplink.Family {
	return deeplink.FamilyOrder
}

func (h *orderLink) Handle(ctx context.Context, req *customer.Request, link deeplink.Link) error {
	order, ok := link.(deeplink.Order)
	if !ok {
		return h.deps.ReplyT(ctx, req, i18n.MsgInvalidOrderNumber)
	}
	return showOrder(ctx, h.deps, req, order.ID)
}

// orderCallbacks handles the buttons of an order card.
type orderCallbacks struct {
	deps *customer.Deps
}

func NewOrderCallbacks(deps *customer.Deps) customer.CallbackHandler {
	return &orderCallbacks{deps: deps}
}

func (h *orderCallbacks) Kinds() []callback.Kind {
	return []callback.Kind{callback.KindOrderDetails, callback.KindContactAbout, callback.KindCancelOrder}
}

func (h *orderCallbacks) Handle(ctx context.Context, req *customer.Request, action callback.Action) error {
	lang := req.Lang()
	switch a := action.(type) {
	case callback.OrderDetails:
		return showOrder(ctx, h.deps, req, a.OrderID)

	case callback.ContactAbout:
		phone, username := h.deps.Support()
		return h.deps.Reply(ctx, req,
			i18n.T(lang, i18n.MsgContactAboutOrder, a.OrderID, esc(phone), esc("@"+username)),
			keyboards.Contact(lang, phone, username))

	case callback.CancelOrder:
		err := h.deps.Orders.CancelForUser(ctx, a.OrderID, req.User.ID)
		switch {
		case errors.Is(err, domain.ErrOrderNotCancelable):
			req.Toast(i18n.T(lang, i18n.MsgOrderNotCancellable), true)
			return nil
		case errors.Is(err, domain.ErrNotFound):
			req.Toast(i18n.T(lang, i18n.MsgOrderNotFound, a.OrderID), true)
			return nil
		case err != nil:
			return fmt.Errorf("cancel order %d: %w", a.OrderID, err)
		}
		req.Toast(i18n.T(lang, i18n.MsgOrderCancelled, a.OrderID), false)
		cancelled := &domain.Order{ID: a.OrderID, Status: domain.OrderCancelled}
		if err := editMarkup(ctx, h.deps, req, keyboards.OrderDetails(lang, cancelled)); err != nil {
			return err
		}
		return h.deps.ReplyT(ctx, req, i18n.MsgOrderCancelled, a.OrderID)

	default:
		return fmt.Errorf("orders: unexpected action %T", action)
	}
}
