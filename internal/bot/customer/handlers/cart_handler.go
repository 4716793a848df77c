package handlers

import (
	"ShopBot/internal/bot/customer"
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/bot/keyboards"
	"ShopBot/internal/core/callback"
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"errors"
	"fmt"
	"strings"
)

func init() {
	customer.RegisterMenu(NewCartMenu)
	customer.RegisterCallback(NewCartCallbacks)
	customer.RegisterState(NewClearCartState)
}

// showCart sends the cart header, one message per line with its own keyboard, then the total.
func showCart(ctx context.Context, deps *customer.Deps, req *customer.Request) error {
	lang := req.Lang()
	items, err := deps.Cart.ListItems(ctx, req.User.ID)
	if err != nil {
		return fmt.Errorf("list cart: %w", err)
	}
	if len(items) == 0 {
		deps.Sessions.SetCartTotalMessage(req.Update.UserID, 0)
		return deps.Reply(ctx, req, i18n.T(lang, i18n.MsgCartEmpty), keyboards.Cart(lang, false))
	}

	if err := deps.Reply(ctx, req, i18n.T(lang, i18n.MsgCartTitle), keyboards.Cart(lang, true)); err != nil {
		return err
	}
	for _, item := range items {
		text := i18n.T(lang, i18n.MsgCartLine, esc(item.ProductName), item.UnitPrice.String(), item.Quantity, item.LineTotal().String())
		if err := deps.Reply(ctx, req, text, keyboards.CartItem(lang, item.ID, item.Quantity)); err != nil {
			return err
		}
	}
	totalID, err := customer.Send(ctx, deps.Bot, req.Update.ChatID, i18n.T(lang, i18n.MsgCartTotal, domain.CartTotal(items).String()), nil)
	if err != nil {
		return err
	}
	deps.Sessions.SetCartTotalMessage(req.Update.UserID, totalID)
	return nil
}

// refreshCartTotal recomputes the total after a line changed and edits the
// total message shown by showCart. Without one, a new total is sent.
func refreshCartTotal(ctx context.Context, deps *customer.Deps, req *customer.Request) error {
	lang := req.Lang()
	items, err := deps.Cart.ListItems(ctx, req.User.ID)
	if err != nil {
		return fmt.Errorf("list cart: %w", err)
	}
	text := i18n.T(lang, i18n.MsgCartTotal, domain.CartTotal(items).String())
	if len(items) == 0 {
		text = i18n.T(lang, i18n.MsgCartEmpty)
	}

	if totalID := deps.Sessions.CartTotalMessage(req.Update.UserID); totalID != 0 {
		err := deps.Bot.EditMessageText(ctx, ports.EditMessageParams{
			ChatID:    req.Update.ChatID,
			MessageID: totalID,
			Text:      text,
			ParseMode: "HTML",
		})
		if err == nil {
			return nil
		}
		log := handlerLogger(ctx, deps, "cart_handler")
		log.Warn().Err(err).Int("message_id", totalID).Msg("Failed to edit cart total, sending a new one")
	}

	totalID, err := customer.Send(ctx, deps.Bot, req.Update.ChatID, text, nil)
	if err != nil {
		return err
	}
	deps.Sessions.SetCartTotalMessage(req.Update.UserID, totalID)
	return nil
}

type cartMenu struct {
	deps *customer.Deps
}

func NewCartMenu(deps *customer.Deps) customer.MenuHandler {
	return &cartMenu{deps: deps}
}

func (h *cartMenu) Buttons() []i18n.Button {
	return []i18n.Button{i18n.BtnCart, i18n.BtnClearCart}
}

func (h *cartMenu) Handle(ctx context.Context, req *customer.Request, button i18n.Button) error {
	if button == i18n.BtnClearCart {
		lang := req.Lang()
		h.deps.Sessions.SetState(req.Update.UserID, domain.ConfirmClearCart{UserID: req.User.ID})
		return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgClearCartConfirm), keyboards.Confirm(lang))
	}
	return showCart(ctx, h.deps, req)
}

// cartCallbacks handles add-to-cart and the per-line cart keyboards.
type cartCallbacks struct {
	deps *customer.Deps
}

func NewCartCallbacks(deps *customer.Deps) customer.CallbackHandler {
	return &cartCallbacks{deps: deps}
}

func (h *cartCallbacks) Kinds() []callback.Kind {
	return []callback.Kind{callback.KindGoToCart, callback.KindAddToCart, callback.KindCartItem}
}

func (h *cartCallbacks) Handle(ctx context.Context, req *customer.Request, action callback.Action) error {
	switch a := action.(type) {
	case callback.GoToCart:
		return showCart(ctx, h.deps, req)
	case callback.AddToCart:
		return h.add(ctx, req, a)
	case callback.CartItem:
		return h.itemOp(ctx, req, a)
	default:
		return fmt.Errorf("cart: unexpected action %T", action)
	}
}

func (h *cartCallbacks) add(ctx context.Context, req *customer.Request, a callback.AddToCart) error {
	log := handlerLogger(ctx, h.deps, "cart_handler")
	lang := req.Lang()
	qty := max(a.Quantity, callback.MinQuantity)

	product, err := h.deps.Products.Get(ctx, a.ProductID)
	if err != nil {
		return fmt.Errorf("get product %d: %w", a.ProductID, err)
	}
	if !product.Available(qty) {
		req.Toast(i18n.T(lang, i18n.MsgProductUnavailable), false)
		return h.deps.ReplyT(ctx, req, i18n.MsgProductUnavailable)
	}

	if err := h.deps.Cart.Add(ctx, req.User.ID, a.ProductID, qty); err != nil {
		if errors.Is(err, domain.ErrProductUnavailable) {
			req.Toast(i18n.T(lang, i18n.MsgProductUnavailable), false)
			return h.deps.ReplyT(ctx, req, i18n.MsgProductUnavailable)
		}
		return fmt.Errorf("add product %d to cart: %w", a.ProductID, err)
	}

	log.Info().Int64("product_id", a.ProductID).Int("qty", qty).Msg("Added to cart")
	req.Toast("✅", false)
	text := i18n.T(lang, i18n.MsgAddedToCart, esc(product.Name), qty)
	return h.deps.Reply(ctx, req, text, keyboards.AddedToCart(lang))
}

// itemOp applies an operation to a cart line owned by the sender.
func (h *cartCallbacks) itemOp(ctx context.Context, req *customer.Request, a callback.CartItem) error {
	lang := req.Lang()
	userID := req.User.ID

	item, err := h.deps.Cart.GetItem(ctx, userID, a.CartItemID)
	if err != nil {
		return fmt.Errorf("get cart item %d: %w", a.CartItemID, err)
	}
	if item == nil {
		req.Toast(i18n.T(lang, i18n.MsgCartItemNotFound), true)
		return nil
	}

	switch a.Op {
	case callback.CartShow:
		req.Toast(i18n.T(lang, i18n.MsgQuantityUnit, item.Quantity), false)
		return nil

	case callback.CartDecrease:
		if item.Quantity <= callback.MinQuantity {
			req.Toast(i18n.T(lang, i18n.MsgMinQuantity), true)
			return nil
		}
		return h.setQuantity(ctx, req, item, item.Quantity-1)

	case callback.CartIncrease:
		product, err := h.deps.Products.Get(ctx, item.ProductID)
		if err != nil {
			return fmt.Errorf("get product %d: %w", item.ProductID, err)
		}
		if !product.Available(item.Quantity + 1) {
			req.Toast(i18n.T(lang, i18n.MsgProductUnavailable), true)
			return nil
		}
		return h.setQuantity(ctx, req, item, item.Quantity+1)

	case callback.CartRemove:
		if err := h.deps.Cart.Remove(ctx, userID, item.ID); err != nil {
			return fmt.Errorf("remove cart item %d: %w", item.ID, err)
		}
		req.Toast(i18n.T(lang, i18n.MsgCartItemRemoved), false)
		err := h.deps.Bot.EditMessageText(ctx, ports.EditMessageParams{
			ChatID:    req.Update.ChatID,
			MessageID: req.Update.MessageID,
			Text:      fmt.Sprintf("<s>%s</s>\n%s", esc(item.ProductName), i18n.T(lang, i18n.MsgCartItemRemoved)),
			ParseMode: "HTML",
		})
		if err != nil {
			return err
		}
		return refreshCartTotal(ctx, h.deps, req)

	default:
		return fmt.Errorf("cart: unexpected op %q", a.Op)
	}
}

func (h *cartCallbacks) setQuantity(ctx context.Context, req *customer.Request, item *domain.CartItem, qty int) error {
	lang := req.Lang()
	if err := h.deps.Cart.UpdateQuantity(ctx, req.User.ID, item.ID, qty); err != nil {
		return fmt.Errorf("update cart item %d: %w", item.ID, err)
	}
	item.Quantity = qty

	text := i18n.T(lang, i18n.MsgCartLine, esc(item.ProductName), item.UnitPrice.String(), item.Quantity, item.LineTotal().String())
	err := h.deps.Bot.EditMessageText(ctx, ports.EditMessageParams{
		ChatID:      req.Update.ChatID,
		MessageID:   req.Update.MessageID,
		Text:        text,
		ParseMode:   "HTML",
		ReplyMarkup: keyboards.CartItem(lang, item.ID, qty),
	})
	if err != nil {
		return err
	}
	return refreshCartTotal(ctx, h.deps, req)
}

// clearCartState waits for the yes/no answer to "clear the cart?".
type clearCartState struct {
	deps *customer.Deps
}

func NewClearCartState(deps *customer.Deps) customer.StateHandler {
	return &clearCartState{deps: deps}
}

func (h *clearCartState) States() []domain.StateKind {
	return []domain.StateKind{domain.StateConfirmClearCart}
}

func (h *clearCartState) Handle(ctx context.Context, req *customer.Request, state domain.ConversationState) error {
	log := handlerLogger(ctx, h.deps, "cart_handler")
	lang := req.Lang()
	userID := req.Update.UserID
	text := strings.TrimSpace(req.Update.Text)

	target, ok := state.(domain.ConfirmClearCart)
	if !ok {
		return fmt.Errorf("clear cart: unexpected state %T", state)
	}

	switch {
	case i18n.Is(text, i18n.BtnYes):
		if err := h.deps.Cart.Clear(ctx, target.UserID); err != nil {
			log.Error().Err(err).Msg("Failed to clear cart")
			return h.deps.ReplyT(ctx, req, i18n.MsgOperationFailed)
		}
		h.deps.Sessions.ClearState(userID)
		return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgCartCleared), keyboards.Cart(lang, false))

	case i18n.Is(text, i18n.BtnNo):
		h.deps.Sessions.ClearState(userID)
		return showCart(ctx, h.deps, req)

	default:
		return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgClearCartPrompt), keyboards.Confirm(lang))
	}
}
