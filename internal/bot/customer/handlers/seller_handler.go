package handlers

import (
	"ShopBot/internal/bot/customer"
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/bot/keyboards"
	"ShopBot/internal/core/domain"
	"context"
	"fmt"
	"strings"
)

func init() {
	customer.RegisterMenu(NewSellerMenu)
	customer.RegisterState(NewSellerWizard)
}

type sellerMenu struct {
	deps *customer.Deps
}

func NewSellerMenu(deps *customer.Deps) customer.MenuHandler {
	return &sellerMenu{deps: deps}
}

func (h *sellerMenu) Buttons() []i18n.Button {
	return []i18n.Button{i18n.BtnBecomeSeller}
}

func (h *sellerMenu) Handle(ctx context.Context, req *customer.Request, _ i18n.Button) error {
	h.deps.Sessions.SetState(req.Update.UserID, domain.SellerName{})
	lang := req.Lang()
	return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgSellerStart), keyboards.CancelOnly(lang))
}

// sellerWizard collects a become-seller application.
type sellerWizard struct {
	deps *customer.Deps
}

func NewSellerWizard(deps *customer.Deps) customer.StateHandler {
	return &sellerWizard{deps: deps}
}

func (h *sellerWizard) States() []domain.StateKind {
	return []domain.StateKind{
		domain.StateSellerName,
		domain.StateSellerPhone,
		domain.StateSellerBrand,
		domain.StateSellerProducts,
	}
}

func (h *sellerWizard) Handle(ctx context.Context, req *customer.Request, state domain.ConversationState) error {
	text := strings.TrimSpace(req.Update.Text)
	lang := req.Lang()
	userID := req.Update.UserID

	if isCancel(text) {
		h.deps.Sessions.ClearState(userID)
		return h.deps.MainMenu(ctx, req, i18n.MsgSellerCancelled)
	}

	ask := func(id i18n.MessageID) error {
		return h.deps.Reply(ctx, req, i18n.T(lang, id), keyboards.CancelOnly(lang))
	}

	switch s := state.(type) {
	case domain.SellerName:
		if !longEnough(text, 2) {
			return ask(i18n.MsgNameTooShort)
		}
		h.deps.Sessions.SetState(userID, domain.SellerPhone{Name: text})
		return ask(i18n.MsgSellerAskPhone)

	case domain.SellerPhone:
		raw := text
		if req.Update.Contact != nil {
			raw = req.Update.Contact.PhoneNumber
		}
		phone, ok := normalizePhone(raw)
		if !ok {
			return ask(i18n.MsgInvalidPhone)
		}
		h.deps.Sessions.SetState(userID, domain.SellerBrand{Name: s.Name, Phone: phone})
		return ask(i18n.MsgSellerAskBrand)

	case domain.SellerBrand:
		if !longEnough(text, 2) {
			return ask(i18n.MsgSellerBrandTooShort)
		}
		h.deps.Sessions.SetState(userID, domain.SellerProducts{Name: s.Name, Phone: s.Phone, Brand: text})
		return ask(i18n.MsgSellerAskProducts)

	case domain.SellerProducts:
		if !longEnough(text, 10) {
			return ask(i18n.MsgSellerProductsTooShort)
		}
		return h.submit(ctx, req, s, text)

	default:
		return fmt.Errorf("seller wizard: unexpected state %T", state)
	}
}

func (h *sellerWizard) submit(ctx context.Context, req *customer.Request, s domain.SellerProducts, products string) error {
	log := handlerLogger(ctx, h.deps, "seller_handler")

	app := &domain.SellerApplication{
		UserID:      req.User.ID,
		ContactName: s.Name,
		Phone:       s.Phone,
		Brand:       s.Brand,
		Products:    products,
		Status:      domain.SellerPending,
		CreatedAt:   h.deps.Clock(),
	}
	if err := h.deps.Sellers.Create(ctx, app); err != nil {
		log.Error().Err(err).Msg("Failed to save seller application")
		return h.deps.ReplyT(ctx, req, i18n.MsgOperationFailed)
	}

	h.deps.Sessions.ClearState(req.Update.UserID)
	log.Info().Int64("application_id", app.ID).Msg("Seller application submitted")
	return h.deps.MainMenu(ctx, req, i18n.MsgSellerSubmitted)
}
