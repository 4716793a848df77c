package handlers

import (
	"ShopBot/internal/bot/customer"
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/bot/keyboards"
	"ShopBot/internal/core/callback"
	"context"
	"fmt"
)

func init() {
	customer.RegisterMenu(NewNavigationMenu)
	customer.RegisterCallback(NewNavigationCallbacks)
}

// navigationMenu handles home, help and contact labels.
type navigationMenu struct {
	deps *customer.Deps
}

func NewNavigationMenu(deps *customer.Deps) customer.MenuHandler {
	return &navigationMenu{deps: deps}
}

func (h *navigationMenu) Buttons() []i18n.Button {
	return []i18n.Button{i18n.BtnHome, i18n.BtnBack, i18n.BtnCancel, i18n.BtnHelp, i18n.BtnContact}
}

func (h *navigationMenu) Handle(ctx context.Context, req *customer.Request, button i18n.Button) error {
	switch button {
	case i18n.BtnHelp:
		return h.deps.MainMenu(ctx, req, i18n.MsgHelp)
	case i18n.BtnContact:
		return sendContact(ctx, h.deps, req)
	default:
		return h.deps.MainMenu(ctx, req, i18n.MsgWelcomeBack)
	}
}

func sendContact(ctx context.Context, deps *customer.Deps, req *customer.Request) error {
	phone, username := deps.Support()
	text := i18n.T(req.Lang(), i18n.MsgContact, esc(phone), esc("@"+username))
	return deps.Reply(ctx, req, text, keyboards.Contact(req.Lang(), phone, username))
}

// navigationCallbacks handles back_to_main and noop.
type navigationCallbacks struct {
	deps *customer.Deps
}

func NewNavigationCallbacks(deps *customer.Deps) customer.CallbackHandler {
	return &navigationCallbacks{deps: deps}
}

func (h *navigationCallbacks) Kinds() []callback.Kind {
	return []callback.Kind{callback.KindBackToMain, callback.KindNoop}
}

func (h *navigationCallbacks) Handle(ctx context.Context, req *customer.Request, action callback.Action) error {
	switch action.(type) {
	case callback.BackToMain:
		return h.deps.MainMenu(ctx, req, i18n.MsgWelcomeBack)
	case callback.Noop:
		return nil
	default:
		return fmt.Errorf("navigation: unexpected action %T", action)
	}
}
