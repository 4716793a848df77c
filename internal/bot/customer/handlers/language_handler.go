package handlers

import (
	"ShopBot/internal/bot/customer"
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/bot/keyboards"
	"ShopBot/internal/core/domain"
	"context"
	"strings"
)

func init() {
	customer.RegisterCommand(NewLanguageCommand)
	customer.RegisterMenu(NewLanguageMenu)
	customer.RegisterState(NewLanguageState)
}

func askLanguage(ctx context.Context, deps *customer.Deps, req *customer.Request) error {
	deps.Sessions.SetState(req.Update.UserID, domain.ChangingLanguage{})
	lang := req.Lang()
	return deps.Reply(ctx, req, i18n.T(lang, i18n.MsgAskLanguage), keyboards.Languages(lang, true))
}

type languageCommand struct {
	deps *customer.Deps
}

func NewLanguageCommand(deps *customer.Deps) customer.CommandHandler {
	return &languageCommand{deps: deps}
}

func (h *languageCommand) Command() string { return "language" }

func (h *languageCommand) Handle(ctx context.Context, req *customer.Request) error {
	return askLanguage(ctx, h.deps, req)
}

type languageMenu struct {
	deps *customer.Deps
}

func NewLanguageMenu(deps *customer.Deps) customer.MenuHandler {
	return &languageMenu{deps: deps}
}

func (h *languageMenu) Buttons() []i18n.Button {
	return []i18n.Button{i18n.BtnChangeLanguage}
}

func (h *languageMenu) Handle(ctx context.Context, req *customer.Request, _ i18n.Button) error {
	return askLanguage(ctx, h.deps, req)
}

// languageState handles the answer to the language picker.
type languageState struct {
	deps *customer.Deps
}

func NewLanguageState(deps *customer.Deps) customer.StateHandler {
	return &languageState{deps: deps}
}

func (h *languageState) States() []domain.StateKind {
	return []domain.StateKind{domain.StateChangingLanguage}
}

func (h *languageState) Handle(ctx context.Context, req *customer.Request, _ domain.ConversationState) error {
	log := handlerLogger(ctx, h.deps, "language_handler")
	text := strings.TrimSpace(req.Update.Text)
	lang := req.Lang()

	if isCancel(text) {
		h.deps.Sessions.ClearState(req.Update.UserID)
		return h.deps.MainMenu(ctx, req, i18n.MsgWelcomeBack)
	}

	chosen, ok := i18n.LanguageFromButton(text)
	if !ok {
		return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgPickLanguage), keyboards.Languages(lang, true))
	}

	if err := h.deps.Users.UpdateLanguage(ctx, req.User.ID, chosen); err != nil {
		log.Error().Err(err).Msg("Failed to update language")
		return h.deps.ReplyT(ctx, req, i18n.MsgOperationFailed)
	}

	h.deps.Sessions.ClearState(req.Update.UserID)
	req.User.Language = chosen
	return h.deps.MainMenu(ctx, req, i18n.MsgLanguageChanged)
}
