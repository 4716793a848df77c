package handlers

import (
	"ShopBot/internal/bot/customer"
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/bot/keyboards"
	"ShopBot/internal/core/domain"
	"context"
)

func init() {
	customer.RegisterCommand(NewStartHandler)
	customer.RegisterCommand(NewHelpCommand)
}

// startHandler is the plugin for the /start command.
type startHandler struct {
	deps *customer.Deps
}

// NewStartHandler creates a new handler for the /start command.
func NewStartHandler(deps *customer.Deps) customer.CommandHandler {
	return &startHandler{deps: deps}
}

// Command returns the command string (without the "/")
func (h *startHandler) Command() string {
	return "start"
}

func (h *startHandler) AllowGuests() bool {
	return true
}

// Handle always resets the conversation. New users enter the registration wizard.
func (h *startHandler) Handle(ctx context.Context, req *customer.Request) error {
	log := handlerLogger(ctx, h.deps, "start_handler")
	userID := req.Update.UserID

	// 1. Drop whatever wizard was in flight
	h.deps.Sessions.ClearState(userID)

	// 2. Existing user: main menu
	if req.User != nil {
		log.Info().Str("user_uuid", req.User.ID.String()).Msg("Existing user returned")
		return h.deps.MainMenu(ctx, req, i18n.MsgWelcomeBack)
	}

	// 3. New user: start registration
	log.Info().Msg("New user found. Prompting for registration.")
	lang := req.Lang()
	if err := h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgWelcomeNew), nil); err != nil {
		return err
	}
	h.deps.Sessions.SetState(userID, domain.RegistrationName{})
	return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgAskName), keyboards.RegistrationName(lang, req.Update.FirstName))
}

// helpCommand is the plugin for /help.
type helpCommand struct {
	deps *customer.Deps
}

func NewHelpCommand(deps *customer.Deps) customer.CommandHandler {
	return &helpCommand{deps: deps}
}

func (h *helpCommand) Command() string   { return "help" }
func (h *helpCommand) AllowGuests() bool { return true }

func (h *helpCommand) Handle(ctx context.Context, req *customer.Request) error {
	if req.User == nil {
		return h.deps.ReplyT(ctx, req, i18n.MsgHelp)
	}
	return h.deps.MainMenu(ctx, req, i18n.MsgHelp)
}
