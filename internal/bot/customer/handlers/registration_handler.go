package handlers

import (
	"ShopBot/internal/bot/customer"
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/bot/keyboards"
	"ShopBot/internal/core/domain"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func init() {
	customer.RegisterState(NewRegistrationHandler)
}

// registrationHandler drives the name, phone, email, language wizard.
type registrationHandler struct {
	deps *customer.Deps
}

func NewRegistrationHandler(deps *customer.Deps) customer.StateHandler {
	return &registrationHandler{deps: deps}
}

func (h *registrationHandler) States() []domain.StateKind {
	return []domain.StateKind{
		domain.StateRegistrationName,
		domain.StateRegistrationPhone,
		domain.StateRegistrationEmail,
		domain.StateRegistrationLanguage,
	}
}

// Handle routes logic based on the wizard step.
func (h *registrationHandler) Handle(ctx context.Context, req *customer.Request, state domain.ConversationState) error {
	text := strings.TrimSpace(req.Update.Text)
	lang := req.Lang()

	if isCancel(text) {
		h.deps.Sessions.ClearState(req.Update.UserID)
		return replyRemovingKeyboard(ctx, h.deps, req, i18n.T(lang, i18n.MsgRegistrationCancelled))
	}

	// --- THE STATE MACHINE ---
	switch s := state.(type) {
	case domain.RegistrationName:
		return h.handleName(ctx, req, text)
	case domain.RegistrationPhone:
		return h.handlePhone(ctx, req, s, text)
	case domain.RegistrationEmail:
		return h.handleEmail(ctx, req, s, text)
	case domain.RegistrationLanguage:
		return h.handleLanguage(ctx, req, s, text)
	default:
		return fmt.Errorf("registration: unexpected state %T", state)
	}
}

func (h *registrationHandler) handleName(ctx context.Context, req *customer.Request, name string) error {
	lang := req.Lang()
	if !longEnough(name, 2) {
		return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgNameTooShort), keyboards.RegistrationName(lang, req.Update.FirstName))
	}
	h.deps.Sessions.SetState(req.Update.UserID, domain.RegistrationPhone{Name: name})
	return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgAskPhone), keyboards.RegistrationPhone(lang))
}

func (h *registrationHandler) handlePhone(ctx context.Context, req *customer.Request, s domain.RegistrationPhone, text string) error {
	lang := req.Lang()

	var phone string
	switch {
	case req.Update.Contact != nil:
		phone = phoneStripper.Replace(req.Update.Contact.PhoneNumber)
		if !strings.HasPrefix(phone, "+") {
			phone = "+" + phone
		}
	case i18n.Is(text, i18n.BtnSkip):
	default:
		p, ok := normalizePhone(text)
		if !ok {
			return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgInvalidPhone), keyboards.RegistrationPhone(lang))
		}
		phone = p
	}

	h.deps.Sessions.SetState(req.Update.UserID, domain.RegistrationEmail{Name: s.Name, Phone: phone})
	return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgAskEmail), keyboards.SkipOrCancel(lang))
}

func (h *registrationHandler) handleEmail(ctx context.Context, req *customer.Request, s domain.RegistrationEmail, text string) error {
	lang := req.Lang()

	var email string
	if !i18n.Is(text, i18n.BtnSkip) {
		if !validEmail(text) {
			return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgInvalidEmail), keyboards.SkipOrCancel(lang))
		}
		email = text
	}

	h.deps.Sessions.SetState(req.Update.UserID, domain.RegistrationLanguage{Name: s.Name, Phone: s.Phone, Email: email})
	return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgAskLanguage), keyboards.Languages(lang, true))
}

func (h *registrationHandler) handleLanguage(ctx context.Context, req *customer.Request, s domain.RegistrationLanguage, text string) error {
	chosen, ok := i18n.LanguageFromButton(text)
	if !ok {
		lang := req.Lang()
		return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgPickLanguage), keyboards.Languages(lang, true))
	}
	return h.complete(ctx, req, s, chosen)
}

// complete persists the user. On failure the state is kept so the last answer can be retried.
func (h *registrationHandler) complete(ctx context.Context, req *customer.Request, s domain.RegistrationLanguage, lang domain.Language) error {
	log := handlerLogger(ctx, h.deps, "registration_handler")
	now := h.deps.Clock()

	user := &domain.User{
		ID:         uuid.New(),
		TelegramID: req.Update.UserID,
		Name:       s.Name,
		Language:   lang,
		IsAdmin:    isConfiguredAdmin(h.deps, req.Update.UserID),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if s.Phone != "" {
		phone := s.Phone
		user.Phone = &phone
	}
	if s.Email != "" {
		email := s.Email
		user.Email = &email
	}

	if err := h.deps.Users.Create(ctx, user); err != nil {
		log.Error().Err(err).Msg("Failed to create user")
		return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgRegistrationFailed), keyboards.Languages(lang, true))
	}
	if err := h.deps.Loyalty.Ensure(ctx, user.ID); err != nil {
		log.Warn().Err(err).Msg("Failed to create loyalty account")
	}

	h.deps.Sessions.ClearState(req.Update.UserID)
	req.User = user
	log.Info().Str("user_uuid", user.ID.String()).Str("lang", string(lang)).Msg("User registered")

	if err := h.deps.MainMenu(ctx, req, i18n.MsgRegistrationComplete); err != nil {
		return err
	}

	if h.deps.Marketing != nil {
		if err := h.deps.Marketing.UserRegistered(ctx, user); err != nil {
			log.Warn().Err(err).Msg("Marketing hook failed")
		}
	}
	return nil
}
