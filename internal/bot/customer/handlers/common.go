package handlers

import (
	"ShopBot/internal/bot/customer"
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/bot/messages"
	"ShopBot/internal/core/ports"
	"context"
	"html"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

const dateLayout = "02.01.2006"

var (
	phoneRegex    = regexp.MustCompile(`^\+?[0-9]{9,15}$`)
	phoneStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// normalizePhone strips separators and validates the result.
func normalizePhone(text string) (string, bool) {
	phone := phoneStripper.Replace(strings.TrimSpace(text))
	return phone, phoneRegex.MatchString(phone)
}

func validEmail(text string) bool {
	return emailRegex.MatchString(strings.TrimSpace(text))
}

// longEnough counts runes, not bytes.
func longEnough(text string, min int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) >= min
}

func esc(s string) string {
	return html.EscapeString(s)
}

// handlerLogger derives a handler logger that keeps the request fields set by the router.
func handlerLogger(ctx context.Context, deps *customer.Deps, component string) zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled && deps.Log != nil {
		l = deps.Log
	}
	return l.With().Str("component", component).Logger()
}

// isCancel matches the wizard cancel button in either language.
func isCancel(text string) bool {
	return i18n.Is(text, i18n.BtnCancel)
}

// editMarkup replaces the inline keyboard of the message a callback came from.
func editMarkup(ctx context.Context, deps *customer.Deps, req *customer.Request, markup *ports.ReplyMarkup) error {
	return deps.Bot.EditMessageReplyMarkup(ctx, ports.EditReplyMarkupParams{
		ChatID:      req.Update.ChatID,
		MessageID:   req.Update.MessageID,
		ReplyMarkup: markup,
	})
}

// replyRemovingKeyboard sends text and hides the reply keyboard.
func replyRemovingKeyboard(ctx context.Context, deps *customer.Deps, req *customer.Request, text string) error {
	msg := messages.NewBuilder(req.Update.ChatID).WithText(text).WithRemoveKeyboard().Build()
	_, err := deps.Bot.SendMessage(ctx, msg)
	return err
}

// isConfiguredAdmin reports whether telegramID is listed in BOT_ADMIN_IDS.
func isConfiguredAdmin(deps *customer.Deps, telegramID int64) bool {
	if deps.Config == nil {
		return false
	}
	return slices.Contains(deps.Config.Bot.AdminIDs, telegramID)
}
