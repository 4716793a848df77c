package customer

import (
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/bot/keyboards"
	"ShopBot/internal/bot/messages"
	"ShopBot/internal/core/ports"
	"context"
)

// Send sends an HTML message with an optional keyboard.
func Send(ctx context.Context, bot ports.BotClientPort, chatID int64, text string, markup *ports.ReplyMarkup) (int, error) {
	msg := messages.NewBuilder(chatID).WithText(text).WithMarkup(markup).Build()
	return bot.SendMessage(ctx, msg)
}

// Reply answers the sender of req.
func (d *Deps) Reply(ctx context.Context, req *Request, text string, markup *ports.ReplyMarkup) error {
	_, err := Send(ctx, d.Bot, req.Update.ChatID, text, markup)
	return err
}

// ReplyT answers with a localized message.
func (d *Deps) ReplyT(ctx context.Context, req *Request, id i18n.MessageID, args ...any) error {
	return d.Reply(ctx, req, i18n.T(req.Lang(), id, args...), nil)
}

// MainMenu shows the main menu keyboard with the given message.
func (d *Deps) MainMenu(ctx context.Context, req *Request, id i18n.MessageID, args ...any) error {
	return d.Reply(ctx, req, i18n.T(req.Lang(), id, args...), keyboards.Main(req.Lang()))
}
