package telegram

import (
	"ShopBot/internal/core/ports"
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// apiClient is the subset of *tgbotapi.BotAPI the client needs.
type apiClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// tgClient implements the BotClientPort. Every outbound call waits on a
// shared token bucket so bursts of notifications stay under Telegram's limits.
type tgClient struct {
	api     apiClient
	limiter *rate.Limiter
	log     zerolog.Logger
}

var _ ports.BotClientPort = (*tgClient)(nil)

// NewClient creates a new Telegram client adapter that sends at most
// perSecond requests per second with the given burst.
func NewClient(api *tgbotapi.BotAPI, perSecond float64, burst int, baseLogger *zerolog.Logger) ports.BotClientPort {
	return newClient(api, rate.NewLimiter(rate.Limit(perSecond), burst), baseLogger)
}

func newClient(api apiClient, limiter *rate.Limiter, baseLogger *zerolog.Logger) *tgClient {
	log := baseLogger.With().Str("component", "tg_client").Logger()
	return &tgClient{api: api, limiter: limiter, log: log}
}

func (c *tgClient) send(ctx context.Context, msg tgbotapi.Chattable) (tgbotapi.Message, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return tgbotapi.Message{}, err
	}
	return c.api.Send(msg)
}

func (c *tgClient) request(ctx context.Context, msg tgbotapi.Chattable) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	_, err := c.api.Request(msg)
	return err
}

// SendMessage translates our params into a tgbotapi message.
func (c *tgClient) SendMessage(ctx context.Context, params ports.SendMessageParams) (int, error) {
	msg := tgbotapi.NewMessage(params.ChatID, params.Text)
	msg.ParseMode = params.ParseMode
	msg.DisableWebPagePreview = true

	// Keyboard removal wins over a markup
	if params.RemoveKeyboard {
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	} else if params.ReplyMarkup != nil {
		msg.ReplyMarkup = c.markup(params.ReplyMarkup)
	}

	sent, err := c.send(ctx, msg)
	if err != nil {
		c.log.Error().Err(err).Int64("chat_id", params.ChatID).Msg("Failed to send message")
		return 0, err
	}
	return sent.MessageID, nil
}

// SendPhoto sends a product photo. PhotoURL may be an http(s) URL or a
// Telegram file id.
func (c *tgClient) SendPhoto(ctx context.Context, params ports.SendPhotoParams) (int, error) {
	var file tgbotapi.RequestFileData = tgbotapi.FileID(params.PhotoURL)
	if strings.HasPrefix(params.PhotoURL, "http://") || strings.HasPrefix(params.PhotoURL, "https://") {
		file = tgbotapi.FileURL(params.PhotoURL)
	}

	msg := tgbotapi.NewPhoto(params.ChatID, file)
	msg.Caption = params.Caption
	msg.ParseMode = params.ParseMode
	if params.ReplyMarkup != nil {
		msg.ReplyMarkup = c.markup(params.ReplyMarkup)
	}

	sent, err := c.send(ctx, msg)
	if err != nil {
		c.log.Warn().Err(err).Int64("chat_id", params.ChatID).Str("photo", params.PhotoURL).Msg("Failed to send photo")
		return 0, err
	}
	return sent.MessageID, nil
}

func (c *tgClient) markup(m *ports.ReplyMarkup) interface{} {
	if m.IsInline {
		return buildInlineKeyboard(m.Buttons)
	}
	return buildReplyKeyboard(m.Buttons, m.Persistent)
}

func buildInlineKeyboard(buttons [][]ports.Button) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, buttonRow := range buttons {
		row := make([]tgbotapi.InlineKeyboardButton, 0, len(buttonRow))
		for _, btn := range buttonRow {
			if btn.URL != "" {
				row = append(row, tgbotapi.NewInlineKeyboardButtonURL(btn.Text, btn.URL))
			} else {
				row = append(row, tgbotapi.NewInlineKeyboardButtonData(btn.Text, btn.Data))
			}
		}
		rows = append(rows, row)
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func buildReplyKeyboard(buttons [][]ports.Button, persistent bool) tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(buttons))
	for _, buttonRow := range buttons {
		row := make([]tgbotapi.KeyboardButton, 0, len(buttonRow))
		for _, btn := range buttonRow {
			switch {
			case btn.RequestContact:
				row = append(row, tgbotapi.NewKeyboardButtonContact(btn.Text))
			case btn.RequestLocation:
				row = append(row, tgbotapi.NewKeyboardButtonLocation(btn.Text))
			default:
				row = append(row, tgbotapi.NewKeyboardButton(btn.Text))
			}
		}
		rows = append(rows, row)
	}

	markup := tgbotapi.NewReplyKeyboard(rows...)
	markup.ResizeKeyboard = true
	markup.OneTimeKeyboard = !persistent
	return markup
}

// SetMenuCommands publishes the bot's command list.
func (c *tgClient) SetMenuCommands(ctx context.Context) error {
	commands := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Главное меню / Bosh menyu"},
		tgbotapi.BotCommand{Command: "help", Description: "Помощь / Yordam"},
		tgbotapi.BotCommand{Command: "language", Description: "Сменить язык / Tilni o'zgartirish"},
		tgbotapi.BotCommand{Command: "notifications", Description: "Уведомления / Bildirishnomalar"},
	)
	if err := c.request(ctx, commands); err != nil {
		c.log.Error().Err(err).Msg("Failed to set menu commands")
		return err
	}
	return nil
}

// EditMessageText edits an existing message.
func (c *tgClient) EditMessageText(ctx context.Context, params ports.EditMessageParams) error {
	msg := tgbotapi.NewEditMessageText(params.ChatID, params.MessageID, params.Text)
	msg.ParseMode = params.ParseMode
	if params.ReplyMarkup != nil && params.ReplyMarkup.IsInline {
		inline := buildInlineKeyboard(params.ReplyMarkup.Buttons)
		msg.ReplyMarkup = &inline
	}

	if err := c.request(ctx, msg); err != nil {
		c.log.Error().Err(err).
			Int64("chat_id", params.ChatID).
			Int("message_id", params.MessageID).
			Msg("Failed to edit message text")
		return err
	}
	return nil
}

// EditMessageReplyMarkup swaps the inline keyboard of a message. A nil
// markup removes it.
func (c *tgClient) EditMessageReplyMarkup(ctx context.Context, params ports.EditReplyMarkupParams) error {
	inline := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
	if params.ReplyMarkup != nil {
		inline = buildInlineKeyboard(params.ReplyMarkup.Buttons)
	}
	msg := tgbotapi.NewEditMessageReplyMarkup(params.ChatID, params.MessageID, inline)

	if err := c.request(ctx, msg); err != nil {
		c.log.Error().Err(err).
			Int64("chat_id", params.ChatID).
			Int("message_id", params.MessageID).
			Msg("Failed to edit reply markup")
		return err
	}
	return nil
}

// AnswerCallbackQuery stops the client-side spinner of a callback query.
func (c *tgClient) AnswerCallbackQuery(ctx context.Context, params ports.AnswerCallbackParams) error {
	callback := tgbotapi.NewCallback(params.CallbackQueryID, params.Text)
	callback.ShowAlert = params.ShowAlert

	if err := c.request(ctx, callback); err != nil {
		c.log.Error().Err(err).
			Str("callback_query_id", params.CallbackQueryID).
			Msg("Failed to answer callback query")
		return err
	}
	return nil
}
