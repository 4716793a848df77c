package ports

import (
	"context"
)

// --- Bot Message Structures ---

// Button represents a single button in a keyboard.
type Button struct {
	Text            string
	Data            string // For callbacks
	URL             string // For URL buttons
	RequestContact  bool   // Reply keyboards only
	RequestLocation bool   // Reply keyboards only
}

// ReplyMarkup represents any kind of keyboard markup.
type ReplyMarkup struct {
	Buttons  [][]Button
	IsInline bool // Differentiates between Inline and Reply keyboards
	// Persistent keeps a reply keyboard visible after a button is pressed.
	Persistent bool
}

// SendMessageParams holds all possible options for sending a message.
type SendMessageParams struct {
	ChatID         int64
	Text           string
	ParseMode      string // e.g., "HTML" or "MarkdownV2"
	ReplyMarkup    *ReplyMarkup
	RemoveKeyboard bool
}

// SendPhotoParams sends a photo by URL or Telegram file id.
type SendPhotoParams struct {
	ChatID      int64
	PhotoURL    string
	Caption     string
	ParseMode   string
	ReplyMarkup *ReplyMarkup
}

// EditMessageParams replaces the text (and optionally the inline keyboard) of a sent message.
type EditMessageParams struct {
	ChatID      int64
	MessageID   int
	Text        string
	ParseMode   string
	ReplyMarkup *ReplyMarkup
}

// EditReplyMarkupParams replaces only the inline keyboard of a sent message.
type EditReplyMarkupParams struct {
	ChatID      int64
	MessageID   int
	ReplyMarkup *ReplyMarkup
}

// AnswerCallbackParams stops the client-side spinner of a callback query.
type AnswerCallbackParams struct {
	CallbackQueryID string
	Text            string
	ShowAlert       bool
}

// --- Bot Client Port (Outbound) ---

// BotClientPort defines the interface for *sending* messages.
type BotClientPort interface {
	SendMessage(ctx context.Context, params SendMessageParams) (int, error)
	SendPhoto(ctx context.Context, params SendPhotoParams) (int, error)
	EditMessageText(ctx context.Context, params EditMessageParams) error
	EditMessageReplyMarkup(ctx context.Context, params EditReplyMarkupParams) error
	AnswerCallbackQuery(ctx context.Context, params AnswerCallbackParams) error
	SetMenuCommands(ctx context.Context) error
}

// --- Inbound update ---

// ContactInfo is a shared phone contact.
type ContactInfo struct {
	PhoneNumber string
	UserID      int64
}

// LocationInfo is a shared device location.
type LocationInfo struct {
	Latitude  float64
	Longitude float64
}

// BotUpdate represents a simplified, generic update.
type BotUpdate struct {
	MessageID       int
	ChatID          int64
	UserID          int64
	FirstName       string
	Text            string
	Command         string // Without the leading slash, e.g. "start" or "order_12"
	CommandArgs     string
	Contact         *ContactInfo
	Location        *LocationInfo
	CallbackQueryID string
	CallbackData    *string
}

// IsCallback reports whether the update is an inline-button press.
func (u *BotUpdate) IsCallback() bool {
	return u.CallbackData != nil
}
