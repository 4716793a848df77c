package telegram

import (
	"ShopBot/internal/core/ports"
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// mockAPI is a mock for the tgbotapi surface used by the client
type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	args := m.Called(c)
	return args.Get(0).(tgbotapi.Message), args.Error(1)
}

func (m *mockAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	args := m.Called(c)
	return &tgbotapi.APIResponse{Ok: true}, args.Error(0)
}

func newTestClient(api apiClient) *tgClient {
	nopLogger := zerolog.Nop()
	return newClient(api, rate.NewLimiter(rate.Inf, 1), &nopLogger)
}

func TestClient_SendMessage_InlineKeyboard(t *testing.T) {
	// 1. Setup
	api := new(mockAPI)
	client := newTestClient(api)

	var sent tgbotapi.MessageConfig
	api.On("Send", mock.AnythingOfType("tgbotapi.MessageConfig")).
		Run(func(args mock.Arguments) { sent = args.Get(0).(tgbotapi.MessageConfig) }).
		Return(tgbotapi.Message{MessageID: 42}, nil)

	// 2. Run
	id, err := client.SendMessage(context.Background(), ports.SendMessageParams{
		ChatID:    5005,
		Text:      "<b>Cart</b>",
		ParseMode: "HTML",
		ReplyMarkup: &ports.ReplyMarkup{IsInline: true, Buttons: [][]ports.Button{
			{{Text: "➕", Data: "cart_increase_1"}, {Text: "Site", URL: "https://example.uz"}},
		}},
	})

	// 3. Verify
	require.NoError(t, err)
	assert.Equal(t, 42, id)
	assert.Equal(t, int64(5005), sent.ChatID)
	assert.Equal(t, "HTML", sent.ParseMode)

	markup, ok := sent.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, markup.InlineKeyboard, 1)
	require.Len(t, markup.InlineKeyboard[0], 2)
	assert.Equal(t, "cart_increase_1", *markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "https://example.uz", *markup.InlineKeyboard[0][1].URL)
}

func TestClient_SendMessage_ReplyKeyboard(t *testing.T) {
	tests := []struct {
		name        string
		params      ports.SendMessageParams
		wantOneTime bool
		wantRemove  bool
	}{
		{
			name: "one-time contact request",
			params: ports.SendMessageParams{ChatID: 1, Text: "phone?", ReplyMarkup: &ports.ReplyMarkup{
				Buttons: [][]ports.Button{{{Text: "📱", RequestContact: true}}},
			}},
			wantOneTime: true,
		},
		{
			name: "persistent main menu",
			params: ports.SendMessageParams{ChatID: 1, Text: "menu", ReplyMarkup: &ports.ReplyMarkup{
				Persistent: true,
				Buttons:    [][]ports.Button{{{Text: "📍", RequestLocation: true}}},
			}},
		},
		{
			name: "removal wins over markup",
			params: ports.SendMessageParams{ChatID: 1, Text: "bye", RemoveKeyboard: true, ReplyMarkup: &ports.ReplyMarkup{
				Buttons: [][]ports.Button{{{Text: "x"}}},
			}},
			wantRemove: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(mockAPI)
			client := newTestClient(api)

			var sent tgbotapi.MessageConfig
			api.On("Send", mock.Anything).
				Run(func(args mock.Arguments) { sent = args.Get(0).(tgbotapi.MessageConfig) }).
				Return(tgbotapi.Message{MessageID: 1}, nil)

			_, err := client.SendMessage(context.Background(), tt.params)
			require.NoError(t, err)

			if tt.wantRemove {
				assert.IsType(t, tgbotapi.ReplyKeyboardRemove{}, sent.ReplyMarkup)
				return
			}
			markup, ok := sent.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
			require.True(t, ok)
			assert.True(t, markup.ResizeKeyboard)
			assert.Equal(t, tt.wantOneTime, markup.OneTimeKeyboard)
		})
	}
}

func TestClient_SendPhoto_FileSource(t *testing.T) {
	api := new(mockAPI)
	client := newTestClient(api)

	var photos []tgbotapi.PhotoConfig
	api.On("Send", mock.AnythingOfType("tgbotapi.PhotoConfig")).
		Run(func(args mock.Arguments) { photos = append(photos, args.Get(0).(tgbotapi.PhotoConfig)) }).
		Return(tgbotapi.Message{MessageID: 7}, nil)

	_, err := client.SendPhoto(context.Background(), ports.SendPhotoParams{ChatID: 1, PhotoURL: "https://cdn.example.uz/p.jpg", Caption: "Phone"})
	require.NoError(t, err)
	_, err = client.SendPhoto(context.Background(), ports.SendPhotoParams{ChatID: 1, PhotoURL: "AgACAgIAAxkBAAIB"})
	require.NoError(t, err)

	require.Len(t, photos, 2)
	assert.IsType(t, tgbotapi.FileURL(""), photos[0].File)
	assert.Equal(t, "Phone", photos[0].Caption)
	assert.IsType(t, tgbotapi.FileID(""), photos[1].File)
}

func TestClient_EditMessageReplyMarkup_NilRemovesKeyboard(t *testing.T) {
	api := new(mockAPI)
	client := newTestClient(api)

	var edit tgbotapi.EditMessageReplyMarkupConfig
	api.On("Request", mock.AnythingOfType("tgbotapi.EditMessageReplyMarkupConfig")).
		Run(func(args mock.Arguments) { edit = args.Get(0).(tgbotapi.EditMessageReplyMarkupConfig) }).
		Return(nil)

	err := client.EditMessageReplyMarkup(context.Background(), ports.EditReplyMarkupParams{ChatID: 1, MessageID: 77})
	require.NoError(t, err)

	assert.Equal(t, 77, edit.MessageID)
	require.NotNil(t, edit.ReplyMarkup)
	assert.Empty(t, edit.ReplyMarkup.InlineKeyboard)
}

func TestClient_ErrorsArePropagated(t *testing.T) {
	api := new(mockAPI)
	client := newTestClient(api)
	boom := errors.New("forbidden: bot was blocked by the user")

	api.On("Send", mock.Anything).Return(tgbotapi.Message{}, boom)
	api.On("Request", mock.Anything).Return(boom)

	_, err := client.SendMessage(context.Background(), ports.SendMessageParams{ChatID: 1, Text: "hi"})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, client.AnswerCallbackQuery(context.Background(), ports.AnswerCallbackParams{CallbackQueryID: "cb"}), boom)
}

func TestClient_RateLimitHonorsContext(t *testing.T) {
	// 1. A limiter with no tokens left
	api := new(mockAPI)
	nopLogger := zerolog.Nop()
	limiter := rate.NewLimiter(rate.Every(1<<62), 1)
	require.True(t, limiter.Allow())
	client := newClient(api, limiter, &nopLogger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// 2. The call gives up without touching the API
	_, err := client.SendMessage(ctx, ports.SendMessageParams{ChatID: 1, Text: "hi"})
	assert.Error(t, err)
	api.AssertNotCalled(t, "Send", mock.Anything)
}
