package handlers

import (
	"ShopBot/internal/adapters/session"
	"ShopBot/internal/bot/customer"
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"ShopBot/internal/core/ports/mocks"
	"ShopBot/internal/shared/config"
	"context"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testTelegramID int64 = 5005
	adminChatID    int64 = 999
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// fixture wires the real router and every registered handler to mocks.
type fixture struct {
	router   *customer.CustomerRouter
	deps     *customer.Deps
	sessions ports.SessionStore

	users         *mocks.UserRepository
	categories    *mocks.CategoryRepository
	products      *mocks.ProductRepository
	cart          *mocks.CartRepository
	orders        *mocks.OrderRepository
	loyalty       *mocks.LoyaltyRepository
	promos        *mocks.PromoRepository
	notifications *mocks.NotificationRepository
	sellers       *mocks.SellerRepository
	bot           *mocks.BotClient
	payments      *mocks.PaymentPort
	notifier      *mocks.OrderNotifier
	marketing     *mocks.MarketingHook

	sent    []ports.SendMessageParams
	answers []ports.AnswerCallbackParams
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	nopLogger := zerolog.Nop()

	f := &fixture{
		sessions:      session.NewMemoryStore(),
		users:         new(mocks.UserRepository),
		categories:    new(mocks.CategoryRepository),
		products:      new(mocks.ProductRepository),
		cart:          new(mocks.CartRepository),
		orders:        new(mocks.OrderRepository),
		loyalty:       new(mocks.LoyaltyRepository),
		promos:        new(mocks.PromoRepository),
		notifications: new(mocks.NotificationRepository),
		sellers:       new(mocks.SellerRepository),
		bot:           new(mocks.BotClient),
		payments:      new(mocks.PaymentPort),
		notifier:      new(mocks.OrderNotifier),
		marketing:     new(mocks.MarketingHook),
	}

	f.bot.On("SendMessage", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		f.sent = append(f.sent, args.Get(1).(ports.SendMessageParams))
	}).Return(1, nil).Maybe()
	f.bot.On("AnswerCallbackQuery", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		f.answers = append(f.answers, args.Get(1).(ports.AnswerCallbackParams))
	}).Return(nil).Maybe()
	f.bot.On("EditMessageReplyMarkup", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.bot.On("EditMessageText", mock.Anything, mock.Anything).Return(nil).Maybe()

	f.deps = &customer.Deps{
		Config: &config.Config{Bot: config.BotConfig{
			AdminIDs:        []int64{adminChatID},
			SupportPhone:    "+998 90 000 00 00",
			SupportUsername: "shop_support",
		}},
		Log:           &nopLogger,
		Bot:           f.bot,
		Sessions:      f.sessions,
		Users:         f.users,
		Categories:    f.categories,
		Products:      f.products,
		Cart:          f.cart,
		Orders:        f.orders,
		Loyalty:       f.loyalty,
		Promos:        f.promos,
		Notifications: f.notifications,
		Sellers:       f.sellers,
		Payments:      f.payments,
		OrderNotifier: f.notifier,
		Marketing:     f.marketing,
		Now:           func() time.Time { return testNow },
	}

	f.router = customer.NewCustomerRouter(f.users, f.sessions, f.bot, &nopLogger)
	customer.RegisterAllHandlers(f.deps, f.router, &nopLogger)
	return f
}

func (f *fixture) asGuest() {
	f.users.On("GetByTelegramID", mock.Anything, testTelegramID).Return(nil, nil)
}

func (f *fixture) asUser(lang domain.Language) *domain.User {
	user := &domain.User{
		ID:         uuid.New(),
		TelegramID: testTelegramID,
		Name:       "Dilnoza",
		Language:   lang,
		CreatedAt:  testNow.AddDate(0, -1, 0),
	}
	f.users.On("GetByTelegramID", mock.Anything, testTelegramID).Return(user, nil)
	return user
}

func (f *fixture) text(t *testing.T, text string) {
	t.Helper()
	f.router.HandleUpdate(context.Background(), messageUpdate(text))
}

func (f *fixture) press(t *testing.T, data string) {
	t.Helper()
	f.router.HandleUpdate(context.Background(), &tgbotapi.Update{
		UpdateID: 2,
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:      "cb",
			From:    &tgbotapi.User{ID: testTelegramID},
			Message: &tgbotapi.Message{MessageID: 77, Chat: &tgbotapi.Chat{ID: testTelegramID}},
			Data:    data,
		},
	})
}

func (f *fixture) lastText(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.sent, "no message was sent")
	return f.sent[len(f.sent)-1].Text
}

func (f *fixture) lastAnswer(t *testing.T) ports.AnswerCallbackParams {
	t.Helper()
	require.NotEmpty(t, f.answers, "callback was not answered")
	return f.answers[len(f.answers)-1]
}

func messageUpdate(text string) *tgbotapi.Update {
	msg := &tgbotapi.Message{
		MessageID: 10,
		From:      &tgbotapi.User{ID: testTelegramID, FirstName: "Dilnoza"},
		Chat:      &tgbotapi.Chat{ID: testTelegramID},
		Text:      text,
	}
	if strings.HasPrefix(text, "/") {
		end := strings.IndexByte(text, ' ')
		if end < 0 {
			end = len(text)
		}
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: end}}
	}
	return &tgbotapi.Update{UpdateID: 1, Message: msg}
}
