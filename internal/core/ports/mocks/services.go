package mocks

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"

	"github.com/stretchr/testify/mock"
)

// BotClient mocks ports.BotClientPort.
type BotClient struct {
	mock.Mock
}

var _ ports.BotClientPort = (*BotClient)(nil)

func (m *BotClient) SendMessage(ctx context.Context, params ports.SendMessageParams) (int, error) {
	args := m.Called(ctx, params)
	return args.Int(0), args.Error(1)
}

func (m *BotClient) SendPhoto(ctx context.Context, params ports.SendPhotoParams) (int, error) {
	args := m.Called(ctx, params)
	return args.Int(0), args.Error(1)
}

func (m *BotClient) EditMessageText(ctx context.Context, params ports.EditMessageParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *BotClient) EditMessageReplyMarkup(ctx context.Context, params ports.EditReplyMarkupParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *BotClient) AnswerCallbackQuery(ctx context.Context, params ports.AnswerCallbackParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *BotClient) SetMenuCommands(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// EventBus mocks ports.EventBus.
type EventBus struct {
	mock.Mock
}

var _ ports.EventBus = (*EventBus)(nil)

func (m *EventBus) Publish(ctx context.Context, topic string, data interface{}) error {
	args := m.Called(ctx, topic, data)
	return args.Error(0)
}

func (m *EventBus) Subscribe(topic string, handler ports.EventHandler) {
	m.Called(topic, handler)
}

// PaymentPort mocks ports.PaymentPort.
type PaymentPort struct {
	mock.Mock
}

var _ ports.PaymentPort = (*PaymentPort)(nil)

func (m *PaymentPort) CreatePayment(ctx context.Context, req ports.PaymentRequest) (*ports.PaymentResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.PaymentResult), args.Error(1)
}

// ShipmentTracker mocks ports.ShipmentTracker.
type ShipmentTracker struct {
	mock.Mock
}

var _ ports.ShipmentTracker = (*ShipmentTracker)(nil)

func (m *ShipmentTracker) Track(ctx context.Context, number string) (*ports.TrackingInfo, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.TrackingInfo), args.Error(1)
}

// OrderNotifier mocks ports.OrderNotifier.
type OrderNotifier struct {
	mock.Mock
}

var _ ports.OrderNotifier = (*OrderNotifier)(nil)

func (m *OrderNotifier) OrderCreated(ctx context.Context, order *domain.Order, customer *domain.User) error {
	args := m.Called(ctx, order, customer)
	return args.Error(0)
}

// MarketingHook mocks ports.MarketingHook.
type MarketingHook struct {
	mock.Mock
}

var _ ports.MarketingHook = (*MarketingHook)(nil)

func (m *MarketingHook) UserRegistered(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// SecurityPort mocks ports.SecurityPort.
type SecurityPort struct {
	mock.Mock
}

var _ ports.SecurityPort = (*SecurityPort)(nil)

func (m *SecurityPort) Encrypt(plaintext []byte) ([]byte, error) {
	args := m.Called(plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *SecurityPort) Decrypt(ciphertext []byte) ([]byte, error) {
	args := m.Called(ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
