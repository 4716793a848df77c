package handlers

import (
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/bot/messages"
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// NotificationHandler listens for internal events (from the EventBus),
// messages customers and admins, and stores in-bot notifications.
type NotificationHandler struct {
	log           zerolog.Logger
	bot           ports.BotClientPort
	userRepo      ports.UserRepository
	notifications ports.NotificationRepository
	adminIDs      []int64
	now           func() time.Time
}

// NewNotificationHandler creates a new handler for sending user notifications.
// It is NOT a registered router handler; it's a system component.
func NewNotificationHandler(
	bot ports.BotClientPort,
	userRepo ports.UserRepository,
	notifications ports.NotificationRepository,
	adminIDs []int64,
	baseLogger *zerolog.Logger,
) *NotificationHandler {
	return &NotificationHandler{
		log:           baseLogger.With().Str("component", "notification_handler").Logger(),
		bot:           bot,
		userRepo:      userRepo,
		notifications: notifications,
		adminIDs:      adminIDs,
		now:           time.Now,
	}
}

// Subscribe wires every handler to its topic.
func (h *NotificationHandler) Subscribe(bus ports.EventBus) {
	bus.Subscribe(ports.TopicOrderCreated, h.HandleOrderCreated)
	bus.Subscribe(ports.TopicOrderStatus, h.HandleOrderStatusChanged)
	bus.Subscribe(ports.TopicUserRegistered, h.HandleUserRegistered)
	bus.Subscribe(ports.TopicCategoryCreated, h.HandleCategoryCreated)
}

// HandleOrderCreated is an EventHandler for the "order:created" topic.
func (h *NotificationHandler) HandleOrderCreated(ctx context.Context, event ports.Event) error {
	placed, ok := event.Data.(domain.OrderPlaced)
	if !ok || placed.Order == nil || placed.Customer == nil {
		h.log.Error().Msg("Received invalid data for 'order:created' event")
		return nil // Don't retry
	}
	order, customer := placed.Order, placed.Customer
	log := h.log.With().Int64("order_id", order.ID).Logger()

	// 1. Tell the admins
	var errs []error
	for chatID, lang := range h.adminRecipients(ctx) {
		text := i18n.T(lang, i18n.MsgAdminNewOrder,
			order.ID, esc(customer.Name), order.Total.String(), esc(order.Address), paymentName(lang, order.PaymentMethod))
		if err := h.send(ctx, chatID, text); err != nil {
			log.Error().Err(err).Int64("admin_chat_id", chatID).Msg("Failed to notify admin about order")
			errs = append(errs, err)
		}
	}

	// 2. Store the customer's notification
	lang := customer.Lang()
	if err := h.store(ctx, customer, domain.NotifyOrder,
		i18n.T(lang, i18n.MsgOrderNotificationTitle, order.ID),
		i18n.T(lang, i18n.MsgOrderNotificationBody, order.Total.String()),
	); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// HandleOrderStatusChanged is an EventHandler for the "order:status" topic.
func (h *NotificationHandler) HandleOrderStatusChanged(ctx context.Context, event ports.Event) error {
	change, ok := event.Data.(domain.OrderStatusChange)
	if !ok || change.Order == nil {
		h.log.Error().Msg("Received invalid data for 'order:status' event")
		return nil
	}
	order := change.Order
	log := h.log.With().Int64("order_id", order.ID).Str("status", string(order.Status)).Logger()

	customer, err := h.userRepo.GetByID(ctx, order.UserID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load order owner")
		return err
	}
	if customer == nil {
		log.Warn().Msg("Order owner no longer exists")
		return nil
	}

	lang := customer.Lang()
	text := i18n.T(lang, i18n.MsgOrderStatusChanged, order.ID, order.Status.Emoji(), i18n.StatusText(lang, order.Status))
	log.Info().Msg("Sending status notification to customer")

	sendErr := h.send(ctx, customer.TelegramID, text)
	if sendErr != nil {
		log.Error().Err(sendErr).Msg("Failed to send status notification")
	}
	storeErr := h.store(ctx, customer, domain.NotifyOrderStatus,
		i18n.T(lang, i18n.MsgStatusNotificationTitle, order.ID),
		i18n.StatusText(lang, order.Status),
	)
	return errors.Join(sendErr, storeErr)
}

// HandleUserRegistered is an EventHandler for the "user:registered" topic.
func (h *NotificationHandler) HandleUserRegistered(ctx context.Context, event ports.Event) error {
	user, ok := event.Data.(*domain.User)
	if !ok || user == nil {
		h.log.Error().Msg("Received invalid data for 'user:registered' event")
		return nil
	}
	lang := user.Lang()
	return h.store(ctx, user, domain.NotifyInfo,
		i18n.T(lang, i18n.MsgWelcomeNotificationTitle),
		i18n.T(lang, i18n.MsgWelcomeNotificationBody, user.Name),
	)
}

// HandleCategoryCreated is an EventHandler for the "category:created" topic.
func (h *NotificationHandler) HandleCategoryCreated(ctx context.Context, event ports.Event) error {
	category, ok := event.Data.(*domain.Category)
	if !ok || category == nil {
		h.log.Error().Msg("Received invalid data for 'category:created' event")
		return nil
	}

	var errs []error
	for chatID, lang := range h.adminRecipients(ctx) {
		if err := h.send(ctx, chatID, i18n.T(lang, i18n.MsgAdminNewCategory, esc(category.Label()))); err != nil {
			h.log.Error().Err(err).Int64("admin_chat_id", chatID).Msg("Failed to notify admin about category")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// adminRecipients merges configured admin ids with users flagged as admins.
func (h *NotificationHandler) adminRecipients(ctx context.Context) map[int64]domain.Language {
	recipients := make(map[int64]domain.Language, len(h.adminIDs))
	for _, id := range h.adminIDs {
		recipients[id] = domain.DefaultLanguage
	}
	admins, err := h.userRepo.ListAdmins(ctx)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to list admin users, using configured ids only")
		return recipients
	}
	for _, a := range admins {
		recipients[a.TelegramID] = a.Lang()
	}
	return recipients
}

func (h *NotificationHandler) send(ctx context.Context, chatID int64, text string) error {
	_, err := h.bot.SendMessage(ctx, messages.NewBuilder(chatID).WithText(text).Build())
	return err
}

func (h *NotificationHandler) store(ctx context.Context, user *domain.User, kind domain.NotificationKind, title, body string) error {
	n := &domain.Notification{
		UserID:    user.ID,
		Title:     title,
		Body:      body,
		Kind:      kind,
		CreatedAt: h.now(),
	}
	if err := h.notifications.Create(ctx, n); err != nil {
		h.log.Error().Err(err).Str("user_uuid", user.ID.String()).Msg("Failed to store notification")
		return err
	}
	return nil
}
