package handlers

import (
	"ShopBot/internal/bot/customer"
	"ShopBot/internal/bot/i18n"
	"context"
	"fmt"
	"strings"
)

func init() {
	customer.RegisterCommand(NewNotificationsCommand)
}

// notificationsCommand lists unread notifications and marks them read.
type notificationsCommand struct {
	deps *customer.Deps
}

func NewNotificationsCommand(deps *customer.Deps) customer.CommandHandler {
	return &notificationsCommand{deps: deps}
}

func (h *notificationsCommand) Command() string { return "notifications" }

func (h *notificationsCommand) Handle(ctx context.Context, req *customer.Request) error {
	log := handlerLogger(ctx, h.deps, "notifications_handler")

	unread, err := h.deps.Notifications.ListUnread(ctx, req.User.ID)
	if err != nil {
		return fmt.Errorf("list notifications: %w", err)
	}
	if len(unread) == 0 {
		return h.deps.ReplyT(ctx, req, i18n.MsgNoNotifications)
	}

	blocks := make([]string, 0, len(unread))
	for _, n := range unread {
		blocks = append(blocks, fmt.Sprintf("%s <b>%s</b>\n%s\n<i>%s</i>",
			n.Kind.Emoji(), esc(n.Title), esc(n.Body), n.CreatedAt.Format(orderTimeLayout)))
	}
	if err := h.deps.Reply(ctx, req, strings.Join(blocks, "\n\n"), nil); err != nil {
		return err
	}

	for _, n := range unread {
		if err := h.deps.Notifications.MarkRead(ctx, n.ID); err != nil {
			log.Warn().Err(err).Int64("notification_id", n.ID).Msg("Failed to mark notification read")
		}
	}
	return nil
}
