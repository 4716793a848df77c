package postgres

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"fmt"

	"github.com/google/uuid"
)

type notificationRepository struct {
	db *DB
}

var _ ports.NotificationRepository = (*notificationRepository)(nil)

func NewNotificationRepository(db *DB) ports.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.pool.QueryRow(ctx, `
		INSERT INTO notifications (user_id, title, body, kind)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		n.UserID, n.Title, n.Body, n.Kind,
	).Scan(&n.ID, &n.CreatedAt)
}

func (r *notificationRepository) ListUnread(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error) {
	rows, err := r.db.pool.Query(ctx, `
		SELECT id, user_id, title, body, kind, is_read, created_at
		FROM notifications
		WHERE user_id = $1 AND NOT is_read
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var out []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.Kind, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &n)
	}
	return out, rows.Err()
}

func (r *notificationRepository) MarkRead(ctx context.Context, id int64) error {
	_, err := r.db.pool.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	return err
}
