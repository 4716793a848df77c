package postgres

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type loyaltyRepository struct {
	db *DB
}

var _ ports.LoyaltyRepository = (*loyaltyRepository)(nil)

func NewLoyaltyRepository(db *DB) ports.LoyaltyRepository {
	return &loyaltyRepository{db: db}
}

func (r *loyaltyRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.LoyaltyAccount, error) {
	acc := &domain.LoyaltyAccount{UserID: userID}
	err := r.db.pool.QueryRow(ctx,
		`SELECT points, lifetime_points, updated_at FROM loyalty_accounts WHERE user_id = $1`, userID,
	).Scan(&acc.Points, &acc.LifetimePoints, &acc.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.LoyaltyAccount{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get loyalty account: %w", err)
	}
	return acc, nil
}

func (r *loyaltyRepository) Ensure(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.pool.Exec(ctx,
		`INSERT INTO loyalty_accounts (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID)
	return err
}
