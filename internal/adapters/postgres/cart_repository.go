package postgres

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type cartRepository struct {
	db  *DB
	log zerolog.Logger
}

var _ ports.CartRepository = (*cartRepository)(nil)

// NewCartRepository creates a repository for cart lines.
func NewCartRepository(db *DB, baseLogger *zerolog.Logger) ports.CartRepository {
	return &cartRepository{
		db:  db,
		log: baseLogger.With().Str("component", "cart_repo").Logger(),
	}
}

const cartItemSelect = `
	SELECT c.id, c.user_id, c.product_id, p.name, p.price, c.quantity
	FROM cart_items c
	JOIN products p ON p.id = c.product_id
`

func scanCartItem(row pgx.Row) (*domain.CartItem, error) {
	var it domain.CartItem
	if err := row.Scan(&it.ID, &it.UserID, &it.ProductID, &it.ProductName, &it.UnitPrice, &it.Quantity); err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *cartRepository) ListItems(ctx context.Context, userID uuid.UUID) ([]domain.CartItem, error) {
	rows, err := r.db.pool.Query(ctx, cartItemSelect+` WHERE c.user_id = $1 ORDER BY c.id`, userID)
	if err != nil {
		r.log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to list cart")
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()

	items := []domain.CartItem{}
	for rows.Next() {
		it, err := scanCartItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

// Add checks availability against the quantity the line will have afterwards.
func (r *cartRepository) Add(ctx context.Context, userID uuid.UUID, productID int64, qty int) error {
	if qty < 1 {
		qty = 1
	}
	return r.db.withTx(ctx, func(tx pgx.Tx) error {
		var product domain.Product
		err := tx.QueryRow(ctx,
			`SELECT id, is_active, stock FROM products WHERE id = $1 FOR SHARE`, productID,
		).Scan(&product.ID, &product.IsActive, &product.Stock)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrProductUnavailable
		}
		if err != nil {
			return fmt.Errorf("lock product %d: %w", productID, err)
		}

		var existing int
		err = tx.QueryRow(ctx,
			`SELECT quantity FROM cart_items WHERE user_id = $1 AND product_id = $2`, userID, productID,
		).Scan(&existing)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("read cart line: %w", err)
		}
		if !product.Available(existing + qty) {
			return domain.ErrProductUnavailable
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO cart_items (user_id, product_id, quantity)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`,
			userID, productID, qty,
		)
		if err != nil {
			r.log.Error().Err(err).Int64("product_id", productID).Msg("Failed to upsert cart line")
			return fmt.Errorf("upsert cart line: %w", err)
		}
		return nil
	})
}

func (r *cartRepository) GetItem(ctx context.Context, userID uuid.UUID, itemID int64) (*domain.CartItem, error) {
	return oneOrNil(scanCartItem(r.db.pool.QueryRow(ctx,
		cartItemSelect+` WHERE c.id = $1 AND c.user_id = $2`, itemID, userID)))
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, userID uuid.UUID, itemID int64, qty int) error {
	if qty < 1 {
		return fmt.Errorf("cart quantity %d: must be at least 1", qty)
	}
	tag, err := r.db.pool.Exec(ctx,
		`UPDATE cart_items SET quantity = $3 WHERE id = $1 AND user_id = $2`, itemID, userID, qty)
	if err != nil {
		return fmt.Errorf("update cart line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Remove(ctx context.Context, userID uuid.UUID, itemID int64) error {
	tag, err := r.db.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, itemID, userID)
	if err != nil {
		return fmt.Errorf("remove cart line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.pool.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		r.log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to clear cart")
	}
	return err
}
