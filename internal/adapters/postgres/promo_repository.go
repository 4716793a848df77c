package postgres

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

type promoRepository struct {
	db *DB
}

var _ ports.PromoRepository = (*promoRepository)(nil)

func NewPromoRepository(db *DB) ports.PromoRepository {
	return &promoRepository{db: db}
}

const promoCols = `id, code, kind, value, min_order, max_uses, used_count, expires_at, description, is_active`

func scanPromo(row pgx.Row) (*domain.Promo, error) {
	var p domain.Promo
	err := row.Scan(&p.ID, &p.Code, &p.Kind, &p.Value, &p.MinOrder, &p.MaxUses, &p.UsedCount, &p.ExpiresAt, &p.Description, &p.IsActive)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *promoRepository) GetByCode(ctx context.Context, code string) (*domain.Promo, error) {
	return oneOrNil(scanPromo(r.db.pool.QueryRow(ctx,
		`SELECT `+promoCols+` FROM promo_codes WHERE code = $1`, domain.NormalizePromoCode(code))))
}

// ListAvailable returns active codes that are neither expired nor used up.
func (r *promoRepository) ListAvailable(ctx context.Context, now time.Time) ([]*domain.Promo, error) {
	rows, err := r.db.pool.Query(ctx, `
		SELECT `+promoCols+` FROM promo_codes
		WHERE is_active
		  AND (expires_at IS NULL OR expires_at > $1)
		  AND (max_uses IS NULL OR used_count < max_uses)
		ORDER BY code`, now)
	if err != nil {
		return nil, fmt.Errorf("list promos: %w", err)
	}
	defer rows.Close()

	var out []*domain.Promo
	for rows.Next() {
		p, err := scanPromo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
