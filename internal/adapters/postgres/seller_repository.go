package postgres

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"fmt"
)

type sellerRepository struct {
	db *DB
}

var _ ports.SellerRepository = (*sellerRepository)(nil)

func NewSellerRepository(db *DB) ports.SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) Create(ctx context.Context, app *domain.SellerApplication) error {
	if app.Status == "" {
		app.Status = domain.SellerPending
	}
	return r.db.pool.QueryRow(ctx, `
		INSERT INTO seller_applications (user_id, contact_name, phone, brand, products, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		app.UserID, app.ContactName, app.Phone, app.Brand, app.Products, app.Status,
	).Scan(&app.ID, &app.CreatedAt)
}

func (r *sellerRepository) List(ctx context.Context, params ports.ListParams) ([]*domain.SellerApplication, int, error) {
	search := likePattern(params.Search)
	where := ` WHERE $1 = '' OR brand ILIKE $1 OR contact_name ILIKE $1`

	var total int
	if err := r.db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM seller_applications`+where, search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count seller applications: %w", err)
	}

	rows, err := r.db.pool.Query(ctx, `
		SELECT id, user_id, contact_name, phone, brand, products, status, created_at
		FROM seller_applications`+where+`
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, search, pageLimit(params.Limit), params.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list seller applications: %w", err)
	}
	defer rows.Close()

	var out []*domain.SellerApplication
	for rows.Next() {
		var a domain.SellerApplication
		if err := rows.Scan(&a.ID, &a.UserID, &a.ContactName, &a.Phone, &a.Brand, &a.Products, &a.Status, &a.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, &a)
	}
	return out, total, rows.Err()
}
