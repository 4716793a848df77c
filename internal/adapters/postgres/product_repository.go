package postgres

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type productRepository struct {
	db  *DB
	log zerolog.Logger
}

var _ ports.ProductRepository = (*productRepository)(nil)

// NewProductRepository creates a repository for products, reviews and favorites.
func NewProductRepository(db *DB, baseLogger *zerolog.Logger) ports.ProductRepository {
	return &productRepository{
		db:  db,
		log: baseLogger.With().Str("component", "product_repo").Logger(),
	}
}

const productCols = `
	id, name, description, price, cost_price, stock, is_active,
	category_id, subcategory_id, image_url, views, sales, created_at
`

// inStock limits listings to products a customer can actually buy.
const inStock = `is_active AND (stock IS NULL OR stock > 0)`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.CostPrice, &p.Stock, &p.IsActive,
		&p.CategoryID, &p.SubcategoryID, &p.ImageURL, &p.Views, &p.Sales, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	rows, err := r.db.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error().Err(err).Msg("Failed to query products")
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var out []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *productRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Product, error) {
	return r.list(ctx, `SELECT `+productCols+` FROM products WHERE category_id = $1 AND `+inStock+` ORDER BY name`, categoryID)
}

func (r *productRepository) ListBySubcategory(ctx context.Context, subcategoryID int64) ([]*domain.Product, error) {
	return r.list(ctx, `SELECT `+productCols+` FROM products WHERE subcategory_id = $1 AND `+inStock+` ORDER BY name`, subcategoryID)
}

func (r *productRepository) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return oneOrNil(scanProduct(r.db.pool.QueryRow(ctx, `SELECT `+productCols+` FROM products WHERE id = $1`, id)))
}

func (r *productRepository) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	return oneOrNil(scanProduct(r.db.pool.QueryRow(ctx,
		`SELECT `+productCols+` FROM products WHERE is_active AND name = $1 LIMIT 1`, name)))
}

// Search matches name or description, best sellers first.
func (r *productRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Product, error) {
	return r.list(ctx, `
		SELECT `+productCols+` FROM products
		WHERE `+inStock+` AND (name ILIKE $1 OR description ILIKE $1)
		ORDER BY sales DESC, name
		LIMIT $2`,
		likePattern(query), limit,
	)
}

func (r *productRepository) IncrementViews(ctx context.Context, id int64) error {
	_, err := r.db.pool.Exec(ctx, `UPDATE products SET views = views + 1 WHERE id = $1`, id)
	return err
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	err := r.db.pool.QueryRow(ctx, `
		INSERT INTO products (name, description, price, cost_price, stock, is_active, category_id, subcategory_id, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		p.Name, p.Description, p.Price, p.CostPrice, p.Stock, p.IsActive, p.CategoryID, p.SubcategoryID, p.ImageURL,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		r.log.Error().Err(err).Str("name", p.Name).Msg("Failed to insert product")
	}
	return err
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	tag, err := r.db.pool.Exec(ctx, `
		UPDATE products
		SET name = $2, description = $3, price = $4, cost_price = $5, stock = $6,
		    is_active = $7, category_id = $8, subcategory_id = $9, image_url = $10
		WHERE id = $1`,
		p.ID, p.Name, p.Description, p.Price, p.CostPrice, p.Stock, p.IsActive, p.CategoryID, p.SubcategoryID, p.ImageURL,
	)
	if err != nil {
		r.log.Error().Err(err).Int64("product_id", p.ID).Msg("Failed to update product")
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List is the admin listing. It includes inactive and sold-out products.
func (r *productRepository) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, int, error) {
	search := likePattern(filter.Search)
	where := `($1 = '' OR name ILIKE $1) AND ($2 = 0 OR category_id = $2)`

	var total int
	if err := r.db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE `+where, search, filter.CategoryID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	products, err := r.list(ctx,
		`SELECT `+productCols+` FROM products WHERE `+where+` ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		search, filter.CategoryID, pageLimit(filter.Limit), filter.Offset,
	)
	return products, total, err
}

func (r *productRepository) RatingSummary(ctx context.Context, productID int64) (domain.RatingSummary, error) {
	var s domain.RatingSummary
	err := r.db.pool.QueryRow(ctx,
		`SELECT COALESCE(AVG(rating), 0)::float8, COUNT(*) FROM reviews WHERE product_id = $1`, productID,
	).Scan(&s.Average, &s.Count)
	return s, err
}

// ListReviews returns the newest reviews and the total count.
func (r *productRepository) ListReviews(ctx context.Context, productID int64, limit int) ([]*domain.Review, int, error) {
	var total int
	if err := r.db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE product_id = $1`, productID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	rows, err := r.db.pool.Query(ctx, `
		SELECT r.id, r.user_id, u.name, r.product_id, r.rating, r.comment, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.product_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2`, productID, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var out []*domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.UserName, &rv.ProductID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, &rv)
	}
	return out, total, rows.Err()
}

func (r *productRepository) AddReview(ctx context.Context, rv *domain.Review) error {
	err := r.db.pool.QueryRow(ctx, `
		INSERT INTO reviews (user_id, product_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		rv.UserID, rv.ProductID, rv.Rating, rv.Comment,
	).Scan(&rv.ID, &rv.CreatedAt)
	if err != nil {
		r.log.Error().Err(err).Int64("product_id", rv.ProductID).Msg("Failed to insert review")
	}
	return err
}

func (r *productRepository) AddFavorite(ctx context.Context, userID uuid.UUID, productID int64) (bool, error) {
	tag, err := r.db.pool.Exec(ctx,
		`INSERT INTO favorites (user_id, product_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, userID, productID)
	if err != nil {
		return false, fmt.Errorf("add favorite: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
