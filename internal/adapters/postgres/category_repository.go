package postgres

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type categoryRepository struct {
	db  *DB
	log zerolog.Logger
}

var _ ports.CategoryRepository = (*categoryRepository)(nil)

// NewCategoryRepository creates a repository for categories and subcategories.
func NewCategoryRepository(db *DB, baseLogger *zerolog.Logger) ports.CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: baseLogger.With().Str("component", "category_repo").Logger(),
	}
}

const categoryCols = `id, name, description, emoji, is_active, created_at`

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Emoji, &c.IsActive, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

const subcategoryCols = `id, category_id, name, emoji, is_active, created_at`

func scanSubcategory(row pgx.Row) (*domain.Subcategory, error) {
	var s domain.Subcategory
	if err := row.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Emoji, &s.IsActive, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// oneOrNil maps pgx.ErrNoRows to nil, nil.
func oneOrNil[T any](v *T, err error) (*T, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return v, err
}

func (r *categoryRepository) ListCategories(ctx context.Context, activeOnly bool) ([]*domain.Category, error) {
	rows, err := r.db.pool.Query(ctx,
		`SELECT `+categoryCols+` FROM categories WHERE is_active OR NOT $1 ORDER BY name`, activeOnly)
	if err != nil {
		r.log.Error().Err(err).Msg("Failed to list categories")
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *categoryRepository) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return oneOrNil(scanCategory(r.db.pool.QueryRow(ctx,
		`SELECT `+categoryCols+` FROM categories WHERE id = $1`, id)))
}

func (r *categoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	return oneOrNil(scanCategory(r.db.pool.QueryRow(ctx,
		`SELECT `+categoryCols+` FROM categories WHERE is_active AND LOWER(name) = LOWER($1) LIMIT 1`, name)))
}

func (r *categoryRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	err := r.db.pool.QueryRow(ctx, `
		INSERT INTO categories (name, description, emoji, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		c.Name, c.Description, c.Emoji, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		r.log.Error().Err(err).Str("name", c.Name).Msg("Failed to insert category")
	}
	return err
}

func (r *categoryRepository) ListSubcategories(ctx context.Context, categoryID int64) ([]*domain.Subcategory, error) {
	rows, err := r.db.pool.Query(ctx,
		`SELECT `+subcategoryCols+` FROM subcategories WHERE category_id = $1 AND is_active ORDER BY name`, categoryID)
	if err != nil {
		r.log.Error().Err(err).Int64("category_id", categoryID).Msg("Failed to list subcategories")
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()

	var out []*domain.Subcategory
	for rows.Next() {
		s, err := scanSubcategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *categoryRepository) GetSubcategory(ctx context.Context, id int64) (*domain.Subcategory, error) {
	return oneOrNil(scanSubcategory(r.db.pool.QueryRow(ctx,
		`SELECT `+subcategoryCols+` FROM subcategories WHERE id = $1`, id)))
}

func (r *categoryRepository) FindSubcategoryByName(ctx context.Context, name string) (*domain.Subcategory, error) {
	return oneOrNil(scanSubcategory(r.db.pool.QueryRow(ctx,
		`SELECT `+subcategoryCols+` FROM subcategories WHERE is_active AND LOWER(name) = LOWER($1) LIMIT 1`, name)))
}

func (r *categoryRepository) CreateSubcategory(ctx context.Context, s *domain.Subcategory) error {
	err := r.db.pool.QueryRow(ctx, `
		INSERT INTO subcategories (category_id, name, emoji, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		s.CategoryID, s.Name, s.Emoji, s.IsActive,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		r.log.Error().Err(err).Int64("category_id", s.CategoryID).Msg("Failed to insert subcategory")
	}
	return err
}
