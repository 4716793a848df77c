package ports

import (
	"ShopBot/internal/core/domain"
	"context"

	"github.com/google/uuid"
)

// CategoryRepository covers categories and subcategories.
type CategoryRepository interface {
	ListCategories(ctx context.Context, activeOnly bool) ([]*domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	// FindCategoryByName matches an active category case-insensitively.
	FindCategoryByName(ctx context.Context, name string) (*domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) error

	ListSubcategories(ctx context.Context, categoryID int64) ([]*domain.Subcategory, error)
	GetSubcategory(ctx context.Context, id int64) (*domain.Subcategory, error)
	FindSubcategoryByName(ctx context.Context, name string) (*domain.Subcategory, error)
	CreateSubcategory(ctx context.Context, s *domain.Subcategory) error
}

// ProductFilter narrows admin product listings.
type ProductFilter struct {
	Search     string
	CategoryID int64
	Limit      int
	Offset     int
}

// ProductRepository covers products, reviews and favorites.
type ProductRepository interface {
	// ListByCategory returns active, in-stock products of a category.
	ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Product, error)
	// ListBySubcategory returns active, in-stock products of a subcategory.
	ListBySubcategory(ctx context.Context, subcategoryID int64) ([]*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	FindByName(ctx context.Context, name string) (*domain.Product, error)
	Search(ctx context.Context, query string, limit int) ([]*domain.Product, error)
	IncrementViews(ctx context.Context, id int64) error

	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, int, error)

	RatingSummary(ctx context.Context, productID int64) (domain.RatingSummary, error)
	ListReviews(ctx context.Context, productID int64, limit int) ([]*domain.Review, int, error)
	AddReview(ctx context.Context, r *domain.Review) error
	// AddFavorite returns false when the product was already a favorite.
	AddFavorite(ctx context.Context, userID uuid.UUID, productID int64) (bool, error)
}
