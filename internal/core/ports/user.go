package ports

import (
	"ShopBot/internal/core/domain"
	"context"

	"github.com/google/uuid"
)

// ListParams is a simple search + page window used by admin listings.
type ListParams struct {
	Search string
	Limit  int
	Offset int
}

// UserRepository defines the persistence operations for Users.
type UserRepository interface {
	// Create saves a new user to the database.
	Create(ctx context.Context, user *domain.User) error

	// GetByTelegramID finds a user by their unique Telegram ID.
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)

	// GetByID finds a user by their internal UUID.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	Update(ctx context.Context, user *domain.User) error
	UpdateLanguage(ctx context.Context, id uuid.UUID, lang domain.Language) error

	// ListAdmins returns users flagged as admins.
	ListAdmins(ctx context.Context) ([]*domain.User, error)

	List(ctx context.Context, params ListParams) ([]*domain.User, int, error)
}
