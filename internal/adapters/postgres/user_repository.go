package postgres

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type userRepository struct {
	db     *DB
	secSvc ports.SecurityPort // Phone and email are encrypted at rest
	log    zerolog.Logger
}

var _ ports.UserRepository = (*userRepository)(nil) // Ensure compliance

// NewUserRepository creates a new repository for user operations.
func NewUserRepository(db *DB, secSvc ports.SecurityPort, baseLogger *zerolog.Logger) ports.UserRepository {
	return &userRepository{
		db:     db,
		secSvc: secSvc,
		log:    baseLogger.With().Str("component", "user_repo").Logger(),
	}
}

// encrypt returns the base64 ciphertext of an optional field.
func (r *userRepository) encrypt(field string, value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	encBytes, err := r.secSvc.Encrypt([]byte(*value))
	if err != nil {
		r.log.Error().Err(err).Str("field", field).Msg("Failed to encrypt field")
		return nil, err
	}
	encStr := base64.StdEncoding.EncodeToString(encBytes)
	return &encStr, nil
}

func (r *userRepository) decrypt(userID uuid.UUID, field string, value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	// 1. Decode from Base64 string to raw bytes
	decBytes, err := base64.StdEncoding.DecodeString(*value)
	if err != nil {
		r.log.Error().Err(err).Str("user_id", userID.String()).Str("field", field).Msg("Failed to base64-decode field")
		return nil, err
	}
	// 2. Decrypt the raw bytes
	dec, err := r.secSvc.Decrypt(decBytes)
	if err != nil {
		r.log.Error().Err(err).Str("user_id", userID.String()).Str("field", field).Msg("Failed to decrypt field (tampered?)")
		return nil, err
	}
	decStr := string(dec)
	return &decStr, nil
}

// Create encrypts sensitive data and saves a new user.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	encPhone, err := r.encrypt("phone", user.Phone)
	if err != nil {
		return err
	}
	encEmail, err := r.encrypt("email", user.Email)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (id, telegram_id, name, phone, email, language, is_admin, is_banned)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	err = r.db.pool.QueryRow(ctx, query,
		user.ID,
		user.TelegramID,
		user.Name,
		encPhone,
		encEmail,
		string(user.Lang()),
		user.IsAdmin,
		user.IsBanned,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		r.log.Error().Err(err).Int64("telegram_id", user.TelegramID).Msg("Failed to insert new user")
		return err
	}
	return nil
}

// scanUser scans a row into a User and decrypts its sensitive fields.
func (r *userRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var encPhone, encEmail *string
	var lang string

	err := row.Scan(
		&user.ID,
		&user.TelegramID,
		&user.Name,
		&encPhone,
		&encEmail,
		&lang,
		&user.IsAdmin,
		&user.IsBanned,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		r.log.Error().Err(err).Msg("Failed to scan user row")
		return nil, err
	}
	user.Language = domain.ParseLanguage(lang)

	if user.Phone, err = r.decrypt(user.ID, "phone", encPhone); err != nil {
		return nil, err
	}
	if user.Email, err = r.decrypt(user.ID, "email", encEmail); err != nil {
		return nil, err
	}
	return &user, nil
}

const userQueryCols = `
	id, telegram_id, name, phone, email, language, is_admin, is_banned, created_at, updated_at
`

func (r *userRepository) getOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	row := r.db.pool.QueryRow(ctx, `SELECT `+userQueryCols+` FROM users WHERE `+where, arg)
	user, err := r.scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Return nil, nil for "not found"
		}
		return nil, err
	}
	return user, nil
}

// GetByTelegramID finds and decrypts a user by their Telegram ID.
func (r *userRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	return r.getOne(ctx, "telegram_id = $1", telegramID)
}

// GetByID finds and decrypts a user by their internal UUID.
func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, "id = $1", id)
}

// Update saves the editable profile fields.
func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	encPhone, err := r.encrypt("phone", user.Phone)
	if err != nil {
		return err
	}
	encEmail, err := r.encrypt("email", user.Email)
	if err != nil {
		return err
	}

	query := `
		UPDATE users
		SET name = $2, phone = $3, email = $4, language = $5, is_admin = $6, is_banned = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err = r.db.pool.QueryRow(ctx, query,
		user.ID, user.Name, encPhone, encEmail, string(user.Lang()), user.IsAdmin, user.IsBanned,
	).Scan(&user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		r.log.Error().Err(err).Str("user_id", user.ID.String()).Msg("Failed to update user")
	}
	return err
}

func (r *userRepository) UpdateLanguage(ctx context.Context, id uuid.UUID, lang domain.Language) error {
	tag, err := r.db.pool.Exec(ctx,
		`UPDATE users SET language = $2, updated_at = NOW() WHERE id = $1`, id, string(lang))
	if err != nil {
		r.log.Error().Err(err).Str("user_id", id.String()).Msg("Failed to update language")
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) ListAdmins(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.pool.Query(ctx, `SELECT `+userQueryCols+` FROM users WHERE is_admin AND NOT is_banned`)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// List pages through users, newest first, optionally filtered by name.
func (r *userRepository) List(ctx context.Context, params ports.ListParams) ([]*domain.User, int, error) {
	var total int
	search := likePattern(params.Search)
	if err := r.db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE $1 = '' OR name ILIKE $1`, search,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	rows, err := r.db.pool.Query(ctx, `
		SELECT `+userQueryCols+` FROM users
		WHERE $1 = '' OR name ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		search, pageLimit(params.Limit), params.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users, err := r.collect(rows)
	return users, total, err
}

func (r *userRepository) collect(rows pgx.Rows) ([]*domain.User, error) {
	var users []*domain.User
	for rows.Next() {
		user, err := r.scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
