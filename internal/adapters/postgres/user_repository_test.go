package postgres

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create_GetByTelegramID_Roundtrip(t *testing.T) {
	// 1. Setup
	nopLogger := zerolog.Nop()
	repo := NewUserRepository(testDB, testSecSvc, &nopLogger)
	ctx := context.Background()

	phone := "+998901234567"
	email := "aziz@example.uz"
	user := &domain.User{
		ID:         uuid.New(),
		TelegramID: time.Now().UnixNano(),
		Name:       "Aziz",
		Phone:      &phone,
		Email:      &email,
		Language:   domain.LangUZ,
	}

	// 2. Run Create
	require.NoError(t, repo.Create(ctx, user))
	defer cleanupTestUser(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	// 3. Run GetByTelegramID
	found, err := repo.GetByTelegramID(ctx, user.TelegramID)
	require.NoError(t, err)
	require.NotNil(t, found)

	// 4. Verify
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "Aziz", found.Name)
	assert.Equal(t, domain.LangUZ, found.Language)
	require.NotNil(t, found.Phone)
	assert.Equal(t, phone, *found.Phone, "decryption failed?")
	require.NotNil(t, found.Email)
	assert.Equal(t, email, *found.Email)

	// 5. The stored value is ciphertext
	var stored string
	require.NoError(t, testDB.pool.QueryRow(ctx, `SELECT phone FROM users WHERE id = $1`, user.ID).Scan(&stored))
	assert.NotContains(t, stored, "998901234567")
}

func TestUserRepository_NotFound(t *testing.T) {
	nopLogger := zerolog.Nop()
	repo := NewUserRepository(testDB, testSecSvc, &nopLogger)
	ctx := context.Background()

	user, err := repo.GetByTelegramID(ctx, -1)
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, user)

	assert.ErrorIs(t, repo.UpdateLanguage(ctx, uuid.New(), domain.LangUZ), domain.ErrNotFound)
}

func TestUserRepository_UpdateLanguageAndAdmins(t *testing.T) {
	nopLogger := zerolog.Nop()
	repo := NewUserRepository(testDB, testSecSvc, &nopLogger)
	ctx := context.Background()
	user := createTestUser(t)

	// 1. Language change
	require.NoError(t, repo.UpdateLanguage(ctx, user.ID, domain.LangUZ))
	found, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LangUZ, found.Language)

	// 2. Promote to admin
	found.IsAdmin = true
	require.NoError(t, repo.Update(ctx, found))

	admins, err := repo.ListAdmins(ctx)
	require.NoError(t, err)
	assert.Contains(t, telegramIDs(admins), user.TelegramID)

	// 3. Listing finds the user by name
	users, total, err := repo.List(ctx, ports.ListParams{Search: "Test User", Limit: 100})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, 1)
	assert.Contains(t, telegramIDs(users), user.TelegramID)
}

func telegramIDs(users []*domain.User) []int64 {
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.TelegramID)
	}
	return ids
}
