package postgres

import (
	"ShopBot/internal/adapters/security"
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"ShopBot/internal/shared/config"
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *DB
	testSecSvc ports.SecurityPort
)

// TestMain connects to the database named by DATABASE_URL and applies the schema.
// Without a usable config the integration tests are skipped.
func TestMain(m *testing.M) {
	// 1. Load config from the project root, where .env lives
	if err := os.Chdir("../../../"); err != nil {
		log.Fatalf("TestMain: chdir: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Printf("TestMain: skipping postgres tests, config unavailable: %v", err)
		os.Exit(0)
	}

	nopLogger := zerolog.Nop()

	// 2. Set up Security Service
	testSecSvc, err = security.NewAESServiceFromHex(cfg.EncryptionKey, &nopLogger)
	if err != nil {
		log.Fatalf("TestMain: Failed to create security service: %v", err)
	}

	// 3. Set up DB Connection and schema
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	testDB, err = NewDB(ctx, cfg.Postgres.URL, &nopLogger)
	if err != nil {
		cancel()
		log.Fatalf("TestMain: Failed to connect to test database: %v", err)
	}
	if err := testDB.Migrate(ctx); err != nil {
		cancel()
		log.Fatalf("TestMain: Failed to migrate: %v", err)
	}
	cancel()

	// 4. Run tests
	code := m.Run()

	// 5. Teardown
	testDB.Close()
	os.Exit(code)
}

// createTestUser inserts a user and registers its cleanup.
func createTestUser(t *testing.T) *domain.User {
	t.Helper()
	nopLogger := zerolog.Nop()
	repo := NewUserRepository(testDB, testSecSvc, &nopLogger)

	user := &domain.User{
		ID:         uuid.New(),
		TelegramID: time.Now().UnixNano(),
		Name:       "Test User",
		Language:   domain.LangRU,
	}
	require.NoError(t, repo.Create(context.Background(), user))

	t.Cleanup(func() { cleanupTestUser(t, user.ID) })
	return user
}

// cleanupTestUser removes a user and everything that references it.
func cleanupTestUser(t *testing.T, id uuid.UUID) {
	ctx := context.Background()
	for _, q := range []string{
		`DELETE FROM cart_items WHERE user_id = $1`,
		`DELETE FROM orders WHERE user_id = $1`,
		`DELETE FROM loyalty_accounts WHERE user_id = $1`,
		`DELETE FROM reviews WHERE user_id = $1`,
		`DELETE FROM favorites WHERE user_id = $1`,
		`DELETE FROM notifications WHERE user_id = $1`,
		`DELETE FROM seller_applications WHERE user_id = $1`,
		`DELETE FROM users WHERE id = $1`,
	} {
		if _, err := testDB.pool.Exec(ctx, q, id); err != nil {
			t.Logf("Warning: cleanup %q for user %s: %v", q, id, err)
		}
	}
}

// createTestProduct inserts a category and a product with the given stock.
func createTestProduct(t *testing.T, price domain.Money, stock *int) *domain.Product {
	t.Helper()
	nopLogger := zerolog.Nop()
	ctx := context.Background()
	categories := NewCategoryRepository(testDB, &nopLogger)
	products := NewProductRepository(testDB, &nopLogger)

	category := &domain.Category{Name: "Test " + uuid.NewString()[:8], IsActive: true}
	require.NoError(t, categories.CreateCategory(ctx, category))

	product := &domain.Product{
		Name:       "Product " + uuid.NewString()[:8],
		Price:      price,
		Stock:      stock,
		IsActive:   true,
		CategoryID: category.ID,
	}
	require.NoError(t, products.Create(ctx, product))

	t.Cleanup(func() {
		for _, q := range []string{
			`DELETE FROM order_items WHERE product_id = $1`,
			`DELETE FROM reviews WHERE product_id = $1`,
			`DELETE FROM favorites WHERE product_id = $1`,
			`DELETE FROM cart_items WHERE product_id = $1`,
			`DELETE FROM products WHERE id = $1`,
		} {
			_, _ = testDB.pool.Exec(ctx, q, product.ID)
		}
		_, _ = testDB.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, category.ID)
	})
	return product
}

func intPtr(n int) *int { return &n }
