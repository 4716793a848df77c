// Package mocks holds testify mocks for the ports used across package tests.
package mocks

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// UserRepository mocks ports.UserRepository.
type UserRepository struct {
	mock.Mock
}

var _ ports.UserRepository = (*UserRepository)(nil)

func (m *UserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) GetByTelegramID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) UpdateLanguage(ctx context.Context, id uuid.UUID, lang domain.Language) error {
	args := m.Called(ctx, id, lang)
	return args.Error(0)
}

func (m *UserRepository) ListAdmins(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *UserRepository) List(ctx context.Context, params ports.ListParams) ([]*domain.User, int, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.User), args.Int(1), args.Error(2)
}

// CategoryRepository mocks ports.CategoryRepository.
type CategoryRepository struct {
	mock.Mock
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func (m *CategoryRepository) ListCategories(ctx context.Context, activeOnly bool) ([]*domain.Category, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *CategoryRepository) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *CategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *CategoryRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CategoryRepository) ListSubcategories(ctx context.Context, categoryID int64) ([]*domain.Subcategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Subcategory), args.Error(1)
}

func (m *CategoryRepository) GetSubcategory(ctx context.Context, id int64) (*domain.Subcategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subcategory), args.Error(1)
}

func (m *CategoryRepository) FindSubcategoryByName(ctx context.Context, name string) (*domain.Subcategory, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subcategory), args.Error(1)
}

func (m *CategoryRepository) CreateSubcategory(ctx context.Context, s *domain.Subcategory) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// ProductRepository mocks ports.ProductRepository.
type ProductRepository struct {
	mock.Mock
}

var _ ports.ProductRepository = (*ProductRepository)(nil)

func (m *ProductRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Product, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *ProductRepository) ListBySubcategory(ctx context.Context, subcategoryID int64) ([]*domain.Product, error) {
	args := m.Called(ctx, subcategoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *ProductRepository) Get(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *ProductRepository) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *ProductRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Product, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *ProductRepository) IncrementViews(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepository) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Product), args.Int(1), args.Error(2)
}

func (m *ProductRepository) RatingSummary(ctx context.Context, productID int64) (domain.RatingSummary, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(domain.RatingSummary), args.Error(1)
}

func (m *ProductRepository) ListReviews(ctx context.Context, productID int64, limit int) ([]*domain.Review, int, error) {
	args := m.Called(ctx, productID, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Review), args.Int(1), args.Error(2)
}

func (m *ProductRepository) AddReview(ctx context.Context, r *domain.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *ProductRepository) AddFavorite(ctx context.Context, userID uuid.UUID, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

// CartRepository mocks ports.CartRepository.
type CartRepository struct {
	mock.Mock
}

var _ ports.CartRepository = (*CartRepository)(nil)

func (m *CartRepository) ListItems(ctx context.Context, userID uuid.UUID) ([]domain.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CartItem), args.Error(1)
}

func (m *CartRepository) Add(ctx context.Context, userID uuid.UUID, productID int64, qty int) error {
	args := m.Called(ctx, userID, productID, qty)
	return args.Error(0)
}

func (m *CartRepository) GetItem(ctx context.Context, userID uuid.UUID, itemID int64) (*domain.CartItem, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartItem), args.Error(1)
}

func (m *CartRepository) UpdateQuantity(ctx context.Context, userID uuid.UUID, itemID int64, qty int) error {
	args := m.Called(ctx, userID, itemID, qty)
	return args.Error(0)
}

func (m *CartRepository) Remove(ctx context.Context, userID uuid.UUID, itemID int64) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *CartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// OrderRepository mocks ports.OrderRepository.
type OrderRepository struct {
	mock.Mock
}

var _ ports.OrderRepository = (*OrderRepository)(nil)

func (m *OrderRepository) CreateFromCart(ctx context.Context, req domain.CheckoutRequest) (*domain.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) GetForUser(ctx context.Context, orderID int64, userID uuid.UUID) (*domain.Order, error) {
	args := m.Called(ctx, orderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) Get(ctx context.Context, orderID int64) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Order, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *OrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*domain.Order, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Order), args.Int(1), args.Error(2)
}

func (m *OrderRepository) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepository) CancelForUser(ctx context.Context, orderID int64, userID uuid.UUID) error {
	args := m.Called(ctx, orderID, userID)
	return args.Error(0)
}

func (m *OrderRepository) HasPurchased(ctx context.Context, userID uuid.UUID, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepository) UserStats(ctx context.Context, userID uuid.UUID) (domain.UserStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UserStats), args.Error(1)
}

func (m *OrderRepository) Dashboard(ctx context.Context) (ports.DashboardStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.DashboardStats), args.Error(1)
}

// LoyaltyRepository mocks ports.LoyaltyRepository.
type LoyaltyRepository struct {
	mock.Mock
}

var _ ports.LoyaltyRepository = (*LoyaltyRepository)(nil)

func (m *LoyaltyRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.LoyaltyAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoyaltyAccount), args.Error(1)
}

func (m *LoyaltyRepository) Ensure(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// PromoRepository mocks ports.PromoRepository.
type PromoRepository struct {
	mock.Mock
}

var _ ports.PromoRepository = (*PromoRepository)(nil)

func (m *PromoRepository) GetByCode(ctx context.Context, code string) (*domain.Promo, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Promo), args.Error(1)
}

func (m *PromoRepository) ListAvailable(ctx context.Context, now time.Time) ([]*domain.Promo, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Promo), args.Error(1)
}

// NotificationRepository mocks ports.NotificationRepository.
type NotificationRepository struct {
	mock.Mock
}

var _ ports.NotificationRepository = (*NotificationRepository)(nil)

func (m *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NotificationRepository) ListUnread(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Notification), args.Error(1)
}

func (m *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// SellerRepository mocks ports.SellerRepository.
type SellerRepository struct {
	mock.Mock
}

var _ ports.SellerRepository = (*SellerRepository)(nil)

func (m *SellerRepository) Create(ctx context.Context, app *domain.SellerApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *SellerRepository) List(ctx context.Context, params ports.ListParams) ([]*domain.SellerApplication, int, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.SellerApplication), args.Int(1), args.Error(2)
}
