package admin

import (
	"ShopBot/internal/adapters/security"
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"ShopBot/internal/core/ports/mocks"
	"ShopBot/internal/shared/config"
	"encoding/json"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "s3cret-pass"

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type fixture struct {
	server     *Server
	users      *mocks.UserRepository
	categories *mocks.CategoryRepository
	products   *mocks.ProductRepository
	orders     *mocks.OrderRepository
	loyalty    *mocks.LoyaltyRepository
	sellers    *mocks.SellerRepository
	bus        *mocks.EventBus
	now        time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	f := &fixture{
		users:      new(mocks.UserRepository),
		categories: new(mocks.CategoryRepository),
		products:   new(mocks.ProductRepository),
		orders:     new(mocks.OrderRepository),
		loyalty:    new(mocks.LoyaltyRepository),
		sellers:    new(mocks.SellerRepository),
		bus:        new(mocks.EventBus),
		now:        testNow,
	}
	cfg := config.AdminConfig{
		Addr:         ":0",
		Username:     "admin",
		PasswordHash: string(hash),
		JWTSecret:    "test-secret",
		SessionTTL:   time.Hour,
	}
	nopLogger := zerolog.Nop()
	f.server, err = NewServer(cfg, Deps{
		Users:      f.users,
		Categories: f.categories,
		Products:   f.products,
		Orders:     f.orders,
		Loyalty:    f.loyalty,
		Sellers:    f.sellers,
		Bus:        f.bus,
		Hasher:     security.NewPasswordHasher(),
		Now:        func() time.Time { return f.now },
	}, &nopLogger)
	require.NoError(t, err)
	return f
}

// do sends a request, authenticated unless anon is set.
func (f *fixture) do(t *testing.T, method, target string, form url.Values, anon bool) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if !anon {
		token, _, err := f.server.issueToken("admin")
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	return rec
}

func TestNewServer_RequiresSecret(t *testing.T) {
	nopLogger := zerolog.Nop()
	_, err := NewServer(config.AdminConfig{}, Deps{}, &nopLogger)
	assert.Error(t, err)
}

func TestHealthz_IsPublic(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/healthz", nil, true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAuth_Guards(t *testing.T) {
	f := newFixture(t)

	// 1. Pages redirect to the login form
	rec := f.do(t, http.MethodGet, "/orders", nil, true)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	// 2. API calls get 401 JSON
	rec = f.do(t, http.MethodGet, "/api/subcategories/1", nil, true)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "unauthorized")

	// 3. An expired cookie is rejected
	token, _, err := f.server.issueToken("admin")
	require.NoError(t, err)
	f.now = f.now.Add(2 * time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	rec = httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	// 4. A token signed with another key is rejected
	f.now = testNow
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: token + "x"})
	rec = httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		wantStatus int
		wantCookie bool
		wantBody   string
	}{
		{"valid credentials", url.Values{"username": {"admin"}, "password": {testPassword}}, http.StatusSeeOther, true, ""},
		{"wrong password", url.Values{"username": {"admin"}, "password": {"nope"}}, http.StatusUnauthorized, false, "Неверный логин или пароль"},
		{"wrong username", url.Values{"username": {"root"}, "password": {testPassword}}, http.StatusUnauthorized, false, "Неверный логин или пароль"},
		{"missing password", url.Values{"username": {"admin"}}, http.StatusUnprocessableEntity, false, "Введите логин и пароль"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			rec := f.do(t, http.MethodPost, "/login", tt.form, true)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)

			cookies := rec.Result().Cookies()
			if !tt.wantCookie {
				assert.Empty(t, cookies)
				return
			}
			require.Len(t, cookies, 1)
			assert.Equal(t, cookieName, cookies[0].Name)
			assert.True(t, cookies[0].HttpOnly)
			claims, err := f.server.parseToken(cookies[0].Value)
			require.NoError(t, err)
			assert.Equal(t, "admin", claims.Subject)
		})
	}
}

func TestLoginPage_AndLogout(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/login", nil, true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="password"`)
	assert.NotContains(t, rec.Body.String(), "/logout", "nav is hidden for guests")

	rec = f.do(t, http.MethodGet, "/logout", nil, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	require.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, -1, rec.Result().Cookies()[0].MaxAge)
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	f.orders.On("Dashboard", mock.Anything).Return(ports.DashboardStats{
		Users: 12, Orders: 30, PendingOrders: 4, Products: 55, Revenue: 123450,
	}, nil)

	rec := f.do(t, http.MethodGet, "/", nil, false)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "$1234.50")
	assert.Contains(t, body, "/orders?status=pending")
	assert.Contains(t, body, "/logout")
}

func TestListOrders_Filter(t *testing.T) {
	// 1. Setup
	f := newFixture(t)
	userID := uuid.New()
	f.orders.On("List", mock.Anything, ports.OrderFilter{
		Status: domain.OrderPending, Search: "Aziz", Limit: pageSize, Offset: pageSize,
	}).Return([]*domain.Order{
		{ID: 12, UserID: userID, Total: 2750, Status: domain.OrderPending, PaymentMethod: domain.PaymentCash, CreatedAt: testNow},
	}, 41, nil)

	// 2. Run
	rec := f.do(t, http.MethodGet, "/orders?status=pending&q=Aziz&page=2", nil, false)

	// 3. Verify
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `href="/orders/12"`)
	assert.Contains(t, body, "$27.50")
	assert.Contains(t, body, "14.03.2026 12:00")
	assert.Contains(t, body, "Страница 2 из 3")
	assert.Contains(t, body, "page=3")
	f.orders.AssertExpectations(t)
}

func TestListOrders_UnknownStatusIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.orders.On("List", mock.Anything, ports.OrderFilter{Limit: pageSize}).Return([]*domain.Order{}, 0, nil)

	rec := f.do(t, http.MethodGet, "/orders?status=lost", nil, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Заказов нет")
}

func TestShowOrder(t *testing.T) {
	f := newFixture(t)
	customer := &domain.User{ID: uuid.New(), Name: "Aziz", TelegramID: 5005}
	promo := "SPRING10"
	f.orders.On("Get", mock.Anything, int64(12)).Return(&domain.Order{
		ID: 12, UserID: customer.ID, Subtotal: 3000, Discount: 300, Total: 2700,
		Status: domain.OrderConfirmed, Address: "Tashkent <Chilonzor>", PromoCode: &promo,
		Items: []domain.OrderItem{{ProductName: "Case", UnitPrice: 1500, Quantity: 2}},
	}, nil)
	f.orders.On("Get", mock.Anything, int64(404)).Return(nil, nil)
	f.users.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)

	rec := f.do(t, http.MethodGet, "/orders/12", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Заказ #12")
	assert.Contains(t, body, "Tashkent &lt;Chilonzor&gt;")
	assert.Contains(t, body, "SPRING10")
	assert.Contains(t, body, "$30.00")
	assert.Contains(t, body, `value="confirmed" selected`)

	rec = f.do(t, http.MethodGet, "/orders/404", nil, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Заказ #404 не найден")

	rec = f.do(t, http.MethodGet, "/orders/abc", nil, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateOrderStatus_PublishesChange(t *testing.T) {
	// 1. Setup
	f := newFixture(t)
	order := &domain.Order{ID: 12, Status: domain.OrderPending}
	f.orders.On("Get", mock.Anything, int64(12)).Return(order, nil)
	f.orders.On("UpdateStatus", mock.Anything, int64(12), domain.OrderShipped).Return(nil)
	f.bus.On("Publish", mock.Anything, ports.TopicOrderStatus, mock.MatchedBy(func(c domain.OrderStatusChange) bool {
		return c.Previous == domain.OrderPending && c.Order.ID == 12 && c.Order.Status == domain.OrderShipped
	})).Return(nil)

	// 2. Run
	rec := f.do(t, http.MethodPost, "/orders/12/status", url.Values{"status": {"shipped"}}, false)

	// 3. Verify
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/orders/12", rec.Header().Get("Location"))
	f.bus.AssertExpectations(t)
}

func TestUpdateOrderStatus_NoChangeOrInvalid(t *testing.T) {
	f := newFixture(t)
	f.orders.On("Get", mock.Anything, int64(12)).Return(&domain.Order{ID: 12, Status: domain.OrderShipped}, nil)

	// 1. Same status: nothing is written or published
	rec := f.do(t, http.MethodPost, "/orders/12/status", url.Values{"status": {"shipped"}}, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	// 2. Unknown status is rejected before any lookup
	rec = f.do(t, http.MethodPost, "/orders/12/status", url.Values{"status": {"lost"}}, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	f.bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func validProductForm() url.Values {
	return url.Values{
		"name":           {"iPhone Case"},
		"description":    {"Silicone"},
		"price":          {"12.5"},
		"cost_price":     {"7.25"},
		"category_id":    {"3"},
		"subcategory_id": {"0"},
		"stock":          {""},
		"image_url":      {"https://cdn.example.uz/case.jpg"},
		"is_active":      {"true"},
	}
}

func TestCreateProduct(t *testing.T) {
	// 1. Setup
	f := newFixture(t)
	f.categories.On("GetCategory", mock.Anything, int64(3)).Return(&domain.Category{ID: 3, Name: "Accessories"}, nil)
	f.products.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.Name == "iPhone Case" &&
			p.Price == 1250 &&
			p.CostPrice == 725 &&
			p.Stock == nil &&
			p.SubcategoryID == nil &&
			p.CategoryID == 3 &&
			p.IsActive
	})).Return(nil)

	// 2. Run
	rec := f.do(t, http.MethodPost, "/products/new", validProductForm(), false)

	// 3. Verify
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/products", rec.Header().Get("Location"))
	f.products.AssertExpectations(t)
}

func TestCreateProduct_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(url.Values)
		wantMsg string
	}{
		{"bad price", func(v url.Values) { v.Set("price", "12.505") }, "сумма в формате 12.50"},
		{"negative stock", func(v url.Values) { v.Set("stock", "-1") }, "целое число"},
		{"no category", func(v url.Values) { v.Set("category_id", "0") }, "выберите значение"},
		{"short name", func(v url.Values) { v.Set("name", "x") }, "слишком коротко"},
		{"bad image", func(v url.Values) { v.Set("image_url", "not a url") }, "некорректный URL"},
		{"foreign subcategory", func(v url.Values) { v.Set("subcategory_id", "9") }, "подкатегория не из этой категории"},
		{"missing category", func(v url.Values) { v.Set("category_id", "8") }, "категория не найдена"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.categories.On("GetCategory", mock.Anything, int64(3)).Return(&domain.Category{ID: 3}, nil).Maybe()
			f.categories.On("GetCategory", mock.Anything, int64(8)).Return(nil, nil).Maybe()
			f.categories.On("GetSubcategory", mock.Anything, int64(9)).Return(&domain.Subcategory{ID: 9, CategoryID: 4}, nil).Maybe()
			f.categories.On("ListCategories", mock.Anything, false).Return([]*domain.Category{{ID: 3, Name: "Accessories"}}, nil)
			f.categories.On("ListSubcategories", mock.Anything, mock.Anything).Return([]*domain.Subcategory{}, nil).Maybe()

			form := validProductForm()
			tt.mutate(form)
			rec := f.do(t, http.MethodPost, "/products/new", form, false)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
			f.products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestEditProduct(t *testing.T) {
	f := newFixture(t)
	stock := 4
	sub := int64(7)
	product := &domain.Product{ID: 5, Name: "Case", Price: 1250, Stock: &stock, CategoryID: 3, SubcategoryID: &sub, IsActive: true}
	f.products.On("Get", mock.Anything, int64(5)).Return(product, nil)
	f.categories.On("ListCategories", mock.Anything, false).Return([]*domain.Category{{ID: 3, Name: "Accessories"}}, nil)
	f.categories.On("ListSubcategories", mock.Anything, int64(3)).Return([]*domain.Subcategory{{ID: 7, CategoryID: 3, Name: "Cases"}}, nil)

	// 1. The form is prefilled
	rec := f.do(t, http.MethodGet, "/products/5/edit", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="12.50"`)
	assert.Contains(t, body, `name="stock" value="4"`)
	assert.Contains(t, body, `value="7" selected`)

	// 2. Saving with an empty stock makes it unlimited
	f.categories.On("GetCategory", mock.Anything, int64(3)).Return(&domain.Category{ID: 3}, nil)
	f.categories.On("GetSubcategory", mock.Anything, int64(7)).Return(&domain.Subcategory{ID: 7, CategoryID: 3}, nil)
	f.products.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.ID == 5 && p.Stock == nil && p.SubcategoryID != nil && *p.SubcategoryID == 7 && !p.IsActive
	})).Return(nil)

	form := validProductForm()
	form.Set("subcategory_id", "7")
	form.Del("is_active")
	rec = f.do(t, http.MethodPost, "/products/5/edit", form, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	f.products.AssertExpectations(t)
}

func TestListProducts(t *testing.T) {
	f := newFixture(t)
	f.products.On("List", mock.Anything, ports.ProductFilter{Search: "case", CategoryID: 3, Limit: pageSize}).
		Return([]*domain.Product{{ID: 5, Name: "Case", Price: 1250, IsActive: true}}, 1, nil)
	f.categories.On("ListCategories", mock.Anything, false).Return([]*domain.Category{{ID: 3, Name: "Accessories", Emoji: "🎧"}}, nil)

	rec := f.do(t, http.MethodGet, "/products?q=case&category=3", nil, false)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `href="/products/5/edit"`)
	assert.Contains(t, body, "∞")
	assert.Contains(t, body, `value="3" selected`)
}

func TestCreateCategory_PublishesEvent(t *testing.T) {
	// 1. Setup
	f := newFixture(t)
	f.categories.On("CreateCategory", mock.Anything, mock.MatchedBy(func(c *domain.Category) bool {
		return c.Name == "Phones" && c.Emoji == "📱" && c.IsActive
	})).Run(func(args mock.Arguments) { args.Get(1).(*domain.Category).ID = 9 }).Return(nil)
	f.bus.On("Publish", mock.Anything, ports.TopicCategoryCreated, mock.MatchedBy(func(c *domain.Category) bool {
		return c.ID == 9
	})).Return(nil)

	// 2. Run
	rec := f.do(t, http.MethodPost, "/categories", url.Values{"name": {" Phones "}, "emoji": {"📱"}}, false)

	// 3. Verify
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	f.bus.AssertExpectations(t)
}

func TestCreateCategory_Invalid(t *testing.T) {
	f := newFixture(t)
	f.categories.On("ListCategories", mock.Anything, false).Return([]*domain.Category{}, nil)

	rec := f.do(t, http.MethodPost, "/categories", url.Values{"name": {""}}, false)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "обязательное поле")
	f.bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateSubcategory(t *testing.T) {
	f := newFixture(t)
	f.categories.On("GetCategory", mock.Anything, int64(3)).Return(&domain.Category{ID: 3}, nil)
	f.categories.On("GetCategory", mock.Anything, int64(4)).Return(nil, nil)
	f.categories.On("CreateSubcategory", mock.Anything, mock.MatchedBy(func(s *domain.Subcategory) bool {
		return s.CategoryID == 3 && s.Name == "Cases"
	})).Return(nil)

	rec := f.do(t, http.MethodPost, "/categories/3/subcategories", url.Values{"name": {"Cases"}}, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	rec = f.do(t, http.MethodPost, "/categories/4/subcategories", url.Values{"name": {"Cases"}}, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoriesPage(t *testing.T) {
	f := newFixture(t)
	f.categories.On("ListCategories", mock.Anything, false).Return([]*domain.Category{{ID: 3, Name: "Phones", Emoji: "📱", IsActive: true}}, nil)
	f.categories.On("ListSubcategories", mock.Anything, int64(3)).Return([]*domain.Subcategory{{ID: 7, Name: "Android"}}, nil)

	rec := f.do(t, http.MethodGet, "/categories", nil, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "📱 Phones")
	assert.Contains(t, rec.Body.String(), "Android")
}

func TestAPISubcategories(t *testing.T) {
	f := newFixture(t)
	f.categories.On("ListSubcategories", mock.Anything, int64(3)).Return([]*domain.Subcategory{
		{ID: 7, Name: "Android", Emoji: "🤖"},
		{ID: 8, Name: "iOS"},
	}, nil)

	rec := f.do(t, http.MethodGet, "/api/subcategories/3", nil, false)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []subcategoryJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []subcategoryJSON{{ID: 7, Name: "🤖 Android"}, {ID: 8, Name: "iOS"}}, got)

	rec = f.do(t, http.MethodGet, "/api/subcategories/x", nil, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestCustomers(t *testing.T) {
	// 1. Setup
	f := newFixture(t)
	phone := "+998901234567"
	user := &domain.User{ID: uuid.New(), Name: "Aziz", TelegramID: 5005, Phone: &phone, Language: domain.LangUZ, CreatedAt: testNow}
	f.users.On("List", mock.Anything, ports.ListParams{Search: "Az", Limit: pageSize}).Return([]*domain.User{user}, 1, nil)
	f.users.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	f.orders.On("ListByUser", mock.Anything, user.ID, customerOrdersLimit).Return([]*domain.Order{{ID: 12, Total: 2750, Status: domain.OrderDelivered}}, nil)
	f.orders.On("UserStats", mock.Anything, user.ID).Return(domain.UserStats{OrderCount: 1, TotalSpent: 2750}, nil)
	f.loyalty.On("Get", mock.Anything, user.ID).Return(&domain.LoyaltyAccount{UserID: user.ID, Points: 40, LifetimePoints: 40}, nil)

	// 2. Listing
	rec := f.do(t, http.MethodGet, "/customers?q=Az", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/customers/"+user.ID.String())
	assert.Contains(t, html.UnescapeString(rec.Body.String()), phone)

	// 3. Profile
	rec = f.do(t, http.MethodGet, "/customers/"+user.ID.String(), nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "$27.50")
	assert.Contains(t, body, domain.TierFor(40).Name)
	assert.Contains(t, body, `href="/orders/12"`)

	// 4. Bad id
	rec = f.do(t, http.MethodGet, "/customers/not-a-uuid", nil, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCustomerBan(t *testing.T) {
	tests := []struct {
		name       string
		banned     bool
		form       url.Values
		wantCode   int
		wantUpdate bool
	}{
		{"ban", false, url.Values{"banned": {"true"}}, http.StatusSeeOther, true},
		{"unban", true, url.Values{"banned": {"false"}}, http.StatusSeeOther, true},
		{"already banned", true, url.Values{"banned": {"true"}}, http.StatusSeeOther, false},
		{"bad value", false, url.Values{"banned": {"maybe"}}, http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 1. Setup
			f := newFixture(t)
			user := &domain.User{ID: uuid.New(), Name: "Aziz", IsBanned: tt.banned}
			f.users.On("GetByID", mock.Anything, user.ID).Return(user, nil).Maybe()
			f.users.On("Update", mock.Anything, mock.Anything).Return(nil).Maybe()

			// 2. Submit
			rec := f.do(t, http.MethodPost, "/customers/"+user.ID.String()+"/ban", tt.form, false)

			// 3. Verify
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantUpdate {
				f.users.AssertCalled(t, "Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
					return u.ID == user.ID && u.IsBanned == !tt.banned
				}))
				assert.Equal(t, "/customers/"+user.ID.String(), rec.Header().Get("Location"))
			} else {
				f.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			}
		})
	}

	t.Run("unknown customer", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.users.On("GetByID", mock.Anything, id).Return(nil, nil)

		rec := f.do(t, http.MethodPost, "/customers/"+id.String()+"/ban", url.Values{"banned": {"true"}}, false)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSellers(t *testing.T) {
	f := newFixture(t)
	f.sellers.On("List", mock.Anything, ports.ListParams{Limit: pageSize}).Return([]*domain.SellerApplication{
		{ID: 1, ContactName: "Dilnoza", Brand: "SilkRoad", Phone: "+998901112233", Status: domain.SellerPending, CreatedAt: testNow},
	}, 1, nil)

	rec := f.do(t, http.MethodGet, "/sellers", nil, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "SilkRoad")
	assert.Contains(t, rec.Body.String(), string(domain.SellerPending))
}
