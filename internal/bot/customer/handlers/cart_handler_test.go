package handlers

import (
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddToCart_UsesRequestedQuantity(t *testing.T) {
	f := newFixture(t)
	user := f.asUser(domain.LangRU)
	f.products.On("Get", mock.Anything, int64(42)).Return(&domain.Product{ID: 42, Name: "Phone", Price: 1000, IsActive: true}, nil)
	f.cart.On("Add", mock.Anything, user.ID, int64(42), 3).Return(nil).Once()

	f.press(t, "add_to_cart_42_3")

	f.cart.AssertExpectations(t)
	assert.Equal(t, "✅", f.lastAnswer(t).Text)
	assert.Equal(t, i18n.T(domain.LangRU, i18n.MsgAddedToCart, "Phone", 3), f.lastText(t))
}

func TestAddToCart_Unavailable(t *testing.T) {
	testCases := []struct {
		name    string
		product *domain.Product
		addErr  error
	}{
		{"inactive product", &domain.Product{ID: 42, IsActive: false}, nil},
		{"stock too low", &domain.Product{ID: 42, IsActive: true, Stock: intPtr(2)}, nil},
		{"repository rejects", &domain.Product{ID: 42, IsActive: true}, domain.ErrProductUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.asUser(domain.LangRU)
			f.products.On("Get", mock.Anything, int64(42)).Return(tc.product, nil)
			f.cart.On("Add", mock.Anything, mock.Anything, int64(42), 3).Return(tc.addErr).Maybe()

			f.press(t, "add_to_cart_42_3")

			assert.Equal(t, i18n.T(domain.LangRU, i18n.MsgProductUnavailable), f.lastText(t))
			assert.Equal(t, i18n.T(domain.LangRU, i18n.MsgProductUnavailable), f.lastAnswer(t).Text)
		})
	}
}

func TestCartItem_DecreaseAtOneIsNoop(t *testing.T) {
	f := newFixture(t)
	user := f.asUser(domain.LangRU)
	f.cart.On("GetItem", mock.Anything, user.ID, int64(7)).
		Return(&domain.CartItem{ID: 7, UserID: user.ID, ProductID: 42, Quantity: 1, UnitPrice: 500}, nil)

	f.press(t, "cart_decrease_7")

	f.cart.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.bot.AssertNotCalled(t, "EditMessageText", mock.Anything, mock.Anything)
	answer := f.lastAnswer(t)
	assert.True(t, answer.ShowAlert)
	assert.Equal(t, i18n.T(domain.LangRU, i18n.MsgMinQuantity), answer.Text)
}

func TestCartItem_IncreaseEditsLine(t *testing.T) {
	f := newFixture(t)
	user := f.asUser(domain.LangRU)
	f.cart.On("ListItems", mock.Anything, user.ID).Return([]domain.CartItem{{ID: 7, UnitPrice: 500, Quantity: 3}}, nil)
	f.cart.On("GetItem", mock.Anything, user.ID, int64(7)).
		Return(&domain.CartItem{ID: 7, ProductID: 42, ProductName: "Phone", Quantity: 2, UnitPrice: 500}, nil)
	f.products.On("Get", mock.Anything, int64(42)).Return(&domain.Product{ID: 42, IsActive: true, Stock: intPtr(3)}, nil)
	f.cart.On("UpdateQuantity", mock.Anything, user.ID, int64(7), 3).Return(nil).Once()

	f.press(t, "cart_increase_7")

	f.cart.AssertExpectations(t)
	f.bot.AssertCalled(t, "EditMessageText", mock.Anything, mock.MatchedBy(func(p ports.EditMessageParams) bool {
		return p.MessageID == 77 && p.ReplyMarkup != nil && p.ReplyMarkup.IsInline
	}))
}

func TestCart_TotalFollowsLineChanges(t *testing.T) {
	before := []domain.CartItem{{ID: 7, ProductID: 42, ProductName: "Phone", UnitPrice: 500, Quantity: 2}}

	testCases := []struct {
		name      string
		data      string
		setup     func(f *fixture, user *domain.User)
		after     []domain.CartItem
		wantTotal string
	}{
		{
			name: "increase",
			data: "cart_increase_7",
			setup: func(f *fixture, user *domain.User) {
				f.products.On("Get", mock.Anything, int64(42)).Return(&domain.Product{ID: 42, IsActive: true}, nil)
				f.cart.On("UpdateQuantity", mock.Anything, user.ID, int64(7), 3).Return(nil).Once()
			},
			after:     []domain.CartItem{{ID: 7, UnitPrice: 500, Quantity: 3}},
			wantTotal: i18n.T(domain.LangRU, i18n.MsgCartTotal, "$15.00"),
		},
		{
			name: "decrease",
			data: "cart_decrease_7",
			setup: func(f *fixture, user *domain.User) {
				f.cart.On("UpdateQuantity", mock.Anything, user.ID, int64(7), 1).Return(nil).Once()
			},
			after:     []domain.CartItem{{ID: 7, UnitPrice: 500, Quantity: 1}},
			wantTotal: i18n.T(domain.LangRU, i18n.MsgCartTotal, "$5.00"),
		},
		{
			name: "remove last line",
			data: "cart_remove_7",
			setup: func(f *fixture, user *domain.User) {
				f.cart.On("Remove", mock.Anything, user.ID, int64(7)).Return(nil).Once()
			},
			after:     []domain.CartItem{},
			wantTotal: i18n.T(domain.LangRU, i18n.MsgCartEmpty),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			user := f.asUser(domain.LangRU)
			f.cart.On("ListItems", mock.Anything, user.ID).Return(before, nil).Once()
			f.cart.On("ListItems", mock.Anything, user.ID).Return(tc.after, nil).Once()
			line := before[0]
			f.cart.On("GetItem", mock.Anything, user.ID, int64(7)).Return(&line, nil)
			tc.setup(f, user)

			// 1. Show the cart; the total message id is remembered
			f.text(t, i18n.Label(domain.LangRU, i18n.BtnCart))
			require.Equal(t, i18n.T(domain.LangRU, i18n.MsgCartTotal, "$10.00"), f.lastText(t))
			totalID := f.sessions.CartTotalMessage(testTelegramID)
			require.NotZero(t, totalID)
			sent := len(f.sent)

			// 2. Change the line
			f.press(t, tc.data)

			// 3. The total message is edited in place
			f.cart.AssertExpectations(t)
			assert.Len(t, f.sent, sent, "no new message is sent")
			f.bot.AssertCalled(t, "EditMessageText", mock.Anything, mock.MatchedBy(func(p ports.EditMessageParams) bool {
				return p.MessageID == totalID && p.Text == tc.wantTotal
			}))
		})
	}
}

func TestCart_TotalSentWhenNoneShown(t *testing.T) {
	f := newFixture(t)
	user := f.asUser(domain.LangRU)
	f.cart.On("GetItem", mock.Anything, user.ID, int64(7)).
		Return(&domain.CartItem{ID: 7, ProductID: 42, Quantity: 2, UnitPrice: 500}, nil)
	f.cart.On("UpdateQuantity", mock.Anything, user.ID, int64(7), 1).Return(nil).Once()
	f.cart.On("ListItems", mock.Anything, user.ID).Return([]domain.CartItem{{ID: 7, UnitPrice: 500, Quantity: 1}}, nil)

	f.press(t, "cart_decrease_7")

	assert.Equal(t, i18n.T(domain.LangRU, i18n.MsgCartTotal, "$5.00"), f.lastText(t))
	assert.Equal(t, 1, f.sessions.CartTotalMessage(testTelegramID))
}

func TestCartItem_IncreaseBeyondStock(t *testing.T) {
	f := newFixture(t)
	user := f.asUser(domain.LangRU)
	f.cart.On("GetItem", mock.Anything, user.ID, int64(7)).
		Return(&domain.CartItem{ID: 7, ProductID: 42, Quantity: 3}, nil)
	f.products.On("Get", mock.Anything, int64(42)).Return(&domain.Product{ID: 42, IsActive: true, Stock: intPtr(3)}, nil)

	f.press(t, "cart_increase_7")

	f.cart.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.True(t, f.lastAnswer(t).ShowAlert)
}

func TestCartItem_ForeignItemNotFound(t *testing.T) {
	f := newFixture(t)
	user := f.asUser(domain.LangRU)
	f.cart.On("GetItem", mock.Anything, user.ID, int64(9)).Return(nil, nil)

	f.press(t, "cart_remove_9")

	f.cart.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, i18n.T(domain.LangRU, i18n.MsgCartItemNotFound), f.lastAnswer(t).Text)
}

func TestShowCart_OneMessagePerLine(t *testing.T) {
	f := newFixture(t)
	user := f.asUser(domain.LangRU)
	f.cart.On("ListItems", mock.Anything, user.ID).Return([]domain.CartItem{
		{ID: 1, ProductName: "Phone", UnitPrice: 1000, Quantity: 2},
		{ID: 2, ProductName: "Case", UnitPrice: 250, Quantity: 1},
	}, nil)

	f.text(t, i18n.Label(domain.LangRU, i18n.BtnCart))

	require.Len(t, f.sent, 4)
	assert.Equal(t, i18n.T(domain.LangRU, i18n.MsgCartTotal, "$22.50"), f.sent[3].Text)
	assert.True(t, f.sent[1].ReplyMarkup.IsInline)
}

func TestClearCart_Confirm(t *testing.T) {
	f := newFixture(t)
	user := f.asUser(domain.LangRU)

	// 1. The menu button asks for confirmation
	f.text(t, i18n.Label(domain.LangRU, i18n.BtnClearCart))
	require.Equal(t, domain.ConfirmClearCart{UserID: user.ID}, f.sessions.State(testTelegramID))

	// 2. A stray answer re-asks
	f.text(t, "maybe")
	assert.Equal(t, i18n.T(domain.LangRU, i18n.MsgClearCartPrompt), f.lastText(t))
	f.cart.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)

	// 3. Yes clears the targeted cart
	f.cart.On("Clear", mock.Anything, user.ID).Return(nil).Once()
	f.text(t, i18n.Label(domain.LangRU, i18n.BtnYes))

	f.cart.AssertExpectations(t)
	assert.Nil(t, f.sessions.State(testTelegramID))
	assert.Equal(t, i18n.T(domain.LangRU, i18n.MsgCartCleared), f.lastText(t))
}

func TestClearCart_FailureKeepsState(t *testing.T) {
	f := newFixture(t)
	user := f.asUser(domain.LangRU)
	f.sessions.SetState(testTelegramID, domain.ConfirmClearCart{UserID: user.ID})
	f.cart.On("Clear", mock.Anything, user.ID).Return(errors.New("db down")).Once()

	f.text(t, i18n.Label(domain.LangRU, i18n.BtnYes))

	assert.Equal(t, domain.ConfirmClearCart{UserID: user.ID}, f.sessions.State(testTelegramID))
	assert.Equal(t, i18n.T(domain.LangRU, i18n.MsgOperationFailed), f.lastText(t))
}

func intPtr(n int) *int { return &n }
