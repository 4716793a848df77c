package handlers

import (
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddToFavorites(t *testing.T) {
	testCases := []struct {
		name  string
		added bool
		want  i18n.MessageID
	}{
		{"new favorite", true, i18n.MsgFavoriteAdded},
		{"already saved", false, i18n.MsgFavoriteExists},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			user := f.asUser(domain.LangRU)
			f.products.On("Get", mock.Anything, int64(42)).Return(&domain.Product{ID: 42, Name: "Phone", IsActive: true}, nil)
			f.products.On("AddFavorite", mock.Anything, user.ID, int64(42)).Return(tc.added, nil).Once()

			f.press(t, "add_to_favorites_42")

			f.products.AssertExpectations(t)
			assert.Equal(t, i18n.T(domain.LangRU, tc.want, "Phone"), f.lastAnswer(t).Text)
			assert.Empty(t, f.sent)
		})
	}

	t.Run("unknown product", func(t *testing.T) {
		f := newFixture(t)
		f.asUser(domain.LangRU)
		f.products.On("Get", mock.Anything, int64(42)).Return(nil, nil)

		f.press(t, "add_to_favorites_42")

		f.products.AssertNotCalled(t, "AddFavorite", mock.Anything, mock.Anything, mock.Anything)
		answer := f.lastAnswer(t)
		assert.True(t, answer.ShowAlert)
		assert.Equal(t, i18n.T(domain.LangRU, i18n.MsgProductNotFound), answer.Text)
	})
}

func TestShowReviews(t *testing.T) {
	t.Run("no reviews", func(t *testing.T) {
		f := newFixture(t)
		f.asUser(domain.LangRU)
		f.products.On("Get", mock.Anything, int64(42)).Return(&domain.Product{ID: 42, Name: "Phone"}, nil)
		f.products.On("ListReviews", mock.Anything, int64(42), reviewsShown).Return([]*domain.Review{}, 0, nil)

		f.press(t, "reviews_42")

		assert.Equal(t, i18n.T(domain.LangRU, i18n.MsgReviewsEmpty), f.lastText(t))
	})

	t.Run("recent reviews and the rest counted", func(t *testing.T) {
		f := newFixture(t)
		f.asUser(domain.LangRU)
		f.products.On("Get", mock.Anything, int64(42)).Return(&domain.Product{ID: 42, Name: "Phone"}, nil)
		f.products.On("ListReviews", mock.Anything, int64(42), reviewsShown).Return([]*domain.Review{
			{UserName: "Aziz", Rating: 5, Comment: "Great <b>phone</b>", CreatedAt: testNow},
			{UserName: "Malika", Rating: 3, CreatedAt: testNow.AddDate(0, 0, -2)},
		}, 7, nil)

		f.press(t, "reviews_42")

		text := f.lastText(t)
		assert.True(t, strings.HasPrefix(text, i18n.T(domain.LangRU, i18n.MsgReviewsTitle, "Phone")))
		assert.Contains(t, text, "⭐⭐⭐⭐⭐ <b>Aziz</b> · 14.03.2026")
		assert.Contains(t, text, "Great &lt;b&gt;phone&lt;/b&gt;")
		assert.Contains(t, text, "⭐⭐⭐ <b>Malika</b> · 12.03.2026")
		assert.True(t, strings.HasSuffix(text, i18n.T(domain.LangRU, i18n.MsgReviewsMore, 5)))
	})
}

func TestRating(t *testing.T) {
	t.Run("prompt shows the stars keyboard", func(t *testing.T) {
		f := newFixture(t)
		f.asUser(domain.LangRU)
		f.products.On("Get", mock.Anything, int64(42)).Return(&domain.Product{ID: 42, Name: "Phone"}, nil)

		f.press(t, "rate_product_42")

		require.NotEmpty(t, f.sent)
		last := f.sent[len(f.sent)-1]
		assert.Equal(t, i18n.T(domain.LangRU, i18n.MsgRatePrompt, "Phone"), last.Text)
		require.NotNil(t, last.ReplyMarkup)
		assert.True(t, last.ReplyMarkup.IsInline)
	})

	t.Run("buyer rating is stored", func(t *testing.T) {
		f := newFixture(t)
		user := f.asUser(domain.LangRU)
		f.orders.On("HasPurchased", mock.Anything, user.ID, int64(42)).Return(true, nil)
		f.products.On("AddReview", mock.Anything, mock.MatchedBy(func(r *domain.Review) bool {
			return r.UserID == user.ID && r.ProductID == 42 && r.Rating == 4 && r.CreatedAt.Equal(testNow)
		})).Return(nil).Once()

		f.press(t, "rate_42_4")

		f.products.AssertExpectations(t)
		thanks := i18n.T(domain.LangRU, i18n.MsgRateThanks, "⭐⭐⭐⭐")
		assert.Equal(t, thanks, f.lastAnswer(t).Text)
		f.bot.AssertCalled(t, "EditMessageText", mock.Anything, ports.EditMessageParams{
			ChatID: testTelegramID, MessageID: 77, Text: thanks,
		})
	})

	t.Run("only buyers may rate", func(t *testing.T) {
		f := newFixture(t)
		user := f.asUser(domain.LangRU)
		f.orders.On("HasPurchased", mock.Anything, user.ID, int64(42)).Return(false, nil)

		f.press(t, "rate_42_5")

		f.products.AssertNotCalled(t, "AddReview", mock.Anything, mock.Anything)
		answer := f.lastAnswer(t)
		assert.True(t, answer.ShowAlert)
		assert.Equal(t, i18n.T(domain.LangRU, i18n.MsgRateOnlyPurchased), answer.Text)
	})

	t.Run("cancel closes the prompt", func(t *testing.T) {
		f := newFixture(t)
		f.asUser(domain.LangUZ)

		f.press(t, "cancel_rating")

		cancelled := i18n.T(domain.LangUZ, i18n.MsgRatingCancelled)
		assert.Equal(t, cancelled, f.lastAnswer(t).Text)
		f.bot.AssertCalled(t, "EditMessageText", mock.Anything, ports.EditMessageParams{
			ChatID: testTelegramID, MessageID: 77, Text: cancelled,
		})
	})
}
