// Package i18n holds every user-facing string of the bot, keyed by a typed
// message id and a language.
package i18n

import (
	"ShopBot/internal/core/domain"
	"errors"
	"fmt"
)

// MessageID names one translatable text.
type MessageID int

const (
	MsgGenericError MessageID = iota
	MsgOperationFailed
	MsgInvalidFormat
	MsgActionUnsupported
	MsgUnknownCommand
	MsgRegisterPrompt
	MsgNotRegisteredCallback
	MsgBanned

	MsgWelcomeNew
	MsgWelcomeBack
	MsgAskName
	MsgNameTooShort
	MsgAskPhone
	MsgInvalidPhone
	MsgAskEmail
	MsgInvalidEmail
	MsgAskLanguage
	MsgPickLanguage
	MsgRegistrationCancelled
	MsgRegistrationFailed
	MsgRegistrationComplete
	MsgLanguageChanged

	MsgHelp
	MsgContact

	MsgCatalogTitle
	MsgCatalogUnavailable
	MsgChooseSubcategory
	MsgChooseProduct
	MsgCategoryEmpty
	MsgSubcategoryEmpty
	MsgCategoryNotFound
	MsgSubcategoryNotFound
	MsgProductNotFound
	MsgProductPrice
	MsgProductStock
	MsgProductRating

	MsgCartEmpty
	MsgCartTitle
	MsgCartLine
	MsgCartTotal
	MsgAddedToCart
	MsgProductUnavailable
	MsgMinQuantity
	MsgCartItemRemoved
	MsgCartItemNotFound
	MsgClearCartConfirm
	MsgClearCartPrompt
	MsgCartCleared
	MsgQuantityUnit

	MsgCheckoutSummary
	MsgAddressTooShort
	MsgEnterAddress
	MsgChoosePayment
	MsgPickPayment
	MsgOrderCreated
	MsgOrderDiscount
	MsgOrderCardFollowup
	MsgOrderCashFollowup
	MsgOrderFailed
	MsgPaymentCancelled
	MsgCashPayment
	MsgCardPayment
	MsgPaymentFailed

	MsgNoOrders
	MsgOrdersTitle
	MsgOrderSummaryLine
	MsgOrdersHint
	MsgInvalidOrderNumber
	MsgOrderNotFound
	MsgOrderDetails
	MsgOrderItemsHeader
	MsgOrderItemLine
	MsgOrderCancelled
	MsgOrderNotCancellable
	MsgContactAboutOrder

	MsgProfile
	MsgProfilePhone
	MsgProfileEmail
	MsgProfileStats
	MsgProfileLastOrder
	MsgProfileLoyalty
	MsgLoyalty
	MsgLoyaltyTierLine
	MsgLoyaltyFooter

	MsgPromosTitle
	MsgPromoLine
	MsgPromoMinimum
	MsgPromoExpires
	MsgPromosFooter
	MsgNoPromos
	MsgPromoApplied
	MsgPromoNeedsCart
	MsgPromoInvalid
	MsgPromoExpired
	MsgPromoExhausted
	MsgPromoMinimumNotMet

	MsgSearchPrompt
	MsgSearchResults
	MsgSearchLine
	MsgSearchMore
	MsgSearchHint
	MsgSearchNothing
	MsgQuickSearch
	MsgQuickSearchHint

	MsgNoNotifications

	MsgSellerStart
	MsgSellerAskPhone
	MsgSellerAskBrand
	MsgSellerBrandTooShort
	MsgSellerAskProducts
	MsgSellerProductsTooShort
	MsgSellerSubmitted
	MsgSellerCancelled

	MsgFavoriteAdded
	MsgFavoriteExists
	MsgReviewsTitle
	MsgReviewsEmpty
	MsgReviewsMore
	MsgRatePrompt
	MsgRateOnlyPurchased
	MsgRateThanks
	MsgRatingCancelled

	MsgInvalidTrackNumber
	MsgTrackingUnavailable
	MsgTrackingNotFound
	MsgTracking
	MsgRestore
	MsgInvalidRestoreID

	MsgOrderStatusChanged
	MsgAdminNewOrder
	MsgAdminNewCategory
	MsgWelcomeNotificationTitle
	MsgWelcomeNotificationBody
	MsgOrderNotificationTitle
	MsgOrderNotificationBody
	MsgStatusNotificationTitle

	MsgStatusPending
	MsgStatusConfirmed
	MsgStatusShipped
	MsgStatusDelivered
	MsgStatusCancelled

	messageCount
)

type texts struct {
	ru string
	uz string
}

// T returns the text for id in lang, formatted with args when given.
// Unknown languages fall back to Russian.
func T(lang domain.Language, id MessageID, args ...any) string {
	entry, ok := table[id]
	if !ok {
		return fmt.Sprintf("!msg(%d)", id)
	}
	text := entry.ru
	if lang == domain.LangUZ && entry.uz != "" {
		text = entry.uz
	}
	if len(args) == 0 {
		return text
	}
	return fmt.Sprintf(text, args...)
}

// StatusText is the human name of an order status.
func StatusText(lang domain.Language, status domain.OrderStatus) string {
	switch status {
	case domain.OrderPending:
		return T(lang, MsgStatusPending)
	case domain.OrderConfirmed:
		return T(lang, MsgStatusConfirmed)
	case domain.OrderShipped:
		return T(lang, MsgStatusShipped)
	case domain.OrderDelivered:
		return T(lang, MsgStatusDelivered)
	case domain.OrderCancelled:
		return T(lang, MsgStatusCancelled)
	}
	return string(status)
}

// PromoError maps a promo validation error to its message, or false when
// err is not a promo error.
func PromoError(err error) (MessageID, bool) {
	switch {
	case errors.Is(err, domain.ErrPromoInvalid):
		return MsgPromoInvalid, true
	case errors.Is(err, domain.ErrPromoExpired):
		return MsgPromoExpired, true
	case errors.Is(err, domain.ErrPromoExhausted):
		return MsgPromoExhausted, true
	case errors.Is(err, domain.ErrPromoMinimum):
		return MsgPromoMinimumNotMet, true
	}
	return 0, false
}
