package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrProductUnavailable = errors.New("product unavailable or out of stock")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrOrderNotCancelable = errors.New("order can no longer be cancelled")

	ErrPromoInvalid   = errors.New("promo code is invalid")
	ErrPromoExpired   = errors.New("promo code has expired")
	ErrPromoExhausted = errors.New("promo code usage limit reached")
	ErrPromoMinimum   = errors.New("order total is below the promo minimum")
)
