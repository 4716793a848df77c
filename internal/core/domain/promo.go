package domain

import (
	"strings"
	"time"
)

// PromoKind selects how a promo's Value is interpreted.
type PromoKind string

const (
	PromoPercentage PromoKind = "percentage"
	PromoFixed      PromoKind = "fixed"
)

// Promo is a discount code.
type Promo struct {
	ID          int64
	Code        string
	Kind        PromoKind
	Value       int64 // percent for PromoPercentage, minor units for PromoFixed
	MinOrder    Money
	MaxUses     *int
	UsedCount   int
	ExpiresAt   *time.Time
	Description string
	IsActive    bool
}

// NormalizePromoCode upper-cases and trims a user-supplied code.
func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Discount validates the promo against a cart total and returns the discount amount.
// The discount never exceeds the total.
func (p *Promo) Discount(total Money, now time.Time) (Money, error) {
	if p == nil || !p.IsActive {
		return 0, ErrPromoInvalid
	}
	if p.ExpiresAt != nil && now.After(*p.ExpiresAt) {
		return 0, ErrPromoExpired
	}
	if p.MaxUses != nil && p.UsedCount >= *p.MaxUses {
		return 0, ErrPromoExhausted
	}
	if total < p.MinOrder {
		return 0, ErrPromoMinimum
	}

	var discount Money
	switch p.Kind {
	case PromoPercentage:
		discount = Money(int64(total) * p.Value / 100)
	case PromoFixed:
		discount = Money(p.Value)
	default:
		return 0, ErrPromoInvalid
	}
	if discount > total {
		discount = total
	}
	return discount, nil
}
