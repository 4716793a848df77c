package domain

import (
	"time"

	"github.com/google/uuid"
)

// PointsRatePercent is the share of an order total credited as loyalty points.
const PointsRatePercent = 5

// Tier is a loyalty level derived from lifetime points.
type Tier struct {
	Name            string
	Emoji           string
	MinPoints       int64
	DiscountPercent int
}

// Tiers are ordered by ascending threshold.
var Tiers = []Tier{
	{Name: "Bronze", Emoji: "🥉", MinPoints: 0, DiscountPercent: 0},
	{Name: "Silver", Emoji: "🥈", MinPoints: 100, DiscountPercent: 5},
	{Name: "Gold", Emoji: "🥇", MinPoints: 500, DiscountPercent: 10},
	{Name: "Platinum", Emoji: "💎", MinPoints: 1500, DiscountPercent: 15},
	{Name: "Diamond", Emoji: "💍", MinPoints: 5000, DiscountPercent: 20},
}

// TierFor returns the highest tier whose threshold lifetime points reach.
func TierFor(lifetime int64) Tier {
	tier := Tiers[0]
	for _, t := range Tiers {
		if lifetime >= t.MinPoints {
			tier = t
		}
	}
	return tier
}

// PointsFor returns floor(total × 0.05) where total is in whole currency units.
func PointsFor(total Money) int64 {
	if total <= 0 {
		return 0
	}
	return int64(total) * PointsRatePercent / 100 / 100
}

// LoyaltyAccount is a user's points balance.
type LoyaltyAccount struct {
	UserID         uuid.UUID
	Points         int64
	LifetimePoints int64
	UpdatedAt      time.Time
}

// Tier is recomputed on every read.
func (a *LoyaltyAccount) Tier() Tier {
	if a == nil {
		return Tiers[0]
	}
	return TierFor(a.LifetimePoints)
}
