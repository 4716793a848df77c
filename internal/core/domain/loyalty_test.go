package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	testCases := []struct {
		lifetime int64
		want     string
		discount int
	}{
		{0, "Bronze", 0},
		{99, "Bronze", 0},
		{100, "Silver", 5},
		{499, "Silver", 5},
		{500, "Gold", 10},
		{1500, "Platinum", 15},
		{4999, "Platinum", 15},
		{5000, "Diamond", 20},
		{1_000_000, "Diamond", 20},
	}

	for _, tc := range testCases {
		tier := TierFor(tc.lifetime)
		assert.Equal(t, tc.want, tier.Name, "lifetime=%d", tc.lifetime)
		assert.Equal(t, tc.discount, tier.DiscountPercent, "lifetime=%d", tc.lifetime)
	}
}

func TestPointsFor_FloorsFivePercent(t *testing.T) {
	testCases := []struct {
		name  string
		total Money
		want  int64
	}{
		{"zero", 0, 0},
		{"below one point", 1999, 0},   // $19.99 -> 0.9995
		{"exactly one point", 2000, 1}, // $20.00 -> 1.0
		{"fractional", 12550, 6},       // $125.50 -> 6.275
		{"large", 1_000_000, 500},      // $10000 -> 500
		{"negative", -500, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PointsFor(tc.total))
		})
	}
}

func TestLoyaltyAccount_TierNilSafe(t *testing.T) {
	var acct *LoyaltyAccount
	assert.Equal(t, "Bronze", acct.Tier().Name)

	acct = &LoyaltyAccount{Points: 10, LifetimePoints: 600}
	assert.Equal(t, "Gold", acct.Tier().Name)
}
