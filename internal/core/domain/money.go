package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Money is an amount in minor units (cents).
type Money int64

var ErrInvalidMoney = errors.New("invalid money amount")

// String formats the amount as "$12.50".
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}

// Decimal formats the amount without the currency sign, e.g. "12.50".
func (m Money) Decimal() string {
	return strings.TrimPrefix(m.String(), "$")
}

// Mul returns m multiplied by a quantity.
func (m Money) Mul(qty int) Money {
	return m * Money(qty)
}

// ParseMoney parses "12", "12.5" or "12.50" into minor units.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return 0, ErrInvalidMoney
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}
	var cents int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
		}
		if len(frac) == 1 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || cents < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
		}
	}
	return Money(units*100 + cents), nil
}
