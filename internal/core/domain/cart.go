package domain

import "github.com/google/uuid"

// CartItem is one line of a user's cart, joined with the product it references.
type CartItem struct {
	ID          int64
	UserID      uuid.UUID
	ProductID   int64
	ProductName string
	UnitPrice   Money
	Quantity    int
}

// LineTotal is quantity × unit price.
func (c CartItem) LineTotal() Money {
	return c.UnitPrice.Mul(c.Quantity)
}

// CartTotal sums the line totals. It is always computed, never cached.
func CartTotal(items []CartItem) Money {
	var total Money
	for _, it := range items {
		total += it.LineTotal()
	}
	return total
}
