package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is a top-level catalog section.
type Category struct {
	ID          int64
	Name        string
	Description string
	Emoji       string
	IsActive    bool
	CreatedAt   time.Time
}

// Label is the button text shown in the catalog keyboard.
func (c *Category) Label() string {
	if c.Emoji == "" {
		return c.Name
	}
	return c.Emoji + " " + c.Name
}

// Subcategory is an optional second catalog layer (usually a brand).
type Subcategory struct {
	ID         int64
	CategoryID int64
	Name       string
	Emoji      string
	IsActive   bool
	CreatedAt  time.Time
}

// Label is the button text shown in the subcategory keyboard.
func (s *Subcategory) Label() string {
	if s.Emoji == "" {
		return s.Name
	}
	return s.Emoji + " " + s.Name
}

// Product is a sellable catalog item.
type Product struct {
	ID            int64
	Name          string
	Description   string
	Price         Money
	CostPrice     Money
	Stock         *int // nil means unlimited
	IsActive      bool
	CategoryID    int64
	SubcategoryID *int64
	ImageURL      string
	Views         int
	Sales         int
	CreatedAt     time.Time
}

// Available reports whether qty units can be put in a cart.
func (p *Product) Available(qty int) bool {
	if p == nil || !p.IsActive || qty < 1 {
		return false
	}
	return p.Stock == nil || *p.Stock >= qty
}

// RatingSummary is the arithmetic mean of a product's reviews.
type RatingSummary struct {
	Average float64
	Count   int
}

// HasReviews reports whether an average is meaningful.
func (r RatingSummary) HasReviews() bool {
	return r.Count > 0
}

// Review is a customer's rating of a purchased product.
type Review struct {
	ID        int64
	UserID    uuid.UUID
	UserName  string
	ProductID int64
	Rating    int
	Comment   string
	CreatedAt time.Time
}
