// Package callback defines the inline-button payload grammar: every payload
// string parses into exactly one Action from a closed set.
package callback

// Kind discriminates Action values.
type Kind int

const (
	KindUnknown Kind = iota
	KindMalformed
	KindBackToCategories
	KindBackToCategory
	KindBackToSubcategory
	KindGoToCart
	KindBackToMain
	KindCancelPayment
	KindNoop
	KindQuantity
	KindAddToCart
	KindAddToFavorites
	KindShowReviews
	KindRateProduct
	KindRate
	KindCancelRating
	KindCartItem
	KindPay
	KindOrderDetails
	KindContactAbout
	KindCancelOrder
	KindCategory
	KindSubcategory
)

var kindNames = map[Kind]string{
	KindUnknown:           "unknown",
	KindMalformed:         "malformed",
	KindBackToCategories:  "back_to_categories",
	KindBackToCategory:    "back_to_category",
	KindBackToSubcategory: "back_to_subcategory",
	KindGoToCart:          "go_to_cart",
	KindBackToMain:        "back_to_main",
	KindCancelPayment:     "cancel_payment",
	KindNoop:              "noop",
	KindQuantity:          "qty",
	KindAddToCart:         "add_to_cart",
	KindAddToFavorites:    "add_to_favorites",
	KindShowReviews:       "reviews",
	KindRateProduct:       "rate_product",
	KindRate:              "rate",
	KindCancelRating:      "cancel_rating",
	KindCartItem:          "cart",
	KindPay:               "pay",
	KindOrderDetails:      "order_details",
	KindContactAbout:      "contact_about",
	KindCancelOrder:       "cancel_order",
	KindCategory:          "cat",
	KindSubcategory:       "subcat",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Action is a parsed callback payload.
type Action interface {
	Kind() Kind
	// Encode returns the wire payload for the action.
	Encode() string
	sealed()
}

// Unknown is a payload whose verb is not part of the grammar.
type Unknown struct{ Raw string }

// Malformed is a known verb whose arguments failed to parse.
type Malformed struct {
	Verb string
	Raw  string
}

type BackToCategories struct{}

type BackToCategory struct{ CategoryID int64 }

type BackToSubcategory struct{ SubcategoryID int64 }

type GoToCart struct{}

type BackToMain struct{}

type CancelPayment struct{}

// Noop is attached to label-only buttons such as the quantity display.
type Noop struct{}

// QtyDirection is the direction of a quantity selector step.
type QtyDirection int

const (
	QtyInc QtyDirection = iota + 1
	QtyDec
)

// Quantity steps the quantity selector shown on a product card.
type Quantity struct {
	ProductID int64
	Current   int
	Direction QtyDirection
}

// Next returns the clamped quantity after applying the step.
func (q Quantity) Next() int {
	n := q.Current
	if q.Direction == QtyInc {
		n++
	} else {
		n--
	}
	return ClampQuantity(n)
}

type AddToCart struct {
	ProductID int64
	Quantity  int
}

type AddToFavorites struct{ ProductID int64 }

type ShowReviews struct{ ProductID int64 }

// RateProduct opens the rating keyboard for a product.
type RateProduct struct{ ProductID int64 }

// Rate records a 1..5 star rating.
type Rate struct {
	ProductID int64
	Stars     int
}

type CancelRating struct{}

// CartOp is an operation on a single cart line.
type CartOp string

const (
	CartIncrease CartOp = "increase"
	CartDecrease CartOp = "decrease"
	CartRemove   CartOp = "remove"
	CartShow     CartOp = "quantity"
)

type CartItem struct {
	Op         CartOp
	CartItemID int64
}

// Pay starts payment of an order with a provider. Amount is in minor units and optional.
type Pay struct {
	Provider string
	OrderID  int64
	Amount   *int64
}

type OrderDetails struct{ OrderID int64 }

type ContactAbout struct{ OrderID int64 }

type CancelOrder struct{ OrderID int64 }

// Category opens a category from an inline catalog.
type Category struct{ CategoryID int64 }

// Subcategory opens a subcategory from an inline catalog.
type Subcategory struct{ SubcategoryID int64 }

const (
	MinQuantity = 1
	MaxQuantity = 20
)

// ClampQuantity bounds a selector quantity to [MinQuantity, MaxQuantity].
func ClampQuantity(n int) int {
	if n < MinQuantity {
		return MinQuantity
	}
	if n > MaxQuantity {
		return MaxQuantity
	}
	return n
}

func (Unknown) Kind() Kind           { return KindUnknown }
func (Malformed) Kind() Kind         { return KindMalformed }
func (BackToCategories) Kind() Kind  { return KindBackToCategories }
func (BackToCategory) Kind() Kind    { return KindBackToCategory }
func (BackToSubcategory) Kind() Kind { return KindBackToSubcategory }
func (GoToCart) Kind() Kind          { return KindGoToCart }
func (BackToMain) Kind() Kind        { return KindBackToMain }
func (CancelPayment) Kind() Kind     { return KindCancelPayment }
func (Noop) Kind() Kind              { return KindNoop }
func (Quantity) Kind() Kind          { return KindQuantity }
func (AddToCart) Kind() Kind         { return KindAddToCart }
func (AddToFavorites) Kind() Kind    { return KindAddToFavorites }
func (ShowReviews) Kind() Kind       { return KindShowReviews }
func (RateProduct) Kind() Kind       { return KindRateProduct }
func (Rate) Kind() Kind              { return KindRate }
func (CancelRating) Kind() Kind      { return KindCancelRating }
func (CartItem) Kind() Kind          { return KindCartItem }
func (Pay) Kind() Kind               { return KindPay }
func (OrderDetails) Kind() Kind      { return KindOrderDetails }
func (ContactAbout) Kind() Kind      { return KindContactAbout }
func (CancelOrder) Kind() Kind       { return KindCancelOrder }
func (Category) Kind() Kind          { return KindCategory }
func (Subcategory) Kind() Kind       { return KindSubcategory }

func (Unknown) sealed()           {}
func (Malformed) sealed()         {}
func (BackToCategories) sealed()  {}
func (BackToCategory) sealed()    {}
func (BackToSubcategory) sealed() {}
func (GoToCart) sealed()          {}
func (BackToMain) sealed()        {}
func (CancelPayment) sealed()     {}
func (Noop) sealed()              {}
func (Quantity) sealed()          {}
func (AddToCart) sealed()         {}
func (AddToFavorites) sealed()    {}
func (ShowReviews) sealed()       {}
func (RateProduct) sealed()       {}
func (Rate) sealed()              {}
func (CancelRating) sealed()      {}
func (CartItem) sealed()          {}
func (Pay) sealed()               {}
func (OrderDetails) sealed()      {}
func (ContactAbout) sealed()      {}
func (CancelOrder) sealed()       {}
func (Category) sealed()          {}
func (Subcategory) sealed()       {}
