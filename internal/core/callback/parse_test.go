package callback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	amount := int64(12550)

	testCases := []struct {
		name string
		data string
		want Action
	}{
		{"back to categories", "back_to_categories", BackToCategories{}},
		{"back to category", "back_to_category_7", BackToCategory{CategoryID: 7}},
		{"back to subcategory", "back_to_subcategory_9", BackToSubcategory{SubcategoryID: 9}},
		{"go to cart", "go_to_cart", GoToCart{}},
		{"back to main", "back_to_main", BackToMain{}},
		{"cancel payment", "cancel_payment", CancelPayment{}},
		{"noop", "noop", Noop{}},
		{"qty inc", "qty_inc_42_3", Quantity{ProductID: 42, Current: 3, Direction: QtyInc}},
		{"qty dec", "qty_dec_42_1", Quantity{ProductID: 42, Current: 1, Direction: QtyDec}},
		{"qty clamps current", "qty_inc_42_99", Quantity{ProductID: 42, Current: 20, Direction: QtyInc}},
		{"add to cart with qty", "add_to_cart_42_3", AddToCart{ProductID: 42, Quantity: 3}},
		{"add to cart default qty", "add_to_cart_42", AddToCart{ProductID: 42, Quantity: 1}},
		{"add to cart zero qty", "add_to_cart_42_0", AddToCart{ProductID: 42, Quantity: 1}},
		{"favorites", "add_to_favorites_5", AddToFavorites{ProductID: 5}},
		{"reviews", "reviews_5", ShowReviews{ProductID: 5}},
		{"rate product", "rate_product_5", RateProduct{ProductID: 5}},
		{"rate", "rate_5_4", Rate{ProductID: 5, Stars: 4}},
		{"cancel rating", "cancel_rating", CancelRating{}},
		{"cart increase", "cart_increase_11", CartItem{Op: CartIncrease, CartItemID: 11}},
		{"cart decrease", "cart_decrease_11", CartItem{Op: CartDecrease, CartItemID: 11}},
		{"cart remove", "cart_remove_11", CartItem{Op: CartRemove, CartItemID: 11}},
		{"cart quantity label", "cart_quantity_11", CartItem{Op: CartShow, CartItemID: 11}},
		{"pay cash", "pay_cash_100", Pay{Provider: "cash", OrderID: 100}},
		{"pay card with amount", "pay_card_100_12550", Pay{Provider: "card", OrderID: 100, Amount: &amount}},
		{"order details", "order_details_3", OrderDetails{OrderID: 3}},
		{"contact about", "contact_about_3", ContactAbout{OrderID: 3}},
		{"cancel order", "cancel_order_3", CancelOrder{OrderID: 3}},
		{"inline category", "cat_2", Category{CategoryID: 2}},
		{"inline subcategory", "subcat_8", Subcategory{SubcategoryID: 8}},

		{"unknown verb", "sort_price_low", Unknown{Raw: "sort_price_low"}},
		{"empty", "", Unknown{Raw: ""}},
		{"non-numeric product", "add_to_cart_abc", Malformed{Verb: "add_to_cart", Raw: "add_to_cart_abc"}},
		{"non-numeric qty", "add_to_cart_42_x", Malformed{Verb: "add_to_cart", Raw: "add_to_cart_42_x"}},
		{"qty missing current", "qty_inc_42", Malformed{Verb: "qty", Raw: "qty_inc_42"}},
		{"rating out of range", "rate_5_6", Malformed{Verb: "rate", Raw: "rate_5_6"}},
		{"unknown cart op", "cart_explode_1", Malformed{Verb: "cart", Raw: "cart_explode_1"}},
		{"pay without order", "pay_card", Malformed{Verb: "pay", Raw: "pay_card"}},
		{"negative id", "reviews_-1", Malformed{Verb: "reviews", Raw: "reviews_-1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.data)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want.Kind(), got.Kind())
		})
	}
}

func TestEncode_RoundTripsThroughParse(t *testing.T) {
	amount := int64(500)
	actions := []Action{
		BackToCategories{},
		BackToCategory{CategoryID: 1},
		BackToSubcategory{SubcategoryID: 2},
		Quantity{ProductID: 3, Current: 4, Direction: QtyDec},
		AddToCart{ProductID: 3, Quantity: 2},
		Rate{ProductID: 3, Stars: 5},
		CartItem{Op: CartRemove, CartItemID: 9},
		Pay{Provider: "card", OrderID: 10, Amount: &amount},
		CancelOrder{OrderID: 10},
	}

	for _, a := range actions {
		t.Run(a.Kind().String(), func(t *testing.T) {
			assert.Equal(t, a, Parse(a.Encode()))
			assert.LessOrEqual(t, len(a.Encode()), 64, "telegram limits callback data to 64 bytes")
		})
	}
}

func TestQuantity_Next(t *testing.T) {
	assert.Equal(t, 2, Quantity{Current: 1, Direction: QtyInc}.Next())
	assert.Equal(t, 1, Quantity{Current: 1, Direction: QtyDec}.Next())
	assert.Equal(t, 20, Quantity{Current: 20, Direction: QtyInc}.Next())
}
