package callback

import (
	"strconv"
	"strings"
)

const (
	prefixBackToCategory    = "back_to_category_"
	prefixBackToSubcategory = "back_to_subcategory_"
	prefixQtyInc            = "qty_inc_"
	prefixQtyDec            = "qty_dec_"
	prefixAddToCart         = "add_to_cart_"
	prefixAddToFavorites    = "add_to_favorites_"
	prefixReviews           = "reviews_"
	prefixRateProduct       = "rate_product_"
	prefixRate              = "rate_"
	prefixCart              = "cart_"
	prefixPay               = "pay_"
	prefixOrderDetails      = "order_details_"
	prefixContactAbout      = "contact_about_"
	prefixCancelOrder       = "cancel_order_"
	prefixCategory          = "cat_"
	prefixSubcategory       = "subcat_"

	dataBackToCategories = "back_to_categories"
	dataGoToCart         = "go_to_cart"
	dataBackToMain       = "back_to_main"
	dataCancelPayment    = "cancel_payment"
	dataCancelRating     = "cancel_rating"
	dataNoop             = "noop"
)

// Parse turns a raw payload into an Action. It never fails: unknown verbs
// become Unknown and known verbs with bad arguments become Malformed.
func Parse(data string) Action {
	switch data {
	case dataBackToCategories:
		return BackToCategories{}
	case dataGoToCart:
		return GoToCart{}
	case dataBackToMain:
		return BackToMain{}
	case dataCancelPayment:
		return CancelPayment{}
	case dataCancelRating:
		return CancelRating{}
	case dataNoop:
		return Noop{}
	}

	// Longer prefixes first where one is a prefix of another.
	switch {
	case strings.HasPrefix(data, prefixBackToCategory):
		id, ok := parseID(data[len(prefixBackToCategory):])
		if !ok {
			return Malformed{Verb: "back_to_category", Raw: data}
		}
		return BackToCategory{CategoryID: id}

	case strings.HasPrefix(data, prefixBackToSubcategory):
		id, ok := parseID(data[len(prefixBackToSubcategory):])
		if !ok {
			return Malformed{Verb: "back_to_subcategory", Raw: data}
		}
		return BackToSubcategory{SubcategoryID: id}

	case strings.HasPrefix(data, prefixQtyInc):
		return parseQuantity(data, data[len(prefixQtyInc):], QtyInc)

	case strings.HasPrefix(data, prefixQtyDec):
		return parseQuantity(data, data[len(prefixQtyDec):], QtyDec)

	case strings.HasPrefix(data, prefixAddToCart):
		return parseAddToCart(data, data[len(prefixAddToCart):])

	case strings.HasPrefix(data, prefixAddToFavorites):
		id, ok := parseID(data[len(prefixAddToFavorites):])
		if !ok {
			return Malformed{Verb: "add_to_favorites", Raw: data}
		}
		return AddToFavorites{ProductID: id}

	case strings.HasPrefix(data, prefixReviews):
		id, ok := parseID(data[len(prefixReviews):])
		if !ok {
			return Malformed{Verb: "reviews", Raw: data}
		}
		return ShowReviews{ProductID: id}

	case strings.HasPrefix(data, prefixRateProduct):
		id, ok := parseID(data[len(prefixRateProduct):])
		if !ok {
			return Malformed{Verb: "rate_product", Raw: data}
		}
		return RateProduct{ProductID: id}

	case strings.HasPrefix(data, prefixRate):
		return parseRate(data, data[len(prefixRate):])

	case strings.HasPrefix(data, prefixCart):
		return parseCartItem(data, data[len(prefixCart):])

	case strings.HasPrefix(data, prefixPay):
		return parsePay(data, data[len(prefixPay):])

	case strings.HasPrefix(data, prefixOrderDetails):
		id, ok := parseID(data[len(prefixOrderDetails):])
		if !ok {
			return Malformed{Verb: "order_details", Raw: data}
		}
		return OrderDetails{OrderID: id}

	case strings.HasPrefix(data, prefixContactAbout):
		id, ok := parseID(data[len(prefixContactAbout):])
		if !ok {
			return Malformed{Verb: "contact_about", Raw: data}
		}
		return ContactAbout{OrderID: id}

	case strings.HasPrefix(data, prefixCancelOrder):
		id, ok := parseID(data[len(prefixCancelOrder):])
		if !ok {
			return Malformed{Verb: "cancel_order", Raw: data}
		}
		return CancelOrder{OrderID: id}

	case strings.HasPrefix(data, prefixSubcategory):
		id, ok := parseID(data[len(prefixSubcategory):])
		if !ok {
			return Malformed{Verb: "subcat", Raw: data}
		}
		return Subcategory{SubcategoryID: id}

	case strings.HasPrefix(data, prefixCategory):
		id, ok := parseID(data[len(prefixCategory):])
		if !ok {
			return Malformed{Verb: "cat", Raw: data}
		}
		return Category{CategoryID: id}
	}

	return Unknown{Raw: data}
}

func parseQuantity(raw, args string, dir QtyDirection) Action {
	parts := strings.Split(args, "_")
	if len(parts) != 2 {
		return Malformed{Verb: "qty", Raw: raw}
	}
	pid, ok := parseID(parts[0])
	if !ok {
		return Malformed{Verb: "qty", Raw: raw}
	}
	qty, err := strconv.Atoi(parts[1])
	if err != nil {
		return Malformed{Verb: "qty", Raw: raw}
	}
	return Quantity{ProductID: pid, Current: ClampQuantity(qty), Direction: dir}
}

func parseAddToCart(raw, args string) Action {
	parts := strings.Split(args, "_")
	if len(parts) > 2 {
		return Malformed{Verb: "add_to_cart", Raw: raw}
	}
	pid, ok := parseID(parts[0])
	if !ok {
		return Malformed{Verb: "add_to_cart", Raw: raw}
	}
	qty := 1
	if len(parts) == 2 && parts[1] != "" {
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return Malformed{Verb: "add_to_cart", Raw: raw}
		}
		qty = max(n, 1)
	}
	return AddToCart{ProductID: pid, Quantity: qty}
}

func parseRate(raw, args string) Action {
	parts := strings.Split(args, "_")
	if len(parts) != 2 {
		return Malformed{Verb: "rate", Raw: raw}
	}
	pid, ok := parseID(parts[0])
	if !ok {
		return Malformed{Verb: "rate", Raw: raw}
	}
	stars, err := strconv.Atoi(parts[1])
	if err != nil || stars < 1 || stars > 5 {
		return Malformed{Verb: "rate", Raw: raw}
	}
	return Rate{ProductID: pid, Stars: stars}
}

func parseCartItem(raw, args string) Action {
	opStr, idStr, found := strings.Cut(args, "_")
	if !found {
		return Malformed{Verb: "cart", Raw: raw}
	}
	op := CartOp(opStr)
	switch op {
	case CartIncrease, CartDecrease, CartRemove, CartShow:
	default:
		return Malformed{Verb: "cart", Raw: raw}
	}
	id, ok := parseID(idStr)
	if !ok {
		return Malformed{Verb: "cart", Raw: raw}
	}
	return CartItem{Op: op, CartItemID: id}
}

func parsePay(raw, args string) Action {
	parts := strings.Split(args, "_")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
		return Malformed{Verb: "pay", Raw: raw}
	}
	orderID, ok := parseID(parts[1])
	if !ok {
		return Malformed{Verb: "pay", Raw: raw}
	}
	pay := Pay{Provider: parts[0], OrderID: orderID}
	if len(parts) == 3 && parts[2] != "" {
		amount, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil || amount < 0 {
			return Malformed{Verb: "pay", Raw: raw}
		}
		pay.Amount = &amount
	}
	return pay
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
