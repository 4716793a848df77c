// Package keyboards builds every reply and inline keyboard the bot shows.
package keyboards

import (
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/bot/messages"
	"ShopBot/internal/core/callback"
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"fmt"
	"strings"
)

// ProductPrefix starts every product row of a product keyboard.
const ProductPrefix = "🛍 "

func reply(rows [][]ports.Button) *ports.ReplyMarkup {
	return &ports.ReplyMarkup{Buttons: rows, Persistent: true}
}

func oneTime(rows [][]ports.Button) *ports.ReplyMarkup {
	return &ports.ReplyMarkup{Buttons: rows}
}

func inline(rows ...[]ports.Button) *ports.ReplyMarkup {
	return &ports.ReplyMarkup{Buttons: rows, IsInline: true}
}

func btn(lang domain.Language, b i18n.Button) ports.Button {
	return ports.Button{Text: i18n.Label(lang, b)}
}

func cb(text string, action callback.Action) ports.Button {
	return ports.Button{Text: text, Data: action.Encode()}
}

func row(buttons ...ports.Button) []ports.Button {
	return buttons
}

// Main is the persistent main menu.
func Main(lang domain.Language) *ports.ReplyMarkup {
	return reply([][]ports.Button{
		row(btn(lang, i18n.BtnCatalog), btn(lang, i18n.BtnCart)),
		row(btn(lang, i18n.BtnOrders), btn(lang, i18n.BtnProfile)),
		row(btn(lang, i18n.BtnSearch), btn(lang, i18n.BtnHelp)),
		row(btn(lang, i18n.BtnContact)),
		row(btn(lang, i18n.BtnBecomeSeller)),
	})
}

// Categories lists category labels two per row, then home.
func Categories(lang domain.Language, categories []*domain.Category) *ports.ReplyMarkup {
	labels := make([]string, 0, len(categories))
	for _, c := range categories {
		labels = append(labels, c.Label())
	}
	rows := messages.Grid(labels, 2)
	rows = append(rows, row(btn(lang, i18n.BtnHome)))
	return reply(rows)
}

// Subcategories lists subcategory labels two per row, then back and home.
func Subcategories(lang domain.Language, subcategories []*domain.Subcategory) *ports.ReplyMarkup {
	labels := make([]string, 0, len(subcategories))
	for _, s := range subcategories {
		labels = append(labels, s.Label())
	}
	rows := messages.Grid(labels, 2)
	rows = append(rows, row(btn(lang, i18n.BtnBackToCategories), btn(lang, i18n.BtnHome)))
	return reply(rows)
}

// ProductLabel is the reply-keyboard text of a product row.
func ProductLabel(p *domain.Product) string {
	return fmt.Sprintf("%s%s - %s", ProductPrefix, p.Name, p.Price)
}

// ParseProductLabel extracts the product name from a product row.
func ParseProductLabel(text string) (string, bool) {
	if !strings.HasPrefix(text, ProductPrefix) {
		return "", false
	}
	name := strings.TrimPrefix(text, ProductPrefix)
	if i := strings.LastIndex(name, " - $"); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)
	return name, name != ""
}

// Products lists one product per row.
func Products(lang domain.Language, products []*domain.Product, showBack bool) *ports.ReplyMarkup {
	rows := make([][]ports.Button, 0, len(products)+1)
	for _, p := range products {
		rows = append(rows, row(ports.Button{Text: ProductLabel(p)}))
	}
	if showBack {
		rows = append(rows, row(btn(lang, i18n.BtnBackToCategories), btn(lang, i18n.BtnHome)))
	} else {
		rows = append(rows, row(btn(lang, i18n.BtnHome)))
	}
	return reply(rows)
}

// ProductCard is the inline keyboard under a product card.
func ProductCard(lang domain.Language, p *domain.Product, qty int) *ports.ReplyMarkup {
	qty = callback.ClampQuantity(qty)

	var back callback.Action = callback.BackToCategories{}
	if p.SubcategoryID != nil {
		back = callback.BackToSubcategory{SubcategoryID: *p.SubcategoryID}
	} else if p.CategoryID != 0 {
		back = callback.BackToCategory{CategoryID: p.CategoryID}
	}

	return inline(
		row(
			cb("➖", callback.Quantity{ProductID: p.ID, Current: qty, Direction: callback.QtyDec}),
			cb(i18n.T(lang, i18n.MsgQuantityUnit, qty), callback.Noop{}),
			cb("➕", callback.Quantity{ProductID: p.ID, Current: qty, Direction: callback.QtyInc}),
		),
		row(
			cb(i18n.Label(lang, i18n.BtnAddToCart), callback.AddToCart{ProductID: p.ID, Quantity: qty}),
			cb(i18n.Label(lang, i18n.BtnBack), back),
		),
		row(
			cb(i18n.Label(lang, i18n.BtnFavorite), callback.AddToFavorites{ProductID: p.ID}),
			cb(i18n.Label(lang, i18n.BtnReviews), callback.ShowReviews{ProductID: p.ID}),
		),
		row(
			cb(i18n.Label(lang, i18n.BtnRate), callback.RateProduct{ProductID: p.ID}),
		),
	)
}

// AddedToCart follows a successful add-to-cart.
func AddedToCart(lang domain.Language) *ports.ReplyMarkup {
	return inline(row(
		cb(i18n.Label(lang, i18n.BtnGoToCart), callback.GoToCart{}),
		cb(i18n.Label(lang, i18n.BtnContinueShopping), callback.BackToCategories{}),
	))
}

// Cart is the reply keyboard under the cart view.
func Cart(lang domain.Language, hasItems bool) *ports.ReplyMarkup {
	var rows [][]ports.Button
	if hasItems {
		rows = append(rows,
			row(btn(lang, i18n.BtnCheckout)),
			row(btn(lang, i18n.BtnClearCart), btn(lang, i18n.BtnAddMore)),
		)
	} else {
		rows = append(rows, row(btn(lang, i18n.BtnGoToCatalog)))
	}
	rows = append(rows, row(btn(lang, i18n.BtnHome)))
	return reply(rows)
}

// CartItem is the inline keyboard of one cart line.
func CartItem(lang domain.Language, itemID int64, qty int) *ports.ReplyMarkup {
	return inline(
		row(
			cb("➖", callback.CartItem{Op: callback.CartDecrease, CartItemID: itemID}),
			cb("📦 "+i18n.T(lang, i18n.MsgQuantityUnit, qty), callback.CartItem{Op: callback.CartShow, CartItemID: itemID}),
			cb("➕", callback.CartItem{Op: callback.CartIncrease, CartItemID: itemID}),
		),
		row(cb(i18n.Label(lang, i18n.BtnRemove), callback.CartItem{Op: callback.CartRemove, CartItemID: itemID})),
	)
}

// RegistrationName offers the Telegram name as a one-tap answer.
func RegistrationName(lang domain.Language, suggested string) *ports.ReplyMarkup {
	var rows [][]ports.Button
	if suggested != "" {
		rows = append(rows, row(ports.Button{Text: suggested}))
	}
	rows = append(rows, row(btn(lang, i18n.BtnCancel)))
	return oneTime(rows)
}

// RegistrationPhone asks for a contact share.
func RegistrationPhone(lang domain.Language) *ports.ReplyMarkup {
	share := btn(lang, i18n.BtnShareContact)
	share.RequestContact = true
	return oneTime([][]ports.Button{
		row(share),
		row(btn(lang, i18n.BtnSkip)),
		row(btn(lang, i18n.BtnCancel)),
	})
}

// SkipOrCancel is used by optional wizard steps.
func SkipOrCancel(lang domain.Language) *ports.ReplyMarkup {
	return oneTime([][]ports.Button{
		row(btn(lang, i18n.BtnSkip)),
		row(btn(lang, i18n.BtnCancel)),
	})
}

// CancelOnly is used by mandatory wizard steps.
func CancelOnly(lang domain.Language) *ports.ReplyMarkup {
	return oneTime([][]ports.Button{row(btn(lang, i18n.BtnCancel))})
}

// Languages is the language picker; withCancel adds a cancel row.
func Languages(lang domain.Language, withCancel bool) *ports.ReplyMarkup {
	rows := [][]ports.Button{row(btn(lang, i18n.BtnRussian), btn(lang, i18n.BtnUzbek))}
	if withCancel {
		rows = append(rows, row(btn(lang, i18n.BtnCancel)))
	}
	return oneTime(rows)
}

// Back is a back/home row.
func Back(lang domain.Language) *ports.ReplyMarkup {
	return reply([][]ports.Button{row(btn(lang, i18n.BtnBack), btn(lang, i18n.BtnHome))})
}

// Confirm is a yes/no question.
func Confirm(lang domain.Language) *ports.ReplyMarkup {
	return oneTime([][]ports.Button{row(btn(lang, i18n.BtnYes), btn(lang, i18n.BtnNo))})
}

// Address asks for a location share or a typed address.
func Address(lang domain.Language) *ports.ReplyMarkup {
	location := btn(lang, i18n.BtnSendLocation)
	location.RequestLocation = true
	return reply([][]ports.Button{
		row(location),
		row(btn(lang, i18n.BtnEnterAddress)),
		row(btn(lang, i18n.BtnBack), btn(lang, i18n.BtnHome)),
	})
}

// PaymentMethods offers cash or card.
func PaymentMethods(lang domain.Language) *ports.ReplyMarkup {
	return reply([][]ports.Button{
		row(btn(lang, i18n.BtnPayCash), btn(lang, i18n.BtnPayCard)),
		row(btn(lang, i18n.BtnCancel)),
	})
}

// Profile offers the profile sub-sections.
func Profile(lang domain.Language) *ports.ReplyMarkup {
	return reply([][]ports.Button{
		row(btn(lang, i18n.BtnChangeLanguage), btn(lang, i18n.BtnLoyalty)),
		row(btn(lang, i18n.BtnPromos)),
		row(btn(lang, i18n.BtnHome)),
	})
}

// Rating is the 1..5 star picker.
func Rating(lang domain.Language, productID int64) *ports.ReplyMarkup {
	star := func(n int) ports.Button {
		return cb(strings.Repeat("⭐", n), callback.Rate{ProductID: productID, Stars: n})
	}
	return inline(
		row(star(1), star(2), star(3)),
		row(star(4), star(5)),
		row(cb(i18n.Label(lang, i18n.BtnCancel), callback.CancelRating{})),
	)
}

// OrderDetails is attached to an order card; cancel shows only while the order can be cancelled.
func OrderDetails(lang domain.Language, order *domain.Order) *ports.ReplyMarkup {
	rows := [][]ports.Button{row(
		cb(i18n.Label(lang, i18n.BtnOrderDetails), callback.OrderDetails{OrderID: order.ID}),
		cb(i18n.Label(lang, i18n.BtnOrderContact), callback.ContactAbout{OrderID: order.ID}),
	)}
	if order.Cancellable() {
		rows = append(rows, row(cb(i18n.Label(lang, i18n.BtnCancelOrder), callback.CancelOrder{OrderID: order.ID})))
	}
	return inline(rows...)
}

// Contact has chat and call URL buttons plus back.
func Contact(lang domain.Language, phone, username string) *ports.ReplyMarkup {
	var links []ports.Button
	if u := strings.TrimPrefix(strings.TrimSpace(username), "@"); u != "" {
		links = append(links, ports.Button{Text: i18n.Label(lang, i18n.BtnChat), URL: "https://t.me/" + u})
	}
	if p := strings.ReplaceAll(strings.TrimSpace(phone), " ", ""); p != "" {
		links = append(links, ports.Button{Text: i18n.Label(lang, i18n.BtnCall) + " " + phone, URL: "tel:" + p})
	}
	rows := [][]ports.Button{}
	if len(links) > 0 {
		rows = append(rows, links)
	}
	rows = append(rows, row(cb(i18n.Label(lang, i18n.BtnBack), callback.BackToMain{})))
	return inline(rows...)
}

// Payment is attached to a freshly placed order.
func Payment(lang domain.Language, order *domain.Order) *ports.ReplyMarkup {
	if order.PaymentMethod == domain.PaymentCard {
		amount := int64(order.Total)
		return inline(
			row(cb(i18n.Label(lang, i18n.BtnPayNow), callback.Pay{Provider: string(domain.PaymentCard), OrderID: order.ID, Amount: &amount})),
			row(cb(i18n.Label(lang, i18n.BtnCancelPayment), callback.CancelPayment{})),
		)
	}
	return inline(
		row(cb(i18n.Label(lang, i18n.BtnConfirmCash), callback.Pay{Provider: string(domain.PaymentCash), OrderID: order.ID})),
	)
}
