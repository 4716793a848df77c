package i18n

import (
	"ShopBot/internal/core/domain"
	"strings"
)

// Button is a reply-keyboard label the bot both shows and recognizes.
type Button int

const (
	BtnCatalog Button = iota
	BtnCart
	BtnOrders
	BtnProfile
	BtnSearch
	BtnHelp
	BtnContact
	BtnBecomeSeller
	BtnHome
	BtnBack
	BtnBackToCategories
	BtnCheckout
	BtnClearCart
	BtnAddMore
	BtnGoToCatalog
	BtnChangeLanguage
	BtnLoyalty
	BtnPromos

	BtnShareContact
	BtnSkip
	BtnCancel
	BtnYes
	BtnNo
	BtnRussian
	BtnUzbek
	BtnSendLocation
	BtnEnterAddress
	BtnPayCash
	BtnPayCard

	// Inline-only labels.
	BtnAddToCart
	BtnFavorite
	BtnReviews
	BtnRate
	BtnRemove
	BtnOrderDetails
	BtnOrderContact
	BtnCancelOrder
	BtnGoToCart
	BtnContinueShopping
	BtnChat
	BtnCall
	BtnPayNow
	BtnConfirmCash
	BtnCancelPayment

	buttonCount
)

type labels struct {
	ru []string
	uz []string
}

// The first label of each language is the one shown; the rest are still accepted.
var buttons = map[Button]labels{
	BtnCatalog:          {ru: []string{"🛍 Каталог"}, uz: []string{"🛍 Katalog"}},
	BtnCart:             {ru: []string{"🛒 Корзина"}, uz: []string{"🛒 Savat"}},
	BtnOrders:           {ru: []string{"📋 Мои заказы"}, uz: []string{"📋 Mening buyurtmalarim"}},
	BtnProfile:          {ru: []string{"👤 Профиль"}, uz: []string{"👤 Profil"}},
	BtnSearch:           {ru: []string{"🔍 Поиск"}, uz: []string{"🔍 Qidiruv"}},
	BtnHelp:             {ru: []string{"ℹ️ Помощь"}, uz: []string{"ℹ️ Yordam"}},
	BtnContact:          {ru: []string{"📞 Связаться с нами"}, uz: []string{"📞 Biz bilan bog'lanish"}},
	BtnBecomeSeller:     {ru: []string{"🧑‍💼 Стать продавцом"}, uz: []string{"🧑‍💼 Sotuvchi bo'lish"}},
	BtnHome:             {ru: []string{"🏠 Главная", "🔙 Главная"}, uz: []string{"🏠 Bosh sahifa", "🔙 Bosh sahifa"}},
	BtnBack:             {ru: []string{"🔙 Назад"}, uz: []string{"🔙 Orqaga"}},
	BtnBackToCategories: {ru: []string{"🔙 К категориям"}, uz: []string{"🔙 Kategoriyalarga"}},
	BtnCheckout:         {ru: []string{"📦 Оформить заказ"}, uz: []string{"📦 Buyurtma berish"}},
	BtnClearCart:        {ru: []string{"🗑 Очистить корзину"}, uz: []string{"🗑 Savatni tozalash"}},
	BtnAddMore:          {ru: []string{"➕ Добавить товары"}, uz: []string{"➕ Tovarlar qo'shish"}},
	BtnGoToCatalog:      {ru: []string{"🛍 Перейти в каталог"}, uz: []string{"🛍 Katalogga o'tish"}},
	BtnChangeLanguage:   {ru: []string{"🌍 Сменить язык"}, uz: []string{"🌍 Tilni almashtirish"}},
	BtnLoyalty:          {ru: []string{"⭐ Программа лояльности"}, uz: []string{"⭐ Sodiqlik dasturi"}},
	BtnPromos:           {ru: []string{"🎁 Промокоды"}, uz: []string{"🎁 Promokodlar"}},

	BtnShareContact: {ru: []string{"📱 Поделиться номером"}, uz: []string{"📱 Raqamni ulashish"}},
	BtnSkip:         {ru: []string{"⏭ Пропустить"}, uz: []string{"⏭ O'tkazib yuborish"}},
	BtnCancel:       {ru: []string{"❌ Отмена", "❌ Отмена заказа"}, uz: []string{"❌ Bekor qilish"}},
	BtnYes:          {ru: []string{"✅ Да"}, uz: []string{"✅ Ha"}},
	BtnNo:           {ru: []string{"❌ Нет"}, uz: []string{"❌ Yo'q"}},
	BtnRussian:      {ru: []string{"🇷🇺 Русский"}, uz: []string{"🇷🇺 Русский"}},
	BtnUzbek:        {ru: []string{"🇺🇿 O'zbekcha"}, uz: []string{"🇺🇿 O'zbekcha"}},
	BtnSendLocation: {ru: []string{"📍 Отправить локацию"}, uz: []string{"📍 Lokatsiyani yuborish"}},
	BtnEnterAddress: {ru: []string{"✍️ Ввести адрес"}, uz: []string{"✍️ Manzil kiritish"}},
	BtnPayCash:      {ru: []string{"💵 Наличными при получении"}, uz: []string{"💵 Qabul qilishda naqd"}},
	BtnPayCard:      {ru: []string{"💳 Оплата картой"}, uz: []string{"💳 Kartadan toʻlov"}},

	BtnAddToCart:        {ru: []string{"🛒 Добавить"}, uz: []string{"🛒 Qo'shish"}},
	BtnFavorite:         {ru: []string{"❤️ В избранное"}, uz: []string{"❤️ Sevimlilarga"}},
	BtnReviews:          {ru: []string{"📊 Отзывы"}, uz: []string{"📊 Fikrlar"}},
	BtnRate:             {ru: []string{"⭐ Оценить"}, uz: []string{"⭐ Baholash"}},
	BtnRemove:           {ru: []string{"🗑 Удалить"}, uz: []string{"🗑 O'chirish"}},
	BtnOrderDetails:     {ru: []string{"📋 Детали заказа"}, uz: []string{"📋 Buyurtma tafsilotlari"}},
	BtnOrderContact:     {ru: []string{"📞 Связаться"}, uz: []string{"📞 Bog'lanish"}},
	BtnCancelOrder:      {ru: []string{"❌ Отменить заказ"}, uz: []string{"❌ Buyurtmani bekor qilish"}},
	BtnGoToCart:         {ru: []string{"🛒 Перейти в корзину"}, uz: []string{"🛒 Savatga o‘tish"}},
	BtnContinueShopping: {ru: []string{"🛍 Продолжить покупки"}, uz: []string{"🛍 Xaridni davom ettirish"}},
	BtnChat:             {ru: []string{"💬 Написать в чате"}, uz: []string{"💬 Chatda yozish"}},
	BtnCall:             {ru: []string{"📞 Позвонить"}, uz: []string{"📞 Qo'ng'iroq qilish"}},
	BtnPayNow:           {ru: []string{"💳 Оплатить"}, uz: []string{"💳 To'lash"}},
	BtnConfirmCash:      {ru: []string{"✅ Подтвердить"}, uz: []string{"✅ Tasdiqlash"}},
	BtnCancelPayment:    {ru: []string{"❌ Отменить оплату"}, uz: []string{"❌ To'lovni bekor qilish"}},
}

var buttonIndex = func() map[string]Button {
	idx := make(map[string]Button)
	for b, l := range buttons {
		for _, text := range l.ru {
			idx[text] = b
		}
		for _, text := range l.uz {
			idx[text] = b
		}
	}
	return idx
}()

// Label returns the text shown for b in lang.
func Label(lang domain.Language, b Button) string {
	l, ok := buttons[b]
	if !ok {
		return ""
	}
	if lang == domain.LangUZ && len(l.uz) > 0 {
		return l.uz[0]
	}
	return l.ru[0]
}

// Match resolves a label in any language back to its button.
func Match(text string) (Button, bool) {
	b, ok := buttonIndex[strings.TrimSpace(text)]
	return b, ok
}

// Is reports whether text is a label of b in any language.
func Is(text string, b Button) bool {
	got, ok := Match(text)
	return ok && got == b
}

// LanguageFromButton maps the language picker labels to a language.
func LanguageFromButton(text string) (domain.Language, bool) {
	b, ok := Match(text)
	if !ok {
		return "", false
	}
	switch b {
	case BtnRussian:
		return domain.LangRU, true
	case BtnUzbek:
		return domain.LangUZ, true
	}
	return "", false
}

// LanguageName is the picker label of lang, used in the profile.
func LanguageName(lang domain.Language) string {
	if lang == domain.LangUZ {
		return Label(lang, BtnUzbek)
	}
	return Label(lang, BtnRussian)
}
