package handlers

import (
	"ShopBot/internal/bot/customer"
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/bot/keyboards"
	"ShopBot/internal/core/domain"
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	searchLimit      = 10
	quickSearchLimit = 5
)

func init() {
	customer.RegisterMenu(NewSearchMenu)
	customer.RegisterState(NewSearchState)
	customer.RegisterText(NewTextHandler)
}

type searchMenu struct {
	deps *customer.Deps
}

func NewSearchMenu(deps *customer.Deps) customer.MenuHandler {
	return &searchMenu{deps: deps}
}

func (h *searchMenu) Buttons() []i18n.Button {
	return []i18n.Button{i18n.BtnSearch}
}

func (h *searchMenu) Handle(ctx context.Context, req *customer.Request, _ i18n.Button) error {
	h.deps.Sessions.SetState(req.Update.UserID, domain.Searching{})
	lang := req.Lang()
	return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgSearchPrompt), keyboards.Back(lang))
}

// searchState runs a full search with the next message.
type searchState struct {
	deps *customer.Deps
}

func NewSearchState(deps *customer.Deps) customer.StateHandler {
	return &searchState{deps: deps}
}

func (h *searchState) States() []domain.StateKind {
	return []domain.StateKind{domain.StateSearching}
}

func (h *searchState) Handle(ctx context.Context, req *customer.Request, _ domain.ConversationState) error {
	query := strings.TrimSpace(req.Update.Text)
	lang := req.Lang()
	userID := req.Update.UserID

	if b, ok := i18n.Match(query); ok && (b == i18n.BtnBack || b == i18n.BtnHome || b == i18n.BtnCancel) {
		h.deps.Sessions.ClearState(userID)
		return h.deps.MainMenu(ctx, req, i18n.MsgWelcomeBack)
	}
	if query == "" {
		return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgSearchPrompt), keyboards.Back(lang))
	}

	// One extra row tells us whether there are more hits than we show.
	products, err := h.deps.Products.Search(ctx, query, searchLimit+1)
	if err != nil {
		return fmt.Errorf("search %q: %w", query, err)
	}
	if len(products) == 0 {
		return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgSearchNothing, esc(query)), keyboards.Back(lang))
	}

	h.deps.Sessions.ClearState(userID)

	shown := products
	if len(shown) > searchLimit {
		shown = shown[:searchLimit]
	}
	lines := []string{i18n.T(lang, i18n.MsgSearchResults, esc(query))}
	for _, p := range shown {
		lines = append(lines, i18n.T(lang, i18n.MsgSearchLine, esc(p.Name), p.Price.String()))
	}
	if extra := len(products) - len(shown); extra > 0 {
		lines = append(lines, i18n.T(lang, i18n.MsgSearchMore, extra))
	}
	lines = append(lines, i18n.T(lang, i18n.MsgSearchHint))
	return h.deps.Reply(ctx, req, strings.Join(lines, "\n\n"), keyboards.Products(lang, shown, false))
}

// textHandler resolves dynamic catalog labels, then quick search, then the unknown-input help.
type textHandler struct {
	catalog
}

func NewTextHandler(deps *customer.Deps) customer.TextHandler {
	return &textHandler{catalog{deps: deps}}
}

func (h *textHandler) Handle(ctx context.Context, req *customer.Request) error {
	text := strings.TrimSpace(req.Update.Text)
	if text == "" {
		return h.unknown(ctx, req)
	}

	// 1. Product rows
	if name, ok := keyboards.ParseProductLabel(text); ok {
		product, err := h.deps.Products.FindByName(ctx, name)
		if err != nil {
			return fmt.Errorf("find product %q: %w", name, err)
		}
		if product == nil {
			return h.deps.ReplyT(ctx, req, i18n.MsgProductNotFound)
		}
		return h.showProduct(ctx, req, product)
	}

	// 2. Category and subcategory labels
	name := stripLabelPrefix(text)
	if name != "" {
		category, err := h.deps.Categories.FindCategoryByName(ctx, name)
		if err != nil {
			return fmt.Errorf("find category %q: %w", name, err)
		}
		if category != nil {
			return h.showCategory(ctx, req, category)
		}
		subcategory, err := h.deps.Categories.FindSubcategoryByName(ctx, name)
		if err != nil {
			return fmt.Errorf("find subcategory %q: %w", name, err)
		}
		if subcategory != nil {
			return h.showSubcategory(ctx, req, subcategory)
		}
	}

	// 3. Quick search
	if utf8.RuneCountInString(text) > 2 && !strings.HasPrefix(text, "/") {
		return h.quickSearch(ctx, req, text)
	}
	return h.unknown(ctx, req)
}

func (h *textHandler) quickSearch(ctx context.Context, req *customer.Request, query string) error {
	lang := req.Lang()
	products, err := h.deps.Products.Search(ctx, query, quickSearchLimit)
	if err != nil {
		return fmt.Errorf("quick search %q: %w", query, err)
	}
	if len(products) == 0 {
		return h.deps.MainMenu(ctx, req, i18n.MsgSearchNothing, esc(query))
	}

	lines := []string{i18n.T(lang, i18n.MsgQuickSearch, esc(query))}
	for _, p := range products {
		lines = append(lines, i18n.T(lang, i18n.MsgSearchLine, esc(p.Name), p.Price.String()))
	}
	lines = append(lines, i18n.T(lang, i18n.MsgQuickSearchHint))
	return h.deps.Reply(ctx, req, strings.Join(lines, "\n\n"), keyboards.Products(lang, products, false))
}

func (h *textHandler) unknown(ctx context.Context, req *customer.Request) error {
	return h.deps.MainMenu(ctx, req, i18n.MsgUnknownCommand)
}

// stripLabelPrefix removes a leading emoji and spaces from a keyboard label.
func stripLabelPrefix(text string) string {
	return strings.TrimLeftFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
