package handlers

import (
	"ShopBot/internal/bot/customer"
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/bot/keyboards"
	"ShopBot/internal/core/callback"
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"fmt"
	"math"
	"strings"
)

func init() {
	customer.RegisterMenu(NewCatalogMenu)
	customer.RegisterCallback(NewCatalogCallbacks)
}

// catalog renders the category, subcategory and product screens.
type catalog struct {
	deps *customer.Deps
}

func (c catalog) showCategories(ctx context.Context, req *customer.Request) error {
	log := handlerLogger(ctx, c.deps, "catalog_handler")
	lang := req.Lang()

	categories, err := c.deps.Categories.ListCategories(ctx, true)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list categories")
		return c.deps.ReplyT(ctx, req, i18n.MsgCatalogUnavailable)
	}
	if len(categories) == 0 {
		return c.deps.ReplyT(ctx, req, i18n.MsgCatalogUnavailable)
	}
	return c.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgCatalogTitle), keyboards.Categories(lang, categories))
}

func (c catalog) showCategory(ctx context.Context, req *customer.Request, category *domain.Category) error {
	lang := req.Lang()
	name := esc(category.Name)

	subcategories, err := c.deps.Categories.ListSubcategories(ctx, category.ID)
	if err != nil {
		return fmt.Errorf("list subcategories of %d: %w", category.ID, err)
	}
	if len(subcategories) > 0 {
		return c.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgChooseSubcategory, name), keyboards.Subcategories(lang, subcategories))
	}

	products, err := c.deps.Products.ListByCategory(ctx, category.ID)
	if err != nil {
		return fmt.Errorf("list products of category %d: %w", category.ID, err)
	}
	if len(products) == 0 {
		return c.deps.ReplyT(ctx, req, i18n.MsgCategoryEmpty, name)
	}
	return c.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgChooseProduct, name), keyboards.Products(lang, products, true))
}

func (c catalog) showSubcategory(ctx context.Context, req *customer.Request, subcategory *domain.Subcategory) error {
	lang := req.Lang()
	name := esc(subcategory.Name)

	products, err := c.deps.Products.ListBySubcategory(ctx, subcategory.ID)
	if err != nil {
		return fmt.Errorf("list products of subcategory %d: %w", subcategory.ID, err)
	}
	if len(products) == 0 {
		return c.deps.ReplyT(ctx, req, i18n.MsgSubcategoryEmpty, name)
	}
	return c.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgChooseProduct, name), keyboards.Products(lang, products, true))
}

// showProduct sends the product card. Viewing counts toward the product's views.
func (c catalog) showProduct(ctx context.Context, req *customer.Request, product *domain.Product) error {
	log := handlerLogger(ctx, c.deps, "catalog_handler")
	lang := req.Lang()

	if err := c.deps.Products.IncrementViews(ctx, product.ID); err != nil {
		log.Warn().Err(err).Int64("product_id", product.ID).Msg("Failed to count product view")
	}
	rating, err := c.deps.Products.RatingSummary(ctx, product.ID)
	if err != nil {
		return fmt.Errorf("rating of product %d: %w", product.ID, err)
	}

	text := productCardText(lang, product, rating)
	markup := keyboards.ProductCard(lang, product, callback.MinQuantity)

	if product.ImageURL != "" {
		_, err := c.deps.Bot.SendPhoto(ctx, ports.SendPhotoParams{
			ChatID:      req.Update.ChatID,
			PhotoURL:    product.ImageURL,
			Caption:     text,
			ParseMode:   "HTML",
			ReplyMarkup: markup,
		})
		if err == nil {
			return nil
		}
		log.Warn().Err(err).Str("image_url", product.ImageURL).Msg("Failed to send product photo, falling back to text")
	}
	return c.deps.Reply(ctx, req, text, markup)
}

func productCardText(lang domain.Language, p *domain.Product, rating domain.RatingSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛍 <b>%s</b>\n", esc(p.Name))
	if p.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", esc(p.Description))
	}
	b.WriteString("\n" + i18n.T(lang, i18n.MsgProductPrice, p.Price.String()))
	if p.Stock != nil {
		b.WriteString("\n" + i18n.T(lang, i18n.MsgProductStock, *p.Stock))
	}
	if rating.HasReviews() {
		stars := strings.Repeat("⭐", int(math.Round(rating.Average)))
		b.WriteString("\n" + i18n.T(lang, i18n.MsgProductRating, stars, rating.Average, rating.Count))
	}
	return b.String()
}

// catalogMenu opens the catalog from the reply keyboard.
type catalogMenu struct {
	catalog
}

func NewCatalogMenu(deps *customer.Deps) customer.MenuHandler {
	return &catalogMenu{catalog{deps: deps}}
}

func (h *catalogMenu) Buttons() []i18n.Button {
	return []i18n.Button{i18n.BtnCatalog, i18n.BtnBackToCategories, i18n.BtnGoToCatalog, i18n.BtnAddMore}
}

func (h *catalogMenu) Handle(ctx context.Context, req *customer.Request, _ i18n.Button) error {
	return h.showCategories(ctx, req)
}

// catalogCallbacks handles inline navigation and the quantity selector.
type catalogCallbacks struct {
	catalog
}

func NewCatalogCallbacks(deps *customer.Deps) customer.CallbackHandler {
	return &catalogCallbacks{catalog{deps: deps}}
}

func (h *catalogCallbacks) Kinds() []callback.Kind {
	return []callback.Kind{
		callback.KindBackToCategories,
		callback.KindBackToCategory,
		callback.KindBackToSubcategory,
		callback.KindCategory,
		callback.KindSubcategory,
		callback.KindQuantity,
	}
}

func (h *catalogCallbacks) Handle(ctx context.Context, req *customer.Request, action callback.Action) error {
	switch a := action.(type) {
	case callback.BackToCategories:
		return h.showCategories(ctx, req)
	case callback.BackToCategory:
		return h.openCategory(ctx, req, a.CategoryID)
	case callback.Category:
		return h.openCategory(ctx, req, a.CategoryID)
	case callback.BackToSubcategory:
		return h.openSubcategory(ctx, req, a.SubcategoryID)
	case callback.Subcategory:
		return h.openSubcategory(ctx, req, a.SubcategoryID)
	case callback.Quantity:
		return h.stepQuantity(ctx, req, a)
	default:
		return fmt.Errorf("catalog: unexpected action %T", action)
	}
}

func (h *catalogCallbacks) openCategory(ctx context.Context, req *customer.Request, id int64) error {
	category, err := h.deps.Categories.GetCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("get category %d: %w", id, err)
	}
	if category == nil || !category.IsActive {
		req.Toast(i18n.T(req.Lang(), i18n.MsgCategoryNotFound), true)
		return nil
	}
	return h.showCategory(ctx, req, category)
}

func (h *catalogCallbacks) openSubcategory(ctx context.Context, req *customer.Request, id int64) error {
	subcategory, err := h.deps.Categories.GetSubcategory(ctx, id)
	if err != nil {
		return fmt.Errorf("get subcategory %d: %w", id, err)
	}
	if subcategory == nil || !subcategory.IsActive {
		req.Toast(i18n.T(req.Lang(), i18n.MsgSubcategoryNotFound), true)
		return nil
	}
	return h.showSubcategory(ctx, req, subcategory)
}

// stepQuantity edits the product card keyboard in place.
func (h *catalogCallbacks) stepQuantity(ctx context.Context, req *customer.Request, q callback.Quantity) error {
	lang := req.Lang()
	next := q.Next()
	if next == callback.ClampQuantity(q.Current) {
		if q.Direction == callback.QtyDec {
			req.Toast(i18n.T(lang, i18n.MsgMinQuantity), false)
		}
		return nil
	}

	product, err := h.deps.Products.Get(ctx, q.ProductID)
	if err != nil {
		return fmt.Errorf("get product %d: %w", q.ProductID, err)
	}
	if product == nil {
		req.Toast(i18n.T(lang, i18n.MsgProductNotFound), true)
		return nil
	}
	req.Toast(i18n.T(lang, i18n.MsgQuantityUnit, next), false)
	return editMarkup(ctx, h.deps, req, keyboards.ProductCard(lang, product, next))
}
