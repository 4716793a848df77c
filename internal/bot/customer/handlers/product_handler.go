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
	"strings"
)

const reviewsShown = 5

func init() {
	customer.RegisterCallback(NewProductCallbacks)
}

// productCallbacks handles favorites, reviews and ratings from a product card.
type productCallbacks struct {
	deps *customer.Deps
}

func NewProductCallbacks(deps *customer.Deps) customer.CallbackHandler {
	return &productCallbacks{deps: deps}
}

func (h *productCallbacks) Kinds() []callback.Kind {
	return []callback.Kind{
		callback.KindAddToFavorites,
		callback.KindShowReviews,
		callback.KindRateProduct,
		callback.KindRate,
		callback.KindCancelRating,
	}
}

func (h *productCallbacks) Handle(ctx context.Context, req *customer.Request, action callback.Action) error {
	switch a := action.(type) {
	case callback.AddToFavorites:
		return h.favorite(ctx, req, a.ProductID)
	case callback.ShowReviews:
		return h.reviews(ctx, req, a.ProductID)
	case callback.RateProduct:
		product, err := h.product(ctx, req, a.ProductID)
		if product == nil || err != nil {
			return err
		}
		lang := req.Lang()
		return h.deps.Reply(ctx, req, i18n.T(lang, i18n.MsgRatePrompt, esc(product.Name)), keyboards.Rating(lang, product.ID))
	case callback.Rate:
		return h.rate(ctx, req, a)
	case callback.CancelRating:
		req.Toast(i18n.T(req.Lang(), i18n.MsgRatingCancelled), false)
		return h.deps.Bot.EditMessageText(ctx, ports.EditMessageParams{
			ChatID:    req.Update.ChatID,
			MessageID: req.Update.MessageID,
			Text:      i18n.T(req.Lang(), i18n.MsgRatingCancelled),
		})
	default:
		return fmt.Errorf("product: unexpected action %T", action)
	}
}

// product loads a product and toasts when it does not exist.
func (h *productCallbacks) product(ctx context.Context, req *customer.Request, id int64) (*domain.Product, error) {
	product, err := h.deps.Products.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	if product == nil {
		req.Toast(i18n.T(req.Lang(), i18n.MsgProductNotFound), true)
	}
	return product, nil
}

func (h *productCallbacks) favorite(ctx context.Context, req *customer.Request, productID int64) error {
	product, err := h.product(ctx, req, productID)
	if product == nil || err != nil {
		return err
	}
	added, err := h.deps.Products.AddFavorite(ctx, req.User.ID, productID)
	if err != nil {
		return fmt.Errorf("add favorite %d: %w", productID, err)
	}
	id := i18n.MsgFavoriteExists
	if added {
		id = i18n.MsgFavoriteAdded
	}
	req.Toast(i18n.T(req.Lang(), id, product.Name), false)
	return nil
}

func (h *productCallbacks) reviews(ctx context.Context, req *customer.Request, productID int64) error {
	lang := req.Lang()
	product, err := h.product(ctx, req, productID)
	if product == nil || err != nil {
		return err
	}
	reviews, total, err := h.deps.Products.ListReviews(ctx, productID, reviewsShown)
	if err != nil {
		return fmt.Errorf("list reviews %d: %w", productID, err)
	}
	if len(reviews) == 0 {
		return h.deps.ReplyT(ctx, req, i18n.MsgReviewsEmpty)
	}

	blocks := []string{i18n.T(lang, i18n.MsgReviewsTitle, esc(product.Name))}
	for _, r := range reviews {
		block := fmt.Sprintf("%s <b>%s</b> · %s", strings.Repeat("⭐", r.Rating), esc(r.UserName), r.CreatedAt.Format(dateLayout))
		if r.Comment != "" {
			block += "\n" + esc(r.Comment)
		}
		blocks = append(blocks, block)
	}
	if total > len(reviews) {
		blocks = append(blocks, i18n.T(lang, i18n.MsgReviewsMore, total-len(reviews)))
	}
	return h.deps.Reply(ctx, req, strings.Join(blocks, "\n\n"), nil)
}

// rate records a rating; only buyers of the product may rate it.
func (h *productCallbacks) rate(ctx context.Context, req *customer.Request, a callback.Rate) error {
	lang := req.Lang()
	bought, err := h.deps.Orders.HasPurchased(ctx, req.User.ID, a.ProductID)
	if err != nil {
		return fmt.Errorf("check purchase of %d: %w", a.ProductID, err)
	}
	if !bought {
		req.Toast(i18n.T(lang, i18n.MsgRateOnlyPurchased), true)
		return nil
	}

	review := &domain.Review{
		UserID:    req.User.ID,
		UserName:  req.User.Name,
		ProductID: a.ProductID,
		Rating:    a.Stars,
		CreatedAt: h.deps.Clock(),
	}
	if err := h.deps.Products.AddReview(ctx, review); err != nil {
		return fmt.Errorf("add review for %d: %w", a.ProductID, err)
	}

	stars := strings.Repeat("⭐", a.Stars)
	req.Toast(i18n.T(lang, i18n.MsgRateThanks, stars), false)
	return h.deps.Bot.EditMessageText(ctx, ports.EditMessageParams{
		ChatID:    req.Update.ChatID,
		MessageID: req.Update.MessageID,
		Text:      i18n.T(lang, i18n.MsgRateThanks, stars),
	})
}
