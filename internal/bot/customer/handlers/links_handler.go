package handlers

import (
	"ShopBot/internal/bot/customer"
	"ShopBot/internal/bot/deeplink"
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/core/domain"
	"context"
	"fmt"
	"strings"
)

func init() {
	customer.RegisterDeepLink(NewPromoLink)
	customer.RegisterDeepLink(NewTrackLink)
	customer.RegisterDeepLink(NewRestoreLink)
}

// promoLink handles /promo_<CODE>. A valid code is kept in the session until checkout.
type promoLink struct {
	deps *customer.Deps
}

func NewPromoLink(deps *customer.Deps) customer.DeepLinkHandler {
	return &promoLink{deps: deps}
}

func (h *promoLink) Family() deeplink.Family { return deeplink.FamilyPromo }

func (h *promoLink) Handle(ctx context.Context, req *customer.Request, link deeplink.Link) error {
	promoArg, ok := link.(deeplink.Promo)
	if !ok {
		return h.deps.ReplyT(ctx, req, i18n.MsgInvalidFormat)
	}
	code := domain.NormalizePromoCode(promoArg.Code)

	items, err := h.deps.Cart.ListItems(ctx, req.User.ID)
	if err != nil {
		return fmt.Errorf("list cart: %w", err)
	}
	if len(items) == 0 {
		return h.deps.ReplyT(ctx, req, i18n.MsgPromoNeedsCart)
	}
	total := domain.CartTotal(items)

	promo, err := h.deps.Promos.GetByCode(ctx, code)
	if err != nil {
		return fmt.Errorf("get promo %q: %w", code, err)
	}
	discount, err := promo.Discount(total, h.deps.Clock())
	if err != nil {
		if id, known := i18n.PromoError(err); known {
			return h.deps.ReplyT(ctx, req, id)
		}
		return fmt.Errorf("apply promo %q: %w", code, err)
	}

	h.deps.Sessions.SetPromoCode(req.Update.UserID, code)
	return h.deps.ReplyT(ctx, req, i18n.MsgPromoApplied, esc(code), discount.String(), (total - discount).String())
}

// trackLink handles /track_<number>.
type trackLink struct {
	deps *customer.Deps
}

func NewTrackLink(deps *customer.Deps) customer.DeepLinkHandler {
	return &trackLink{deps: deps}
}

func (h *trackLink) Family() deeplink.Family { return deeplink.FamilyTrack }

func (h *trackLink) Handle(ctx context.Context, req *customer.Request, link deeplink.Link) error {
	lang := req.Lang()
	track, ok := link.(deeplink.Track)
	if !ok {
		return h.deps.ReplyT(ctx, req, i18n.MsgInvalidTrackNumber)
	}
	if h.deps.Tracker == nil {
		return h.deps.ReplyT(ctx, req, i18n.MsgTrackingUnavailable)
	}

	info, err := h.deps.Tracker.Track(ctx, track.Number)
	if err != nil {
		log := handlerLogger(ctx, h.deps, "track_handler")
		log.Error().Err(err).Str("number", track.Number).Msg("Tracking lookup failed")
		return h.deps.ReplyT(ctx, req, i18n.MsgTrackingUnavailable)
	}
	if info == nil {
		return h.deps.ReplyT(ctx, req, i18n.MsgTrackingNotFound, esc(track.Number))
	}

	lines := []string{i18n.T(lang, i18n.MsgTracking, esc(info.Number), info.Status.Emoji()+" "+i18n.StatusText(lang, info.Status))}
	for _, ev := range info.History {
		lines = append(lines, fmt.Sprintf("%s %s", ev.Status.Emoji(), esc(ev.Description)))
	}
	return h.deps.Reply(ctx, req, strings.Join(lines, "\n"), nil)
}

// restoreLink handles /restore_<id>; restoring is not available yet.
type restoreLink struct {
	deps *customer.Deps
}

func NewRestoreLink(deps *customer.Deps) customer.DeepLinkHandler {
	return &restoreLink{deps: deps}
}

func (h *restoreLink) Family() deeplink.Family { return deeplink.FamilyRestore }

func (h *restoreLink) Handle(ctx context.Context, req *customer.Request, link deeplink.Link) error {
	restore, ok := link.(deeplink.Restore)
	if !ok {
		return h.deps.ReplyT(ctx, req, i18n.MsgInvalidRestoreID)
	}
	return h.deps.ReplyT(ctx, req, i18n.MsgRestore, esc(restore.ID))
}
