package handlers

import (
	"ShopBot/internal/bot/customer"
	"ShopBot/internal/bot/i18n"
	"ShopBot/internal/bot/keyboards"
	"ShopBot/internal/core/domain"
	"context"
	"fmt"
	"strings"
)

func init() {
	customer.RegisterMenu(NewProfileMenu)
}

// profileMenu handles the profile, loyalty and promos screens.
type profileMenu struct {
	deps *customer.Deps
}

func NewProfileMenu(deps *customer.Deps) customer.MenuHandler {
	return &profileMenu{deps: deps}
}

func (h *profileMenu) Buttons() []i18n.Button {
	return []i18n.Button{i18n.BtnProfile, i18n.BtnLoyalty, i18n.BtnPromos}
}

func (h *profileMenu) Handle(ctx context.Context, req *customer.Request, button i18n.Button) error {
	switch button {
	case i18n.BtnLoyalty:
		return h.loyalty(ctx, req)
	case i18n.BtnPromos:
		return h.promos(ctx, req)
	default:
		return h.profile(ctx, req)
	}
}

func (h *profileMenu) profile(ctx context.Context, req *customer.Request) error {
	lang := req.Lang()
	user := req.User

	stats, err := h.deps.Orders.UserStats(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("user stats: %w", err)
	}
	account, err := h.account(ctx, user)
	if err != nil {
		return err
	}

	lines := []string{i18n.T(lang, i18n.MsgProfile, esc(user.Name))}
	if user.Phone != nil {
		lines = append(lines, i18n.T(lang, i18n.MsgProfilePhone, esc(*user.Phone)))
	}
	if user.Email != nil {
		lines = append(lines, i18n.T(lang, i18n.MsgProfileEmail, esc(*user.Email)))
	}
	lines = append(lines, i18n.T(lang, i18n.MsgProfileStats,
		i18n.LanguageName(lang), user.CreatedAt.Format(dateLayout), stats.OrderCount, stats.TotalSpent.String()))
	if stats.LastOrderAt != nil {
		lines = append(lines, i18n.T(lang, i18n.MsgProfileLastOrder, stats.LastOrderAt.Format(dateLayout)))
	}
	tier := account.Tier()
	lines = append(lines, "", i18n.T(lang, i18n.MsgProfileLoyalty, tier.Emoji+" "+tier.Name, account.Points))

	return h.deps.Reply(ctx, req, strings.Join(lines, "\n"), keyboards.Profile(lang))
}

func (h *profileMenu) loyalty(ctx context.Context, req *customer.Request) error {
	lang := req.Lang()
	account, err := h.account(ctx, req.User)
	if err != nil {
		return err
	}

	tier := account.Tier()
	lines := []string{i18n.T(lang, i18n.MsgLoyalty, tier.Emoji+" "+tier.Name, account.Points, account.LifetimePoints)}
	for _, t := range domain.Tiers {
		lines = append(lines, i18n.T(lang, i18n.MsgLoyaltyTierLine, t.Emoji, t.Name, t.MinPoints, t.DiscountPercent))
	}
	lines = append(lines, "", i18n.T(lang, i18n.MsgLoyaltyFooter))
	return h.deps.Reply(ctx, req, strings.Join(lines, "\n"), keyboards.Profile(lang))
}

func (h *profileMenu) promos(ctx context.Context, req *customer.Request) error {
	lang := req.Lang()
	promos, err := h.deps.Promos.ListAvailable(ctx, h.deps.Clock())
	if err != nil {
		return fmt.Errorf("list promos: %w", err)
	}
	if len(promos) == 0 {
		return h.deps.ReplyT(ctx, req, i18n.MsgNoPromos)
	}

	blocks := []string{i18n.T(lang, i18n.MsgPromosTitle)}
	for _, p := range promos {
		block := i18n.T(lang, i18n.MsgPromoLine, esc(p.Code), promoValue(p))
		if p.Description != "" {
			block += "\n📝 " + esc(p.Description)
		}
		if p.MinOrder > 0 {
			block += "\n" + i18n.T(lang, i18n.MsgPromoMinimum, p.MinOrder.String())
		}
		if p.ExpiresAt != nil {
			block += "\n" + i18n.T(lang, i18n.MsgPromoExpires, p.ExpiresAt.Format(dateLayout))
		}
		blocks = append(blocks, block)
	}
	blocks = append(blocks, i18n.T(lang, i18n.MsgPromosFooter))
	return h.deps.Reply(ctx, req, strings.Join(blocks, "\n\n"), keyboards.Profile(lang))
}

// account returns the user's loyalty account; users without one start at zero.
func (h *profileMenu) account(ctx context.Context, user *domain.User) (*domain.LoyaltyAccount, error) {
	account, err := h.deps.Loyalty.Get(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("loyalty account: %w", err)
	}
	if account == nil {
		account = &domain.LoyaltyAccount{UserID: user.ID}
	}
	return account, nil
}

// promoValue renders "15%" or "$5.00".
func promoValue(p *domain.Promo) string {
	if p.Kind == domain.PromoPercentage {
		return fmt.Sprintf("%d%%", p.Value)
	}
	return domain.Money(p.Value).String()
}
