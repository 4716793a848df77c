package payment

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// StubProvider issues payment references and hosted checkout links without
// talking to a real processor.
type StubProvider struct {
	checkoutURL string
	newRef      func() string
	log         zerolog.Logger
}

var _ ports.PaymentPort = (*StubProvider)(nil)

// NewStubProvider creates a provider whose links point at checkoutURL.
func NewStubProvider(checkoutURL string, baseLogger *zerolog.Logger) *StubProvider {
	return &StubProvider{
		checkoutURL: checkoutURL,
		newRef:      func() string { return uuid.NewString() },
		log:         baseLogger.With().Str("component", "payment_stub").Logger(),
	}
}

// CreatePayment only supports card payments; cash is settled on delivery.
func (p *StubProvider) CreatePayment(ctx context.Context, req ports.PaymentRequest) (*ports.PaymentResult, error) {
	if domain.PaymentMethod(req.Provider) != domain.PaymentCard {
		return nil, fmt.Errorf("payment provider %q is not supported", req.Provider)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount %d for order %d", req.Amount, req.OrderID)
	}

	ref := "SB-" + p.newRef()
	link, err := url.Parse(p.checkoutURL)
	if err != nil {
		return nil, fmt.Errorf("invalid checkout url: %w", err)
	}
	q := link.Query()
	q.Set("ref", ref)
	q.Set("order", strconv.FormatInt(req.OrderID, 10))
	q.Set("amount", strconv.FormatInt(int64(req.Amount), 10))
	link.RawQuery = q.Encode()

	p.log.Info().
		Str("reference", ref).
		Int64("order_id", req.OrderID).
		Int64("amount", int64(req.Amount)).
		Msg("Payment created")

	return &ports.PaymentResult{
		Reference:    ref,
		Provider:     req.Provider,
		Amount:       req.Amount,
		PaymentURL:   link.String(),
		Instructions: "Uzcard / Humo / Visa / Mastercard",
	}, nil
}
