package payment

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider() *StubProvider {
	nopLogger := zerolog.Nop()
	p := NewStubProvider("https://pay.example.uz/checkout?lang=ru", &nopLogger)
	p.newRef = func() string { return "fixed" }
	return p
}

func TestStubProvider_CardPayment(t *testing.T) {
	// 1. Run
	result, err := newTestProvider().CreatePayment(context.Background(), ports.PaymentRequest{
		Provider: string(domain.PaymentCard),
		OrderID:  12,
		Amount:   2750,
	})

	// 2. Verify
	require.NoError(t, err)
	assert.Equal(t, "SB-fixed", result.Reference)
	assert.Equal(t, domain.Money(2750), result.Amount)
	assert.NotEmpty(t, result.Instructions)

	link, err := url.Parse(result.PaymentURL)
	require.NoError(t, err)
	assert.Equal(t, "pay.example.uz", link.Host)
	assert.Equal(t, "ru", link.Query().Get("lang"))
	assert.Equal(t, "SB-fixed", link.Query().Get("ref"))
	assert.Equal(t, "12", link.Query().Get("order"))
	assert.Equal(t, "2750", link.Query().Get("amount"))
}

func TestStubProvider_Rejects(t *testing.T) {
	tests := []struct {
		name string
		req  ports.PaymentRequest
	}{
		{"cash", ports.PaymentRequest{Provider: string(domain.PaymentCash), OrderID: 1, Amount: 100}},
		{"unknown provider", ports.PaymentRequest{Provider: "crypto", OrderID: 1, Amount: 100}},
		{"zero amount", ports.PaymentRequest{Provider: string(domain.PaymentCard), OrderID: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestProvider().CreatePayment(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestStubProvider_UniqueReferences(t *testing.T) {
	nopLogger := zerolog.Nop()
	p := NewStubProvider("https://pay.example.uz/checkout", &nopLogger)
	req := ports.PaymentRequest{Provider: string(domain.PaymentCard), OrderID: 1, Amount: 100}

	a, err := p.CreatePayment(context.Background(), req)
	require.NoError(t, err)
	b, err := p.CreatePayment(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, a.Reference, b.Reference)
}
