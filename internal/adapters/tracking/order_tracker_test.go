package tracking

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports/mocks"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderTracker_Track(t *testing.T) {
	created := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		number string
		order  *domain.Order
		want   []domain.OrderStatus
	}{
		{
			name:   "shipped order with prefix",
			number: "SB12",
			order:  &domain.Order{ID: 12, Status: domain.OrderShipped, CreatedAt: created},
			want:   []domain.OrderStatus{domain.OrderPending, domain.OrderConfirmed, domain.OrderShipped},
		},
		{
			name:   "bare id, lower case prefix",
			number: " sb12 ",
			order:  &domain.Order{ID: 12, Status: domain.OrderPending, CreatedAt: created},
			want:   []domain.OrderStatus{domain.OrderPending},
		},
		{
			name:   "cancelled",
			number: "12",
			order:  &domain.Order{ID: 12, Status: domain.OrderCancelled, CreatedAt: created},
			want:   []domain.OrderStatus{domain.OrderPending, domain.OrderCancelled},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 1. Setup
			orders := new(mocks.OrderRepository)
			orders.On("Get", mock.Anything, int64(12)).Return(tt.order, nil)

			// 2. Run
			info, err := NewOrderTracker(orders).Track(context.Background(), tt.number)

			// 3. Verify
			require.NoError(t, err)
			require.NotNil(t, info)
			assert.Equal(t, "SB12", info.Number)
			assert.Equal(t, tt.order.Status, info.Status)

			got := make([]domain.OrderStatus, 0, len(info.History))
			for _, ev := range info.History {
				got = append(got, ev.Status)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "14.03.2026 12:00", info.History[0].Description)
		})
	}
}

func TestOrderTracker_Unknown(t *testing.T) {
	orders := new(mocks.OrderRepository)
	orders.On("Get", mock.Anything, int64(404)).Return(nil, nil)
	tracker := NewOrderTracker(orders)

	for _, number := range []string{"", "SB", "abc", "SB-1", "0", "SB404"} {
		info, err := tracker.Track(context.Background(), number)
		require.NoError(t, err, number)
		assert.Nil(t, info, number)
	}
	orders.AssertNumberOfCalls(t, "Get", 1)
}

func TestOrderTracker_RepositoryError(t *testing.T) {
	orders := new(mocks.OrderRepository)
	orders.On("Get", mock.Anything, int64(5)).Return(nil, errors.New("db down"))

	_, err := NewOrderTracker(orders).Track(context.Background(), "SB5")
	assert.Error(t, err)
}
