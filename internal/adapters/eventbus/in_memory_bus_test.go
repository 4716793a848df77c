package eventbus

import (
	"ShopBot/internal/core/domain"
	"ShopBot/internal/core/ports"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus() *InMemoryEventBus {
	nopLogger := zerolog.Nop()
	return NewInMemoryEventBus(&nopLogger)
}

func drain(t *testing.T, bus *InMemoryEventBus) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, bus.Drain(ctx))
}

func TestBus_DeliversToEverySubscriber(t *testing.T) {
	// 1. Setup
	bus := newTestBus()
	var calls atomic.Int32
	var got sync.Map
	for i := 0; i < 3; i++ {
		bus.Subscribe("topic", func(_ context.Context, e ports.Event) error {
			calls.Add(1)
			got.Store(e.Topic, e.Data)
			return nil
		})
	}
	bus.Subscribe("other", func(context.Context, ports.Event) error {
		t.Error("wrong topic delivered")
		return nil
	})

	// 2. Run
	require.NoError(t, bus.Publish(context.Background(), "topic", 42))
	drain(t, bus)

	// 3. Verify
	assert.Equal(t, int32(3), calls.Load())
	data, _ := got.Load("topic")
	assert.Equal(t, 42, data)
}

func TestBus_NoSubscribersIsFine(t *testing.T) {
	bus := newTestBus()
	assert.NoError(t, bus.Publish(context.Background(), "nobody", nil))
	drain(t, bus)
}

func TestBus_HandlerFailuresAreContained(t *testing.T) {
	bus := newTestBus()
	var healthy atomic.Bool
	bus.Subscribe("topic", func(context.Context, ports.Event) error { panic("boom") })
	bus.Subscribe("topic", func(context.Context, ports.Event) error { return errors.New("failed") })
	bus.Subscribe("topic", func(context.Context, ports.Event) error {
		healthy.Store(true)
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), "topic", nil))
	drain(t, bus)
	assert.True(t, healthy.Load())
}

func TestBus_HandlerOutlivesPublisherContext(t *testing.T) {
	bus := newTestBus()
	var ctxErr atomic.Value
	bus.Subscribe("topic", func(ctx context.Context, _ ports.Event) error {
		ctxErr.Store(ctx.Err() == nil)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, bus.Publish(ctx, "topic", nil))
	cancel()
	drain(t, bus)
	assert.Equal(t, true, ctxErr.Load())
}

func TestBus_DrainHonorsContext(t *testing.T) {
	bus := newTestBus()
	release := make(chan struct{})
	bus.Subscribe("slow", func(context.Context, ports.Event) error {
		<-release
		return nil
	})
	require.NoError(t, bus.Publish(context.Background(), "slow", nil))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, bus.Drain(ctx), context.DeadlineExceeded)

	close(release)
	drain(t, bus)
}

func TestHooks_PublishTypedPayloads(t *testing.T) {
	// 1. Setup
	bus := newTestBus()
	placed := make(chan domain.OrderPlaced, 1)
	registered := make(chan *domain.User, 1)
	bus.Subscribe(ports.TopicOrderCreated, func(_ context.Context, e ports.Event) error {
		placed <- e.Data.(domain.OrderPlaced)
		return nil
	})
	bus.Subscribe(ports.TopicUserRegistered, func(_ context.Context, e ports.Event) error {
		registered <- e.Data.(*domain.User)
		return nil
	})
	hooks := NewHooks(bus)

	user := &domain.User{TelegramID: 5005, Name: "Aziz"}
	order := &domain.Order{ID: 12, Total: 2750}

	// 2. Run
	require.NoError(t, hooks.OrderCreated(context.Background(), order, user))
	require.NoError(t, hooks.UserRegistered(context.Background(), user))
	drain(t, bus)

	// 3. Verify
	got := <-placed
	assert.Same(t, order, got.Order)
	assert.Same(t, user, got.Customer)
	assert.Same(t, user, <-registered)
}
