package eventbus

import (
	"ShopBot/internal/core/ports"
	"context"
	"runtime/debug"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const handlerTimeout = 30 * time.Second

// InMemoryEventBus implements ports.EventBus with one goroutine per delivery.
type InMemoryEventBus struct {
	log         zerolog.Logger
	subscribers map[string][]ports.EventHandler
	mu          sync.RWMutex
	inflight    sync.WaitGroup
}

var _ ports.EventBus = (*InMemoryEventBus)(nil)

// NewInMemoryEventBus creates a new, empty event bus.
func NewInMemoryEventBus(baseLogger *zerolog.Logger) *InMemoryEventBus {
	return &InMemoryEventBus{
		log:         baseLogger.With().Str("component", "in_memory_bus").Logger(),
		subscribers: make(map[string][]ports.EventHandler),
	}
}

// Publish hands the event to every subscriber of topic and returns without
// waiting for them.
func (b *InMemoryEventBus) Publish(ctx context.Context, topic string, data interface{}) error {
	b.mu.RLock()
	handlers := b.subscribers[topic]
	b.mu.RUnlock()

	if len(handlers) == 0 {
		b.log.Debug().Str("topic", topic).Msg("Published event with no subscribers")
		return nil
	}

	event := ports.Event{Topic: topic, Data: data}
	for _, handler := range handlers {
		b.inflight.Add(1)
		go b.deliver(handler, event)
	}

	b.log.Debug().Str("topic", topic).Int("handlers", len(handlers)).Msg("Event published")
	return nil
}

func (b *InMemoryEventBus) deliver(h ports.EventHandler, event ports.Event) {
	defer b.inflight.Done()
	defer func() {
		if rec := recover(); rec != nil {
			b.log.Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("topic", event.Topic).
				Msg("Event handler panicked")
		}
	}()

	// Handlers outlive the publisher's request
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()
	if err := h(ctx, event); err != nil {
		b.log.Error().Err(err).Str("topic", event.Topic).Msg("Event handler failed")
	}
}

// Subscribe registers a handler for a specific topic.
func (b *InMemoryEventBus) Subscribe(topic string, handler ports.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[topic] = append(b.subscribers[topic], handler)
	b.log.Debug().Str("topic", topic).Msg("New handler subscribed to topic")
}

// Drain waits for in-flight deliveries or until ctx is done.
func (b *InMemoryEventBus) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		b.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
