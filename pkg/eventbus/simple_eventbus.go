package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/paystream/ledger/pkg/domain/ledger"
)

// SimpleBus is a synchronous in-memory Bus. Handlers run on the publishing
// goroutine, so a handler observing a rejection sees it before the next
// transaction of the same worker is applied.
type SimpleBus struct {
	handlers map[string][]func(context.Context, ledger.Event)
	mu       sync.RWMutex
}

// NewSimpleBus returns an empty bus.
func NewSimpleBus() *SimpleBus {
	return &SimpleBus{handlers: make(map[string][]func(context.Context, ledger.Event))}
}

// Publish delivers event to every handler subscribed to its type.
func (b *SimpleBus) Publish(ctx context.Context, event ledger.Event) error {
	slog.Debug("eventbus publish", "event_type", event.Type())
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, handler := range b.handlers[event.Type()] {
		handler(ctx, event)
	}
	return nil
}

// Subscribe registers handler for all future events of eventType.
func (b *SimpleBus) Subscribe(eventType string, handler func(context.Context, ledger.Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
