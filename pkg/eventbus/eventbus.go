// Package eventbus provides in-memory publish/subscribe for ledger domain
// events. The ledger publishes applied/rejected/locked events and callers
// decide what to do with them.
package eventbus

import (
	"context"

	"github.com/paystream/ledger/pkg/domain/ledger"
)

// Bus defines the contract for publishing and subscribing to domain events.
type Bus interface {
	Publish(ctx context.Context, event ledger.Event) error
	Subscribe(eventType string, handler func(context.Context, ledger.Event))
}
