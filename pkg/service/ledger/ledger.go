// Package ledger provides the transaction ledger service: per-client balances
// driven by an ordered stream of deposit, withdrawal, dispute, resolve and
// chargeback commands.
//
// The service composes the account store, the transaction log and the
// processor behind two entry points. Apply is safe for concurrent use from
// any number of goroutines: operations on different clients run in parallel,
// operations on the same client serialize on that client's lock, and the
// ordering between racing same-client calls is whatever order they acquire
// it. Callers that must preserve feed order submit a client's transactions
// sequentially.
package ledger

import (
	"context"
	"log/slog"

	domainledger "github.com/paystream/ledger/pkg/domain/ledger"
	"github.com/paystream/ledger/pkg/eventbus"
)

// Service is the sole mutating entry point to the ledger.
type Service struct {
	proc   *processor
	bus    eventbus.Bus
	logger *slog.Logger
}

// NewService creates a ledger Service. bus may be nil when no subscriber
// cares about transaction events.
func NewService(logger *slog.Logger, bus eventbus.Bus) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		proc:   newProcessor(),
		bus:    bus,
		logger: logger,
	}
}

// Apply validates tx and applies its state transition. A non-nil error is one
// of the domain rejection sentinels (or a pkg/money sentinel for overflow)
// and guarantees the ledger was not mutated; rejections never abort ingestion
// of subsequent transactions.
func (s *Service) Apply(ctx context.Context, tx domainledger.Transaction) error {
	if err := s.proc.apply(tx); err != nil {
		s.logger.Debug("transaction rejected",
			"kind", tx.Kind,
			"tx", tx.Tx,
			"client", tx.Client,
			"reason", err,
		)
		s.publish(ctx, domainledger.TransactionRejected{Tx: tx, Reason: err})
		return err
	}

	s.publish(ctx, domainledger.TransactionApplied{Tx: tx})
	if tx.Kind == domainledger.KindChargeback {
		s.publish(ctx, domainledger.AccountLocked{Client: tx.Client, Tx: tx.Tx})
	}
	return nil
}

// Snapshot returns one row per known client, ordered by client id ascending.
// Each row is internally consistent; run it after ingestion settles for a
// stable report.
func (s *Service) Snapshot() []domainledger.Balance {
	return s.proc.accounts.snapshot()
}

// Balance returns the current row for one client, when the client has been
// seen. Read-only.
func (s *Service) Balance(client domainledger.ClientID) (domainledger.Balance, bool) {
	e, ok := s.proc.accounts.get(client)
	if !ok {
		return domainledger.Balance{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return domainledger.Balance{
		Client:    e.acct.Client,
		Available: e.acct.Available,
		Held:      e.acct.Held,
		Locked:    e.acct.Locked,
	}, true
}

// RecordedTransactions reports how many deposit and withdrawal records the
// ledger holds.
func (s *Service) RecordedTransactions() int {
	return s.proc.txs.len()
}

func (s *Service) publish(ctx context.Context, event domainledger.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", "event_type", event.Type(), "error", err)
	}
}
