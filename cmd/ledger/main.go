// Command ledger streams a CSV transaction feed through the ledger and prints
// the final balance report to stdout.
//
// Usage:
//
//	ledger <transactions.csv>
//
// Rejected transactions are reported on stderr and never abort ingestion; the
// LEDGER_INGEST_WORKERS environment variable controls how many goroutines
// apply transactions concurrently.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	log "github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/paystream/ledger/internal/feed"
	"github.com/paystream/ledger/internal/report"
	"github.com/paystream/ledger/pkg/config"
	domainledger "github.com/paystream/ledger/pkg/domain/ledger"
	"github.com/paystream/ledger/pkg/eventbus"
	"github.com/paystream/ledger/pkg/money"
	ledgersvc "github.com/paystream/ledger/pkg/service/ledger"
)

func main() {
	if len(os.Args) != 2 {
		color.New(color.FgYellow).Fprintf(os.Stderr, "usage: %s <transactions.csv>\n", os.Args[0])
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(path string, out io.Writer) error {
	cfg, err := config.Load(slog.Default())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := setupLogger(&cfg.Log).With("run_id", uuid.NewString())

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open feed: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var applied, rejected atomic.Int64
	bus := eventbus.NewSimpleBus()
	bus.Subscribe(domainledger.EventTypeTransactionApplied, func(_ context.Context, _ domainledger.Event) {
		applied.Add(1)
	})
	bus.Subscribe(domainledger.EventTypeTransactionRejected, func(_ context.Context, e domainledger.Event) {
		rejected.Add(1)
		if ev, ok := e.(domainledger.TransactionRejected); ok {
			logger.Warn("transaction rejected",
				"kind", ev.Tx.Kind,
				"tx", ev.Tx.Tx,
				"client", ev.Tx.Client,
				"reason", ev.Reason,
			)
		}
	})
	bus.Subscribe(domainledger.EventTypeAccountLocked, func(_ context.Context, e domainledger.Event) {
		if ev, ok := e.(domainledger.AccountLocked); ok {
			logger.Info("account locked by chargeback", "client", ev.Client, "tx", ev.Tx)
		}
	})

	svc := ledgersvc.NewService(logger, bus)

	logger.Info("ingestion started", "feed", path, "workers", cfg.Ingest.Workers)
	if err := ingest(context.Background(), logger, cfg.Ingest, svc, f); err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}
	logger.Info("ingestion complete",
		"applied", applied.Load(),
		"rejected", rejected.Load(),
		"recorded", svc.RecordedTransactions(),
	)

	return report.Write(out, svc.Snapshot())
}

// ingest streams the feed through a pool of ledger workers. Broken rows are
// logged and skipped, rejections surface as bus events; only an I/O failure
// aborts the run.
func ingest(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.Ingest,
	svc *ledgersvc.Service,
	r io.Reader,
) error {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	buffer := cfg.Buffer
	if buffer < 0 {
		buffer = 0
	}

	records := make(chan domainledger.Transaction, buffer)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(records)
		reader := feed.NewReader(r)
		for {
			tx, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if errors.Is(err, feed.ErrSyntax) ||
				errors.Is(err, money.ErrPrecision) ||
				errors.Is(err, money.ErrOverflow) {
				logger.Warn("skipping malformed row", "error", err)
				continue
			}
			if err != nil {
				return err
			}
			select {
			case records <- tx:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for tx := range records {
				// Rejections already surfaced as events; they never stop the feed.
				_ = svc.Apply(ctx, tx)
			}
			return nil
		})
	}

	return g.Wait()
}
