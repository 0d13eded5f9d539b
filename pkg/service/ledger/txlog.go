package ledger

import (
	"sync"

	domainledger "github.com/paystream/ledger/pkg/domain/ledger"
)

// txLog is the concurrency-safe transaction id -> record mapping. The mutex
// guards the map; a record's identity fields (client, kind, amount) are
// immutable after insert, and its dispute state is mutated only while holding
// the owning client's account lock.
type txLog struct {
	mu      sync.RWMutex
	records map[domainledger.TxID]*domainledger.Record
}

func newTxLog() *txLog {
	return &txLog{records: make(map[domainledger.TxID]*domainledger.Record)}
}

// get returns the record for tx when one was applied.
func (l *txLog) get(tx domainledger.TxID) (*domainledger.Record, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	rec, ok := l.records[tx]
	return rec, ok
}

// insert stores rec under tx, atomically rejecting a reused id so the same
// id racing in from two workers can never both apply.
func (l *txLog) insert(tx domainledger.TxID, rec *domainledger.Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.records[tx]; exists {
		return domainledger.ErrDuplicateTransaction
	}
	l.records[tx] = rec
	return nil
}

// len reports the number of recorded entries.
func (l *txLog) len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}
