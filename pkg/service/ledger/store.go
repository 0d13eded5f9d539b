package ledger

import (
	"sort"
	"sync"

	domainledger "github.com/paystream/ledger/pkg/domain/ledger"
)

// accountStore is the concurrency-safe client -> account mapping. The outer
// RWMutex guards the map itself; each entry carries its own mutex, so
// operations on different clients proceed fully in parallel while operations
// racing on the same client serialize on that client's lock.
type accountStore struct {
	mu       sync.RWMutex
	accounts map[domainledger.ClientID]*accountEntry
}

// accountEntry pairs one account with the lock that serializes every
// mutation of it. A dispute-family operation also mutates its referenced
// record's state under this lock, which is safe because the record is
// guaranteed to belong to the same client.
type accountEntry struct {
	mu   sync.Mutex
	acct *domainledger.Account
}

func newAccountStore() *accountStore {
	return &accountStore{accounts: make(map[domainledger.ClientID]*accountEntry)}
}

// getOrCreate returns the entry for client, creating a zeroed account the
// first time the client is referenced. The double-checked upgrade keeps the
// common path on the read lock.
func (s *accountStore) getOrCreate(client domainledger.ClientID) *accountEntry {
	s.mu.RLock()
	e, ok := s.accounts[client]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.accounts[client]; ok {
		return e
	}
	e = &accountEntry{acct: domainledger.NewAccount(client)}
	s.accounts[client] = e
	return e
}

// get returns the entry for client when it exists. Read-only callers.
func (s *accountStore) get(client domainledger.ClientID) (*accountEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.accounts[client]
	return e, ok
}

// snapshot copies every account, locking one entry at a time so each row is
// internally consistent (no torn available/held pair), and returns the rows
// ordered by client id. Concurrent writers may land between rows; the report
// is meant to run after ingestion completes.
func (s *accountStore) snapshot() []domainledger.Balance {
	s.mu.RLock()
	entries := make([]*accountEntry, 0, len(s.accounts))
	for _, e := range s.accounts {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	rows := make([]domainledger.Balance, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		rows = append(rows, domainledger.Balance{
			Client:    e.acct.Client,
			Available: e.acct.Available,
			Held:      e.acct.Held,
			Locked:    e.acct.Locked,
		})
		e.mu.Unlock()
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Client < rows[j].Client })
	return rows
}
