// Package ledger defines the domain model for the transaction ledger: the
// inbound transaction commands, the stored ledger records with their dispute
// lifecycle, and the per-client account state.
//
// Invariants:
//   - Only deposit records may be disputed; withdrawn funds are never held.
//   - A record's dispute state only moves forward: normal -> disputed ->
//     (resolved | charged back), and both end states are terminal.
//   - available and held never go negative; total = available + held is
//     derived, never stored.
package ledger

import (
	"github.com/paystream/ledger/pkg/money"
)

// ClientID identifies an account holder. The feed guarantees the 16-bit
// unsigned domain.
type ClientID uint16

// TxID identifies a deposit or withdrawal record. Dispute-family operations
// reference an existing TxID rather than minting one.
type TxID uint32

// Kind is the operation tag carried by a transaction.
type Kind string

// Transaction kinds recognized by the ledger. Deposit and withdrawal create
// records; the dispute family operates on an existing record.
const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
	KindDispute    Kind = "dispute"
	KindResolve    Kind = "resolve"
	KindChargeback Kind = "chargeback"
)

// IsEntry reports whether the kind creates a new ledger record.
func (k Kind) IsEntry() bool {
	return k == KindDeposit || k == KindWithdrawal
}

// IsDisputeFamily reports whether the kind references an existing record.
func (k Kind) IsDisputeFamily() bool {
	return k == KindDispute || k == KindResolve || k == KindChargeback
}

// String returns the kind's feed tag.
func (k Kind) String() string { return string(k) }

// DisputeState tracks where a record sits in the dispute lifecycle.
type DisputeState string

// Dispute lifecycle states. DisputeResolved and DisputeChargedBack are
// terminal; a resolved record cannot be re-disputed.
const (
	DisputeNone        DisputeState = "normal"
	DisputeOpen        DisputeState = "disputed"
	DisputeResolved    DisputeState = "resolved"
	DisputeChargedBack DisputeState = "charged_back"
)

// String returns the state's report tag.
func (s DisputeState) String() string { return string(s) }

// Transaction is one inbound command from the feed, already syntactically
// validated by the boundary: the kind is one of the five recognized tags and
// Amount is present exactly when the kind requires it.
type Transaction struct {
	Kind   Kind
	Client ClientID
	Tx     TxID
	Amount money.Amount // zero for dispute-family kinds
}

// Record is the stored ledger entry for an applied deposit or withdrawal.
// Client, Kind and Amount are immutable once recorded; State is mutated only
// by dispute-family operations applied under the owning client's account lock.
type Record struct {
	Client ClientID
	Kind   Kind
	Amount money.Amount
	State  DisputeState
}

// NewRecord builds the record stored for a freshly applied entry.
func NewRecord(client ClientID, kind Kind, amount money.Amount) *Record {
	return &Record{
		Client: client,
		Kind:   kind,
		Amount: amount,
		State:  DisputeNone,
	}
}

// ValidateDispute checks that the record may enter a dispute opened by client.
// Invariants enforced:
//   - The record must belong to the disputing client.
//   - Only deposit records in the normal state are disputable.
func (r *Record) ValidateDispute(client ClientID) error {
	if r.Client != client {
		return ErrClientMismatch
	}
	if r.Kind != KindDeposit || r.State != DisputeNone {
		return ErrInvalidDisputeTarget
	}
	return nil
}

// ValidateSettle checks that the record's open dispute may be settled (by
// resolve or chargeback) on behalf of client.
func (r *Record) ValidateSettle(client ClientID) error {
	if r.Client != client {
		return ErrClientMismatch
	}
	if r.State != DisputeOpen {
		return ErrInvalidDisputeTarget
	}
	return nil
}
