package ledger

// Event is the marker contract for ledger domain events.
type Event interface {
	Type() string
}

// Event type tags used for subscription routing.
const (
	EventTypeTransactionApplied  = "transaction.applied"
	EventTypeTransactionRejected = "transaction.rejected"
	EventTypeAccountLocked       = "account.locked"
)

// TransactionApplied is published after a transaction mutated the ledger.
type TransactionApplied struct {
	Tx Transaction
}

// Type returns the event's subscription tag.
func (TransactionApplied) Type() string { return EventTypeTransactionApplied }

// TransactionRejected is published when a transaction is refused. Reason is
// one of the rejection sentinels; the subscriber decides whether to log,
// count or drop it.
type TransactionRejected struct {
	Tx     Transaction
	Reason error
}

// Type returns the event's subscription tag.
func (TransactionRejected) Type() string { return EventTypeTransactionRejected }

// AccountLocked is published when a chargeback freezes an account.
type AccountLocked struct {
	Client ClientID
	Tx     TxID
}

// Type returns the event's subscription tag.
func (AccountLocked) Type() string { return EventTypeAccountLocked }
