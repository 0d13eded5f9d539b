package ledger

import "errors"

// Rejection reasons surfaced by the ledger. Every failed apply carries exactly
// one of these (or a pkg/money sentinel for precision/overflow at the amount
// boundary) and leaves both stores untouched.
var (
	// ErrInvalidAmount is returned when a deposit or withdrawal amount is not
	// strictly positive.
	ErrInvalidAmount = errors.New("transaction amount must be positive")

	// ErrInsufficientFunds is returned when available funds cannot cover a
	// withdrawal, or a disputed deposit was already spent.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrDuplicateTransaction is returned when a deposit or withdrawal reuses
	// an already recorded transaction id.
	ErrDuplicateTransaction = errors.New("transaction id already used")

	// ErrUnknownTransaction is returned when a dispute-family operation
	// references a transaction id that was never recorded.
	ErrUnknownTransaction = errors.New("referenced transaction not found")

	// ErrClientMismatch is returned when a dispute-family operation names a
	// client other than the referenced record's owner.
	ErrClientMismatch = errors.New("referenced transaction belongs to a different client")

	// ErrInvalidDisputeTarget is returned when the referenced record's kind or
	// dispute state does not admit the requested transition.
	ErrInvalidDisputeTarget = errors.New("referenced transaction cannot be disputed in its current state")

	// ErrAccountLocked is returned for every operation against an account that
	// suffered a chargeback.
	ErrAccountLocked = errors.New("account is locked")

	// ErrUnknownKind is returned when a transaction carries an unrecognized
	// kind tag. The feed boundary filters these, so the ledger only sees one
	// if called directly with a malformed command.
	ErrUnknownKind = errors.New("unknown transaction kind")
)
