package ledger

import (
	"github.com/paystream/ledger/pkg/money"
)

// Account holds one client's balance state. It is created lazily, with all
// fields zero, the first time any transaction references the client, and is
// never deleted.
//
// Invariants:
//   - Available and Held are never negative.
//   - Once Locked is true (after a chargeback) every further operation on the
//     account is rejected.
//   - Available + Held always fits the amount range, so a balance row's total
//     can be derived without an overflow check.
//
// The struct itself is not synchronized; the account store serializes all
// access through a per-client lock.
type Account struct {
	Client    ClientID
	Available money.Amount
	Held      money.Amount
	Locked    bool
}

// NewAccount returns the zeroed account created on first reference.
func NewAccount(client ClientID) *Account {
	return &Account{Client: client}
}

// ValidateDeposit checks the invariants for crediting amount.
// Invariants enforced:
//   - Amount must be positive.
//   - The new running total (available + held + amount) must stay
//     representable; overflow is a rejection, never a wrap.
func (a *Account) ValidateDeposit(amount money.Amount) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	total, err := a.Available.Add(a.Held)
	if err != nil {
		return err
	}
	if _, err := total.Add(amount); err != nil {
		return err
	}
	return nil
}

// ValidateWithdraw checks the invariants for debiting amount.
// Invariants enforced:
//   - Amount must be positive.
//   - Available funds must cover the full amount; no negative balances.
func (a *Account) ValidateWithdraw(amount money.Amount) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if a.Available.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// ValidateHold checks that amount can move from available to held funds.
// A dispute whose deposit was already spent is rejected rather than driving
// available negative.
func (a *Account) ValidateHold(amount money.Amount) error {
	if a.Available.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// Balance is one row of a ledger snapshot: a consistent copy of a single
// account's state at some point during ingestion.
type Balance struct {
	Client    ClientID
	Available money.Amount
	Held      money.Amount
	Locked    bool
}

// Total returns available + held. The deposit validation keeps the running
// total inside the amount range, so the sum cannot overflow here.
func (b Balance) Total() money.Amount {
	return money.FromUnits(b.Available.Units() + b.Held.Units())
}
