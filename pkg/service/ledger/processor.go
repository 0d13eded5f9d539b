package ledger

import (
	"fmt"

	domainledger "github.com/paystream/ledger/pkg/domain/ledger"
	"github.com/paystream/ledger/pkg/money"
)

// processor applies one transaction at a time against the account store and
// the transaction log. It holds no state of its own.
//
// Every branch follows the same shape: acquire the single affected client's
// lock, validate every precondition, compute the new balances into locals,
// and only then commit. A rejection therefore always leaves both stores in
// their pre-call state, and a commit is never partial.
type processor struct {
	accounts *accountStore
	txs      *txLog
}

func newProcessor() *processor {
	return &processor{
		accounts: newAccountStore(),
		txs:      newTxLog(),
	}
}

func (p *processor) apply(tx domainledger.Transaction) error {
	switch tx.Kind {
	case domainledger.KindDeposit, domainledger.KindWithdrawal:
		return p.applyEntry(tx)
	case domainledger.KindDispute, domainledger.KindResolve, domainledger.KindChargeback:
		return p.applyDisputeFamily(tx)
	default:
		return fmt.Errorf("%w: %q", domainledger.ErrUnknownKind, tx.Kind)
	}
}

// applyEntry handles deposit and withdrawal: the two kinds that mint a new
// ledger record.
func (p *processor) applyEntry(tx domainledger.Transaction) error {
	e := p.accounts.getOrCreate(tx.Client)
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.acct.Locked {
		return domainledger.ErrAccountLocked
	}

	var newAvailable money.Amount
	switch tx.Kind {
	case domainledger.KindDeposit:
		if err := e.acct.ValidateDeposit(tx.Amount); err != nil {
			return err
		}
		sum, err := e.acct.Available.Add(tx.Amount)
		if err != nil {
			return err
		}
		newAvailable = sum
	case domainledger.KindWithdrawal:
		if err := e.acct.ValidateWithdraw(tx.Amount); err != nil {
			return err
		}
		diff, err := e.acct.Available.Sub(tx.Amount)
		if err != nil {
			return err
		}
		newAvailable = diff
	}

	// Reserving the id is the last fallible step; the balance write below
	// cannot fail, so a duplicate rejection never leaves a half-applied entry.
	rec := domainledger.NewRecord(tx.Client, tx.Kind, tx.Amount)
	if err := p.txs.insert(tx.Tx, rec); err != nil {
		return err
	}

	e.acct.Available = newAvailable
	return nil
}

// applyDisputeFamily handles dispute, resolve and chargeback: the kinds that
// reference an existing record instead of minting one.
//
// The referenced record must belong to the submitting client, so holding that
// one client's lock serializes every reader and writer of both the account
// and the record's dispute state.
func (p *processor) applyDisputeFamily(tx domainledger.Transaction) error {
	e := p.accounts.getOrCreate(tx.Client)
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.acct.Locked {
		return domainledger.ErrAccountLocked
	}

	rec, ok := p.txs.get(tx.Tx)
	if !ok {
		return domainledger.ErrUnknownTransaction
	}

	switch tx.Kind {
	case domainledger.KindDispute:
		return p.dispute(e.acct, rec)
	case domainledger.KindResolve:
		return p.resolve(e.acct, rec)
	default:
		return p.chargeback(e.acct, rec)
	}
}

// dispute freezes the referenced deposit's amount: available -= amount,
// held += amount, record moves to the disputed state. A deposit whose funds
// were already withdrawn is rejected rather than driving available negative.
func (p *processor) dispute(acct *domainledger.Account, rec *domainledger.Record) error {
	if err := rec.ValidateDispute(acct.Client); err != nil {
		return err
	}
	if err := acct.ValidateHold(rec.Amount); err != nil {
		return err
	}

	newAvailable, err := acct.Available.Sub(rec.Amount)
	if err != nil {
		return err
	}
	newHeld, err := acct.Held.Add(rec.Amount)
	if err != nil {
		return err
	}

	acct.Available = newAvailable
	acct.Held = newHeld
	rec.State = domainledger.DisputeOpen
	return nil
}

// resolve releases an open dispute back to available funds; the record's
// resolved state is terminal.
func (p *processor) resolve(acct *domainledger.Account, rec *domainledger.Record) error {
	if err := rec.ValidateSettle(acct.Client); err != nil {
		return err
	}

	// Held accumulated exactly the amounts of the open disputes, so it always
	// covers the one being released.
	newHeld, err := acct.Held.Sub(rec.Amount)
	if err != nil {
		return err
	}
	newAvailable, err := acct.Available.Add(rec.Amount)
	if err != nil {
		return err
	}

	acct.Held = newHeld
	acct.Available = newAvailable
	rec.State = domainledger.DisputeResolved
	return nil
}

// chargeback withdraws the held funds and freezes the account; both the
// record's charged-back state and the account lock are terminal.
func (p *processor) chargeback(acct *domainledger.Account, rec *domainledger.Record) error {
	if err := rec.ValidateSettle(acct.Client); err != nil {
		return err
	}

	newHeld, err := acct.Held.Sub(rec.Amount)
	if err != nil {
		return err
	}

	acct.Held = newHeld
	acct.Locked = true
	rec.State = domainledger.DisputeChargedBack
	return nil
}
