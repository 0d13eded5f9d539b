package ledger_test

import (
	"testing"

	domainledger "github.com/paystream/ledger/pkg/domain/ledger"
	"github.com/paystream/ledger/pkg/money"
	"github.com/stretchr/testify/assert"
)

func TestKindClassification(t *testing.T) {
	t.Parallel()
	assert.True(t, domainledger.KindDeposit.IsEntry())
	assert.True(t, domainledger.KindWithdrawal.IsEntry())
	assert.False(t, domainledger.KindDispute.IsEntry())

	assert.True(t, domainledger.KindDispute.IsDisputeFamily())
	assert.True(t, domainledger.KindResolve.IsDisputeFamily())
	assert.True(t, domainledger.KindChargeback.IsDisputeFamily())
	assert.False(t, domainledger.KindDeposit.IsDisputeFamily())
}

func TestValidateDispute(t *testing.T) {
	t.Parallel()

	t.Run("deposit in normal state is disputable", func(t *testing.T) {
		rec := domainledger.NewRecord(1, domainledger.KindDeposit, money.FromUnits(10000))
		assert.NoError(t, rec.ValidateDispute(1))
	})

	t.Run("wrong client", func(t *testing.T) {
		rec := domainledger.NewRecord(1, domainledger.KindDeposit, money.FromUnits(10000))
		assert.ErrorIs(t, rec.ValidateDispute(2), domainledger.ErrClientMismatch)
	})

	t.Run("withdrawal is never disputable", func(t *testing.T) {
		rec := domainledger.NewRecord(1, domainledger.KindWithdrawal, money.FromUnits(10000))
		assert.ErrorIs(t, rec.ValidateDispute(1), domainledger.ErrInvalidDisputeTarget)
	})

	t.Run("already disputed", func(t *testing.T) {
		rec := domainledger.NewRecord(1, domainledger.KindDeposit, money.FromUnits(10000))
		rec.State = domainledger.DisputeOpen
		assert.ErrorIs(t, rec.ValidateDispute(1), domainledger.ErrInvalidDisputeTarget)
	})

	t.Run("resolved is terminal", func(t *testing.T) {
		rec := domainledger.NewRecord(1, domainledger.KindDeposit, money.FromUnits(10000))
		rec.State = domainledger.DisputeResolved
		assert.ErrorIs(t, rec.ValidateDispute(1), domainledger.ErrInvalidDisputeTarget)
	})
}

func TestValidateSettle(t *testing.T) {
	t.Parallel()

	t.Run("open dispute settles", func(t *testing.T) {
		rec := domainledger.NewRecord(1, domainledger.KindDeposit, money.FromUnits(10000))
		rec.State = domainledger.DisputeOpen
		assert.NoError(t, rec.ValidateSettle(1))
	})

	t.Run("wrong client", func(t *testing.T) {
		rec := domainledger.NewRecord(1, domainledger.KindDeposit, money.FromUnits(10000))
		rec.State = domainledger.DisputeOpen
		assert.ErrorIs(t, rec.ValidateSettle(9), domainledger.ErrClientMismatch)
	})

	t.Run("undisputed record", func(t *testing.T) {
		rec := domainledger.NewRecord(1, domainledger.KindDeposit, money.FromUnits(10000))
		assert.ErrorIs(t, rec.ValidateSettle(1), domainledger.ErrInvalidDisputeTarget)
	})

	t.Run("charged back is terminal", func(t *testing.T) {
		rec := domainledger.NewRecord(1, domainledger.KindDeposit, money.FromUnits(10000))
		rec.State = domainledger.DisputeChargedBack
		assert.ErrorIs(t, rec.ValidateSettle(1), domainledger.ErrInvalidDisputeTarget)
	})
}
