package ledger_test

import (
	"math"
	"testing"

	domainledger "github.com/paystream/ledger/pkg/domain/ledger"
	"github.com/paystream/ledger/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountStartsZeroed(t *testing.T) {
	t.Parallel()
	acct := domainledger.NewAccount(7)
	assert.Equal(t, domainledger.ClientID(7), acct.Client)
	assert.True(t, acct.Available.IsZero())
	assert.True(t, acct.Held.IsZero())
	assert.False(t, acct.Locked)
}

func TestValidateDeposit(t *testing.T) {
	t.Parallel()
	acct := domainledger.NewAccount(1)

	t.Run("positive amount", func(t *testing.T) {
		assert.NoError(t, acct.ValidateDeposit(money.FromUnits(10000)))
	})

	t.Run("zero amount", func(t *testing.T) {
		err := acct.ValidateDeposit(money.Zero())
		assert.ErrorIs(t, err, domainledger.ErrInvalidAmount)
	})

	t.Run("negative amount", func(t *testing.T) {
		err := acct.ValidateDeposit(money.FromUnits(-1))
		assert.ErrorIs(t, err, domainledger.ErrInvalidAmount)
	})

	t.Run("running total overflow", func(t *testing.T) {
		full := domainledger.NewAccount(2)
		full.Available = money.FromUnits(math.MaxInt64)
		err := full.ValidateDeposit(money.FromUnits(1))
		assert.ErrorIs(t, err, money.ErrOverflow)
	})
}

func TestValidateWithdraw(t *testing.T) {
	t.Parallel()
	acct := domainledger.NewAccount(1)
	acct.Available = money.FromUnits(50000) // 5.0000

	t.Run("covered amount", func(t *testing.T) {
		assert.NoError(t, acct.ValidateWithdraw(money.FromUnits(50000)))
	})

	t.Run("insufficient funds", func(t *testing.T) {
		err := acct.ValidateWithdraw(money.FromUnits(50001))
		assert.ErrorIs(t, err, domainledger.ErrInsufficientFunds)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		err := acct.ValidateWithdraw(money.Zero())
		assert.ErrorIs(t, err, domainledger.ErrInvalidAmount)
	})
}

func TestValidateHold(t *testing.T) {
	t.Parallel()
	acct := domainledger.NewAccount(1)
	acct.Available = money.FromUnits(20000)

	assert.NoError(t, acct.ValidateHold(money.FromUnits(20000)))

	// A deposit already spent by later withdrawals cannot be held back.
	err := acct.ValidateHold(money.FromUnits(20001))
	assert.ErrorIs(t, err, domainledger.ErrInsufficientFunds)
}

func TestBalanceTotal(t *testing.T) {
	t.Parallel()
	b := domainledger.Balance{
		Client:    3,
		Available: money.FromUnits(15000),
		Held:      money.FromUnits(5000),
	}
	require.Equal(t, int64(20000), b.Total().Units())
	assert.Equal(t, "2.0000", b.Total().String())
}
