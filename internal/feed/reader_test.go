package feed_test

import (
	"io"
	"strings"
	"testing"

	"github.com/paystream/ledger/internal/feed"
	domainledger "github.com/paystream/ledger/pkg/domain/ledger"
	"github.com/paystream/ledger/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, input string) ([]domainledger.Transaction, []error) {
	t.Helper()
	r := feed.NewReader(strings.NewReader(input))
	var txs []domainledger.Transaction
	var errs []error
	for {
		tx, err := r.Read()
		if err == io.EOF {
			return txs, errs
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		txs = append(txs, tx)
	}
}

func TestReadWellFormedFeed(t *testing.T) {
	t.Parallel()
	input := "type,client,tx,amount\n" +
		"deposit,1,1,5.0\n" +
		"withdrawal, 1, 2, 3.0000\n" + // whitespace is trimmed
		"dispute,1,1\n" + // three-column dispute row
		"resolve,1,1,\n" + // four columns with empty amount
		"chargeback,2,9\n"

	txs, errs := readAll(t, input)
	require.Empty(t, errs)
	require.Len(t, txs, 5)

	assert.Equal(t, domainledger.KindDeposit, txs[0].Kind)
	assert.Equal(t, domainledger.ClientID(1), txs[0].Client)
	assert.Equal(t, domainledger.TxID(1), txs[0].Tx)
	assert.True(t, txs[0].Amount.Equals(money.FromUnits(50000)))

	assert.Equal(t, domainledger.KindWithdrawal, txs[1].Kind)
	assert.True(t, txs[1].Amount.Equals(money.FromUnits(30000)))

	assert.Equal(t, domainledger.KindDispute, txs[2].Kind)
	assert.True(t, txs[2].Amount.IsZero())

	assert.Equal(t, domainledger.KindResolve, txs[3].Kind)
	assert.Equal(t, domainledger.KindChargeback, txs[4].Kind)
	assert.Equal(t, domainledger.ClientID(2), txs[4].Client)
}

func TestReadWithoutHeader(t *testing.T) {
	t.Parallel()
	txs, errs := readAll(t, "deposit,1,1,5.0\n")
	require.Empty(t, errs)
	require.Len(t, txs, 1)
	assert.Equal(t, domainledger.KindDeposit, txs[0].Kind)
}

func TestSyntaxErrorsAreLocalToTheirRow(t *testing.T) {
	t.Parallel()
	input := "type,client,tx,amount\n" +
		"transfer,1,1,5.0\n" + // unknown kind
		"deposit,70000,2,5.0\n" + // client outside the 16-bit domain
		"deposit,1,99999999999,5.0\n" + // tx outside the 32-bit domain
		"deposit,1,3\n" + // entry without an amount
		"dispute,1,3,4.0\n" + // dispute-family row with an amount
		"deposit,x,4,5.0\n" + // non-numeric client
		"deposit,1,5,5.0\n" // valid row after all the broken ones

	txs, errs := readAll(t, input)
	assert.Len(t, errs, 6)
	for _, err := range errs {
		assert.ErrorIs(t, err, feed.ErrSyntax)
	}
	require.Len(t, txs, 1)
	assert.Equal(t, domainledger.TxID(5), txs[0].Tx)
}

func TestPrecisionRejectedAtTheBoundary(t *testing.T) {
	t.Parallel()
	txs, errs := readAll(t, "deposit,1,1,1.00001\n")
	assert.Empty(t, txs)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], money.ErrPrecision)
}
