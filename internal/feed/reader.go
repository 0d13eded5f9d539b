// Package feed parses the CSV transaction feed into structured ledger
// transactions.
//
// Each row is syntactically validated here — recognized kind tag, client id
// within the 16-bit domain, transaction id within the 32-bit domain, amount
// present exactly when the kind requires it — so the ledger never reparses
// text. Semantic validation (funds, dispute lifecycle) stays with the ledger.
package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	domainledger "github.com/paystream/ledger/pkg/domain/ledger"
	"github.com/paystream/ledger/pkg/money"
)

// ErrSyntax is returned for a row that is structurally broken: wrong column
// count, unknown kind tag, id out of domain, or a misplaced amount column.
var ErrSyntax = errors.New("malformed feed row")

// row mirrors one trimmed CSV line before conversion to a transaction.
type row struct {
	Kind   string `validate:"required,oneof=deposit withdrawal dispute resolve chargeback"`
	Client uint64 `validate:"lte=65535"`
	Tx     uint64 `validate:"lte=4294967295"`
	Amount string
}

// Reader consumes a transaction feed one record at a time. It is not safe for
// concurrent use; a single goroutine reads and fans records out to workers.
type Reader struct {
	csv       *csv.Reader
	validate  *validator.Validate
	sawHeader bool
}

// NewReader wraps r. Rows are whitespace-trimmed, a leading
// "type,client,tx,amount" header row is skipped when present, and
// dispute-family rows may omit the amount column entirely.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	// Dispute-family rows carry three columns, entries four.
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return &Reader{
		csv:      cr,
		validate: validator.New(),
	}
}

// Read returns the next transaction in the feed. It returns io.EOF at the end
// of the feed and ErrSyntax (wrapped with detail) for a broken row; a syntax
// error is local to its row, so the caller may skip it and keep reading.
func (r *Reader) Read() (domainledger.Transaction, error) {
	for {
		fields, err := r.csv.Read()
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return domainledger.Transaction{}, fmt.Errorf("%w: %v", ErrSyntax, err)
			}
			return domainledger.Transaction{}, err
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		if !r.sawHeader {
			r.sawHeader = true
			if len(fields) > 0 && strings.EqualFold(fields[0], "type") {
				continue
			}
		}

		return r.parse(fields)
	}
}

func (r *Reader) parse(fields []string) (domainledger.Transaction, error) {
	if len(fields) < 3 || len(fields) > 4 {
		return domainledger.Transaction{}, fmt.Errorf("%w: expected 3 or 4 columns, got %d", ErrSyntax, len(fields))
	}

	parsed := row{Kind: fields[0]}
	var err error
	if parsed.Client, err = strconv.ParseUint(fields[1], 10, 64); err != nil {
		return domainledger.Transaction{}, fmt.Errorf("%w: client %q: %v", ErrSyntax, fields[1], err)
	}
	if parsed.Tx, err = strconv.ParseUint(fields[2], 10, 64); err != nil {
		return domainledger.Transaction{}, fmt.Errorf("%w: tx %q: %v", ErrSyntax, fields[2], err)
	}
	if len(fields) == 4 {
		parsed.Amount = fields[3]
	}

	if err := r.validate.Struct(parsed); err != nil {
		return domainledger.Transaction{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	tx := domainledger.Transaction{
		Kind:   domainledger.Kind(parsed.Kind),
		Client: domainledger.ClientID(parsed.Client),
		Tx:     domainledger.TxID(parsed.Tx),
	}

	if tx.Kind.IsEntry() {
		if parsed.Amount == "" {
			return domainledger.Transaction{}, fmt.Errorf("%w: %s requires an amount", ErrSyntax, tx.Kind)
		}
		amount, err := money.Parse(parsed.Amount)
		if err != nil {
			// Precision and range violations keep their own sentinels; any
			// other failure is plain broken text.
			if errors.Is(err, money.ErrPrecision) || errors.Is(err, money.ErrOverflow) {
				return domainledger.Transaction{}, err
			}
			return domainledger.Transaction{}, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		tx.Amount = amount
		return tx, nil
	}

	if parsed.Amount != "" {
		return domainledger.Transaction{}, fmt.Errorf("%w: %s carries no amount", ErrSyntax, tx.Kind)
	}
	return tx, nil
}
