// Package report renders a ledger snapshot as the final balance report.
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	domainledger "github.com/paystream/ledger/pkg/domain/ledger"
)

// Write emits one CSV line per client with fields
// client,available,held,total,locked, amounts rendered with exactly four
// fractional digits. Rows keep the order of the snapshot (client id
// ascending).
func Write(w io.Writer, rows []domainledger.Balance) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, b := range rows {
		record := []string{
			strconv.FormatUint(uint64(b.Client), 10),
			b.Available.String(),
			b.Held.String(),
			b.Total().String(),
			strconv.FormatBool(b.Locked),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
