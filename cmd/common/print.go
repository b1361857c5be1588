package common

import (
	"fmt"
	"io"
	"strconv"

	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/models"
)

// Row pairs a record with its position in the ledger.
type Row struct {
	Index int
	Tx    models.Transaction
}

// PrintRows writes one tab separated line per row, position first.
func PrintRows(w io.Writer, rows []Row) error {
	for _, r := range rows {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			strconv.Itoa(r.Index),
			dateutils.ToISODate(r.Tx.Date),
			r.Tx.Amount.StringFixed(2),
			r.Tx.Category,
			r.Tx.Source,
			r.Tx.Description,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// PrintTransaction writes a one-line description of tx.
func PrintTransaction(w io.Writer, prefix string, tx models.Transaction) {
	fmt.Fprintf(w, "%s %s %s %s [%s]\n", prefix, dateutils.ToISODate(tx.Date), tx.Amount.StringFixed(2), tx.Description, tx.Category)
}
