// Package add implements the add command.
package add

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/ledger"
	"fjacquet/fintrack/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the add command
var Cmd = NewCommand()

type options struct {
	date        string
	description string
	amount      string
	direction   string
	category    string
	source      string
}

// NewCommand builds the add command.
func NewCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction by hand",
		Long: `Add a transaction that no bank export carries, such as a cash expense.
The amount is entered unsigned; --type decides its sign. Without --category the
keyword rules pick one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := opts.entry(time.Now())
			if err != nil {
				return err
			}
			svc, err := root.GetService()
			if err != nil {
				return err
			}
			tx, err := svc.AddManual(cmd.Context(), entry)
			if err != nil {
				return err
			}
			common.PrintTransaction(cmd.OutOrStdout(), "Adicionada:", tx)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.date, "date", "", "Transaction day (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Description")
	cmd.Flags().StringVarP(&opts.amount, "amount", "a", "", "Unsigned amount, comma or dot decimals")
	cmd.Flags().StringVarP(&opts.direction, "type", "t", "out", "Direction: out or in")
	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "Category, classified from the description when empty")
	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "Account or institution label")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func (o options) entry(now time.Time) (ledger.ManualEntry, error) {
	if strings.TrimSpace(o.description) == "" {
		return ledger.ManualEntry{}, errors.New("a description is required")
	}
	direction, ok := models.ParseTransactionType(o.direction)
	if !ok {
		return ledger.ManualEntry{}, fmt.Errorf("invalid --type %q: use out or in", o.direction)
	}

	day, err := common.ParseOptionalDay("date", o.date)
	if err != nil {
		return ledger.ManualEntry{}, err
	}
	if day.IsZero() {
		day = now
	}

	tx, err := models.NewTransactionBuilder().
		WithDate(day).
		WithDescription(strings.TrimSpace(o.description)).
		WithAmountString(o.amount).
		Build()
	if err != nil {
		return ledger.ManualEntry{}, err
	}

	return ledger.ManualEntry{
		Date:        tx.Date,
		Description: tx.Description,
		Amount:      tx.Amount.Abs(),
		Direction:   direction,
		Category:    strings.TrimSpace(o.category),
		Source:      strings.TrimSpace(o.source),
	}, nil
}
