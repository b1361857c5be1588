// Package sync implements the sync command.
package sync

import (
	"errors"
	"fmt"
	"io"
	"time"

	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/banking"
	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/store"
	"fjacquet/fintrack/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the sync command
var Cmd = NewCommand()

// NewCommand builds the sync command.
func NewCommand() *cobra.Command {
	var (
		from, to string
		history  bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Import new transactions from the configured bank exports",
		Long: `Import transactions from the bank exports of every configured item.
Records already in the ledger, by external id or as the second side of a
movement between two banks, are skipped. Without --from the last 30 days
(sync.default_days) are imported.

With --history the recorded sync runs are listed instead. Only the sqlite
backend keeps them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if history {
				if from != "" || to != "" {
					return errors.New("--history cannot be combined with --from or --to")
				}
				return printHistory(cmd)
			}

			start, end, err := common.ParseWindow(from, to)
			if err != nil {
				return err
			}
			svc, err := root.GetService()
			if err != nil {
				return err
			}

			result, err := svc.Sync(cmd.Context(), banking.Window{From: start, To: end})
			if errors.Is(err, banking.ErrNoSyncItems) {
				return errors.New("no sync items configured: set sync.items or PLUGGY_ITEM_ID_NUBANK / PLUGGY_ITEM_ID_SANTANDER")
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d transações recebidas, %d novas, %d duplicadas\n",
				result.Fetched, result.Added, result.Deduplicated)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day to import (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last day to import (YYYY-MM-DD), defaults to today")
	cmd.Flags().BoolVar(&history, "history", false, "List recorded sync runs instead of syncing")
	return cmd
}

func printHistory(cmd *cobra.Command) error {
	svc, err := root.GetService()
	if err != nil {
		return err
	}
	runs, err := svc.SyncHistory(cmd.Context())
	if errors.Is(err, validation.ErrNoSyncHistory) {
		return errors.New("sync history is only kept by the sqlite backend (--backend sqlite)")
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(w, "Nenhuma sincronização registrada.")
		return nil
	}
	for _, run := range runs {
		printRun(w, run)
	}
	return nil
}

func printRun(w io.Writer, run store.SyncRun) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%d recebidas\t%d novas\t%d duplicadas\t%s\n",
		run.StartedAt.UTC().Format("2006-01-02 15:04"),
		windowSide(run.From), windowSide(run.To),
		run.Fetched, run.Added, run.Deduplicated, run.RunID)
}

func windowSide(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return dateutils.ToISODate(t)
}
