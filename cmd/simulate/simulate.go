// Package simulate implements the simulate command.
package simulate

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/ledger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cmd represents the simulate command
var Cmd = NewCommand()

// NewCommand builds the simulate command.
func NewCommand() *cobra.Command {
	var (
		from, to    string
		categories  []string
		cutPct      int
		goal, saved string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Estimate savings from cutting spending categories",
		Long: `Estimate how much cutting a percentage of the real spending of some
categories would save per month and per year. With --goal the number of months
needed to reach it, starting from --saved, is shown too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(categories) == 0 {
				return errors.New("at least one --category is required")
			}
			start, end, err := common.ParseWindow(from, to)
			if err != nil {
				return err
			}
			dr, err := dateutils.NewDateRange(start, end)
			if err != nil {
				return err
			}
			goalAmount, err := parseMoney("goal", goal)
			if err != nil {
				return err
			}
			savedAmount, err := parseMoney("saved", saved)
			if err != nil {
				return err
			}

			svc, err := root.GetService()
			if err != nil {
				return err
			}
			sim, ok, err := svc.SimulateSavings(cmd.Context(), ledger.Filter{Range: dr}, categories, cutPct, goalAmount, savedAmount)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(w, "Nenhum gasto real para simular.")
				return nil
			}
			fmt.Fprintf(w, "Economia mensal: %s\n", sim.Monthly.StringFixed(2))
			fmt.Fprintf(w, "Economia anual: %s\n", sim.Yearly.StringFixed(2))
			if sim.HasGoal {
				fmt.Fprintf(w, "Meses até a meta: %s\n", sim.MonthsToGoal.StringFixed(1))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last day to include (YYYY-MM-DD)")
	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "Categories to cut")
	cmd.Flags().IntVarP(&cutPct, "pct", "p", 10, "Percentage to cut (0-100)")
	cmd.Flags().StringVar(&goal, "goal", "", "Savings goal")
	cmd.Flags().StringVar(&saved, "saved", "", "Amount already saved")
	return cmd
}

func parseMoney(name, value string) (decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(value), ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	return d, nil
}
