// Package summary implements the summary command.
package summary

import (
	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the summary command
var Cmd = NewCommand()

// NewCommand builds the summary command.
func NewCommand() *cobra.Command {
	var (
		flags  common.FilterFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize spending for a period",
		Long: `Summarize the selected transactions: spending indicators, real spending
per category, totals per source and detected subscriptions. --month selects
a whole calendar month.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := flags.Filter()
			if err != nil {
				return err
			}
			c, err := root.GetContainer()
			if err != nil {
				return err
			}

			s, err := c.GetService().Summary(cmd.Context(), f)
			if err != nil {
				return err
			}
			out, err := report.NewGenerator(c.GetLogger()).Generate(s, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	common.AddFilterFlags(cmd, &flags)
	common.AddMonthFlag(cmd, &flags)
	cmd.Flags().StringVarP(&format, "format", "f", report.FormatText, "Output format (text or json)")
	return cmd
}
