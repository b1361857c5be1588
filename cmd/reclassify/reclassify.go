// Package reclassify implements the reclassify command.
package reclassify

import (
	"fmt"

	"fjacquet/fintrack/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the reclassify command
var Cmd = NewCommand()

// NewCommand builds the reclassify command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reclassify",
		Short: "Reapply the keyword rules to the whole ledger",
		Long: `Reapply the keyword rules to every stored transaction.
Internal movements such as transfers, card payments and investments keep their
category unless an exact rule matches their description.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.GetService()
			if err != nil {
				return err
			}
			stats, err := svc.ReclassifyAll(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d transações analisadas, %d alteradas (%d exatas, %d por palavra-chave, %d protegidas)\n",
				stats.Total, stats.Changed, stats.Exact, stats.Keyword, stats.Protected)
			return nil
		},
	}
}
