// Package list implements the list command.
package list

import (
	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the list command
var Cmd = NewCommand()

// NewCommand builds the list command.
func NewCommand() *cobra.Command {
	var flags common.FilterFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored transactions with their ledger positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := flags.Filter()
			if err != nil {
				return err
			}
			svc, err := root.GetService()
			if err != nil {
				return err
			}
			l, err := svc.Load(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([]common.Row, 0, len(l))
			for i, tx := range l {
				if f.Match(tx) {
					rows = append(rows, common.Row{Index: i, Tx: tx})
				}
			}
			return common.PrintRows(cmd.OutOrStdout(), rows)
		},
	}

	common.AddFilterFlags(cmd, &flags)
	return cmd
}
