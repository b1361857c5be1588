// Package remove implements the delete command.
package remove

import (
	"fmt"
	"strconv"

	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the delete command
var Cmd = NewCommand()

// NewCommand builds the delete command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <index>",
		Aliases: []string{"rm"},
		Short:   "Delete the transaction at a ledger position",
		Long: `Delete the transaction at the given ledger position. Positions are
shown in the first column of the list command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}
			svc, err := root.GetService()
			if err != nil {
				return err
			}
			tx, err := svc.Delete(cmd.Context(), index)
			if err != nil {
				return err
			}
			common.PrintTransaction(cmd.OutOrStdout(), "Removida:", tx)
			return nil
		},
	}
}
