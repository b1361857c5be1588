// Package dedupe implements the dedupe command.
package dedupe

import (
	"fmt"

	"fjacquet/fintrack/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the dedupe command
var Cmd = NewCommand()

// NewCommand builds the dedupe command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dedupe",
		Short: "Remove movements recorded by both banks",
		Long: `Remove the second record of internal movements, such as card bill
payments or transfers between accounts, that appear once per bank with the
same day and amount.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.GetService()
			if err != nil {
				return err
			}
			dropped, err := svc.Deduplicate(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d duplicadas removidas\n", dropped)
			return nil
		},
	}
}
