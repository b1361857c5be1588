// Package edit implements the set-category command.
package edit

import (
	"fmt"
	"strconv"
	"strings"

	"fjacquet/fintrack/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the set-category command
var Cmd = NewCommand()

// NewCommand builds the set-category command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-category <index> <category>",
		Short: "Change the category of one transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}
			category := strings.TrimSpace(args[1])

			svc, err := root.GetService()
			if err != nil {
				return err
			}
			if suggestion, ok, err := svc.SuggestCategory(category); err == nil && ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "Aviso: categoria %q não cadastrada, você quis dizer %q?\n", category, suggestion)
			}
			if err := svc.UpdateCategory(cmd.Context(), index, category); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transação %d agora em %s\n", index, category)
			return nil
		},
	}
}
