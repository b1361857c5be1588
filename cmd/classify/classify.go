// Package classify implements the classify command.
package classify

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/fintrack/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the classify command
var Cmd = NewCommand()

// NewCommand builds the classify command.
func NewCommand() *cobra.Command {
	var (
		description string
		exact       bool
	)

	cmd := &cobra.Command{
		Use:   "classify [description]",
		Short: "Show the category the rules give a description",
		Long: `Show the category the current keyword rules give a description.
By default the longest keyword contained in the description wins. With --exact
the whole description must equal a keyword once both are normalized.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc := description
			if desc == "" && len(args) == 1 {
				desc = args[0]
			}
			if strings.TrimSpace(desc) == "" {
				return errors.New("a description is required")
			}

			c, err := root.GetContainer()
			if err != nil {
				return err
			}
			category, ok := c.GetService().Classify(desc, exact)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (no rule matched)\n", c.GetCategorizer().Fallback())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), category)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description to classify")
	cmd.Flags().BoolVarP(&exact, "exact", "e", false, "Require the description to equal a keyword")
	return cmd
}
