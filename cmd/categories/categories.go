// Package categories implements the categories command and its subcommands.
package categories

import (
	"errors"
	"fmt"

	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the categories command
var Cmd = NewCommand()

// NewCommand builds the categories command tree.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage the category registry",
		Long: `Manage the categories known to the tracker. Categories flagged as real
expenses are the ones counted in the spending indicators.`,
	}
	cmd.AddCommand(newListCommand(), newAddCommand(), newRemoveCommand())
	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.GetService()
			if err != nil {
				return err
			}
			categories, err := svc.Categories()
			if err != nil {
				return err
			}
			for _, c := range categories {
				flag := ""
				if c.RealExpense {
					flag = "gasto real"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", c.Icon, c.Name, flag)
			}
			return nil
		},
	}
}

func newAddCommand() *cobra.Command {
	var (
		icon        string
		realExpense bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add or replace a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.GetService()
			if err != nil {
				return err
			}
			c := models.CategoryConfig{Name: args[0], Icon: icon, RealExpense: realExpense}
			if err := svc.AddCategory(c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Categoria salva: %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&icon, "icon", "i", "", "Icon shown next to the category")
	cmd.Flags().BoolVarP(&realExpense, "real-expense", "r", false, "Count the category in real spending")
	return cmd
}

func newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a category",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.GetService()
			if err != nil {
				return err
			}
			removed, err := svc.RemoveCategory(args[0])
			if err != nil {
				return err
			}
			if !removed {
				return errors.New("category not found: " + args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Categoria removida: %s\n", args[0])
			return nil
		},
	}
}
