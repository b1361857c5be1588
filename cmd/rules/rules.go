// Package rules implements the rules command and its subcommands.
package rules

import (
	"errors"
	"fmt"

	"fjacquet/fintrack/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the rules command
var Cmd = NewCommand()

// NewCommand builds the rules command tree.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage keyword categorization rules",
		Long: `Manage the keyword rules stored in the rules file. Keywords are matched
against normalized descriptions, so case, accents and repeated spaces do not
matter.`,
	}
	cmd.AddCommand(newListCommand(), newAddCommand(), newRemoveCommand())
	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the rules, sorted by keyword",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.GetService()
			if err != nil {
				return err
			}
			rules, err := svc.Rules()
			if err != nil {
				return err
			}
			for _, keyword := range rules.Keywords() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", keyword, rules[keyword])
			}
			return nil
		},
	}
}

func newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <keyword> <category>",
		Short: "Add or replace a rule",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword, category := args[0], args[1]
			svc, err := root.GetService()
			if err != nil {
				return err
			}
			if suggestion, ok, err := svc.SuggestCategory(category); err == nil && ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "Aviso: categoria %q não cadastrada, você quis dizer %q?\n", category, suggestion)
			}
			if err := svc.AddRule(keyword, category); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Regra salva: %s -> %s\n", keyword, category)
			return nil
		},
	}
}

func newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <keyword>",
		Aliases: []string{"rm"},
		Short:   "Remove a rule",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.GetService()
			if err != nil {
				return err
			}
			removed, err := svc.RemoveRule(args[0])
			if err != nil {
				return err
			}
			if !removed {
				return errors.New("rule not found: " + args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Regra removida: %s\n", args[0])
			return nil
		},
	}
}
