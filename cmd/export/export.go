// Package export implements the export command.
package export

import (
	"bytes"
	"unicode/utf8"

	"fjacquet/fintrack/cmd/common"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = NewCommand()

// NewCommand builds the export command.
func NewCommand() *cobra.Command {
	var (
		flags     common.FilterFlags
		output    string
		delimiter string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions as CSV",
		Long: `Export the selected transactions as CSV with the columns
Date, Description, Amount, Type, Category and Source. Without --output the CSV
is written to standard output.`,
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

			delim := c.GetConfig().DelimiterRune()
			if delimiter != "" {
				if err := validation.ValidateDelimiter(delimiter); err != nil {
					return err
				}
				delim, _ = utf8.DecodeRuneInString(delimiter)
			}

			if output == "" {
				return c.GetService().Export(cmd.Context(), cmd.OutOrStdout(), f, delim)
			}

			var buf bytes.Buffer
			if err := c.GetService().Export(cmd.Context(), &buf, f, delim); err != nil {
				return err
			}
			if err := fileutils.WriteFileAtomic(output, buf.Bytes(), models.PermissionDataFile); err != nil {
				return err
			}
			c.GetLogger().WithField(logging.FieldFile, output).Info("Exported transactions")
			return nil
		},
	}

	common.AddFilterFlags(cmd, &flags)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, standard output when empty")
	cmd.Flags().StringVar(&delimiter, "delimiter", "", "CSV delimiter, overrides csv.delimiter")
	return cmd
}
