package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/SscSPs/ledgerbook/internal/utils/csvio"
	"github.com/spf13/cobra"
)

func newExportCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every transaction of the container as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" || output == "-" {
				return a.services.Exchange.ExportTransactionsCSV(cmd.Context(), a.containerID, cmd.OutOrStdout())
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			if err := a.services.Exchange.ExportTransactionsCSV(cmd.Context(), a.containerID, f); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write, stdout when omitted")
	return cmd
}

func newImportCommand(a *app) *cobra.Command {
	var account int64
	var noHeader bool
	mapping := csvio.DefaultColumnMapping()

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import bank statement rows into one account",
		Long: "Import bank statement rows into one account. Each row becomes an income or expense entry\n" +
			"whose kind comes from its category. Bad rows are reported and skipped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			mapping.SkipHeader = !noHeader
			result, err := a.services.Exchange.ImportTransactionsCSV(cmd.Context(), a.containerID, account, f, mapping)
			if err != nil {
				return err
			}
			return a.render.emit(result, func() string {
				var b strings.Builder
				fmt.Fprintf(&b, "Imported **%d** row(s), %d error(s).\n", result.SuccessCount, result.ErrorCount)
				if len(result.Errors) > 0 {
					b.WriteString("\n")
					for _, e := range result.Errors {
						fmt.Fprintf(&b, "- %s\n", e)
					}
				}
				return b.String()
			})
		},
	}

	cmd.Flags().Int64Var(&account, "account", 0, "account the rows are booked to")
	cmd.Flags().IntVar(&mapping.Date, "date-col", mapping.Date, "zero-based column of the date")
	cmd.Flags().IntVar(&mapping.Description, "desc-col", mapping.Description, "zero-based column of the description")
	cmd.Flags().IntVar(&mapping.Category, "category-col", mapping.Category, "zero-based column of the category")
	cmd.Flags().IntVar(&mapping.Amount, "amount-col", mapping.Amount, "zero-based column of the amount")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "the first row is data, not a header")
	_ = cmd.MarkFlagRequired("account")
	return cmd
}
