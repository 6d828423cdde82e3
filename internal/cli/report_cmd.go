package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/utils/money"
	"github.com/SscSPs/ledgerbook/internal/utils/period"
	"github.com/spf13/cobra"
)

func newReportCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Profit and loss and balance sheet reports",
	}
	cmd.AddCommand(newProfitAndLossCommand(a), newBalanceSheetCommand(a))
	return cmd
}

func newProfitAndLossCommand(a *app) *cobra.Command {
	var month, from, to string

	cmd := &cobra.Command{
		Use:     "pnl",
		Aliases: []string{"profit-and-loss"},
		Short:   "Income and expense per category for a month or a date range",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			var (
				report *domain.ProfitAndLossReport
				err    error
			)
			if from != "" || to != "" {
				start, end, rerr := period.DayRange(from, to)
				if rerr != nil {
					return rerr
				}
				report, err = a.services.Reporting.ProfitAndLoss(ctx, a.containerID, start, end)
			} else {
				if month == "" {
					month = period.MonthOf(time.Now())
				}
				report, err = a.services.Reporting.ProfitAndLossForMonth(ctx, a.containerID, month)
			}
			if err != nil {
				return err
			}
			f := a.formatter(ctx)
			return a.render.emit(report, func() string { return profitAndLossMarkdown(report, f) })
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month as YYYY-MM, the current month by default")
	cmd.Flags().StringVar(&from, "from", "", "first day (YYYY-MM-DD), use with --to")
	cmd.Flags().StringVar(&to, "to", "", "last day (YYYY-MM-DD), inclusive")
	cmd.MarkFlagsRequiredTogether("from", "to")
	cmd.MarkFlagsMutuallyExclusive("month", "from")
	return cmd
}

func newBalanceSheetCommand(a *app) *cobra.Command {
	var month, asOf string

	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Account balances grouped into assets, liabilities and equity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			var (
				report *domain.BalanceSheetReport
				err    error
			)
			switch {
			case month != "":
				report, err = a.services.Reporting.BalanceSheetForMonth(ctx, a.containerID, month)
			case asOf != "":
				end, perr := period.EndOfDay(asOf)
				if perr != nil {
					return perr
				}
				report, err = a.services.Reporting.BalanceSheet(ctx, a.containerID, end)
			default:
				report, err = a.services.Reporting.BalanceSheet(ctx, a.containerID, time.Now().UTC())
			}
			if err != nil {
				return err
			}
			f := a.formatter(ctx)
			return a.render.emit(report, func() string { return balanceSheetMarkdown(report, f) })
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "balances at the end of this month (YYYY-MM)")
	cmd.Flags().StringVar(&asOf, "as-of", "", "balances at the end of this day (YYYY-MM-DD)")
	cmd.MarkFlagsMutuallyExclusive("month", "as-of")
	return cmd
}

func profitAndLossMarkdown(r *domain.ProfitAndLossReport, f *money.Formatter) string {
	var b strings.Builder
	b.WriteString(heading(fmt.Sprintf("Profit and loss %s to %s", formatDate(r.PeriodStart), formatDate(r.PeriodEnd))))
	b.WriteString(table([]string{"Income", "Total"}, categoryRows(r.Income, f)))
	b.WriteString("\n")
	b.WriteString(table([]string{"Expense", "Total"}, categoryRows(r.Expense, f)))
	b.WriteString("\n")
	b.WriteString(table([]string{"", ""}, [][]string{
		{"Total income", f.Format(r.TotalIncome)},
		{"Total expense", f.Format(r.TotalExpense)},
		{"**Net income**", "**" + f.Format(r.NetIncome) + "**"},
	}))
	return b.String()
}

func balanceSheetMarkdown(r *domain.BalanceSheetReport, f *money.Formatter) string {
	var b strings.Builder
	b.WriteString(heading("Balance sheet as of " + formatDate(r.AsOf)))
	b.WriteString(table([]string{"Assets", "Balance"}, accountRows(r.Assets, f)))
	b.WriteString("\n")
	b.WriteString(table([]string{"Liabilities", "Balance"}, accountRows(r.Liabilities, f)))
	b.WriteString("\n")
	b.WriteString(table([]string{"Equity", "Balance"}, accountRows(r.Equity, f)))
	b.WriteString("\n")
	b.WriteString(table([]string{"", ""}, [][]string{
		{"Gross assets", f.Format(r.GrossAssets)},
		{"Less contra assets", f.Format(r.ContraAssets)},
		{"**Total assets**", "**" + f.Format(r.TotalAssets) + "**"},
		{"Total liabilities", f.Format(r.TotalLiabilities)},
		{"Total equity", f.Format(r.TotalEquity)},
	}))
	return b.String()
}

func categoryRows(amounts []domain.CategoryAmount, f *money.Formatter) [][]string {
	rows := make([][]string, 0, len(amounts))
	for _, c := range amounts {
		rows = append(rows, []string{c.Category, f.Format(c.Total)})
	}
	return rows
}

func accountRows(amounts []domain.AccountAmount, f *money.Formatter) [][]string {
	rows := make([][]string, 0, len(amounts))
	for _, acc := range amounts {
		name := acc.Name
		if acc.Contra {
			name += " (contra)"
		}
		rows = append(rows, []string{name, f.Format(acc.Balance)})
	}
	return rows
}

func newSummaryCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Net amounts, active months and category totals",
	}

	var month string
	monthly := &cobra.Command{
		Use:   "monthly",
		Short: "Net of income and expenses for one month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := month
			if m == "" {
				m = period.MonthOf(time.Now())
			}
			net, err := a.services.Reporting.MonthlyNet(cmd.Context(), a.containerID, m)
			if err != nil {
				return err
			}
			f := a.formatter(cmd.Context())
			return a.render.emit(map[string]any{"containerID": a.containerID, "month": m, "net": net}, func() string {
				return fmt.Sprintf("Net for %s: **%s**\n", m, f.Format(net))
			})
		},
	}
	monthly.Flags().StringVar(&month, "month", "", "month as YYYY-MM, the current month by default")

	allTime := &cobra.Command{
		Use:   "all-time",
		Short: "Net of every income and expense entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			net, err := a.services.Reporting.AllTimeNet(cmd.Context(), a.containerID)
			if err != nil {
				return err
			}
			f := a.formatter(cmd.Context())
			return a.render.emit(map[string]any{"containerID": a.containerID, "net": net}, func() string {
				return fmt.Sprintf("All-time net: **%s**\n", f.Format(net))
			})
		},
	}

	months := &cobra.Command{
		Use:   "months",
		Short: "Months that hold transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.services.Reporting.AvailableMonths(cmd.Context(), a.containerID)
			if err != nil {
				return err
			}
			return a.render.emit(list, func() string {
				rows := make([][]string, 0, len(list))
				for _, m := range list {
					rows = append(rows, []string{m})
				}
				return heading("Months") + table([]string{"Month"}, rows)
			})
		},
	}

	var totalsMonth string
	categories := &cobra.Command{
		Use:   "categories",
		Short: "Expense totals per category, largest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			totals, err := a.services.Reporting.CategoryTotals(cmd.Context(), a.containerID, totalsMonth)
			if err != nil {
				return err
			}
			f := a.formatter(cmd.Context())
			return a.render.emit(totals, func() string {
				title := "Expenses by category"
				if totalsMonth != "" {
					title += " in " + totalsMonth
				}
				rows := categoryRows(totals, f)
				for i := range rows {
					rows[i] = append([]string{strconv.Itoa(i + 1)}, rows[i]...)
				}
				return heading(title) + table([]string{"#", "Category", "Total"}, rows)
			})
		},
	}
	categories.Flags().StringVar(&totalsMonth, "month", "", "month as YYYY-MM, all time by default")

	cmd.AddCommand(monthly, allTime, months, categories)
	return cmd
}
