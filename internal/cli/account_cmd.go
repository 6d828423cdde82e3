package cli

import (
	"strconv"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/utils/money"
	"github.com/spf13/cobra"
)

func newAccountCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts of a container",
	}
	cmd.AddCommand(newAccountListCommand(a), newAccountAddCommand(a), newAccountUpdateCommand(a), newAccountBalancesCommand(a))
	return cmd
}

func newAccountListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			accounts, err := a.services.Account.ListAccounts(cmd.Context(), a.containerID)
			if err != nil {
				return err
			}
			f := a.formatter(cmd.Context())
			return a.render.emit(accounts, func() string { return accountsMarkdown(accounts, f) })
		},
	}
}

func newAccountAddCommand(a *app) *cobra.Command {
	var classification string
	var opening string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.CreateAccountRequest{Name: args[0], Classification: domain.Classification(classification)}
			if opening != "" {
				minor, err := a.amount(cmd.Context(), opening)
				if err != nil {
					return err
				}
				req.OpeningBalance = minor
			}
			account, err := a.services.Account.CreateAccount(cmd.Context(), a.containerID, req)
			if err != nil {
				return err
			}
			f := a.formatter(cmd.Context())
			return a.render.emit(account, func() string { return accountsMarkdown([]domain.Account{*account}, f) })
		},
	}

	cmd.Flags().StringVar(&classification, "class", string(domain.Asset), "asset, contra_asset, liability or equity")
	cmd.Flags().StringVar(&opening, "opening", "", "opening balance in major units, may be negative")
	return cmd
}

func newAccountUpdateCommand(a *app) *cobra.Command {
	var name string
	var opening string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename an account or change its opening balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "account")
			if err != nil {
				return err
			}
			var req dto.UpdateAccountRequest
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("opening") {
				minor, err := a.amount(cmd.Context(), opening)
				if err != nil {
					return err
				}
				req.OpeningBalance = &minor
			}
			account, err := a.services.Account.UpdateAccount(cmd.Context(), a.containerID, id, req)
			if err != nil {
				return err
			}
			f := a.formatter(cmd.Context())
			return a.render.emit(account, func() string { return accountsMarkdown([]domain.Account{*account}, f) })
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new account name")
	cmd.Flags().StringVar(&opening, "opening", "", "new opening balance in major units")
	return cmd
}

func newAccountBalancesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show the current balance of every account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			balances, err := a.services.Balance.ListAccountBalances(cmd.Context(), a.containerID)
			if err != nil {
				return err
			}
			f := a.formatter(cmd.Context())
			return a.render.emit(balances, func() string {
				rows := make([][]string, 0, len(balances))
				for _, b := range balances {
					rows = append(rows, []string{
						strconv.FormatInt(b.AccountID, 10), b.Name, string(b.Classification), f.Format(b.Balance),
					})
				}
				return heading("Balances") + table([]string{"ID", "Account", "Class", "Balance"}, rows)
			})
		},
	}
}

func accountsMarkdown(accounts []domain.Account, f *money.Formatter) string {
	rows := make([][]string, 0, len(accounts))
	for _, acc := range accounts {
		rows = append(rows, []string{
			strconv.FormatInt(acc.AccountID, 10), acc.Name, string(acc.Classification), f.Format(acc.OpeningBalance),
		})
	}
	return heading("Accounts") + table([]string{"ID", "Name", "Class", "Opening"}, rows)
}
