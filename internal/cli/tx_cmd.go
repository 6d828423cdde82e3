package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/utils/money"
	"github.com/spf13/cobra"
)

// entryFlags are the flags shared by "tx add" and "tx update".
type entryFlags struct {
	account     int64
	amount      string
	category    string
	kind        string
	description string
	date        string
}

func (f *entryFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.account, "account", 0, "account id")
	cmd.Flags().StringVar(&f.amount, "amount", "", "amount in major units, e.g. 25.50")
	cmd.Flags().StringVar(&f.category, "category", "", "category name")
	cmd.Flags().StringVar(&f.kind, "kind", "", "expense or income, taken from the category when omitted")
	cmd.Flags().StringVar(&f.description, "desc", "", "description")
	cmd.Flags().StringVar(&f.date, "date", "", "date as YYYY-MM-DD, today when omitted")
}

func newTxCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transaction"},
		Short:   "Record, change and list transactions",
	}
	cmd.AddCommand(newTxAddCommand(a), newTxUpdateCommand(a), newTxDeleteCommand(a), newTxListCommand(a))
	return cmd
}

func newTxAddCommand(a *app) *cobra.Command {
	var f entryFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income or expense entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			amount, err := a.amount(ctx, f.amount)
			if err != nil {
				return err
			}
			when, err := date(f.date)
			if err != nil {
				return err
			}
			txn, err := a.services.Ledger.RecordTransaction(ctx, a.containerID, dto.RecordTransactionRequest{
				AccountID:   f.account,
				Category:    f.category,
				Amount:      amount,
				Kind:        domain.Kind(f.kind),
				Description: f.description,
				Date:        when,
			})
			if err != nil {
				return err
			}
			fm := a.formatter(ctx)
			return a.render.emit(dto.ToTransactionResponse(txn), func() string {
				return transactionsMarkdown("Recorded", []domain.Transaction{*txn}, fm)
			})
		},
	}

	f.register(cmd)
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newTxUpdateCommand(a *app) *cobra.Command {
	var f entryFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a direct entry; unspecified fields keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseID(args[0], "transaction")
			if err != nil {
				return err
			}
			current, err := a.services.Ledger.GetTransaction(ctx, a.containerID, id)
			if err != nil {
				return err
			}

			amount := current.Amount
			if amount < 0 {
				amount = -amount
			}
			req := dto.RecordTransactionRequest{
				AccountID:   current.AccountID,
				Category:    current.Category,
				Amount:      amount,
				Description: current.Description,
				Date:        &current.Date,
			}
			flags := cmd.Flags()
			if flags.Changed("account") {
				req.AccountID = f.account
			}
			if flags.Changed("amount") {
				if req.Amount, err = a.amount(ctx, f.amount); err != nil {
					return err
				}
			}
			if flags.Changed("category") {
				req.Category = f.category
			}
			if flags.Changed("kind") {
				req.Kind = domain.Kind(f.kind)
			}
			if flags.Changed("desc") {
				req.Description = f.description
			}
			if flags.Changed("date") {
				if req.Date, err = date(f.date); err != nil {
					return err
				}
			}

			txn, err := a.services.Ledger.UpdateTransaction(ctx, a.containerID, id, req)
			if err != nil {
				return err
			}
			fm := a.formatter(ctx)
			return a.render.emit(dto.ToTransactionResponse(txn), func() string {
				return transactionsMarkdown("Updated", []domain.Transaction{*txn}, fm)
			})
		},
	}

	f.register(cmd)
	return cmd
}

func newTxDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction; deleting a transfer leg removes both legs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "transaction")
			if err != nil {
				return err
			}
			deleted, err := a.services.Ledger.DeleteTransaction(cmd.Context(), a.containerID, id)
			if err != nil {
				return err
			}
			return a.render.emit(dto.DeleteTransactionResponse{DeletedTransactionIDs: deleted}, func() string {
				ids := make([]string, 0, len(deleted))
				for _, d := range deleted {
					ids = append(ids, strconv.FormatInt(d, 10))
				}
				return fmt.Sprintf("Deleted transaction(s) %s.\n", strings.Join(ids, ", "))
			})
		},
	}
}

func newTxListCommand(a *app) *cobra.Command {
	var account int64
	var month string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			var (
				txns []domain.Transaction
				err  error
			)
			switch {
			case account != 0:
				txns, _, err = a.services.Ledger.ListTransactionsByAccount(ctx, a.containerID, account,
					dto.ListTransactionsParams{Limit: limit, Month: month})
			case month != "":
				txns, err = a.services.Ledger.ListTransactionsForMonth(ctx, a.containerID, month, limit)
			default:
				txns, err = a.services.Ledger.ListTransactions(ctx, a.containerID, limit)
			}
			if err != nil {
				return err
			}
			fm := a.formatter(ctx)
			return a.render.emit(txns, func() string { return transactionsMarkdown("Transactions", txns, fm) })
		},
	}

	cmd.Flags().Int64Var(&account, "account", 0, "only this account")
	cmd.Flags().StringVar(&month, "month", "", "only this month (YYYY-MM)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum rows, the configured default when 0")
	return cmd
}

func newTransferCommand(a *app) *cobra.Command {
	var from, to int64
	var amount, description, when string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move money between two accounts of the container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			minor, err := a.amount(ctx, amount)
			if err != nil {
				return err
			}
			d, err := date(when)
			if err != nil {
				return err
			}
			transfer, err := a.services.Transfer.RecordTransfer(ctx, a.containerID, dto.RecordTransferRequest{
				FromAccountID: from,
				ToAccountID:   to,
				Amount:        minor,
				Description:   description,
				Date:          d,
			})
			if err != nil {
				return err
			}
			fm := a.formatter(ctx)
			return a.render.emit(dto.ToTransferResponse(transfer), func() string {
				return transactionsMarkdown(fmt.Sprintf("Transfer %d", transfer.TransferGroupID),
					[]domain.Transaction{transfer.From, transfer.To}, fm)
			})
		},
	}

	cmd.Flags().Int64Var(&from, "from", 0, "source account id")
	cmd.Flags().Int64Var(&to, "to", 0, "destination account id")
	cmd.Flags().StringVar(&amount, "amount", "", "amount in major units")
	cmd.Flags().StringVar(&description, "desc", "", "description")
	cmd.Flags().StringVar(&when, "date", "", "date as YYYY-MM-DD, today when omitted")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func transactionsMarkdown(title string, txns []domain.Transaction, f *money.Formatter) string {
	rows := make([][]string, 0, len(txns))
	for _, t := range txns {
		group := ""
		if t.IsTransfer() {
			group = strconv.FormatInt(t.TransferGroupID, 10)
		}
		rows = append(rows, []string{
			strconv.FormatInt(t.TransactionID, 10),
			formatDate(t.Date),
			strconv.FormatInt(t.AccountID, 10),
			f.Format(t.Amount),
			t.Category,
			t.Description,
			group,
		})
	}
	return heading(title) + table([]string{"ID", "Date", "Account", "Amount", "Category", "Description", "Transfer"}, rows)
}
