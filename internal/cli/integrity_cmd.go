package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/spf13/cobra"
)

func newVerifyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that every transfer has two mirrored legs",
		Long: "Check that every transfer has two mirrored legs. A container with broken transfers\n" +
			"is fenced against writes until it is reconciled; the command then exits non-zero.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			issues, verr := a.services.Integrity.VerifyContainer(cmd.Context(), a.containerID)
			if verr != nil && len(issues) == 0 {
				return verr
			}
			resp := dto.VerifyContainerResponse{ContainerID: a.containerID, Consistent: len(issues) == 0, Issues: issues}
			if err := a.render.emit(resp, func() string {
				if resp.Consistent {
					return fmt.Sprintf("Container %d is consistent.\n", a.containerID)
				}
				rows := make([][]string, 0, len(issues))
				for _, issue := range issues {
					ids := make([]string, 0, len(issue.TransactionIDs))
					for _, id := range issue.TransactionIDs {
						ids = append(ids, strconv.FormatInt(id, 10))
					}
					rows = append(rows, []string{strconv.FormatInt(issue.TransferGroupID, 10), strings.Join(ids, ", "), issue.Reason})
				}
				return heading(fmt.Sprintf("Container %d has broken transfers", a.containerID)) +
					table([]string{"Transfer", "Transactions", "Problem"}, rows) +
					"\nRun `ledger reconcile` to remove them.\n"
			}); err != nil {
				return err
			}
			return verr
		},
	}
}

func newReconcileCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Delete the legs of broken transfers and lift the write fence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			removed, err := a.services.Integrity.ReconcileContainer(cmd.Context(), a.containerID)
			if err != nil {
				return err
			}
			resp := dto.ReconcileContainerResponse{ContainerID: a.containerID, RemovedTransactionIDs: removed}
			return a.render.emit(resp, func() string {
				return fmt.Sprintf("Removed %d transaction(s) from container %d.\n", len(removed), a.containerID)
			})
		},
	}
}

func newTokenCommand(a *app) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, expiresAt, err := a.services.Token.GenerateAccessToken(cmd.Context(), subject)
			if err != nil {
				return err
			}
			if !a.render.json && a.render.query == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
				return err
			}
			return a.render.emit(map[string]any{"token": token, "expiresAt": expiresAt.UTC().Format(time.RFC3339)}, nil)
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "cli", "subject recorded in the token")
	return cmd
}
