package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/utils/accounting"
)

// transferService writes both legs of a transfer through one atomic repository call.
type transferService struct {
	BaseService
	transactionRepo portsrepo.TransactionWriter
	accountRepo     portsrepo.AccountReader
}

// NewTransferService creates a new transfer service with the provided options
func NewTransferService(transactionRepo portsrepo.TransactionWriter, accountRepo portsrepo.AccountReader, options ...Option) portssvc.TransferSvc {
	svc := &transferService{transactionRepo: transactionRepo, accountRepo: accountRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.TransferSvc = (*transferService)(nil)

func (s *transferService) RecordTransfer(ctx context.Context, containerID int64, req dto.RecordTransferRequest) (*domain.Transfer, error) {
	if req.FromAccountID == req.ToAccountID {
		return nil, apperrors.SameAccountTransferError(req.FromAccountID)
	}
	out, in, err := accounting.TransferAmounts(req.Amount)
	if err != nil {
		return nil, apperrors.InvalidAmountError(err.Error())
	}

	var transfer *domain.Transfer
	err = s.withWrite(containerID, func() error {
		from, err := loadAccount(ctx, s.accountRepo, containerID, req.FromAccountID)
		if err != nil {
			return err
		}
		to, err := loadAccount(ctx, s.accountRepo, containerID, req.ToAccountID)
		if err != nil {
			return err
		}

		description := strings.TrimSpace(req.Description)
		if description == "" {
			description = domain.DefaultTransferDescription
		}
		date := s.now().Truncate(time.Second)
		if req.Date != nil && !req.Date.IsZero() {
			date = req.Date.UTC().Truncate(time.Second)
		}
		now := s.now()
		audit := domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

		transfer, err = s.transactionRepo.SaveTransfer(ctx,
			domain.Transaction{
				ContainerID:           containerID,
				AccountID:             from.AccountID,
				Amount:                out,
				Description:           description,
				Category:              domain.TransferCategory,
				Date:                  date,
				CounterpartyAccountID: to.AccountID,
				AuditFields:           audit,
			},
			domain.Transaction{
				ContainerID:           containerID,
				AccountID:             to.AccountID,
				Amount:                in,
				Description:           description,
				Category:              domain.TransferCategory,
				Date:                  date,
				CounterpartyAccountID: from.AccountID,
				AuditFields:           audit,
			},
		)
		if err != nil {
			return err
		}
		s.notify(ctx, domain.LedgerEvent{
			Type:            domain.EventTransferRecorded,
			ContainerID:     containerID,
			TransactionIDs:  []int64{transfer.From.TransactionID, transfer.To.TransactionID},
			TransferGroupID: transfer.TransferGroupID,
		})
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record transfer",
			slog.Int64("container_id", containerID),
			slog.Int64("from_account_id", req.FromAccountID),
			slog.Int64("to_account_id", req.ToAccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Transfer recorded",
		slog.Int64("container_id", containerID),
		slog.Int64("transfer_group_id", transfer.TransferGroupID),
		slog.Int64("amount", req.Amount))
	return transfer, nil
}
