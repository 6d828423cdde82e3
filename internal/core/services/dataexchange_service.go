package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/utils/csvio"
)

// dataExchangeService imports and exports transactions as CSV. Imported rows go through
// the ledger service one by one, so every row obeys the same rules as a direct entry.
type dataExchangeService struct {
	BaseService
	ledger          portssvc.LedgerWriterSvc
	transactionRepo portsrepo.TransactionReader
	accountRepo     portsrepo.AccountReader
	categoryRepo    portsrepo.CategoryReader
}

// NewDataExchangeService creates a new CSV import/export service
func NewDataExchangeService(
	ledger portssvc.LedgerWriterSvc,
	transactionRepo portsrepo.TransactionReader,
	accountRepo portsrepo.AccountReader,
	categoryRepo portsrepo.CategoryReader,
	options ...Option,
) portssvc.DataExchangeSvc {
	svc := &dataExchangeService{
		ledger:          ledger,
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.DataExchangeSvc = (*dataExchangeService)(nil)

func (s *dataExchangeService) ExportTransactionsCSV(ctx context.Context, containerID int64, w io.Writer) error {
	var (
		txns     []domain.Transaction
		accounts []domain.Account
	)
	err := s.withRead(containerID, func() error {
		if err := s.requireContainer(ctx, containerID); err != nil {
			return err
		}
		var err error
		if accounts, err = s.accountRepo.ListAccounts(ctx, containerID); err != nil {
			return err
		}
		txns, err = s.transactionRepo.ListTransactions(ctx, containerID, portsrepo.TransactionFilter{})
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for export", slog.Int64("container_id", containerID))
		return err
	}

	names := make(map[int64]string, len(accounts))
	for _, acc := range accounts {
		names[acc.AccountID] = acc.Name
	}
	namer := func(accountID int64) string {
		if name, ok := names[accountID]; ok {
			return name
		}
		return fmt.Sprintf("#%d", accountID)
	}

	if err := csvio.WriteTransactions(w, txns, namer); err != nil {
		s.LogError(ctx, err, "Failed to write CSV export", slog.Int64("container_id", containerID))
		return err
	}
	s.LogInfo(ctx, "Transactions exported",
		slog.Int64("container_id", containerID),
		slog.Int("count", len(txns)))
	return nil
}

// resolveCategory returns the stored name of the category, or the fallback category
// when the row names none or an unknown one.
func (s *dataExchangeService) resolveCategory(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, domain.TransferCategory) {
		return domain.FallbackCategory, nil
	}
	category, err := s.categoryRepo.FindCategoryByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.FallbackCategory, nil
		}
		return "", err
	}
	return category.Name, nil
}

func (s *dataExchangeService) ImportTransactionsCSV(ctx context.Context, containerID int64, accountID int64, r io.Reader, mapping csvio.ColumnMapping) (*domain.ImportResult, error) {
	if _, err := loadAccount(ctx, s.accountRepo, containerID, accountID); err != nil {
		return nil, err
	}

	result := &domain.ImportResult{Errors: []string{}}
	var imported []int64
	reader := csvio.NewReader(r, mapping)
	for {
		row, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			result.ErrorCount++
			result.Errors = append(result.Errors, err.Error())
			continue
		}

		category, err := s.resolveCategory(ctx, row.Category)
		if err != nil {
			return nil, fmt.Errorf("row %d: failed to resolve category: %w", row.Line, err)
		}

		date := row.Date
		txn, err := s.ledger.RecordTransaction(ctx, containerID, dto.RecordTransactionRequest{
			AccountID:   accountID,
			Category:    category,
			Amount:      abs(row.Amount),
			Description: row.Description,
			Date:        &date,
		})
		if err != nil {
			// A fenced container refuses every row, so stop instead of collecting errors
			if errors.Is(err, apperrors.ErrConsistency) {
				return nil, err
			}
			result.ErrorCount++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", row.Line, err))
			continue
		}
		result.SuccessCount++
		imported = append(imported, txn.TransactionID)
	}

	s.notify(ctx, domain.LedgerEvent{
		Type:           domain.EventImportCompleted,
		ContainerID:    containerID,
		AccountID:      accountID,
		TransactionIDs: imported,
	})
	s.LogInfo(ctx, "Transactions imported",
		slog.Int64("container_id", containerID),
		slog.Int64("account_id", accountID),
		slog.Int("success", result.SuccessCount),
		slog.Int("errors", result.ErrorCount))
	return result, nil
}
