package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/utils/accounting"
	"github.com/SscSPs/ledgerbook/internal/utils/pagination"
	"github.com/SscSPs/ledgerbook/internal/utils/period"
)

// ListLimits bounds the page size of transaction listings.
type ListLimits struct {
	Default int
	Max     int
}

// DefaultListLimits are used when no limits are configured.
var DefaultListLimits = ListLimits{Default: 50, Max: 500}

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountReader
	categoryRepo    portsrepo.CategoryReader
	limits          ListLimits
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	categoryRepo portsrepo.CategoryReader,
	limits ListLimits,
	options ...Option,
) portssvc.LedgerSvcFacade {
	if limits.Default <= 0 {
		limits = DefaultListLimits
	}
	svc := &ledgerService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		limits:          limits,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// entryTime normalizes an optional entry date to UTC whole seconds, defaulting to now.
func (s *ledgerService) entryTime(date *time.Time) time.Time {
	if date == nil || date.IsZero() {
		return s.now().Truncate(time.Second)
	}
	return date.UTC().Truncate(time.Second)
}

// resolveEntry validates a direct entry against its account and category and returns the
// transaction to store, amount already signed by the account's polarity.
func (s *ledgerService) resolveEntry(ctx context.Context, containerID int64, req dto.RecordTransactionRequest) (*domain.Transaction, error) {
	account, err := loadAccount(ctx, s.accountRepo, containerID, req.AccountID)
	if err != nil {
		return nil, err
	}
	if req.Amount == 0 {
		return nil, apperrors.InvalidAmountError("must not be zero")
	}

	categoryName := strings.TrimSpace(req.Category)
	if categoryName == "" {
		return nil, apperrors.MissingCategoryError()
	}
	if strings.EqualFold(categoryName, domain.TransferCategory) {
		return nil, apperrors.ValidationError("category %q is reserved for transfers", domain.TransferCategory)
	}
	category, err := s.categoryRepo.FindCategoryByName(ctx, categoryName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFoundError("category %q not found", categoryName)
		}
		return nil, err
	}

	kind := req.Kind
	if kind == "" {
		kind = category.Type
	}
	if !kind.IsValid() {
		return nil, apperrors.ValidationError("invalid kind %q: must be expense or income", kind)
	}
	if kind != category.Type {
		return nil, apperrors.ValidationError("kind %q does not match category %q of type %q", kind, category.Name, category.Type)
	}

	amount, err := accounting.SignedAmount(req.Amount, kind, account.Classification)
	if err != nil {
		return nil, apperrors.InvalidAmountError(err.Error())
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = domain.DefaultDescription
	}

	return &domain.Transaction{
		ContainerID: containerID,
		AccountID:   account.AccountID,
		Amount:      amount,
		Description: description,
		Category:    category.Name,
		Date:        s.entryTime(req.Date),
	}, nil
}

func (s *ledgerService) RecordTransaction(ctx context.Context, containerID int64, req dto.RecordTransactionRequest) (*domain.Transaction, error) {
	var saved *domain.Transaction
	err := s.withWrite(containerID, func() error {
		err := s.withCategoriesRead(func() error {
			txn, err := s.resolveEntry(ctx, containerID, req)
			if err != nil {
				return err
			}
			now := s.now()
			txn.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

			saved, err = s.transactionRepo.SaveTransaction(ctx, *txn)
			return err
		})
		if err != nil {
			return err
		}
		s.notify(ctx, domain.LedgerEvent{
			Type:           domain.EventTransactionRecorded,
			ContainerID:    containerID,
			AccountID:      saved.AccountID,
			TransactionIDs: []int64{saved.TransactionID},
		})
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record transaction",
			slog.Int64("container_id", containerID),
			slog.Int64("account_id", req.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.Int64("container_id", containerID),
		slog.Int64("account_id", saved.AccountID),
		slog.Int64("transaction_id", saved.TransactionID),
		slog.Int64("amount", saved.Amount))
	return saved, nil
}

// findTransaction returns the transaction when it belongs to the container.
func (s *ledgerService) findTransaction(ctx context.Context, containerID, transactionID int64) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFoundError("transaction %d not found", transactionID)
		}
		return nil, err
	}
	if txn.ContainerID != containerID {
		return nil, apperrors.NotFoundError("transaction %d not found", transactionID)
	}
	return txn, nil
}

func (s *ledgerService) GetTransaction(ctx context.Context, containerID int64, transactionID int64) (*domain.Transaction, error) {
	return s.findTransaction(ctx, containerID, transactionID)
}

func (s *ledgerService) ListTransactionsByAccount(ctx context.Context, containerID int64, accountID int64, params dto.ListTransactionsParams) ([]domain.Transaction, string, error) {
	if _, err := loadAccount(ctx, s.accountRepo, containerID, accountID); err != nil {
		return nil, "", err
	}

	var after *pagination.Cursor
	if params.NextToken != "" {
		cursor, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, "", apperrors.ValidationError("invalid nextToken: %v", err)
		}
		after = &cursor
	}

	limit := pagination.ClampLimit(params.Limit, s.limits.Default, s.limits.Max)

	// Fetch one extra row to learn whether another page exists
	txns, err := s.transactionRepo.ListTransactionsByAccount(ctx, accountID, limit+1, after)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account transactions",
			slog.Int64("container_id", containerID),
			slog.Int64("account_id", accountID))
		return nil, "", err
	}

	nextToken := ""
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		nextToken = pagination.EncodeToken(last.Date, last.TransactionID)
	}
	return txns, nextToken, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, containerID int64, limit int) ([]domain.Transaction, error) {
	if err := s.requireContainer(ctx, containerID); err != nil {
		return nil, err
	}
	return s.transactionRepo.ListTransactions(ctx, containerID, portsrepo.TransactionFilter{
		Limit: pagination.ClampLimit(limit, s.limits.Default, s.limits.Max),
	})
}

func (s *ledgerService) ListTransactionsForMonth(ctx context.Context, containerID int64, month string, limit int) ([]domain.Transaction, error) {
	from, to, err := period.MonthRange(month)
	if err != nil {
		return nil, apperrors.ValidationError("%v", err)
	}
	if err := s.requireContainer(ctx, containerID); err != nil {
		return nil, err
	}
	return s.transactionRepo.ListTransactions(ctx, containerID, portsrepo.TransactionFilter{
		From:  &from,
		To:    &to,
		Limit: pagination.ClampLimit(limit, s.limits.Default, s.limits.Max),
	})
}

func (s *ledgerService) UpdateTransaction(ctx context.Context, containerID int64, transactionID int64, req dto.RecordTransactionRequest) (*domain.Transaction, error) {
	var updated *domain.Transaction
	err := s.withWrite(containerID, func() error {
		existing, err := s.findTransaction(ctx, containerID, transactionID)
		if err != nil {
			return err
		}
		if existing.IsTransfer() {
			return apperrors.ValidationError("transaction %d is part of transfer %d and cannot be edited; delete the transfer instead", transactionID, existing.TransferGroupID)
		}

		err = s.withCategoriesRead(func() error {
			txn, err := s.resolveEntry(ctx, containerID, req)
			if err != nil {
				return err
			}
			txn.TransactionID = existing.TransactionID
			txn.CreatedAt = existing.CreatedAt
			txn.LastUpdatedAt = s.now()
			if req.Date == nil {
				txn.Date = existing.Date
			}
			if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
				return err
			}
			updated = txn
			return nil
		})
		if err != nil {
			return err
		}
		s.notify(ctx, domain.LedgerEvent{
			Type:           domain.EventTransactionUpdated,
			ContainerID:    containerID,
			AccountID:      updated.AccountID,
			TransactionIDs: []int64{updated.TransactionID},
		})
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update transaction",
			slog.Int64("container_id", containerID),
			slog.Int64("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated",
		slog.Int64("container_id", containerID),
		slog.Int64("transaction_id", transactionID))
	return updated, nil
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, containerID int64, transactionID int64) ([]int64, error) {
	var deleted []int64
	err := s.withWrite(containerID, func() error {
		txn, err := s.findTransaction(ctx, containerID, transactionID)
		if err != nil {
			return err
		}

		event := domain.LedgerEvent{Type: domain.EventTransactionDeleted, ContainerID: containerID, AccountID: txn.AccountID}
		if !txn.IsTransfer() {
			if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
				return err
			}
			deleted = []int64{transactionID}
		} else {
			legs, err := s.transactionRepo.FindTransferGroup(ctx, txn.TransferGroupID)
			if err != nil {
				return err
			}
			if err := accounting.CheckTransferGroup(legs); err != nil {
				if s.Locks != nil {
					s.Locks.Fence(containerID, err.Error())
				}
				return apperrors.ConsistencyError(containerID, err.Error())
			}
			if _, err := s.transactionRepo.DeleteTransferGroup(ctx, txn.TransferGroupID); err != nil {
				return err
			}
			for _, leg := range legs {
				deleted = append(deleted, leg.TransactionID)
			}
			event.TransferGroupID = txn.TransferGroupID
		}

		event.TransactionIDs = deleted
		s.notify(ctx, event)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete transaction",
			slog.Int64("container_id", containerID),
			slog.Int64("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction deleted",
		slog.Int64("container_id", containerID),
		slog.Int64("transaction_id", transactionID),
		slog.Int("removed", len(deleted)))
	return deleted, nil
}
