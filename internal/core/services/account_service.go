package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...Option) portssvc.AccountSvcFacade {
	svc := &accountService{accountRepo: repo}
	svc.apply(options)
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, containerID int64, req dto.CreateAccountRequest) (*domain.Account, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.ValidationError("account name cannot be empty")
	}
	if !req.Classification.IsValid() {
		return nil, apperrors.InvalidClassificationError(string(req.Classification))
	}

	var created *domain.Account
	err := s.withWrite(containerID, func() error {
		if err := s.requireContainer(ctx, containerID); err != nil {
			return err
		}
		now := s.now()
		account, err := s.accountRepo.SaveAccount(ctx, domain.Account{
			ContainerID:    containerID,
			Name:           name,
			Classification: req.Classification,
			OpeningBalance: req.OpeningBalance,
			AuditFields:    domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		})
		if err != nil {
			return err
		}
		created = account
		s.notify(ctx, domain.LedgerEvent{Type: domain.EventAccountCreated, ContainerID: containerID, AccountID: account.AccountID})
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create account",
			slog.Int64("container_id", containerID),
			slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.Int64("container_id", containerID),
		slog.Int64("account_id", created.AccountID),
		slog.String("classification", string(created.Classification)))
	return created, nil
}

func (s *accountService) GetAccount(ctx context.Context, containerID int64, accountID int64) (*domain.Account, error) {
	return loadAccount(ctx, s.accountRepo, containerID, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context, containerID int64) ([]domain.Account, error) {
	if err := s.requireContainer(ctx, containerID); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, containerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.Int64("container_id", containerID))
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, containerID int64, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	var updated *domain.Account
	err := s.withWrite(containerID, func() error {
		account, err := loadAccount(ctx, s.accountRepo, containerID, accountID)
		if err != nil {
			return err
		}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return apperrors.ValidationError("account name cannot be empty")
			}
			account.Name = name
		}
		if req.OpeningBalance != nil {
			account.OpeningBalance = *req.OpeningBalance
		}
		account.LastUpdatedAt = s.now()

		if err := s.accountRepo.UpdateAccount(ctx, accountID, domain.AccountUpdate{
			Name:           account.Name,
			OpeningBalance: account.OpeningBalance,
			UpdatedAt:      account.LastUpdatedAt,
		}); err != nil {
			return err
		}
		updated = account
		s.notify(ctx, domain.LedgerEvent{Type: domain.EventAccountUpdated, ContainerID: containerID, AccountID: accountID})
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update account",
			slog.Int64("container_id", containerID),
			slog.Int64("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.Int64("container_id", containerID), slog.Int64("account_id", accountID))
	return updated, nil
}
