package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
)

// balanceService derives balances. Nothing is cached: every call sums the ledger.
type balanceService struct {
	BaseService
	accountRepo     portsrepo.AccountReader
	transactionRepo portsrepo.TransactionReader
}

// NewBalanceService creates a new balance service with the provided options
func NewBalanceService(accountRepo portsrepo.AccountReader, transactionRepo portsrepo.TransactionReader, options ...Option) portssvc.BalanceSvc {
	svc := &balanceService{accountRepo: accountRepo, transactionRepo: transactionRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

func (s *balanceService) CurrentBalance(ctx context.Context, containerID int64, accountID int64) (int64, error) {
	var balance int64
	err := s.withRead(containerID, func() error {
		account, err := loadAccount(ctx, s.accountRepo, containerID, accountID)
		if err != nil {
			return err
		}
		sum, err := s.transactionRepo.SumAccount(ctx, accountID, nil)
		if err != nil {
			return err
		}
		balance = domain.NewAccountBalance(*account, sum).Balance
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to compute balance",
			slog.Int64("container_id", containerID),
			slog.Int64("account_id", accountID))
		return 0, err
	}
	return balance, nil
}

func (s *balanceService) ListAccountBalances(ctx context.Context, containerID int64) ([]domain.AccountBalance, error) {
	var balances []domain.AccountBalance
	err := s.withRead(containerID, func() error {
		if err := s.requireContainer(ctx, containerID); err != nil {
			return err
		}
		accounts, err := s.accountRepo.ListAccounts(ctx, containerID)
		if err != nil {
			return err
		}
		balances = make([]domain.AccountBalance, 0, len(accounts))
		for _, account := range accounts {
			sum, err := s.transactionRepo.SumAccount(ctx, account.AccountID, nil)
			if err != nil {
				return err
			}
			balances = append(balances, domain.NewAccountBalance(account, sum))
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list account balances", slog.Int64("container_id", containerID))
		return nil, err
	}
	return balances, nil
}
