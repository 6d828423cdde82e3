package services

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccount retrieves an account of the container by its id.
	GetAccount(ctx context.Context, containerID int64, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves the accounts of a container in creation order.
	ListAccounts(ctx context.Context, containerID int64) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, containerID int64, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount changes the name and opening balance. Classification is immutable.
	UpdateAccount(ctx context.Context, containerID int64, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}

// BalanceSvc derives balances from opening balances and ledger entries.
type BalanceSvc interface {
	// CurrentBalance returns opening balance plus the sum of every stored amount on the account.
	CurrentBalance(ctx context.Context, containerID int64, accountID int64) (int64, error)

	// ListAccountBalances returns every account of the container with its current balance.
	ListAccountBalances(ctx context.Context, containerID int64) ([]domain.AccountBalance, error)
}
