package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/utils/pagination"
)

// TransactionFilter narrows a container-wide transaction listing.
type TransactionFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// FindTransferGroup retrieves every leg sharing a transfer-group id.
	FindTransferGroup(ctx context.Context, transferGroupID int64) ([]domain.Transaction, error)

	// ListTransactionsByAccount retrieves transactions of one account, most recent first,
	// starting strictly after the cursor when one is given.
	ListTransactionsByAccount(ctx context.Context, accountID int64, limit int, after *pagination.Cursor) ([]domain.Transaction, error)

	// ListTransactions retrieves transactions of a container, most recent first.
	ListTransactions(ctx context.Context, containerID int64, filter TransactionFilter) ([]domain.Transaction, error)

	// ListTransferLegs retrieves every transfer leg of a container.
	ListTransferLegs(ctx context.Context, containerID int64) ([]domain.Transaction, error)

	// SumAccount sums the stored amounts of an account, optionally only up to asOf inclusive.
	SumAccount(ctx context.Context, accountID int64, asOf *time.Time) (int64, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a direct entry and returns it with its assigned id.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// SaveTransfer allocates a fresh transfer-group id and persists both legs in one
	// database transaction. Either both legs are stored or neither is.
	SaveTransfer(ctx context.Context, from domain.Transaction, to domain.Transaction) (*domain.Transfer, error)

	// UpdateTransaction overwrites the mutable fields of a direct entry.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes one transaction.
	DeleteTransaction(ctx context.Context, transactionID int64) error

	// DeleteTransferGroup removes every leg of a transfer group in one database transaction
	// and returns the number of rows removed.
	DeleteTransferGroup(ctx context.Context, transferGroupID int64) (int64, error)

	// DeleteTransactions removes the given transactions in one database transaction.
	DeleteTransactions(ctx context.Context, transactionIDs []int64) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
