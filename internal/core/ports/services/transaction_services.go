package services

import (
	"context"
	"io"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/SscSPs/ledgerbook/internal/utils/csvio"
)

// LedgerReaderSvc defines read operations for transactions
type LedgerReaderSvc interface {
	// GetTransaction retrieves one transaction of the container.
	GetTransaction(ctx context.Context, containerID int64, transactionID int64) (*domain.Transaction, error)

	// ListTransactionsByAccount lists the transactions of one account, most recent first.
	// The returned token is empty when there are no further pages.
	ListTransactionsByAccount(ctx context.Context, containerID int64, accountID int64, params dto.ListTransactionsParams) ([]domain.Transaction, string, error)

	// ListTransactions lists the transactions of a container, most recent first.
	ListTransactions(ctx context.Context, containerID int64, limit int) ([]domain.Transaction, error)

	// ListTransactionsForMonth lists the transactions of a container within a "YYYY-MM" month.
	ListTransactionsForMonth(ctx context.Context, containerID int64, month string, limit int) ([]domain.Transaction, error)
}

// LedgerWriterSvc defines write operations for direct entries
type LedgerWriterSvc interface {
	// RecordTransaction applies the polarity rule of the account and stores the entry.
	RecordTransaction(ctx context.Context, containerID int64, req dto.RecordTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction rewrites a direct entry. Transfer legs are refused.
	UpdateTransaction(ctx context.Context, containerID int64, transactionID int64, req dto.RecordTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes an entry, or every leg of its transfer group. It returns the removed ids.
	DeleteTransaction(ctx context.Context, containerID int64, transactionID int64) ([]int64, error)
}

// LedgerSvcFacade combines all transaction-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}

// TransferSvc records paired movements between two accounts.
type TransferSvc interface {
	RecordTransfer(ctx context.Context, containerID int64, req dto.RecordTransferRequest) (*domain.Transfer, error)
}

// IntegritySvc checks and repairs transfer-group consistency.
type IntegritySvc interface {
	// VerifyContainer returns the broken transfer groups. When any exist the container is
	// fenced and the error wraps apperrors.ErrConsistency.
	VerifyContainer(ctx context.Context, containerID int64) ([]domain.IntegrityIssue, error)

	// ReconcileContainer deletes the legs of broken transfer groups, lifts the fence and
	// returns the removed transaction ids.
	ReconcileContainer(ctx context.Context, containerID int64) ([]int64, error)
}

// DataExchangeSvc moves transactions in and out as CSV.
type DataExchangeSvc interface {
	ExportTransactionsCSV(ctx context.Context, containerID int64, w io.Writer) error
	ImportTransactionsCSV(ctx context.Context, containerID int64, accountID int64, r io.Reader, mapping csvio.ColumnMapping) (*domain.ImportResult, error)
}
