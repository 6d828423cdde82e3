package dto

import (
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// RecordTransactionRequest defines a direct entry. Amount is an unsigned magnitude
// in minor units; its sign is ignored. Kind may be omitted, in which case it is taken
// from the category type.
type RecordTransactionRequest struct {
	AccountID   int64       `json:"accountID" binding:"required"`
	Category    string      `json:"category"`
	Amount      int64       `json:"amount"`
	Kind        domain.Kind `json:"kind" binding:"omitempty,oneof=expense income"`
	Description string      `json:"description"`
	Date        *time.Time  `json:"date"`
}

// RecordTransferRequest defines a movement between two accounts of a container.
type RecordTransferRequest struct {
	FromAccountID int64      `json:"fromAccountID" binding:"required"`
	ToAccountID   int64      `json:"toAccountID" binding:"required"`
	Amount        int64      `json:"amount"`
	Description   string     `json:"description"`
	Date          *time.Time `json:"date"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int    `form:"limit"`
	NextToken string `form:"nextToken"`
	Month     string `form:"month"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID         int64     `json:"transactionID"`
	ContainerID           int64     `json:"containerID"`
	AccountID             int64     `json:"accountID"`
	Amount                int64     `json:"amount"`
	Description           string    `json:"description"`
	Category              string    `json:"category"`
	Date                  time.Time `json:"date"`
	TransferGroupID       int64     `json:"transferGroupID,omitempty"`
	CounterpartyAccountID int64     `json:"counterpartyAccountID,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// TransferResponse defines the data returned for a recorded transfer.
type TransferResponse struct {
	TransferGroupID int64               `json:"transferGroupID"`
	From            TransactionResponse `json:"from"`
	To              TransactionResponse `json:"to"`
}

// DeleteTransactionResponse lists every transaction removed by a delete.
type DeleteTransactionResponse struct {
	DeletedTransactionIDs []int64 `json:"deletedTransactionIDs"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:         t.TransactionID,
		ContainerID:           t.ContainerID,
		AccountID:             t.AccountID,
		Amount:                t.Amount,
		Description:           t.Description,
		Category:              t.Category,
		Date:                  t.Date,
		TransferGroupID:       t.TransferGroupID,
		CounterpartyAccountID: t.CounterpartyAccountID,
		CreatedAt:             t.CreatedAt,
	}
}

// ToListTransactionsResponse converts a page of transactions to its DTO
func ToListTransactionsResponse(txns []domain.Transaction, nextToken string) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: res, NextToken: nextToken}
}

// ToTransferResponse converts a domain.Transfer to its DTO
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferGroupID: t.TransferGroupID,
		From:            ToTransactionResponse(&t.From),
		To:              ToTransactionResponse(&t.To),
	}
}
