package domain

import "time"

const (
	// DefaultDescription is stored when a direct entry has no description.
	DefaultDescription = "Untitled"
	// DefaultTransferDescription is stored when a transfer has no description.
	DefaultTransferDescription = "Transfer"
)

// Transaction is a signed movement on one account. A positive Amount always increases
// the account's balance, whatever its classification.
type Transaction struct {
	TransactionID         int64     `json:"transactionID"`
	ContainerID           int64     `json:"containerID"`
	AccountID             int64     `json:"accountID"`
	Amount                int64     `json:"amount"` // stored signed amount, minor units
	Description           string    `json:"description"`
	Category              string    `json:"category"`
	Date                  time.Time `json:"date"`
	TransferGroupID       int64     `json:"transferGroupID"`       // 0 for direct entries
	CounterpartyAccountID int64     `json:"counterpartyAccountID"` // 0 for direct entries
	AuditFields
}

// IsTransfer reports whether t is one leg of a transfer.
func (t Transaction) IsTransfer() bool {
	return t.TransferGroupID != 0
}

// Transfer is the pair of legs written by one transfer.
type Transfer struct {
	TransferGroupID int64       `json:"transferGroupID"`
	From            Transaction `json:"from"`
	To              Transaction `json:"to"`
}
