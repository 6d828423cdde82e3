package models

import "time"

// Transaction represents a single ledger row. Transfer fields are NULL for direct entries.
type Transaction struct {
	TransactionID         int64     `db:"transaction_id"`
	ContainerID           int64     `db:"container_id"`
	AccountID             int64     `db:"account_id"`
	Amount                int64     `db:"amount"`
	Description           string    `db:"description"`
	Category              string    `db:"category"`
	TransactionDate       time.Time `db:"transaction_date"`
	TransferGroupID       *int64    `db:"transfer_group_id"`
	CounterpartyAccountID *int64    `db:"counterparty_account_id"`
	AuditFields
}
