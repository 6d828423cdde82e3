package domain

import "time"

// EventType names a ledger change published after a successful write.
type EventType string

const (
	EventTransactionRecorded EventType = "transaction.recorded"
	EventTransactionUpdated  EventType = "transaction.updated"
	EventTransactionDeleted  EventType = "transaction.deleted"
	EventTransferRecorded    EventType = "transfer.recorded"
	EventAccountCreated      EventType = "account.created"
	EventAccountUpdated      EventType = "account.updated"
	EventCategoryCreated     EventType = "category.created"
	EventCategoryDeleted     EventType = "category.deleted"
	EventContainerCreated    EventType = "container.created"
	EventContainerUpdated    EventType = "container.updated"
	EventContainerDeleted    EventType = "container.deleted"
	EventContainerReconciled EventType = "container.reconciled"
	EventImportCompleted     EventType = "import.completed"
)

// LedgerEvent describes one committed change. ContainerID is 0 for changes that
// affect every container (categories are global).
type LedgerEvent struct {
	ID              string    `json:"id"`
	Type            EventType `json:"type"`
	ContainerID     int64     `json:"containerID"`
	AccountID       int64     `json:"accountID,omitempty"`
	TransactionIDs  []int64   `json:"transactionIDs,omitempty"`
	TransferGroupID int64     `json:"transferGroupID,omitempty"`
	OccurredAt      time.Time `json:"occurredAt"`
}
