package mapping

import (
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Zero transfer fields become NULLs.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:   d.TransactionID,
		ContainerID:     d.ContainerID,
		AccountID:       d.AccountID,
		Amount:          d.Amount,
		Description:     d.Description,
		Category:        d.Category,
		TransactionDate: d.Date,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if d.TransferGroupID != 0 {
		group := d.TransferGroupID
		m.TransferGroupID = &group
	}
	if d.CounterpartyAccountID != 0 {
		counterparty := d.CounterpartyAccountID
		m.CounterpartyAccountID = &counterparty
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		ContainerID:   m.ContainerID,
		AccountID:     m.AccountID,
		Amount:        m.Amount,
		Description:   m.Description,
		Category:      m.Category,
		Date:          m.TransactionDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.TransferGroupID != nil {
		d.TransferGroupID = *m.TransferGroupID
	}
	if m.CounterpartyAccountID != nil {
		d.CounterpartyAccountID = *m.CounterpartyAccountID
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
