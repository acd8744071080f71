package mapping

import (
	"github.com/penwald/envelope_budget_app/internal/core/domain"
	"github.com/penwald/envelope_budget_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:       d.TransactionID,
		Date:                d.Date,
		Description:         d.Description,
		Amount:              d.Amount,
		Type:                models.TransactionType(d.Type),
		CategoryID:          d.CategoryID,
		ParentTransactionID: d.ParentTransactionID,
		TransferPeerID:      d.TransferPeerID,
		TransferDirection:   models.TransferDirection(d.TransferDirection),
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:       m.TransactionID,
		Date:                m.Date,
		Description:         m.Description,
		Amount:              m.Amount,
		Type:                domain.TransactionType(m.Type),
		CategoryID:          m.CategoryID,
		ParentTransactionID: m.ParentTransactionID,
		TransferPeerID:      m.TransferPeerID,
		TransferDirection:   domain.TransferDirection(m.TransferDirection),
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToModelTransactionSlice converts a slice of domain Transactions to model Transactions.
func ToModelTransactionSlice(ds []domain.Transaction) []models.Transaction {
	ms := make([]models.Transaction, len(ds))
	for i, d := range ds {
		ms[i] = ToModelTransaction(d)
	}
	return ms
}
