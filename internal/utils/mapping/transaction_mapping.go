package mapping

import (
	"github.com/poultrymitra/mitra_backend/internal/core/domain"
	"github.com/poultrymitra/mitra_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		FarmerID:        d.FarmerID,
		DealerID:        d.DealerID,
		TransactionType: models.TransactionType(d.TransactionType),
		Amount:          d.Amount,
		TransactionDate: d.Date,
		Category:        d.Category,
		Description:     d.Description,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
// The stored type is copied verbatim; validation happens before aggregation.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		FarmerID:        m.FarmerID,
		DealerID:        m.DealerID,
		TransactionType: domain.TransactionType(m.TransactionType),
		Amount:          m.Amount,
		Date:            m.TransactionDate,
		Category:        m.Category,
		Description:     m.Description,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
