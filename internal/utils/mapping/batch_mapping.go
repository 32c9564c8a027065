package mapping

import (
	"github.com/poultrymitra/mitra_backend/internal/core/domain"
	"github.com/poultrymitra/mitra_backend/internal/models"
)

// ToModelBatch converts a domain Batch to a model Batch
func ToModelBatch(d domain.Batch) models.Batch {
	var dealerID *string
	if d.DealerID != "" {
		id := d.DealerID
		dealerID = &id
	}
	return models.Batch{
		BatchID:         d.BatchID,
		FarmerID:        d.FarmerID,
		DealerID:        dealerID,
		Name:            d.Name,
		Breed:           d.Breed,
		StartDate:       d.StartDate,
		InitialCount:    d.InitialCount,
		Mortality:       d.Mortality,
		FeedConsumedKg:  d.FeedConsumedKg,
		AverageWeightKg: d.AverageWeightKg,
		Status:          string(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBatch converts a model Batch to a domain Batch
func ToDomainBatch(m models.Batch) domain.Batch {
	dealerID := ""
	if m.DealerID != nil {
		dealerID = *m.DealerID
	}
	return domain.Batch{
		BatchID:         m.BatchID,
		FarmerID:        m.FarmerID,
		DealerID:        dealerID,
		Name:            m.Name,
		Breed:           m.Breed,
		StartDate:       m.StartDate,
		InitialCount:    m.InitialCount,
		Mortality:       m.Mortality,
		FeedConsumedKg:  m.FeedConsumedKg,
		AverageWeightKg: m.AverageWeightKg,
		Status:          domain.BatchStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBatchSlice converts a slice of model Batches to domain Batches
func ToDomainBatchSlice(ms []models.Batch) []domain.Batch {
	ds := make([]domain.Batch, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBatch(m)
	}
	return ds
}
