package dto

import (
	"time"

	"github.com/poultrymitra/mitra_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBatchRequest defines the data needed to start a new batch.
// A farmer creating a batch for themselves may omit FarmerID.
type CreateBatchRequest struct {
	FarmerID        string          `json:"farmerId"`
	DealerID        string          `json:"dealerId"` // Optional
	Name            string          `json:"name" binding:"required,max=100"`
	Breed           string          `json:"breed" binding:"max=64"`
	StartDate       time.Time       `json:"startDate" binding:"required"`
	InitialCount    int             `json:"initialCount" binding:"required,min=1"`
	AverageWeightKg decimal.Decimal `json:"averageWeightKg"`
}

// BatchUpdateRequest is a periodic field report for a batch.
type BatchUpdateRequest struct {
	Deaths          int              `json:"deaths" binding:"min=0"`
	FeedKg          decimal.Decimal  `json:"feedKg"`
	AverageWeightKg *decimal.Decimal `json:"averageWeightKg"` // Optional
	Complete        bool             `json:"complete"`
}

// ListBatchesParams defines query parameters for listing a farmer's batches.
type ListBatchesParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// BatchResponse defines the data returned for a batch, including derived metrics.
type BatchResponse struct {
	BatchID         string                  `json:"batchID"`
	FarmerID        string                  `json:"farmerId"`
	DealerID        string                  `json:"dealerId,omitempty"`
	Name            string                  `json:"name"`
	Breed           string                  `json:"breed"`
	StartDate       time.Time               `json:"startDate"`
	InitialCount    int                     `json:"initialCount"`
	Mortality       int                     `json:"mortality"`
	FeedConsumedKg  decimal.Decimal         `json:"feedConsumedKg"`
	AverageWeightKg decimal.Decimal         `json:"averageWeightKg"`
	Status          domain.BatchStatus      `json:"status"`
	Performance     domain.BatchPerformance `json:"performance"`
	CreatedAt       time.Time               `json:"createdAt"`
	LastUpdatedAt   time.Time               `json:"lastUpdatedAt"`
}

// ToDomainBatchUpdate converts the request into a domain.BatchUpdate
func (r BatchUpdateRequest) ToDomainBatchUpdate() domain.BatchUpdate {
	return domain.BatchUpdate{
		Deaths:          r.Deaths,
		FeedKg:          r.FeedKg,
		AverageWeightKg: r.AverageWeightKg,
		Complete:        r.Complete,
	}
}

// ToBatchResponse converts a domain.Batch to BatchResponse DTO with metrics as of now
func ToBatchResponse(b *domain.Batch, now time.Time) BatchResponse {
	return BatchResponse{
		BatchID:         b.BatchID,
		FarmerID:        b.FarmerID,
		DealerID:        b.DealerID,
		Name:            b.Name,
		Breed:           b.Breed,
		StartDate:       b.StartDate,
		InitialCount:    b.InitialCount,
		Mortality:       b.Mortality,
		FeedConsumedKg:  b.FeedConsumedKg,
		AverageWeightKg: b.AverageWeightKg,
		Status:          b.Status,
		Performance:     b.Performance(now),
		CreatedAt:       b.CreatedAt,
		LastUpdatedAt:   b.LastUpdatedAt,
	}
}

// ToListBatchResponse converts a slice of domain.Batch to BatchResponse DTOs
func ToListBatchResponse(batches []domain.Batch, now time.Time) []BatchResponse {
	res := make([]BatchResponse, len(batches))
	for i := range batches {
		res[i] = ToBatchResponse(&batches[i], now)
	}
	return res
}
