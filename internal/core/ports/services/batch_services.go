package services

import (
	"context"

	"github.com/poultrymitra/mitra_backend/internal/core/domain"
	"github.com/poultrymitra/mitra_backend/internal/dto"
)

// BatchSvcFacade defines operations on poultry batches
type BatchSvcFacade interface {
	CreateBatch(ctx context.Context, req dto.CreateBatchRequest, principal domain.Principal) (*domain.Batch, error)
	GetBatch(ctx context.Context, batchID string, principal domain.Principal) (*domain.Batch, error)
	ListFarmerBatches(ctx context.Context, farmerID string, params dto.ListBatchesParams, principal domain.Principal) ([]domain.Batch, error)
	RecordBatchUpdate(ctx context.Context, batchID string, req dto.BatchUpdateRequest, principal domain.Principal) (*domain.Batch, error)
}
