package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/poultrymitra/mitra_backend/internal/core/domain"
)

// BatchReader defines read operations for poultry batches
type BatchReader interface {
	FindBatchByID(ctx context.Context, batchID string) (*domain.Batch, error)
	ListBatchesByFarmer(ctx context.Context, farmerID string, limit int, offset int) ([]domain.Batch, error)
}

// BatchWriter defines write operations for poultry batches
type BatchWriter interface {
	SaveBatch(ctx context.Context, batch domain.Batch) error
}

// BatchTransactionSupport defines read-modify-write support for field updates
type BatchTransactionSupport interface {
	// FindBatchByIDForUpdate selects a batch and locks it within tx.
	FindBatchByIDForUpdate(ctx context.Context, tx pgx.Tx, batchID string) (*domain.Batch, error)

	// UpdateBatchInTx writes the mutable batch columns within tx.
	UpdateBatchInTx(ctx context.Context, tx pgx.Tx, batch domain.Batch) error
}

// BatchRepositoryFacade combines all batch-related repository interfaces
type BatchRepositoryFacade interface {
	BatchReader
	BatchWriter
	BatchTransactionSupport
}

// BatchRepositoryWithTx extends BatchRepositoryFacade with transaction capabilities
type BatchRepositoryWithTx interface {
	BatchRepositoryFacade
	TransactionManager
}
