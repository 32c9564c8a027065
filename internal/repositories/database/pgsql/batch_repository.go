package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/poultrymitra/mitra_backend/internal/apperrors"
	"github.com/poultrymitra/mitra_backend/internal/core/domain"
	portsrepo "github.com/poultrymitra/mitra_backend/internal/core/ports/repositories"
	"github.com/poultrymitra/mitra_backend/internal/models"
	"github.com/poultrymitra/mitra_backend/internal/utils/mapping"
)

const batchColumns = `batch_id, farmer_id, dealer_id, name, breed, start_date, initial_count, mortality,
		feed_consumed_kg, average_weight_kg, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxBatchRepository struct {
	BaseRepository
}

// newPgxBatchRepository creates a new repository for poultry batches.
func newPgxBatchRepository(pool *pgxpool.Pool) portsrepo.BatchRepositoryWithTx {
	return &PgxBatchRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBatchRepository implements portsrepo.BatchRepositoryWithTx
var _ portsrepo.BatchRepositoryWithTx = (*PgxBatchRepository)(nil)

// SaveBatch inserts a new batch.
func (r *PgxBatchRepository) SaveBatch(ctx context.Context, batch domain.Batch) error {
	m := mapping.ToModelBatch(batch)
	query := `
		INSERT INTO batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BatchID, m.FarmerID, m.DealerID, m.Name, m.Breed, m.StartDate,
		m.InitialCount, m.Mortality, m.FeedConsumedKg, m.AverageWeightKg, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: batch with ID %s already exists", apperrors.ErrDuplicate, m.BatchID)
		}
		return apperrors.NewAppError(500, "failed to insert batch "+m.BatchID, err)
	}
	return nil
}

// FindBatchByID retrieves a batch by its ID.
func (r *PgxBatchRepository) FindBatchByID(ctx context.Context, batchID string) (*domain.Batch, error) {
	return r.findOne(ctx, r.Pool, `SELECT `+batchColumns+` FROM batches WHERE batch_id = $1;`, batchID)
}

// FindBatchByIDForUpdate selects a batch and locks its row until tx ends.
func (r *PgxBatchRepository) FindBatchByIDForUpdate(ctx context.Context, tx pgx.Tx, batchID string) (*domain.Batch, error) {
	return r.findOne(ctx, tx, `SELECT `+batchColumns+` FROM batches WHERE batch_id = $1 FOR UPDATE;`, batchID)
}

// ListBatchesByFarmer retrieves a farmer's batches, newest first.
func (r *PgxBatchRepository) ListBatchesByFarmer(ctx context.Context, farmerID string, limit int, offset int) ([]domain.Batch, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT ` + batchColumns + `
		FROM batches
		WHERE farmer_id = $1
		ORDER BY start_date DESC, batch_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, farmerID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query batches for farmer "+farmerID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Batch])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan batches for farmer "+farmerID, err)
	}
	return mapping.ToDomainBatchSlice(ms), nil
}

// UpdateBatchInTx writes the mutable columns of a locked batch.
func (r *PgxBatchRepository) UpdateBatchInTx(ctx context.Context, tx pgx.Tx, batch domain.Batch) error {
	m := mapping.ToModelBatch(batch)
	query := `
		UPDATE batches
		SET mortality = $2, feed_consumed_kg = $3, average_weight_kg = $4, status = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE batch_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.BatchID, m.Mortality, m.FeedConsumedKg, m.AverageWeightKg, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update batch "+m.BatchID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *PgxBatchRepository) findOne(ctx context.Context, q querier, query string, batchID string) (*domain.Batch, error) {
	rows, err := q.Query(ctx, query, batchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query batch "+batchID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Batch])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan batch "+batchID, err)
	}
	b := mapping.ToDomainBatch(m)
	return &b, nil
}
