package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/poultrymitra/mitra_backend/internal/apperrors"
	"github.com/poultrymitra/mitra_backend/internal/core/domain"
	portsrepo "github.com/poultrymitra/mitra_backend/internal/core/ports/repositories"
	portssvc "github.com/poultrymitra/mitra_backend/internal/core/ports/services"
	"github.com/poultrymitra/mitra_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// batchService implements the BatchSvcFacade interface
type batchService struct {
	BaseService
	batchRepo portsrepo.BatchRepositoryWithTx
	now       func() time.Time
}

// BatchOption is a functional option for configuring the batch service
type BatchOption func(*batchService)

// WithBatchClock overrides time.Now
func WithBatchClock(now func() time.Time) BatchOption {
	return func(s *batchService) {
		s.now = now
	}
}

// NewBatchService creates a new batch service with the provided options
func NewBatchService(repo portsrepo.BatchRepositoryWithTx, options ...BatchOption) portssvc.BatchSvcFacade {
	svc := &batchService{
		batchRepo: repo,
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure batchService implements the BatchSvcFacade interface
var _ portssvc.BatchSvcFacade = (*batchService)(nil)

func (s *batchService) CreateBatch(ctx context.Context, req dto.CreateBatchRequest, principal domain.Principal) (*domain.Batch, error) {
	farmerID := req.FarmerID
	dealerID := req.DealerID
	switch principal.Role {
	case domain.RoleFarmer:
		if farmerID == "" {
			farmerID = principal.UserID
		}
	case domain.RoleDealer:
		if dealerID == "" {
			dealerID = principal.UserID
		}
	}
	if err := s.Authorize(ctx, principal, dealerID, farmerID); err != nil {
		return nil, err
	}

	now := s.now()
	batch := domain.Batch{
		BatchID:         uuid.NewString(),
		FarmerID:        farmerID,
		DealerID:        dealerID,
		Name:            req.Name,
		Breed:           req.Breed,
		StartDate:       req.StartDate,
		InitialCount:    req.InitialCount,
		FeedConsumedKg:  decimal.Zero,
		AverageWeightKg: req.AverageWeightKg,
		Status:          domain.BatchActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}
	if err := batch.Validate(); err != nil {
		return nil, err
	}

	if err := s.batchRepo.SaveBatch(ctx, batch); err != nil {
		s.LogError(ctx, err, "Failed to save batch",
			slog.String("batch_id", batch.BatchID),
			slog.String("farmer_id", farmerID))
		return nil, fmt.Errorf("failed to save batch: %w", err)
	}

	s.LogInfo(ctx, "Batch created",
		slog.String("batch_id", batch.BatchID),
		slog.String("farmer_id", farmerID),
		slog.Int("initial_count", batch.InitialCount))
	return &batch, nil
}

func (s *batchService) GetBatch(ctx context.Context, batchID string, principal domain.Principal) (*domain.Batch, error) {
	batch, err := s.batchRepo.FindBatchByID(ctx, batchID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find batch", slog.String("batch_id", batchID))
		}
		return nil, err
	}
	if err := s.Authorize(ctx, principal, batch.DealerID, batch.FarmerID); err != nil {
		return nil, err
	}
	return batch, nil
}

func (s *batchService) ListFarmerBatches(ctx context.Context, farmerID string, params dto.ListBatchesParams, principal domain.Principal) ([]domain.Batch, error) {
	// A dealer may list a farmer's batches but only sees those it supplies.
	dealerScope := ""
	if principal.Role == domain.RoleDealer {
		dealerScope = principal.UserID
	}
	if err := s.Authorize(ctx, principal, dealerScope, farmerID); err != nil {
		return nil, err
	}

	batches, err := s.batchRepo.ListBatchesByFarmer(ctx, farmerID, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list batches",
			slog.String("farmer_id", farmerID),
			slog.Int("limit", params.Limit),
			slog.Int("offset", params.Offset))
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}

	out := make([]domain.Batch, 0, len(batches))
	for _, b := range batches {
		if dealerScope != "" && b.DealerID != dealerScope {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *batchService) RecordBatchUpdate(ctx context.Context, batchID string, req dto.BatchUpdateRequest, principal domain.Principal) (_ *domain.Batch, err error) {
	tx, err := s.batchRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction", slog.String("batch_id", batchID))
		return nil, err
	}
	defer func() {
		if err != nil {
			if rbErr := s.batchRepo.Rollback(ctx, tx); rbErr != nil {
				s.LogError(ctx, rbErr, "Failed to roll back batch update", slog.String("batch_id", batchID))
			}
		}
	}()

	batch, err := s.batchRepo.FindBatchByIDForUpdate(ctx, tx, batchID)
	if err != nil {
		return nil, err
	}
	if err = s.Authorize(ctx, principal, batch.DealerID, batch.FarmerID); err != nil {
		return nil, err
	}
	if err = batch.ApplyUpdate(req.ToDomainBatchUpdate()); err != nil {
		return nil, err
	}
	batch.LastUpdatedAt = s.now()
	batch.LastUpdatedBy = principal.UserID

	if err = s.batchRepo.UpdateBatchInTx(ctx, tx, *batch); err != nil {
		s.LogError(ctx, err, "Failed to update batch", slog.String("batch_id", batchID))
		return nil, fmt.Errorf("failed to update batch: %w", err)
	}
	if err = s.batchRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit batch update", slog.String("batch_id", batchID))
		return nil, err
	}

	s.LogInfo(ctx, "Batch updated",
		slog.String("batch_id", batchID),
		slog.Int("deaths", req.Deaths),
		slog.String("feed_kg", req.FeedKg.String()),
		slog.String("status", string(batch.Status)))
	return batch, nil
}
