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
	"github.com/poultrymitra/mitra_backend/internal/utils/accounting"
	"github.com/poultrymitra/mitra_backend/internal/utils/pagination"
	"github.com/poultrymitra/mitra_backend/internal/utils/retry"
)

const defaultPageSize = 20

// AggregationRecorder receives measurements of balance aggregation runs.
type AggregationRecorder interface {
	ObserveAggregation(transactions int, farmers int, elapsed time.Duration)
	AggregationFailed(reason string)
}

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	retryPolicy retry.Policy
	recorder    AggregationRecorder
	now         func() time.Time
}

// LedgerOption is a functional option for configuring the ledger service
type LedgerOption func(*ledgerService)

// WithLedgerRetryPolicy sets the retry policy for store reads
func WithLedgerRetryPolicy(p retry.Policy) LedgerOption {
	return func(s *ledgerService) {
		s.retryPolicy = p
	}
}

// WithAggregationRecorder adds an aggregation metrics sink
func WithAggregationRecorder(r AggregationRecorder) LedgerOption {
	return func(s *ledgerService) {
		s.recorder = r
	}
}

// WithLedgerClock overrides time.Now
func WithLedgerClock(now func() time.Time) LedgerOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(repo portsrepo.TransactionRepositoryFacade, options ...LedgerOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		txnRepo:     repo,
		retryPolicy: retry.DefaultPolicy(),
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) RecordTransaction(ctx context.Context, dealerID string, req dto.RecordTransactionRequest, principal domain.Principal) (*domain.Transaction, error) {
	if err := s.Authorize(ctx, principal, dealerID, ""); err != nil {
		return nil, err
	}

	now := s.now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		FarmerID:        req.FarmerID,
		DealerID:        dealerID,
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		Date:            date,
		Category:        req.Category,
		Description:     req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	// Writes are not retried: a lost reply would turn into a duplicate on replay.
	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("dealer_id", dealerID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("dealer_id", dealerID),
		slog.String("farmer_id", txn.FarmerID),
		slog.String("type", string(txn.TransactionType)))
	return &txn, nil
}

func (s *ledgerService) GetTransaction(ctx context.Context, dealerID string, transactionID string, principal domain.Principal) (*domain.Transaction, error) {
	// Dealers are checked before the read so a foreign ledger answers the same
	// for existing and missing ids. Farmers need the record to know its owner.
	if principal.Role != domain.RoleFarmer {
		if err := s.Authorize(ctx, principal, dealerID, ""); err != nil {
			return nil, err
		}
	}

	txn, err := retry.DoValue(ctx, s.retryPolicy, func(ctx context.Context) (*domain.Transaction, error) {
		return s.txnRepo.FindTransactionByID(ctx, transactionID)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	// Another dealer's transaction is reported as missing.
	if txn.DealerID != dealerID {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	if err := s.Authorize(ctx, principal, dealerID, txn.FarmerID); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, dealerID string, params dto.ListTransactionsParams, principal domain.Principal) (*dto.ListTransactionsResponse, error) {
	farmerID := params.FarmerID
	if principal.Role == domain.RoleFarmer && farmerID == "" {
		farmerID = principal.UserID
	}
	if err := s.Authorize(ctx, principal, dealerID, farmerID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	q := portsrepo.TransactionQuery{
		DealerID: dealerID,
		FarmerID: farmerID,
		From:     params.From,
		To:       inclusiveEnd(params.To),
		Limit:    limit + 1,
	}
	if params.NextToken != "" {
		cursor, err := pagination.DecodeCursor(params.NextToken)
		if err != nil {
			return nil, err
		}
		q.AfterDate = cursor.Date
		q.AfterID = cursor.ID
	}

	txns, err := s.loadTransactions(ctx, q)
	if err != nil {
		return nil, err
	}

	var nextToken *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[limit-1]
		token := pagination.EncodeCursor(last.Date, last.TransactionID)
		nextToken = &token
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToListTransactionResponse(txns),
		NextToken:    nextToken,
	}, nil
}

func (s *ledgerService) FarmerBalances(ctx context.Context, dealerID string, params dto.BalanceParams, principal domain.Principal) (*domain.DealerLedger, error) {
	if err := s.Authorize(ctx, principal, dealerID, ""); err != nil {
		return nil, err
	}

	txns, err := s.loadTransactions(ctx, portsrepo.TransactionQuery{
		DealerID: dealerID,
		From:     params.From,
		To:       inclusiveEnd(params.To),
	})
	if err != nil {
		return nil, err
	}

	balances, err := s.aggregate(ctx, dealerID, txns)
	if err != nil {
		return nil, err
	}
	accounting.SortByNetBalanceDesc(balances)

	return &domain.DealerLedger{
		DealerID: dealerID,
		Balances: balances,
		Summary:  accounting.Summarize(balances),
	}, nil
}

func (s *ledgerService) FarmerBalance(ctx context.Context, dealerID string, farmerID string, principal domain.Principal) (*domain.FarmerAccountBalance, error) {
	if farmerID == "" {
		return nil, fmt.Errorf("%w: farmerId is required", apperrors.ErrValidation)
	}
	if err := s.Authorize(ctx, principal, dealerID, farmerID); err != nil {
		return nil, err
	}

	txns, err := s.loadTransactions(ctx, portsrepo.TransactionQuery{
		DealerID: dealerID,
		FarmerID: farmerID,
	})
	if err != nil {
		return nil, err
	}

	balances, err := s.aggregate(ctx, dealerID, txns)
	if err != nil {
		return nil, err
	}
	for _, b := range balances {
		if b.FarmerID == farmerID {
			return &b, nil
		}
	}
	zero := domain.ZeroBalance(farmerID)
	return &zero, nil
}

// loadTransactions reads from the store, retrying transient failures.
func (s *ledgerService) loadTransactions(ctx context.Context, q portsrepo.TransactionQuery) ([]domain.Transaction, error) {
	policy := s.retryPolicy
	policy.OnRetry = func(err error, wait time.Duration) {
		s.LogDebug(ctx, "Retrying transaction read",
			slog.String("error", err.Error()),
			slog.Duration("wait", wait),
			slog.String("dealer_id", q.DealerID))
	}

	txns, err := retry.DoValue(ctx, policy, func(ctx context.Context) ([]domain.Transaction, error) {
		return s.txnRepo.ListTransactions(ctx, q)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list transactions", slog.String("dealer_id", q.DealerID))
		}
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// aggregate scopes rows to the dealer and folds them into per-farmer balances.
func (s *ledgerService) aggregate(ctx context.Context, dealerID string, txns []domain.Transaction) ([]domain.FarmerAccountBalance, error) {
	start := s.now()
	scoped := accounting.FilterTransactions(txns, accounting.TransactionFilter{DealerID: dealerID})

	balances, err := accounting.AggregateFarmerBalances(scoped)
	if err != nil {
		s.LogError(ctx, err, "Malformed transaction in ledger", slog.String("dealer_id", dealerID))
		if s.recorder != nil {
			s.recorder.AggregationFailed(failureReason(err))
		}
		return nil, err
	}

	if s.recorder != nil {
		s.recorder.ObserveAggregation(len(scoped), len(balances), s.now().Sub(start))
	}
	s.LogDebug(ctx, "Balances aggregated",
		slog.String("dealer_id", dealerID),
		slog.Int("transactions", len(scoped)),
		slog.Int("farmers", len(balances)))
	return balances, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownTransactionType):
		return "unknown_type"
	case errors.Is(err, domain.ErrNegativeAmount):
		return "negative_amount"
	case errors.Is(err, apperrors.ErrValidation):
		return "validation"
	default:
		return "other"
	}
}

// inclusiveEnd extends a date-only upper bound to the last instant of that day.
func inclusiveEnd(to time.Time) time.Time {
	if to.IsZero() {
		return to
	}
	return to.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
