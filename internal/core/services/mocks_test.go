package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/poultrymitra/mitra_backend/internal/core/domain"
	portsrepo "github.com/poultrymitra/mitra_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, q portsrepo.TransactionQuery) ([]domain.Transaction, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

// --- Mock BatchRepository ---
type MockBatchRepository struct {
	mock.Mock
}

var _ portsrepo.BatchRepositoryWithTx = (*MockBatchRepository)(nil)

func (m *MockBatchRepository) FindBatchByID(ctx context.Context, batchID string) (*domain.Batch, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Batch), args.Error(1)
}

func (m *MockBatchRepository) ListBatchesByFarmer(ctx context.Context, farmerID string, limit int, offset int) ([]domain.Batch, error) {
	args := m.Called(ctx, farmerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Batch), args.Error(1)
}

func (m *MockBatchRepository) SaveBatch(ctx context.Context, batch domain.Batch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockBatchRepository) FindBatchByIDForUpdate(ctx context.Context, tx pgx.Tx, batchID string) (*domain.Batch, error) {
	args := m.Called(ctx, tx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Batch), args.Error(1)
}

func (m *MockBatchRepository) UpdateBatchInTx(ctx context.Context, tx pgx.Tx, batch domain.Batch) error {
	args := m.Called(ctx, tx, batch)
	return args.Error(0)
}

func (m *MockBatchRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockBatchRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockBatchRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock AggregationRecorder ---
type MockAggregationRecorder struct {
	mock.Mock
}

func (m *MockAggregationRecorder) ObserveAggregation(transactions int, farmers int, elapsed time.Duration) {
	m.Called(transactions, farmers, elapsed)
}

func (m *MockAggregationRecorder) AggregationFailed(reason string) {
	m.Called(reason)
}
