package handlers_test

import (
	"context"
	"time"

	"github.com/poultrymitra/mitra_backend/internal/core/domain"
	portssvc "github.com/poultrymitra/mitra_backend/internal/core/ports/services"
	"github.com/poultrymitra/mitra_backend/internal/dto"
	"github.com/poultrymitra/mitra_backend/internal/middleware"
	"github.com/stretchr/testify/mock"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// generateTestToken creates a signed JWT carrying the given role.
func generateTestToken(userID string, role domain.Role) (string, error) {
	return middleware.IssueToken(domain.Principal{UserID: userID, Role: role}, testJWTSecret, time.Hour, "mitra-test")
}

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) RecordTransaction(ctx context.Context, dealerID string, req dto.RecordTransactionRequest, principal domain.Principal) (*domain.Transaction, error) {
	args := m.Called(ctx, dealerID, req, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) GetTransaction(ctx context.Context, dealerID string, transactionID string, principal domain.Principal) (*domain.Transaction, error) {
	args := m.Called(ctx, dealerID, transactionID, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, dealerID string, params dto.ListTransactionsParams, principal domain.Principal) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, dealerID, params, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockLedgerService) FarmerBalances(ctx context.Context, dealerID string, params dto.BalanceParams, principal domain.Principal) (*domain.DealerLedger, error) {
	args := m.Called(ctx, dealerID, params, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DealerLedger), args.Error(1)
}

func (m *MockLedgerService) FarmerBalance(ctx context.Context, dealerID string, farmerID string, principal domain.Principal) (*domain.FarmerAccountBalance, error) {
	args := m.Called(ctx, dealerID, farmerID, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FarmerAccountBalance), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock BatchService ---
type MockBatchService struct {
	mock.Mock
}

func (m *MockBatchService) CreateBatch(ctx context.Context, req dto.CreateBatchRequest, principal domain.Principal) (*domain.Batch, error) {
	args := m.Called(ctx, req, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Batch), args.Error(1)
}

func (m *MockBatchService) GetBatch(ctx context.Context, batchID string, principal domain.Principal) (*domain.Batch, error) {
	args := m.Called(ctx, batchID, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Batch), args.Error(1)
}

func (m *MockBatchService) ListFarmerBatches(ctx context.Context, farmerID string, params dto.ListBatchesParams, principal domain.Principal) ([]domain.Batch, error) {
	args := m.Called(ctx, farmerID, params, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Batch), args.Error(1)
}

func (m *MockBatchService) RecordBatchUpdate(ctx context.Context, batchID string, req dto.BatchUpdateRequest, principal domain.Principal) (*domain.Batch, error) {
	args := m.Called(ctx, batchID, req, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Batch), args.Error(1)
}

var _ portssvc.BatchSvcFacade = (*MockBatchService)(nil)

// --- Mock TranslationService ---
type MockTranslationService struct {
	mock.Mock
}

func (m *MockTranslationService) Translate(ctx context.Context, key string, lang string) (string, error) {
	args := m.Called(ctx, key, lang)
	return args.String(0), args.Error(1)
}

var _ portssvc.TranslationSvc = (*MockTranslationService)(nil)
