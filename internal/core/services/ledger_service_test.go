package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poultrymitra/mitra_backend/internal/apperrors"
	"github.com/poultrymitra/mitra_backend/internal/core/domain"
	portsrepo "github.com/poultrymitra/mitra_backend/internal/core/ports/repositories"
	portssvc "github.com/poultrymitra/mitra_backend/internal/core/ports/services"
	"github.com/poultrymitra/mitra_backend/internal/core/services"
	"github.com/poultrymitra/mitra_backend/internal/dto"
	"github.com/poultrymitra/mitra_backend/internal/utils/pagination"
	"github.com/poultrymitra/mitra_backend/internal/utils/retry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockTransactionRepository
	mockRecorder *MockAggregationRecorder
	service      portssvc.LedgerSvcFacade
	now          time.Time
	dealer       domain.Principal
	farmer       domain.Principal
	admin        domain.Principal
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockRecorder = new(MockAggregationRecorder)
	suite.now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	suite.service = services.NewLedgerService(suite.mockRepo,
		services.WithLedgerRetryPolicy(retry.Policy{InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, MaxRetries: 2}),
		services.WithAggregationRecorder(suite.mockRecorder),
		services.WithLedgerClock(func() time.Time { return suite.now }),
	)
	suite.dealer = domain.Principal{UserID: "D1", Role: domain.RoleDealer}
	suite.farmer = domain.Principal{UserID: "F1", Role: domain.RoleFarmer}
	suite.admin = domain.Principal{UserID: "root", Role: domain.RoleAdmin}
}

func txn(id, farmerID string, typ domain.TransactionType, amount int64) domain.Transaction {
	return domain.Transaction{
		TransactionID:   id,
		FarmerID:        farmerID,
		DealerID:        "D1",
		TransactionType: typ,
		Amount:          decimal.NewFromInt(amount),
		Date:            time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_Success() {
	ctx := context.Background()
	req := dto.RecordTransactionRequest{
		FarmerID:        "F1",
		TransactionType: domain.Debit,
		Amount:          decimal.NewFromInt(1000),
		Category:        "feed",
	}
	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.DealerID == "D1" && t.FarmerID == "F1" && t.TransactionID != ""
	})).Return(nil).Once()

	created, err := suite.service.RecordTransaction(ctx, "D1", req, suite.dealer)

	suite.Require().NoError(err)
	suite.NotEmpty(created.TransactionID)
	suite.Equal(suite.now, created.Date)
	suite.Equal("D1", created.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_FarmerForbidden() {
	ctx := context.Background()
	req := dto.RecordTransactionRequest{FarmerID: "F1", TransactionType: domain.Credit, Amount: decimal.NewFromInt(10)}

	_, err := suite.service.RecordTransaction(ctx, "D1", req, suite.farmer)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_OtherDealerForbidden() {
	ctx := context.Background()
	req := dto.RecordTransactionRequest{FarmerID: "F1", TransactionType: domain.Credit, Amount: decimal.NewFromInt(10)}

	_, err := suite.service.RecordTransaction(ctx, "D2", req, suite.dealer)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_NegativeAmount() {
	ctx := context.Background()
	req := dto.RecordTransactionRequest{FarmerID: "F1", TransactionType: domain.Credit, Amount: decimal.NewFromInt(-5)}

	_, err := suite.service.RecordTransaction(ctx, "D1", req, suite.admin)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, domain.ErrNegativeAmount)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_RejectsUnstorableInput() {
	tests := []struct {
		name    string
		req     dto.RecordTransactionRequest
		wantErr error
	}{
		{"sub-paisa amount", dto.RecordTransactionRequest{FarmerID: "F1", TransactionType: domain.Debit, Amount: decimal.RequireFromString("0.004")}, domain.ErrAmountPrecision},
		{"amount too large", dto.RecordTransactionRequest{FarmerID: "F1", TransactionType: domain.Debit, Amount: decimal.New(1, 13)}, domain.ErrAmountPrecision},
		{"blank farmer", dto.RecordTransactionRequest{FarmerID: "   ", TransactionType: domain.Debit, Amount: decimal.NewFromInt(10)}, apperrors.ErrValidation},
	}
	for _, tc := range tests {
		suite.Run(tc.name, func() {
			_, err := suite.service.RecordTransaction(context.Background(), "D1", tc.req, suite.dealer)

			suite.ErrorIs(err, tc.wantErr)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_SaveFails() {
	ctx := context.Background()
	req := dto.RecordTransactionRequest{FarmerID: "F1", TransactionType: domain.Credit, Amount: decimal.NewFromInt(10)}
	suite.mockRepo.On("SaveTransaction", ctx, mock.Anything).Return(errors.New("connection reset")).Once()

	_, err := suite.service.RecordTransaction(ctx, "D1", req, suite.dealer)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "connection reset")
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "SaveTransaction", 1)
}

func (suite *LedgerServiceTestSuite) TestFarmerBalances_SortedWithSummary() {
	ctx := context.Background()
	rows := []domain.Transaction{
		txn("t1", "F1", domain.Credit, 500),
		txn("t2", "F1", domain.Debit, 1000),
		txn("t3", "F2", domain.Debit, 300),
		txn("t4", "F3", domain.Credit, 200),
	}
	suite.mockRepo.On("ListTransactions", ctx, portsrepo.TransactionQuery{DealerID: "D1"}).Return(rows, nil).Once()
	suite.mockRecorder.On("ObserveAggregation", 4, 3, mock.Anything).Once()

	ledger, err := suite.service.FarmerBalances(ctx, "D1", dto.BalanceParams{}, suite.dealer)

	suite.Require().NoError(err)
	suite.Require().Len(ledger.Balances, 3)
	suite.Equal("F1", ledger.Balances[0].FarmerID)
	suite.True(decimal.NewFromInt(500).Equal(ledger.Balances[0].NetBalance))
	suite.Equal("F2", ledger.Balances[1].FarmerID)
	suite.Equal("F3", ledger.Balances[2].FarmerID)
	suite.True(decimal.NewFromInt(-200).Equal(ledger.Balances[2].NetBalance))
	suite.Equal(3, ledger.Summary.FarmerCount)
	suite.True(decimal.NewFromInt(800).Equal(ledger.Summary.Receivable))
	suite.True(decimal.NewFromInt(200).Equal(ledger.Summary.Payable))
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestFarmerBalances_IgnoresOtherDealersRows() {
	ctx := context.Background()
	foreign := txn("t9", "F1", domain.Debit, 999)
	foreign.DealerID = "D2"
	rows := []domain.Transaction{txn("t1", "F1", domain.Debit, 100), foreign}
	suite.mockRepo.On("ListTransactions", ctx, mock.Anything).Return(rows, nil).Once()
	suite.mockRecorder.On("ObserveAggregation", 1, 1, mock.Anything).Once()

	ledger, err := suite.service.FarmerBalances(ctx, "D1", dto.BalanceParams{}, suite.admin)

	suite.Require().NoError(err)
	suite.Require().Len(ledger.Balances, 1)
	suite.True(decimal.NewFromInt(100).Equal(ledger.Balances[0].TotalDebits))
}

func (suite *LedgerServiceTestSuite) TestFarmerBalances_DateRangeIsInclusive() {
	ctx := context.Background()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("ListTransactions", ctx, mock.MatchedBy(func(q portsrepo.TransactionQuery) bool {
		return q.From.Equal(from) && q.To.Equal(to.Add(24*time.Hour-time.Nanosecond))
	})).Return([]domain.Transaction{}, nil).Once()
	suite.mockRecorder.On("ObserveAggregation", 0, 0, mock.Anything).Once()

	ledger, err := suite.service.FarmerBalances(ctx, "D1", dto.BalanceParams{From: from, To: to}, suite.dealer)

	suite.Require().NoError(err)
	suite.Empty(ledger.Balances)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestFarmerBalances_MalformedRowFails() {
	ctx := context.Background()
	bad := txn("t2", "F1", domain.TransactionType("refund"), 10)
	suite.mockRepo.On("ListTransactions", ctx, mock.Anything).Return([]domain.Transaction{txn("t1", "F1", domain.Debit, 10), bad}, nil).Once()
	suite.mockRecorder.On("AggregationFailed", "unknown_type").Once()

	_, err := suite.service.FarmerBalances(ctx, "D1", dto.BalanceParams{}, suite.dealer)

	suite.ErrorIs(err, domain.ErrUnknownTransactionType)
	suite.Contains(err.Error(), "t2")
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestFarmerBalances_RetriesTransientReadErrors() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactions", ctx, mock.Anything).Return(nil, errors.New("timeout")).Once()
	suite.mockRepo.On("ListTransactions", ctx, mock.Anything).Return([]domain.Transaction{txn("t1", "F1", domain.Debit, 10)}, nil).Once()
	suite.mockRecorder.On("ObserveAggregation", 1, 1, mock.Anything).Once()

	ledger, err := suite.service.FarmerBalances(ctx, "D1", dto.BalanceParams{}, suite.dealer)

	suite.Require().NoError(err)
	suite.Len(ledger.Balances, 1)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "ListTransactions", 2)
}

func (suite *LedgerServiceTestSuite) TestFarmerBalances_FarmerForbidden() {
	_, err := suite.service.FarmerBalances(context.Background(), "D1", dto.BalanceParams{}, suite.farmer)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestFarmerBalance_OwnBalance() {
	ctx := context.Background()
	q := portsrepo.TransactionQuery{DealerID: "D1", FarmerID: "F1"}
	suite.mockRepo.On("ListTransactions", ctx, q).Return([]domain.Transaction{
		txn("t1", "F1", domain.Debit, 1000),
		txn("t2", "F1", domain.Credit, 400),
	}, nil).Once()
	suite.mockRecorder.On("ObserveAggregation", 2, 1, mock.Anything).Once()

	balance, err := suite.service.FarmerBalance(ctx, "D1", "F1", suite.farmer)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(600).Equal(balance.NetBalance))
}

func (suite *LedgerServiceTestSuite) TestFarmerBalance_NoTransactionsIsZero() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactions", ctx, mock.Anything).Return(nil, nil).Once()
	suite.mockRecorder.On("ObserveAggregation", 0, 0, mock.Anything).Once()

	balance, err := suite.service.FarmerBalance(ctx, "D1", "F7", suite.dealer)

	suite.Require().NoError(err)
	suite.Equal("F7", balance.FarmerID)
	suite.True(balance.NetBalance.IsZero())
	suite.True(balance.TotalCredits.IsZero())
	suite.True(balance.TotalDebits.IsZero())
}

func (suite *LedgerServiceTestSuite) TestFarmerBalance_OtherFarmerForbidden() {
	_, err := suite.service.FarmerBalance(context.Background(), "D1", "F2", suite.farmer)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_Pagination() {
	ctx := context.Background()
	rows := []domain.Transaction{
		txn("t3", "F1", domain.Debit, 30),
		txn("t2", "F1", domain.Debit, 20),
		txn("t1", "F1", domain.Debit, 10),
	}
	suite.mockRepo.On("ListTransactions", ctx, mock.MatchedBy(func(q portsrepo.TransactionQuery) bool {
		return q.DealerID == "D1" && q.Limit == 3 && q.AfterID == ""
	})).Return(rows, nil).Once()

	page, err := suite.service.ListTransactions(ctx, "D1", dto.ListTransactionsParams{Limit: 2}, suite.dealer)

	suite.Require().NoError(err)
	suite.Len(page.Transactions, 2)
	suite.Require().NotNil(page.NextToken)
	cursor, err := pagination.DecodeCursor(*page.NextToken)
	suite.Require().NoError(err)
	suite.Equal("t2", cursor.ID)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_LastPageHasNoToken() {
	ctx := context.Background()
	token := pagination.EncodeCursor(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "t2")
	suite.mockRepo.On("ListTransactions", ctx, mock.MatchedBy(func(q portsrepo.TransactionQuery) bool {
		return q.AfterID == "t2" && q.Limit == 21
	})).Return([]domain.Transaction{txn("t1", "F1", domain.Debit, 10)}, nil).Once()

	page, err := suite.service.ListTransactions(ctx, "D1", dto.ListTransactionsParams{NextToken: token}, suite.dealer)

	suite.Require().NoError(err)
	suite.Len(page.Transactions, 1)
	suite.Nil(page.NextToken)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_FarmerScopedToSelf() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactions", ctx, mock.MatchedBy(func(q portsrepo.TransactionQuery) bool {
		return q.FarmerID == "F1"
	})).Return([]domain.Transaction{}, nil).Once()

	page, err := suite.service.ListTransactions(ctx, "D1", dto.ListTransactionsParams{Limit: 10}, suite.farmer)

	suite.Require().NoError(err)
	suite.Empty(page.Transactions)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListTransactions_BadToken() {
	_, err := suite.service.ListTransactions(context.Background(), "D1", dto.ListTransactionsParams{NextToken: "!!"}, suite.dealer)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestGetTransaction() {
	ctx := context.Background()
	t1 := txn("T1", "F1", domain.Debit, 500)
	suite.mockRepo.On("FindTransactionByID", mock.Anything, "T1").Return(&t1, nil)

	got, err := suite.service.GetTransaction(ctx, "D1", "T1", suite.farmer)
	suite.Require().NoError(err)
	suite.Equal("T1", got.TransactionID)

	_, err = suite.service.GetTransaction(ctx, "D1", "T1", domain.Principal{UserID: "F2", Role: domain.RoleFarmer})
	suite.ErrorIs(err, apperrors.ErrForbidden)

	_, err = suite.service.GetTransaction(ctx, "D2", "T1", suite.admin)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestGetTransaction_ForeignDealerCannotTellIDsApart() {
	ctx := context.Background()
	other := domain.Principal{UserID: "D2", Role: domain.RoleDealer}

	_, errExisting := suite.service.GetTransaction(ctx, "D1", "T1", other)
	_, errMissing := suite.service.GetTransaction(ctx, "D1", "missing", other)

	suite.ErrorIs(errExisting, apperrors.ErrForbidden)
	suite.ErrorIs(errMissing, apperrors.ErrForbidden)
	suite.Equal(errExisting.Error(), errMissing.Error())
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTransactionByID", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestGetTransaction_NotFoundIsNotRetried() {
	suite.mockRepo.On("FindTransactionByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetTransaction(context.Background(), "D1", "missing", suite.dealer)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "FindTransactionByID", 1)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
