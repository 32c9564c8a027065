package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/poultrymitra/mitra_backend/internal/apperrors"
	"github.com/poultrymitra/mitra_backend/internal/core/domain"
	"github.com/poultrymitra/mitra_backend/internal/dto"
	"github.com/poultrymitra/mitra_backend/internal/handlers"
	"github.com/poultrymitra/mitra_backend/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
	dealerID          string
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockLedgerService = new(MockLedgerService)
	suite.dealerID = uuid.NewString()

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret))
	handlers.RegisterLedgerRoutes(v1, suite.mockLedgerService)
}

func (suite *LedgerHandlerTestSuite) doRequest(method, url string, body []byte, userID string, role domain.Role) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		token, err := generateTestToken(userID, role)
		suite.Require().NoError(err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LedgerHandlerTestSuite) dealerPrincipal() domain.Principal {
	return domain.Principal{UserID: suite.dealerID, Role: domain.RoleDealer}
}

func (suite *LedgerHandlerTestSuite) TestRecordTransaction_Success() {
	farmerID := uuid.NewString()
	created := &domain.Transaction{
		TransactionID:   uuid.NewString(),
		FarmerID:        farmerID,
		DealerID:        suite.dealerID,
		TransactionType: domain.Debit,
		Amount:          decimal.RequireFromString("1500.50"),
		Date:            time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Category:        "feed",
	}

	suite.mockLedgerService.On("RecordTransaction",
		mock.Anything,
		suite.dealerID,
		mock.MatchedBy(func(req dto.RecordTransactionRequest) bool {
			return req.FarmerID == farmerID &&
				req.TransactionType == domain.Debit &&
				req.Amount.Equal(decimal.RequireFromString("1500.50"))
		}),
		suite.dealerPrincipal(),
	).Return(created, nil).Once()

	body := []byte(fmt.Sprintf(`{"farmerId":%q,"transactionType":"debit","amount":"1500.50","category":"feed"}`, farmerID))
	w := suite.doRequest(http.MethodPost, "/api/v1/dealers/"+suite.dealerID+"/transactions", body, suite.dealerID, domain.RoleDealer)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TransactionID, resp.TransactionID)
	suite.True(resp.Amount.Equal(created.Amount))
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestRecordTransaction_UnknownTypeRejectedAtBinding() {
	body := []byte(`{"farmerId":"f1","transactionType":"refund","amount":"10"}`)
	w := suite.doRequest(http.MethodPost, "/api/v1/dealers/"+suite.dealerID+"/transactions", body, suite.dealerID, domain.RoleDealer)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "RecordTransaction")
}

func (suite *LedgerHandlerTestSuite) TestRecordTransaction_ServiceErrors() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", fmt.Errorf("invalid transaction: %w", domain.ErrNegativeAmount), http.StatusBadRequest},
		{"amount precision", fmt.Errorf("invalid transaction: %w", domain.ErrAmountPrecision), http.StatusBadRequest},
		{"forbidden", fmt.Errorf("%w: dealer mismatch", apperrors.ErrForbidden), http.StatusForbidden},
		{"duplicate", fmt.Errorf("transaction t1: %w", apperrors.ErrDuplicate), http.StatusConflict},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.mockLedgerService.On("RecordTransaction", mock.Anything, suite.dealerID, mock.Anything, suite.dealerPrincipal()).
				Return(nil, tc.err).Once()

			body := []byte(`{"farmerId":"f1","transactionType":"credit","amount":"10"}`)
			w := suite.doRequest(http.MethodPost, "/api/v1/dealers/"+suite.dealerID+"/transactions", body, suite.dealerID, domain.RoleDealer)

			suite.Equal(tc.status, w.Code)
			if tc.status == http.StatusInternalServerError {
				suite.Contains(w.Body.String(), "Failed to record transaction")
				suite.NotContains(w.Body.String(), "connection reset")
			}
		})
	}
}

func (suite *LedgerHandlerTestSuite) TestRecordTransaction_NoToken() {
	body := []byte(`{"farmerId":"f1","transactionType":"credit","amount":"10"}`)
	w := suite.doRequest(http.MethodPost, "/api/v1/dealers/"+suite.dealerID+"/transactions", body, "", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "RecordTransaction")
}

func (suite *LedgerHandlerTestSuite) TestGetTransaction() {
	t1 := &domain.Transaction{TransactionID: "t1", FarmerID: "f1", DealerID: suite.dealerID, TransactionType: domain.Credit, Amount: decimal.NewFromInt(250)}
	suite.mockLedgerService.On("GetTransaction", mock.Anything, suite.dealerID, "t1", suite.dealerPrincipal()).Return(t1, nil).Once()
	suite.mockLedgerService.On("GetTransaction", mock.Anything, suite.dealerID, "t9", suite.dealerPrincipal()).
		Return(nil, fmt.Errorf("transaction t9: %w", apperrors.ErrNotFound)).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/dealers/"+suite.dealerID+"/transactions/t1", nil, suite.dealerID, domain.RoleDealer)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("t1", resp.TransactionID)

	w = suite.doRequest(http.MethodGet, "/api/v1/dealers/"+suite.dealerID+"/transactions/t9", nil, suite.dealerID, domain.RoleDealer)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestListTransactions_Success() {
	next := "opaque-token"
	expected := &dto.ListTransactionsResponse{
		Transactions: []dto.TransactionResponse{
			{TransactionID: uuid.NewString(), FarmerID: "f1", DealerID: suite.dealerID, TransactionType: domain.Credit, Amount: decimal.NewFromInt(100)},
		},
		NextToken: &next,
	}

	suite.mockLedgerService.On("ListTransactions",
		mock.Anything,
		suite.dealerID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Limit == 5 && p.FarmerID == "f1" && p.From.Format("2006-01-02") == "2024-01-01" && p.To.IsZero()
		}),
		suite.dealerPrincipal(),
	).Return(expected, nil).Once()

	url := fmt.Sprintf("/api/v1/dealers/%s/transactions?limit=5&farmerId=f1&from=2024-01-01", suite.dealerID)
	w := suite.doRequest(http.MethodGet, url, nil, suite.dealerID, domain.RoleDealer)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestListTransactions_DefaultLimit() {
	suite.mockLedgerService.On("ListTransactions", mock.Anything, suite.dealerID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool { return p.Limit == 20 }),
		suite.dealerPrincipal(),
	).Return(&dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/dealers/"+suite.dealerID+"/transactions", nil, suite.dealerID, domain.RoleDealer)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestListTransactions_InvalidQuery() {
	for _, query := range []string{"limit=0", "limit=500", "from=01-02-2024"} {
		w := suite.doRequest(http.MethodGet, "/api/v1/dealers/"+suite.dealerID+"/transactions?"+query, nil, suite.dealerID, domain.RoleDealer)
		suite.Equal(http.StatusBadRequest, w.Code, query)
	}
	suite.mockLedgerService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *LedgerHandlerTestSuite) TestFarmerBalances_Success() {
	ledger := &domain.DealerLedger{
		DealerID: suite.dealerID,
		Balances: []domain.FarmerAccountBalance{
			{FarmerID: "f2", TotalDebits: decimal.NewFromInt(125000), TotalCredits: decimal.Zero, NetBalance: decimal.NewFromInt(125000)},
			{FarmerID: "f1", TotalDebits: decimal.NewFromInt(100), TotalCredits: decimal.NewFromInt(300), NetBalance: decimal.NewFromInt(-200)},
		},
		Summary: domain.LedgerSummary{
			FarmerCount:  2,
			TotalCredits: decimal.NewFromInt(300),
			TotalDebits:  decimal.NewFromInt(125100),
			NetBalance:   decimal.NewFromInt(124800),
			Receivable:   decimal.NewFromInt(125000),
			Payable:      decimal.NewFromInt(200),
		},
	}
	suite.mockLedgerService.On("FarmerBalances", mock.Anything, suite.dealerID, mock.AnythingOfType("dto.BalanceParams"), suite.dealerPrincipal()).
		Return(ledger, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/dealers/"+suite.dealerID+"/balances", nil, suite.dealerID, domain.RoleDealer)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DealerLedgerResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Balances, 2)
	suite.Equal("f2", resp.Balances[0].FarmerID)
	suite.Equal("₹1,25,000.00", resp.Balances[0].NetBalanceText)
	suite.True(resp.Balances[0].OwesDealer)
	suite.False(resp.Balances[1].OwesDealer)
	suite.Equal(2, resp.Summary.FarmerCount)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestFarmerBalances_InvalidDate() {
	w := suite.doRequest(http.MethodGet, "/api/v1/dealers/"+suite.dealerID+"/balances?to=yesterday", nil, suite.dealerID, domain.RoleDealer)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "FarmerBalances")
}

func (suite *LedgerHandlerTestSuite) TestFarmerBalances_MalformedStoredTransaction() {
	err := fmt.Errorf("aggregate balances: transaction 3 (t3): %w", domain.ErrUnknownTransactionType)
	suite.mockLedgerService.On("FarmerBalances", mock.Anything, suite.dealerID, mock.Anything, suite.dealerPrincipal()).
		Return(nil, err).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/dealers/"+suite.dealerID+"/balances", nil, suite.dealerID, domain.RoleDealer)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "unknown transaction type")
}

func (suite *LedgerHandlerTestSuite) TestFarmerBalance_FarmerReadsOwn() {
	farmerID := uuid.NewString()
	farmer := domain.Principal{UserID: farmerID, Role: domain.RoleFarmer}
	balance := domain.ZeroBalance(farmerID)
	suite.mockLedgerService.On("FarmerBalance", mock.Anything, suite.dealerID, farmerID, farmer).
		Return(&balance, nil).Once()

	url := fmt.Sprintf("/api/v1/dealers/%s/farmers/%s/balance", suite.dealerID, farmerID)
	w := suite.doRequest(http.MethodGet, url, nil, farmerID, domain.RoleFarmer)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FarmerBalanceResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(farmerID, resp.FarmerID)
	suite.True(resp.NetBalance.IsZero())
	suite.Equal("₹0.00", resp.NetBalanceText)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestFarmerBalance_Forbidden() {
	other := uuid.NewString()
	suite.mockLedgerService.On("FarmerBalance", mock.Anything, suite.dealerID, "f1", mock.Anything).
		Return(nil, fmt.Errorf("%w: farmer mismatch", apperrors.ErrForbidden)).Once()

	url := fmt.Sprintf("/api/v1/dealers/%s/farmers/f1/balance", suite.dealerID)
	w := suite.doRequest(http.MethodGet, url, nil, other, domain.RoleFarmer)

	suite.Equal(http.StatusForbidden, w.Code)
}

func TestLedgerHandler(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
