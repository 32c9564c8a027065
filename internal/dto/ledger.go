package dto

import (
	"time"

	"github.com/poultrymitra/mitra_backend/internal/core/domain"
	"github.com/poultrymitra/mitra_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest defines the data needed to record a ledger transaction.
// The dealer comes from the path; the transaction ID is assigned by the server.
type RecordTransactionRequest struct {
	FarmerID        string                 `json:"farmerId" binding:"required"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=credit debit"`
	Amount          decimal.Decimal        `json:"amount"`
	Date            *time.Time             `json:"date"` // Optional, defaults to now
	Category        string                 `json:"category" binding:"max=64"`
	Description     string                 `json:"description" binding:"max=500"`
}

// TransactionResponse defines the data returned for a ledger transaction.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	FarmerID        string                 `json:"farmerId"`
	DealerID        string                 `json:"dealerId"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Amount          decimal.Decimal        `json:"amount"`
	Date            time.Time              `json:"date"`
	Category        string                 `json:"category"`
	Description     string                 `json:"description"`
	CreatedAt       time.Time              `json:"createdAt"`
	CreatedBy       string                 `json:"createdBy"`
}

// ListTransactionsParams defines query parameters for listing a dealer's transactions.
type ListTransactionsParams struct {
	FarmerID  string    `form:"farmerId"`
	From      time.Time `form:"from" time_format:"2006-01-02"`
	To        time.Time `form:"to" time_format:"2006-01-02"`
	Limit     int       `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string    `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken"` // nil when there are no more pages
}

// BalanceParams defines query parameters for balance aggregation.
// Dates are inclusive; To covers the whole day.
type BalanceParams struct {
	From time.Time `form:"from" time_format:"2006-01-02"`
	To   time.Time `form:"to" time_format:"2006-01-02"`
}

// FarmerBalanceResponse is one farmer's balance with presentation strings.
type FarmerBalanceResponse struct {
	FarmerID       string          `json:"farmerId"`
	TotalCredits   decimal.Decimal `json:"totalCredits"`
	TotalDebits    decimal.Decimal `json:"totalDebits"`
	NetBalance     decimal.Decimal `json:"netBalance"`
	NetBalanceText string          `json:"netBalanceText"` // e.g. "₹1,25,000.00"
	OwesDealer     bool            `json:"owesDealer"`
}

// LedgerSummaryResponse totals the dealer's book.
type LedgerSummaryResponse struct {
	FarmerCount  int             `json:"farmerCount"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	NetBalance   decimal.Decimal `json:"netBalance"`
	Receivable   decimal.Decimal `json:"receivable"`
	Payable      decimal.Decimal `json:"payable"`
}

// DealerLedgerResponse is the dealer's ledger page.
type DealerLedgerResponse struct {
	DealerID string                  `json:"dealerId"`
	Balances []FarmerBalanceResponse `json:"balances"`
	Summary  LedgerSummaryResponse   `json:"summary"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		FarmerID:        t.FarmerID,
		DealerID:        t.DealerID,
		TransactionType: t.TransactionType,
		Amount:          t.Amount,
		Date:            t.Date,
		Category:        t.Category,
		Description:     t.Description,
		CreatedAt:       t.CreatedAt,
		CreatedBy:       t.CreatedBy,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to TransactionResponse DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ToFarmerBalanceResponse converts a domain.FarmerAccountBalance to its DTO
func ToFarmerBalanceResponse(b domain.FarmerAccountBalance) FarmerBalanceResponse {
	return FarmerBalanceResponse{
		FarmerID:       b.FarmerID,
		TotalCredits:   b.TotalCredits,
		TotalDebits:    b.TotalDebits,
		NetBalance:     b.NetBalance,
		NetBalanceText: utils.FormatINR(b.NetBalance),
		OwesDealer:     b.NetBalance.IsPositive(),
	}
}

// ToDealerLedgerResponse converts a domain.DealerLedger to its DTO
func ToDealerLedgerResponse(l *domain.DealerLedger) DealerLedgerResponse {
	balances := make([]FarmerBalanceResponse, len(l.Balances))
	for i, b := range l.Balances {
		balances[i] = ToFarmerBalanceResponse(b)
	}
	return DealerLedgerResponse{
		DealerID: l.DealerID,
		Balances: balances,
		Summary: LedgerSummaryResponse{
			FarmerCount:  l.Summary.FarmerCount,
			TotalCredits: l.Summary.TotalCredits,
			TotalDebits:  l.Summary.TotalDebits,
			NetBalance:   l.Summary.NetBalance,
			Receivable:   l.Summary.Receivable,
			Payable:      l.Summary.Payable,
		},
	}
}
