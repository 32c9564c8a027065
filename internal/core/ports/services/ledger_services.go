package services

import (
	"context"

	"github.com/poultrymitra/mitra_backend/internal/core/domain"
	"github.com/poultrymitra/mitra_backend/internal/dto"
)

// LedgerWriterSvc records dealer/farmer transactions
type LedgerWriterSvc interface {
	// RecordTransaction validates and persists a new immutable transaction.
	RecordTransaction(ctx context.Context, dealerID string, req dto.RecordTransactionRequest, principal domain.Principal) (*domain.Transaction, error)
}

// LedgerReaderSvc reads transactions and derived balances
type LedgerReaderSvc interface {
	// GetTransaction returns one transaction of the dealer's ledger.
	GetTransaction(ctx context.Context, dealerID string, transactionID string, principal domain.Principal) (*domain.Transaction, error)

	// ListTransactions returns one page of a dealer's transactions.
	ListTransactions(ctx context.Context, dealerID string, params dto.ListTransactionsParams, principal domain.Principal) (*dto.ListTransactionsResponse, error)

	// FarmerBalances aggregates a dealer's transactions into per-farmer balances, largest debtor first.
	FarmerBalances(ctx context.Context, dealerID string, params dto.BalanceParams, principal domain.Principal) (*domain.DealerLedger, error)

	// FarmerBalance returns one farmer's balance with a dealer. No transactions yields a zero balance.
	FarmerBalance(ctx context.Context, dealerID string, farmerID string, principal domain.Principal) (*domain.FarmerAccountBalance, error)
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	LedgerWriterSvc
	LedgerReaderSvc
}
