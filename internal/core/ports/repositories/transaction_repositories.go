package repositories

import (
	"context"
	"time"

	"github.com/poultrymitra/mitra_backend/internal/core/domain"
)

// TransactionQuery selects ledger transactions. Rows come back ordered by
// date descending, then transaction ID descending.
type TransactionQuery struct {
	DealerID string // required
	FarmerID string // optional
	From     time.Time
	To       time.Time

	// Keyset pagination. Limit 0 returns every matching row.
	Limit     int
	AfterDate time.Time
	AfterID   string
}

// TransactionReader defines read operations for ledger transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the transactions matching q.
	ListTransactions(ctx context.Context, q TransactionQuery) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger transactions.
// Transactions are immutable; there is no update or delete.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction. A reused ID is ErrDuplicate.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
