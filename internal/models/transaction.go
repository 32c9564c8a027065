package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the stored form of the ledger direction ("credit" or "debit").
type TransactionType string

// Transaction is a row of the ledger_transactions table.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	FarmerID        string          `db:"farmer_id"`
	DealerID        string          `db:"dealer_id"`
	TransactionType TransactionType `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"` // NUMERIC(14,2), CHECK (amount >= 0)
	TransactionDate time.Time       `db:"transaction_date"`
	Category        string          `db:"category"`
	Description     string          `db:"description"`
	AuditFields
}
