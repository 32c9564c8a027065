package domain

import "github.com/shopspring/decimal"

// FarmerAccountBalance is the derived position of one farmer, recomputed from
// the transaction list on every aggregation and never persisted.
// NetBalance = TotalDebits - TotalCredits; positive means the farmer owes the dealer.
type FarmerAccountBalance struct {
	FarmerID     string          `json:"farmerId"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	NetBalance   decimal.Decimal `json:"netBalance"`
}

// ZeroBalance returns the balance of a farmer with no transactions.
func ZeroBalance(farmerID string) FarmerAccountBalance {
	return FarmerAccountBalance{
		FarmerID:     farmerID,
		TotalCredits: decimal.Zero,
		TotalDebits:  decimal.Zero,
		NetBalance:   decimal.Zero,
	}
}

// LedgerSummary totals a set of farmer balances for a dealer dashboard.
type LedgerSummary struct {
	FarmerCount  int             `json:"farmerCount"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	NetBalance   decimal.Decimal `json:"netBalance"`
	Receivable   decimal.Decimal `json:"receivable"` // positive net balances: farmers owe the dealer
	Payable      decimal.Decimal `json:"payable"`    // negative net balances, as a positive amount
}

// DealerLedger is the aggregated view of one dealer's farmer accounts.
type DealerLedger struct {
	DealerID string                 `json:"dealerId"`
	Balances []FarmerAccountBalance `json:"balances"` // largest debtor first
	Summary  LedgerSummary          `json:"summary"`
}
