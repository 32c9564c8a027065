package accounting

import (
	"fmt"
	"sort"
	"time"

	"github.com/poultrymitra/mitra_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionFilter narrows a transaction list before aggregation.
// Empty fields and zero times do not filter. From and To are inclusive.
type TransactionFilter struct {
	DealerID string
	FarmerID string
	From     time.Time
	To       time.Time
}

// ValidateTransactions checks every record and fails on the first malformed one,
// naming its position and ID.
func ValidateTransactions(transactions []domain.Transaction) error {
	for i, txn := range transactions {
		if err := txn.Validate(); err != nil {
			return fmt.Errorf("transaction[%d] (id=%q): %w", i, txn.TransactionID, err)
		}
	}
	return nil
}

// AggregateFarmerBalances groups transactions by farmer and returns one
// balance per distinct farmer. Output order is unspecified; callers that need
// a stable order sort the result (see SortByNetBalanceDesc).
//
// The input is validated first so that a malformed record fails the whole
// call instead of being skipped or counted on the wrong side.
func AggregateFarmerBalances(transactions []domain.Transaction) ([]domain.FarmerAccountBalance, error) {
	if err := ValidateTransactions(transactions); err != nil {
		return nil, err
	}

	index := make(map[string]int)
	balances := make([]domain.FarmerAccountBalance, 0)

	for _, txn := range transactions {
		i, ok := index[txn.FarmerID]
		if !ok {
			i = len(balances)
			index[txn.FarmerID] = i
			balances = append(balances, domain.ZeroBalance(txn.FarmerID))
		}

		switch txn.TransactionType {
		case domain.Credit:
			balances[i].TotalCredits = balances[i].TotalCredits.Add(txn.Amount)
		case domain.Debit:
			balances[i].TotalDebits = balances[i].TotalDebits.Add(txn.Amount)
		}
	}

	for i := range balances {
		balances[i].NetBalance = balances[i].TotalDebits.Sub(balances[i].TotalCredits)
	}

	return balances, nil
}

// SortByNetBalanceDesc orders balances largest debtor first. Equal net
// balances are ordered by farmer ID.
func SortByNetBalanceDesc(balances []domain.FarmerAccountBalance) {
	sort.Slice(balances, func(i, j int) bool {
		if c := balances[i].NetBalance.Cmp(balances[j].NetBalance); c != 0 {
			return c > 0
		}
		return balances[i].FarmerID < balances[j].FarmerID
	})
}

// FilterTransactions returns the transactions matching f, preserving input order.
func FilterTransactions(transactions []domain.Transaction, f TransactionFilter) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if f.DealerID != "" && txn.DealerID != f.DealerID {
			continue
		}
		if f.FarmerID != "" && txn.FarmerID != f.FarmerID {
			continue
		}
		if !f.From.IsZero() && txn.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && txn.Date.After(f.To) {
			continue
		}
		out = append(out, txn)
	}
	return out
}

// Summarize totals balances across farmers.
func Summarize(balances []domain.FarmerAccountBalance) domain.LedgerSummary {
	s := domain.LedgerSummary{
		FarmerCount:  len(balances),
		TotalCredits: decimal.Zero,
		TotalDebits:  decimal.Zero,
		NetBalance:   decimal.Zero,
		Receivable:   decimal.Zero,
		Payable:      decimal.Zero,
	}
	for _, b := range balances {
		s.TotalCredits = s.TotalCredits.Add(b.TotalCredits)
		s.TotalDebits = s.TotalDebits.Add(b.TotalDebits)
		switch {
		case b.NetBalance.IsPositive():
			s.Receivable = s.Receivable.Add(b.NetBalance)
		case b.NetBalance.IsNegative():
			s.Payable = s.Payable.Add(b.NetBalance.Neg())
		}
	}
	s.NetBalance = s.TotalDebits.Sub(s.TotalCredits)
	return s
}
