package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/poultrymitra/mitra_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BatchStatus tracks whether a flock is still being raised.
type BatchStatus string

const (
	BatchActive    BatchStatus = "active"
	BatchCompleted BatchStatus = "completed"
)

// Batch is one flock of birds raised by a farmer, optionally supplied by a dealer.
type Batch struct {
	BatchID         string          `json:"batchID"`
	FarmerID        string          `json:"farmerId"`
	DealerID        string          `json:"dealerId"` // Optional
	Name            string          `json:"name"`
	Breed           string          `json:"breed"`
	StartDate       time.Time       `json:"startDate"`
	InitialCount    int             `json:"initialCount"`
	Mortality       int             `json:"mortality"`
	FeedConsumedKg  decimal.Decimal `json:"feedConsumedKg"`
	AverageWeightKg decimal.Decimal `json:"averageWeightKg"`
	Status          BatchStatus     `json:"status"`
	AuditFields
}

// BatchUpdate is a periodic field report against a batch.
type BatchUpdate struct {
	Deaths          int
	FeedKg          decimal.Decimal
	AverageWeightKg *decimal.Decimal // nil keeps the last recorded weight
	Complete        bool
}

// BatchPerformance is the derived view shown on the farmer dashboard.
type BatchPerformance struct {
	AgeInDays     int             `json:"ageInDays"`
	CurrentCount  int             `json:"currentCount"`
	MortalityRate decimal.Decimal `json:"mortalityRate"` // percent
	FCR           decimal.Decimal `json:"fcr"`
}

// AgeInDays returns whole days elapsed since the batch started; 0 for future start dates.
func (b Batch) AgeInDays(now time.Time) int {
	if now.Before(b.StartDate) {
		return 0
	}
	return int(now.Sub(b.StartDate).Hours() / 24)
}

// CurrentCount returns the number of live birds.
func (b Batch) CurrentCount() int {
	n := b.InitialCount - b.Mortality
	if n < 0 {
		return 0
	}
	return n
}

// MortalityRate returns deaths as a percentage of the initial placement, rounded to 2 places.
func (b Batch) MortalityRate() decimal.Decimal {
	if b.InitialCount <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(b.Mortality)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(b.InitialCount))).
		Round(2)
}

// FCR returns feed consumed per kg of live weight, rounded to 2 places.
// Live weight is current birds times average weight; 0 when no weight has been gained.
func (b Batch) FCR() decimal.Decimal {
	liveWeight := b.AverageWeightKg.Mul(decimal.NewFromInt(int64(b.CurrentCount())))
	if !liveWeight.IsPositive() {
		return decimal.Zero
	}
	return b.FeedConsumedKg.Div(liveWeight).Round(2)
}

// Performance bundles the derived metrics as of now.
func (b Batch) Performance(now time.Time) BatchPerformance {
	return BatchPerformance{
		AgeInDays:     b.AgeInDays(now),
		CurrentCount:  b.CurrentCount(),
		MortalityRate: b.MortalityRate(),
		FCR:           b.FCR(),
	}
}

// Validate checks a newly created batch.
func (b Batch) Validate() error {
	if strings.TrimSpace(b.FarmerID) == "" {
		return fmt.Errorf("%w: farmerId is required", apperrors.ErrValidation)
	}
	if b.InitialCount <= 0 {
		return fmt.Errorf("%w: initialCount must be positive", apperrors.ErrValidation)
	}
	if b.Mortality < 0 || b.Mortality > b.InitialCount {
		return fmt.Errorf("%w: mortality must be between 0 and initialCount", apperrors.ErrValidation)
	}
	if b.FeedConsumedKg.IsNegative() || b.AverageWeightKg.IsNegative() {
		return fmt.Errorf("%w: feed and weight must not be negative", apperrors.ErrValidation)
	}
	return nil
}

// ApplyUpdate folds a field report into the batch. Deaths accumulate, feed
// accumulates, and the average weight is replaced when provided.
func (b *Batch) ApplyUpdate(u BatchUpdate) error {
	if b.Status == BatchCompleted {
		return fmt.Errorf("%w: batch %s is already completed", apperrors.ErrValidation, b.BatchID)
	}
	if u.Deaths < 0 {
		return fmt.Errorf("%w: deaths must not be negative", apperrors.ErrValidation)
	}
	if u.Deaths > b.CurrentCount() {
		return fmt.Errorf("%w: deaths (%d) exceed live birds (%d)", apperrors.ErrValidation, u.Deaths, b.CurrentCount())
	}
	if u.FeedKg.IsNegative() {
		return fmt.Errorf("%w: feed must not be negative", apperrors.ErrValidation)
	}
	if u.AverageWeightKg != nil && u.AverageWeightKg.IsNegative() {
		return fmt.Errorf("%w: average weight must not be negative", apperrors.ErrValidation)
	}

	b.Mortality += u.Deaths
	b.FeedConsumedKg = b.FeedConsumedKg.Add(u.FeedKg)
	if u.AverageWeightKg != nil {
		b.AverageWeightKg = *u.AverageWeightKg
	}
	if u.Complete {
		b.Status = BatchCompleted
	}
	return nil
}
