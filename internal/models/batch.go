package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Batch is a row of the batches table.
type Batch struct {
	BatchID         string          `db:"batch_id"`
	FarmerID        string          `db:"farmer_id"`
	DealerID        *string         `db:"dealer_id"` // Nullable
	Name            string          `db:"name"`
	Breed           string          `db:"breed"`
	StartDate       time.Time       `db:"start_date"`
	InitialCount    int             `db:"initial_count"`
	Mortality       int             `db:"mortality"`
	FeedConsumedKg  decimal.Decimal `db:"feed_consumed_kg"`
	AverageWeightKg decimal.Decimal `db:"average_weight_kg"`
	Status          string          `db:"status"`
	AuditFields
}
