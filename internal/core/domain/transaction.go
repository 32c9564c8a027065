package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/poultrymitra/mitra_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType indicates which side of a farmer's account a transaction affects.
type TransactionType string

const (
	// Credit is a payment received by the dealer; it reduces what the farmer owes.
	Credit TransactionType = "credit"
	// Debit is value extended to the farmer (e.g. goods on credit); it increases what the farmer owes.
	Debit TransactionType = "debit"
)

// ErrUnknownTransactionType is returned for a transaction type other than credit or debit.
var ErrUnknownTransactionType = fmt.Errorf("%w: unknown transaction type", apperrors.ErrValidation)

// ErrNegativeAmount is returned for a transaction carrying a negative amount.
var ErrNegativeAmount = fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)

// ErrAmountPrecision is returned for an amount the ledger column cannot store exactly.
var ErrAmountPrecision = fmt.Errorf("%w: amount must have at most %d decimal places and %d integer digits",
	apperrors.ErrValidation, AmountScale, AmountIntegerDigits)

const (
	// AmountScale is the number of decimal places stored for an amount (paise).
	AmountScale = 2
	// AmountIntegerDigits is the number of whole rupee digits the ledger stores.
	AmountIntegerDigits = 12
)

var maxAmount = decimal.New(1, AmountIntegerDigits)

// Transaction is an immutable ledger entry between a farmer and a dealer.
// Direction is carried by TransactionType, never by the sign of Amount.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	FarmerID        string          `json:"farmerId" validate:"required,notblank"`
	DealerID        string          `json:"dealerId" validate:"required,notblank"`
	TransactionType TransactionType `json:"transactionType" validate:"required"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"date"`
	Category        string          `json:"category" validate:"max=64"`
	Description     string          `json:"description" validate:"max=500"`
	AuditFields
}

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// IsKnown reports whether t is credit or debit.
func (t TransactionType) IsKnown() bool {
	return t == Credit || t == Debit
}

// Validate checks the record invariants: both parties present, a known
// transaction type and a non-negative amount that fits NUMERIC(14,2) exactly.
func (t Transaction) Validate() error {
	if err := structValidator.Struct(t); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, describeFieldError(fe))
			}
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if !t.TransactionType.IsKnown() {
		return fmt.Errorf("%w %q", ErrUnknownTransactionType, string(t.TransactionType))
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w (got %s)", ErrNegativeAmount, t.Amount.String())
	}
	if !t.Amount.Equal(t.Amount.Truncate(AmountScale)) || t.Amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("%w (got %s)", ErrAmountPrecision, t.Amount.String())
	}
	return nil
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag())
	}
}

// SignedAmount returns the amount as it affects the farmer's net balance:
// positive for debits, negative for credits.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.TransactionType == Credit {
		return t.Amount.Neg()
	}
	return t.Amount
}
