package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimal places shown for rupee amounts.
const DisplayPrecision = 2

// FormatWithPrecision formats an amount with the given precision, keeping trailing zeros.
// Example: amount 12.3456 with precision 2 returns "12.35"
// Example: amount 600 with precision 2 returns "600.00"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatINR formats an amount as rupees using Indian digit grouping.
// Example: 125000 returns "₹1,25,000.00", -450.5 returns "-₹450.50"
func FormatINR(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	fixed := FormatWithPrecision(amount, DisplayPrecision)
	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + "₹" + groupIndian(whole) + "." + frac
}

// groupIndian inserts separators after the last three digits and then every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var b strings.Builder
	lead := len(head) % 2
	if lead > 0 {
		b.WriteString(head[:lead])
	}
	for i := lead; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}
