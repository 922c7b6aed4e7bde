package domain

import (
	"math"
	"strconv"
	"strings"
)

// Totals holds the derived financial totals of a ledger.
// Values are unrounded; rounding happens at presentation via FormatAmount.
type Totals struct {
	// Subtotal is the sum of quantity x unit price over all lines.
	Subtotal float64

	// TaxTotal is the sum of each line amount times its tax rate.
	TaxTotal float64

	// GrandTotal is Subtotal + TaxTotal.
	GrandTotal float64
}

// CoerceNumber converts a raw field value to a number.
// Missing, blank, or unparseable input coerces to 0; it never fails.
// This is the single coercion point for all numeric draft fields.
func CoerceNumber(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// FormatAmount renders an amount with two decimals, rounding half-up.
// Internal accumulation stays unrounded; only display values pass through here.
func FormatAmount(n float64) string {
	return strconv.FormatFloat(math.Round(n*100)/100, 'f', 2, 64)
}
