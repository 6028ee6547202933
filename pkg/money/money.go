// Package money renders and rounds monetary amounts for reports.
//
// Amounts are fixed-point text with "." as the decimal separator and no
// grouping. Rounding is half away from zero, which is half-up for the
// non-negative amounts reports carry.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// Format2 renders d with exactly two fractional digits.
func Format2(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Format4 renders d with exactly four fractional digits.
func Format4(d decimal.Decimal) string {
	return d.StringFixed(4)
}

// Round2 rounds d to two fractional digits.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Round4 rounds d to four fractional digits.
func Round4(d decimal.Decimal) decimal.Decimal {
	return d.Round(4)
}

// FormatFloat2 is Format2 for float input. NaN and infinities render as zero.
func FormatFloat2(f float64) string {
	return Format2(fromFloat(f))
}

// FormatFloat4 is Format4 for float input.
func FormatFloat4(f float64) string {
	return Format4(fromFloat(f))
}

// RoundFloat2 rounds f half-up to two fractional digits.
func RoundFloat2(f float64) float64 {
	return Round2(fromFloat(f)).InexactFloat64()
}

// RoundFloat4 rounds f half-up to four fractional digits.
func RoundFloat4(f float64) float64 {
	return Round4(fromFloat(f)).InexactFloat64()
}

// fromFloat uses the shortest decimal representation of f, so 12.345
// becomes exactly 12.345 rather than its binary approximation.
func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
