package money

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		two  string
		four string
	}{
		{"zero", 0, "0.00", "0.0000"},
		{"negative zero", math.Copysign(0, -1), "0.00", "0.0000"},
		{"half up", 12.345, "12.35", "12.3450"},
		{"integer", 1500, "1500.00", "1500.0000"},
		{"no grouping", 1234567.891, "1234567.89", "1234567.8910"},
		{"four places half up", 0.00005, "0.00", "0.0001"},
		{"tiny negative", -0.001, "0.00", "-0.0010"},
		{"NaN", math.NaN(), "0.00", "0.0000"},
		{"Inf", math.Inf(1), "0.00", "0.0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.two, FormatFloat2(tt.in))
			assert.Equal(t, tt.four, FormatFloat4(tt.in))
		})
	}
}

func TestFormat_Decimal(t *testing.T) {
	assert.Equal(t, "0.00", Format2(decimal.Zero))
	assert.Equal(t, "0.0000", Format4(decimal.Zero))
	assert.Equal(t, "99.99", Format2(decimal.RequireFromString("99.985")))
	assert.Equal(t, "-5.50", Format2(decimal.RequireFromString("-5.495")))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 2.35, RoundFloat2(2.345))
	assert.Equal(t, 0.0, RoundFloat2(0))
	assert.Equal(t, 0.0, RoundFloat4(0))
	assert.Equal(t, 1.0001, RoundFloat4(1.00005))
	assert.Equal(t, 2.34, RoundFloat2(2.344))
	assert.Equal(t, 0.0, RoundFloat2(math.NaN()))
}

func TestRound_Decimal(t *testing.T) {
	assert.True(t, Round2(decimal.RequireFromString("2.345")).Equal(decimal.RequireFromString("2.35")))
	assert.True(t, Round4(decimal.RequireFromString("0.12345")).Equal(decimal.RequireFromString("0.1235")))
	assert.True(t, Round2(decimal.Zero).Equal(decimal.Zero))
	assert.Equal(t, "0.00", Round2(decimal.Zero).StringFixed(2))
}
