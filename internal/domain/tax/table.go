// Package tax holds the fixed VAT rate table used when computing
// invoice totals. Rates are keyed by two-letter country code.
package tax

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultRate applies when the region code is unknown or missing.
// An unrecognized region is not an error; it silently falls back.
var DefaultRate = decimal.NewFromFloat(0.05)

var rates = map[string]decimal.Decimal{
	// Gulf
	"SA": decimal.NewFromFloat(0.15),
	"AE": decimal.NewFromFloat(0.05),
	// North Africa
	"EG": decimal.NewFromFloat(0.14),
	"MA": decimal.NewFromFloat(0.20),
	"TN": decimal.NewFromFloat(0.19),
	"LY": decimal.NewFromFloat(0.15),
	// Levant
	"JO": decimal.NewFromFloat(0.16),
	"IQ": decimal.NewFromFloat(0.15),
	"PS": decimal.NewFromFloat(0.16),
}

// RateFor returns the VAT rate for a region code, matched
// case-insensitively. Unknown codes return DefaultRate.
func RateFor(region string) decimal.Decimal {
	if rate, ok := rates[strings.ToUpper(strings.TrimSpace(region))]; ok {
		return rate
	}
	return DefaultRate
}
