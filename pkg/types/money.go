package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Prices travel through the system in minor currency units (cents). Display
// strings are derived, never stored.

var minorUnitDivisor = decimal.NewFromInt(100)

// FormatMinorUnits renders an amount of minor units as a major-unit string,
// e.g. 2599 -> "25.99".
func FormatMinorUnits(amount int64) string {
	return decimal.NewFromInt(amount).Div(minorUnitDivisor).StringFixed(2)
}

// FormatAmount prefixes the major-unit string with the currency code,
// e.g. 2599, "USD" -> "USD 25.99".
func FormatAmount(amount int64, currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		return FormatMinorUnits(amount)
	}
	return code + " " + FormatMinorUnits(amount)
}
