package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// MonthsPerYear is the number of payment periods in a year for a monthly schedule.
const MonthsPerYear = 12

// Round2 rounds a value to 2 decimal places.
func Round2(value float64) float64 {
	return RoundTo(value, 2)
}

// RoundTo rounds a value half away from zero to the given number of decimals.
func RoundTo(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(value*scale) / scale
}

// IsFinite reports whether value is neither NaN nor infinite.
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// YearsMonths splits a number of monthly periods into whole years and remaining months.
func YearsMonths(periods int) (years, months int) {
	return periods / MonthsPerYear, periods % MonthsPerYear
}

// FormatMoney renders an amount with the currency symbol and exactly 2 decimals.
// The amount is rounded with Round2 first so text and JSON output agree.
func FormatMoney(symbol string, amount float64) string {
	return symbol + decimal.NewFromFloat(Round2(amount)).StringFixed(2)
}
