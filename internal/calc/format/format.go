// Package format rounds figures for display. Calculations keep full precision;
// only what is printed goes through here.
package format

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Tons renders a tonnage with one decimal place, e.g. "247.5".
func Tons(v float64) string {
	return fixed1(v)
}

func Percent(v float64) string {
	return fixed1(v) + "%"
}

// Count renders a fractional count such as flights needed.
func Count(v float64) string {
	return fixed1(v)
}

// fixed1 rounds half away from zero. decimal panics on NaN and infinities, so
// those are printed as strconv spells them.
func fixed1(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(1)
}
