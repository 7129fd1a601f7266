package money

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrNotFinite is returned when the input cannot be interpreted as a
// finite amount (NaN or ±Inf).
var ErrNotFinite = errors.New("not a finite number")

// Normalize rounds v to the nearest cent. Rounding is decimal
// half-away-from-zero at two fractional digits, so 1.005 becomes 1.01.
// Negative amounts are accepted here; callers that require price >= 0
// enforce that themselves.
func Normalize(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f, nil
}

// Line computes unit*qty rounded to cents. unit must be a value previously
// returned by Normalize.
func Line(unit float64, qty int) float64 {
	f, _ := decimal.NewFromFloat(unit).
		Mul(decimal.NewFromInt(int64(qty))).
		Round(2).
		Float64()
	return f
}

// Add sums two normalized amounts and renormalizes the result, keeping
// running totals free of binary float drift.
func Add(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).
		Add(decimal.NewFromFloat(b)).
		Round(2).
		Float64()
	return f
}
