// Package money centralizes integer-cents arithmetic. All rounding is
// round-half-up; penny drift across quote components is a bug.
package money

import "github.com/shopspring/decimal"

// PercentOf returns round-half-up of cents × percent / 100.
func PercentOf(cents int64, percent float64) int64 {
	return decimal.NewFromInt(cents).
		Mul(decimal.NewFromFloat(percent)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

// ApplyPercent returns cents scaled by (1 + percent/100), round-half-up.
// Negative percents discount; the caller clamps if the running total
// must not go below zero.
func ApplyPercent(cents int64, percent float64) int64 {
	factor := decimal.NewFromInt(1).Add(
		decimal.NewFromFloat(percent).Div(decimal.NewFromInt(100)),
	)
	return decimal.NewFromInt(cents).Mul(factor).Round(0).IntPart()
}

// Split returns round-half-up of cents / parts. Parts must be > 0.
func Split(cents int64, parts int) int64 {
	return decimal.NewFromInt(cents).
		Div(decimal.NewFromInt(int64(parts))).
		Round(0).
		IntPart()
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
