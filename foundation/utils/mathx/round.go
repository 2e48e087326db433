// File: round.go
// Title: Decimal Rounding
// Description: Rounds float64 values to a fixed number of decimals with a
//              sign-aware epsilon correction.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.3.0: float64 rounding replaces Decimal.Round

package mathx

import "math"

const (
	// Epsilon is the float64 machine epsilon (2^-52)
	Epsilon = 2.220446049250313e-16

	// DefaultDecimals is the precision used by Round
	DefaultDecimals = 2
)

// RoundTo rounds value half away from zero to the given number of decimals.
// Non-finite values are returned unchanged and negative decimals count as 0.
func RoundTo(value float64, decimals int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	if decimals < 0 {
		decimals = 0
	}

	sign := 1.0
	if value < 0 {
		sign = -1.0
	}

	factor := math.Pow10(decimals)
	scaled := (value + sign*Epsilon) * factor
	if math.IsInf(scaled, 0) {
		// Too large to carry any fractional digits at this precision.
		return value
	}
	return math.Round(scaled) / factor
}

// Round rounds value to DefaultDecimals
func Round(value float64) float64 {
	return RoundTo(value, DefaultDecimals)
}

// RoundAll returns a new slice with every element rounded to decimals
func RoundAll(values []float64, decimals int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = RoundTo(v, decimals)
	}
	return out
}

// IsFinite reports whether value is neither NaN nor infinite
func IsFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// AllFinite reports whether every value is finite
func AllFinite(values ...float64) bool {
	for _, v := range values {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}
