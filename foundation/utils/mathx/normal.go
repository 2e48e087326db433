// File: normal.go
// Title: Standard Normal Distribution
// Description: Cumulative distribution and quantile function of the standard
//              normal distribution.
// Author: msto63
// Version: v0.3.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.3.0: Initial implementation
// - 2026-10-19 v0.3.1: Upper tail quantile accurate for tiny probabilities

package mathx

import (
	"errors"
	"math"
)

// ErrProbability is returned for probabilities outside the open interval (0, 1)
var ErrProbability = errors.New("mathx: probability must be in (0, 1)")

// NormalCDF returns P(Z <= z) for a standard normal Z
func NormalCDF(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}

// NormalQuantile returns z such that NormalCDF(z) == p
func NormalQuantile(p float64) (float64, error) {
	if !(p > 0 && p < 1) {
		return 0, ErrProbability
	}
	return math.Sqrt2 * math.Erfinv(2*p-1), nil
}

// tailThreshold separates the central region from the tails in
// NormalUpperQuantile
const tailThreshold = 0.02425

// Rational approximation coefficients for the lower tail (P. J. Acklam)
var (
	tailNumerator   = [6]float64{-7.784894002430293e-03, -3.223964580411365e-01, -2.400758277161838e+00, -2.549732539343734e+00, 4.374664141464968e+00, 2.938163982698783e+00}
	tailDenominator = [4]float64{7.784695709041462e-03, 3.224671290700398e-01, 2.445134137142996e+00, 3.754408661907416e+00}
)

// NormalUpperQuantile returns z such that P(Z > z) == p. Unlike
// NormalQuantile(1-p) it stays accurate for p far below the float64
// resolution of 1-p.
func NormalUpperQuantile(p float64) (float64, error) {
	if !(p > 0 && p < 1) {
		return 0, ErrProbability
	}
	if p > tailThreshold && p < 1-tailThreshold {
		return math.Sqrt2 * math.Erfinv(1-2*p), nil
	}

	// Solve the lower tail for min(p, 1-p), then refine with one Halley step
	lower := math.Min(p, 1-p)
	q := math.Sqrt(-2 * math.Log(lower))
	c, d := tailNumerator, tailDenominator
	x := (((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
		((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)

	e := 0.5*math.Erfc(-x/math.Sqrt2) - lower
	u := e * math.Sqrt(2*math.Pi) * math.Exp(x*x/2)
	x -= u / (1 + x*u/2)

	if p == lower {
		return -x, nil
	}
	return x, nil
}
