// File: series.go
// Title: Series Aggregation
// Description: Sum, mean, extrema, variance and quantiles over read-only
//              float64 series.
// Author: msto63
// Version: v0.3.1
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.3.0: float64 series helpers replace the Decimal statistics
// - 2026-10-19 v0.3.1: Quantile interpolation without spread overflow

package mathx

import (
	"errors"
	"math"

	"github.com/msto63/rechenwerk/foundation/utils/slicex"
)

// ErrEmptySeries is returned by aggregations that need at least one value
var ErrEmptySeries = errors.New("mathx: empty series")

// Sum returns the sum of values; 0 for an empty series
func Sum(values []float64) float64 {
	return slicex.Sum(values)
}

// Mean returns the arithmetic mean
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptySeries
	}
	return Sum(values) / float64(len(values)), nil
}

// MinMax returns the smallest and largest value
func MinMax(values []float64) (min, max float64, err error) {
	min, ok := slicex.Min(values)
	if !ok {
		return 0, 0, ErrEmptySeries
	}
	max, _ = slicex.Max(values)
	return min, max, nil
}

// sumSquares returns the sum of squared deviations from the mean
func sumSquares(values []float64) (float64, error) {
	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}
	return slicex.Reduce(values, 0.0, func(acc, v float64) float64 {
		d := v - mean
		return acc + d*d
	}), nil
}

// PopulationVariance returns the variance dividing by n
func PopulationVariance(values []float64) (float64, error) {
	ss, err := sumSquares(values)
	if err != nil {
		return 0, err
	}
	return ss / float64(len(values)), nil
}

// SampleVariance returns the variance dividing by n-1. A single value has
// zero sample variance.
func SampleVariance(values []float64) (float64, error) {
	ss, err := sumSquares(values)
	if err != nil {
		return 0, err
	}
	if len(values) < 2 {
		return 0, nil
	}
	return ss / float64(len(values)-1), nil
}

// StdDev returns the population standard deviation
func StdDev(values []float64) (float64, error) {
	v, err := PopulationVariance(values)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// SortedCopy returns an ascending copy of values
func SortedCopy(values []float64) []float64 {
	if values == nil {
		return []float64{}
	}
	return slicex.Sort(values)
}

// Quantile returns the q-quantile (q in [0, 1]) of an ascending series by
// linear interpolation between the two closest ranks. q is clamped to
// [0, 1]; the extremes return the first and last element directly.
func Quantile(sorted []float64, q float64) (float64, error) {
	n := len(sorted)
	if n == 0 {
		return 0, ErrEmptySeries
	}
	switch {
	case q <= 0:
		return sorted[0], nil
	case q >= 1:
		return sorted[n-1], nil
	}

	rank := q * float64(n-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower], nil
	}
	frac := rank - float64(lower)
	if spread := sorted[upper] - sorted[lower]; IsFinite(spread) {
		return sorted[lower] + frac*spread, nil
	}
	// The spread overflows for values near opposite ends of the float64 range
	return sorted[lower]*(1-frac) + sorted[upper]*frac, nil
}

// Median returns the median of values without modifying them
func Median(values []float64) (float64, error) {
	return Quantile(SortedCopy(values), 0.5)
}
