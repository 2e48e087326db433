// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     quality
// Description: Descriptive statistics, percentiles and histograms
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package quality

import (
	"math"

	"github.com/msto63/rechenwerk/foundation/utils/mathx"
	"github.com/msto63/rechenwerk/foundation/utils/slicex"
	"github.com/msto63/rechenwerk/pkg/formula"
)

// SeriesInput is a plain data series
type SeriesInput struct {
	Data []float64 `json:"data" yaml:"data"`
}

// StatisticsResult summarises a data series. StdDev is the population
// standard deviation; values are rounded to 4 decimals.
type StatisticsResult struct {
	Count        int     `json:"count" yaml:"count"`
	Sum          float64 `json:"sum" yaml:"sum"`
	Mean         float64 `json:"mean" yaml:"mean"`
	Median       float64 `json:"median" yaml:"median"`
	Min          float64 `json:"min" yaml:"min"`
	Max          float64 `json:"max" yaml:"max"`
	Range        float64 `json:"range" yaml:"range"`
	Variance     float64 `json:"variance" yaml:"variance"`
	StdDev       float64 `json:"stdDev" yaml:"stdDev"`
	SampleStdDev float64 `json:"sampleStdDev" yaml:"sampleStdDev"`
}

func requireSeries(id, field string, data []float64) error {
	if len(data) == 0 {
		return formula.NotComputable(id, field, "%s must not be empty", field)
	}
	return formula.RequireFinite(id, field, data...)
}

// Statistics computes count, sum, mean, median, extrema, range, population
// variance and both standard deviations.
func Statistics(in SeriesInput) (StatisticsResult, error) {
	if err := requireSeries(idStatistics, "data", in.Data); err != nil {
		return StatisticsResult{}, err
	}

	mean, _ := mathx.Mean(in.Data)
	median, _ := mathx.Median(in.Data)
	lo, hi, _ := mathx.MinMax(in.Data)
	variance, _ := mathx.PopulationVariance(in.Data)
	sampleVariance, _ := mathx.SampleVariance(in.Data)

	return formula.Finite(idStatistics, StatisticsResult{
		Count:        len(in.Data),
		Sum:          mathx.RoundTo(mathx.Sum(in.Data), 4),
		Mean:         mathx.RoundTo(mean, 4),
		Median:       mathx.RoundTo(median, 4),
		Min:          mathx.RoundTo(lo, 4),
		Max:          mathx.RoundTo(hi, 4),
		Range:        mathx.RoundTo(hi-lo, 4),
		Variance:     mathx.RoundTo(variance, 4),
		StdDev:       mathx.RoundTo(math.Sqrt(variance), 4),
		SampleStdDev: mathx.RoundTo(math.Sqrt(sampleVariance), 4),
	})
}

// PercentileInput asks for one percentile of a series
type PercentileInput struct {
	Data       []float64 `json:"data" yaml:"data"`
	Percentile float64   `json:"percentile" yaml:"percentile"`
}

// PercentileResult holds the interpolated value and its zero-based rank
type PercentileResult struct {
	Value float64 `json:"value" yaml:"value"`
	Rank  float64 `json:"rank" yaml:"rank"`
}

// Percentile computes a percentile in [0, 100] by linear interpolation
// between closest ranks. 0 and 100 return the extrema.
func Percentile(in PercentileInput) (PercentileResult, error) {
	if err := requireSeries(idPercentile, "data", in.Data); err != nil {
		return PercentileResult{}, err
	}
	if math.IsNaN(in.Percentile) || in.Percentile < 0 || in.Percentile > 100 {
		return PercentileResult{}, formula.NotComputable(idPercentile, "percentile", "percentile must be between 0 and 100")
	}

	sorted := mathx.SortedCopy(in.Data)
	q := in.Percentile / 100
	value, _ := mathx.Quantile(sorted, q)
	return formula.Finite(idPercentile, PercentileResult{
		Value: mathx.RoundTo(value, 4),
		Rank:  mathx.RoundTo(q*float64(len(sorted)-1), 4),
	})
}

// MaxHistogramBins bounds the bin count of a single histogram
const MaxHistogramBins = 10000

// HistogramInput splits a series into equal-width bins
type HistogramInput struct {
	Data []float64 `json:"data" yaml:"data"`
	Bins int       `json:"bins" yaml:"bins"`
}

// Bin is one histogram bucket. The last bin includes its upper edge.
type Bin struct {
	Lower     float64 `json:"lower" yaml:"lower"`
	Upper     float64 `json:"upper" yaml:"upper"`
	Count     int     `json:"count" yaml:"count"`
	Frequency float64 `json:"frequency" yaml:"frequency"`
}

// HistogramResult holds the bin width and the bins in ascending order
type HistogramResult struct {
	BinWidth float64 `json:"binWidth" yaml:"binWidth"`
	Bins     []Bin   `json:"bins" yaml:"bins"`
}

// Histogram counts values into equal-width bins between the minimum and
// the maximum. A series without spread collapses into a single bin.
func Histogram(in HistogramInput) (HistogramResult, error) {
	if err := requireSeries(idHistogram, "data", in.Data); err != nil {
		return HistogramResult{}, err
	}
	if in.Bins < 1 {
		return HistogramResult{}, formula.NotComputable(idHistogram, "bins", "bins must be at least 1")
	}
	if in.Bins > MaxHistogramBins {
		return HistogramResult{}, formula.NotComputable(idHistogram, "bins", "bins must not exceed %d", MaxHistogramBins)
	}

	lo, hi, _ := mathx.MinMax(in.Data)
	n := float64(len(in.Data))
	if hi == lo {
		return formula.Finite(idHistogram, HistogramResult{
			BinWidth: 0,
			Bins: []Bin{{
				Lower:     mathx.RoundTo(lo, 4),
				Upper:     mathx.RoundTo(hi, 4),
				Count:     len(in.Data),
				Frequency: 1,
			}},
		})
	}

	width := (hi - lo) / float64(in.Bins)
	if !mathx.IsFinite(hi - lo) {
		return HistogramResult{}, formula.NotComputable(idHistogram, "data", "data range exceeds the float64 range")
	}
	if width == 0 {
		return HistogramResult{}, formula.NotComputable(idHistogram, "bins", "data range is too narrow for %d bins", in.Bins)
	}

	counts := make([]int, in.Bins)
	for _, v := range in.Data {
		pos := math.Floor((v - lo) / width)
		idx := in.Bins - 1
		switch {
		case math.IsNaN(pos) || pos < 0:
			idx = 0
		case pos < float64(in.Bins):
			idx = int(pos)
		}
		counts[idx]++
	}

	bins := slicex.MapWithIndex(counts, func(i, count int) Bin {
		upper := lo + float64(i+1)*width
		if i == in.Bins-1 {
			upper = hi
		}
		return Bin{
			Lower:     mathx.RoundTo(lo+float64(i)*width, 4),
			Upper:     mathx.RoundTo(upper, 4),
			Count:     count,
			Frequency: mathx.RoundTo(float64(count)/n, 4),
		}
	})
	return formula.Finite(idHistogram, HistogramResult{BinWidth: mathx.RoundTo(width, 4), Bins: bins})
}
