// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     quality
// Description: Moving averages and least-squares regression
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package quality

import (
	"strings"

	"github.com/msto63/rechenwerk/foundation/utils/mathx"
	"github.com/msto63/rechenwerk/foundation/utils/slicex"
	"github.com/msto63/rechenwerk/pkg/formula"
)

// MovingAverageInput smooths a series over a sliding window. Method is
// one of sma, ema or wma.
type MovingAverageInput struct {
	Data   []float64 `json:"data" yaml:"data"`
	Window int       `json:"window" yaml:"window"`
	Method string    `json:"method" yaml:"method"`
}

// MovingAverageResult holds n-window+1 averages
type MovingAverageResult struct {
	Values []float64 `json:"values" yaml:"values"`
}

// MovingAverage computes a simple, exponential or linearly weighted moving
// average. The exponential average is seeded with the simple average of the
// first window and uses alpha = 2 / (window + 1).
func MovingAverage(in MovingAverageInput) (MovingAverageResult, error) {
	method := strings.ToLower(strings.TrimSpace(in.Method))
	switch method {
	case "sma", "ema", "wma":
	default:
		return MovingAverageResult{}, formula.UnknownVariant(idMovingAverage, "method", in.Method)
	}
	if err := requireSeries(idMovingAverage, "data", in.Data); err != nil {
		return MovingAverageResult{}, err
	}
	if in.Window < 1 || in.Window > len(in.Data) {
		return MovingAverageResult{}, formula.NotComputable(idMovingAverage, "window",
			"window must be between 1 and %d", len(in.Data))
	}

	windows := slicex.Windows(in.Data, in.Window)
	var values []float64
	switch method {
	case "sma":
		values = slicex.Map(windows, func(w []float64) float64 {
			return mathx.Sum(w) / float64(len(w))
		})
	case "wma":
		weightSum := float64(in.Window*(in.Window+1)) / 2
		values = slicex.Map(windows, func(w []float64) float64 {
			weighted := slicex.Reduce(slicex.MapWithIndex(w, func(i int, v float64) float64 {
				return float64(i+1) * v
			}), 0.0, func(acc, v float64) float64 { return acc + v })
			return weighted / weightSum
		})
	case "ema":
		alpha := 2 / float64(in.Window+1)
		values = make([]float64, 0, len(windows))
		ema := mathx.Sum(windows[0]) / float64(in.Window)
		values = append(values, ema)
		for _, v := range in.Data[in.Window:] {
			ema = alpha*v + (1-alpha)*ema
			values = append(values, ema)
		}
	}

	return formula.Finite(idMovingAverage, MovingAverageResult{Values: mathx.RoundAll(values, 4)})
}

// LinearRegressionInput pairs x and y samples. PredictAt is optional.
type LinearRegressionInput struct {
	X         []float64 `json:"x" yaml:"x"`
	Y         []float64 `json:"y" yaml:"y"`
	PredictAt *float64  `json:"predictAt,omitempty" yaml:"predictAt,omitempty"`
}

// LinearRegressionResult holds the least-squares line. Prediction is nil
// when no predictAt was given.
type LinearRegressionResult struct {
	Slope      float64  `json:"slope" yaml:"slope"`
	Intercept  float64  `json:"intercept" yaml:"intercept"`
	R2         float64  `json:"r2" yaml:"r2"`
	Prediction *float64 `json:"prediction,omitempty" yaml:"prediction,omitempty"`
}

// LinearRegression fits y = slope * x + intercept by ordinary least
// squares. A constant y is fitted exactly, so r2 is 1.
func LinearRegression(in LinearRegressionInput) (LinearRegressionResult, error) {
	if len(in.X) != len(in.Y) {
		return LinearRegressionResult{}, formula.NotComputable(idLinearRegression, "y",
			"x and y must have the same length (%d != %d)", len(in.X), len(in.Y))
	}
	if len(in.X) < 2 {
		return LinearRegressionResult{}, formula.NotComputable(idLinearRegression, "x", "at least two points are required")
	}
	if err := formula.RequireFinite(idLinearRegression, "x", in.X...); err != nil {
		return LinearRegressionResult{}, err
	}
	if err := formula.RequireFinite(idLinearRegression, "y", in.Y...); err != nil {
		return LinearRegressionResult{}, err
	}
	if in.PredictAt != nil {
		if err := formula.RequireFinite(idLinearRegression, "predictAt", *in.PredictAt); err != nil {
			return LinearRegressionResult{}, err
		}
	}

	meanX, _ := mathx.Mean(in.X)
	meanY, _ := mathx.Mean(in.Y)
	var sxx, syy, sxy float64
	for _, p := range slicex.Zip(in.X, in.Y) {
		dx, dy := p.First-meanX, p.Second-meanY
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	if sxx == 0 {
		return LinearRegressionResult{}, formula.NotComputable(idLinearRegression, "x", "x values must not all be equal")
	}

	slope := sxy / sxx
	intercept := meanY - slope*meanX
	r2 := 1.0
	if syy != 0 {
		r2 = sxy * sxy / (sxx * syy)
	}

	result := LinearRegressionResult{
		Slope:     mathx.RoundTo(slope, 6),
		Intercept: mathx.RoundTo(intercept, 6),
		R2:        mathx.RoundTo(r2, 6),
	}
	if in.PredictAt != nil {
		at := *in.PredictAt
		prediction := mathx.RoundTo(slope*at+intercept, 6)
		result.Prediction = &prediction
	}
	return formula.Finite(idLinearRegression, result)
}
