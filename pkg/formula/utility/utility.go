// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     utility
// Description: Interpolation, temperature conversion and percent change
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package utility

import (
	"math"
	"strings"

	"github.com/msto63/rechenwerk/foundation/utils/mathx"
	"github.com/msto63/rechenwerk/foundation/utils/slicex"
	"github.com/msto63/rechenwerk/pkg/formula"
)

// Domain is the catalog domain of this package
const Domain = "utility"

const (
	idLinearInterpolation   = Domain + ".linear_interpolation"
	idTemperatureConversion = Domain + ".temperature_conversion"
	idLoanPayment           = Domain + ".loan_payment"
	idNetPresentValue       = Domain + ".net_present_value"
	idPercentChange         = Domain + ".percent_change"
)

// ============================================================================
// Linear interpolation
// ============================================================================

// Point is one sample of a tabulated function
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// LinearInterpolationInput asks for y at x over a set of samples
type LinearInterpolationInput struct {
	Points []Point `json:"points" yaml:"points"`
	X      float64 `json:"x" yaml:"x"`
}

// LinearInterpolationResult holds the interpolated y and the bracketing
// indices into the points sorted by x.
type LinearInterpolationResult struct {
	Y            float64 `json:"y" yaml:"y"`
	LowerIndex   int     `json:"lowerIndex" yaml:"lowerIndex"`
	UpperIndex   int     `json:"upperIndex" yaml:"upperIndex"`
	Extrapolated bool    `json:"extrapolated" yaml:"extrapolated"`
}

// LinearInterpolation interpolates between the two samples bracketing x.
// Outside the sampled range the nearest edge value is returned and the
// result is marked as extrapolated. A bracket of two equal x values
// returns the lower sample's y.
func LinearInterpolation(in LinearInterpolationInput) (LinearInterpolationResult, error) {
	if len(in.Points) == 0 {
		return LinearInterpolationResult{}, formula.NotComputable(idLinearInterpolation, "points", "points must not be empty")
	}
	if err := formula.RequireFinite(idLinearInterpolation, "x", in.X); err != nil {
		return LinearInterpolationResult{}, err
	}
	for _, p := range in.Points {
		if err := formula.RequireFinite(idLinearInterpolation, "points", p.X, p.Y); err != nil {
			return LinearInterpolationResult{}, err
		}
	}

	points := slicex.SortBy(in.Points, func(a, b Point) bool { return a.X < b.X })
	last := len(points) - 1

	switch {
	case in.X < points[0].X:
		return LinearInterpolationResult{Y: mathx.RoundTo(points[0].Y, 6), Extrapolated: true}, nil
	case in.X > points[last].X:
		return LinearInterpolationResult{
			Y:            mathx.RoundTo(points[last].Y, 6),
			LowerIndex:   last,
			UpperIndex:   last,
			Extrapolated: true,
		}, nil
	case last == 0:
		return LinearInterpolationResult{Y: mathx.RoundTo(points[0].Y, 6)}, nil
	}

	i := 0
	for i < last-1 && in.X > points[i+1].X {
		i++
	}
	lower, upper := points[i], points[i+1]

	y := lower.Y
	if upper.X != lower.X {
		y = lower.Y + (in.X-lower.X)*(upper.Y-lower.Y)/(upper.X-lower.X)
	}
	return formula.Finite(idLinearInterpolation, LinearInterpolationResult{
		Y:          mathx.RoundTo(y, 6),
		LowerIndex: i,
		UpperIndex: i + 1,
	})
}

// ============================================================================
// Temperature conversion
// ============================================================================

// TemperatureInput is a temperature tagged with C, F, K or R
type TemperatureInput struct {
	FromUnit string  `json:"fromUnit" yaml:"fromUnit"`
	Value    float64 `json:"value" yaml:"value"`
}

// TemperatureResult expresses a temperature in Celsius, Fahrenheit, Kelvin
// and Rankine, rounded to 4 decimals
type TemperatureResult struct {
	C float64 `json:"C" yaml:"C"`
	F float64 `json:"F" yaml:"F"`
	K float64 `json:"K" yaml:"K"`
	R float64 `json:"R" yaml:"R"`
}

// In returns the value for a unit tag accepted by TemperatureConversion
func (r TemperatureResult) In(unit string) (float64, bool) {
	switch temperatureUnit(unit) {
	case "c":
		return r.C, true
	case "f":
		return r.F, true
	case "k":
		return r.K, true
	case "r":
		return r.R, true
	}
	return 0, false
}

// TemperatureUnits returns the accepted temperature unit tags
func TemperatureUnits() []string {
	return []string{"C", "F", "K", "R"}
}

func temperatureUnit(unit string) string {
	key := strings.ToLower(strings.TrimSpace(unit))
	key = strings.TrimPrefix(key, "°")
	switch key {
	case "celsius":
		return "c"
	case "fahrenheit":
		return "f"
	case "kelvin":
		return "k"
	case "rankine":
		return "r"
	}
	return key
}

// TemperatureConversion converts a temperature through Kelvin. Values
// below absolute zero are not computable.
func TemperatureConversion(in TemperatureInput) (TemperatureResult, error) {
	if err := formula.RequireFinite(idTemperatureConversion, "value", in.Value); err != nil {
		return TemperatureResult{}, err
	}

	var kelvin float64
	switch temperatureUnit(in.FromUnit) {
	case "c":
		kelvin = in.Value + 273.15
	case "f":
		kelvin = (in.Value + 459.67) * 5 / 9
	case "k":
		kelvin = in.Value
	case "r":
		kelvin = in.Value * 5 / 9
	default:
		return TemperatureResult{}, formula.UnknownUnit(idTemperatureConversion, "fromUnit", in.FromUnit)
	}
	if kelvin < 0 {
		return TemperatureResult{}, formula.NotComputable(idTemperatureConversion, "value", "temperature is below absolute zero")
	}

	return formula.Finite(idTemperatureConversion, TemperatureResult{
		C: mathx.RoundTo(kelvin-273.15, 4),
		F: mathx.RoundTo(kelvin*9/5-459.67, 4),
		K: mathx.RoundTo(kelvin, 4),
		R: mathx.RoundTo(kelvin*9/5, 4),
	})
}

// ============================================================================
// Percent change
// ============================================================================

// PercentChangeInput compares a new value against a base
type PercentChangeInput struct {
	From float64 `json:"from" yaml:"from"`
	To   float64 `json:"to" yaml:"to"`
}

// PercentChangeResult holds the absolute and relative change
type PercentChangeResult struct {
	Change  float64 `json:"change" yaml:"change"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// PercentChange computes (to - from) / |from| * 100
func PercentChange(in PercentChangeInput) (PercentChangeResult, error) {
	if err := formula.RequireFinite(idPercentChange, "", in.From, in.To); err != nil {
		return PercentChangeResult{}, err
	}
	if in.From == 0 {
		return PercentChangeResult{}, formula.NotComputable(idPercentChange, "from", "from must not be zero")
	}

	change := in.To - in.From
	return formula.Finite(idPercentChange, PercentChangeResult{
		Change:  mathx.RoundTo(change, 4),
		Percent: mathx.RoundTo(change/math.Abs(in.From)*100, 2),
	})
}
