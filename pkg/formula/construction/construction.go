// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     construction
// Description: Concrete volume, rebar weight and roof pitch
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package construction

import (
	"math"

	"github.com/msto63/rechenwerk/foundation/utils/mathx"
	"github.com/msto63/rechenwerk/pkg/formula"
)

// Domain is the catalog domain of this package
const Domain = "construction"

const (
	idConcreteVolume = Domain + ".concrete_volume"
	idRebarWeight    = Domain + ".rebar_weight"
	idRoofPitch      = Domain + ".roof_pitch"
)

const (
	// DefaultBagYieldM3 is the yield of a 30 kg bag of premixed concrete
	DefaultBagYieldM3 = 0.0142

	cubicYardsPerM3 = 1.307950619
	steelDensity    = 7850.0
)

// ConcreteVolumeInput describes a rectangular slab or footing
type ConcreteVolumeInput struct {
	LengthM      float64  `json:"lengthM" yaml:"lengthM"`
	WidthM       float64  `json:"widthM" yaml:"widthM"`
	ThicknessM   float64  `json:"thicknessM" yaml:"thicknessM"`
	WastePercent float64  `json:"wastePercent" yaml:"wastePercent"`
	BagYieldM3   *float64 `json:"bagYieldM3,omitempty" yaml:"bagYieldM3,omitempty"`
}

// ConcreteVolumeResult holds the volume to order and the bags to buy
type ConcreteVolumeResult struct {
	VolumeM3          float64 `json:"volumeM3" yaml:"volumeM3"`
	VolumeWithWasteM3 float64 `json:"volumeWithWasteM3" yaml:"volumeWithWasteM3"`
	CubicYards        float64 `json:"cubicYards" yaml:"cubicYards"`
	Bags              int     `json:"bags" yaml:"bags"`
}

// ConcreteVolume computes the concrete needed for a slab including a waste
// allowance. Bags are rounded up.
func ConcreteVolume(in ConcreteVolumeInput) (ConcreteVolumeResult, error) {
	yield := DefaultBagYieldM3
	if in.BagYieldM3 != nil {
		yield = *in.BagYieldM3
	}
	if err := formula.RequireFinite(idConcreteVolume, "", in.LengthM, in.WidthM, in.ThicknessM, in.WastePercent, yield); err != nil {
		return ConcreteVolumeResult{}, err
	}
	switch {
	case in.LengthM <= 0 || in.WidthM <= 0 || in.ThicknessM <= 0:
		return ConcreteVolumeResult{}, formula.NotComputable(idConcreteVolume, "lengthM", "dimensions must be greater than 0")
	case in.WastePercent < 0:
		return ConcreteVolumeResult{}, formula.NotComputable(idConcreteVolume, "wastePercent", "waste must not be negative")
	case yield <= 0:
		return ConcreteVolumeResult{}, formula.NotComputable(idConcreteVolume, "bagYieldM3", "bag yield must be greater than 0")
	}

	volume := in.LengthM * in.WidthM * in.ThicknessM
	withWaste := volume * (1 + in.WastePercent/100)
	return formula.Finite(idConcreteVolume, ConcreteVolumeResult{
		VolumeM3:          mathx.RoundTo(volume, 3),
		VolumeWithWasteM3: mathx.RoundTo(withWaste, 3),
		CubicYards:        mathx.RoundTo(withWaste*cubicYardsPerM3, 3),
		Bags:              int(math.Ceil(mathx.RoundTo(withWaste/yield, 6))),
	})
}

// RebarWeightInput describes a number of straight bars of one size
type RebarWeightInput struct {
	DiameterMm float64 `json:"diameterMm" yaml:"diameterMm"`
	LengthM    float64 `json:"lengthM" yaml:"lengthM"`
	Quantity   int     `json:"quantity" yaml:"quantity"`
}

// RebarWeightResult holds the unit weight and the totals
type RebarWeightResult struct {
	KgPerMeter   float64 `json:"kgPerMeter" yaml:"kgPerMeter"`
	TotalLengthM float64 `json:"totalLengthM" yaml:"totalLengthM"`
	TotalKg      float64 `json:"totalKg" yaml:"totalKg"`
}

// RebarWeight computes bar weight from its cross section and the density
// of steel.
func RebarWeight(in RebarWeightInput) (RebarWeightResult, error) {
	if err := formula.RequireFinite(idRebarWeight, "", in.DiameterMm, in.LengthM); err != nil {
		return RebarWeightResult{}, err
	}
	switch {
	case in.DiameterMm <= 0:
		return RebarWeightResult{}, formula.NotComputable(idRebarWeight, "diameterMm", "diameter must be greater than 0")
	case in.LengthM < 0:
		return RebarWeightResult{}, formula.NotComputable(idRebarWeight, "lengthM", "length must not be negative")
	case in.Quantity < 0:
		return RebarWeightResult{}, formula.NotComputable(idRebarWeight, "quantity", "quantity must not be negative")
	}

	d := in.DiameterMm / 1000
	perMeter := math.Pi / 4 * d * d * steelDensity
	totalLength := in.LengthM * float64(in.Quantity)
	return formula.Finite(idRebarWeight, RebarWeightResult{
		KgPerMeter:   mathx.RoundTo(perMeter, 3),
		TotalLengthM: mathx.RoundTo(totalLength, 2),
		TotalKg:      mathx.RoundTo(perMeter*totalLength, 2),
	})
}

// RoofPitchInput is the rise over a horizontal run in the same unit
type RoofPitchInput struct {
	Rise float64 `json:"rise" yaml:"rise"`
	Run  float64 `json:"run" yaml:"run"`
}

// RoofPitchResult expresses a pitch as angle, x-in-12, percent slope and
// the rafter length factor
type RoofPitchResult struct {
	AngleDegrees float64 `json:"angleDegrees" yaml:"angleDegrees"`
	PitchPer12   float64 `json:"pitchPer12" yaml:"pitchPer12"`
	SlopePercent float64 `json:"slopePercent" yaml:"slopePercent"`
	RafterFactor float64 `json:"rafterFactor" yaml:"rafterFactor"`
}

// RoofPitch converts rise and run into the common pitch notations
func RoofPitch(in RoofPitchInput) (RoofPitchResult, error) {
	if err := formula.RequireFinite(idRoofPitch, "", in.Rise, in.Run); err != nil {
		return RoofPitchResult{}, err
	}
	if in.Run <= 0 {
		return RoofPitchResult{}, formula.NotComputable(idRoofPitch, "run", "run must be greater than 0")
	}
	if in.Rise < 0 {
		return RoofPitchResult{}, formula.NotComputable(idRoofPitch, "rise", "rise must not be negative")
	}

	slope := in.Rise / in.Run
	return formula.Finite(idRoofPitch, RoofPitchResult{
		AngleDegrees: mathx.RoundTo(math.Atan(slope)*180/math.Pi, 6),
		PitchPer12:   mathx.RoundTo(slope*12, 2),
		SlopePercent: mathx.RoundTo(slope*100, 2),
		RafterFactor: mathx.RoundTo(math.Sqrt(1+slope*slope), 4),
	})
}
