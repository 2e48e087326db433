// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     metal
// Description: Bar and plate weight, thermal expansion and sheet bending
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package metal

import (
	"math"
	"strings"

	"github.com/msto63/rechenwerk/foundation/utils/mathx"
	"github.com/msto63/rechenwerk/foundation/utils/slicex"
	"github.com/msto63/rechenwerk/pkg/formula"
)

// Domain is the catalog domain of this package
const Domain = "metal"

const (
	idWeight           = Domain + ".weight"
	idThermalExpansion = Domain + ".thermal_expansion"
	idBendAllowance    = Domain + ".bend_allowance"
)

// DefaultKFactor is the neutral axis position used when none is given
const DefaultKFactor = 0.33

// densities in kg/m³
var densities = map[string]float64{
	"steel":     7850,
	"stainless": 8000,
	"aluminum":  2700,
	"copper":    8960,
	"brass":     8500,
	"titanium":  4500,
}

// Materials returns the accepted material tags in sorted order
func Materials() []string {
	names := make([]string, 0, len(densities))
	for name := range densities {
		names = append(names, name)
	}
	return slicex.Sort(names)
}

// ============================================================================
// Weight
// ============================================================================

// WeightInput selects the cross section. It is one of Round, Square, Plate
// or Tube.
type WeightInput interface{ weightInput() }

// Round is a solid round bar
type Round struct {
	DiameterMm float64 `json:"diameterMm" yaml:"diameterMm"`
	LengthMm   float64 `json:"lengthMm" yaml:"lengthMm"`
	Material   string  `json:"material" yaml:"material"`
}

// Square is a solid square bar
type Square struct {
	SideMm   float64 `json:"sideMm" yaml:"sideMm"`
	LengthMm float64 `json:"lengthMm" yaml:"lengthMm"`
	Material string  `json:"material" yaml:"material"`
}

// Plate is a flat bar or plate
type Plate struct {
	WidthMm     float64 `json:"widthMm" yaml:"widthMm"`
	ThicknessMm float64 `json:"thicknessMm" yaml:"thicknessMm"`
	LengthMm    float64 `json:"lengthMm" yaml:"lengthMm"`
	Material    string  `json:"material" yaml:"material"`
}

// Tube is a round tube given by outer diameter and wall thickness
type Tube struct {
	OuterDiameterMm float64 `json:"outerDiameterMm" yaml:"outerDiameterMm"`
	WallMm          float64 `json:"wallMm" yaml:"wallMm"`
	LengthMm        float64 `json:"lengthMm" yaml:"lengthMm"`
	Material        string  `json:"material" yaml:"material"`
}

func (Round) weightInput()  {}
func (Square) weightInput() {}
func (Plate) weightInput()  {}
func (Tube) weightInput()   {}

// WeightResult holds cross section, volume, density and mass
type WeightResult struct {
	AreaMm2     float64 `json:"areaMm2" yaml:"areaMm2"`
	VolumeCm3   float64 `json:"volumeCm3" yaml:"volumeCm3"`
	DensityKgM3 float64 `json:"densityKgM3" yaml:"densityKgM3"`
	WeightKg    float64 `json:"weightKg" yaml:"weightKg"`
}

// Weight computes the mass of a bar, plate or tube of the given length
func Weight(in WeightInput) (WeightResult, error) {
	var area, length float64
	var material string

	switch x := in.(type) {
	case Round:
		if err := formula.RequireFinite(idWeight, "", x.DiameterMm, x.LengthMm); err != nil {
			return WeightResult{}, err
		}
		if x.DiameterMm <= 0 {
			return WeightResult{}, formula.NotComputable(idWeight, "diameterMm", "diameter must be greater than 0")
		}
		r := x.DiameterMm / 2
		area, length, material = math.Pi*r*r, x.LengthMm, x.Material
	case Square:
		if err := formula.RequireFinite(idWeight, "", x.SideMm, x.LengthMm); err != nil {
			return WeightResult{}, err
		}
		if x.SideMm <= 0 {
			return WeightResult{}, formula.NotComputable(idWeight, "sideMm", "side must be greater than 0")
		}
		area, length, material = x.SideMm*x.SideMm, x.LengthMm, x.Material
	case Plate:
		if err := formula.RequireFinite(idWeight, "", x.WidthMm, x.ThicknessMm, x.LengthMm); err != nil {
			return WeightResult{}, err
		}
		if x.WidthMm <= 0 || x.ThicknessMm <= 0 {
			return WeightResult{}, formula.NotComputable(idWeight, "", "width and thickness must be greater than 0")
		}
		area, length, material = x.WidthMm*x.ThicknessMm, x.LengthMm, x.Material
	case Tube:
		if err := formula.RequireFinite(idWeight, "", x.OuterDiameterMm, x.WallMm, x.LengthMm); err != nil {
			return WeightResult{}, err
		}
		outer := x.OuterDiameterMm / 2
		if outer <= 0 || x.WallMm <= 0 {
			return WeightResult{}, formula.NotComputable(idWeight, "", "outer diameter and wall must be greater than 0")
		}
		if x.WallMm >= outer {
			return WeightResult{}, formula.NotComputable(idWeight, "wallMm", "wall must be less than the outer radius")
		}
		inner := outer - x.WallMm
		area, length, material = math.Pi*(outer*outer-inner*inner), x.LengthMm, x.Material
	default:
		return WeightResult{}, formula.UnknownVariant(idWeight, "shape", in)
	}

	if length <= 0 {
		return WeightResult{}, formula.NotComputable(idWeight, "lengthMm", "length must be greater than 0")
	}
	density, ok := densities[strings.ToLower(strings.TrimSpace(material))]
	if !ok {
		return WeightResult{}, formula.UnknownUnit(idWeight, "material", material)
	}

	volume := area * length / 1000
	return formula.Finite(idWeight, WeightResult{
		AreaMm2:     mathx.RoundTo(area, 3),
		VolumeCm3:   mathx.RoundTo(volume, 3),
		DensityKgM3: density,
		WeightKg:    mathx.RoundTo(volume*density/1e6, 3),
	})
}

// ============================================================================
// Thermal expansion
// ============================================================================

// ThermalExpansionInput is a length, a linear expansion coefficient and a
// temperature change
type ThermalExpansionInput struct {
	LengthMm        float64 `json:"lengthMm" yaml:"lengthMm"`
	CoefficientPerC float64 `json:"coefficientPerC" yaml:"coefficientPerC"`
	DeltaTempC      float64 `json:"deltaTempC" yaml:"deltaTempC"`
}

// ThermalExpansionResult holds the length change and the final length
type ThermalExpansionResult struct {
	DeltaLengthMm float64 `json:"deltaLengthMm" yaml:"deltaLengthMm"`
	FinalLengthMm float64 `json:"finalLengthMm" yaml:"finalLengthMm"`
}

// ThermalExpansion computes dL = L * alpha * dT
func ThermalExpansion(in ThermalExpansionInput) (ThermalExpansionResult, error) {
	if err := formula.RequireFinite(idThermalExpansion, "", in.LengthMm, in.CoefficientPerC, in.DeltaTempC); err != nil {
		return ThermalExpansionResult{}, err
	}
	if in.LengthMm <= 0 {
		return ThermalExpansionResult{}, formula.NotComputable(idThermalExpansion, "lengthMm", "length must be greater than 0")
	}

	delta := in.LengthMm * in.CoefficientPerC * in.DeltaTempC
	return formula.Finite(idThermalExpansion, ThermalExpansionResult{
		DeltaLengthMm: mathx.RoundTo(delta, 4),
		FinalLengthMm: mathx.RoundTo(in.LengthMm+delta, 4),
	})
}

// ============================================================================
// Bend allowance
// ============================================================================

// BendAllowanceInput describes an air bend in sheet metal
type BendAllowanceInput struct {
	AngleDegrees   float64  `json:"angleDegrees" yaml:"angleDegrees"`
	InsideRadiusMm float64  `json:"insideRadiusMm" yaml:"insideRadiusMm"`
	ThicknessMm    float64  `json:"thicknessMm" yaml:"thicknessMm"`
	KFactor        *float64 `json:"kFactor,omitempty" yaml:"kFactor,omitempty"`
}

// BendAllowanceResult holds the flat pattern allowances
type BendAllowanceResult struct {
	BendAllowanceMm  float64 `json:"bendAllowanceMm" yaml:"bendAllowanceMm"`
	OutsideSetbackMm float64 `json:"outsideSetbackMm" yaml:"outsideSetbackMm"`
	BendDeductionMm  float64 `json:"bendDeductionMm" yaml:"bendDeductionMm"`
}

// BendAllowance computes BA = theta * (R + K*T), OSSB = tan(theta/2) * (R + T)
// and BD = 2*OSSB - BA. The bend angle must be in (0, 180) degrees.
func BendAllowance(in BendAllowanceInput) (BendAllowanceResult, error) {
	k := DefaultKFactor
	if in.KFactor != nil {
		k = *in.KFactor
	}
	if err := formula.RequireFinite(idBendAllowance, "", in.AngleDegrees, in.InsideRadiusMm, in.ThicknessMm, k); err != nil {
		return BendAllowanceResult{}, err
	}
	switch {
	case in.AngleDegrees <= 0 || in.AngleDegrees >= 180:
		return BendAllowanceResult{}, formula.NotComputable(idBendAllowance, "angleDegrees", "angle must be between 0 and 180 degrees exclusive")
	case in.InsideRadiusMm < 0:
		return BendAllowanceResult{}, formula.NotComputable(idBendAllowance, "insideRadiusMm", "inside radius must not be negative")
	case in.ThicknessMm <= 0:
		return BendAllowanceResult{}, formula.NotComputable(idBendAllowance, "thicknessMm", "thickness must be greater than 0")
	case k <= 0 || k > 1:
		return BendAllowanceResult{}, formula.NotComputable(idBendAllowance, "kFactor", "k-factor must be in (0, 1]")
	}

	theta := in.AngleDegrees * math.Pi / 180
	allowance := theta * (in.InsideRadiusMm + k*in.ThicknessMm)
	setback := math.Tan(theta/2) * (in.InsideRadiusMm + in.ThicknessMm)
	return formula.Finite(idBendAllowance, BendAllowanceResult{
		BendAllowanceMm:  mathx.RoundTo(allowance, 3),
		OutsideSetbackMm: mathx.RoundTo(setback, 3),
		BendDeductionMm:  mathx.RoundTo(2*setback-allowance, 3),
	})
}
