// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     chemical
// Description: Dilution, molarity and pH calculations
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package chemical

import (
	"math"

	"github.com/msto63/rechenwerk/foundation/utils/mathx"
	"github.com/msto63/rechenwerk/pkg/formula"
)

// Domain is the catalog domain of this package
const Domain = "chemical"

const (
	idDilution = Domain + ".dilution"
	idMolarity = Domain + ".molarity"
	idPH       = Domain + ".ph"
)

// pKw is the ion product of water at 25 °C
const pKw = 14.0

// DilutionInput names the unknown of C1·V1 = C2·V2. It is one of
// SolveC1, SolveV1, SolveC2 or SolveV2.
type DilutionInput interface{ dilutionInput() }

// SolveC1 finds the stock concentration
type SolveC1 struct {
	V1 float64 `json:"v1" yaml:"v1"`
	C2 float64 `json:"c2" yaml:"c2"`
	V2 float64 `json:"v2" yaml:"v2"`
}

// SolveV1 finds the stock volume to draw
type SolveV1 struct {
	C1 float64 `json:"c1" yaml:"c1"`
	C2 float64 `json:"c2" yaml:"c2"`
	V2 float64 `json:"v2" yaml:"v2"`
}

// SolveC2 finds the final concentration
type SolveC2 struct {
	C1 float64 `json:"c1" yaml:"c1"`
	V1 float64 `json:"v1" yaml:"v1"`
	V2 float64 `json:"v2" yaml:"v2"`
}

// SolveV2 finds the final volume
type SolveV2 struct {
	C1 float64 `json:"c1" yaml:"c1"`
	V1 float64 `json:"v1" yaml:"v1"`
	C2 float64 `json:"c2" yaml:"c2"`
}

func (SolveC1) dilutionInput() {}
func (SolveV1) dilutionInput() {}
func (SolveC2) dilutionInput() {}
func (SolveV2) dilutionInput() {}

// DilutionResult holds all four quantities and the dilution factor V2/V1
type DilutionResult struct {
	C1             float64 `json:"c1" yaml:"c1"`
	V1             float64 `json:"v1" yaml:"v1"`
	C2             float64 `json:"c2" yaml:"c2"`
	V2             float64 `json:"v2" yaml:"v2"`
	DilutionFactor float64 `json:"dilutionFactor" yaml:"dilutionFactor"`
}

func divide(field string, numerator, divisor float64) (float64, error) {
	if divisor == 0 {
		return 0, formula.NotComputable(idDilution, field, "%s must not be zero", field)
	}
	return numerator / divisor, nil
}

// Dilution solves C1·V1 = C2·V2 for the selected unknown
func Dilution(in DilutionInput) (DilutionResult, error) {
	var c1, v1, c2, v2 float64
	var err error

	switch x := in.(type) {
	case SolveC1:
		v1, c2, v2 = x.V1, x.C2, x.V2
		c1, err = divide("v1", c2*v2, v1)
	case SolveV1:
		c1, c2, v2 = x.C1, x.C2, x.V2
		v1, err = divide("c1", c2*v2, c1)
	case SolveC2:
		c1, v1, v2 = x.C1, x.V1, x.V2
		c2, err = divide("v2", c1*v1, v2)
	case SolveV2:
		c1, v1, c2 = x.C1, x.V1, x.C2
		v2, err = divide("c2", c1*v1, c2)
	default:
		return DilutionResult{}, formula.UnknownVariant(idDilution, "solveFor", in)
	}
	if err != nil {
		return DilutionResult{}, err
	}
	if err := formula.RequireFinite(idDilution, "", c1, v1, c2, v2); err != nil {
		return DilutionResult{}, err
	}

	factor, err := divide("v1", v2, v1)
	if err != nil {
		return DilutionResult{}, err
	}
	return formula.Finite(idDilution, DilutionResult{
		C1:             mathx.RoundTo(c1, 6),
		V1:             mathx.RoundTo(v1, 6),
		C2:             mathx.RoundTo(c2, 6),
		V2:             mathx.RoundTo(v2, 6),
		DilutionFactor: mathx.RoundTo(factor, 4),
	})
}

// MolarityInput is a mass of solute dissolved to a volume of solution
type MolarityInput struct {
	MassGrams    float64 `json:"massGrams" yaml:"massGrams"`
	MolarMass    float64 `json:"molarMass" yaml:"molarMass"`
	VolumeLiters float64 `json:"volumeLiters" yaml:"volumeLiters"`
}

// MolarityResult holds amount of substance and concentration
type MolarityResult struct {
	Moles      float64 `json:"moles" yaml:"moles"`
	Molarity   float64 `json:"molarity" yaml:"molarity"`
	Millimolar float64 `json:"millimolar" yaml:"millimolar"`
}

// Molarity computes moles = mass / molar mass and mol/L
func Molarity(in MolarityInput) (MolarityResult, error) {
	if err := formula.RequireFinite(idMolarity, "", in.MassGrams, in.MolarMass, in.VolumeLiters); err != nil {
		return MolarityResult{}, err
	}
	switch {
	case in.MassGrams < 0:
		return MolarityResult{}, formula.NotComputable(idMolarity, "massGrams", "mass must not be negative")
	case in.MolarMass <= 0:
		return MolarityResult{}, formula.NotComputable(idMolarity, "molarMass", "molar mass must be greater than 0")
	case in.VolumeLiters <= 0:
		return MolarityResult{}, formula.NotComputable(idMolarity, "volumeLiters", "volume must be greater than 0")
	}

	moles := in.MassGrams / in.MolarMass
	molarity := moles / in.VolumeLiters
	return formula.Finite(idMolarity, MolarityResult{
		Moles:      mathx.RoundTo(moles, 6),
		Molarity:   mathx.RoundTo(molarity, 6),
		Millimolar: mathx.RoundTo(molarity*1000, 3),
	})
}

// PHInput is the hydrogen ion concentration in mol/L
type PHInput struct {
	HydrogenIonMolarity float64 `json:"hydrogenIonMolarity" yaml:"hydrogenIonMolarity"`
}

// PHResult holds pH, pOH, the hydroxide concentration and a classification
// of acidic, neutral or basic
type PHResult struct {
	PH                float64 `json:"pH" yaml:"pH"`
	POH               float64 `json:"pOH" yaml:"pOH"`
	HydroxideMolarity float64 `json:"hydroxideMolarity" yaml:"hydroxideMolarity"`
	Classification    string  `json:"classification" yaml:"classification"`
}

// PH computes pH = -log10[H+] and pOH = 14 - pH at 25 °C. A solution is
// neutral only when its rounded pH is exactly 7.
func PH(in PHInput) (PHResult, error) {
	if err := formula.RequireFinite(idPH, "hydrogenIonMolarity", in.HydrogenIonMolarity); err != nil {
		return PHResult{}, err
	}
	if in.HydrogenIonMolarity <= 0 {
		return PHResult{}, formula.NotComputable(idPH, "hydrogenIonMolarity", "concentration must be greater than 0")
	}

	ph := mathx.RoundTo(-math.Log10(in.HydrogenIonMolarity), 4)
	poh := mathx.RoundTo(pKw-ph, 4)

	class := "neutral"
	switch {
	case ph < 7:
		class = "acidic"
	case ph > 7:
		class = "basic"
	}
	return formula.Finite(idPH, PHResult{
		PH:                ph,
		POH:               poh,
		HydroxideMolarity: mathx.RoundTo(math.Pow(10, -(pKw+math.Log10(in.HydrogenIonMolarity))), 10),
		Classification:    class,
	})
}
