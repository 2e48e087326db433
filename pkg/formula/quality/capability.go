// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     quality
// Description: Process capability indices and six sigma defect metrics
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package quality

import (
	"math"

	"github.com/msto63/rechenwerk/foundation/utils/mathx"
	"github.com/msto63/rechenwerk/pkg/formula"
)

// Domain is the catalog domain of this package
const Domain = "quality"

const (
	idCpk              = Domain + ".cpk"
	idStatistics       = Domain + ".statistics"
	idPercentile       = Domain + ".percentile"
	idHistogram        = Domain + ".histogram"
	idMovingAverage    = Domain + ".moving_average"
	idLinearRegression = Domain + ".linear_regression"
	idDefectRate       = Domain + ".defect_rate"
)

// sigmaShift is the long-term drift assumed when quoting sigma levels
const sigmaShift = 1.5

// CpkInput describes a process against its specification limits
type CpkInput struct {
	USL    float64 `json:"usl" yaml:"usl"`
	LSL    float64 `json:"lsl" yaml:"lsl"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stdDev" yaml:"stdDev"`
}

// CpkResult holds the capability indices rounded to 4 decimals
type CpkResult struct {
	Cp  float64 `json:"cp" yaml:"cp"`
	Cpk float64 `json:"cpk" yaml:"cpk"`
	Cpu float64 `json:"cpu" yaml:"cpu"`
	Cpl float64 `json:"cpl" yaml:"cpl"`
}

// Cpk computes the process capability indices. A process without spread
// (stdDev <= 0) yields all-zero indices.
func Cpk(in CpkInput) (CpkResult, error) {
	if err := formula.RequireFinite(idCpk, "", in.USL, in.LSL, in.Mean, in.StdDev); err != nil {
		return CpkResult{}, err
	}
	if in.USL <= in.LSL {
		return CpkResult{}, formula.NotComputable(idCpk, "usl", "usl must be greater than lsl")
	}
	if in.StdDev <= 0 {
		return CpkResult{}, nil
	}

	cp := (in.USL - in.LSL) / (6 * in.StdDev)
	cpu := (in.USL - in.Mean) / (3 * in.StdDev)
	cpl := (in.Mean - in.LSL) / (3 * in.StdDev)
	return formula.Finite(idCpk, CpkResult{
		Cp:  mathx.RoundTo(cp, 4),
		Cpk: mathx.RoundTo(math.Min(cpu, cpl), 4),
		Cpu: mathx.RoundTo(cpu, 4),
		Cpl: mathx.RoundTo(cpl, 4),
	})
}

// DefectRateInput counts defects found over inspected units
type DefectRateInput struct {
	Defects              int `json:"defects" yaml:"defects"`
	Units                int `json:"units" yaml:"units"`
	OpportunitiesPerUnit int `json:"opportunitiesPerUnit" yaml:"opportunitiesPerUnit"`
}

// DefectRateResult holds defect density, yield and the short-term sigma level
type DefectRateResult struct {
	DPU          float64 `json:"dpu" yaml:"dpu"`
	DPMO         float64 `json:"dpmo" yaml:"dpmo"`
	YieldPercent float64 `json:"yieldPercent" yaml:"yieldPercent"`
	SigmaLevel   float64 `json:"sigmaLevel" yaml:"sigmaLevel"`
}

// DefectRate computes defects per unit, defects per million opportunities,
// first-pass yield and the sigma level including a 1.5 sigma shift. Zero
// defects is quoted as six sigma; a sigma level below zero is reported as 0.
func DefectRate(in DefectRateInput) (DefectRateResult, error) {
	if in.Units < 1 {
		return DefectRateResult{}, formula.NotComputable(idDefectRate, "units", "units must be at least 1")
	}
	if in.OpportunitiesPerUnit < 1 {
		return DefectRateResult{}, formula.NotComputable(idDefectRate, "opportunitiesPerUnit", "opportunities per unit must be at least 1")
	}
	if in.Defects < 0 {
		return DefectRateResult{}, formula.NotComputable(idDefectRate, "defects", "defects must not be negative")
	}
	opportunities := float64(in.Units) * float64(in.OpportunitiesPerUnit)
	defects := float64(in.Defects)
	if defects > opportunities {
		return DefectRateResult{}, formula.NotComputable(idDefectRate, "defects", "defects exceed opportunities")
	}

	dpo := defects / opportunities
	sigma := 6.0
	switch {
	case in.Defects == 0:
	case dpo >= 1:
		sigma = 0
	default:
		z, err := mathx.NormalUpperQuantile(dpo)
		if err != nil {
			return DefectRateResult{}, formula.NotComputable(idDefectRate, "defects", "%v", err)
		}
		sigma = math.Max(0, z+sigmaShift)
	}

	return formula.Finite(idDefectRate, DefectRateResult{
		DPU:          mathx.RoundTo(defects/float64(in.Units), 4),
		DPMO:         mathx.RoundTo(dpo*1e6, 1),
		YieldPercent: mathx.RoundTo((1-dpo)*100, 4),
		SigmaLevel:   mathx.RoundTo(sigma, 2),
	})
}
