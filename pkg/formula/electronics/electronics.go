// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     electronics
// Description: Ohm's law, resistor networks, dividers and RC timing
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package electronics

import (
	"math"
	"strings"

	"github.com/msto63/rechenwerk/foundation/utils/mathx"
	"github.com/msto63/rechenwerk/foundation/utils/slicex"
	"github.com/msto63/rechenwerk/pkg/formula"
)

// Domain is the catalog domain of this package
const Domain = "electronics"

const (
	idOhmsLaw         = Domain + ".ohms_law"
	idResistorNetwork = Domain + ".resistor_network"
	idVoltageDivider  = Domain + ".voltage_divider"
	idRCTimeConstant  = Domain + ".rc_time_constant"
)

// ============================================================================
// Ohm's law
// ============================================================================

// OhmsLawInput selects the quantity to solve for. It is one of SolveVoltage,
// SolveCurrent, SolveResistance or SolvePower.
type OhmsLawInput interface{ ohmsLawInput() }

// SolveVoltage solves V = I * R
type SolveVoltage struct {
	Current    float64 `json:"current" yaml:"current"`
	Resistance float64 `json:"resistance" yaml:"resistance"`
}

// SolveCurrent solves I = V / R
type SolveCurrent struct {
	Voltage    float64 `json:"voltage" yaml:"voltage"`
	Resistance float64 `json:"resistance" yaml:"resistance"`
}

// SolveResistance solves R = V / I
type SolveResistance struct {
	Voltage float64 `json:"voltage" yaml:"voltage"`
	Current float64 `json:"current" yaml:"current"`
}

// SolvePower solves P = V * I
type SolvePower struct {
	Voltage float64 `json:"voltage" yaml:"voltage"`
	Current float64 `json:"current" yaml:"current"`
}

func (SolveVoltage) ohmsLawInput()    {}
func (SolveCurrent) ohmsLawInput()    {}
func (SolveResistance) ohmsLawInput() {}
func (SolvePower) ohmsLawInput()      {}

// OhmsLawResult holds all four quantities rounded to 4 decimals
type OhmsLawResult struct {
	Voltage    float64 `json:"voltage" yaml:"voltage"`
	Current    float64 `json:"current" yaml:"current"`
	Resistance float64 `json:"resistance" yaml:"resistance"`
	Power      float64 `json:"power" yaml:"power"`
}

// OhmsLaw completes voltage, current, resistance and power from the two
// quantities the selected variant carries. Solving for power with zero
// current is not computable: the result always carries a resistance and
// V / 0 has none.
func OhmsLaw(in OhmsLawInput) (OhmsLawResult, error) {
	var v, i, r float64

	switch x := in.(type) {
	case SolveVoltage:
		if err := formula.RequireFinite(idOhmsLaw, "", x.Current, x.Resistance); err != nil {
			return OhmsLawResult{}, err
		}
		i, r = x.Current, x.Resistance
		v = i * r
	case SolveCurrent:
		if err := formula.RequireFinite(idOhmsLaw, "", x.Voltage, x.Resistance); err != nil {
			return OhmsLawResult{}, err
		}
		if x.Resistance == 0 {
			return OhmsLawResult{}, formula.NotComputable(idOhmsLaw, "resistance", "resistance must not be zero")
		}
		v, r = x.Voltage, x.Resistance
		i = v / r
	case SolveResistance:
		if err := formula.RequireFinite(idOhmsLaw, "", x.Voltage, x.Current); err != nil {
			return OhmsLawResult{}, err
		}
		if x.Current == 0 {
			return OhmsLawResult{}, formula.NotComputable(idOhmsLaw, "current", "current must not be zero")
		}
		v, i = x.Voltage, x.Current
		r = v / i
	case SolvePower:
		if err := formula.RequireFinite(idOhmsLaw, "", x.Voltage, x.Current); err != nil {
			return OhmsLawResult{}, err
		}
		if x.Current == 0 {
			return OhmsLawResult{}, formula.NotComputable(idOhmsLaw, "current", "current must not be zero")
		}
		v, i = x.Voltage, x.Current
		r = v / i
	default:
		return OhmsLawResult{}, formula.UnknownVariant(idOhmsLaw, "solveFor", in)
	}

	return formula.Finite(idOhmsLaw, OhmsLawResult{
		Voltage:    mathx.RoundTo(v, 4),
		Current:    mathx.RoundTo(i, 4),
		Resistance: mathx.RoundTo(r, 4),
		Power:      mathx.RoundTo(v*i, 4),
	})
}

// ============================================================================
// Resistor networks
// ============================================================================

// ResistorNetworkInput lists resistors joined in series or in parallel
type ResistorNetworkInput struct {
	Topology    string    `json:"topology" yaml:"topology"`
	Resistances []float64 `json:"resistances" yaml:"resistances"`
}

// ResistorNetworkResult holds the equivalent resistance
type ResistorNetworkResult struct {
	TotalOhms float64 `json:"totalOhms" yaml:"totalOhms"`
	Count     int     `json:"count" yaml:"count"`
}

// ResistorNetwork computes the equivalent resistance of a series or
// parallel network.
func ResistorNetwork(in ResistorNetworkInput) (ResistorNetworkResult, error) {
	if len(in.Resistances) == 0 {
		return ResistorNetworkResult{}, formula.NotComputable(idResistorNetwork, "resistances", "at least one resistor is required")
	}
	if err := formula.RequireFinite(idResistorNetwork, "resistances", in.Resistances...); err != nil {
		return ResistorNetworkResult{}, err
	}

	var total float64
	switch strings.ToLower(strings.TrimSpace(in.Topology)) {
	case "series":
		total = mathx.Sum(in.Resistances)
	case "parallel":
		if slicex.Some(in.Resistances, func(r float64) bool { return r <= 0 }) {
			return ResistorNetworkResult{}, formula.NotComputable(idResistorNetwork, "resistances",
				"parallel resistors must be greater than 0")
		}
		conductance := slicex.Reduce(in.Resistances, 0.0, func(acc, r float64) float64 { return acc + 1/r })
		total = 1 / conductance
	default:
		return ResistorNetworkResult{}, formula.UnknownVariant(idResistorNetwork, "topology", in.Topology)
	}

	return formula.Finite(idResistorNetwork, ResistorNetworkResult{
		TotalOhms: mathx.RoundTo(total, 4),
		Count:     len(in.Resistances),
	})
}

// ============================================================================
// Voltage divider
// ============================================================================

// VoltageDividerInput describes an unloaded two-resistor divider
type VoltageDividerInput struct {
	InputVoltage float64 `json:"inputVoltage" yaml:"inputVoltage"`
	R1           float64 `json:"r1" yaml:"r1"`
	R2           float64 `json:"r2" yaml:"r2"`
}

// VoltageDividerResult holds the divider output
type VoltageDividerResult struct {
	OutputVoltage    float64 `json:"outputVoltage" yaml:"outputVoltage"`
	Ratio            float64 `json:"ratio" yaml:"ratio"`
	CurrentMilliamps float64 `json:"currentMilliamps" yaml:"currentMilliamps"`
}

// VoltageDivider computes Vout = Vin * R2 / (R1 + R2)
func VoltageDivider(in VoltageDividerInput) (VoltageDividerResult, error) {
	if err := formula.RequireFinite(idVoltageDivider, "", in.InputVoltage, in.R1, in.R2); err != nil {
		return VoltageDividerResult{}, err
	}
	if in.R1 < 0 || in.R2 < 0 {
		return VoltageDividerResult{}, formula.NotComputable(idVoltageDivider, "r1", "resistances must not be negative")
	}
	total := in.R1 + in.R2
	if total == 0 {
		return VoltageDividerResult{}, formula.NotComputable(idVoltageDivider, "r2", "r1 + r2 must be greater than 0")
	}

	ratio := in.R2 / total
	return formula.Finite(idVoltageDivider, VoltageDividerResult{
		OutputVoltage:    mathx.RoundTo(in.InputVoltage*ratio, 4),
		Ratio:            mathx.RoundTo(ratio, 6),
		CurrentMilliamps: mathx.RoundTo(in.InputVoltage/total*1000, 4),
	})
}

// ============================================================================
// RC time constant
// ============================================================================

// RCTimeConstantInput describes a first-order RC network
type RCTimeConstantInput struct {
	ResistanceOhms    float64 `json:"resistanceOhms" yaml:"resistanceOhms"`
	CapacitanceFarads float64 `json:"capacitanceFarads" yaml:"capacitanceFarads"`
}

// RCTimeConstantResult holds tau, the -3 dB cutoff and the 99% settle time
type RCTimeConstantResult struct {
	TauSeconds      float64 `json:"tauSeconds" yaml:"tauSeconds"`
	CutoffHz        float64 `json:"cutoffHz" yaml:"cutoffHz"`
	Settle99Seconds float64 `json:"settle99Seconds" yaml:"settle99Seconds"`
}

// RCTimeConstant computes tau = R * C, the cutoff 1 / (2 pi tau) and the
// settle time of five time constants.
func RCTimeConstant(in RCTimeConstantInput) (RCTimeConstantResult, error) {
	if err := formula.RequireFinite(idRCTimeConstant, "", in.ResistanceOhms, in.CapacitanceFarads); err != nil {
		return RCTimeConstantResult{}, err
	}
	if in.ResistanceOhms <= 0 {
		return RCTimeConstantResult{}, formula.NotComputable(idRCTimeConstant, "resistanceOhms", "resistance must be greater than 0")
	}
	if in.CapacitanceFarads <= 0 {
		return RCTimeConstantResult{}, formula.NotComputable(idRCTimeConstant, "capacitanceFarads", "capacitance must be greater than 0")
	}

	tau := in.ResistanceOhms * in.CapacitanceFarads
	return formula.Finite(idRCTimeConstant, RCTimeConstantResult{
		TauSeconds:      mathx.RoundTo(tau, 6),
		CutoffHz:        mathx.RoundTo(1/(2*math.Pi*tau), 4),
		Settle99Seconds: mathx.RoundTo(5*tau, 6),
	})
}
