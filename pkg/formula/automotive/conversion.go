// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     automotive
// Description: Power and torque unit conversion
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package automotive

import (
	"strings"

	"github.com/msto63/rechenwerk/foundation/utils/mathx"
	"github.com/msto63/rechenwerk/pkg/formula"
)

// Domain is the catalog domain of this package
const Domain = "automotive"

const (
	idPowerConversion  = Domain + ".power_conversion"
	idTorqueConversion = Domain + ".torque_conversion"
	idFuelEconomy      = Domain + ".fuel_economy"
	idVehicleSpeed     = Domain + ".vehicle_speed"
)

// Watts per unit
var powerUnits = map[string]float64{
	"w":     1,
	"kw":    1000,
	"hp":    745.69987158227,
	"ps":    735.49875,
	"btu/h": 0.29307107017,
	"btuh":  0.29307107017,
}

// Newton metres per unit
var torqueUnits = map[string]float64{
	"nm":     1,
	"knm":    1000,
	"lbf.ft": 1.3558179483314,
	"lbf.in": 0.1129848290276,
	"kgf.m":  9.80665,
}

func unitKey(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

// ConversionInput is a value tagged with its unit
type ConversionInput struct {
	FromUnit string  `json:"fromUnit" yaml:"fromUnit"`
	Value    float64 `json:"value" yaml:"value"`
}

// PowerResult expresses a power in every supported unit, rounded to 4
// decimals. HP is mechanical horsepower, PS metric horsepower.
type PowerResult struct {
	W    float64 `json:"W" yaml:"W"`
	KW   float64 `json:"kW" yaml:"kW"`
	HP   float64 `json:"HP" yaml:"HP"`
	PS   float64 `json:"PS" yaml:"PS"`
	BTUh float64 `json:"BTUh" yaml:"BTUh"`
}

// In returns the value for a unit tag accepted by PowerConversion
func (r PowerResult) In(unit string) (float64, bool) {
	switch unitKey(unit) {
	case "w":
		return r.W, true
	case "kw":
		return r.KW, true
	case "hp":
		return r.HP, true
	case "ps":
		return r.PS, true
	case "btu/h", "btuh":
		return r.BTUh, true
	}
	return 0, false
}

// PowerConversion converts a power between W, kW, HP, PS and BTU/h. Unit
// tags are case-insensitive; an unknown tag fails with ErrUnknownUnit.
func PowerConversion(in ConversionInput) (PowerResult, error) {
	factor, ok := powerUnits[unitKey(in.FromUnit)]
	if !ok {
		return PowerResult{}, formula.UnknownUnit(idPowerConversion, "fromUnit", in.FromUnit)
	}
	if err := formula.RequireFinite(idPowerConversion, "value", in.Value); err != nil {
		return PowerResult{}, err
	}

	watts := in.Value * factor
	return formula.Finite(idPowerConversion, PowerResult{
		W:    mathx.RoundTo(watts, 4),
		KW:   mathx.RoundTo(watts/powerUnits["kw"], 4),
		HP:   mathx.RoundTo(watts/powerUnits["hp"], 4),
		PS:   mathx.RoundTo(watts/powerUnits["ps"], 4),
		BTUh: mathx.RoundTo(watts/powerUnits["btu/h"], 4),
	})
}

// TorqueResult expresses a torque in every supported unit, rounded to 4
// decimals
type TorqueResult struct {
	Nm    float64 `json:"Nm" yaml:"Nm"`
	KNm   float64 `json:"kNm" yaml:"kNm"`
	LbfFt float64 `json:"lbfFt" yaml:"lbfFt"`
	LbfIn float64 `json:"lbfIn" yaml:"lbfIn"`
	KgfM  float64 `json:"kgfM" yaml:"kgfM"`
}

// In returns the value for a unit tag accepted by TorqueConversion
func (r TorqueResult) In(unit string) (float64, bool) {
	switch unitKey(unit) {
	case "nm":
		return r.Nm, true
	case "knm":
		return r.KNm, true
	case "lbf.ft":
		return r.LbfFt, true
	case "lbf.in":
		return r.LbfIn, true
	case "kgf.m":
		return r.KgfM, true
	}
	return 0, false
}

// TorqueConversion converts a torque between Nm, kNm, lbf.ft, lbf.in and
// kgf.m.
func TorqueConversion(in ConversionInput) (TorqueResult, error) {
	factor, ok := torqueUnits[unitKey(in.FromUnit)]
	if !ok {
		return TorqueResult{}, formula.UnknownUnit(idTorqueConversion, "fromUnit", in.FromUnit)
	}
	if err := formula.RequireFinite(idTorqueConversion, "value", in.Value); err != nil {
		return TorqueResult{}, err
	}

	nm := in.Value * factor
	return formula.Finite(idTorqueConversion, TorqueResult{
		Nm:    mathx.RoundTo(nm, 4),
		KNm:   mathx.RoundTo(nm/torqueUnits["knm"], 4),
		LbfFt: mathx.RoundTo(nm/torqueUnits["lbf.ft"], 4),
		LbfIn: mathx.RoundTo(nm/torqueUnits["lbf.in"], 4),
		KgfM:  mathx.RoundTo(nm/torqueUnits["kgf.m"], 4),
	})
}

// PowerUnits returns the accepted power unit tags
func PowerUnits() []string {
	return []string{"W", "kW", "HP", "PS", "BTU/h"}
}

// TorqueUnits returns the accepted torque unit tags
func TorqueUnits() []string {
	return []string{"Nm", "kNm", "lbf.ft", "lbf.in", "kgf.m"}
}
