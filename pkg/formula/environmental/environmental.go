// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     environmental
// Description: Carbon footprint, lifecycle cost and emission intensity
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package environmental

import (
	"github.com/msto63/rechenwerk/foundation/utils/mathx"
	"github.com/msto63/rechenwerk/foundation/utils/slicex"
	"github.com/msto63/rechenwerk/pkg/formula"
)

// Domain is the catalog domain of this package
const Domain = "environmental"

const (
	idCarbonFootprint   = Domain + ".carbon_footprint"
	idLifecycleCost     = Domain + ".lifecycle_cost"
	idEmissionIntensity = Domain + ".emission_intensity"
)

// Default emission factors in kg CO2e per unit
const (
	DefaultElectricityFactor = 0.4  // per kWh
	DefaultGasFactor         = 2.02 // per m3 natural gas
	DefaultDieselFactor      = 2.68 // per litre diesel
)

// CarbonFootprintInput lists energy consumption with optional emission
// factors overriding the defaults
type CarbonFootprintInput struct {
	ElectricityKWh    float64  `json:"electricityKWh" yaml:"electricityKWh"`
	NaturalGasM3      float64  `json:"naturalGasM3" yaml:"naturalGasM3"`
	DieselLiters      float64  `json:"dieselLiters" yaml:"dieselLiters"`
	ElectricityFactor *float64 `json:"electricityFactor,omitempty" yaml:"electricityFactor,omitempty"`
	GasFactor         *float64 `json:"gasFactor,omitempty" yaml:"gasFactor,omitempty"`
	DieselFactor      *float64 `json:"dieselFactor,omitempty" yaml:"dieselFactor,omitempty"`
}

// CarbonFootprintResult splits emissions into direct (scope 1) and
// purchased electricity (scope 2)
type CarbonFootprintResult struct {
	Scope1Kg    float64 `json:"scope1Kg" yaml:"scope1Kg"`
	Scope2Kg    float64 `json:"scope2Kg" yaml:"scope2Kg"`
	TotalKg     float64 `json:"totalKg" yaml:"totalKg"`
	TotalTonnes float64 `json:"totalTonnes" yaml:"totalTonnes"`
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// CarbonFootprint converts energy use into kg CO2e
func CarbonFootprint(in CarbonFootprintInput) (CarbonFootprintResult, error) {
	electricity := orDefault(in.ElectricityFactor, DefaultElectricityFactor)
	gas := orDefault(in.GasFactor, DefaultGasFactor)
	diesel := orDefault(in.DieselFactor, DefaultDieselFactor)

	values := []float64{in.ElectricityKWh, in.NaturalGasM3, in.DieselLiters, electricity, gas, diesel}
	if err := formula.RequireFinite(idCarbonFootprint, "", values...); err != nil {
		return CarbonFootprintResult{}, err
	}
	if slicex.Some(values[:3], func(v float64) bool { return v < 0 }) {
		return CarbonFootprintResult{}, formula.NotComputable(idCarbonFootprint, "", "quantities must not be negative")
	}
	if slicex.Some(values[3:], func(v float64) bool { return v < 0 }) {
		return CarbonFootprintResult{}, formula.NotComputable(idCarbonFootprint, "", "emission factors must not be negative")
	}

	scope1 := in.NaturalGasM3*gas + in.DieselLiters*diesel
	scope2 := in.ElectricityKWh * electricity
	total := scope1 + scope2
	return formula.Finite(idCarbonFootprint, CarbonFootprintResult{
		Scope1Kg:    mathx.RoundTo(scope1, 2),
		Scope2Kg:    mathx.RoundTo(scope2, 2),
		TotalKg:     mathx.RoundTo(total, 2),
		TotalTonnes: mathx.RoundTo(total/1000, 4),
	})
}

// Stage is one cost event in an asset's life
type Stage struct {
	Name        string  `json:"name" yaml:"name"`
	Cost        float64 `json:"cost" yaml:"cost"`
	Year        int     `json:"year" yaml:"year"`
	EmissionsKg float64 `json:"emissionsKg" yaml:"emissionsKg"`
}

// LifecycleCostInput lists stages over a horizon. DiscountRate is a
// fraction per year.
type LifecycleCostInput struct {
	Stages       []Stage `json:"stages" yaml:"stages"`
	DiscountRate float64 `json:"discountRate" yaml:"discountRate"`
	HorizonYears int     `json:"horizonYears" yaml:"horizonYears"`
}

// StageValue is the discounted cost of one stage
type StageValue struct {
	Name         string  `json:"name" yaml:"name"`
	Year         int     `json:"year" yaml:"year"`
	PresentValue float64 `json:"presentValue" yaml:"presentValue"`
}

// LifecycleCostResult holds the nominal and discounted totals and the
// equivalent annual cost over the horizon
type LifecycleCostResult struct {
	Stages           []StageValue `json:"stages" yaml:"stages"`
	NominalCost      float64      `json:"nominalCost" yaml:"nominalCost"`
	PresentValue     float64      `json:"presentValue" yaml:"presentValue"`
	AnnualizedCost   float64      `json:"annualizedCost" yaml:"annualizedCost"`
	AnnuityFactor    float64      `json:"annuityFactor" yaml:"annuityFactor"`
	TotalEmissionsKg float64      `json:"totalEmissionsKg" yaml:"totalEmissionsKg"`
}

// LifecycleCost discounts every stage to year 0 and spreads the total over
// the horizon with the annuity factor. With a zero rate the annuity factor
// equals the horizon.
func LifecycleCost(in LifecycleCostInput) (LifecycleCostResult, error) {
	if len(in.Stages) == 0 {
		return LifecycleCostResult{}, formula.NotComputable(idLifecycleCost, "stages", "stages must not be empty")
	}
	if in.HorizonYears < 1 {
		return LifecycleCostResult{}, formula.NotComputable(idLifecycleCost, "horizonYears", "horizon must be at least 1 year")
	}
	if err := formula.RequireFinite(idLifecycleCost, "discountRate", in.DiscountRate); err != nil {
		return LifecycleCostResult{}, err
	}
	if in.DiscountRate <= -1 {
		return LifecycleCostResult{}, formula.NotComputable(idLifecycleCost, "discountRate", "discount rate must be greater than -1")
	}
	for i, s := range in.Stages {
		if err := formula.RequireFinite(idLifecycleCost, "stages", s.Cost, s.EmissionsKg); err != nil {
			return LifecycleCostResult{}, err
		}
		if s.Year < 0 || s.Year > in.HorizonYears {
			return LifecycleCostResult{}, formula.NotComputable(idLifecycleCost, "stages",
				"stage %d (%s) year %d is outside [0, %d]", i, s.Name, s.Year, in.HorizonYears)
		}
	}

	values := make([]float64, len(in.Stages))
	for i, s := range in.Stages {
		factor, _ := mathx.DiscountFactor(in.DiscountRate, float64(s.Year))
		values[i] = s.Cost * factor
	}
	annuity, _ := mathx.AnnuityFactor(in.DiscountRate, float64(in.HorizonYears))
	pv := mathx.Sum(values)

	return formula.Finite(idLifecycleCost, LifecycleCostResult{
		Stages: slicex.MapWithIndex(in.Stages, func(i int, s Stage) StageValue {
			return StageValue{Name: s.Name, Year: s.Year, PresentValue: mathx.RoundTo(values[i], 2)}
		}),
		NominalCost:      mathx.RoundTo(slicex.Reduce(in.Stages, 0.0, func(acc float64, s Stage) float64 { return acc + s.Cost }), 2),
		PresentValue:     mathx.RoundTo(pv, 2),
		AnnualizedCost:   mathx.RoundTo(pv/annuity, 2),
		AnnuityFactor:    mathx.RoundTo(annuity, 6),
		TotalEmissionsKg: mathx.RoundTo(slicex.Reduce(in.Stages, 0.0, func(acc float64, s Stage) float64 { return acc + s.EmissionsKg }), 2),
	})
}

// EmissionIntensityInput relates emissions to output and, optionally,
// revenue
type EmissionIntensityInput struct {
	EmissionsKg   float64  `json:"emissionsKg" yaml:"emissionsKg"`
	UnitsProduced float64  `json:"unitsProduced" yaml:"unitsProduced"`
	Revenue       *float64 `json:"revenue,omitempty" yaml:"revenue,omitempty"`
}

// EmissionIntensityResult holds intensity per unit and, when revenue was
// given, per unit of revenue
type EmissionIntensityResult struct {
	KgPerUnit    float64  `json:"kgPerUnit" yaml:"kgPerUnit"`
	KgPerRevenue *float64 `json:"kgPerRevenue,omitempty" yaml:"kgPerRevenue,omitempty"`
}

// EmissionIntensity computes kg CO2e per unit produced and per unit of
// revenue. KgPerRevenue stays nil when no revenue was supplied.
func EmissionIntensity(in EmissionIntensityInput) (EmissionIntensityResult, error) {
	if err := formula.RequireFinite(idEmissionIntensity, "", in.EmissionsKg, in.UnitsProduced); err != nil {
		return EmissionIntensityResult{}, err
	}
	if in.EmissionsKg < 0 {
		return EmissionIntensityResult{}, formula.NotComputable(idEmissionIntensity, "emissionsKg", "emissions must not be negative")
	}
	if in.UnitsProduced <= 0 {
		return EmissionIntensityResult{}, formula.NotComputable(idEmissionIntensity, "unitsProduced", "units produced must be greater than 0")
	}

	result := EmissionIntensityResult{KgPerUnit: mathx.RoundTo(in.EmissionsKg/in.UnitsProduced, 4)}
	if in.Revenue != nil {
		revenue := *in.Revenue
		if err := formula.RequireFinite(idEmissionIntensity, "revenue", revenue); err != nil {
			return EmissionIntensityResult{}, err
		}
		if revenue <= 0 {
			return EmissionIntensityResult{}, formula.NotComputable(idEmissionIntensity, "revenue", "revenue must be greater than 0")
		}
		perRevenue := mathx.RoundTo(in.EmissionsKg/revenue, 6)
		result.KgPerRevenue = &perRevenue
	}
	return formula.Finite(idEmissionIntensity, result)
}
