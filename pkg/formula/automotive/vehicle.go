// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     automotive
// Description: Fuel economy and vehicle speed from drivetrain data
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package automotive

import (
	"math"

	"github.com/msto63/rechenwerk/foundation/utils/mathx"
	"github.com/msto63/rechenwerk/pkg/formula"
)

const (
	kmPerMile        = 1.609344
	litersPerUSGal   = 3.785411784
	litersPerUKGal   = 4.54609
	millimetersPerKm = 1e6
)

// FuelEconomyInput is a distance driven on an amount of fuel
type FuelEconomyInput struct {
	DistanceKm float64 `json:"distanceKm" yaml:"distanceKm"`
	FuelLiters float64 `json:"fuelLiters" yaml:"fuelLiters"`
}

// FuelEconomyResult holds consumption in metric and imperial forms
type FuelEconomyResult struct {
	LitersPer100Km float64 `json:"litersPer100Km" yaml:"litersPer100Km"`
	KmPerLiter     float64 `json:"kmPerLiter" yaml:"kmPerLiter"`
	MpgUS          float64 `json:"mpgUS" yaml:"mpgUS"`
	MpgUK          float64 `json:"mpgUK" yaml:"mpgUK"`
}

// FuelEconomy converts distance and fuel into l/100km, km/l and miles per
// US and imperial gallon.
func FuelEconomy(in FuelEconomyInput) (FuelEconomyResult, error) {
	if err := formula.RequireFinite(idFuelEconomy, "", in.DistanceKm, in.FuelLiters); err != nil {
		return FuelEconomyResult{}, err
	}
	if in.DistanceKm <= 0 {
		return FuelEconomyResult{}, formula.NotComputable(idFuelEconomy, "distanceKm", "distance must be greater than 0")
	}
	if in.FuelLiters <= 0 {
		return FuelEconomyResult{}, formula.NotComputable(idFuelEconomy, "fuelLiters", "fuel must be greater than 0")
	}

	miles := in.DistanceKm / kmPerMile
	return formula.Finite(idFuelEconomy, FuelEconomyResult{
		LitersPer100Km: mathx.RoundTo(in.FuelLiters/in.DistanceKm*100, 2),
		KmPerLiter:     mathx.RoundTo(in.DistanceKm/in.FuelLiters, 2),
		MpgUS:          mathx.RoundTo(miles/(in.FuelLiters/litersPerUSGal), 2),
		MpgUK:          mathx.RoundTo(miles/(in.FuelLiters/litersPerUKGal), 2),
	})
}

// VehicleSpeedInput describes engine speed and drivetrain geometry
type VehicleSpeedInput struct {
	EngineRpm      float64 `json:"engineRpm" yaml:"engineRpm"`
	GearRatio      float64 `json:"gearRatio" yaml:"gearRatio"`
	FinalDrive     float64 `json:"finalDrive" yaml:"finalDrive"`
	TireDiameterMm float64 `json:"tireDiameterMm" yaml:"tireDiameterMm"`
}

// VehicleSpeedResult holds wheel speed and road speed
type VehicleSpeedResult struct {
	WheelRpm float64 `json:"wheelRpm" yaml:"wheelRpm"`
	SpeedKmh float64 `json:"speedKmh" yaml:"speedKmh"`
	SpeedMph float64 `json:"speedMph" yaml:"speedMph"`
}

// VehicleSpeed computes road speed from engine rpm, gear and final drive
// ratios and tire diameter, assuming no slip.
func VehicleSpeed(in VehicleSpeedInput) (VehicleSpeedResult, error) {
	if err := formula.RequireFinite(idVehicleSpeed, "", in.EngineRpm, in.GearRatio, in.FinalDrive, in.TireDiameterMm); err != nil {
		return VehicleSpeedResult{}, err
	}
	switch {
	case in.EngineRpm < 0:
		return VehicleSpeedResult{}, formula.NotComputable(idVehicleSpeed, "engineRpm", "engine rpm must not be negative")
	case in.GearRatio <= 0:
		return VehicleSpeedResult{}, formula.NotComputable(idVehicleSpeed, "gearRatio", "gear ratio must be greater than 0")
	case in.FinalDrive <= 0:
		return VehicleSpeedResult{}, formula.NotComputable(idVehicleSpeed, "finalDrive", "final drive must be greater than 0")
	case in.TireDiameterMm <= 0:
		return VehicleSpeedResult{}, formula.NotComputable(idVehicleSpeed, "tireDiameterMm", "tire diameter must be greater than 0")
	}

	wheelRpm := in.EngineRpm / (in.GearRatio * in.FinalDrive)
	kmh := wheelRpm * math.Pi * in.TireDiameterMm / millimetersPerKm * 60
	return formula.Finite(idVehicleSpeed, VehicleSpeedResult{
		WheelRpm: mathx.RoundTo(wheelRpm, 1),
		SpeedKmh: mathx.RoundTo(kmh, 2),
		SpeedMph: mathx.RoundTo(kmh/kmPerMile, 2),
	})
}
