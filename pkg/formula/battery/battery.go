// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     battery
// Description: Battery pack sizing, C-rate, runtime and cycle cost
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package battery

import (
	"github.com/msto63/rechenwerk/foundation/utils/mathx"
	"github.com/msto63/rechenwerk/pkg/formula"
)

// Domain is the catalog domain of this package
const Domain = "battery"

const (
	idPackEnergy = Domain + ".pack_energy"
	idCRate      = Domain + ".c_rate"
	idRuntime    = Domain + ".runtime"
	idCycleCost  = Domain + ".cycle_cost"
)

// PackEnergyInput describes a pack of identical cells in an sXpY layout
type PackEnergyInput struct {
	CellVoltage    float64 `json:"cellVoltage" yaml:"cellVoltage"`
	CellCapacityAh float64 `json:"cellCapacityAh" yaml:"cellCapacityAh"`
	SeriesCount    int     `json:"seriesCount" yaml:"seriesCount"`
	ParallelCount  int     `json:"parallelCount" yaml:"parallelCount"`
}

// PackEnergyResult holds the nominal pack ratings
type PackEnergyResult struct {
	CellCount      int     `json:"cellCount" yaml:"cellCount"`
	PackVoltage    float64 `json:"packVoltage" yaml:"packVoltage"`
	PackCapacityAh float64 `json:"packCapacityAh" yaml:"packCapacityAh"`
	EnergyWh       float64 `json:"energyWh" yaml:"energyWh"`
	EnergyKWh      float64 `json:"energyKWh" yaml:"energyKWh"`
}

// PackEnergy computes nominal voltage, capacity and energy of a pack.
// Series cells add voltage, parallel strings add capacity.
func PackEnergy(in PackEnergyInput) (PackEnergyResult, error) {
	if err := formula.RequireFinite(idPackEnergy, "", in.CellVoltage, in.CellCapacityAh); err != nil {
		return PackEnergyResult{}, err
	}
	switch {
	case in.CellVoltage <= 0:
		return PackEnergyResult{}, formula.NotComputable(idPackEnergy, "cellVoltage", "cell voltage must be greater than 0")
	case in.CellCapacityAh <= 0:
		return PackEnergyResult{}, formula.NotComputable(idPackEnergy, "cellCapacityAh", "cell capacity must be greater than 0")
	case in.SeriesCount < 1:
		return PackEnergyResult{}, formula.NotComputable(idPackEnergy, "seriesCount", "series count must be at least 1")
	case in.ParallelCount < 1:
		return PackEnergyResult{}, formula.NotComputable(idPackEnergy, "parallelCount", "parallel count must be at least 1")
	}

	voltage := in.CellVoltage * float64(in.SeriesCount)
	capacity := in.CellCapacityAh * float64(in.ParallelCount)
	wh := voltage * capacity
	return formula.Finite(idPackEnergy, PackEnergyResult{
		CellCount:      in.SeriesCount * in.ParallelCount,
		PackVoltage:    mathx.RoundTo(voltage, 2),
		PackCapacityAh: mathx.RoundTo(capacity, 2),
		EnergyWh:       mathx.RoundTo(wh, 2),
		EnergyKWh:      mathx.RoundTo(wh/1000, 3),
	})
}

// CRateInput is either CRateFromCurrent or CRateFromRate
type CRateInput interface{ cRateInput() }

// CRateFromCurrent derives the C-rate from a discharge current
type CRateFromCurrent struct {
	CapacityAh float64 `json:"capacityAh" yaml:"capacityAh"`
	CurrentA   float64 `json:"currentA" yaml:"currentA"`
}

// CRateFromRate derives the discharge current from a C-rate
type CRateFromRate struct {
	CapacityAh float64 `json:"capacityAh" yaml:"capacityAh"`
	CRate      float64 `json:"cRate" yaml:"cRate"`
}

func (CRateFromCurrent) cRateInput() {}
func (CRateFromRate) cRateInput()    {}

// CRateResult relates current, C-rate and ideal runtime
type CRateResult struct {
	CurrentA       float64 `json:"currentA" yaml:"currentA"`
	CRate          float64 `json:"cRate" yaml:"cRate"`
	RuntimeHours   float64 `json:"runtimeHours" yaml:"runtimeHours"`
	RuntimeMinutes float64 `json:"runtimeMinutes" yaml:"runtimeMinutes"`
}

// CRate converts between discharge current and C-rate and reports the
// ideal runtime 1 / C.
func CRate(in CRateInput) (CRateResult, error) {
	var capacity, current, rate float64

	switch x := in.(type) {
	case CRateFromCurrent:
		if err := formula.RequireFinite(idCRate, "", x.CapacityAh, x.CurrentA); err != nil {
			return CRateResult{}, err
		}
		if x.CurrentA <= 0 {
			return CRateResult{}, formula.NotComputable(idCRate, "currentA", "current must be greater than 0")
		}
		capacity, current = x.CapacityAh, x.CurrentA
		rate = current / capacity
	case CRateFromRate:
		if err := formula.RequireFinite(idCRate, "", x.CapacityAh, x.CRate); err != nil {
			return CRateResult{}, err
		}
		if x.CRate <= 0 {
			return CRateResult{}, formula.NotComputable(idCRate, "cRate", "C-rate must be greater than 0")
		}
		capacity, rate = x.CapacityAh, x.CRate
		current = rate * capacity
	default:
		return CRateResult{}, formula.UnknownVariant(idCRate, "mode", in)
	}
	if capacity <= 0 {
		return CRateResult{}, formula.NotComputable(idCRate, "capacityAh", "capacity must be greater than 0")
	}

	hours := 1 / rate
	return formula.Finite(idCRate, CRateResult{
		CurrentA:       mathx.RoundTo(current, 3),
		CRate:          mathx.RoundTo(rate, 4),
		RuntimeHours:   mathx.RoundTo(hours, 4),
		RuntimeMinutes: mathx.RoundTo(hours*60, 2),
	})
}

// RuntimeInput describes a battery feeding a constant load. Depth of
// discharge and efficiency are fractions in (0, 1].
type RuntimeInput struct {
	CapacityAh       float64 `json:"capacityAh" yaml:"capacityAh"`
	Voltage          float64 `json:"voltage" yaml:"voltage"`
	LoadWatts        float64 `json:"loadWatts" yaml:"loadWatts"`
	DepthOfDischarge float64 `json:"depthOfDischarge" yaml:"depthOfDischarge"`
	Efficiency       float64 `json:"efficiency" yaml:"efficiency"`
}

// RuntimeResult holds the usable energy and the runtime at the load
type RuntimeResult struct {
	UsableWh       float64 `json:"usableWh" yaml:"usableWh"`
	RuntimeHours   float64 `json:"runtimeHours" yaml:"runtimeHours"`
	RuntimeMinutes float64 `json:"runtimeMinutes" yaml:"runtimeMinutes"`
}

func fraction(id, field string, v float64) error {
	if v <= 0 || v > 1 {
		return formula.NotComputable(id, field, "%s must be in (0, 1]", field)
	}
	return nil
}

// Runtime computes how long the usable energy lasts at a constant load
func Runtime(in RuntimeInput) (RuntimeResult, error) {
	if err := formula.RequireFinite(idRuntime, "", in.CapacityAh, in.Voltage, in.LoadWatts, in.DepthOfDischarge, in.Efficiency); err != nil {
		return RuntimeResult{}, err
	}
	switch {
	case in.CapacityAh <= 0:
		return RuntimeResult{}, formula.NotComputable(idRuntime, "capacityAh", "capacity must be greater than 0")
	case in.Voltage <= 0:
		return RuntimeResult{}, formula.NotComputable(idRuntime, "voltage", "voltage must be greater than 0")
	case in.LoadWatts <= 0:
		return RuntimeResult{}, formula.NotComputable(idRuntime, "loadWatts", "load must be greater than 0")
	}
	if err := fraction(idRuntime, "depthOfDischarge", in.DepthOfDischarge); err != nil {
		return RuntimeResult{}, err
	}
	if err := fraction(idRuntime, "efficiency", in.Efficiency); err != nil {
		return RuntimeResult{}, err
	}

	usable := in.CapacityAh * in.Voltage * in.DepthOfDischarge * in.Efficiency
	hours := usable / in.LoadWatts
	return formula.Finite(idRuntime, RuntimeResult{
		UsableWh:       mathx.RoundTo(usable, 2),
		RuntimeHours:   mathx.RoundTo(hours, 4),
		RuntimeMinutes: mathx.RoundTo(hours*60, 2),
	})
}

// CycleCostInput describes the purchase cost and rated life of a pack
type CycleCostInput struct {
	PackCost         float64 `json:"packCost" yaml:"packCost"`
	EnergyKWh        float64 `json:"energyKWh" yaml:"energyKWh"`
	CycleLife        int     `json:"cycleLife" yaml:"cycleLife"`
	DepthOfDischarge float64 `json:"depthOfDischarge" yaml:"depthOfDischarge"`
}

// CycleCostResult holds the lifetime throughput and the cost of storage
type CycleCostResult struct {
	LifetimeThroughputKWh float64 `json:"lifetimeThroughputKWh" yaml:"lifetimeThroughputKWh"`
	CostPerKWh            float64 `json:"costPerKWh" yaml:"costPerKWh"`
	CostPerCycle          float64 `json:"costPerCycle" yaml:"costPerCycle"`
}

// CycleCost spreads the pack cost over the energy it delivers in its life
func CycleCost(in CycleCostInput) (CycleCostResult, error) {
	if err := formula.RequireFinite(idCycleCost, "", in.PackCost, in.EnergyKWh, in.DepthOfDischarge); err != nil {
		return CycleCostResult{}, err
	}
	switch {
	case in.PackCost < 0:
		return CycleCostResult{}, formula.NotComputable(idCycleCost, "packCost", "pack cost must not be negative")
	case in.EnergyKWh <= 0:
		return CycleCostResult{}, formula.NotComputable(idCycleCost, "energyKWh", "energy must be greater than 0")
	case in.CycleLife < 1:
		return CycleCostResult{}, formula.NotComputable(idCycleCost, "cycleLife", "cycle life must be at least 1")
	}
	if err := fraction(idCycleCost, "depthOfDischarge", in.DepthOfDischarge); err != nil {
		return CycleCostResult{}, err
	}

	throughput := in.EnergyKWh * in.DepthOfDischarge * float64(in.CycleLife)
	return formula.Finite(idCycleCost, CycleCostResult{
		LifetimeThroughputKWh: mathx.RoundTo(throughput, 2),
		CostPerKWh:            mathx.RoundTo(in.PackCost/throughput, 4),
		CostPerCycle:          mathx.RoundTo(in.PackCost/float64(in.CycleLife), 2),
	})
}
