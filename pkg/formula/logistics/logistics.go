// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     logistics
// Description: Freight weight, order quantity and safety stock formulas
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logistics

import (
	"math"

	"github.com/msto63/rechenwerk/foundation/utils/mathx"
	"github.com/msto63/rechenwerk/pkg/formula"
)

// Domain is the catalog domain of this package
const Domain = "logistics"

const (
	idChargeableWeight = Domain + ".chargeable_weight"
	idEOQ              = Domain + ".eoq"
	idSafetyStock      = Domain + ".safety_stock"
)

// DefaultVolumetricDivisor is the cm³ per kg divisor used by most couriers
const DefaultVolumetricDivisor = 5000.0

const daysPerYear = 365.0

// Basis values of ChargeableWeightResult
const (
	BasisActual     = "actual"
	BasisVolumetric = "volumetric"
)

// ChargeableWeightInput describes a parcel in centimeters and kilograms
type ChargeableWeightInput struct {
	LengthCm float64  `json:"lengthCm" yaml:"lengthCm"`
	WidthCm  float64  `json:"widthCm" yaml:"widthCm"`
	HeightCm float64  `json:"heightCm" yaml:"heightCm"`
	ActualKg float64  `json:"actualKg" yaml:"actualKg"`
	Divisor  *float64 `json:"divisor,omitempty" yaml:"divisor,omitempty"`
}

// ChargeableWeightResult holds the volumetric weight and the billed weight
type ChargeableWeightResult struct {
	VolumetricKg float64 `json:"volumetricKg" yaml:"volumetricKg"`
	ChargeableKg float64 `json:"chargeableKg" yaml:"chargeableKg"`
	Basis        string  `json:"basis" yaml:"basis"`
}

// ChargeableWeight bills the greater of actual and volumetric weight. A tie
// is billed on the actual weight.
func ChargeableWeight(in ChargeableWeightInput) (ChargeableWeightResult, error) {
	divisor := DefaultVolumetricDivisor
	if in.Divisor != nil {
		divisor = *in.Divisor
	}
	if err := formula.RequireFinite(idChargeableWeight, "", in.LengthCm, in.WidthCm, in.HeightCm, in.ActualKg, divisor); err != nil {
		return ChargeableWeightResult{}, err
	}
	if in.LengthCm <= 0 || in.WidthCm <= 0 || in.HeightCm <= 0 {
		return ChargeableWeightResult{}, formula.NotComputable(idChargeableWeight, "", "dimensions must be greater than 0")
	}
	if in.ActualKg < 0 {
		return ChargeableWeightResult{}, formula.NotComputable(idChargeableWeight, "actualKg", "actual weight must not be negative")
	}
	if divisor <= 0 {
		return ChargeableWeightResult{}, formula.NotComputable(idChargeableWeight, "divisor", "divisor must be greater than 0")
	}

	volumetric := in.LengthCm * in.WidthCm * in.HeightCm / divisor
	result := ChargeableWeightResult{
		VolumetricKg: mathx.RoundTo(volumetric, 2),
		ChargeableKg: mathx.RoundTo(in.ActualKg, 2),
		Basis:        BasisActual,
	}
	if volumetric > in.ActualKg {
		result.ChargeableKg = result.VolumetricKg
		result.Basis = BasisVolumetric
	}
	return formula.Finite(idChargeableWeight, result)
}

// EOQInput holds the yearly demand and the costs of the Wilson model
type EOQInput struct {
	AnnualDemand float64 `json:"annualDemand" yaml:"annualDemand"`
	OrderCost    float64 `json:"orderCost" yaml:"orderCost"`
	HoldingCost  float64 `json:"holdingCost" yaml:"holdingCost"`
}

// EOQResult holds the economic order quantity and its yearly cost split
type EOQResult struct {
	Quantity           float64 `json:"quantity" yaml:"quantity"`
	OrdersPerYear      float64 `json:"ordersPerYear" yaml:"ordersPerYear"`
	CycleDays          float64 `json:"cycleDays" yaml:"cycleDays"`
	AnnualOrderingCost float64 `json:"annualOrderingCost" yaml:"annualOrderingCost"`
	AnnualHoldingCost  float64 `json:"annualHoldingCost" yaml:"annualHoldingCost"`
	TotalCost          float64 `json:"totalCost" yaml:"totalCost"`
}

// EOQ computes Q* = sqrt(2DS / H). Holding cost is per unit and year.
func EOQ(in EOQInput) (EOQResult, error) {
	if err := formula.RequireFinite(idEOQ, "", in.AnnualDemand, in.OrderCost, in.HoldingCost); err != nil {
		return EOQResult{}, err
	}
	switch {
	case in.AnnualDemand <= 0:
		return EOQResult{}, formula.NotComputable(idEOQ, "annualDemand", "annual demand must be greater than 0")
	case in.OrderCost <= 0:
		return EOQResult{}, formula.NotComputable(idEOQ, "orderCost", "order cost must be greater than 0")
	case in.HoldingCost <= 0:
		return EOQResult{}, formula.NotComputable(idEOQ, "holdingCost", "holding cost must be greater than 0")
	}

	quantity := math.Sqrt(2 * in.AnnualDemand * in.OrderCost / in.HoldingCost)
	orders := in.AnnualDemand / quantity
	ordering := orders * in.OrderCost
	holding := quantity / 2 * in.HoldingCost
	return formula.Finite(idEOQ, EOQResult{
		Quantity:           mathx.RoundTo(quantity, 2),
		OrdersPerYear:      mathx.RoundTo(orders, 2),
		CycleDays:          mathx.RoundTo(daysPerYear/orders, 2),
		AnnualOrderingCost: mathx.RoundTo(ordering, 2),
		AnnualHoldingCost:  mathx.RoundTo(holding, 2),
		TotalCost:          mathx.RoundTo(ordering+holding, 2),
	})
}

// SafetyStockInput describes demand variability over the replenishment lead time
type SafetyStockInput struct {
	AverageDailyDemand float64 `json:"averageDailyDemand" yaml:"averageDailyDemand"`
	DemandStdDev       float64 `json:"demandStdDev" yaml:"demandStdDev"`
	LeadTimeDays       float64 `json:"leadTimeDays" yaml:"leadTimeDays"`
	ServiceLevel       float64 `json:"serviceLevel" yaml:"serviceLevel"`
}

// SafetyStockResult holds the service factor, safety stock and reorder point
type SafetyStockResult struct {
	Z            float64 `json:"z" yaml:"z"`
	SafetyStock  float64 `json:"safetyStock" yaml:"safetyStock"`
	ReorderPoint float64 `json:"reorderPoint" yaml:"reorderPoint"`
}

// SafetyStock computes z * sigma * sqrt(L) with z the standard normal
// quantile of the service level. Levels below 0.5 yield a negative stock.
func SafetyStock(in SafetyStockInput) (SafetyStockResult, error) {
	if err := formula.RequireFinite(idSafetyStock, "", in.AverageDailyDemand, in.DemandStdDev, in.LeadTimeDays, in.ServiceLevel); err != nil {
		return SafetyStockResult{}, err
	}
	switch {
	case in.AverageDailyDemand < 0:
		return SafetyStockResult{}, formula.NotComputable(idSafetyStock, "averageDailyDemand", "average daily demand must not be negative")
	case in.DemandStdDev < 0:
		return SafetyStockResult{}, formula.NotComputable(idSafetyStock, "demandStdDev", "demand standard deviation must not be negative")
	case in.LeadTimeDays < 0:
		return SafetyStockResult{}, formula.NotComputable(idSafetyStock, "leadTimeDays", "lead time must not be negative")
	}

	z, err := mathx.NormalQuantile(in.ServiceLevel)
	if err != nil {
		return SafetyStockResult{}, formula.NotComputable(idSafetyStock, "serviceLevel", "service level must be between 0 and 1 exclusive")
	}

	stock := z * in.DemandStdDev * math.Sqrt(in.LeadTimeDays)
	return formula.Finite(idSafetyStock, SafetyStockResult{
		Z:            mathx.RoundTo(z, 4),
		SafetyStock:  mathx.RoundTo(stock, 2),
		ReorderPoint: mathx.RoundTo(in.AverageDailyDemand*in.LeadTimeDays+stock, 2),
	})
}
