package logistics

import "github.com/msto63/rechenwerk/pkg/formula"

// Formulas returns the logistics formulas
func Formulas() []formula.Formula {
	return []formula.Formula{
		formula.Fixed(Domain, "chargeable_weight", "Billed parcel weight from actual and volumetric weight", ChargeableWeight),
		formula.Fixed(Domain, "eoq", "Economic order quantity and yearly order and holding cost", EOQ),
		formula.Fixed(Domain, "safety_stock", "Safety stock and reorder point for a service level", SafetyStock),
	}
}
