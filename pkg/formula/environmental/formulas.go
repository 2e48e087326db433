package environmental

import "github.com/msto63/rechenwerk/pkg/formula"

// Formulas returns the environmental formulas
func Formulas() []formula.Formula {
	return []formula.Formula{
		formula.Fixed(Domain, "carbon_footprint", "Scope 1 and 2 emissions from energy use", CarbonFootprint),
		formula.Fixed(Domain, "lifecycle_cost", "Discounted lifecycle cost and emissions of an asset", LifecycleCost),
		formula.Fixed(Domain, "emission_intensity", "Emissions per unit produced and per revenue", EmissionIntensity),
	}
}
