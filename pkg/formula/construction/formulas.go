package construction

import "github.com/msto63/rechenwerk/pkg/formula"

// Formulas returns the construction formulas
func Formulas() []formula.Formula {
	return []formula.Formula{
		formula.Fixed(Domain, "concrete_volume", "Concrete volume, cubic yards and bags for a slab", ConcreteVolume),
		formula.Fixed(Domain, "rebar_weight", "Weight of straight reinforcing bars", RebarWeight),
		formula.Fixed(Domain, "roof_pitch", "Roof pitch as angle, x-in-12, percent and rafter factor", RoofPitch),
	}
}
