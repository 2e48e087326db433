package metal

import (
	"github.com/msto63/rechenwerk/foundation/core/validation"
	"github.com/msto63/rechenwerk/pkg/formula"
)

var weightUnion = formula.NewUnion("shape", map[string]interface{}{
	"round":  Round{},
	"square": Square{},
	"plate":  Plate{},
	"tube":   Tube{},
})

// IsWeightInput reports whether v is a well formed weight record
func IsWeightInput(v interface{}) bool {
	return weightUnion.Check(v)
}

// ValidateWeightInput explains why v is not a well formed weight record
func ValidateWeightInput(v interface{}) validation.ValidationResult {
	return weightUnion.Validate(v)
}

// DecodeWeightInput turns a raw record into the selected cross section
func DecodeWeightInput(v interface{}) (WeightInput, error) {
	return formula.DecodeUnion[WeightInput](idWeight, weightUnion, v)
}

// Formulas returns the metal formulas
func Formulas() []formula.Formula {
	return []formula.Formula{
		formula.Tagged(Domain, "weight", "Weight of a round, square, plate or tube section",
			weightUnion, DecodeWeightInput, Weight),
		formula.Fixed(Domain, "thermal_expansion", "Linear thermal expansion of a part", ThermalExpansion),
		formula.Fixed(Domain, "bend_allowance", "Bend allowance, outside setback and bend deduction", BendAllowance),
	}
}
