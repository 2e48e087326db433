package chemical

import (
	"github.com/msto63/rechenwerk/foundation/core/validation"
	"github.com/msto63/rechenwerk/pkg/formula"
)

var dilutionUnion = formula.NewUnion("solveFor", map[string]interface{}{
	"c1": SolveC1{},
	"v1": SolveV1{},
	"c2": SolveC2{},
	"v2": SolveV2{},
})

// IsDilutionInput reports whether v is a well formed dilution record
func IsDilutionInput(v interface{}) bool {
	return dilutionUnion.Check(v)
}

// ValidateDilutionInput explains why v is not a well formed dilution record
func ValidateDilutionInput(v interface{}) validation.ValidationResult {
	return dilutionUnion.Validate(v)
}

// DecodeDilutionInput turns a raw record into the selected variant
func DecodeDilutionInput(v interface{}) (DilutionInput, error) {
	return formula.DecodeUnion[DilutionInput](idDilution, dilutionUnion, v)
}

// Formulas returns the chemical formulas
func Formulas() []formula.Formula {
	return []formula.Formula{
		formula.Tagged(Domain, "dilution", "Solve C1·V1 = C2·V2 for any one quantity",
			dilutionUnion, DecodeDilutionInput, Dilution),
		formula.Fixed(Domain, "molarity", "Moles and molar concentration from mass and volume", Molarity),
		formula.Fixed(Domain, "ph", "pH, pOH and hydroxide concentration", PH),
	}
}
