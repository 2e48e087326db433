package battery

import (
	"github.com/msto63/rechenwerk/foundation/core/validation"
	"github.com/msto63/rechenwerk/pkg/formula"
)

var cRateUnion = formula.NewUnion("mode", map[string]interface{}{
	"current": CRateFromCurrent{},
	"rate":    CRateFromRate{},
})

// IsCRateInput reports whether v is a well formed C-rate record
func IsCRateInput(v interface{}) bool {
	return cRateUnion.Check(v)
}

// ValidateCRateInput explains why v is not a well formed C-rate record
func ValidateCRateInput(v interface{}) validation.ValidationResult {
	return cRateUnion.Validate(v)
}

// DecodeCRateInput turns a raw record into the selected variant
func DecodeCRateInput(v interface{}) (CRateInput, error) {
	return formula.DecodeUnion[CRateInput](idCRate, cRateUnion, v)
}

// Formulas returns the battery formulas
func Formulas() []formula.Formula {
	return []formula.Formula{
		formula.Fixed(Domain, "pack_energy", "Nominal voltage, capacity and energy of a cell pack", PackEnergy),
		formula.Tagged(Domain, "c_rate", "Convert between discharge current and C-rate",
			cRateUnion, DecodeCRateInput, CRate),
		formula.Fixed(Domain, "runtime", "Runtime of a battery at a constant load", Runtime),
		formula.Fixed(Domain, "cycle_cost", "Cost of stored energy over the pack's cycle life", CycleCost),
	}
}
