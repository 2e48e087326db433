package electronics

import (
	"github.com/msto63/rechenwerk/foundation/core/validation"
	"github.com/msto63/rechenwerk/pkg/formula"
)

var ohmsLawUnion = formula.NewUnion("solveFor", map[string]interface{}{
	"voltage":    SolveVoltage{},
	"current":    SolveCurrent{},
	"resistance": SolveResistance{},
	"power":      SolvePower{},
})

// IsOhmsLawInput reports whether v is a well formed Ohm's law record
func IsOhmsLawInput(v interface{}) bool {
	return ohmsLawUnion.Check(v)
}

// ValidateOhmsLawInput explains why v is not a well formed Ohm's law record
func ValidateOhmsLawInput(v interface{}) validation.ValidationResult {
	return ohmsLawUnion.Validate(v)
}

// DecodeOhmsLawInput turns a raw record into the selected variant
func DecodeOhmsLawInput(v interface{}) (OhmsLawInput, error) {
	return formula.DecodeUnion[OhmsLawInput](idOhmsLaw, ohmsLawUnion, v)
}

// Formulas returns the electronics formulas
func Formulas() []formula.Formula {
	return []formula.Formula{
		formula.Tagged(Domain, "ohms_law", "Solve Ohm's law for voltage, current, resistance or power",
			ohmsLawUnion, DecodeOhmsLawInput, OhmsLaw),
		formula.Fixed(Domain, "resistor_network", "Equivalent resistance of a series or parallel network", ResistorNetwork),
		formula.Fixed(Domain, "voltage_divider", "Output of an unloaded two-resistor voltage divider", VoltageDivider),
		formula.Fixed(Domain, "rc_time_constant", "RC time constant, cutoff frequency and settle time", RCTimeConstant),
	}
}
