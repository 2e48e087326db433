package machining

import (
	"github.com/msto63/rechenwerk/foundation/core/validation"
	"github.com/msto63/rechenwerk/pkg/formula"
)

var cuttingSpeedUnion = formula.NewUnion("solveFor", map[string]interface{}{
	"rpm":   SolveRPM{},
	"speed": SolveSpeed{},
})

// IsCuttingSpeedInput reports whether v is a well formed cutting speed record
func IsCuttingSpeedInput(v interface{}) bool {
	return cuttingSpeedUnion.Check(v)
}

// ValidateCuttingSpeedInput explains why v is not a well formed cutting speed record
func ValidateCuttingSpeedInput(v interface{}) validation.ValidationResult {
	return cuttingSpeedUnion.Validate(v)
}

// DecodeCuttingSpeedInput turns a raw record into the selected variant
func DecodeCuttingSpeedInput(v interface{}) (CuttingSpeedInput, error) {
	return formula.DecodeUnion[CuttingSpeedInput](idCuttingSpeed, cuttingSpeedUnion, v)
}

// Formulas returns the machining formulas
func Formulas() []formula.Formula {
	return []formula.Formula{
		formula.Tagged(Domain, "cutting_speed", "Convert between spindle speed and cutting speed",
			cuttingSpeedUnion, DecodeCuttingSpeedInput, CuttingSpeed),
		formula.Fixed(Domain, "milling_feed", "Table feed and metal removal rate of a milling cutter", MillingFeed),
		formula.Fixed(Domain, "machining_time", "Cutting time for a number of passes", MachiningTime),
		formula.Fixed(Domain, "surface_roughness", "Theoretical turned surface roughness", SurfaceRoughness),
	}
}
