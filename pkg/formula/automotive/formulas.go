package automotive

import "github.com/msto63/rechenwerk/pkg/formula"

// Formulas returns the automotive formulas
func Formulas() []formula.Formula {
	return []formula.Formula{
		formula.Fixed(Domain, "power_conversion", "Convert power between W, kW, HP, PS and BTU/h", PowerConversion),
		formula.Fixed(Domain, "torque_conversion", "Convert torque between Nm, kNm, lbf.ft, lbf.in and kgf.m", TorqueConversion),
		formula.Fixed(Domain, "fuel_economy", "Fuel consumption in l/100km, km/l and mpg", FuelEconomy),
		formula.Fixed(Domain, "vehicle_speed", "Road speed from engine rpm and drivetrain ratios", VehicleSpeed),
	}
}
