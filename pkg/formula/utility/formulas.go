package utility

import "github.com/msto63/rechenwerk/pkg/formula"

// Formulas returns the utility formulas
func Formulas() []formula.Formula {
	return []formula.Formula{
		formula.Fixed(Domain, "linear_interpolation", "Interpolate y at x over tabulated points", LinearInterpolation),
		formula.Fixed(Domain, "temperature_conversion", "Convert temperature between C, F, K and R", TemperatureConversion),
		formula.Fixed(Domain, "loan_payment", "Monthly payment of a fully amortizing loan", LoanPayment),
		formula.Fixed(Domain, "net_present_value", "Net present value and profitability index", NetPresentValue),
		formula.Fixed(Domain, "percent_change", "Absolute and percent change between two values", PercentChange),
	}
}
