package quality

import "github.com/msto63/rechenwerk/pkg/formula"

// Formulas returns the quality formulas
func Formulas() []formula.Formula {
	return []formula.Formula{
		formula.Fixed(Domain, "cpk", "Process capability indices Cp, Cpk, Cpu and Cpl", Cpk),
		formula.Fixed(Domain, "statistics", "Descriptive statistics of a data series", Statistics),
		formula.Fixed(Domain, "percentile", "Interpolated percentile of a data series", Percentile),
		formula.Fixed(Domain, "histogram", "Equal-width histogram of a data series", Histogram),
		formula.Fixed(Domain, "moving_average", "Simple, exponential or weighted moving average", MovingAverage),
		formula.Fixed(Domain, "linear_regression", "Least-squares line fit with optional prediction", LinearRegression),
		formula.Fixed(Domain, "defect_rate", "DPU, DPMO, yield and sigma level", DefectRate),
	}
}
