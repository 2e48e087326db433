// Package automotive provides vehicle formulas: power and torque unit
// conversion, fuel economy and road speed from drivetrain ratios.
//
// Unit tags are matched case-insensitively after trimming. Unknown tags
// fail with formula.ErrUnknownUnit instead of passing the value through.
package automotive
