// Package utility provides general purpose formulas used across domains:
// linear interpolation over tabulated points, temperature conversion, loan
// amortization, net present value and percent change.
package utility
