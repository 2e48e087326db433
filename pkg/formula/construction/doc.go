// Package construction provides site estimation formulas for concrete,
// reinforcing steel and roof geometry.
package construction
