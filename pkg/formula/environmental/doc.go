// Package environmental provides sustainability formulas: a scope 1 and 2
// carbon footprint from energy use, discounted lifecycle cost of an asset
// and emission intensity ratios.
package environmental
