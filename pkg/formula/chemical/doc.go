// Package chemical provides laboratory formulas: solving the dilution
// equation for any one unknown, molarity from mass and volume, and pH.
package chemical
