// Package electronics provides circuit formulas: Ohm's law solved for any
// of its four quantities, series and parallel resistor networks, unloaded
// voltage dividers and RC time constants.
package electronics
