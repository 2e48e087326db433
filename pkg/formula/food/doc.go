// Package food provides kitchen and food science formulas.
package food
