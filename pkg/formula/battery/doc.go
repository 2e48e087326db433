// Package battery provides battery sizing formulas: pack energy from cell
// data, conversion between discharge current and C-rate, runtime at a
// constant load and the lifetime cost of stored energy.
package battery
