// Package formula defines the contract shared by every rechenwerk formula.
//
// A formula is a pure function from a typed input struct to a typed result
// struct:
//
//	func OhmsLaw(in OhmsLawInput) (OhmsLawResult, error)
//
// A formula never logs, never reads the clock and never mutates its input.
// When an input has no meaningful result it returns a *Failure whose code
// matches one of ErrNotComputable, ErrUnknownUnit, ErrUnknownVariant or
// ErrInvalidShape with errors.Is.
//
// Domain packages publish their functions as Formula descriptors built with
// Fixed (one input struct) or Tagged (a discriminated union guarded by a
// Union). A descriptor evaluates untyped records as decoded from YAML, JSON
// or TOML documents:
//
//	f := formula.Fixed("quality", "cpk", "Process capability", quality.Cpk)
//	out, err := f.Evaluate(map[string]interface{}{"usl": 10, "lsl": 0, "mean": 5, "stdDev": 1})
package formula
