// Package metal provides metalworking formulas.
//
// Weight accepts the material tags returned by Materials. Tags are matched
// without regard to case; an unknown tag fails with formula.ErrUnknownUnit.
package metal
