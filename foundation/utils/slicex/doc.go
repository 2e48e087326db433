// Package slicex implements generic slice utility functions for rechenwerk.
//
// Package: slicex
// Title: Extended Slice Utilities for Go
// Description: Functional helpers (Map, Reduce, Filter, Windows) and
//              copy-returning sorts used by the formula packages to fold over
//              read-only input series.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice operations
// - 2026-10-19 v0.2.0: Reduced to the operations used by formulas
//
// None of the functions modify their input. Sort and SortBy return sorted
// copies; SortBy is stable so equal keys keep their original order, which the
// interpolation formula relies on when two samples share an x coordinate.
//
// Windows produces the sliding windows used by moving averages:
//
//	windows := slicex.Windows([]float64{1, 2, 3, 4}, 2)
//	// [[1 2] [2 3] [3 4]]
//	means := slicex.Map(windows, func(w []float64) float64 {
//		return slicex.Sum(w) / float64(len(w))
//	})
package slicex
