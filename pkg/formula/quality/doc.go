// Package quality provides statistical quality control formulas.
//
// The package covers process capability (Cp, Cpk), descriptive statistics,
// percentiles and histograms of a data series, moving averages, least
// squares regression and six sigma defect metrics.
//
// Series inputs are never modified; sorting and windowing work on copies
// or read-only views. Degenerate series produce degenerate results rather
// than failures where a meaningful answer exists: a process without spread
// has zero capability indices and a series without range has a single
// histogram bin.
package quality
