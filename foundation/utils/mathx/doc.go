// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides the numeric building blocks shared by
//              all formula packages: decimal rounding with epsilon correction,
//              series aggregation, time value of money and the inverse normal
//              distribution.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-19 v0.3.0: float64 rounding discipline replaces big.Float decimals

// Package mathx provides numeric helpers for engineering and business formulas.
//
// # Rounding
//
// Formula results are rounded to a fixed number of decimals per field.
// RoundTo nudges the value by one machine epsilon away from zero before
// scaling, which corrects binary representation error on boundary values:
//
//	mathx.RoundTo(0.615, 2)  // 0.62, not 0.61
//	mathx.RoundTo(1.005, 2)  // 1.01
//	mathx.RoundTo(-0.615, 2) // -0.62
//
// NaN and infinities are returned unchanged so that an upstream error stays
// visible instead of turning into a plausible number.
//
// # Series
//
// Sum, Mean, MinMax, PopulationVariance, SampleVariance and Quantile fold over
// read-only input. Functions that need at least one value return
// ErrEmptySeries for empty input; SortedCopy never sorts in place.
//
// # Time value of money
//
// DiscountFactor, AnnuityFactor, PresentValue and LoanPayment take periodic
// rates as fractions (0.05 for 5 %). A zero rate is handled explicitly: the
// annuity factor becomes the number of periods and the loan payment becomes
// principal divided by periods. Rates at or below -100 % return
// ErrInvalidRate.
//
// # Normal distribution
//
// NormalQuantile is the inverse standard normal CDF, computed from
// math.Erfinv. It backs the safety stock and sigma level formulas.
package mathx
