// File: finance.go
// Title: Time Value of Money
// Description: Discounting, annuity factors, present value and annuity loan
//              payments with explicit zero-rate cases.
// Author: msto63
// Version: v0.3.1
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: CalculateLoanPayment and CalculatePresentValue on Decimal
// - 2026-10-19 v0.3.0: float64 rates, annuity factor, cash flow present value
// - 2026-10-19 v0.3.1: Overflow-safe loan payment, ErrNotFinite from PresentValue

package mathx

import (
	"errors"
	"math"
)

var (
	// ErrInvalidRate is returned for periodic rates at or below -100 %
	ErrInvalidRate = errors.New("mathx: rate must be greater than -1")

	// ErrInvalidPeriods is returned when a period count is not positive
	ErrInvalidPeriods = errors.New("mathx: number of periods must be positive")

	// ErrNotFinite is returned when a result overflows float64
	ErrNotFinite = errors.New("mathx: result is not a finite number")
)

// DiscountFactor returns 1 / (1 + rate)^periods
func DiscountFactor(rate, periods float64) (float64, error) {
	if rate <= -1 {
		return 0, ErrInvalidRate
	}
	return 1 / math.Pow(1+rate, periods), nil
}

// AnnuityFactor returns the present value of one unit paid at the end of
// each of periods periods: (1 - (1+r)^-n) / r. A zero rate returns periods.
func AnnuityFactor(rate, periods float64) (float64, error) {
	if rate <= -1 {
		return 0, ErrInvalidRate
	}
	if periods <= 0 {
		return 0, ErrInvalidPeriods
	}
	if rate == 0 {
		return periods, nil
	}
	return (1 - math.Pow(1+rate, -periods)) / rate, nil
}

// PresentValue discounts cash flows received at the end of periods 1..n
func PresentValue(rate float64, cashFlows []float64) (float64, error) {
	if rate <= -1 {
		return 0, ErrInvalidRate
	}
	pv := 0.0
	growth := 1.0
	for _, cf := range cashFlows {
		growth *= 1 + rate
		pv += cf / growth
	}
	if !IsFinite(pv) {
		return 0, ErrNotFinite
	}
	return pv, nil
}

// LoanPayment returns the periodic payment that amortizes principal over
// periods at the given periodic rate: P * r / (1 - (1+r)^-n). A zero rate
// returns principal / periods. When (1+r)^n overflows the payment tends to
// P * r.
func LoanPayment(principal, rate float64, periods int) (float64, error) {
	if periods <= 0 {
		return 0, ErrInvalidPeriods
	}
	if rate <= -1 {
		return 0, ErrInvalidRate
	}
	if rate == 0 {
		return principal / float64(periods), nil
	}

	denominator := 1 - math.Pow(1+rate, -float64(periods))
	if denominator == 0 {
		return principal / float64(periods), nil
	}
	payment := principal * rate / denominator
	if !IsFinite(payment) {
		return 0, ErrNotFinite
	}
	return payment, nil
}
