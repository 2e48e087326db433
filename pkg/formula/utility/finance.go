// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     utility
// Description: Loan amortization and net present value
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package utility

import (
	"errors"

	"github.com/msto63/rechenwerk/foundation/utils/mathx"
	"github.com/msto63/rechenwerk/pkg/formula"
)

// LoanPaymentInput describes a fully amortizing loan with monthly payments
type LoanPaymentInput struct {
	Principal         float64 `json:"principal" yaml:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent" yaml:"annualRatePercent"`
	Months            int     `json:"months" yaml:"months"`
}

// LoanPaymentResult holds the monthly payment and lifetime totals
type LoanPaymentResult struct {
	Payment       float64 `json:"payment" yaml:"payment"`
	TotalPaid     float64 `json:"totalPaid" yaml:"totalPaid"`
	TotalInterest float64 `json:"totalInterest" yaml:"totalInterest"`
}

// LoanPayment computes the level monthly payment. A zero rate spreads the
// principal evenly.
func LoanPayment(in LoanPaymentInput) (LoanPaymentResult, error) {
	if err := formula.RequireFinite(idLoanPayment, "", in.Principal, in.AnnualRatePercent); err != nil {
		return LoanPaymentResult{}, err
	}
	if in.Principal < 0 {
		return LoanPaymentResult{}, formula.NotComputable(idLoanPayment, "principal", "principal must not be negative")
	}
	if in.Months < 1 {
		return LoanPaymentResult{}, formula.NotComputable(idLoanPayment, "months", "months must be at least 1")
	}

	payment, err := mathx.LoanPayment(in.Principal, in.AnnualRatePercent/100/12, in.Months)
	if errors.Is(err, mathx.ErrInvalidRate) {
		return LoanPaymentResult{}, formula.NotComputable(idLoanPayment, "annualRatePercent", "monthly rate must be greater than -100%%")
	}
	if err != nil {
		return LoanPaymentResult{}, formula.NotComputable(idLoanPayment, "payment", "payment is not a finite number")
	}

	total := payment * float64(in.Months)
	return formula.Finite(idLoanPayment, LoanPaymentResult{
		Payment:       mathx.RoundTo(payment, 2),
		TotalPaid:     mathx.RoundTo(total, 2),
		TotalInterest: mathx.RoundTo(total-in.Principal, 2),
	})
}

// NetPresentValueInput discounts end-of-period cash flows against an
// initial investment. Rate is a fraction per period.
type NetPresentValueInput struct {
	Rate              float64   `json:"rate" yaml:"rate"`
	InitialInvestment float64   `json:"initialInvestment" yaml:"initialInvestment"`
	CashFlows         []float64 `json:"cashFlows" yaml:"cashFlows"`
}

// NetPresentValueResult holds the discounted value of the cash flows, the
// net value after the investment and the profitability index.
type NetPresentValueResult struct {
	PresentValue       float64 `json:"presentValue" yaml:"presentValue"`
	NPV                float64 `json:"npv" yaml:"npv"`
	ProfitabilityIndex float64 `json:"profitabilityIndex" yaml:"profitabilityIndex"`
}

// NetPresentValue computes NPV = PV(cash flows) - initial investment. The
// profitability index is 0 when there is no initial investment.
func NetPresentValue(in NetPresentValueInput) (NetPresentValueResult, error) {
	if err := formula.RequireFinite(idNetPresentValue, "", in.Rate, in.InitialInvestment); err != nil {
		return NetPresentValueResult{}, err
	}
	if err := formula.RequireFinite(idNetPresentValue, "cashFlows", in.CashFlows...); err != nil {
		return NetPresentValueResult{}, err
	}

	pv, err := mathx.PresentValue(in.Rate, in.CashFlows)
	if errors.Is(err, mathx.ErrNotFinite) {
		return NetPresentValueResult{}, formula.NotComputable(idNetPresentValue, "presentValue", "present value overflows at rate %g", in.Rate)
	}
	if err != nil {
		return NetPresentValueResult{}, formula.NotComputable(idNetPresentValue, "rate", "rate must be greater than -1")
	}

	index := 0.0
	if in.InitialInvestment != 0 {
		index = pv / in.InitialInvestment
	}
	return formula.Finite(idNetPresentValue, NetPresentValueResult{
		PresentValue:       mathx.RoundTo(pv, 2),
		NPV:                mathx.RoundTo(pv-in.InitialInvestment, 2),
		ProfitabilityIndex: mathx.RoundTo(index, 4),
	})
}
