// Package finance implements the closed-form compound-interest formulas
// shared by the growth simulator and the patrimony reconstruction.
//
// All functions take a periodic (monthly) rate as a plain fraction, e.g.
// 0.01 for 1% a month. Callers derive it from an annual percentage as
// annual/12/100 — a simple division, not a geometric monthly-equivalent
// rate. That convention matches common retail-finance usage and is kept
// deliberately; changing it would change every projection the product
// shows.
//
// The power terms are computed in float64 and converted back to decimal
// at the boundary: the inputs are estimates, not ledger amounts, and the
// formulas have no exact decimal form anyway.
package finance

import (
	"math"

	"github.com/shopspring/decimal"

	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// FutureValue computes the value of a principal plus a fixed monthly
// contribution after n periods of compounding at rate i:
//
//	FV = principal*(1+i)^n + contribution*((1+i)^n - 1)/i
//
// A zero rate is not an error; the formula degenerates to
// principal + contribution*n.
func FutureValue(principal, contribution decimal.Decimal, monthlyRate float64, periods int) decimal.Decimal {
	if periods <= 0 {
		return principal
	}

	p := principal.InexactFloat64()
	c := contribution.InexactFloat64()

	if monthlyRate == 0 {
		return decimal.NewFromFloat(p + c*float64(periods))
	}

	factor := math.Pow(1+monthlyRate, float64(periods))
	fv := p*factor + c*(factor-1)/monthlyRate
	return decimal.NewFromFloat(fv)
}

// RequiredPayment computes the fixed monthly contribution needed to
// reach a target future value after n periods at rate i:
//
//	PMT = FV*i / ((1+i)^n - 1)
//
// The formula is undefined for a non-positive rate or term, so those are
// rejected rather than returning NaN. Callers validate the target is
// positive before asking for a payment.
func RequiredPayment(targetFutureValue decimal.Decimal, monthlyRate float64, periods int) (decimal.Decimal, error) {
	if monthlyRate <= 0 {
		return decimal.Zero, domainerror.NewProjectionError(
			domainerror.ErrCodeInvalidRate,
			"required payment is undefined for a non-positive rate",
			domainerror.ErrInvalidRate,
		)
	}
	if periods <= 0 {
		return decimal.Zero, domainerror.NewProjectionError(
			domainerror.ErrCodeInvalidTerm,
			"required payment is undefined for a non-positive term",
			domainerror.ErrInvalidTerm,
		)
	}

	factor := math.Pow(1+monthlyRate, float64(periods))
	pmt := targetFutureValue.InexactFloat64() * monthlyRate / (factor - 1)
	return decimal.NewFromFloat(pmt), nil
}

// PresentValueDiscount removes periodsBack periods of assumed
// compounding from a current value:
//
//	PV = current / (1+i)^periodsBack
//
// Zero periods back degenerates to the current value unchanged. Only the
// patrimony reconstruction uses this; it is well-defined for any i >= 0.
func PresentValueDiscount(currentValue decimal.Decimal, monthlyRate float64, periodsBack int) decimal.Decimal {
	if periodsBack <= 0 || monthlyRate == 0 {
		return currentValue
	}

	factor := math.Pow(1+monthlyRate, float64(periodsBack))
	return decimal.NewFromFloat(currentValue.InexactFloat64() / factor)
}

// MonthlyRate derives the periodic rate from an annual percentage using
// the product's simple-division convention: 12% a year is 1% a month.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 12 / 100
}
