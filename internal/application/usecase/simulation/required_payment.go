// Package simulation contains growth projection use cases.
package simulation

import (
	"context"

	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/domain/finance"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// RequiredPaymentInput represents the input for a goal plan: how much to
// save each month to reach a target amount.
type RequiredPaymentInput struct {
	TargetAmount      valueobject.Money
	AnnualRatePercent float64
	Years             int
}

// RequiredPaymentOutput represents the computed monthly payment.
type RequiredPaymentOutput struct {
	MonthlyPayment valueobject.Money `json:"monthly_payment"`
	Months         int               `json:"months"`
}

// RequiredPaymentUseCase computes the fixed monthly contribution needed
// to reach a target future value.
type RequiredPaymentUseCase struct{}

// NewRequiredPaymentUseCase creates a new RequiredPaymentUseCase instance.
func NewRequiredPaymentUseCase() *RequiredPaymentUseCase {
	return &RequiredPaymentUseCase{}
}

// Execute computes the required payment.
func (uc *RequiredPaymentUseCase) Execute(_ context.Context, input RequiredPaymentInput) (*RequiredPaymentOutput, error) {
	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewProjectionError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be positive",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	months := input.Years * 12
	payment, err := finance.RequiredPayment(
		input.TargetAmount.Decimal(),
		finance.MonthlyRate(input.AnnualRatePercent),
		months,
	)
	if err != nil {
		return nil, err
	}

	return &RequiredPaymentOutput{
		MonthlyPayment: valueobject.NewMoneyFromDecimal(payment),
		Months:         months,
	}, nil
}
