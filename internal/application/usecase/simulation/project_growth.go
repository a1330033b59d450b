// Package simulation contains growth projection use cases. Both use
// cases here are pure computations; they exist as use cases so the
// controllers stay thin and the math stays testable in isolation.
package simulation

import (
	"context"

	"github.com/shopspring/decimal"

	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/domain/finance"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// ProjectGrowthInput represents the input for a growth simulation.
// AnnualRatePercent is a percentage, e.g. 12 for 12% a year.
type ProjectGrowthInput struct {
	Initial             valueobject.Money
	MonthlyContribution valueobject.Money
	AnnualRatePercent   float64
	Years               int
}

// YearlySample is one yearly checkpoint of the simulation.
type YearlySample struct {
	Year             int               `json:"year"`
	Balance          valueobject.Money `json:"balance"`
	TotalContributed valueobject.Money `json:"total_contributed"`
}

// ProjectGrowthOutput represents the simulation result.
type ProjectGrowthOutput struct {
	Samples          []YearlySample    `json:"samples"`
	FinalAmount      valueobject.Money `json:"final_amount"`
	TotalContributed valueobject.Money `json:"total_contributed"`
	TotalInterest    valueobject.Money `json:"total_interest"`
}

// ProjectGrowthUseCase simulates compound growth month by month:
// each month the balance compounds at the monthly rate and the
// contribution is added, with a checkpoint recorded at every 12th month.
// It is an illustrative projection, not an amortization schedule; there
// are no day-count conventions and the rate is fixed.
type ProjectGrowthUseCase struct{}

// NewProjectGrowthUseCase creates a new ProjectGrowthUseCase instance.
func NewProjectGrowthUseCase() *ProjectGrowthUseCase {
	return &ProjectGrowthUseCase{}
}

// Execute runs the simulation.
func (uc *ProjectGrowthUseCase) Execute(_ context.Context, input ProjectGrowthInput) (*ProjectGrowthOutput, error) {
	if input.Initial.IsNegative() {
		return nil, domainerror.NewProjectionError(
			domainerror.ErrCodeInvalidSimulationInput,
			"initial amount must not be negative",
			domainerror.ErrInvalidSimulationInput,
		)
	}
	if input.MonthlyContribution.IsNegative() {
		return nil, domainerror.NewProjectionError(
			domainerror.ErrCodeInvalidSimulationInput,
			"monthly contribution must not be negative",
			domainerror.ErrInvalidSimulationInput,
		)
	}
	if input.AnnualRatePercent < 0 {
		return nil, domainerror.NewProjectionError(
			domainerror.ErrCodeInvalidSimulationInput,
			"annual rate must not be negative",
			domainerror.ErrInvalidSimulationInput,
		)
	}
	if input.Years <= 0 {
		return nil, domainerror.NewProjectionError(
			domainerror.ErrCodeInvalidTerm,
			"years must be positive",
			domainerror.ErrInvalidTerm,
		)
	}

	monthlyRate := finance.MonthlyRate(input.AnnualRatePercent)
	rateFactor := decimal.NewFromFloat(1 + monthlyRate)
	contribution := input.MonthlyContribution.Decimal()

	balance := input.Initial.Decimal()
	totalContributed := input.Initial.Decimal()

	samples := make([]YearlySample, 0, input.Years)
	for month := 1; month <= input.Years*12; month++ {
		balance = balance.Mul(rateFactor).Add(contribution)
		totalContributed = totalContributed.Add(contribution)

		if month%12 == 0 {
			samples = append(samples, YearlySample{
				Year:             month / 12,
				Balance:          valueobject.NewMoneyFromDecimal(balance),
				TotalContributed: valueobject.NewMoneyFromDecimal(totalContributed),
			})
		}
	}

	finalAmount := valueobject.NewMoneyFromDecimal(balance)
	contributed := valueobject.NewMoneyFromDecimal(totalContributed)

	return &ProjectGrowthOutput{
		Samples:          samples,
		FinalAmount:      finalAmount,
		TotalContributed: contributed,
		TotalInterest:    finalAmount.Sub(contributed),
	}, nil
}
