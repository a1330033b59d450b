// Package investment contains investment use cases.
package investment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
)

// ListInvestmentsInput represents the input for listing investments.
type ListInvestmentsInput struct {
	UserID uuid.UUID
}

// ListInvestmentsOutput represents the output of listing investments.
type ListInvestmentsOutput struct {
	Investments []*InvestmentOutput
}

// ListInvestmentsUseCase handles listing a user's investments.
type ListInvestmentsUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewListInvestmentsUseCase creates a new ListInvestmentsUseCase instance.
func NewListInvestmentsUseCase(investmentRepo adapter.InvestmentRepository) *ListInvestmentsUseCase {
	return &ListInvestmentsUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute retrieves all investments for the user.
func (uc *ListInvestmentsUseCase) Execute(ctx context.Context, input ListInvestmentsInput) (*ListInvestmentsOutput, error) {
	investments, err := uc.investmentRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}

	outputs := make([]*InvestmentOutput, len(investments))
	for i, inv := range investments {
		outputs[i] = toInvestmentOutput(inv)
	}

	return &ListInvestmentsOutput{Investments: outputs}, nil
}
