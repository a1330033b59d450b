// Package recurrence contains recurring obligation use cases.
package recurrence

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
)

// ListObligationsInput represents the input for listing obligations.
type ListObligationsInput struct {
	UserID uuid.UUID
}

// ListObligationsOutput represents the output of listing obligations.
type ListObligationsOutput struct {
	Obligations []*ObligationOutput
}

// ListObligationsUseCase handles listing a user's recurring obligations.
type ListObligationsUseCase struct {
	obligationRepo adapter.RecurringObligationRepository
}

// NewListObligationsUseCase creates a new ListObligationsUseCase instance.
func NewListObligationsUseCase(obligationRepo adapter.RecurringObligationRepository) *ListObligationsUseCase {
	return &ListObligationsUseCase{
		obligationRepo: obligationRepo,
	}
}

// Execute retrieves all obligations for the user.
func (uc *ListObligationsUseCase) Execute(ctx context.Context, input ListObligationsInput) (*ListObligationsOutput, error) {
	obligations, err := uc.obligationRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring obligations: %w", err)
	}

	outputs := make([]*ObligationOutput, len(obligations))
	for i, o := range obligations {
		outputs[i] = toObligationOutput(o)
	}

	return &ListObligationsOutput{Obligations: outputs}, nil
}
