// Package recurrence contains recurring obligation use cases.
package recurrence

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// SetObligationActiveInput represents the input for pausing or resuming
// an obligation.
type SetObligationActiveInput struct {
	UserID       uuid.UUID
	ObligationID uuid.UUID
	Active       bool
}

// SetObligationActiveOutput represents the output of pausing or resuming.
type SetObligationActiveOutput struct {
	Obligation *ObligationOutput
}

// SetObligationActiveUseCase pauses or resumes a recurring obligation.
// Pausing only stops future materialization; entries already written
// stay as they are.
type SetObligationActiveUseCase struct {
	obligationRepo adapter.RecurringObligationRepository
}

// NewSetObligationActiveUseCase creates a new SetObligationActiveUseCase instance.
func NewSetObligationActiveUseCase(obligationRepo adapter.RecurringObligationRepository) *SetObligationActiveUseCase {
	return &SetObligationActiveUseCase{
		obligationRepo: obligationRepo,
	}
}

// Execute flips the obligation's active flag.
func (uc *SetObligationActiveUseCase) Execute(ctx context.Context, input SetObligationActiveInput) (*SetObligationActiveOutput, error) {
	obligation, err := uc.obligationRepo.FindByID(ctx, input.ObligationID)
	if err != nil {
		return nil, domainerror.NewRecurrenceError(
			domainerror.ErrCodeObligationNotFound,
			"recurring obligation not found",
			domainerror.ErrObligationNotFound,
		)
	}

	if obligation.UserID != input.UserID {
		return nil, domainerror.NewRecurrenceError(
			domainerror.ErrCodeNotAuthorizedObligation,
			"recurring obligation does not belong to user",
			domainerror.ErrNotAuthorizedToModifyObligation,
		)
	}

	obligation.SetActive(input.Active)

	if err := uc.obligationRepo.Update(ctx, obligation); err != nil {
		return nil, fmt.Errorf("failed to update recurring obligation: %w", err)
	}

	return &SetObligationActiveOutput{Obligation: toObligationOutput(obligation)}, nil
}
