// Package recurrence contains recurring obligation use cases.
package recurrence

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// DeleteObligationInput represents the input for obligation deletion.
type DeleteObligationInput struct {
	UserID       uuid.UUID
	ObligationID uuid.UUID
}

// DeleteObligationOutput represents the output of obligation deletion.
type DeleteObligationOutput struct {
	Deleted bool
}

// DeleteObligationUseCase removes a recurring obligation. Materialized
// ledger entries are deliberately left in place: removing the rule must
// not retroactively rewrite the ledger. Removing future entries is a
// separate, explicit operation on the ledger.
type DeleteObligationUseCase struct {
	obligationRepo adapter.RecurringObligationRepository
}

// NewDeleteObligationUseCase creates a new DeleteObligationUseCase instance.
func NewDeleteObligationUseCase(obligationRepo adapter.RecurringObligationRepository) *DeleteObligationUseCase {
	return &DeleteObligationUseCase{
		obligationRepo: obligationRepo,
	}
}

// Execute performs the obligation deletion.
func (uc *DeleteObligationUseCase) Execute(ctx context.Context, input DeleteObligationInput) (*DeleteObligationOutput, error) {
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

	if err := uc.obligationRepo.Delete(ctx, obligation.ID); err != nil {
		return nil, fmt.Errorf("failed to delete recurring obligation: %w", err)
	}

	return &DeleteObligationOutput{Deleted: true}, nil
}
