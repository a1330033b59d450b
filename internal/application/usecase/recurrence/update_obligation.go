// Package recurrence contains recurring obligation use cases.
package recurrence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// UpdateObligationInput represents the input for obligation update. Nil
// fields are left unchanged. When any schedule field is present the
// schedule is replaced wholesale — never mutated in place — so entries
// materialized from the old rule keep their meaning.
type UpdateObligationInput struct {
	UserID       uuid.UUID
	ObligationID uuid.UUID
	Description  *string
	Category     *string
	Amount       *valueobject.Money
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEnd     bool
	Frequency    *entity.Frequency
	HorizonCap   *int
}

// UpdateObligationOutput represents the output of obligation update.
type UpdateObligationOutput struct {
	Obligation *ObligationOutput
}

// UpdateObligationUseCase handles obligation edits. Updating an
// obligation does not retroactively rewrite already-materialized ledger
// entries; callers re-materialize explicitly if they want new ones.
type UpdateObligationUseCase struct {
	obligationRepo adapter.RecurringObligationRepository
}

// NewUpdateObligationUseCase creates a new UpdateObligationUseCase instance.
func NewUpdateObligationUseCase(obligationRepo adapter.RecurringObligationRepository) *UpdateObligationUseCase {
	return &UpdateObligationUseCase{
		obligationRepo: obligationRepo,
	}
}

// Execute performs the obligation update.
func (uc *UpdateObligationUseCase) Execute(ctx context.Context, input UpdateObligationInput) (*UpdateObligationOutput, error) {
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

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewRecurrenceError(
				domainerror.ErrCodeInvalidObligationAmount,
				"obligation amount must be positive",
				domainerror.ErrInvalidObligationAmount,
			)
		}
		obligation.Amount = *input.Amount
	}

	if input.Description != nil {
		obligation.Description = *input.Description
	}
	if input.Category != nil {
		obligation.Category = *input.Category
	}

	if input.StartDate != nil || input.EndDate != nil || input.ClearEnd || input.Frequency != nil || input.HorizonCap != nil {
		schedule := obligation.Schedule

		startDate := schedule.StartDate
		if input.StartDate != nil {
			startDate = *input.StartDate
		}
		endDate := schedule.EndDate
		if input.EndDate != nil {
			endDate = input.EndDate
		}
		if input.ClearEnd {
			endDate = nil
		}
		frequency := schedule.Frequency
		if input.Frequency != nil {
			frequency = *input.Frequency
		}
		horizonCap := schedule.HorizonCap
		if input.HorizonCap != nil {
			horizonCap = *input.HorizonCap
		}

		replacement := entity.NewSchedule(startDate, endDate, frequency, horizonCap)
		if err := validateSchedule(replacement); err != nil {
			return nil, err
		}
		obligation.ReplaceSchedule(replacement)
	}

	obligation.UpdatedAt = time.Now().UTC()

	if err := uc.obligationRepo.Update(ctx, obligation); err != nil {
		return nil, fmt.Errorf("failed to update recurring obligation: %w", err)
	}

	return &UpdateObligationOutput{Obligation: toObligationOutput(obligation)}, nil
}
