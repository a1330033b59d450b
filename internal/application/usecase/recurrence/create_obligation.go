// Package recurrence contains recurring obligation use cases.
package recurrence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// CreateObligationInput represents the input for obligation creation.
type CreateObligationInput struct {
	UserID      uuid.UUID
	Description string
	Category    string
	Amount      valueobject.Money
	Kind        entity.ObligationKind
	StartDate   time.Time
	EndDate     *time.Time
	Frequency   entity.Frequency
	HorizonCap  int
}

// CreateObligationOutput represents the output of obligation creation.
type CreateObligationOutput struct {
	Obligation        *ObligationOutput
	MaterializedCount int
}

// CreateObligationUseCase handles obligation creation and the atomic
// materialization of its ledger entries.
type CreateObligationUseCase struct {
	obligationRepo adapter.RecurringObligationRepository
	ledgerRepo     adapter.LedgerRepository
}

// NewCreateObligationUseCase creates a new CreateObligationUseCase instance.
func NewCreateObligationUseCase(
	obligationRepo adapter.RecurringObligationRepository,
	ledgerRepo adapter.LedgerRepository,
) *CreateObligationUseCase {
	return &CreateObligationUseCase{
		obligationRepo: obligationRepo,
		ledgerRepo:     ledgerRepo,
	}
}

// Execute performs the obligation creation. The schedule occurrences are
// materialized into ledger entries and persisted as one batch; a partial
// batch is never left behind.
func (uc *CreateObligationUseCase) Execute(ctx context.Context, input CreateObligationInput) (*CreateObligationOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewRecurrenceError(
			domainerror.ErrCodeInvalidObligationAmount,
			"obligation amount must be positive",
			domainerror.ErrInvalidObligationAmount,
		)
	}

	if !input.Kind.IsValid() {
		return nil, domainerror.NewRecurrenceError(
			domainerror.ErrCodeInvalidObligationKind,
			"obligation kind must be 'income' or 'expense'",
			domainerror.ErrInvalidObligationKind,
		)
	}

	schedule := entity.NewSchedule(input.StartDate, input.EndDate, input.Frequency, input.HorizonCap)
	if err := validateSchedule(schedule); err != nil {
		return nil, err
	}

	obligation := entity.NewRecurringObligation(
		input.UserID,
		input.Description,
		input.Category,
		input.Amount,
		input.Kind,
		schedule,
	)

	if err := uc.obligationRepo.Create(ctx, obligation); err != nil {
		return nil, fmt.Errorf("failed to create recurring obligation: %w", err)
	}

	entries := MaterializeEntries(obligation)
	if err := uc.ledgerRepo.InsertBatch(ctx, entries); err != nil {
		return nil, domainerror.NewRecurrenceError(
			domainerror.ErrCodeMaterializationFailed,
			"failed to materialize schedule entries",
			err,
		)
	}

	slog.Info("Materialized recurring obligation",
		"obligationID", obligation.ID,
		"userID", obligation.UserID,
		"frequency", schedule.Frequency,
		"entries", len(entries),
	)

	return &CreateObligationOutput{
		Obligation:        toObligationOutput(obligation),
		MaterializedCount: len(entries),
	}, nil
}

// validateSchedule maps schedule invariant violations to domain errors.
func validateSchedule(schedule entity.Schedule) error {
	if !schedule.Frequency.IsValid() {
		return domainerror.NewRecurrenceError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be 'daily', 'weekly', 'monthly' or 'yearly'",
			domainerror.ErrInvalidFrequency,
		)
	}
	if schedule.EndDate != nil && schedule.EndDate.Before(schedule.StartDate) {
		return domainerror.NewRecurrenceError(
			domainerror.ErrCodeEndDateBeforeStartDate,
			"end date must not precede start date",
			domainerror.ErrEndDateBeforeStartDate,
		)
	}
	return nil
}
