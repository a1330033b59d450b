// Package ledger contains ledger entry use cases.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// DeleteFutureEntriesInput represents the input for bulk removal of
// upcoming entries produced by one recurring obligation or installment
// purchase.
type DeleteFutureEntriesInput struct {
	UserID     uuid.UUID
	SourceType entity.SourceType
	SourceID   uuid.UUID
}

// DeleteFutureEntriesOutput represents the output of the bulk removal.
type DeleteFutureEntriesOutput struct {
	DeletedCount int64
}

// DeleteFutureEntriesUseCase removes every entry carrying the given
// source key dated today or later and deactivates the owning rule so it
// stops producing new entries. Past entries stay untouched: they record
// history.
type DeleteFutureEntriesUseCase struct {
	ledgerRepo     adapter.LedgerRepository
	obligationRepo adapter.RecurringObligationRepository
	purchaseRepo   adapter.InstallmentPurchaseRepository
	now            func() time.Time
}

// NewDeleteFutureEntriesUseCase creates a new DeleteFutureEntriesUseCase instance.
func NewDeleteFutureEntriesUseCase(
	ledgerRepo adapter.LedgerRepository,
	obligationRepo adapter.RecurringObligationRepository,
	purchaseRepo adapter.InstallmentPurchaseRepository,
) *DeleteFutureEntriesUseCase {
	return &DeleteFutureEntriesUseCase{
		ledgerRepo:     ledgerRepo,
		obligationRepo: obligationRepo,
		purchaseRepo:   purchaseRepo,
		now:            time.Now,
	}
}

// Execute performs the bulk removal and source deactivation.
func (uc *DeleteFutureEntriesUseCase) Execute(ctx context.Context, input DeleteFutureEntriesInput) (*DeleteFutureEntriesOutput, error) {
	switch input.SourceType {
	case entity.SourceTypeRecurring:
		obligation, err := uc.obligationRepo.FindByID(ctx, input.SourceID)
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
		obligation.SetActive(false)
		if err := uc.obligationRepo.Update(ctx, obligation); err != nil {
			return nil, fmt.Errorf("failed to deactivate recurring obligation: %w", err)
		}

	case entity.SourceTypeInstallment:
		purchase, err := uc.purchaseRepo.FindByID(ctx, input.SourceID)
		if err != nil {
			return nil, domainerror.NewInstallmentError(
				domainerror.ErrCodePurchaseNotFound,
				"installment purchase not found",
				domainerror.ErrPurchaseNotFound,
			)
		}
		if purchase.UserID != input.UserID {
			return nil, domainerror.NewInstallmentError(
				domainerror.ErrCodeNotAuthorizedPurchase,
				"installment purchase does not belong to user",
				domainerror.ErrNotAuthorizedToModifyPurchase,
			)
		}
		purchase.Active = false
		purchase.UpdatedAt = time.Now().UTC()
		if err := uc.purchaseRepo.Update(ctx, purchase); err != nil {
			return nil, fmt.Errorf("failed to deactivate installment purchase: %w", err)
		}

	default:
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidSourceType,
			fmt.Sprintf("unknown source type: %s", input.SourceType),
			domainerror.ErrInvalidSourceType,
		)
	}

	// Entries are matched from the start of today so an entry dated
	// today counts as upcoming.
	n := uc.now().UTC()
	today := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)

	deleted, err := uc.ledgerRepo.DeleteBySourceFrom(ctx, input.SourceType, input.SourceID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to delete future entries: %w", err)
	}

	slog.Info("Deleted future entries",
		"sourceType", input.SourceType,
		"sourceID", input.SourceID,
		"deleted", deleted,
	)

	return &DeleteFutureEntriesOutput{DeletedCount: deleted}, nil
}
