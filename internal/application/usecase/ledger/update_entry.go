// Package ledger contains ledger entry use cases.
package ledger

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

// UpdateEntryInput represents the input for entry update. Nil fields are
// left unchanged. Sourced entries stay editable; the source reference
// itself never changes.
type UpdateEntryInput struct {
	UserID      uuid.UUID
	EntryID     uuid.UUID
	Type        *entity.EntryType
	Category    *string
	Amount      *valueobject.Money
	Date        *time.Time
	Description *string
}

// UpdateEntryOutput represents the output of entry update.
type UpdateEntryOutput struct {
	Entry *EntryOutput
}

// UpdateEntryUseCase handles edits to a single ledger entry.
type UpdateEntryUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(ledgerRepo adapter.LedgerRepository) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute performs the entry update.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	entry, err := uc.ledgerRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEntryNotFound,
			"ledger entry not found",
			domainerror.ErrEntryNotFound,
		)
	}

	if entry.UserID != input.UserID {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeNotAuthorizedEntry,
			"ledger entry does not belong to user",
			domainerror.ErrNotAuthorizedToModifyEntry,
		)
	}

	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidEntryType,
				fmt.Sprintf("unknown entry type: %s", *input.Type),
				domainerror.ErrInvalidEntryType,
			)
		}
		entry.Type = *input.Type
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidEntryAmount,
				"entry amount must be positive",
				domainerror.ErrInvalidEntryAmount,
			)
		}
		entry.Amount = *input.Amount
	}

	if input.Category != nil {
		entry.Category = *input.Category
	}
	if input.Date != nil {
		entry.Date = *input.Date
	}
	if input.Description != nil {
		entry.Description = *input.Description
	}
	entry.UpdatedAt = time.Now().UTC()

	if err := uc.ledgerRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update ledger entry: %w", err)
	}

	return &UpdateEntryOutput{Entry: toEntryOutput(entry)}, nil
}
