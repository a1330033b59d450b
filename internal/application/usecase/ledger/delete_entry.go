// Package ledger contains ledger entry use cases.
package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// DeleteEntryInput represents the input for single entry deletion.
type DeleteEntryInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
}

// DeleteEntryOutput represents the output of entry deletion.
type DeleteEntryOutput struct {
	Deleted bool
}

// DeleteEntryUseCase deletes a single ledger entry, sourced or not.
type DeleteEntryUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(ledgerRepo adapter.LedgerRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute performs the entry deletion.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) (*DeleteEntryOutput, error) {
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

	if err := uc.ledgerRepo.Delete(ctx, entry.ID); err != nil {
		return nil, fmt.Errorf("failed to delete ledger entry: %w", err)
	}

	return &DeleteEntryOutput{Deleted: true}, nil
}
