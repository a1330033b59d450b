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

// CreateEntryInput represents the input for manual entry creation.
type CreateEntryInput struct {
	UserID      uuid.UUID
	Type        entity.EntryType
	Category    string
	Amount      valueobject.Money
	Date        time.Time
	Description string
}

// CreateEntryOutput represents the output of entry creation.
type CreateEntryOutput struct {
	Entry *EntryOutput
}

// CreateEntryUseCase handles manual ledger entry creation. Entries
// created here carry no source reference.
type CreateEntryUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(ledgerRepo adapter.LedgerRepository) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute performs the entry creation.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	if !input.Type.IsValid() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidEntryType,
			fmt.Sprintf("unknown entry type: %s", input.Type),
			domainerror.ErrInvalidEntryType,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidEntryAmount,
			"entry amount must be positive",
			domainerror.ErrInvalidEntryAmount,
		)
	}

	entry := entity.NewLedgerEntry(
		input.UserID,
		input.Type,
		input.Category,
		input.Amount,
		input.Date,
		input.Description,
	)

	if err := uc.ledgerRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create ledger entry: %w", err)
	}

	return &CreateEntryOutput{Entry: toEntryOutput(entry)}, nil
}
