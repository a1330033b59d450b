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
)

// ListEntriesInput represents the input for listing ledger entries.
// All filter fields are optional.
type ListEntriesInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Types     []entity.EntryType
	SourceID  *uuid.UUID
}

// ListEntriesOutput represents the output of listing entries.
type ListEntriesOutput struct {
	Entries []*EntryOutput
}

// ListEntriesUseCase handles filtered listing of ledger entries.
type ListEntriesUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(ledgerRepo adapter.LedgerRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute retrieves entries matching the filter, ordered by date.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	for _, t := range input.Types {
		if !t.IsValid() {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidEntryType,
				fmt.Sprintf("unknown entry type: %s", t),
				domainerror.ErrInvalidEntryType,
			)
		}
	}

	entries, err := uc.ledgerRepo.FindByFilter(ctx, adapter.LedgerEntryFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Types:     input.Types,
		SourceID:  input.SourceID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	outputs := make([]*EntryOutput, len(entries))
	for i, e := range entries {
		outputs[i] = toEntryOutput(e)
	}

	return &ListEntriesOutput{Entries: outputs}, nil
}
