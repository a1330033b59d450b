// Package ledger contains ledger entry use cases.
package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// EntryOutput is the use case representation of a ledger entry.
type EntryOutput struct {
	ID          uuid.UUID
	Type        entity.EntryType
	Category    string
	Amount      valueobject.Money
	Date        time.Time
	Description string
	SourceType  entity.SourceType
	SourceID    *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toEntryOutput(entry *entity.LedgerEntry) *EntryOutput {
	return &EntryOutput{
		ID:          entry.ID,
		Type:        entry.Type,
		Category:    entry.Category,
		Amount:      entry.Amount,
		Date:        entry.Date,
		Description: entry.Description,
		SourceType:  entry.SourceType,
		SourceID:    entry.SourceID,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}
