// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// EntryType classifies a ledger entry.
type EntryType string

const (
	EntryTypeIncome          EntryType = "income"
	EntryTypeFixedExpense    EntryType = "fixed_expense"
	EntryTypeVariableExpense EntryType = "variable_expense"
	EntryTypeReceivable      EntryType = "receivable"
	EntryTypeDebt            EntryType = "debt"
)

// IsValid reports whether the entry type is one of the supported values.
func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeIncome, EntryTypeFixedExpense, EntryTypeVariableExpense,
		EntryTypeReceivable, EntryTypeDebt:
		return true
	}
	return false
}

// SourceType identifies what produced a ledger entry. Entries created
// directly by the user carry SourceTypeNone.
type SourceType string

const (
	SourceTypeNone        SourceType = "none"
	SourceTypeRecurring   SourceType = "recurring"
	SourceTypeInstallment SourceType = "installment"
)

// LedgerEntry is a single dated row in the student's ledger. Entries
// produced by a recurring obligation or installment purchase carry a weak
// back-reference (SourceType + SourceID): they stay independently
// editable and deletable, while bulk operations address them by that key
// instead of traversing an ownership edge.
type LedgerEntry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        EntryType
	Category    string
	Amount      valueobject.Money
	Date        time.Time
	Description string
	SourceType  SourceType
	SourceID    *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewLedgerEntry creates a new LedgerEntry entity with no source.
func NewLedgerEntry(
	userID uuid.UUID,
	entryType EntryType,
	category string,
	amount valueobject.Money,
	date time.Time,
	description string,
) *LedgerEntry {
	now := time.Now().UTC()

	return &LedgerEntry{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        entryType,
		Category:    category,
		Amount:      amount,
		Date:        date,
		Description: description,
		SourceType:  SourceTypeNone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewSourcedLedgerEntry creates a LedgerEntry tagged with the rule that
// produced it.
func NewSourcedLedgerEntry(
	userID uuid.UUID,
	entryType EntryType,
	category string,
	amount valueobject.Money,
	date time.Time,
	description string,
	sourceType SourceType,
	sourceID uuid.UUID,
) *LedgerEntry {
	entry := NewLedgerEntry(userID, entryType, category, amount, date, description)
	entry.SourceType = sourceType
	entry.SourceID = &sourceID
	return entry
}
