// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// ObligationKind represents whether a recurring obligation produces
// income or expense entries.
type ObligationKind string

const (
	ObligationKindIncome  ObligationKind = "income"
	ObligationKindExpense ObligationKind = "expense"
)

// IsValid reports whether the kind is one of the supported values.
func (k ObligationKind) IsValid() bool {
	return k == ObligationKindIncome || k == ObligationKindExpense
}

// RecurringObligation is a recurring income or expense rule owned by a
// student: "R$150 every month starting Jan 1". Materialization turns its
// schedule into concrete dated ledger entries; pausing the obligation
// stops future materialization without touching entries already written.
type RecurringObligation struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Category    string
	Amount      valueobject.Money
	Kind        ObligationKind
	Schedule    Schedule
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewRecurringObligation creates a new active RecurringObligation entity.
func NewRecurringObligation(
	userID uuid.UUID,
	description string,
	category string,
	amount valueobject.Money,
	kind ObligationKind,
	schedule Schedule,
) *RecurringObligation {
	now := time.Now().UTC()

	return &RecurringObligation{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Category:    category,
		Amount:      amount,
		Kind:        kind,
		Schedule:    schedule,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SetActive pauses or resumes the obligation. Already-materialized
// entries are never affected.
func (o *RecurringObligation) SetActive(active bool) {
	o.Active = active
	o.UpdatedAt = time.Now().UTC()
}

// ReplaceSchedule swaps the recurrence rule wholesale. Edits never mutate
// the schedule in place so that entries materialized from the old rule
// are not silently reinterpreted.
func (o *RecurringObligation) ReplaceSchedule(schedule Schedule) {
	o.Schedule = schedule
	o.UpdatedAt = time.Now().UTC()
}
