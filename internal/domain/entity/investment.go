// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// Investment is a student's investment position. Only the current balance
// and an estimated annual rate are retained; historical values are
// reconstructed from the event log rather than stored.
type Investment struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Name                string
	CurrentValue        valueobject.Money
	EstimatedAnnualRate float64 // Percent, e.g. 12.5 for 12.5% a year
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           *time.Time // Soft-delete support
}

// NewInvestment creates a new Investment entity.
func NewInvestment(userID uuid.UUID, name string, currentValue valueobject.Money, estimatedAnnualRate float64) *Investment {
	now := time.Now().UTC()

	return &Investment{
		ID:                  uuid.New(),
		UserID:              userID,
		Name:                name,
		CurrentValue:        currentValue,
		EstimatedAnnualRate: estimatedAnnualRate,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// ApplyContribution adds the amount to the current balance and returns
// the immutable event recording it.
func (i *Investment) ApplyContribution(amount valueobject.Money, occurredAt time.Time) *InvestmentEvent {
	i.CurrentValue = i.CurrentValue.Add(amount)
	i.UpdatedAt = time.Now().UTC()
	return NewInvestmentEvent(i.ID, i.UserID, EventKindContribution, amount, occurredAt)
}

// ApplyWithdrawal subtracts the amount from the current balance and
// returns the event recording it. Callers must have validated that the
// amount does not exceed the balance; a withdrawal that leaves no
// positive balance closes the investment (the caller deletes it).
func (i *Investment) ApplyWithdrawal(amount valueobject.Money, occurredAt time.Time) *InvestmentEvent {
	i.CurrentValue = i.CurrentValue.Sub(amount)
	i.UpdatedAt = time.Now().UTC()
	return NewInvestmentEvent(i.ID, i.UserID, EventKindWithdrawal, amount, occurredAt)
}

// EventKind classifies an investment event.
type EventKind string

const (
	EventKindContribution EventKind = "contribution"
	EventKindWithdrawal   EventKind = "withdrawal"
)

// InvestmentEvent is an immutable, timestamped record of a contribution
// to or withdrawal from an investment. Events are append-only; they are
// the source of truth the patrimony reconstruction replays.
type InvestmentEvent struct {
	ID           uuid.UUID
	InvestmentID uuid.UUID
	UserID       uuid.UUID
	Kind         EventKind
	Amount       valueobject.Money
	OccurredAt   time.Time
	CreatedAt    time.Time
}

// NewInvestmentEvent creates a new InvestmentEvent entity.
func NewInvestmentEvent(investmentID, userID uuid.UUID, kind EventKind, amount valueobject.Money, occurredAt time.Time) *InvestmentEvent {
	return &InvestmentEvent{
		ID:           uuid.New(),
		InvestmentID: investmentID,
		UserID:       userID,
		Kind:         kind,
		Amount:       amount,
		OccurredAt:   occurredAt,
		CreatedAt:    time.Now().UTC(),
	}
}
