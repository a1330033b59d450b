// Package recurrence contains recurring obligation use cases.
package recurrence

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// ObligationOutput represents a recurring obligation in use case outputs.
type ObligationOutput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Category    string
	Amount      valueobject.Money
	Kind        entity.ObligationKind
	StartDate   time.Time
	EndDate     *time.Time
	Frequency   entity.Frequency
	HorizonCap  int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// toObligationOutput converts a domain obligation to its output form.
func toObligationOutput(o *entity.RecurringObligation) *ObligationOutput {
	return &ObligationOutput{
		ID:          o.ID,
		UserID:      o.UserID,
		Description: o.Description,
		Category:    o.Category,
		Amount:      o.Amount,
		Kind:        o.Kind,
		StartDate:   o.Schedule.StartDate,
		EndDate:     o.Schedule.EndDate,
		Frequency:   o.Schedule.Frequency,
		HorizonCap:  o.Schedule.HorizonCap,
		Active:      o.Active,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
