// Package investment contains investment use cases.
package investment

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// InvestmentOutput is the use case representation of an investment.
type InvestmentOutput struct {
	ID                  uuid.UUID
	Name                string
	CurrentValue        valueobject.Money
	EstimatedAnnualRate float64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func toInvestmentOutput(inv *entity.Investment) *InvestmentOutput {
	return &InvestmentOutput{
		ID:                  inv.ID,
		Name:                inv.Name,
		CurrentValue:        inv.CurrentValue,
		EstimatedAnnualRate: inv.EstimatedAnnualRate,
		CreatedAt:           inv.CreatedAt,
		UpdatedAt:           inv.UpdatedAt,
	}
}
