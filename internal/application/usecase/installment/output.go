// Package installment contains installment purchase use cases.
package installment

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// PurchaseOutput represents an installment purchase in use case outputs.
type PurchaseOutput struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Description       string
	Category          string
	TotalAmount       valueobject.Money
	InstallmentCount  int
	InstallmentAmount valueobject.Money
	PaidCount         int
	StartDate         time.Time
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// toPurchaseOutput converts a domain purchase to its output form.
func toPurchaseOutput(p *entity.InstallmentPurchase) *PurchaseOutput {
	return &PurchaseOutput{
		ID:                p.ID,
		UserID:            p.UserID,
		Description:       p.Description,
		Category:          p.Category,
		TotalAmount:       p.TotalAmount,
		InstallmentCount:  p.InstallmentCount,
		InstallmentAmount: p.InstallmentAmount,
		PaidCount:         p.PaidCount,
		StartDate:         p.StartDate,
		Active:            p.Active,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
