// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// InstallmentPurchase is a purchase split into N monthly installments.
// InstallmentAmount is TotalAmount divided by InstallmentCount using
// Money's division; the rounding remainder is not redistributed, so the
// sum of installments may drift from the total by a few cents.
type InstallmentPurchase struct {
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
	DeletedAt         *time.Time // Soft-delete support
}

// NewInstallmentPurchase creates a new active InstallmentPurchase with
// its per-installment amount computed from the total.
func NewInstallmentPurchase(
	userID uuid.UUID,
	description string,
	category string,
	totalAmount valueobject.Money,
	installmentCount int,
	startDate time.Time,
) *InstallmentPurchase {
	now := time.Now().UTC()

	return &InstallmentPurchase{
		ID:                uuid.New(),
		UserID:            userID,
		Description:       description,
		Category:          category,
		TotalAmount:       totalAmount,
		InstallmentCount:  installmentCount,
		InstallmentAmount: totalAmount.Div(int64(installmentCount)),
		PaidCount:         0,
		StartDate:         startDate,
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// PayNext records the payment of the next installment. The Active flag
// flips to false exactly when the last installment is paid. Paying beyond
// the installment count is a no-op (reachable only through stale UI
// state) and returns false with no state change.
func (p *InstallmentPurchase) PayNext() bool {
	if p.PaidCount >= p.InstallmentCount {
		return false
	}

	p.PaidCount++
	if p.PaidCount == p.InstallmentCount {
		p.Active = false
	}
	p.UpdatedAt = time.Now().UTC()
	return true
}

// SetTotalAmount updates the purchase total and recomputes the
// per-installment amount.
func (p *InstallmentPurchase) SetTotalAmount(total valueobject.Money) {
	p.TotalAmount = total
	p.InstallmentAmount = total.Div(int64(p.InstallmentCount))
	p.UpdatedAt = time.Now().UTC()
}

// Remaining returns the number of unpaid installments.
func (p *InstallmentPurchase) Remaining() int {
	return p.InstallmentCount - p.PaidCount
}
