// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-planner/backend/internal/application/usecase/installment"
)

// CreatePurchaseRequest represents the request body for installment purchase creation.
type CreatePurchaseRequest struct {
	Description      string  `json:"description" binding:"required"`
	Category         string  `json:"category"`
	TotalAmount      float64 `json:"total_amount" binding:"required,gt=0"`
	InstallmentCount int     `json:"installment_count" binding:"required,gt=0"`
	StartDate        string  `json:"start_date" binding:"required"`
}

// UpdatePurchaseRequest represents the request body for purchase update.
type UpdatePurchaseRequest struct {
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	TotalAmount *float64 `json:"total_amount,omitempty" binding:"omitempty,gt=0"`
	StartDate   *string  `json:"start_date,omitempty"`
}

// PurchaseResponse represents a single installment purchase in API responses.
type PurchaseResponse struct {
	ID                string    `json:"id"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	TotalAmount       string    `json:"total_amount"`
	InstallmentCount  int       `json:"installment_count"`
	InstallmentAmount string    `json:"installment_amount"`
	PaidCount         int       `json:"paid_count"`
	Remaining         int       `json:"remaining"`
	StartDate         string    `json:"start_date"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CreatePurchaseResponse represents the response for purchase creation.
type CreatePurchaseResponse struct {
	Purchase     PurchaseResponse `json:"purchase"`
	EntriesCount int              `json:"entries_count"`
}

// PayInstallmentResponse represents the response for paying an installment.
type PayInstallmentResponse struct {
	Purchase PurchaseResponse `json:"purchase"`
	Paid     bool             `json:"paid"`
}

// PurchaseListResponse represents the response for listing purchases.
type PurchaseListResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}

// ToPurchaseResponse converts a PurchaseOutput to a PurchaseResponse DTO.
func ToPurchaseResponse(p *installment.PurchaseOutput) PurchaseResponse {
	return PurchaseResponse{
		ID:                p.ID.String(),
		Description:       p.Description,
		Category:          p.Category,
		TotalAmount:       p.TotalAmount.String(),
		InstallmentCount:  p.InstallmentCount,
		InstallmentAmount: p.InstallmentAmount.String(),
		PaidCount:         p.PaidCount,
		Remaining:         p.InstallmentCount - p.PaidCount,
		StartDate:         p.StartDate.Format("2006-01-02"),
		Active:            p.Active,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// ToPurchaseListResponse converts a list of PurchaseOutput to PurchaseListResponse.
func ToPurchaseListResponse(outputs []*installment.PurchaseOutput) PurchaseListResponse {
	purchases := make([]PurchaseResponse, len(outputs))
	for i, output := range outputs {
		purchases[i] = ToPurchaseResponse(output)
	}
	return PurchaseListResponse{
		Purchases: purchases,
	}
}
