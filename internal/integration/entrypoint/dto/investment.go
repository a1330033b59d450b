// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-planner/backend/internal/application/usecase/investment"
)

// CreateInvestmentRequest represents the request body for investment creation.
type CreateInvestmentRequest struct {
	Name                string  `json:"name" binding:"required"`
	InitialValue        float64 `json:"initial_value" binding:"omitempty,gte=0"`
	EstimatedAnnualRate float64 `json:"estimated_annual_rate" binding:"omitempty,gte=0"`
}

// UpdateInvestmentRequest represents the request body for investment update.
type UpdateInvestmentRequest struct {
	Name                *string  `json:"name,omitempty"`
	EstimatedAnnualRate *float64 `json:"estimated_annual_rate,omitempty" binding:"omitempty,gte=0"`
}

// InvestmentEventRequest represents the request body for a contribution
// or withdrawal.
type InvestmentEventRequest struct {
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	OccurredAt *string `json:"occurred_at,omitempty"`
}

// InvestmentResponse represents a single investment in API responses.
type InvestmentResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	CurrentValue        string    `json:"current_value"`
	EstimatedAnnualRate float64   `json:"estimated_annual_rate"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// WithdrawResponse represents the response for a withdrawal.
type WithdrawResponse struct {
	Investment InvestmentResponse `json:"investment"`
	Closed     bool               `json:"closed"`
}

// InvestmentListResponse represents the response for listing investments.
type InvestmentListResponse struct {
	Investments []InvestmentResponse `json:"investments"`
}

// ToInvestmentResponse converts an InvestmentOutput to an InvestmentResponse DTO.
func ToInvestmentResponse(inv *investment.InvestmentOutput) InvestmentResponse {
	return InvestmentResponse{
		ID:                  inv.ID.String(),
		Name:                inv.Name,
		CurrentValue:        inv.CurrentValue.String(),
		EstimatedAnnualRate: inv.EstimatedAnnualRate,
		CreatedAt:           inv.CreatedAt,
		UpdatedAt:           inv.UpdatedAt,
	}
}

// ToInvestmentListResponse converts a list of InvestmentOutput to InvestmentListResponse.
func ToInvestmentListResponse(outputs []*investment.InvestmentOutput) InvestmentListResponse {
	investments := make([]InvestmentResponse, len(outputs))
	for i, output := range outputs {
		investments[i] = ToInvestmentResponse(output)
	}
	return InvestmentListResponse{
		Investments: investments,
	}
}
