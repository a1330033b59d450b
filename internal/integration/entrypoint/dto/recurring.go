// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-planner/backend/internal/application/usecase/recurrence"
)

// CreateObligationRequest represents the request body for obligation creation.
type CreateObligationRequest struct {
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Kind        string  `json:"kind" binding:"required,oneof=income expense"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     *string `json:"end_date,omitempty"`
	Frequency   string  `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	HorizonCap  int     `json:"horizon_cap" binding:"omitempty,gt=0"`
}

// UpdateObligationRequest represents the request body for obligation update.
type UpdateObligationRequest struct {
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Amount      *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	StartDate   *string  `json:"start_date,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
	ClearEnd    bool     `json:"clear_end,omitempty"`
	Frequency   *string  `json:"frequency,omitempty" binding:"omitempty,oneof=daily weekly monthly yearly"`
	HorizonCap  *int     `json:"horizon_cap,omitempty" binding:"omitempty,gt=0"`
}

// SetObligationActiveRequest represents the request body for pausing or
// resuming an obligation.
type SetObligationActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// ObligationResponse represents a single recurring obligation in API responses.
type ObligationResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Kind        string    `json:"kind"`
	StartDate   string    `json:"start_date"`
	EndDate     *string   `json:"end_date,omitempty"`
	Frequency   string    `json:"frequency"`
	HorizonCap  int       `json:"horizon_cap"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateObligationResponse represents the response for obligation creation.
type CreateObligationResponse struct {
	Obligation        ObligationResponse `json:"obligation"`
	MaterializedCount int                `json:"materialized_count"`
}

// ObligationListResponse represents the response for listing obligations.
type ObligationListResponse struct {
	Obligations []ObligationResponse `json:"obligations"`
}

// ToObligationResponse converts an ObligationOutput to an ObligationResponse DTO.
func ToObligationResponse(o *recurrence.ObligationOutput) ObligationResponse {
	response := ObligationResponse{
		ID:          o.ID.String(),
		Description: o.Description,
		Category:    o.Category,
		Amount:      o.Amount.String(),
		Kind:        string(o.Kind),
		StartDate:   o.StartDate.Format("2006-01-02"),
		Frequency:   string(o.Frequency),
		HorizonCap:  o.HorizonCap,
		Active:      o.Active,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}

	if o.EndDate != nil {
		dateStr := o.EndDate.Format("2006-01-02")
		response.EndDate = &dateStr
	}

	return response
}

// ToObligationListResponse converts a list of ObligationOutput to ObligationListResponse.
func ToObligationListResponse(outputs []*recurrence.ObligationOutput) ObligationListResponse {
	obligations := make([]ObligationResponse, len(outputs))
	for i, output := range outputs {
		obligations[i] = ToObligationResponse(output)
	}
	return ObligationListResponse{
		Obligations: obligations,
	}
}
