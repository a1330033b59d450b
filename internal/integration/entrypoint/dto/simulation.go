// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-planner/backend/internal/application/usecase/simulation"
)

// ProjectGrowthRequest represents the request body for a growth simulation.
type ProjectGrowthRequest struct {
	Initial             float64 `json:"initial" binding:"omitempty,gte=0"`
	MonthlyContribution float64 `json:"monthly_contribution" binding:"omitempty,gte=0"`
	AnnualRate          float64 `json:"annual_rate" binding:"omitempty,gte=0"`
	Years               int     `json:"years" binding:"required,gt=0"`
}

// RequiredPaymentRequest represents the request body for a goal plan.
type RequiredPaymentRequest struct {
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0"`
	AnnualRate   float64 `json:"annual_rate" binding:"required,gt=0"`
	Years        int     `json:"years" binding:"required,gt=0"`
}

// YearlySampleResponse represents one yearly checkpoint of a simulation.
type YearlySampleResponse struct {
	Year             int    `json:"year"`
	Balance          string `json:"balance"`
	TotalContributed string `json:"total_contributed"`
}

// ProjectGrowthResponse represents the response for a growth simulation.
type ProjectGrowthResponse struct {
	Samples          []YearlySampleResponse `json:"samples"`
	FinalAmount      string                 `json:"final_amount"`
	TotalContributed string                 `json:"total_contributed"`
	TotalInterest    string                 `json:"total_interest"`
}

// RequiredPaymentResponse represents the response for a goal plan.
type RequiredPaymentResponse struct {
	MonthlyPayment string `json:"monthly_payment"`
	Months         int    `json:"months"`
}

// ToProjectGrowthResponse converts a simulation output to its response DTO.
func ToProjectGrowthResponse(output *simulation.ProjectGrowthOutput) ProjectGrowthResponse {
	samples := make([]YearlySampleResponse, len(output.Samples))
	for i, s := range output.Samples {
		samples[i] = YearlySampleResponse{
			Year:             s.Year,
			Balance:          s.Balance.String(),
			TotalContributed: s.TotalContributed.String(),
		}
	}
	return ProjectGrowthResponse{
		Samples:          samples,
		FinalAmount:      output.FinalAmount.String(),
		TotalContributed: output.TotalContributed.String(),
		TotalInterest:    output.TotalInterest.String(),
	}
}

// ToRequiredPaymentResponse converts a goal plan output to its response DTO.
func ToRequiredPaymentResponse(output *simulation.RequiredPaymentOutput) RequiredPaymentResponse {
	return RequiredPaymentResponse{
		MonthlyPayment: output.MonthlyPayment.String(),
		Months:         output.Months,
	}
}
