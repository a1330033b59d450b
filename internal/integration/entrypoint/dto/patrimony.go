// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-planner/backend/internal/application/usecase/patrimony"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// CreateAssetRequest represents the request body for asset creation.
type CreateAssetRequest struct {
	Name            string  `json:"name" binding:"required"`
	Category        string  `json:"category"`
	EstimatedValue  float64 `json:"estimated_value" binding:"required,gt=0"`
	AcquisitionDate *string `json:"acquisition_date,omitempty"`
}

// UpdateAssetRequest represents the request body for asset update.
type UpdateAssetRequest struct {
	Name            *string  `json:"name,omitempty"`
	Category        *string  `json:"category,omitempty"`
	EstimatedValue  *float64 `json:"estimated_value,omitempty" binding:"omitempty,gt=0"`
	AcquisitionDate *string  `json:"acquisition_date,omitempty"`
}

// AssetResponse represents a single patrimony asset in API responses.
type AssetResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	EstimatedValue  string    `json:"estimated_value"`
	AcquisitionDate *string   `json:"acquisition_date,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AssetListResponse represents the response for listing assets.
type AssetListResponse struct {
	Assets []AssetResponse `json:"assets"`
}

// PatrimonyPointResponse represents one sample of the net-worth series.
type PatrimonyPointResponse struct {
	Label            string `json:"label"`
	Date             string `json:"date"`
	AssetsValue      string `json:"assets_value"`
	InvestmentsValue string `json:"investments_value"`
	Total            string `json:"total"`
}

// PatrimonyHistoryResponse represents the response for the history endpoint.
type PatrimonyHistoryResponse struct {
	Granularity string                   `json:"granularity"`
	Series      []PatrimonyPointResponse `json:"series"`
}

// ToAssetResponse converts an AssetOutput to an AssetResponse DTO.
func ToAssetResponse(a *patrimony.AssetOutput) AssetResponse {
	response := AssetResponse{
		ID:             a.ID.String(),
		Name:           a.Name,
		Category:       a.Category,
		EstimatedValue: a.EstimatedValue.String(),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}

	if a.AcquisitionDate != nil {
		dateStr := a.AcquisitionDate.Format("2006-01-02")
		response.AcquisitionDate = &dateStr
	}

	return response
}

// ToAssetListResponse converts a list of AssetOutput to AssetListResponse.
func ToAssetListResponse(outputs []*patrimony.AssetOutput) AssetListResponse {
	assets := make([]AssetResponse, len(outputs))
	for i, output := range outputs {
		assets[i] = ToAssetResponse(output)
	}
	return AssetListResponse{
		Assets: assets,
	}
}

// ToPatrimonyHistoryResponse converts a reconstructed series to its response DTO.
func ToPatrimonyHistoryResponse(granularity string, series []entity.PatrimonyPoint) PatrimonyHistoryResponse {
	points := make([]PatrimonyPointResponse, len(series))
	for i, p := range series {
		points[i] = PatrimonyPointResponse{
			Label:            p.Label,
			Date:             p.Date.Format("2006-01-02"),
			AssetsValue:      p.AssetsValue.String(),
			InvestmentsValue: p.InvestmentsValue.String(),
			Total:            p.Total.String(),
		}
	}
	return PatrimonyHistoryResponse{
		Granularity: granularity,
		Series:      points,
	}
}
