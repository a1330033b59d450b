// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-planner/backend/internal/application/usecase/ledger"
)

// CreateEntryRequest represents the request body for manual entry creation.
type CreateEntryRequest struct {
	Type        string  `json:"type" binding:"required,oneof=income fixed_expense variable_expense receivable debt"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description"`
}

// UpdateEntryRequest represents the request body for entry update.
type UpdateEntryRequest struct {
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=income fixed_expense variable_expense receivable debt"`
	Category    *string  `json:"category,omitempty"`
	Amount      *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// DeleteFutureEntriesRequest represents the request body for the bulk
// removal of upcoming entries from one source.
type DeleteFutureEntriesRequest struct {
	SourceType string `json:"source_type" binding:"required,oneof=recurring installment"`
	SourceID   string `json:"source_id" binding:"required,uuid"`
}

// EntryResponse represents a single ledger entry in API responses.
type EntryResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	SourceType  string    `json:"source_type"`
	SourceID    *string   `json:"source_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EntryListResponse represents the response for listing entries.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// DeleteFutureEntriesResponse represents the response for the bulk removal.
type DeleteFutureEntriesResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// ToEntryResponse converts an EntryOutput to an EntryResponse DTO.
func ToEntryResponse(e *ledger.EntryOutput) EntryResponse {
	response := EntryResponse{
		ID:          e.ID.String(),
		Type:        string(e.Type),
		Category:    e.Category,
		Amount:      e.Amount.String(),
		Date:        e.Date.Format("2006-01-02"),
		Description: e.Description,
		SourceType:  string(e.SourceType),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}

	if e.SourceID != nil {
		idStr := e.SourceID.String()
		response.SourceID = &idStr
	}

	return response
}

// ToEntryListResponse converts a list of EntryOutput to EntryListResponse.
func ToEntryListResponse(outputs []*ledger.EntryOutput) EntryListResponse {
	entries := make([]EntryResponse, len(outputs))
	for i, output := range outputs {
		entries[i] = ToEntryResponse(output)
	}
	return EntryListResponse{
		Entries: entries,
	}
}
