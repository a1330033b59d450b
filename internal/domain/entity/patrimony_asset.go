// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// PatrimonyAsset is a valued possession (vehicle, property, equipment)
// that contributes to net worth from its acquisition date forward. Assets
// are assumed constant-valued once acquired; they are never discounted.
type PatrimonyAsset struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Category        string
	EstimatedValue  valueobject.Money
	AcquisitionDate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time // Soft-delete support
}

// NewPatrimonyAsset creates a new PatrimonyAsset entity.
func NewPatrimonyAsset(
	userID uuid.UUID,
	name string,
	category string,
	estimatedValue valueobject.Money,
	acquisitionDate *time.Time,
) *PatrimonyAsset {
	now := time.Now().UTC()

	return &PatrimonyAsset{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            name,
		Category:        category,
		EstimatedValue:  estimatedValue,
		AcquisitionDate: acquisitionDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// AcquiredBy reports whether the asset was already owned at the given
// moment. Assets without an acquisition date fall back to their creation
// date.
func (a *PatrimonyAsset) AcquiredBy(t time.Time) bool {
	acquired := a.CreatedAt
	if a.AcquisitionDate != nil {
		acquired = *a.AcquisitionDate
	}
	return !acquired.After(t)
}

// PatrimonyPoint is one sample of the reconstructed net-worth series.
type PatrimonyPoint struct {
	Label            string            `json:"label"`
	Date             time.Time         `json:"date"`
	AssetsValue      valueobject.Money `json:"assets_value"`
	InvestmentsValue valueobject.Money `json:"investments_value"`
	Total            valueobject.Money `json:"total"`
}
