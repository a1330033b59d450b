// Package patrimony contains patrimony asset and net-worth history use cases.
package patrimony

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// AssetOutput is the use case representation of a patrimony asset.
type AssetOutput struct {
	ID              uuid.UUID
	Name            string
	Category        string
	EstimatedValue  valueobject.Money
	AcquisitionDate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func toAssetOutput(asset *entity.PatrimonyAsset) *AssetOutput {
	return &AssetOutput{
		ID:              asset.ID,
		Name:            asset.Name,
		Category:        asset.Category,
		EstimatedValue:  asset.EstimatedValue,
		AcquisitionDate: asset.AcquisitionDate,
		CreatedAt:       asset.CreatedAt,
		UpdatedAt:       asset.UpdatedAt,
	}
}
