// Package patrimony contains patrimony asset and net-worth history use cases.
package patrimony

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// UpdateAssetInput represents the input for asset update. Nil fields are
// left unchanged.
type UpdateAssetInput struct {
	UserID          uuid.UUID
	AssetID         uuid.UUID
	Name            *string
	Category        *string
	EstimatedValue  *valueobject.Money
	AcquisitionDate *time.Time
}

// UpdateAssetOutput represents the output of asset update.
type UpdateAssetOutput struct {
	Asset *AssetOutput
}

// UpdateAssetUseCase handles edits to a patrimony asset.
type UpdateAssetUseCase struct {
	assetRepo   adapter.PatrimonyAssetRepository
	seriesCache adapter.PatrimonySeriesCache
}

// NewUpdateAssetUseCase creates a new UpdateAssetUseCase instance.
func NewUpdateAssetUseCase(
	assetRepo adapter.PatrimonyAssetRepository,
	seriesCache adapter.PatrimonySeriesCache,
) *UpdateAssetUseCase {
	return &UpdateAssetUseCase{
		assetRepo:   assetRepo,
		seriesCache: seriesCache,
	}
}

// Execute performs the asset update.
func (uc *UpdateAssetUseCase) Execute(ctx context.Context, input UpdateAssetInput) (*UpdateAssetOutput, error) {
	asset, err := uc.assetRepo.FindByID(ctx, input.AssetID)
	if err != nil {
		return nil, domainerror.NewPatrimonyError(
			domainerror.ErrCodeAssetNotFound,
			"patrimony asset not found",
			domainerror.ErrAssetNotFound,
		)
	}

	if asset.UserID != input.UserID {
		return nil, domainerror.NewPatrimonyError(
			domainerror.ErrCodeNotAuthorizedAsset,
			"patrimony asset does not belong to user",
			domainerror.ErrNotAuthorizedToModifyAsset,
		)
	}

	if input.EstimatedValue != nil {
		if !input.EstimatedValue.IsPositive() {
			return nil, domainerror.NewPatrimonyError(
				domainerror.ErrCodeInvalidAssetValue,
				"asset value must be positive",
				domainerror.ErrInvalidAssetValue,
			)
		}
		asset.EstimatedValue = *input.EstimatedValue
	}

	if input.Name != nil {
		asset.Name = *input.Name
	}
	if input.Category != nil {
		asset.Category = *input.Category
	}
	if input.AcquisitionDate != nil {
		asset.AcquisitionDate = input.AcquisitionDate
	}
	asset.UpdatedAt = time.Now().UTC()

	if err := uc.assetRepo.Update(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to update patrimony asset: %w", err)
	}

	if err := uc.seriesCache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("Failed to invalidate patrimony series cache", "error", err)
	}

	return &UpdateAssetOutput{Asset: toAssetOutput(asset)}, nil
}
