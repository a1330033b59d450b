// Package patrimony contains patrimony asset and net-worth history use cases.
package patrimony

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// DeleteAssetInput represents the input for asset deletion.
type DeleteAssetInput struct {
	UserID  uuid.UUID
	AssetID uuid.UUID
}

// DeleteAssetOutput represents the output of asset deletion.
type DeleteAssetOutput struct {
	Deleted bool
}

// DeleteAssetUseCase removes a patrimony asset.
type DeleteAssetUseCase struct {
	assetRepo   adapter.PatrimonyAssetRepository
	seriesCache adapter.PatrimonySeriesCache
}

// NewDeleteAssetUseCase creates a new DeleteAssetUseCase instance.
func NewDeleteAssetUseCase(
	assetRepo adapter.PatrimonyAssetRepository,
	seriesCache adapter.PatrimonySeriesCache,
) *DeleteAssetUseCase {
	return &DeleteAssetUseCase{
		assetRepo:   assetRepo,
		seriesCache: seriesCache,
	}
}

// Execute performs the asset deletion.
func (uc *DeleteAssetUseCase) Execute(ctx context.Context, input DeleteAssetInput) (*DeleteAssetOutput, error) {
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

	if err := uc.assetRepo.Delete(ctx, asset.ID); err != nil {
		return nil, fmt.Errorf("failed to delete patrimony asset: %w", err)
	}

	if err := uc.seriesCache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("Failed to invalidate patrimony series cache", "error", err)
	}

	return &DeleteAssetOutput{Deleted: true}, nil
}
