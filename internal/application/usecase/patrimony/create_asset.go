// Package patrimony contains patrimony asset and net-worth history use cases.
package patrimony

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// CreateAssetInput represents the input for asset creation.
type CreateAssetInput struct {
	UserID          uuid.UUID
	Name            string
	Category        string
	EstimatedValue  valueobject.Money
	AcquisitionDate *time.Time
}

// CreateAssetOutput represents the output of asset creation.
type CreateAssetOutput struct {
	Asset *AssetOutput
}

// CreateAssetUseCase handles patrimony asset creation.
type CreateAssetUseCase struct {
	assetRepo   adapter.PatrimonyAssetRepository
	seriesCache adapter.PatrimonySeriesCache
}

// NewCreateAssetUseCase creates a new CreateAssetUseCase instance.
func NewCreateAssetUseCase(
	assetRepo adapter.PatrimonyAssetRepository,
	seriesCache adapter.PatrimonySeriesCache,
) *CreateAssetUseCase {
	return &CreateAssetUseCase{
		assetRepo:   assetRepo,
		seriesCache: seriesCache,
	}
}

// Execute performs the asset creation.
func (uc *CreateAssetUseCase) Execute(ctx context.Context, input CreateAssetInput) (*CreateAssetOutput, error) {
	if !input.EstimatedValue.IsPositive() {
		return nil, domainerror.NewPatrimonyError(
			domainerror.ErrCodeInvalidAssetValue,
			"asset value must be positive",
			domainerror.ErrInvalidAssetValue,
		)
	}

	asset := entity.NewPatrimonyAsset(
		input.UserID,
		input.Name,
		input.Category,
		input.EstimatedValue,
		input.AcquisitionDate,
	)

	if err := uc.assetRepo.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create patrimony asset: %w", err)
	}

	if err := uc.seriesCache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("Failed to invalidate patrimony series cache", "error", err)
	}

	slog.Info("Created patrimony asset", "assetID", asset.ID, "userID", asset.UserID)

	return &CreateAssetOutput{Asset: toAssetOutput(asset)}, nil
}
