// Package patrimony contains patrimony asset and net-worth history use cases.
package patrimony

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
)

// ListAssetsInput represents the input for listing assets.
type ListAssetsInput struct {
	UserID uuid.UUID
}

// ListAssetsOutput represents the output of listing assets.
type ListAssetsOutput struct {
	Assets []*AssetOutput
}

// ListAssetsUseCase handles listing a user's patrimony assets.
type ListAssetsUseCase struct {
	assetRepo adapter.PatrimonyAssetRepository
}

// NewListAssetsUseCase creates a new ListAssetsUseCase instance.
func NewListAssetsUseCase(assetRepo adapter.PatrimonyAssetRepository) *ListAssetsUseCase {
	return &ListAssetsUseCase{
		assetRepo: assetRepo,
	}
}

// Execute retrieves all assets for the user.
func (uc *ListAssetsUseCase) Execute(ctx context.Context, input ListAssetsInput) (*ListAssetsOutput, error) {
	assets, err := uc.assetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patrimony assets: %w", err)
	}

	outputs := make([]*AssetOutput, len(assets))
	for i, a := range assets {
		outputs[i] = toAssetOutput(a)
	}

	return &ListAssetsOutput{Assets: outputs}, nil
}
