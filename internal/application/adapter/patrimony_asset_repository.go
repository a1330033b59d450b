// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// PatrimonyAssetRepository defines the interface for patrimony asset
// persistence operations.
type PatrimonyAssetRepository interface {
	// Create creates a new patrimony asset.
	Create(ctx context.Context, asset *entity.PatrimonyAsset) error

	// FindByID retrieves an asset by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PatrimonyAsset, error)

	// FindByUser retrieves all assets for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PatrimonyAsset, error)

	// Update updates an existing asset.
	Update(ctx context.Context, asset *entity.PatrimonyAsset) error

	// Delete soft-deletes an asset.
	Delete(ctx context.Context, id uuid.UUID) error
}
