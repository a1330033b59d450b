// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/persistence/model"
)

// patrimonyAssetRepository implements the adapter.PatrimonyAssetRepository interface.
type patrimonyAssetRepository struct {
	db *gorm.DB
}

// NewPatrimonyAssetRepository creates a new patrimony asset repository instance.
func NewPatrimonyAssetRepository(db *gorm.DB) adapter.PatrimonyAssetRepository {
	return &patrimonyAssetRepository{
		db: db,
	}
}

// Create creates a new patrimony asset in the database.
func (r *patrimonyAssetRepository) Create(ctx context.Context, asset *entity.PatrimonyAsset) error {
	assetModel := model.PatrimonyAssetFromEntity(asset)
	result := r.db.WithContext(ctx).Create(assetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an asset by its ID.
func (r *patrimonyAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PatrimonyAsset, error) {
	var assetModel model.PatrimonyAssetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&assetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAssetNotFound
		}
		return nil, result.Error
	}
	return assetModel.ToEntity(), nil
}

// FindByUser retrieves all assets for a given user.
func (r *patrimonyAssetRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PatrimonyAsset, error) {
	var assetModels []model.PatrimonyAssetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&assetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	assets := make([]*entity.PatrimonyAsset, len(assetModels))
	for i, am := range assetModels {
		assets[i] = am.ToEntity()
	}
	return assets, nil
}

// Update updates an existing asset in the database.
func (r *patrimonyAssetRepository) Update(ctx context.Context, asset *entity.PatrimonyAsset) error {
	assetModel := model.PatrimonyAssetFromEntity(asset)
	result := r.db.WithContext(ctx).Save(assetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an asset from the database (soft delete).
func (r *patrimonyAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PatrimonyAssetModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
