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

// installmentPurchaseRepository implements the adapter.InstallmentPurchaseRepository interface.
type installmentPurchaseRepository struct {
	db *gorm.DB
}

// NewInstallmentPurchaseRepository creates a new installment purchase repository instance.
func NewInstallmentPurchaseRepository(db *gorm.DB) adapter.InstallmentPurchaseRepository {
	return &installmentPurchaseRepository{
		db: db,
	}
}

// Create creates a new installment purchase in the database.
func (r *installmentPurchaseRepository) Create(ctx context.Context, purchase *entity.InstallmentPurchase) error {
	purchaseModel := model.InstallmentPurchaseFromEntity(purchase)
	result := r.db.WithContext(ctx).Create(purchaseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a purchase by its ID.
func (r *installmentPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InstallmentPurchase, error) {
	var purchaseModel model.InstallmentPurchaseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&purchaseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPurchaseNotFound
		}
		return nil, result.Error
	}
	return purchaseModel.ToEntity(), nil
}

// FindByUser retrieves all purchases for a given user.
func (r *installmentPurchaseRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InstallmentPurchase, error) {
	var purchaseModels []model.InstallmentPurchaseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&purchaseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	purchases := make([]*entity.InstallmentPurchase, len(purchaseModels))
	for i, pm := range purchaseModels {
		purchases[i] = pm.ToEntity()
	}
	return purchases, nil
}

// Update updates an existing purchase in the database.
func (r *installmentPurchaseRepository) Update(ctx context.Context, purchase *entity.InstallmentPurchase) error {
	purchaseModel := model.InstallmentPurchaseFromEntity(purchase)
	result := r.db.WithContext(ctx).Save(purchaseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a purchase from the database (soft delete).
func (r *installmentPurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.InstallmentPurchaseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
