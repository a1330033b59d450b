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

// recurringObligationRepository implements the adapter.RecurringObligationRepository interface.
type recurringObligationRepository struct {
	db *gorm.DB
}

// NewRecurringObligationRepository creates a new recurring obligation repository instance.
func NewRecurringObligationRepository(db *gorm.DB) adapter.RecurringObligationRepository {
	return &recurringObligationRepository{
		db: db,
	}
}

// Create creates a new recurring obligation in the database.
func (r *recurringObligationRepository) Create(ctx context.Context, obligation *entity.RecurringObligation) error {
	obligationModel := model.RecurringObligationFromEntity(obligation)
	result := r.db.WithContext(ctx).Create(obligationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an obligation by its ID.
func (r *recurringObligationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringObligation, error) {
	var obligationModel model.RecurringObligationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&obligationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrObligationNotFound
		}
		return nil, result.Error
	}
	return obligationModel.ToEntity(), nil
}

// FindByUser retrieves all obligations for a given user.
func (r *recurringObligationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringObligation, error) {
	var obligationModels []model.RecurringObligationModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&obligationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	obligations := make([]*entity.RecurringObligation, len(obligationModels))
	for i, om := range obligationModels {
		obligations[i] = om.ToEntity()
	}
	return obligations, nil
}

// Update updates an existing obligation in the database.
func (r *recurringObligationRepository) Update(ctx context.Context, obligation *entity.RecurringObligation) error {
	obligationModel := model.RecurringObligationFromEntity(obligation)
	result := r.db.WithContext(ctx).Save(obligationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an obligation from the database (soft delete).
func (r *recurringObligationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RecurringObligationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
