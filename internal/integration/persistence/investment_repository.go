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

// investmentRepository implements the adapter.InvestmentRepository interface.
type investmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository instance.
func NewInvestmentRepository(db *gorm.DB) adapter.InvestmentRepository {
	return &investmentRepository{
		db: db,
	}
}

// Create creates a new investment in the database.
func (r *investmentRepository) Create(ctx context.Context, investment *entity.Investment) error {
	investmentModel := model.InvestmentFromEntity(investment)
	result := r.db.WithContext(ctx).Create(investmentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an investment by its ID.
func (r *investmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error) {
	var investmentModel model.InvestmentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&investmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvestmentNotFound
		}
		return nil, result.Error
	}
	return investmentModel.ToEntity(), nil
}

// FindByUser retrieves all investments for a given user.
func (r *investmentRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Investment, error) {
	var investmentModels []model.InvestmentModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&investmentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	investments := make([]*entity.Investment, len(investmentModels))
	for i, im := range investmentModels {
		investments[i] = im.ToEntity()
	}
	return investments, nil
}

// Update updates an existing investment in the database.
func (r *investmentRepository) Update(ctx context.Context, investment *entity.Investment) error {
	investmentModel := model.InvestmentFromEntity(investment)
	result := r.db.WithContext(ctx).Save(investmentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an investment from the database (soft delete). Its
// events are kept.
func (r *investmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.InvestmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// AppendEvent appends an immutable contribution/withdrawal event.
func (r *investmentRepository) AppendEvent(ctx context.Context, event *entity.InvestmentEvent) error {
	eventModel := model.InvestmentEventFromEntity(event)
	result := r.db.WithContext(ctx).Create(eventModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateWithEvent persists a balance change and its event in a single
// transaction so the event log never disagrees with the balance.
func (r *investmentRepository) UpdateWithEvent(ctx context.Context, investment *entity.Investment, event *entity.InvestmentEvent) error {
	investmentModel := model.InvestmentFromEntity(investment)
	eventModel := model.InvestmentEventFromEntity(event)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(investmentModel).Error; err != nil {
			return err
		}
		if err := tx.Create(eventModel).Error; err != nil {
			return err
		}
		return nil
	})
}

// DeleteWithEvent soft-deletes a closed investment and appends the
// closing withdrawal event in a single transaction.
func (r *investmentRepository) DeleteWithEvent(ctx context.Context, investment *entity.Investment, event *entity.InvestmentEvent) error {
	eventModel := model.InvestmentEventFromEntity(event)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(eventModel).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.InvestmentModel{}, "id = ?", investment.ID).Error; err != nil {
			return err
		}
		return nil
	})
}

// FindEventsByInvestmentIDs retrieves every event belonging to the given
// investments, ordered by occurrence time.
func (r *investmentRepository) FindEventsByInvestmentIDs(ctx context.Context, investmentIDs []uuid.UUID) ([]*entity.InvestmentEvent, error) {
	if len(investmentIDs) == 0 {
		return nil, nil
	}

	var eventModels []model.InvestmentEventModel
	result := r.db.WithContext(ctx).
		Where("investment_id IN ?", investmentIDs).
		Order("occurred_at ASC").
		Find(&eventModels)
	if result.Error != nil {
		return nil, result.Error
	}

	events := make([]*entity.InvestmentEvent, len(eventModels))
	for i, em := range eventModels {
		events[i] = em.ToEntity()
	}
	return events, nil
}
