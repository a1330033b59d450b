// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// Create creates a single ledger entry in the database.
func (r *ledgerRepository) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	entryModel := model.LedgerEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// InsertBatch persists a batch of entries inside a single transaction so
// a schedule is never partially materialized.
func (r *ledgerRepository) InsertBatch(ctx context.Context, entries []*entity.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	entryModels := make([]*model.LedgerEntryModel, len(entries))
	for i, e := range entries {
		entryModels[i] = model.LedgerEntryFromEntity(e)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entryModels).Error; err != nil {
			return err
		}
		return nil
	})
}

// FindByID retrieves a ledger entry by its ID.
func (r *ledgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error) {
	var entryModel model.LedgerEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByFilter retrieves entries matching the filter, ordered by date.
func (r *ledgerRepository) FindByFilter(ctx context.Context, filter adapter.LedgerEntryFilter) ([]*entity.LedgerEntry, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, t := range filter.Types {
			types[i] = string(t)
		}
		query = query.Where("type IN ?", types)
	}
	if filter.SourceType != nil {
		query = query.Where("source_type = ?", string(*filter.SourceType))
	}
	if filter.SourceID != nil {
		query = query.Where("source_id = ?", *filter.SourceID)
	}

	var entryModels []model.LedgerEntryModel
	result := query.Order("date ASC").Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.LedgerEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// Update updates an existing ledger entry in the database.
func (r *ledgerRepository) Update(ctx context.Context, entry *entity.LedgerEntry) error {
	entryModel := model.LedgerEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Save(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a ledger entry from the database (soft delete).
func (r *ledgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.LedgerEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteBySourceFrom soft-deletes every entry carrying the given source
// key dated on or after the given date and returns the number of
// deleted rows.
func (r *ledgerRepository) DeleteBySourceFrom(ctx context.Context, sourceType entity.SourceType, sourceID uuid.UUID, from time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("source_type = ? AND source_id = ? AND date >= ?", string(sourceType), sourceID, from).
		Delete(&model.LedgerEntryModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
