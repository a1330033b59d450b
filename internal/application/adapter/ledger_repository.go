// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// LedgerEntryFilter defines filter options for listing ledger entries.
type LedgerEntryFilter struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Types      []entity.EntryType
	SourceType *entity.SourceType
	SourceID   *uuid.UUID
}

// LedgerRepository defines the interface for ledger entry persistence operations.
type LedgerRepository interface {
	// Create creates a single ledger entry.
	Create(ctx context.Context, entry *entity.LedgerEntry) error

	// InsertBatch persists a batch of entries atomically: either every
	// entry is committed or none is. A schedule must never be left
	// partially materialized.
	InsertBatch(ctx context.Context, entries []*entity.LedgerEntry) error

	// FindByID retrieves a ledger entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error)

	// FindByFilter retrieves entries matching the filter, ordered by date.
	FindByFilter(ctx context.Context, filter LedgerEntryFilter) ([]*entity.LedgerEntry, error)

	// Update updates an existing ledger entry.
	Update(ctx context.Context, entry *entity.LedgerEntry) error

	// Delete soft-deletes a single ledger entry.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteBySourceFrom soft-deletes every entry carrying the given
	// source key whose date is on or after the given date, and returns
	// the number of deleted rows. Entries dated earlier are never
	// touched.
	DeleteBySourceFrom(ctx context.Context, sourceType entity.SourceType, sourceID uuid.UUID, from time.Time) (int64, error)
}
