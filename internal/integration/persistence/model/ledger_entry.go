// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// LedgerEntryModel represents the ledger_entries table in the database.
// Monetary amounts are stored as integer cents. The source columns form
// a weak reference: bulk operations match on them, but there is no
// foreign key so entries survive their source being deleted.
type LedgerEntryModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Type        string         `gorm:"type:varchar(20);not null"`
	Category    string         `gorm:"type:varchar(100)"`
	AmountCents int64          `gorm:"type:bigint;not null"`
	Date        time.Time      `gorm:"type:date;not null;index"`
	Description string         `gorm:"type:varchar(255)"`
	SourceType  string         `gorm:"type:varchar(20);not null;default:'none';index:idx_ledger_source"`
	SourceID    *uuid.UUID     `gorm:"type:uuid;index:idx_ledger_source"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the LedgerEntryModel.
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToEntity converts a LedgerEntryModel to a domain LedgerEntry entity.
func (m *LedgerEntryModel) ToEntity() *entity.LedgerEntry {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.LedgerEntry{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        entity.EntryType(m.Type),
		Category:    m.Category,
		Amount:      valueobject.NewMoneyFromCents(m.AmountCents),
		Date:        m.Date,
		Description: m.Description,
		SourceType:  entity.SourceType(m.SourceType),
		SourceID:    m.SourceID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// LedgerEntryFromEntity creates a LedgerEntryModel from a domain entity.
func LedgerEntryFromEntity(entry *entity.LedgerEntry) *LedgerEntryModel {
	var deletedAt gorm.DeletedAt
	if entry.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *entry.DeletedAt, Valid: true}
	}

	return &LedgerEntryModel{
		ID:          entry.ID,
		UserID:      entry.UserID,
		Type:        string(entry.Type),
		Category:    entry.Category,
		AmountCents: entry.Amount.Cents(),
		Date:        entry.Date,
		Description: entry.Description,
		SourceType:  string(entry.SourceType),
		SourceID:    entry.SourceID,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
