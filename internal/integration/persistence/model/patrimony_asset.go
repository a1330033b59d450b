// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// PatrimonyAssetModel represents the patrimony_assets table in the database.
// Monetary amounts are stored as integer cents.
type PatrimonyAssetModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name                string         `gorm:"type:varchar(255);not null"`
	Category            string         `gorm:"type:varchar(100)"`
	EstimatedValueCents int64          `gorm:"type:bigint;not null"`
	AcquisitionDate     *time.Time     `gorm:"type:date"`
	CreatedAt           time.Time      `gorm:"not null"`
	UpdatedAt           time.Time      `gorm:"not null"`
	DeletedAt           gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the PatrimonyAssetModel.
func (PatrimonyAssetModel) TableName() string {
	return "patrimony_assets"
}

// ToEntity converts a PatrimonyAssetModel to a domain PatrimonyAsset entity.
func (m *PatrimonyAssetModel) ToEntity() *entity.PatrimonyAsset {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.PatrimonyAsset{
		ID:              m.ID,
		UserID:          m.UserID,
		Name:            m.Name,
		Category:        m.Category,
		EstimatedValue:  valueobject.NewMoneyFromCents(m.EstimatedValueCents),
		AcquisitionDate: m.AcquisitionDate,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		DeletedAt:       deletedAt,
	}
}

// PatrimonyAssetFromEntity creates a PatrimonyAssetModel from a domain entity.
func PatrimonyAssetFromEntity(asset *entity.PatrimonyAsset) *PatrimonyAssetModel {
	var deletedAt gorm.DeletedAt
	if asset.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *asset.DeletedAt, Valid: true}
	}

	return &PatrimonyAssetModel{
		ID:                  asset.ID,
		UserID:              asset.UserID,
		Name:                asset.Name,
		Category:            asset.Category,
		EstimatedValueCents: asset.EstimatedValue.Cents(),
		AcquisitionDate:     asset.AcquisitionDate,
		CreatedAt:           asset.CreatedAt,
		UpdatedAt:           asset.UpdatedAt,
		DeletedAt:           deletedAt,
	}
}
