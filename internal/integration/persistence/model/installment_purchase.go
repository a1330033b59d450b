// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// InstallmentPurchaseModel represents the installment_purchases table in the database.
// Monetary amounts are stored as integer cents.
type InstallmentPurchaseModel struct {
	ID                     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID                 uuid.UUID      `gorm:"type:uuid;not null;index"`
	Description            string         `gorm:"type:varchar(255);not null"`
	Category               string         `gorm:"type:varchar(100)"`
	TotalAmountCents       int64          `gorm:"type:bigint;not null"`
	InstallmentCount       int            `gorm:"not null"`
	InstallmentAmountCents int64          `gorm:"type:bigint;not null"`
	PaidCount              int            `gorm:"not null;default:0"`
	StartDate              time.Time      `gorm:"type:date;not null"`
	Active                 bool           `gorm:"not null;default:true"`
	CreatedAt              time.Time      `gorm:"not null"`
	UpdatedAt              time.Time      `gorm:"not null"`
	DeletedAt              gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the InstallmentPurchaseModel.
func (InstallmentPurchaseModel) TableName() string {
	return "installment_purchases"
}

// ToEntity converts an InstallmentPurchaseModel to a domain InstallmentPurchase entity.
func (m *InstallmentPurchaseModel) ToEntity() *entity.InstallmentPurchase {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.InstallmentPurchase{
		ID:                m.ID,
		UserID:            m.UserID,
		Description:       m.Description,
		Category:          m.Category,
		TotalAmount:       valueobject.NewMoneyFromCents(m.TotalAmountCents),
		InstallmentCount:  m.InstallmentCount,
		InstallmentAmount: valueobject.NewMoneyFromCents(m.InstallmentAmountCents),
		PaidCount:         m.PaidCount,
		StartDate:         m.StartDate,
		Active:            m.Active,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}

// InstallmentPurchaseFromEntity creates an InstallmentPurchaseModel from a domain entity.
func InstallmentPurchaseFromEntity(purchase *entity.InstallmentPurchase) *InstallmentPurchaseModel {
	var deletedAt gorm.DeletedAt
	if purchase.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *purchase.DeletedAt, Valid: true}
	}

	return &InstallmentPurchaseModel{
		ID:                     purchase.ID,
		UserID:                 purchase.UserID,
		Description:            purchase.Description,
		Category:               purchase.Category,
		TotalAmountCents:       purchase.TotalAmount.Cents(),
		InstallmentCount:       purchase.InstallmentCount,
		InstallmentAmountCents: purchase.InstallmentAmount.Cents(),
		PaidCount:              purchase.PaidCount,
		StartDate:              purchase.StartDate,
		Active:                 purchase.Active,
		CreatedAt:              purchase.CreatedAt,
		UpdatedAt:              purchase.UpdatedAt,
		DeletedAt:              deletedAt,
	}
}
