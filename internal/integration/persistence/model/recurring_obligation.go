// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// RecurringObligationModel represents the recurring_obligations table in the database.
// Monetary amounts are stored as integer cents.
type RecurringObligationModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Description string         `gorm:"type:varchar(255);not null"`
	Category    string         `gorm:"type:varchar(100)"`
	Kind        string         `gorm:"type:varchar(20);not null"`
	AmountCents int64          `gorm:"type:bigint;not null"`
	Frequency   string         `gorm:"type:varchar(20);not null"`
	StartDate   time.Time      `gorm:"type:date;not null"`
	EndDate     *time.Time     `gorm:"type:date"`
	HorizonCap  int            `gorm:"not null"`
	Active      bool           `gorm:"not null;default:true"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the RecurringObligationModel.
func (RecurringObligationModel) TableName() string {
	return "recurring_obligations"
}

// ToEntity converts a RecurringObligationModel to a domain RecurringObligation entity.
func (m *RecurringObligationModel) ToEntity() *entity.RecurringObligation {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.RecurringObligation{
		ID:          m.ID,
		UserID:      m.UserID,
		Description: m.Description,
		Category:    m.Category,
		Kind:        entity.ObligationKind(m.Kind),
		Amount:      valueobject.NewMoneyFromCents(m.AmountCents),
		Schedule: entity.Schedule{
			StartDate:  m.StartDate,
			EndDate:    m.EndDate,
			Frequency:  entity.Frequency(m.Frequency),
			HorizonCap: m.HorizonCap,
		},
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// RecurringObligationFromEntity creates a RecurringObligationModel from a domain entity.
func RecurringObligationFromEntity(obligation *entity.RecurringObligation) *RecurringObligationModel {
	var deletedAt gorm.DeletedAt
	if obligation.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *obligation.DeletedAt, Valid: true}
	}

	return &RecurringObligationModel{
		ID:          obligation.ID,
		UserID:      obligation.UserID,
		Description: obligation.Description,
		Category:    obligation.Category,
		Kind:        string(obligation.Kind),
		AmountCents: obligation.Amount.Cents(),
		Frequency:   string(obligation.Schedule.Frequency),
		StartDate:   obligation.Schedule.StartDate,
		EndDate:     obligation.Schedule.EndDate,
		HorizonCap:  obligation.Schedule.HorizonCap,
		Active:      obligation.Active,
		CreatedAt:   obligation.CreatedAt,
		UpdatedAt:   obligation.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
