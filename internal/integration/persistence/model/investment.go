// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// InvestmentModel represents the investments table in the database.
// Monetary amounts are stored as integer cents.
type InvestmentModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name                string         `gorm:"type:varchar(255);not null"`
	CurrentValueCents   int64          `gorm:"type:bigint;not null"`
	EstimatedAnnualRate float64        `gorm:"type:decimal(8,4);not null"`
	CreatedAt           time.Time      `gorm:"not null"`
	UpdatedAt           time.Time      `gorm:"not null"`
	DeletedAt           gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an InvestmentModel to a domain Investment entity.
func (m *InvestmentModel) ToEntity() *entity.Investment {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Investment{
		ID:                  m.ID,
		UserID:              m.UserID,
		Name:                m.Name,
		CurrentValue:        valueobject.NewMoneyFromCents(m.CurrentValueCents),
		EstimatedAnnualRate: m.EstimatedAnnualRate,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
		DeletedAt:           deletedAt,
	}
}

// InvestmentFromEntity creates an InvestmentModel from a domain entity.
func InvestmentFromEntity(investment *entity.Investment) *InvestmentModel {
	var deletedAt gorm.DeletedAt
	if investment.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *investment.DeletedAt, Valid: true}
	}

	return &InvestmentModel{
		ID:                  investment.ID,
		UserID:              investment.UserID,
		Name:                investment.Name,
		CurrentValueCents:   investment.CurrentValue.Cents(),
		EstimatedAnnualRate: investment.EstimatedAnnualRate,
		CreatedAt:           investment.CreatedAt,
		UpdatedAt:           investment.UpdatedAt,
		DeletedAt:           deletedAt,
	}
}

// InvestmentEventModel represents the investment_events table in the
// database. Events are append-only and never soft-deleted; the history
// must survive the investment being closed.
type InvestmentEventModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvestmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind         string    `gorm:"type:varchar(20);not null"`
	AmountCents  int64     `gorm:"type:bigint;not null"`
	OccurredAt   time.Time `gorm:"not null;index"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the InvestmentEventModel.
func (InvestmentEventModel) TableName() string {
	return "investment_events"
}

// ToEntity converts an InvestmentEventModel to a domain InvestmentEvent entity.
func (m *InvestmentEventModel) ToEntity() *entity.InvestmentEvent {
	return &entity.InvestmentEvent{
		ID:           m.ID,
		InvestmentID: m.InvestmentID,
		UserID:       m.UserID,
		Kind:         entity.EventKind(m.Kind),
		Amount:       valueobject.NewMoneyFromCents(m.AmountCents),
		OccurredAt:   m.OccurredAt,
		CreatedAt:    m.CreatedAt,
	}
}

// InvestmentEventFromEntity creates an InvestmentEventModel from a domain entity.
func InvestmentEventFromEntity(event *entity.InvestmentEvent) *InvestmentEventModel {
	return &InvestmentEventModel{
		ID:           event.ID,
		InvestmentID: event.InvestmentID,
		UserID:       event.UserID,
		Kind:         string(event.Kind),
		AmountCents:  event.Amount.Cents(),
		OccurredAt:   event.OccurredAt,
		CreatedAt:    event.CreatedAt,
	}
}
