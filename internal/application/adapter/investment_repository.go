// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// InvestmentRepository defines the interface for investment and
// investment event persistence operations. Events are append-only; there
// is no update or delete for them.
type InvestmentRepository interface {
	// Create creates a new investment.
	Create(ctx context.Context, investment *entity.Investment) error

	// FindByID retrieves an investment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error)

	// FindByUser retrieves all investments for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Investment, error)

	// Update updates an existing investment.
	Update(ctx context.Context, investment *entity.Investment) error

	// Delete soft-deletes an investment. Used when a withdrawal closes
	// the position.
	Delete(ctx context.Context, id uuid.UUID) error

	// AppendEvent appends an immutable contribution/withdrawal event.
	AppendEvent(ctx context.Context, event *entity.InvestmentEvent) error

	// UpdateWithEvent persists a balance change and its event atomically.
	UpdateWithEvent(ctx context.Context, investment *entity.Investment, event *entity.InvestmentEvent) error

	// DeleteWithEvent soft-deletes a closed investment and appends the
	// closing withdrawal event atomically.
	DeleteWithEvent(ctx context.Context, investment *entity.Investment, event *entity.InvestmentEvent) error

	// FindEventsByInvestmentIDs retrieves every event belonging to the
	// given investments, ordered by occurrence time.
	FindEventsByInvestmentIDs(ctx context.Context, investmentIDs []uuid.UUID) ([]*entity.InvestmentEvent, error)
}
