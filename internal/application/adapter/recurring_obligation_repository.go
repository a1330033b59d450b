// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// RecurringObligationRepository defines the interface for recurring
// obligation persistence operations.
type RecurringObligationRepository interface {
	// Create creates a new recurring obligation.
	Create(ctx context.Context, obligation *entity.RecurringObligation) error

	// FindByID retrieves an obligation by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringObligation, error)

	// FindByUser retrieves all obligations for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringObligation, error)

	// Update updates an existing obligation.
	Update(ctx context.Context, obligation *entity.RecurringObligation) error

	// Delete soft-deletes an obligation. Ledger entries already
	// materialized from it are not touched.
	Delete(ctx context.Context, id uuid.UUID) error
}
