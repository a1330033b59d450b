// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// InstallmentPurchaseRepository defines the interface for installment
// purchase persistence operations.
type InstallmentPurchaseRepository interface {
	// Create creates a new installment purchase.
	Create(ctx context.Context, purchase *entity.InstallmentPurchase) error

	// FindByID retrieves a purchase by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InstallmentPurchase, error)

	// FindByUser retrieves all purchases for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InstallmentPurchase, error)

	// Update updates an existing purchase.
	Update(ctx context.Context, purchase *entity.InstallmentPurchase) error

	// Delete soft-deletes a purchase. Ledger entries already planned
	// from it are not touched.
	Delete(ctx context.Context, id uuid.UUID) error
}
