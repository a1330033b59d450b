// Package installment contains installment purchase use cases.
package installment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// DeletePurchaseInput represents the input for purchase deletion.
type DeletePurchaseInput struct {
	UserID     uuid.UUID
	PurchaseID uuid.UUID
}

// DeletePurchaseOutput represents the output of purchase deletion.
type DeletePurchaseOutput struct {
	Deleted bool
}

// DeletePurchaseUseCase removes an installment purchase. Planned ledger
// entries are left in place; removing future entries is a separate,
// explicit ledger operation.
type DeletePurchaseUseCase struct {
	purchaseRepo adapter.InstallmentPurchaseRepository
}

// NewDeletePurchaseUseCase creates a new DeletePurchaseUseCase instance.
func NewDeletePurchaseUseCase(purchaseRepo adapter.InstallmentPurchaseRepository) *DeletePurchaseUseCase {
	return &DeletePurchaseUseCase{
		purchaseRepo: purchaseRepo,
	}
}

// Execute performs the purchase deletion.
func (uc *DeletePurchaseUseCase) Execute(ctx context.Context, input DeletePurchaseInput) (*DeletePurchaseOutput, error) {
	purchase, err := uc.purchaseRepo.FindByID(ctx, input.PurchaseID)
	if err != nil {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodePurchaseNotFound,
			"installment purchase not found",
			domainerror.ErrPurchaseNotFound,
		)
	}

	if purchase.UserID != input.UserID {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodeNotAuthorizedPurchase,
			"installment purchase does not belong to user",
			domainerror.ErrNotAuthorizedToModifyPurchase,
		)
	}

	if err := uc.purchaseRepo.Delete(ctx, purchase.ID); err != nil {
		return nil, fmt.Errorf("failed to delete installment purchase: %w", err)
	}

	return &DeletePurchaseOutput{Deleted: true}, nil
}
