// Package installment contains installment purchase use cases.
package installment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// UpdatePurchaseInput represents the input for purchase update. Nil
// fields are left unchanged. Changing the total recomputes the
// per-installment amount.
type UpdatePurchaseInput struct {
	UserID      uuid.UUID
	PurchaseID  uuid.UUID
	Description *string
	Category    *string
	TotalAmount *valueobject.Money
	StartDate   *time.Time
}

// UpdatePurchaseOutput represents the output of purchase update.
type UpdatePurchaseOutput struct {
	Purchase *PurchaseOutput
}

// UpdatePurchaseUseCase handles direct edits to an installment purchase.
// Edits do not retroactively rewrite ledger entries already planned.
type UpdatePurchaseUseCase struct {
	purchaseRepo adapter.InstallmentPurchaseRepository
}

// NewUpdatePurchaseUseCase creates a new UpdatePurchaseUseCase instance.
func NewUpdatePurchaseUseCase(purchaseRepo adapter.InstallmentPurchaseRepository) *UpdatePurchaseUseCase {
	return &UpdatePurchaseUseCase{
		purchaseRepo: purchaseRepo,
	}
}

// Execute performs the purchase update.
func (uc *UpdatePurchaseUseCase) Execute(ctx context.Context, input UpdatePurchaseInput) (*UpdatePurchaseOutput, error) {
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

	if input.TotalAmount != nil {
		if !input.TotalAmount.IsPositive() {
			return nil, domainerror.NewInstallmentError(
				domainerror.ErrCodeInvalidTotalAmount,
				"purchase total must be positive",
				domainerror.ErrInvalidTotalAmount,
			)
		}
		purchase.SetTotalAmount(*input.TotalAmount)
	}

	if input.Description != nil {
		purchase.Description = *input.Description
	}
	if input.Category != nil {
		purchase.Category = *input.Category
	}
	if input.StartDate != nil {
		purchase.StartDate = *input.StartDate
	}
	purchase.UpdatedAt = time.Now().UTC()

	if err := uc.purchaseRepo.Update(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to update installment purchase: %w", err)
	}

	return &UpdatePurchaseOutput{Purchase: toPurchaseOutput(purchase)}, nil
}
