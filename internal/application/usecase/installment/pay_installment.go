// Package installment contains installment purchase use cases.
package installment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// PayInstallmentInput represents the input for paying the next installment.
type PayInstallmentInput struct {
	UserID     uuid.UUID
	PurchaseID uuid.UUID
}

// PayInstallmentOutput represents the output of paying an installment.
// Paid is false when the purchase was already fully paid and the request
// was a no-op.
type PayInstallmentOutput struct {
	Purchase *PurchaseOutput
	Paid     bool
}

// PayInstallmentUseCase records the payment of the next installment of a
// purchase. Paying a fully-paid purchase is a no-op rather than an
// error: it is only reachable through stale UI state.
type PayInstallmentUseCase struct {
	purchaseRepo adapter.InstallmentPurchaseRepository
}

// NewPayInstallmentUseCase creates a new PayInstallmentUseCase instance.
func NewPayInstallmentUseCase(purchaseRepo adapter.InstallmentPurchaseRepository) *PayInstallmentUseCase {
	return &PayInstallmentUseCase{
		purchaseRepo: purchaseRepo,
	}
}

// Execute performs the payment.
func (uc *PayInstallmentUseCase) Execute(ctx context.Context, input PayInstallmentInput) (*PayInstallmentOutput, error) {
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

	paid := purchase.PayNext()
	if paid {
		if err := uc.purchaseRepo.Update(ctx, purchase); err != nil {
			return nil, fmt.Errorf("failed to update installment purchase: %w", err)
		}
	}

	return &PayInstallmentOutput{
		Purchase: toPurchaseOutput(purchase),
		Paid:     paid,
	}, nil
}
