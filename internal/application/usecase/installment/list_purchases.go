// Package installment contains installment purchase use cases.
package installment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
)

// ListPurchasesInput represents the input for listing purchases.
type ListPurchasesInput struct {
	UserID uuid.UUID
}

// ListPurchasesOutput represents the output of listing purchases.
type ListPurchasesOutput struct {
	Purchases []*PurchaseOutput
}

// ListPurchasesUseCase handles listing a user's installment purchases.
type ListPurchasesUseCase struct {
	purchaseRepo adapter.InstallmentPurchaseRepository
}

// NewListPurchasesUseCase creates a new ListPurchasesUseCase instance.
func NewListPurchasesUseCase(purchaseRepo adapter.InstallmentPurchaseRepository) *ListPurchasesUseCase {
	return &ListPurchasesUseCase{
		purchaseRepo: purchaseRepo,
	}
}

// Execute retrieves all purchases for the user.
func (uc *ListPurchasesUseCase) Execute(ctx context.Context, input ListPurchasesInput) (*ListPurchasesOutput, error) {
	purchases, err := uc.purchaseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list installment purchases: %w", err)
	}

	outputs := make([]*PurchaseOutput, len(purchases))
	for i, p := range purchases {
		outputs[i] = toPurchaseOutput(p)
	}

	return &ListPurchasesOutput{Purchases: outputs}, nil
}
