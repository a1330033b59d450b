// Package installment contains installment purchase use cases.
package installment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// CreatePurchaseInput represents the input for purchase creation.
type CreatePurchaseInput struct {
	UserID           uuid.UUID
	Description      string
	Category         string
	TotalAmount      valueobject.Money
	InstallmentCount int
	StartDate        time.Time
}

// CreatePurchaseOutput represents the output of purchase creation.
type CreatePurchaseOutput struct {
	Purchase     *PurchaseOutput
	EntriesCount int
}

// CreatePurchaseUseCase handles installment purchase creation and the
// atomic insertion of its planned ledger entries.
type CreatePurchaseUseCase struct {
	purchaseRepo adapter.InstallmentPurchaseRepository
	ledgerRepo   adapter.LedgerRepository
}

// NewCreatePurchaseUseCase creates a new CreatePurchaseUseCase instance.
func NewCreatePurchaseUseCase(
	purchaseRepo adapter.InstallmentPurchaseRepository,
	ledgerRepo adapter.LedgerRepository,
) *CreatePurchaseUseCase {
	return &CreatePurchaseUseCase{
		purchaseRepo: purchaseRepo,
		ledgerRepo:   ledgerRepo,
	}
}

// Execute performs the purchase creation.
func (uc *CreatePurchaseUseCase) Execute(ctx context.Context, input CreatePurchaseInput) (*CreatePurchaseOutput, error) {
	if !input.TotalAmount.IsPositive() {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodeInvalidTotalAmount,
			"purchase total must be positive",
			domainerror.ErrInvalidTotalAmount,
		)
	}

	if input.InstallmentCount <= 0 {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodeInvalidInstallmentCount,
			"installment count must be positive",
			domainerror.ErrInvalidInstallmentCount,
		)
	}

	purchase := entity.NewInstallmentPurchase(
		input.UserID,
		input.Description,
		input.Category,
		input.TotalAmount,
		input.InstallmentCount,
		input.StartDate,
	)

	if err := uc.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to create installment purchase: %w", err)
	}

	entries := BuildEntries(purchase)
	if err := uc.ledgerRepo.InsertBatch(ctx, entries); err != nil {
		return nil, domainerror.NewInstallmentError(
			domainerror.ErrCodePlanPersistenceFailed,
			"failed to persist installment entries",
			err,
		)
	}

	slog.Info("Planned installment purchase",
		"purchaseID", purchase.ID,
		"userID", purchase.UserID,
		"installments", purchase.InstallmentCount,
	)

	return &CreatePurchaseOutput{
		Purchase:     toPurchaseOutput(purchase),
		EntriesCount: len(entries),
	}, nil
}
