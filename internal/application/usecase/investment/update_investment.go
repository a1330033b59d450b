// Package investment contains investment use cases.
package investment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// UpdateInvestmentInput represents the input for investment update. Only
// the name and estimated rate are directly editable; the balance changes
// through contributions and withdrawals.
type UpdateInvestmentInput struct {
	UserID              uuid.UUID
	InvestmentID        uuid.UUID
	Name                *string
	EstimatedAnnualRate *float64
}

// UpdateInvestmentOutput represents the output of investment update.
type UpdateInvestmentOutput struct {
	Investment *InvestmentOutput
}

// UpdateInvestmentUseCase handles edits to an investment's metadata.
type UpdateInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
	seriesCache    adapter.PatrimonySeriesCache
}

// NewUpdateInvestmentUseCase creates a new UpdateInvestmentUseCase instance.
func NewUpdateInvestmentUseCase(
	investmentRepo adapter.InvestmentRepository,
	seriesCache adapter.PatrimonySeriesCache,
) *UpdateInvestmentUseCase {
	return &UpdateInvestmentUseCase{
		investmentRepo: investmentRepo,
		seriesCache:    seriesCache,
	}
}

// Execute performs the investment update.
func (uc *UpdateInvestmentUseCase) Execute(ctx context.Context, input UpdateInvestmentInput) (*UpdateInvestmentOutput, error) {
	investment, err := uc.investmentRepo.FindByID(ctx, input.InvestmentID)
	if err != nil {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvestmentNotFound,
			"investment not found",
			domainerror.ErrInvestmentNotFound,
		)
	}

	if investment.UserID != input.UserID {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeNotAuthorizedInvestment,
			"investment does not belong to user",
			domainerror.ErrNotAuthorizedToModifyInvestment,
		)
	}

	if input.EstimatedAnnualRate != nil {
		if *input.EstimatedAnnualRate < 0 {
			return nil, domainerror.NewInvestmentError(
				domainerror.ErrCodeInvalidInvestmentRate,
				"estimated annual rate must not be negative",
				domainerror.ErrInvalidInvestmentRate,
			)
		}
		investment.EstimatedAnnualRate = *input.EstimatedAnnualRate
	}

	if input.Name != nil {
		investment.Name = *input.Name
	}
	investment.UpdatedAt = time.Now().UTC()

	if err := uc.investmentRepo.Update(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}

	// Rate changes shift the discounted history.
	if err := uc.seriesCache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("Failed to invalidate patrimony series cache", "error", err)
	}

	return &UpdateInvestmentOutput{Investment: toInvestmentOutput(investment)}, nil
}
