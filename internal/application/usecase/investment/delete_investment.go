// Package investment contains investment use cases.
package investment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// DeleteInvestmentInput represents the input for investment deletion.
type DeleteInvestmentInput struct {
	UserID       uuid.UUID
	InvestmentID uuid.UUID
}

// DeleteInvestmentOutput represents the output of investment deletion.
type DeleteInvestmentOutput struct {
	Deleted bool
}

/// DeleteInvestmentUseCase removes an investment. Its events are kept:
// the reconstruction only replays events of live investments, but the
// log itself is append-only.
type DeleteInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
	seriesCache    adapter.PatrimonySeriesCache
}

// NewDeleteInvestmentUseCase creates a new DeleteInvestmentUseCase instance.
func NewDeleteInvestmentUseCase(
	investmentRepo adapter.InvestmentRepository,
	seriesCache adapter.PatrimonySeriesCache,
) *DeleteInvestmentUseCase {
	return &DeleteInvestmentUseCase{
		investmentRepo: investmentRepo,
		seriesCache:    seriesCache,
	}
}

// Execute performs the investment deletion.
func (uc *DeleteInvestmentUseCase) Execute(ctx context.Context, input DeleteInvestmentInput) (*DeleteInvestmentOutput, error) {
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

	if err := uc.investmentRepo.Delete(ctx, investment.ID); err != nil {
		return nil, fmt.Errorf("failed to delete investment: %w", err)
	}

	if err := uc.seriesCache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("Failed to invalidate patrimony series cache", "error", err)
	}

	slog.Info("Deleted investment", "investmentID", investment.ID)

	return &DeleteInvestmentOutput{Deleted: true}, nil
}
