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
	"github.com/finance-planner/backend/internal/domain/valueobject"
)

// ContributeInput represents the input for a contribution.
type ContributeInput struct {
	UserID       uuid.UUID
	InvestmentID uuid.UUID
	Amount       valueobject.Money
	OccurredAt   *time.Time
}

// ContributeOutput represents the output of a contribution.
type ContributeOutput struct {
	Investment *InvestmentOutput
}

// ContributeUseCase records a contribution to an investment. The balance
// change and the event are committed atomically.
type ContributeUseCase struct {
	investmentRepo adapter.InvestmentRepository
	seriesCache    adapter.PatrimonySeriesCache
}

// NewContributeUseCase creates a new ContributeUseCase instance.
func NewContributeUseCase(
	investmentRepo adapter.InvestmentRepository,
	seriesCache adapter.PatrimonySeriesCache,
) *ContributeUseCase {
	return &ContributeUseCase{
		investmentRepo: investmentRepo,
		seriesCache:    seriesCache,
	}
}

// Execute performs the contribution.
func (uc *ContributeUseCase) Execute(ctx context.Context, input ContributeInput) (*ContributeOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidEventAmount,
			"contribution amount must be positive",
			domainerror.ErrInvalidEventAmount,
		)
	}

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

	occurredAt := time.Now().UTC()
	if input.OccurredAt != nil {
		occurredAt = input.OccurredAt.UTC()
	}

	event := investment.ApplyContribution(input.Amount, occurredAt)

	if err := uc.investmentRepo.UpdateWithEvent(ctx, investment, event); err != nil {
		return nil, fmt.Errorf("failed to record contribution: %w", err)
	}

	if err := uc.seriesCache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("Failed to invalidate patrimony series cache", "error", err)
	}

	slog.Info("Recorded contribution",
		"investmentID", investment.ID,
		"amount", input.Amount.String(),
	)

	return &ContributeOutput{Investment: toInvestmentOutput(investment)}, nil
}
