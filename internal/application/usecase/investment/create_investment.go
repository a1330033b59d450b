// Package investment contains investment use cases.
package investment

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

// CreateInvestmentInput represents the input for investment creation.
// An opening balance greater than zero is recorded as an initial
// contribution event so the reconstruction can see it.
type CreateInvestmentInput struct {
	UserID              uuid.UUID
	Name                string
	InitialValue        valueobject.Money
	EstimatedAnnualRate float64
}

// CreateInvestmentOutput represents the output of investment creation.
type CreateInvestmentOutput struct {
	Investment *InvestmentOutput
}

// CreateInvestmentUseCase handles investment creation.
type CreateInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
	seriesCache    adapter.PatrimonySeriesCache
}

// NewCreateInvestmentUseCase creates a new CreateInvestmentUseCase instance.
func NewCreateInvestmentUseCase(
	investmentRepo adapter.InvestmentRepository,
	seriesCache adapter.PatrimonySeriesCache,
) *CreateInvestmentUseCase {
	return &CreateInvestmentUseCase{
		investmentRepo: investmentRepo,
		seriesCache:    seriesCache,
	}
}

// Execute performs the investment creation.
func (uc *CreateInvestmentUseCase) Execute(ctx context.Context, input CreateInvestmentInput) (*CreateInvestmentOutput, error) {
	if input.InitialValue.IsNegative() {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidInvestmentValue,
			"initial value must not be negative",
			domainerror.ErrInvalidInvestmentValue,
		)
	}

	if input.EstimatedAnnualRate < 0 {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidInvestmentRate,
			"estimated annual rate must not be negative",
			domainerror.ErrInvalidInvestmentRate,
		)
	}

	investment := entity.NewInvestment(input.UserID, input.Name, input.InitialValue, input.EstimatedAnnualRate)

	if err := uc.investmentRepo.Create(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	if input.InitialValue.IsPositive() {
		event := entity.NewInvestmentEvent(
			investment.ID,
			investment.UserID,
			entity.EventKindContribution,
			input.InitialValue,
			time.Now().UTC(),
		)
		if err := uc.investmentRepo.AppendEvent(ctx, event); err != nil {
			return nil, fmt.Errorf("failed to record initial contribution: %w", err)
		}
	}

	if err := uc.seriesCache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("Failed to invalidate patrimony series cache", "error", err)
	}

	slog.Info("Created investment", "investmentID", investment.ID, "userID", investment.UserID)

	return &CreateInvestmentOutput{Investment: toInvestmentOutput(investment)}, nil
}
