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

// WithdrawInput represents the input for a withdrawal.
type WithdrawInput struct {
	UserID       uuid.UUID
	InvestmentID uuid.UUID
	Amount       valueobject.Money
	OccurredAt   *time.Time
}

// WithdrawOutput represents the output of a withdrawal. Closed is true
// when the withdrawal emptied the position and the investment was
// removed.
type WithdrawOutput struct {
	Investment *InvestmentOutput
	Closed     bool
}

// WithdrawUseCase records a withdrawal from an investment. Withdrawing
// more than the balance is an inconsistent-state error; withdrawing the
// whole balance closes the investment. Either way the event is appended
// in the same transaction as the balance change.
type WithdrawUseCase struct {
	investmentRepo adapter.InvestmentRepository
	seriesCache    adapter.PatrimonySeriesCache
}

// NewWithdrawUseCase creates a new WithdrawUseCase instance.
func NewWithdrawUseCase(
	investmentRepo adapter.InvestmentRepository,
	seriesCache adapter.PatrimonySeriesCache,
) *WithdrawUseCase {
	return &WithdrawUseCase{
		investmentRepo: investmentRepo,
		seriesCache:    seriesCache,
	}
}

// Execute performs the withdrawal.
func (uc *WithdrawUseCase) Execute(ctx context.Context, input WithdrawInput) (*WithdrawOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidEventAmount,
			"withdrawal amount must be positive",
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

	if input.Amount.Cmp(investment.CurrentValue) > 0 {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeWithdrawalExceedsBalance,
			fmt.Sprintf("withdrawal of %s exceeds balance of %s",
				input.Amount.String(), investment.CurrentValue.String()),
			domainerror.ErrWithdrawalExceedsBalance,
		)
	}

	occurredAt := time.Now().UTC()
	if input.OccurredAt != nil {
		occurredAt = input.OccurredAt.UTC()
	}

	event := investment.ApplyWithdrawal(input.Amount, occurredAt)
	closed := !investment.CurrentValue.IsPositive()

	if closed {
		if err := uc.investmentRepo.DeleteWithEvent(ctx, investment, event); err != nil {
			return nil, fmt.Errorf("failed to close investment: %w", err)
		}
	} else {
		if err := uc.investmentRepo.UpdateWithEvent(ctx, investment, event); err != nil {
			return nil, fmt.Errorf("failed to record withdrawal: %w", err)
		}
	}

	if err := uc.seriesCache.Invalidate(ctx, input.UserID); err != nil {
		slog.Warn("Failed to invalidate patrimony series cache", "error", err)
	}

	slog.Info("Recorded withdrawal",
		"investmentID", investment.ID,
		"amount", input.Amount.String(),
		"closed", closed,
	)

	return &WithdrawOutput{
		Investment: toInvestmentOutput(investment),
		Closed:     closed,
	}, nil
}
