// Package patrimony contains patrimony asset and net-worth history use cases.
package patrimony

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// ReconstructHistoryInput represents the input for net-worth history
// reconstruction.
type ReconstructHistoryInput struct {
	UserID      uuid.UUID
	Granularity Granularity
}

// ReconstructHistoryOutput represents the reconstructed series, oldest
// point first.
type ReconstructHistoryOutput struct {
	Series    []entity.PatrimonyPoint
	FromCache bool
}

// ReconstructHistoryUseCase rebuilds a user's net-worth series from
// current investment balances, the event log, and asset acquisition
// dates. The computed series is cached per user and granularity;
// investment and asset mutations invalidate it.
type ReconstructHistoryUseCase struct {
	investmentRepo adapter.InvestmentRepository
	assetRepo      adapter.PatrimonyAssetRepository
	seriesCache    adapter.PatrimonySeriesCache
	now            func() time.Time
}

// NewReconstructHistoryUseCase creates a new ReconstructHistoryUseCase instance.
func NewReconstructHistoryUseCase(
	investmentRepo adapter.InvestmentRepository,
	assetRepo adapter.PatrimonyAssetRepository,
	seriesCache adapter.PatrimonySeriesCache,
) *ReconstructHistoryUseCase {
	return &ReconstructHistoryUseCase{
		investmentRepo: investmentRepo,
		assetRepo:      assetRepo,
		seriesCache:    seriesCache,
		now:            time.Now,
	}
}

// Execute performs the reconstruction.
func (uc *ReconstructHistoryUseCase) Execute(ctx context.Context, input ReconstructHistoryInput) (*ReconstructHistoryOutput, error) {
	if !input.Granularity.IsValid() {
		return nil, domainerror.NewPatrimonyError(
			domainerror.ErrCodeInvalidGranularity,
			fmt.Sprintf("unknown granularity: %s", input.Granularity),
			domainerror.ErrInvalidGranularity,
		)
	}

	cached, err := uc.seriesCache.Get(ctx, input.UserID, string(input.Granularity))
	if err != nil {
		slog.Warn("Failed to read patrimony series cache", "error", err)
	}
	if cached != nil {
		return &ReconstructHistoryOutput{Series: cached, FromCache: true}, nil
	}

	investments, err := uc.investmentRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}

	investmentIDs := make([]uuid.UUID, len(investments))
	for i, inv := range investments {
		investmentIDs[i] = inv.ID
	}

	var events []*entity.InvestmentEvent
	if len(investmentIDs) > 0 {
		events, err = uc.investmentRepo.FindEventsByInvestmentIDs(ctx, investmentIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load investment events: %w", err)
		}
	}

	assets, err := uc.assetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load patrimony assets: %w", err)
	}

	series := reconstructSeries(uc.now().UTC(), investments, events, assets, input.Granularity)

	if err := uc.seriesCache.Set(ctx, input.UserID, string(input.Granularity), series); err != nil {
		slog.Warn("Failed to write patrimony series cache", "error", err)
	}

	return &ReconstructHistoryOutput{Series: series}, nil
}
