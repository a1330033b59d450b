// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// PatrimonySeriesCache caches reconstructed net-worth series per user and
// granularity. Reconstruction walks every investment event on every
// request, so the computed series is kept hot until a mutation
// invalidates it or the TTL expires.
type PatrimonySeriesCache interface {
	// Get returns the cached series for the user and granularity, or
	// (nil, nil) on a miss. Cache failures are reported as errors and
	// treated as misses by callers.
	Get(ctx context.Context, userID uuid.UUID, granularity string) ([]entity.PatrimonyPoint, error)

	// Set stores the series for the user and granularity.
	Set(ctx context.Context, userID uuid.UUID, granularity string, series []entity.PatrimonyPoint) error

	// Invalidate drops every cached series for the user, across all
	// granularities. Called after any investment or asset mutation.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
