// Package cache implements redis-backed caches for computed projections.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// patrimonySeriesCache implements the adapter.PatrimonySeriesCache
// interface on redis. Series are stored as JSON, one key per user and
// granularity, and invalidated wholesale per user.
type patrimonySeriesCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPatrimonySeriesCache creates a new redis-backed series cache.
func NewPatrimonySeriesCache(client *redis.Client, ttl time.Duration) adapter.PatrimonySeriesCache {
	return &patrimonySeriesCache{
		client: client,
		ttl:    ttl,
	}
}

func seriesKey(userID uuid.UUID, granularity string) string {
	return fmt.Sprintf("patrimony:series:%s:%s", userID, granularity)
}

// Get returns the cached series for the user and granularity, or
// (nil, nil) on a miss.
func (c *patrimonySeriesCache) Get(ctx context.Context, userID uuid.UUID, granularity string) ([]entity.PatrimonyPoint, error) {
	data, err := c.client.Get(ctx, seriesKey(userID, granularity)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read series cache: %w", err)
	}

	var series []entity.PatrimonyPoint
	if err := json.Unmarshal(data, &series); err != nil {
		// A corrupt value is treated as a miss; the next Set overwrites it.
		return nil, nil
	}
	return series, nil
}

// Set stores the series for the user and granularity with the configured TTL.
func (c *patrimonySeriesCache) Set(ctx context.Context, userID uuid.UUID, granularity string, series []entity.PatrimonyPoint) error {
	data, err := json.Marshal(series)
	if err != nil {
		return fmt.Errorf("failed to encode series: %w", err)
	}

	if err := c.client.Set(ctx, seriesKey(userID, granularity), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write series cache: %w", err)
	}
	return nil
}

// Invalidate drops every cached series for the user, across all
// granularities.
func (c *patrimonySeriesCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	keys := []string{
		seriesKey(userID, "monthly"),
		seriesKey(userID, "quarterly"),
		seriesKey(userID, "yearly"),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate series cache: %w", err)
	}
	return nil
}
