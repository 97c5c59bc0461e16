// Package cache holds the Redis-backed availability cache. Cached slot sets
// only speed up slot rendering; the booking confirm path always revalidates
// against the store, so a stale entry can never cause a double booking.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domain "github.com/fsanztor01/TrimTime/internal/domain/appointment"
	"github.com/fsanztor01/TrimTime/internal/logger"
)

const availabilityTTL = 60 * time.Second

type AvailabilityCache struct {
	rdb *redis.Client
}

// NewAvailabilityCache returns nil when addr is empty; every method is
// nil-safe so callers never branch on whether caching is on.
func NewAvailabilityCache(addr string) *AvailabilityCache {
	if addr == "" {
		return nil
	}
	return &AvailabilityCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func key(barberID, date string, durationMin int) string {
	return fmt.Sprintf("availability:%s:%s:%d", barberID, date, durationMin)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	barberID, date string,
	durationMin int,
) ([]domain.SlotAvailability, bool) {

	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(barberID, date, durationMin)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []domain.SlotAvailability
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	barberID, date string,
	durationMin int,
	slots []domain.SlotAvailability,
) {

	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(barberID, date, durationMin), raw, availabilityTTL).Err(); err != nil {
		logger.Log.Warn("availability cache set failed", zap.Error(err))
	}
}

// Invalidate drops every cached slot set for the barber/date pair, any
// duration.
func (c *AvailabilityCache) Invalidate(ctx context.Context, barberID, date string) {
	if c == nil {
		return
	}

	pattern := fmt.Sprintf("availability:%s:%s:*", barberID, date)
	keys, err := c.rdb.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn("availability cache invalidate failed", zap.Error(err))
	}
}
