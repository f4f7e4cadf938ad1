package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dental-care-server/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis key prefix for cached per-date availability responses
const availabilityKeyPrefix = "availability:date:"

// AvailabilityCache keeps the computed per-date availability listing in
// Redis. Entries are TTL-bounded and invalidated on every write that can
// change availability (booking creation, payment confirmation), so a
// cache miss is always the worst case, never a stale hit past the TTL.
//
// Redis failures degrade to cache misses; they are logged and never
// surfaced to callers.
type AvailabilityCache struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, log *logrus.Logger, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

// Get returns the cached availability listing for date, if present.
func (c *AvailabilityCache) Get(ctx context.Context, date string) ([]dto.AppointmentOptionResponse, bool) {
	if date == "" {
		return nil, false
	}

	payload, err := c.client.Get(ctx, availabilityKeyPrefix+date).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read availability cache for %s: %+v", date, err)
		}
		return nil, false
	}

	var options []dto.AppointmentOptionResponse
	if err := json.Unmarshal(payload, &options); err != nil {
		c.log.Warnf("Corrupt availability cache entry for %s: %+v", date, err)
		return nil, false
	}

	return options, true
}

// Set stores the availability listing for date.
func (c *AvailabilityCache) Set(ctx context.Context, date string, options []dto.AppointmentOptionResponse) {
	if date == "" {
		return
	}

	payload, err := json.Marshal(options)
	if err != nil {
		c.log.Warnf("Failed to encode availability cache entry for %s: %+v", date, err)
		return
	}

	if err := c.client.Set(ctx, availabilityKeyPrefix+date, payload, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write availability cache for %s: %+v", date, err)
	}
}

// Invalidate drops the cached listing for date after a write that may
// have consumed or released a slot.
func (c *AvailabilityCache) Invalidate(ctx context.Context, date string) {
	if date == "" {
		return
	}

	if err := c.client.Del(ctx, availabilityKeyPrefix+date).Err(); err != nil {
		c.log.Warnf("Failed to invalidate availability cache for %s: %+v", date, err)
	}
}
