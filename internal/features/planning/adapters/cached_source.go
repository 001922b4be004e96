package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/libemurg1/ELDTripPlanner/internal/core/cache"
	"github.com/libemurg1/ELDTripPlanner/internal/core/logger"
	"github.com/libemurg1/ELDTripPlanner/internal/features/planning/domain"
	"github.com/libemurg1/ELDTripPlanner/internal/features/planning/ports"

	"go.uber.org/zap"
)

// CachedSource decorates a SegmentSource with a cache keyed on the trip
// query. Route lookups against external routing APIs are slow and
// rate-limited; the segments for a given city triple are static, so they
// cache well. Cache failures degrade to the wrapped source, never fail
// the fetch.
type CachedSource struct {
	next   ports.SegmentSource
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedSource wraps next with the given cache and entry TTL.
func NewCachedSource(next ports.SegmentSource, c cache.Cache, ttl time.Duration) *CachedSource {
	return &CachedSource{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: logger.Named("route_cache"),
	}
}

// FetchSegments returns cached segments when present, otherwise fetches
// from the wrapped source and stores the result.
func (c *CachedSource) FetchSegments(ctx context.Context, query domain.TripQuery) ([]domain.RouteSegment, error) {
	key := routeKey(query)

	data, err := c.cache.Get(ctx, key)
	if err == nil {
		var segments []domain.RouteSegment
		if unmarshalErr := json.Unmarshal(data, &segments); unmarshalErr == nil {
			c.logger.Debug("Route cache hit", zap.String("key", key))
			return segments, nil
		}
		c.logger.Warn("Discarding undecodable route cache entry", zap.String("key", key))
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		c.logger.Warn("Route cache lookup failed", zap.String("key", key), zap.Error(err))
	}

	segments, err := c.next.FetchSegments(ctx, query)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(segments); err == nil {
		if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
			c.logger.Warn("Route cache store failed", zap.String("key", key), zap.Error(err))
		}
	}
	return segments, nil
}

func routeKey(query domain.TripQuery) string {
	return fmt.Sprintf("route:%s|%s|%s", query.CurrentLocation, query.PickupLocation, query.DropoffLocation)
}
