package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is not present. Callers
// distinguish a miss from a backend failure with errors.Is.
var ErrCacheMiss = errors.New("cache miss")

// Cache is the caching port. The planner uses it to memoize route lookups
// from the external segment source; any key-value store with TTL support
// can implement it.
type Cache interface {
	// Get retrieves the value stored under key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key for ttl. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key from the cache.
	Delete(ctx context.Context, key string) error

	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error

	// Close releases the connection to the backing store.
	Close() error
}
