package cache

import (
	"context"
	"time"
)

// Cache is the contract for the caching layer. Implementations must be safe
// for concurrent use; a failing cache should degrade to misses, never block
// the request path.
type Cache interface {
	// Get fetches key and unmarshals it into dest.
	// found=false means a cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
