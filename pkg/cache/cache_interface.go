package cache

import (
	"context"
	"time"
)

// Cache is the contract for the shared cache layer. Implementations may
// be Redis, Memcached or an in-memory fake for tests.
type Cache interface {
	// Get loads a value into dest.
	// found reports a cache hit; on a miss dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
