package cache

import (
	"context"
	"time"
)

// Cache is the contract for the cache layer. Implementations must treat a
// missing key as a miss, not an error.
type Cache interface {
	// Get reads a key and unmarshals it into dest. The first return value
	// reports a hit; on a miss dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob-style pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
