// Package cache provides the time-expiring response cache. Entries are never
// invalidated on writes; staleness within the TTL window is accepted
// behavior.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss reports that a key was not found or has expired.
var ErrCacheMiss = errors.New("cache miss")

// Cacher is implemented by the memory and Redis backends. Implementations
// must be safe for concurrent use.
type Cacher interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
