package cache

import (
	"log"
	"time"
)

// New picks the cache backend: Redis when a URL is configured, otherwise the
// in-process memory cache. A failed Redis connection falls back to memory so
// the API still serves.
func New(redisURL string, defaultTTL time.Duration) Cacher {
	if redisURL != "" {
		c, err := NewRedisCache(redisURL, "sda_cache:", defaultTTL)
		if err == nil {
			return c
		}
		log.Printf("Redis cache unavailable (%v), falling back to memory cache", err)
	}
	return NewMemoryCache(defaultTTL)
}
