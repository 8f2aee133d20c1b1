package cache

import (
	"context"
	"time"
)

// Cache is a small key/value store. The preferences service persists its
// records through it; a zero ttl means the entry never expires.
type Cache interface {
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
}
