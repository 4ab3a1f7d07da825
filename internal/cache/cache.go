package cache

import (
	"context"
	"time"
)

// Cache is a best-effort JSON cache. A nil implementation is allowed
// everywhere it is consumed; callers treat errors as misses.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
