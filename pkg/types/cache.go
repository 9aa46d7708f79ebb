package types

import (
	"context"
	"time"
)

// Cache is the shared counter store behind rate limiting and usage credits.
// Injected so the pipeline components stay free of module-global state.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) error
}
