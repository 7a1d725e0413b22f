package redis

import (
	"context"
	"time"
)

// Repository is the raw key-value contract every higher layer builds on.
// Keys are opaque strings, values JSON blobs; per-key operations are
// atomic, nothing across keys is.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Delete(ctx context.Context, key string) error
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
}
