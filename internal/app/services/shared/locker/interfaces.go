package locker

import (
	"context"
	"time"
)

// Service serializes lifecycle transitions on a single record. TryLock is
// non-blocking; a held lock means another writer is mid-transition.
type Service interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
