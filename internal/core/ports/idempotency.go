package ports

import (
	"context"
	"time"
)

// IdempotencyStore guards against processing the same external event twice.
type IdempotencyStore interface {
	// Acquire claims key for ttl. It returns false when the key was
	// already claimed.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release drops a claim so the event can be processed again.
	Release(ctx context.Context, key string) error
}
