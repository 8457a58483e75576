// Package kv is a narrow port over a key-value store with per-key
// expiry. The service keeps baskets and cached products behind it.
package kv

import (
	"context"
	"time"
)

// Store is a TTL-bounded key-value store. Get reports absence (expired
// or never written) as ok=false, not as an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Swap writes value only if the key still holds prev, refreshing the
	// ttl. It reports false when the key changed or expired in between.
	Swap(ctx context.Context, key, prev, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}
