package behavior

import (
	"context"
	"time"
)

// CacheStore is the storage port used by the caching behavior. A store owns
// its own synchronization; entries expire after the TTL given to Set.
type CacheStore interface {
	// Get returns the stored value and whether a non-expired entry exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
