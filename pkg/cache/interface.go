package cache

import (
	"context"
)

// Cache is a small read-through cache for remote listings.
//
// Remote dataset and member listings are slow (seconds per call) and change
// rarely, so the dashboard keeps them warm here. A nil Cache is valid; every
// read just goes to the remote system.
type Cache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a value for the configured TTL.
	Set(ctx context.Context, key, value string) error

	Close() error
}

// New returns a redis backed Cache.
func New(opts *Options) (Cache, error) {
	return newRedis(opts)
}
