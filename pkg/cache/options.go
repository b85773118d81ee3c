package cache

import (
	"crypto/tls"
	"time"
)

const (
	defaultURL = "redis://localhost:6379/0"
	defaultTTL = 5 * time.Minute
)

// Options configure the listing cache.
type Options struct {
	// URL is the redis connection string.
	URL string

	// TTL is how long cached listings stay fresh.
	TTL time.Duration

	// TLSConfig, if set, connects to redis over TLS.
	TLSConfig *tls.Config
}

func (o *Options) SetDefaults() {
	if o.URL == "" {
		o.URL = defaultURL
	}
	if o.TTL <= 0 {
		o.TTL = defaultTTL
	}
}
