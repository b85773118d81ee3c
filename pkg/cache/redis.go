package cache

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

// Redis is a Cache backed by a redis server.
type Redis struct {
	opts   *Options
	client *goredis.Client
}

func newRedis(opts *Options) (*Redis, error) {
	if opts == nil {
		opts = &Options{}
	}
	opts.SetDefaults()

	conf, err := goredis.ParseURL(opts.URL)
	if err != nil {
		return nil, err
	}
	if opts.TLSConfig != nil {
		conf.TLSConfig = opts.TLSConfig
	}

	client := goredis.NewClient(conf)
	err = client.Ping(context.Background()).Err()
	return &Redis{opts: opts, client: client}, err
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == goredis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, r.opts.TTL).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
