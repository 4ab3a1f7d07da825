package config

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to Redis from an address or redis:// URL and pings
// it. The caller decides whether a failure is fatal; the suggestion
// cache is optional.
func InitRedis(addr string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, err
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: addr})
	}

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return client, nil
}
