package data

import (
	"github.com/go-redis/redis/v8"
	"github.com/roguepikachu/petshop/internal/config"
)

// NewRedisClient returns a client for REDIS_ADDR, or nil when the cache is disabled.
func NewRedisClient(c config.Config) *redis.Client {
	if c.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr: c.RedisAddr,
		DB:   c.RedisDB,
	})
}
