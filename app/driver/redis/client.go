// Package redis provides the Redis-backed webhook event dedupe store.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"growhub/app/config"
)

// NewClient creates a Redis client from service configuration
func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// HealthCheck verifies the Redis connection is alive
func HealthCheck(ctx context.Context, client *redis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}
