package db

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"keyword-dashboard/internal/core/domain"
)

// NewRedisClient creates and verifies a Redis client connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%w: redis ping failed: %v", domain.ErrUpstreamUnavailable, err)
	}

	return rdb, nil
}
