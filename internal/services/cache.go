package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

const (
	databaseViewKey = "admin:database-view"
	databaseViewTTL = 30 * time.Second
)

// InitCache initializes the Redis client. Redis is optional: when REDIS_URL
// is unset the admin view is simply served uncached.
func InitCache() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return fmt.Errorf("REDIS_URL not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	ctx := context.Background()
	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		RedisClient = nil
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// GetDatabaseView returns the cached admin view snapshot, if any.
func GetDatabaseView(ctx context.Context) ([]byte, bool) {
	if RedisClient == nil {
		return nil, false
	}
	data, err := RedisClient.Get(ctx, databaseViewKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetDatabaseView caches a rendered admin view snapshot.
func SetDatabaseView(ctx context.Context, data []byte) {
	if RedisClient == nil {
		return
	}
	RedisClient.Set(ctx, databaseViewKey, data, databaseViewTTL)
}

// InvalidateDatabaseView drops the cached snapshot. Called after every
// write so the admin screen never shows stale collections longer than a
// single request.
func InvalidateDatabaseView(ctx context.Context) {
	if RedisClient == nil {
		return
	}
	RedisClient.Del(ctx, databaseViewKey)
}
