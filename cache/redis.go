package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"audiokit/config"
)

// RedisClient is the shared redis client for artwork caching.
var RedisClient *redis.Client

// ConnectRedis initializes the redis connection and verifies it with a ping.
func ConnectRedis(cfg *config.Config) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return nil
}

// CloseRedis closes the redis connection.
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

// TestRedis verifies connectivity with a set/get/del round trip.
func TestRedis() error {
	if RedisClient == nil {
		return fmt.Errorf("redis client not initialized")
	}

	ctx := context.Background()

	if err := RedisClient.Set(ctx, "audiokit:test", "ok", time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set redis key: %w", err)
	}

	val, err := RedisClient.Get(ctx, "audiokit:test").Result()
	if err != nil {
		return fmt.Errorf("failed to get redis key: %w", err)
	}
	if val != "ok" {
		return fmt.Errorf("unexpected value from redis: got %s", val)
	}

	if _, err := RedisClient.Del(ctx, "audiokit:test").Result(); err != nil {
		return fmt.Errorf("failed to delete redis key: %w", err)
	}

	return nil
}
