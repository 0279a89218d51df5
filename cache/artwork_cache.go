package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"audiokit/logger"
)

// ArtworkCache stores fetched artwork bytes in redis. It satisfies the
// artwork package's ByteCache contract: a miss is (nil, nil) so the caller
// falls through to the origin.
type ArtworkCache struct {
	client *redis.Client
}

// NewArtworkCache uses the shared client when client is nil.
func NewArtworkCache(client *redis.Client) *ArtworkCache {
	if client == nil {
		client = RedisClient
	}
	return &ArtworkCache{client: client}
}

func artworkKey(key string) string {
	return fmt.Sprintf("artwork:%s", key)
}

// Get returns cached artwork bytes, or (nil, nil) on a miss.
func (c *ArtworkCache) Get(ctx context.Context, key string) ([]byte, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis client not initialized")
	}

	data, err := c.client.Get(ctx, artworkKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logger.Debug("artwork cache miss", logger.String("key", key))
			return nil, nil
		}
		return nil, fmt.Errorf("get artwork cache: %w", err)
	}

	logger.Debug("artwork cache hit",
		logger.String("key", key),
		logger.Int("bytes", len(data)))

	return data, nil
}

// Set stores artwork bytes with the given TTL.
func (c *ArtworkCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if c.client == nil {
		return fmt.Errorf("redis client not initialized")
	}

	if err := c.client.Set(ctx, artworkKey(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("set artwork cache: %w", err)
	}

	logger.Debug("artwork cached",
		logger.String("key", key),
		logger.Int("bytes", len(data)),
		logger.Duration("ttl", ttl))

	return nil
}
