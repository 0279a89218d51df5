package artwork

import (
	"context"
	"time"

	"audiokit/logger"
)

// ByteCache stores fetched artwork bytes. A miss is (nil, nil), matching the
// convention the segment pipeline uses: the caller falls through to the
// origin without treating the miss as a failure.
type ByteCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// CachedFetcher is a read-through cache in front of another Fetcher. Cache
// errors never fail a fetch; they degrade to the underlying fetcher.
type CachedFetcher struct {
	next  Fetcher
	cache ByteCache
	ttl   time.Duration
}

// NewCachedFetcher wraps next with cache. Entries expire after ttl.
func NewCachedFetcher(next Fetcher, cache ByteCache, ttl time.Duration) *CachedFetcher {
	return &CachedFetcher{next: next, cache: cache, ttl: ttl}
}

// Fetch returns cached bytes when present, otherwise fetches from the origin
// and populates the cache.
func (c *CachedFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	data, err := c.cache.Get(ctx, url)
	if err != nil {
		logger.Warn("artwork cache read failed, falling through to origin",
			logger.String("url", url),
			logger.ErrorField(err))
	} else if data != nil {
		logger.Debug("artwork cache hit",
			logger.String("url", url),
			logger.Int("bytes", len(data)))
		return data, nil
	}

	data, err = c.next.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, url, data, c.ttl); err != nil {
		logger.Warn("artwork cache write failed",
			logger.String("url", url),
			logger.ErrorField(err))
	}

	return data, nil
}
