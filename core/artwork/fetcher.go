// Package artwork resolves item artwork from remote or local sources. The
// pipeline is fetch bytes, optionally cache them, then decode: the same shape
// the rest of the system uses for media segments.
package artwork

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"audiokit/logger"
)

// Fetcher retrieves raw artwork bytes for a URL or object key.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches artwork over plain GET requests.
type HTTPFetcher struct {
	client   *http.Client
	maxBytes int64
}

// NewHTTPFetcher builds a fetcher with the given request timeout. maxBytes
// caps the response size; responses beyond it are rejected, not truncated.
func NewHTTPFetcher(timeout time.Duration, maxBytes int64) *HTTPFetcher {
	return &HTTPFetcher{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

// Fetch downloads the artwork bytes at url.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build artwork request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch artwork: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch artwork: unexpected status %d", resp.StatusCode)
	}
	if resp.ContentLength > f.maxBytes {
		return nil, fmt.Errorf("fetch artwork: %d bytes exceeds limit %d", resp.ContentLength, f.maxBytes)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read artwork body: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("fetch artwork: response exceeds limit %d", f.maxBytes)
	}

	logger.Debug("artwork fetched",
		logger.String("url", url),
		logger.Int("bytes", len(data)))

	return data, nil
}
