package artwork

import (
	"bytes"
	"context"
	"fmt"
	"image"

	// Register the decoders the platform image registry supports for artwork.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Resolver turns an artwork URL into a decoded image.
type Resolver struct {
	fetcher Fetcher
}

// NewResolver builds a resolver over the given fetcher.
func NewResolver(fetcher Fetcher) *Resolver {
	return &Resolver{fetcher: fetcher}
}

// Resolve fetches and decodes the artwork at url.
func (r *Resolver) Resolve(ctx context.Context, url string) (image.Image, error) {
	data, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode artwork %q: %w", url, err)
	}

	return img, nil
}
