package artwork

import (
	"context"
	"fmt"
	"image"
	"time"

	"audiokit/logger"
	"audiokit/model"
)

// ResolvingItem is an audio item with an explicit artwork resolver wired in.
// Where model.DefaultAudioItem silently completes with whatever image it was
// built with, a ResolvingItem resolves its artwork URL through the pipeline
// on demand. Resolution failures complete with nil; losing artwork is never
// an item-level error.
type ResolvingItem struct {
	model.DefaultAudioItem

	resolver *Resolver
	timeout  time.Duration
}

// NewResolvingItem wraps base with resolver. timeout bounds a single
// resolution attempt; zero means no bound beyond the fetcher's own.
func NewResolvingItem(base *model.DefaultAudioItem, resolver *Resolver, timeout time.Duration) (*ResolvingItem, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}
	if resolver == nil {
		return nil, fmt.Errorf("resolving item: resolver is required")
	}
	return &ResolvingItem{
		DefaultAudioItem: *base,
		resolver:         resolver,
		timeout:          timeout,
	}, nil
}

// ResolveArtwork invokes completion exactly once. A pre-supplied image or a
// missing artwork URL completes synchronously; otherwise resolution runs on
// its own goroutine and the callback fires from there.
func (r *ResolvingItem) ResolveArtwork(completion func(image.Image)) {
	if r.Artwork != nil {
		completion(r.Artwork)
		return
	}
	if r.ArtworkURL == "" {
		completion(nil)
		return
	}

	go func() {
		ctx := context.Background()
		if r.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, r.timeout)
			defer cancel()
		}

		img, err := r.resolver.Resolve(ctx, r.ArtworkURL)
		if err != nil {
			logger.Debug("artwork resolution failed",
				logger.String("url", r.ArtworkURL),
				logger.ErrorField(err))
			completion(nil)
			return
		}
		completion(img)
	}()
}
