package model

import (
	"fmt"
	"image"

	"github.com/google/uuid"
)

// AudioItem is the surface a playback engine programs against. Concrete
// producers implement it directly; no concrete type is ever required by a
// consumer. Optional metadata accessors return the empty string when the
// value is unknown.
type AudioItem interface {
	GetSourceID() string
	// GetSourceURL never returns an empty string on a validly constructed
	// item; a missing URL is a construction-time error, not a runtime one.
	GetSourceURL() string
	GetArtist() string
	GetTitle() string
	GetAlbumTitle() string
	GetArtworkURL() string
	GetSourceType() SourceType

	// ResolveArtwork invokes completion exactly once with the item's decoded
	// artwork, or nil when none is available. The callback may run
	// synchronously or on another goroutine; callers must not assume either.
	// There is no cancellation and no error channel at this layer.
	ResolveArtwork(completion func(image.Image))
}

// DefaultAudioItem is a plain value implementation of AudioItem. Fields are
// set by the owning producer and must not change once the item is handed to
// a consumer. Artwork, when pre-supplied, makes ResolveArtwork synchronous.
type DefaultAudioItem struct {
	SourceID   string
	SourceURL  string
	Artist     string
	Title      string
	AlbumTitle string
	ArtworkURL string
	SourceType SourceType
	Artwork    image.Image
}

// NewDefaultAudioItem builds an item from its required fields. It fails only
// when sourceURL is empty or sourceType is unknown; everything else is
// optional and set directly on the returned value.
func NewDefaultAudioItem(sourceURL string, sourceType SourceType) (*DefaultAudioItem, error) {
	item := &DefaultAudioItem{
		SourceURL:  sourceURL,
		SourceType: sourceType,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate checks the construction contract: a non-empty source URL and a
// known source type.
func (d *DefaultAudioItem) Validate() error {
	if d.SourceURL == "" {
		return fmt.Errorf("audio item: source URL is required")
	}
	if !d.SourceType.Valid() {
		return fmt.Errorf("audio item: invalid source type %q", string(d.SourceType))
	}
	return nil
}

func (d *DefaultAudioItem) GetSourceID() string       { return d.SourceID }
func (d *DefaultAudioItem) GetSourceURL() string      { return d.SourceURL }
func (d *DefaultAudioItem) GetArtist() string         { return d.Artist }
func (d *DefaultAudioItem) GetTitle() string          { return d.Title }
func (d *DefaultAudioItem) GetAlbumTitle() string     { return d.AlbumTitle }
func (d *DefaultAudioItem) GetArtworkURL() string     { return d.ArtworkURL }
func (d *DefaultAudioItem) GetSourceType() SourceType { return d.SourceType }

// ResolveArtwork completes synchronously with the pre-supplied image, or nil
// when the item was built without one. Items that need remote resolution wrap
// this type; see the artwork package.
func (d *DefaultAudioItem) ResolveArtwork(completion func(image.Image)) {
	completion(d.Artwork)
}

// NewSourceID returns a fresh opaque source identifier for producers that
// want one. The model itself never requires or deduplicates source IDs.
func NewSourceID() string {
	return uuid.NewString()
}
