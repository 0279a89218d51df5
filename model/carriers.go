package model

import "fmt"

// Value carriers bundle a DefaultAudioItem with one capability's data. They
// exist as ready-made conveniences; a producer needing several capabilities
// on one item embeds DefaultAudioItem and the relevant data itself, the same
// way these types do.

// TimePitchedAudioItem carries a preferred time-stretch algorithm.
type TimePitchedAudioItem struct {
	DefaultAudioItem
	PitchAlgorithm PitchAlgorithm
}

// NewTimePitchedAudioItem validates the base fields and the algorithm.
func NewTimePitchedAudioItem(sourceURL string, sourceType SourceType, algorithm PitchAlgorithm) (*TimePitchedAudioItem, error) {
	base, err := NewDefaultAudioItem(sourceURL, sourceType)
	if err != nil {
		return nil, err
	}
	if !algorithm.Valid() {
		return nil, fmt.Errorf("audio item: invalid pitch algorithm %q", string(algorithm))
	}
	return &TimePitchedAudioItem{DefaultAudioItem: *base, PitchAlgorithm: algorithm}, nil
}

func (t *TimePitchedAudioItem) GetPitchAlgorithm() PitchAlgorithm {
	return t.PitchAlgorithm
}

// TimedAudioItem carries a non-negative initial playback offset in seconds.
// The zero value of InitialTime means "start at the beginning", matching the
// engine default, so leaving it unset is always safe.
type TimedAudioItem struct {
	DefaultAudioItem
	InitialTime float64
}

// NewTimedAudioItem validates the base fields and rejects negative offsets.
func NewTimedAudioItem(sourceURL string, sourceType SourceType, initialTime float64) (*TimedAudioItem, error) {
	base, err := NewDefaultAudioItem(sourceURL, sourceType)
	if err != nil {
		return nil, err
	}
	if initialTime < 0 {
		return nil, fmt.Errorf("audio item: negative initial time %v", initialTime)
	}
	return &TimedAudioItem{DefaultAudioItem: *base, InitialTime: initialTime}, nil
}

func (t *TimedAudioItem) GetInitialTime() float64 {
	return t.InitialTime
}

// AssetOptionedAudioItem carries loader options for the asset-loading
// facility. Options are copied in and out so the item stays a value.
type AssetOptionedAudioItem struct {
	DefaultAudioItem
	AssetOptions map[string]any
}

// NewAssetOptionedAudioItem validates the base fields; a nil options map is
// treated as empty.
func NewAssetOptionedAudioItem(sourceURL string, sourceType SourceType, options map[string]any) (*AssetOptionedAudioItem, error) {
	base, err := NewDefaultAudioItem(sourceURL, sourceType)
	if err != nil {
		return nil, err
	}
	return &AssetOptionedAudioItem{DefaultAudioItem: *base, AssetOptions: copyOptions(options)}, nil
}

// GetAssetOptions never returns nil.
func (a *AssetOptionedAudioItem) GetAssetOptions() map[string]any {
	return copyOptions(a.AssetOptions)
}

func copyOptions(options map[string]any) map[string]any {
	out := make(map[string]any, len(options))
	for k, v := range options {
		out[k] = v
	}
	return out
}
