package model

// Capabilities are narrow, independently satisfiable contracts an item may or
// may not carry on top of AudioItem. A consumer discovers them with an
// interface assertion (or the *Of helpers below), never by inspecting a
// concrete type, so new capabilities can be added without touching the base
// item or each other.

// PitchAlgorithm selects the time-stretch algorithm the engine applies when
// playback rate differs from 1.0. The set mirrors the platform audio stack.
type PitchAlgorithm string

const (
	// PitchAlgorithmLowQualityZeroLatency is the engine fallback when an item
	// carries no preference.
	PitchAlgorithmLowQualityZeroLatency PitchAlgorithm = "lowQualityZeroLatency"
	PitchAlgorithmTimeDomain            PitchAlgorithm = "timeDomain"
	PitchAlgorithmSpectral              PitchAlgorithm = "spectral"
	PitchAlgorithmVarispeed             PitchAlgorithm = "varispeed"
)

// Valid reports whether p is one of the known algorithms.
func (p PitchAlgorithm) Valid() bool {
	switch p {
	case PitchAlgorithmLowQualityZeroLatency, PitchAlgorithmTimeDomain,
		PitchAlgorithmSpectral, PitchAlgorithmVarispeed:
		return true
	}
	return false
}

// TimePitching marks an item that prefers a specific time-stretch algorithm.
type TimePitching interface {
	GetPitchAlgorithm() PitchAlgorithm
}

// InitialTiming marks an item that should start playback at an offset instead
// of the beginning. The offset is in seconds and never negative.
type InitialTiming interface {
	GetInitialTime() float64
}

// AssetOptionsProviding marks an item that carries loader initialization
// options. The mapping is schema-less; keys and values are owned by the
// asset-loading facility, not validated here.
type AssetOptionsProviding interface {
	GetAssetOptions() map[string]any
}

// PitchAlgorithmOf queries item for the TimePitching capability. When absent
// it returns the engine fallback algorithm and false.
func PitchAlgorithmOf(item AudioItem) (PitchAlgorithm, bool) {
	if tp, ok := item.(TimePitching); ok {
		return tp.GetPitchAlgorithm(), true
	}
	return PitchAlgorithmLowQualityZeroLatency, false
}

// InitialTimeOf queries item for the InitialTiming capability. When absent it
// returns 0 and false.
func InitialTimeOf(item AudioItem) (float64, bool) {
	if it, ok := item.(InitialTiming); ok {
		return it.GetInitialTime(), true
	}
	return 0, false
}

// AssetOptionsOf queries item for the AssetOptionsProviding capability. When
// absent it returns an empty mapping and false. The returned map is always
// safe for the caller to hold.
func AssetOptionsOf(item AudioItem) (map[string]any, bool) {
	if ap, ok := item.(AssetOptionsProviding); ok {
		return ap.GetAssetOptions(), true
	}
	return map[string]any{}, false
}
