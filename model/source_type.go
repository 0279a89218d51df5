package model

import "fmt"

// SourceType indicates where an item's media bytes come from. It is fixed at
// construction and tells the playback engine how to schedule and buffer the
// item; streams have no reliable seekable duration, files do.
type SourceType string

const (
	SourceTypeStream SourceType = "stream"
	SourceTypeFile   SourceType = "file"
)

// Valid reports whether s is one of the known source types.
func (s SourceType) Valid() bool {
	switch s {
	case SourceTypeStream, SourceTypeFile:
		return true
	}
	return false
}

// ParseSourceType converts a string into a SourceType.
func ParseSourceType(raw string) (SourceType, error) {
	s := SourceType(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown source type %q", raw)
	}
	return s, nil
}
