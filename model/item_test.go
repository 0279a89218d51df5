package model_test

import (
	"image"
	"testing"

	"audiokit/model"
)

func TestNewDefaultAudioItemValidation(t *testing.T) {
	tests := []struct {
		name       string
		sourceURL  string
		sourceType model.SourceType
		wantErr    bool
	}{
		{"stream item", "https://x/a.mp3", model.SourceTypeStream, false},
		{"file item", "/music/a.flac", model.SourceTypeFile, false},
		{"empty url", "", model.SourceTypeStream, true},
		{"unknown source type", "https://x/a.mp3", model.SourceType("tape"), true},
		{"empty source type", "https://x/a.mp3", model.SourceType(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := model.NewDefaultAudioItem(tt.sourceURL, tt.sourceType)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected construction error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewDefaultAudioItem returned error: %v", err)
			}
			if got := item.GetSourceURL(); got != tt.sourceURL {
				t.Errorf("GetSourceURL() = %q, want %q", got, tt.sourceURL)
			}
			if got := item.GetSourceType(); got != tt.sourceType {
				t.Errorf("GetSourceType() = %q, want %q", got, tt.sourceType)
			}
		})
	}
}

func TestDefaultAudioItemOptionalMetadata(t *testing.T) {
	item, err := model.NewDefaultAudioItem("https://x/a.mp3", model.SourceTypeStream)
	if err != nil {
		t.Fatalf("NewDefaultAudioItem returned error: %v", err)
	}
	item.Title = "Song"

	if got := item.GetTitle(); got != "Song" {
		t.Errorf("GetTitle() = %q, want %q", got, "Song")
	}
	if got := item.GetArtist(); got != "" {
		t.Errorf("GetArtist() = %q, want empty for unset field", got)
	}
	if got := item.GetAlbumTitle(); got != "" {
		t.Errorf("GetAlbumTitle() = %q, want empty for unset field", got)
	}
	if got := item.GetArtworkURL(); got != "" {
		t.Errorf("GetArtworkURL() = %q, want empty for unset field", got)
	}
	if got := item.GetSourceID(); got != "" {
		t.Errorf("GetSourceID() = %q, want empty for unset field", got)
	}
}

func TestResolveArtworkWithPreSuppliedImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	item, err := model.NewDefaultAudioItem("https://x/a.mp3", model.SourceTypeFile)
	if err != nil {
		t.Fatalf("NewDefaultAudioItem returned error: %v", err)
	}
	item.Artwork = img

	calls := 0
	var got image.Image
	item.ResolveArtwork(func(resolved image.Image) {
		calls++
		got = resolved
	})

	if calls != 1 {
		t.Fatalf("completion invoked %d times, want exactly 1", calls)
	}
	if got != img {
		t.Error("completion did not receive the pre-supplied image")
	}
}

func TestResolveArtworkWithoutImage(t *testing.T) {
	item, err := model.NewDefaultAudioItem("https://x/a.mp3", model.SourceTypeStream)
	if err != nil {
		t.Fatalf("NewDefaultAudioItem returned error: %v", err)
	}

	calls := 0
	var got image.Image
	item.ResolveArtwork(func(resolved image.Image) {
		calls++
		got = resolved
	})

	if calls != 1 {
		t.Fatalf("completion invoked %d times, want exactly 1", calls)
	}
	if got != nil {
		t.Error("completion received an image, want nil when none supplied")
	}
}

func TestParseSourceType(t *testing.T) {
	tests := []struct {
		raw     string
		want    model.SourceType
		wantErr bool
	}{
		{"stream", model.SourceTypeStream, false},
		{"file", model.SourceTypeFile, false},
		{"", "", true},
		{"STREAM", "", true},
		{"vinyl", "", true},
	}

	for _, tt := range tests {
		got, err := model.ParseSourceType(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSourceType(%q) expected error, got %q", tt.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSourceType(%q) returned error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSourceType(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNewSourceIDIsUnique(t *testing.T) {
	a := model.NewSourceID()
	b := model.NewSourceID()
	if a == "" || b == "" {
		t.Fatal("NewSourceID returned an empty id")
	}
	if a == b {
		t.Error("two generated source ids are equal, expected unique")
	}
}
