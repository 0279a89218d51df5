package cmd

import (
	"testing"

	"audiokit/model"
)

func baseItem(t *testing.T) *model.DefaultAudioItem {
	t.Helper()
	base, err := model.NewDefaultAudioItem("https://x/a.mp3", model.SourceTypeStream)
	if err != nil {
		t.Fatalf("NewDefaultAudioItem returned error: %v", err)
	}
	return base
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestComposeItemPlain(t *testing.T) {
	item, err := composeItem(baseItem(t), capabilityFlags{})
	if err != nil {
		t.Fatalf("composeItem returned error: %v", err)
	}

	if _, ok := model.PitchAlgorithmOf(item); ok {
		t.Error("plain item reports time pitching")
	}
	if _, ok := model.InitialTimeOf(item); ok {
		t.Error("plain item reports initial timing")
	}
	if _, ok := model.AssetOptionsOf(item); ok {
		t.Error("plain item reports asset options")
	}
}

func TestComposeItemCapabilitySubsets(t *testing.T) {
	tests := []struct {
		name    string
		caps    capabilityFlags
		pitch   bool
		timing  bool
		options bool
	}{
		{"pitch only", capabilityFlags{pitch: strPtr("spectral")}, true, false, false},
		{"time only", capabilityFlags{initialTime: floatPtr(12.5)}, false, true, false},
		{"options only", capabilityFlags{options: []string{"k=v"}}, false, false, true},
		{"pitch and time", capabilityFlags{pitch: strPtr("varispeed"), initialTime: floatPtr(1)}, true, true, false},
		{"pitch and options", capabilityFlags{pitch: strPtr("timeDomain"), options: []string{"k=v"}}, true, false, true},
		{"time and options", capabilityFlags{initialTime: floatPtr(2), options: []string{"k=v"}}, false, true, true},
		{"all three", capabilityFlags{pitch: strPtr("spectral"), initialTime: floatPtr(3), options: []string{"k=v"}}, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := composeItem(baseItem(t), tt.caps)
			if err != nil {
				t.Fatalf("composeItem returned error: %v", err)
			}

			if _, ok := model.PitchAlgorithmOf(item); ok != tt.pitch {
				t.Errorf("time pitching presence = %v, want %v", ok, tt.pitch)
			}
			if _, ok := model.InitialTimeOf(item); ok != tt.timing {
				t.Errorf("initial timing presence = %v, want %v", ok, tt.timing)
			}
			if _, ok := model.AssetOptionsOf(item); ok != tt.options {
				t.Errorf("asset options presence = %v, want %v", ok, tt.options)
			}
			if item.GetSourceURL() != "https://x/a.mp3" {
				t.Error("composed item lost the base source URL")
			}
		})
	}
}

func TestComposeItemCapabilityValues(t *testing.T) {
	item, err := composeItem(baseItem(t), capabilityFlags{
		pitch:       strPtr("spectral"),
		initialTime: floatPtr(12.5),
		options:     []string{"User-Agent=audiokit", "precise=true"},
	})
	if err != nil {
		t.Fatalf("composeItem returned error: %v", err)
	}

	if algorithm, _ := model.PitchAlgorithmOf(item); algorithm != model.PitchAlgorithmSpectral {
		t.Errorf("pitch algorithm = %q, want spectral", algorithm)
	}
	if offset, _ := model.InitialTimeOf(item); offset != 12.5 {
		t.Errorf("initial time = %v, want 12.5", offset)
	}
	options, _ := model.AssetOptionsOf(item)
	if options["User-Agent"] != "audiokit" || options["precise"] != "true" {
		t.Errorf("options = %#v, want parsed key=value pairs", options)
	}
}

func TestComposeItemRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		caps capabilityFlags
	}{
		{"unknown algorithm", capabilityFlags{pitch: strPtr("chipmunk")}},
		{"negative time", capabilityFlags{initialTime: floatPtr(-0.5)}},
		{"malformed option", capabilityFlags{options: []string{"no-equals"}}},
		{"empty option key", capabilityFlags{options: []string{"=value"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := composeItem(baseItem(t), tt.caps); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
