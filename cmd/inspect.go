package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"audiokit/model"
)

var (
	inspectURL        string
	inspectType       string
	inspectSourceID   string
	inspectTitle      string
	inspectArtist     string
	inspectAlbum      string
	inspectArtworkURL string
	inspectPitch      string
	inspectTime       float64
	inspectOptions    []string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Build an audio item from flags and report its capabilities",
	Long: `Constructs an audio item the way a producer would and prints the view a
playback engine gets through the base contract and capability queries. Flags
left unset leave the matching capability absent, not defaulted.`,
	Run: func(cmd *cobra.Command, args []string) {
		sourceType, err := model.ParseSourceType(inspectType)
		if err != nil {
			log.Fatalf("Invalid --type: %v", err)
		}

		base, err := model.NewDefaultAudioItem(inspectURL, sourceType)
		if err != nil {
			log.Fatalf("Invalid item: %v", err)
		}
		base.SourceID = inspectSourceID
		base.Title = inspectTitle
		base.Artist = inspectArtist
		base.AlbumTitle = inspectAlbum
		base.ArtworkURL = inspectArtworkURL

		caps := capabilityFlags{}
		if cmd.Flags().Changed("pitch") {
			caps.pitch = &inspectPitch
		}
		if cmd.Flags().Changed("initial-time") {
			caps.initialTime = &inspectTime
		}
		if cmd.Flags().Changed("option") {
			caps.options = inspectOptions
		}

		item, err := composeItem(base, caps)
		if err != nil {
			log.Fatalf("Invalid capability data: %v", err)
		}

		printReport(item)
	},
}

// capabilityFlags records which optional capabilities the producer asked
// for; a nil field means the capability stays absent entirely.
type capabilityFlags struct {
	pitch       *string
	initialTime *float64
	options     []string
}

// composeItem bundles the base item with the requested capabilities, the
// same way an embedding producer would.
func composeItem(base *model.DefaultAudioItem, caps capabilityFlags) (model.AudioItem, error) {
	hasPitch := caps.pitch != nil
	hasTime := caps.initialTime != nil
	hasOptions := caps.options != nil

	var algorithm model.PitchAlgorithm
	if hasPitch {
		algorithm = model.PitchAlgorithm(*caps.pitch)
		if !algorithm.Valid() {
			return nil, fmt.Errorf("unknown pitch algorithm %q", *caps.pitch)
		}
	}

	var initialTime float64
	if hasTime {
		initialTime = *caps.initialTime
		if initialTime < 0 {
			return nil, fmt.Errorf("negative initial time %v", initialTime)
		}
	}

	var options map[string]any
	if hasOptions {
		options = make(map[string]any, len(caps.options))
		for _, pair := range caps.options {
			key, value, found := strings.Cut(pair, "=")
			if !found || key == "" {
				return nil, fmt.Errorf("option %q is not key=value", pair)
			}
			options[key] = value
		}
	}

	switch {
	case hasPitch && hasTime && hasOptions:
		return &fullItem{*base, algorithm, initialTime, options}, nil
	case hasPitch && hasTime:
		return &pitchedTimedItem{*base, algorithm, initialTime}, nil
	case hasPitch && hasOptions:
		return &pitchedOptionedItem{*base, algorithm, options}, nil
	case hasTime && hasOptions:
		return &timedOptionedItem{*base, initialTime, options}, nil
	case hasPitch:
		return &model.TimePitchedAudioItem{DefaultAudioItem: *base, PitchAlgorithm: algorithm}, nil
	case hasTime:
		return &model.TimedAudioItem{DefaultAudioItem: *base, InitialTime: initialTime}, nil
	case hasOptions:
		return &model.AssetOptionedAudioItem{DefaultAudioItem: *base, AssetOptions: options}, nil
	default:
		return base, nil
	}
}

// Producer-side carriers for capability subsets the model does not ship
// ready-made; any consumer can define these the same way.

type pitchedTimedItem struct {
	model.DefaultAudioItem
	algorithm   model.PitchAlgorithm
	initialTime float64
}

func (i *pitchedTimedItem) GetPitchAlgorithm() model.PitchAlgorithm { return i.algorithm }
func (i *pitchedTimedItem) GetInitialTime() float64                 { return i.initialTime }

type pitchedOptionedItem struct {
	model.DefaultAudioItem
	algorithm model.PitchAlgorithm
	options   map[string]any
}

func (i *pitchedOptionedItem) GetPitchAlgorithm() model.PitchAlgorithm { return i.algorithm }
func (i *pitchedOptionedItem) GetAssetOptions() map[string]any         { return i.options }

type timedOptionedItem struct {
	model.DefaultAudioItem
	initialTime float64
	options     map[string]any
}

func (i *timedOptionedItem) GetInitialTime() float64         { return i.initialTime }
func (i *timedOptionedItem) GetAssetOptions() map[string]any { return i.options }

type fullItem struct {
	model.DefaultAudioItem
	algorithm   model.PitchAlgorithm
	initialTime float64
	options     map[string]any
}

func (i *fullItem) GetPitchAlgorithm() model.PitchAlgorithm { return i.algorithm }
func (i *fullItem) GetInitialTime() float64                 { return i.initialTime }
func (i *fullItem) GetAssetOptions() map[string]any         { return i.options }

// printReport renders the item exactly as a playback engine discovers it:
// through the base contract plus capability queries.
func printReport(item model.AudioItem) {
	fmt.Println("Base contract:")
	fmt.Printf("  sourceUrl:  %s\n", item.GetSourceURL())
	fmt.Printf("  sourceType: %s\n", item.GetSourceType())
	printOptional("sourceId", item.GetSourceID())
	printOptional("title", item.GetTitle())
	printOptional("artist", item.GetArtist())
	printOptional("albumTitle", item.GetAlbumTitle())
	printOptional("artworkUrl", item.GetArtworkURL())

	fmt.Println("Capabilities:")
	if algorithm, ok := model.PitchAlgorithmOf(item); ok {
		fmt.Printf("  timePitching:     present (%s)\n", algorithm)
	} else {
		fmt.Printf("  timePitching:     absent (engine falls back to %s)\n", algorithm)
	}
	if offset, ok := model.InitialTimeOf(item); ok {
		fmt.Printf("  initialTiming:    present (%.3fs)\n", offset)
	} else {
		fmt.Println("  initialTiming:    absent (playback starts at 0)")
	}
	if options, ok := model.AssetOptionsOf(item); ok {
		fmt.Printf("  assetOptions:     present (%d entries)\n", len(options))
		for key, value := range options {
			fmt.Printf("    %s = %v\n", key, value)
		}
	} else {
		fmt.Println("  assetOptions:     absent (loader uses no extra options)")
	}
}

func printOptional(name, value string) {
	if value == "" {
		fmt.Printf("  %-10s (unset)\n", name+":")
		return
	}
	fmt.Printf("  %-10s %s\n", name+":", value)
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectURL, "url", "", "source URL (required)")
	inspectCmd.Flags().StringVar(&inspectType, "type", "stream", "source type: stream or file")
	inspectCmd.Flags().StringVar(&inspectSourceID, "source-id", "", "opaque source identifier")
	inspectCmd.Flags().StringVar(&inspectTitle, "title", "", "display title")
	inspectCmd.Flags().StringVar(&inspectArtist, "artist", "", "display artist")
	inspectCmd.Flags().StringVar(&inspectAlbum, "album", "", "display album title")
	inspectCmd.Flags().StringVar(&inspectArtworkURL, "artwork-url", "", "remote artwork URL")
	inspectCmd.Flags().StringVar(&inspectPitch, "pitch", "", "time-pitch algorithm: lowQualityZeroLatency, timeDomain, spectral, varispeed")
	inspectCmd.Flags().Float64Var(&inspectTime, "initial-time", 0, "initial playback offset in seconds")
	inspectCmd.Flags().StringArrayVar(&inspectOptions, "option", nil, "asset loader option as key=value (repeatable)")
	inspectCmd.MarkFlagRequired("url")

	inspectCmd.Example = `  # A plain stream item
  audiokit inspect --url https://x/a.mp3 --title "Song"

  # A file item that starts 12.5 seconds in with a spectral stretch
  audiokit inspect --url /music/a.flac --type file --initial-time 12.5 --pitch spectral

  # Loader options for the asset-loading facility
  audiokit inspect --url https://x/a.mp3 --option "User-Agent=audiokit" --option precise=true`
}
