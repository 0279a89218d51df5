package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "audiokit",
	Short: "audiokit models playable audio items for playback engines.",
	Long: `audiokit is the item model behind the playback stack: audio items with
identity and display metadata, optional playback capabilities (time-pitch
selection, initial playback offset, asset-loader options), and an artwork
resolution pipeline with cache and object-store backends.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
