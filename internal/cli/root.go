package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clipline/clipline/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
	noColor bool

	// Build information - set by goreleaser via ldflags
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "clipline",
	Short: "Terminal clip timeline editor",
	Long: `Clipline is an interactive timeline editor for video clips.

It opens a zoomable, scrollable multi-track timeline with playhead
transport, markers, loop regions, and snap-assisted dragging. Frame
metadata, waveforms, and thumbnail strips come from ffmpeg.

Quick Start:
  clipline edit clip.mp4          # Open the editor
  clipline probe clip.mp4         # Print clip metadata
  clipline edit clip.mp4 --export markers.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/clipline/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)

	rootCmd.AddCommand(
		newEditCmd(),
		newProbeCmd(),
	)
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
