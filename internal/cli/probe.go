package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clipline/clipline/internal/media"
	"github.com/clipline/clipline/internal/timecode"
)

func newProbeCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "probe <file>",
		Short: "Print clip metadata",
		Long:  `Probe a clip with ffprobe and print its duration, dimensions, and frame rate.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(cmd, args[0], jsonOut)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	return cmd
}

func runProbe(cmd *cobra.Command, path string, jsonOut bool) error {
	prober := media.NewFFmpeg(cfg.Media.FFmpegPath, cfg.Media.FFprobePath)
	ctx, cancel := context.WithTimeout(context.Background(), media.LoadTimeout)
	defer cancel()

	res, err := prober.Probe(ctx, path)
	if err != nil {
		return fmt.Errorf("probe %s: %w", path, err)
	}

	w := cmd.OutOrStdout()
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintf(w, "File:       %s\n", path)
	fmt.Fprintf(w, "Duration:   %s (%.3fs)\n", timecode.FormatTime(res.Duration), res.Duration)
	if res.HasVideo {
		fmt.Fprintf(w, "Video:      %dx%d @ %.3f fps\n", res.Width, res.Height, res.FrameRate)
	}
	if res.HasAudio {
		fmt.Fprintln(w, "Audio:      present")
	}
	return nil
}
