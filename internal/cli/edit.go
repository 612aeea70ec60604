package cli

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/clipline/clipline/internal/media"
	"github.com/clipline/clipline/internal/player"
	"github.com/clipline/clipline/internal/timeline"
	"github.com/clipline/clipline/internal/tui/theme"
	tltui "github.com/clipline/clipline/internal/tui/timeline"
	"github.com/clipline/clipline/internal/watcher"
)

// Smallest terminal the layout can fit: gutter, a usable track area, four
// chrome rows, two lanes, the minimap, and the status line.
const (
	minTermCols = 40
	minTermRows = 12
)

func newEditCmd() *cobra.Command {
	var exportPath string
	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Open the timeline editor for a clip",
		Long: `Open the interactive timeline editor.

The editor probes the clip with ffprobe for duration and frame rate,
renders an audio waveform and a video thumbnail strip, and opens the
multi-track timeline. Markers and the loop region set during the session
can be written out on exit with --export.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportPath == "" {
				exportPath = cfg.Export.Path
			}
			return runEdit(args[0], exportPath)
		},
	}
	cmd.Flags().StringVar(&exportPath, "export", "", "write markers and loop region to a YAML file on exit")
	return cmd
}

func runEdit(path, exportPath string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("the editor needs an interactive terminal")
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < minTermCols || h < minTermRows) {
		return fmt.Errorf("terminal is %dx%d, the editor needs at least %dx%d", w, h, minTermCols, minTermRows)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("open clip: %w", err)
	}

	prober := media.NewFFmpeg(cfg.Media.FFmpegPath, cfg.Media.FFprobePath)
	ctx, cancel := context.WithTimeout(context.Background(), media.LoadTimeout)
	probe, err := prober.Probe(ctx, path)
	cancel()
	if err != nil {
		return fmt.Errorf("probe %s: %w", path, err)
	}
	if probe.Duration <= 0 {
		return fmt.Errorf("probe %s: no duration reported", path)
	}

	frameRate := probe.FrameRate
	if frameRate <= 0 {
		frameRate = cfg.FrameRate
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	store := timeline.NewStore(probe.Duration, rng)
	store.SetSnapEnabled(cfg.SnapEnabled)
	store.SetPlaybackSpeed(cfg.Playback.Speed)

	p := player.New(probe.Duration, frameRate)
	p.SetSpeed(cfg.Playback.Speed)

	if noColor || theme.NoColorEnabled() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	th := theme.ByName(cfg.Theme)

	var watch *watcher.FileWatcher
	if cfg.Media.WatchFile {
		watch, err = watcher.Watch(path, watcher.DefaultDebounce)
		if err != nil {
			// The editor works without reload; the clip just goes stale
			// if it is re-encoded underneath us.
			watch = nil
		}
	}

	tctx := &tltui.Context{
		Store:  store,
		Player: p,
		Theme:  th,
		Path:   path,
		Prober: prober,
	}
	model := tltui.NewModel(tctx, rng, watch)

	prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	if exportPath != "" {
		if err := writeExport(exportPath, path, store.Snapshot(), probe.Duration); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Printf("wrote %s\n", exportPath)
	}
	return nil
}

// Export document shape. Times are seconds from clip start.
type exportDoc struct {
	Clip     string         `yaml:"clip"`
	Duration float64        `yaml:"duration"`
	Markers  []exportMarker `yaml:"markers"`
	Loop     *exportLoop    `yaml:"loop,omitempty"`
}

type exportMarker struct {
	Time  float64 `yaml:"time"`
	Label string  `yaml:"label,omitempty"`
	Color string  `yaml:"color,omitempty"`
}

type exportLoop struct {
	In  float64 `yaml:"in"`
	Out float64 `yaml:"out"`
}

func writeExport(dest, clip string, st timeline.State, duration float64) error {
	doc := exportDoc{Clip: clip, Duration: duration, Markers: []exportMarker{}}
	for _, m := range st.Markers {
		doc.Markers = append(doc.Markers, exportMarker{Time: m.Time, Label: m.Label, Color: m.Color})
	}
	if st.Loop != nil && st.Loop.Enabled {
		doc.Loop = &exportLoop{In: st.Loop.InPoint, Out: st.Loop.OutPoint}
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, out, 0o644)
}
