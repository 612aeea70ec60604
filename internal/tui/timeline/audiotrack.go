package tltui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/clipline/clipline/internal/timecode"
	"github.com/clipline/clipline/internal/timeline"
	"github.com/clipline/clipline/internal/tui/render"
	"github.com/clipline/clipline/internal/tui/theme"
)

// waveBlocks are partial-height bar glyphs, one per eighth of a cell.
var waveBlocks = [...]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// drawAudioTrack renders one amplitude bar per visible column, split into
// played and unplayed color at the playhead. A muted track renders in the
// idle color throughout.
func drawAudioTrack(g *render.Grid, lay Layout, ln lane, st timeline.State, wave []float64, playhead, dur float64, th theme.Theme) {
	trackWidth := st.TrackWidth()
	playedPx := timecode.TimeToX(playhead, dur, trackWidth)

	for c := 0; c < lay.TrackCols; c++ {
		px := st.ScrollLeft + render.ColCenterPx(c)
		if px > trackWidth {
			break
		}
		amp := 0.0
		if len(wave) > 0 {
			i := int(px / trackWidth * float64(len(wave)))
			if i >= len(wave) {
				i = len(wave) - 1
			}
			amp = wave[i]
		}

		fg := th.WaveIdle
		if !ln.Track.Muted && px <= playedPx {
			fg = th.WavePlayed
		}
		drawWaveColumn(g, lay.GutterCols+c, ln.Top, ln.Rows, amp, fg)
	}
}

// drawWaveColumn stacks block glyphs bottom-up to the bar's height. Height
// resolves in eighths of a cell so short bars still register.
func drawWaveColumn(g *render.Grid, x, top, rows int, amp float64, fg lipgloss.Color) {
	if amp < 0 {
		amp = 0
	} else if amp > 1 {
		amp = 1
	}
	eighths := int(amp * float64(rows) * 8)
	if amp > 0 && eighths == 0 {
		eighths = 1
	}
	for r := 0; r < rows; r++ {
		y := top + rows - 1 - r
		rowEighths := eighths - r*8
		if rowEighths <= 0 {
			continue
		}
		if rowEighths > 8 {
			rowEighths = 8
		}
		g.SetRune(x, y, waveBlocks[rowEighths-1], fg)
	}
}

// WaveBucketCount returns how many amplitude buckets the audio lane needs
// at the current track width, one per rendered column.
func WaveBucketCount(trackWidth float64) int {
	n := render.PxToCol(trackWidth)
	if n < 1 {
		n = 1
	}
	return n
}
