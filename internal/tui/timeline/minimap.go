package tltui

import (
	"github.com/clipline/clipline/internal/timecode"
	"github.com/clipline/clipline/internal/timeline"
	"github.com/clipline/clipline/internal/tui/render"
	"github.com/clipline/clipline/internal/tui/theme"
)

// drawMinimap renders the whole clip compressed into one row: the visible
// viewport as a brighter band, loop region, marker dots, and the playhead.
func drawMinimap(g *render.Grid, lay Layout, st timeline.State, playhead, dur float64, th theme.Theme) {
	if dur <= 0 {
		return
	}
	y := lay.MinimapRow
	for c := 0; c < lay.TrackCols; c++ {
		g.Set(lay.GutterCols+c, y, render.Cell{Rune: '─', Fg: th.Surface1, Bg: th.Surface0})
	}

	// Viewport band: the slice of the zoomed track currently on screen.
	trackWidth := st.TrackWidth()
	viewPx := float64(lay.TrackCols) * render.CellWidthPx
	startFrac := st.ScrollLeft / trackWidth
	endFrac := (st.ScrollLeft + viewPx) / trackWidth
	if endFrac > 1 {
		endFrac = 1
	}
	startCol := int(startFrac * float64(lay.TrackCols))
	endCol := int(endFrac * float64(lay.TrackCols))
	for c := startCol; c <= endCol && c < lay.TrackCols; c++ {
		g.SetBg(lay.GutterCols+c, y, th.Surface2)
	}

	if st.Loop != nil && st.Loop.Enabled {
		in := minimapCol(st.Loop.InPoint, dur, lay)
		out := minimapCol(st.Loop.OutPoint, dur, lay)
		for c := in; c <= out && c < lay.TrackCols; c++ {
			g.SetBg(lay.GutterCols+c, y, th.LoopBand)
		}
	}

	for _, m := range st.Markers {
		c := minimapCol(m.Time, dur, lay)
		g.SetRune(lay.GutterCols+c, y, '•', markerColor(m, th))
	}

	c := minimapCol(playhead, dur, lay)
	g.SetRune(lay.GutterCols+c, y, '┃', th.Playhead)
}

func minimapCol(t, dur float64, lay Layout) int {
	c := int(timecode.Clamp(t, 0, dur) / dur * float64(lay.TrackCols))
	if c >= lay.TrackCols {
		c = lay.TrackCols - 1
	}
	if c < 0 {
		c = 0
	}
	return c
}

// MinimapTime converts a minimap column back to clip time.
func MinimapTime(col int, lay Layout, dur float64) float64 {
	frac := (float64(col-lay.GutterCols) + 0.5) / float64(lay.TrackCols)
	return timecode.Clamp(frac*dur, 0, dur)
}

// MinimapScrollTarget returns the scroll offset that centers the viewport
// on the given time. The model eases toward it rather than jumping.
func MinimapScrollTarget(t float64, st timeline.State, lay Layout, dur float64) float64 {
	viewPx := float64(lay.TrackCols) * render.CellWidthPx
	target := timecode.TimeToX(t, dur, st.TrackWidth()) - viewPx/2
	return timecode.Clamp(target, 0, maxScroll(st, lay))
}
