package tltui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/clipline/clipline/internal/timecode"
	"github.com/clipline/clipline/internal/timeline"
	"github.com/clipline/clipline/internal/tui/render"
	"github.com/clipline/clipline/internal/tui/theme"
)

// drawRuler renders minor/major ticks with labels on major ticks, a
// highlight band for an enabled loop region, and marker flags along the
// tick row. Tick density follows the zoom level through the shared
// interval table.
func drawRuler(g *render.Grid, lay Layout, st timeline.State, dur float64, th theme.Theme) {
	if dur <= 0 {
		return
	}
	trackWidth := st.TrackWidth()
	interval := timecode.IntervalForDensity(trackWidth / dur)

	// Loop highlight band behind the ticks.
	if st.Loop != nil && st.Loop.Enabled {
		inCol := render.PxToCol(timecode.TimeToX(st.Loop.InPoint, dur, trackWidth) - st.ScrollLeft)
		outCol := render.PxToCol(timecode.TimeToX(st.Loop.OutPoint, dur, trackWidth) - st.ScrollLeft)
		for c := inCol; c <= outCol; c++ {
			if c >= 0 && c < lay.TrackCols {
				g.SetBg(lay.GutterCols+c, lay.RulerTickRow, th.Surface1)
			}
		}
	}

	// Minor ticks, then major ticks with labels. Column dedup is implicit:
	// later writes overwrite earlier ones, so a major tick beats a minor
	// tick sharing its cell.
	steps := int(dur/interval.Minor) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) * interval.Minor
		if t > dur {
			break
		}
		col := render.PxToCol(timecode.TimeToX(t, dur, trackWidth) - st.ScrollLeft)
		if col < 0 || col >= lay.TrackCols {
			continue
		}
		g.SetRune(lay.GutterCols+col, lay.RulerTickRow, '·', th.Surface2)
	}

	lastLabelEnd := -2
	majors := int(dur/interval.Major) + 1
	for i := 0; i <= majors; i++ {
		t := float64(i) * interval.Major
		if t > dur {
			break
		}
		col := render.PxToCol(timecode.TimeToX(t, dur, trackWidth) - st.ScrollLeft)
		if col < 0 || col >= lay.TrackCols {
			continue
		}
		x := lay.GutterCols + col
		g.SetRune(x, lay.RulerTickRow, '╵', th.Overlay)

		label := timecode.FormatRulerLabel(t)
		if x > lastLabelEnd+1 && x+len(label) <= lay.GutterCols+lay.TrackCols {
			g.Text(x, lay.RulerLabelRow, label, th.Subtext)
			lastLabelEnd = x + len(label)
		}
	}

	// Marker flags sit on top of the ticks.
	for _, m := range st.Markers {
		col := render.PxToCol(timecode.TimeToX(m.Time, dur, trackWidth) - st.ScrollLeft)
		if col < 0 || col >= lay.TrackCols {
			continue
		}
		g.SetRune(lay.GutterCols+col, lay.RulerTickRow, '▼', markerColor(m, th))
	}
}

func markerColor(m timeline.Marker, th theme.Theme) lipgloss.Color {
	if m.Color != "" {
		return lipgloss.Color(m.Color)
	}
	return th.Peach
}
