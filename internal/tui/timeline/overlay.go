package tltui

import (
	"github.com/clipline/clipline/internal/timecode"
	"github.com/clipline/clipline/internal/timeline"
	"github.com/clipline/clipline/internal/tui/render"
	"github.com/clipline/clipline/internal/tui/theme"
)

// drawOverlays paints everything that floats above the track surfaces:
// marker guides, loop handles, the playhead, and the hover readout. Draw
// order matters; the playhead wins every cell it crosses.
func drawOverlays(g *render.Grid, lay Layout, st timeline.State, playhead, dur float64, drag dragState, th theme.Theme) {
	if dur <= 0 || len(lay.Lanes) == 0 {
		return
	}
	top := lay.TracksTop
	bottom := lay.TracksBottom()

	// Dashed marker guides through the track band. The dragged marker gets
	// a solid guide so the grab is visible.
	for _, m := range st.Markers {
		col, ok := trackCol(m.Time, st, lay, dur)
		if !ok {
			continue
		}
		guide := '┊'
		if drag.kind == dragMarker && drag.id == m.ID {
			guide = '│'
		}
		g.VLine(col, top, bottom, guide, markerColor(m, th))
	}

	// Loop handles bracket the region across the full track band.
	if st.Loop != nil {
		color := th.Overlay
		if st.Loop.Enabled {
			color = th.Mauve
		}
		if col, ok := trackCol(st.Loop.InPoint, st, lay, dur); ok {
			g.VLine(col, top, bottom, '▐', color)
		}
		if col, ok := trackCol(st.Loop.OutPoint, st, lay, dur); ok {
			g.VLine(col, top, bottom, '▌', color)
		}
	}

	// Playhead: through the tick row and the whole track band.
	if col, ok := trackCol(playhead, st, lay, dur); ok {
		g.VLine(col, lay.RulerTickRow, bottom, '│', th.Playhead)
	}

	// Hover readout: the time under the pointer, shown on the label row
	// near the hovered column.
	if st.Hovered && drag.kind == dragNone {
		if col, ok := trackCol(st.HoveredTime, st, lay, dur); ok {
			label := timecode.FormatTime(st.HoveredTime)
			x := col - len(label)/2
			if x < lay.GutterCols {
				x = lay.GutterCols
			}
			if x+len(label) > lay.GutterCols+lay.TrackCols {
				x = lay.GutterCols + lay.TrackCols - len(label)
			}
			g.TextOnBg(x, lay.RulerLabelRow, label, th.Text, th.Surface1)
		}
	}
}
