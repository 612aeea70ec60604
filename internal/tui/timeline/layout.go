package tltui

import (
	"github.com/clipline/clipline/internal/timecode"
	"github.com/clipline/clipline/internal/timeline"
	"github.com/clipline/clipline/internal/tui/render"
)

// RegionKind identifies what a screen rectangle does when clicked.
type RegionKind int

const (
	RegionNone RegionKind = iota
	RegionToolbarHide
	RegionToolbarSnap
	RegionToolbarAddMarker
	RegionToolbarZoomOut
	RegionToolbarZoomIn
	RegionToolbarZoomSlider
	RegionToolbarZoomReadout
	RegionRuler
	RegionTrackArea
	RegionTrackToggleVisible
	RegionTrackToggleLock
	RegionTrackToggleMute
	RegionResizer
	RegionMinimap
	RegionMarkerFlag
	RegionLoopHandleIn
	RegionLoopHandleOut
	RegionTimecode
)

// Region is a clickable rectangle. NoSeek regions opt out of the
// click-to-seek fallback: buttons, labels, handles, and the minimap own
// their clicks entirely.
type Region struct {
	Kind   RegionKind
	X, Y   int
	W, H   int
	ID     string // track or marker id where applicable
	NoSeek bool
}

func (r Region) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// lane is one visible track's row band.
type lane struct {
	Track timeline.Track
	Top   int
	Rows  int
}

// Layout maps the timeline state onto grid rows and clickable regions.
// It is recomputed from scratch for every render and every pointer event;
// nothing here is cached across state changes.
type Layout struct {
	WidthCells int
	GutterCols int
	TrackCols  int

	ToolbarRow    int
	RulerLabelRow int
	RulerTickRow  int
	TracksTop     int
	Lanes         []lane
	MinimapRow    int
	GridRows      int

	Regions []Region
}

// TracksBottom returns the last row of the track band, inclusive.
func (l Layout) TracksBottom() int {
	if len(l.Lanes) == 0 {
		return l.TracksTop - 1
	}
	last := l.Lanes[len(l.Lanes)-1]
	return last.Top + last.Rows - 1
}

// RegionAt returns the topmost region containing the cell, or nil. Regions
// are searched in reverse so later (more specific) regions win.
func (l Layout) RegionAt(x, y int) *Region {
	for i := len(l.Regions) - 1; i >= 0; i-- {
		if l.Regions[i].contains(x, y) {
			return &l.Regions[i]
		}
	}
	return nil
}

// maxScroll is the largest valid scroll offset at the current zoom: past it
// the view would show blank space beyond the end of the track.
func maxScroll(st timeline.State, lay Layout) float64 {
	max := st.TrackWidth() - float64(lay.TrackCols)*render.CellWidthPx
	if max < 0 {
		max = 0
	}
	return max
}

// trackCol converts a time to a visible track-area column, returning false
// when the position is scrolled out of view.
func trackCol(t float64, st timeline.State, lay Layout, dur float64) (int, bool) {
	px := timecode.TimeToX(t, dur, st.TrackWidth())
	col := render.PxToCol(px - st.ScrollLeft)
	if col < 0 || col >= lay.TrackCols {
		return 0, false
	}
	return lay.GutterCols + col, true
}

// computeLayout lays out rows top to bottom: toolbar, two ruler rows, one
// band per visible track with a resizer row after it, then the minimap.
// The status/timecode line renders below the grid and is accounted for in
// Regions only.
func computeLayout(widthCells int, st timeline.State, dur float64) Layout {
	lay := Layout{
		WidthCells: widthCells,
		GutterCols: render.PxToCol(timeline.TrackLabelWidth),
	}
	lay.TrackCols = widthCells - lay.GutterCols - render.PxToCol(timeline.TrackPadding)
	if lay.TrackCols < 1 {
		lay.TrackCols = 1
	}

	lay.ToolbarRow = 0
	lay.RulerLabelRow = 1
	lay.RulerTickRow = 2
	lay.TracksTop = 3

	row := lay.TracksTop
	for _, t := range st.Tracks {
		if !t.Visible {
			continue
		}
		ln := lane{Track: t, Top: row, Rows: render.RowsForHeight(t.Height)}
		lay.Lanes = append(lay.Lanes, ln)
		row += ln.Rows

		// Track area (seekable scrub zone) and gutter toggle cells.
		lay.Regions = append(lay.Regions,
			Region{Kind: RegionTrackArea, X: lay.GutterCols, Y: ln.Top, W: lay.TrackCols, H: ln.Rows, ID: t.ID},
			Region{Kind: RegionTrackToggleVisible, X: gutterToggleX, Y: ln.Top, W: 1, H: 1, ID: t.ID, NoSeek: true},
			Region{Kind: RegionTrackToggleLock, X: gutterToggleX + 1, Y: ln.Top, W: 1, H: 1, ID: t.ID, NoSeek: true},
		)
		if t.Type == timeline.TrackAudio {
			lay.Regions = append(lay.Regions,
				Region{Kind: RegionTrackToggleMute, X: gutterToggleX + 2, Y: ln.Top, W: 1, H: 1, ID: t.ID, NoSeek: true})
		}

		// Resizer strip below each track.
		lay.Regions = append(lay.Regions,
			Region{Kind: RegionResizer, X: lay.GutterCols, Y: row, W: lay.TrackCols, H: 1, ID: t.ID, NoSeek: true})
		row++
	}

	lay.MinimapRow = row
	lay.GridRows = row + 1

	lay.Regions = append(lay.Regions,
		Region{Kind: RegionRuler, X: lay.GutterCols, Y: lay.RulerLabelRow, W: lay.TrackCols, H: 2},
		Region{Kind: RegionMinimap, X: lay.GutterCols, Y: lay.MinimapRow, W: lay.TrackCols, H: 1, NoSeek: true},
		Region{Kind: RegionTimecode, X: 2, Y: lay.GridRows, W: 17, H: 1, NoSeek: true},
	)
	lay.Regions = append(lay.Regions, toolbarRegions(lay)...)

	// Marker flags sit on the tick row; loop handles span the track band.
	// Both are appended last so they win over the underlying surfaces.
	if st.Loop != nil && len(lay.Lanes) > 0 {
		if col, ok := trackCol(st.Loop.InPoint, st, lay, dur); ok {
			lay.Regions = append(lay.Regions,
				Region{Kind: RegionLoopHandleIn, X: col, Y: lay.TracksTop, W: 1, H: lay.TracksBottom() - lay.TracksTop + 1, NoSeek: true})
		}
		if col, ok := trackCol(st.Loop.OutPoint, st, lay, dur); ok {
			lay.Regions = append(lay.Regions,
				Region{Kind: RegionLoopHandleOut, X: col, Y: lay.TracksTop, W: 1, H: lay.TracksBottom() - lay.TracksTop + 1, NoSeek: true})
		}
	}
	for _, m := range st.Markers {
		if col, ok := trackCol(m.Time, st, lay, dur); ok {
			lay.Regions = append(lay.Regions,
				Region{Kind: RegionMarkerFlag, X: col, Y: lay.RulerTickRow, W: 1, H: 1, ID: m.ID, NoSeek: true})
		}
	}

	return lay
}

// gutterToggleX is the column of the first per-track toggle glyph.
const gutterToggleX = 6
