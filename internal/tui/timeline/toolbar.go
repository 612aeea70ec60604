package tltui

import (
	"fmt"
	"math"

	"github.com/clipline/clipline/internal/timeline"
	"github.com/clipline/clipline/internal/tui/render"
	"github.com/clipline/clipline/internal/tui/theme"
)

// Toolbar cell geometry. Drawing and hit regions share these so a click
// always lands on what was drawn.
const (
	tbHideX       = 1
	tbHideW       = 6
	tbSnapX       = 10
	tbSnapW       = 6
	tbMarkerX     = 19
	tbMarkerW     = 6
	tbZoomOutX    = 28
	tbSliderX     = 30
	tbSliderW     = 12
	tbZoomInX     = 43
	tbReadoutX    = 47
	tbReadoutW    = 4
	tbSliderSteps = 0.125
)

func toolbarRegions(lay Layout) []Region {
	y := lay.ToolbarRow
	return []Region{
		{Kind: RegionToolbarHide, X: tbHideX, Y: y, W: tbHideW, H: 1, NoSeek: true},
		{Kind: RegionToolbarSnap, X: tbSnapX, Y: y, W: tbSnapW, H: 1, NoSeek: true},
		{Kind: RegionToolbarAddMarker, X: tbMarkerX, Y: y, W: tbMarkerW, H: 1, NoSeek: true},
		{Kind: RegionToolbarZoomOut, X: tbZoomOutX, Y: y, W: 1, H: 1, NoSeek: true},
		{Kind: RegionToolbarZoomSlider, X: tbSliderX, Y: y, W: tbSliderW, H: 1, NoSeek: true},
		{Kind: RegionToolbarZoomIn, X: tbZoomInX, Y: y, W: 1, H: 1, NoSeek: true},
		{Kind: RegionToolbarZoomReadout, X: tbReadoutX, Y: y, W: tbReadoutW, H: 1, NoSeek: true},
	}
}

// sliderZoom maps a click column within the slider to a zoom level,
// rounded to the slider step.
func sliderZoom(colInSlider int) float64 {
	if colInSlider < 0 {
		colInSlider = 0
	}
	if colInSlider > tbSliderW-1 {
		colInSlider = tbSliderW - 1
	}
	frac := float64(colInSlider) / float64(tbSliderW-1)
	zoom := timeline.MinZoom + frac*(timeline.MaxZoom-timeline.MinZoom)
	return math.Round(zoom/tbSliderSteps) * tbSliderSteps
}

func drawToolbar(g *render.Grid, lay Layout, st timeline.State, th theme.Theme) {
	y := lay.ToolbarRow

	g.Text(tbHideX, y, "⏷ hide", th.Subtext)

	snapColor := th.Overlay
	snapMark := "✗"
	if st.SnapEnabled {
		snapColor = th.Green
		snapMark = "✓"
	}
	g.Text(tbSnapX, y, "snap "+snapMark, snapColor)

	g.Text(tbMarkerX, y, "⚑ mark", th.Peach)

	zoomOutColor := th.Text
	if st.ZoomLevel <= timeline.MinZoom {
		zoomOutColor = th.Surface2
	}
	g.SetRune(tbZoomOutX, y, '−', zoomOutColor)

	knob := int(math.Round((st.ZoomLevel - timeline.MinZoom) / (timeline.MaxZoom - timeline.MinZoom) * float64(tbSliderW-1)))
	for i := 0; i < tbSliderW; i++ {
		r := '─'
		color := th.Surface2
		if i == knob {
			r = '●'
			color = th.Blue
		}
		g.SetRune(tbSliderX+i, y, r, color)
	}

	zoomInColor := th.Text
	if st.ZoomLevel >= timeline.MaxZoom {
		zoomInColor = th.Surface2
	}
	g.SetRune(tbZoomInX, y, '+', zoomInColor)

	readout := fmt.Sprintf("%d%%", int(math.Round(st.ZoomLevel*100)))
	g.Text(tbReadoutX, y, readout, th.Lavender)
}
