package tltui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/clipline/clipline/internal/media"
	"github.com/clipline/clipline/internal/timeline"
	"github.com/clipline/clipline/internal/tui/render"
	"github.com/clipline/clipline/internal/tui/theme"
)

// ThumbSlotWidthPx is the virtual width of one thumbnail slot.
const ThumbSlotWidthPx = 80.0

// ThumbSlotCount returns how many thumbnail slots the current track width
// needs. The caller samples one frame per slot at the slot's midpoint.
func ThumbSlotCount(trackWidth float64) int {
	n := int(math.Ceil(trackWidth / ThumbSlotWidthPx))
	if n < 1 {
		n = 1
	}
	return n
}

// ThumbSlotTimes returns the sample timestamp for each slot, the clip time
// at the slot's horizontal midpoint.
func ThumbSlotTimes(trackWidth, duration float64) []float64 {
	n := ThumbSlotCount(trackWidth)
	times := make([]float64, n)
	for i := range times {
		mid := (float64(i) + 0.5) * ThumbSlotWidthPx
		if mid > trackWidth {
			mid = trackWidth
		}
		times[i] = mid / trackWidth * duration
	}
	return times
}

// drawVideoTrack fills the lane with per-slot dominant colors, or a flat
// placeholder while thumbnails are loading or unavailable. Locked tracks are
// dimmed toward the background so their frozen state reads at a glance.
func drawVideoTrack(g *render.Grid, lay Layout, ln lane, st timeline.State, thumbs []media.RGB, th theme.Theme) {
	trackWidth := st.TrackWidth()
	for c := 0; c < lay.TrackCols; c++ {
		px := st.ScrollLeft + render.ColToPx(c)
		bg := th.VideoFill
		if len(thumbs) > 0 {
			slot := int(px / ThumbSlotWidthPx)
			if slot >= len(thumbs) {
				slot = len(thumbs) - 1
			}
			if px <= trackWidth {
				bg = lipgloss.Color(thumbs[slot].Hex())
			}
		}
		if ln.Track.Locked {
			bg = dimToward(bg, th.Base, 0.55)
		}
		for r := 0; r < ln.Rows; r++ {
			g.SetBg(lay.GutterCols+c, ln.Top+r, bg)
		}
	}
}

// dimToward blends a cell color toward the target in Lab space. Unparseable
// colors are returned as-is.
func dimToward(c, target lipgloss.Color, amount float64) lipgloss.Color {
	from, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	to, err := colorful.Hex(string(target))
	if err != nil {
		return c
	}
	return lipgloss.Color(from.BlendLab(to, amount).Clamped().Hex())
}
