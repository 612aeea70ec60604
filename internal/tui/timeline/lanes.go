package tltui

import (
	"github.com/clipline/clipline/internal/timeline"
	"github.com/clipline/clipline/internal/tui/render"
	"github.com/clipline/clipline/internal/tui/theme"
)

// drawLaneChrome paints the gutter for one track lane: the type label,
// the toggle glyphs, and the resizer strip underneath the lane. The
// toggle glyph columns match the regions computeLayout registers.
func drawLaneChrome(g *render.Grid, lay Layout, ln lane, th theme.Theme) {
	t := ln.Track

	label := "Video"
	if t.Type == timeline.TrackAudio {
		label = "Audio"
	}
	g.Text(0, ln.Top, label, th.Subtext)

	eye := '◉'
	if !t.Visible {
		eye = '◌'
	}
	g.SetRune(gutterToggleX, ln.Top, eye, th.Overlay)

	lockColor := th.Overlay
	lock := '○'
	if t.Locked {
		lock = '●'
		lockColor = th.Yellow
	}
	g.SetRune(gutterToggleX+1, ln.Top, lock, lockColor)

	if t.Type == timeline.TrackAudio {
		muteColor := th.Overlay
		mute := '♪'
		if t.Muted {
			mute = '×'
			muteColor = th.Red
		}
		g.SetRune(gutterToggleX+2, ln.Top, mute, muteColor)
	}

	// Resizer strip below the lane.
	for c := 0; c < lay.TrackCols; c++ {
		g.SetRune(lay.GutterCols+c, ln.Top+ln.Rows, '╌', th.Surface0)
	}
}
