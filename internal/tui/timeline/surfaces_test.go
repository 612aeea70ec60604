package tltui

import (
	"math/rand"
	"testing"

	"github.com/clipline/clipline/internal/timeline"
	"github.com/clipline/clipline/internal/tui/render"
	"github.com/clipline/clipline/internal/tui/theme"
)

func TestThumbSlotCount(t *testing.T) {
	tests := []struct {
		width float64
		want  int
	}{
		{1000, 13}, // ceil(1000/80)
		{800, 10},
		{80, 1},
		{81, 2},
		{0, 1},
	}
	for _, tt := range tests {
		if got := ThumbSlotCount(tt.width); got != tt.want {
			t.Errorf("ThumbSlotCount(%v) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestThumbSlotTimes(t *testing.T) {
	times := ThumbSlotTimes(800, 60)
	if len(times) != 10 {
		t.Fatalf("slot count = %d, want 10", len(times))
	}
	// First slot midpoint is 40px into an 800px strip: 3s of a 60s clip.
	if times[0] != 3 {
		t.Errorf("first slot time = %v, want 3", times[0])
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			t.Fatalf("slot times not increasing at %d: %v", i, times)
		}
		if times[i] > 60 {
			t.Fatalf("slot time %v beyond the clip", times[i])
		}
	}
}

func TestWaveBucketCount(t *testing.T) {
	if got := WaveBucketCount(1000); got != 125 {
		t.Errorf("WaveBucketCount(1000) = %d, want 125", got)
	}
	if got := WaveBucketCount(0); got != 1 {
		t.Errorf("WaveBucketCount(0) = %d, want 1", got)
	}
}

func TestDrawWaveColumn(t *testing.T) {
	th := theme.Mocha()
	g := render.New(1, 3)

	// Full amplitude fills every row with solid blocks.
	drawWaveColumn(g, 0, 0, 3, 1, th.WaveIdle)
	for y := 0; y < 3; y++ {
		if c := g.Get(0, y); c.Rune != '█' {
			t.Errorf("row %d = %q, want full block", y, c.Rune)
		}
	}

	// Half amplitude fills the bottom half and leaves the top empty.
	g = render.New(1, 2)
	drawWaveColumn(g, 0, 0, 2, 0.5, th.WaveIdle)
	if c := g.Get(0, 1); c.Rune != '█' {
		t.Errorf("bottom row = %q, want full block", c.Rune)
	}
	if c := g.Get(0, 0); c.Rune != 0 {
		t.Errorf("top row = %q, want empty", c.Rune)
	}

	// Tiny but nonzero amplitude still shows the shortest bar.
	g = render.New(1, 2)
	drawWaveColumn(g, 0, 0, 2, 0.01, th.WaveIdle)
	if c := g.Get(0, 1); c.Rune != '▁' {
		t.Errorf("quiet bar = %q, want smallest block", c.Rune)
	}

	// Zero stays blank.
	g = render.New(1, 2)
	drawWaveColumn(g, 0, 0, 2, 0, th.WaveIdle)
	if c := g.Get(0, 1); c.Rune != 0 {
		t.Errorf("silent bar = %q, want empty", c.Rune)
	}
}

func TestMinimapTimeRoundTrip(t *testing.T) {
	st := testState(t)
	lay := computeLayout(testWidthCells, st, 60)

	for _, want := range []float64{0.5, 15, 30, 45, 59.5} {
		col := lay.GutterCols + minimapCol(want, 60, lay)
		got := MinimapTime(col, lay, 60)
		// One minimap column covers 60/125 ≈ 0.48s; the round trip stays
		// within a column's worth of time.
		if diff := got - want; diff > 0.5 || diff < -0.5 {
			t.Errorf("MinimapTime(minimapCol(%v)) = %v", want, got)
		}
	}
}

func TestMinimapScrollTargetClamps(t *testing.T) {
	s := timeline.NewStore(60, rand.New(rand.NewSource(1)))
	s.SetContainerWidth(testWidthCells * 8)
	s.SetZoom(4) // track width 4000
	st := s.Snapshot()
	lay := computeLayout(testWidthCells, st, 60)

	if got := MinimapScrollTarget(0, st, lay, 60); got != 0 {
		t.Errorf("target for clip start = %v, want 0", got)
	}
	wantMax := st.TrackWidth() - float64(lay.TrackCols)*render.CellWidthPx
	if got := MinimapScrollTarget(60, st, lay, 60); got != wantMax {
		t.Errorf("target for clip end = %v, want %v", got, wantMax)
	}
	mid := MinimapScrollTarget(30, st, lay, 60)
	if mid <= 0 || mid >= wantMax {
		t.Errorf("target for midpoint = %v, want inside (0, %v)", mid, wantMax)
	}
}

func TestDrawRulerPlacesLoopBand(t *testing.T) {
	s := timeline.NewStore(60, rand.New(rand.NewSource(1)))
	s.SetContainerWidth(testWidthCells * 8)
	s.SetLoopRegion(&timeline.LoopRegion{InPoint: 12, OutPoint: 48, Enabled: true})
	st := s.Snapshot()
	lay := computeLayout(testWidthCells, st, 60)
	th := theme.Mocha()

	g := render.New(testWidthCells, lay.GridRows)
	drawRuler(g, lay, st, 60, th)

	// Inside the loop the tick row carries the band background.
	inside := lay.GutterCols + 62 // 30s
	if c := g.Get(inside, lay.RulerTickRow); c.Bg != th.Surface1 {
		t.Errorf("cell inside loop bg = %v, want band", c.Bg)
	}
	outside := lay.GutterCols + 5 // ~2.2s
	if c := g.Get(outside, lay.RulerTickRow); c.Bg == th.Surface1 {
		t.Error("cell outside loop carries the band")
	}
}

func TestDrawRulerMarkerFlag(t *testing.T) {
	s := timeline.NewStore(60, rand.New(rand.NewSource(1)))
	s.SetContainerWidth(testWidthCells * 8)
	s.AddMarker(30, "", "#f38ba8")
	st := s.Snapshot()
	lay := computeLayout(testWidthCells, st, 60)

	g := render.New(testWidthCells, lay.GridRows)
	drawRuler(g, lay, st, 60, theme.Mocha())

	c := g.Get(lay.GutterCols+62, lay.RulerTickRow)
	if c.Rune != '▼' {
		t.Errorf("marker cell = %q, want flag", c.Rune)
	}
	if string(c.Fg) != "#f38ba8" {
		t.Errorf("flag color = %v", c.Fg)
	}
}

func TestDrawVideoTrackPlaceholder(t *testing.T) {
	st := testState(t)
	lay := computeLayout(testWidthCells, st, 60)
	th := theme.Mocha()

	g := render.New(testWidthCells, lay.GridRows)
	drawVideoTrack(g, lay, lay.Lanes[0], st, nil, th)

	c := g.Get(lay.GutterCols+5, lay.Lanes[0].Top)
	if c.Bg != th.VideoFill {
		t.Errorf("placeholder bg = %v, want %v", c.Bg, th.VideoFill)
	}
}

func TestDrawOverlaysPlayhead(t *testing.T) {
	st := testState(t)
	lay := computeLayout(testWidthCells, st, 60)
	th := theme.Mocha()

	g := render.New(testWidthCells, lay.GridRows)
	drawOverlays(g, lay, st, 30, 60, dragState{}, th)

	col := lay.GutterCols + 62
	for y := lay.RulerTickRow; y <= lay.TracksBottom(); y++ {
		c := g.Get(col, y)
		if c.Rune != '│' {
			t.Errorf("playhead missing at row %d: %q", y, c.Rune)
		}
		if c.Fg != th.Playhead {
			t.Errorf("playhead color at row %d = %v", y, c.Fg)
		}
	}
}
