package tltui

import (
	"math/rand"
	"testing"

	"github.com/clipline/clipline/internal/timeline"
)

// 137 cells at 8px each give a 1096px container, which leaves a track area
// of exactly 1000px after the 80px gutter and 16px padding.
const testWidthCells = 137

func testState(t *testing.T) timeline.State {
	t.Helper()
	s := timeline.NewStore(60, rand.New(rand.NewSource(1)))
	s.SetContainerWidth(testWidthCells * 8)
	return s.Snapshot()
}

func TestComputeLayoutRows(t *testing.T) {
	st := testState(t)
	lay := computeLayout(testWidthCells, st, 60)

	if lay.GutterCols != 10 {
		t.Errorf("GutterCols = %d, want 10", lay.GutterCols)
	}
	if lay.TrackCols != 125 {
		t.Errorf("TrackCols = %d, want 125", lay.TrackCols)
	}
	if lay.ToolbarRow != 0 || lay.RulerLabelRow != 1 || lay.RulerTickRow != 2 || lay.TracksTop != 3 {
		t.Errorf("header rows = %d/%d/%d/%d", lay.ToolbarRow, lay.RulerLabelRow, lay.RulerTickRow, lay.TracksTop)
	}

	// Video 60px = 3 rows, audio 40px = 2 rows, one resizer row after each.
	if len(lay.Lanes) != 2 {
		t.Fatalf("lane count = %d, want 2", len(lay.Lanes))
	}
	if lay.Lanes[0].Top != 3 || lay.Lanes[0].Rows != 3 {
		t.Errorf("video lane = top %d rows %d, want 3/3", lay.Lanes[0].Top, lay.Lanes[0].Rows)
	}
	if lay.Lanes[1].Top != 7 || lay.Lanes[1].Rows != 2 {
		t.Errorf("audio lane = top %d rows %d, want 7/2", lay.Lanes[1].Top, lay.Lanes[1].Rows)
	}
	if lay.MinimapRow != 10 {
		t.Errorf("MinimapRow = %d, want 10", lay.MinimapRow)
	}
	if lay.GridRows != 11 {
		t.Errorf("GridRows = %d, want 11", lay.GridRows)
	}
	if lay.TracksBottom() != 8 {
		t.Errorf("TracksBottom = %d, want 8", lay.TracksBottom())
	}
}

func TestComputeLayoutHiddenTrack(t *testing.T) {
	s := timeline.NewStore(60, rand.New(rand.NewSource(1)))
	s.SetContainerWidth(testWidthCells * 8)
	st := s.Snapshot()
	s.ToggleTrackVisibility(st.Tracks[0].ID)

	lay := computeLayout(testWidthCells, s.Snapshot(), 60)
	if len(lay.Lanes) != 1 {
		t.Fatalf("lane count with hidden video = %d, want 1", len(lay.Lanes))
	}
	if lay.Lanes[0].Track.Type != timeline.TrackAudio {
		t.Errorf("remaining lane = %v, want audio", lay.Lanes[0].Track.Type)
	}
}

func TestRegionAtPrefersLaterRegions(t *testing.T) {
	s := timeline.NewStore(60, rand.New(rand.NewSource(1)))
	s.SetContainerWidth(testWidthCells * 8)
	s.AddMarker(30, "", "")
	st := s.Snapshot()
	lay := computeLayout(testWidthCells, st, 60)

	// The marker flag at 30s sits on the tick row, over the ruler region.
	// 30s maps to 500px, column 62, screen column 72.
	r := lay.RegionAt(72, lay.RulerTickRow)
	if r == nil || r.Kind != RegionMarkerFlag {
		t.Fatalf("RegionAt marker flag = %+v, want RegionMarkerFlag", r)
	}
	if r.ID != st.Markers[0].ID {
		t.Errorf("flag region id = %q, want %q", r.ID, st.Markers[0].ID)
	}
	if !r.NoSeek {
		t.Error("marker flags must opt out of click-to-seek")
	}

	// One column over, the same row is plain ruler.
	r = lay.RegionAt(80, lay.RulerTickRow)
	if r == nil || r.Kind != RegionRuler {
		t.Fatalf("RegionAt ruler = %+v, want RegionRuler", r)
	}
}

func TestRegionAtTrackAndToggles(t *testing.T) {
	st := testState(t)
	lay := computeLayout(testWidthCells, st, 60)

	r := lay.RegionAt(50, lay.Lanes[0].Top+1)
	if r == nil || r.Kind != RegionTrackArea || r.ID != st.Tracks[0].ID {
		t.Fatalf("track area region = %+v", r)
	}

	r = lay.RegionAt(gutterToggleX, lay.Lanes[0].Top)
	if r == nil || r.Kind != RegionTrackToggleVisible {
		t.Fatalf("visibility toggle region = %+v", r)
	}

	// Mute exists only on the audio lane.
	r = lay.RegionAt(gutterToggleX+2, lay.Lanes[0].Top)
	if r != nil && r.Kind == RegionTrackToggleMute {
		t.Error("video lane should have no mute toggle")
	}
	r = lay.RegionAt(gutterToggleX+2, lay.Lanes[1].Top)
	if r == nil || r.Kind != RegionTrackToggleMute {
		t.Fatalf("audio mute toggle region = %+v", r)
	}

	// Resizer row sits under each lane.
	r = lay.RegionAt(50, lay.Lanes[0].Top+lay.Lanes[0].Rows)
	if r == nil || r.Kind != RegionResizer || r.ID != st.Tracks[0].ID {
		t.Fatalf("resizer region = %+v", r)
	}
}

func TestLoopHandleRegions(t *testing.T) {
	s := timeline.NewStore(60, rand.New(rand.NewSource(1)))
	s.SetContainerWidth(testWidthCells * 8)
	s.SetLoopRegion(&timeline.LoopRegion{InPoint: 12, OutPoint: 48, Enabled: true})
	st := s.Snapshot()
	lay := computeLayout(testWidthCells, st, 60)

	// 12s maps to 200px, column 25, screen column 35.
	r := lay.RegionAt(35, lay.TracksTop)
	if r == nil || r.Kind != RegionLoopHandleIn {
		t.Fatalf("loop in handle = %+v", r)
	}
	// 48s maps to 800px, column 100, screen column 110.
	r = lay.RegionAt(110, lay.TracksBottom())
	if r == nil || r.Kind != RegionLoopHandleOut {
		t.Fatalf("loop out handle = %+v", r)
	}
}

func TestTrackColScrollsOutOfView(t *testing.T) {
	s := timeline.NewStore(60, rand.New(rand.NewSource(1)))
	s.SetContainerWidth(testWidthCells * 8)
	s.SetZoom(4)
	s.SetScrollLeft(2000)
	st := s.Snapshot()
	lay := computeLayout(testWidthCells, st, 60)

	// Time 0 is far left of the scrolled viewport.
	if _, ok := trackCol(0, st, lay, 60); ok {
		t.Error("time 0 should be out of view at scroll 2000")
	}
	// Track width is 4000; 37.5s maps to 2500px, 500px into the viewport.
	col, ok := trackCol(37.5, st, lay, 60)
	if !ok {
		t.Fatal("37.5s should be in view")
	}
	if col != lay.GutterCols+62 {
		t.Errorf("col = %d, want %d", col, lay.GutterCols+62)
	}
}
