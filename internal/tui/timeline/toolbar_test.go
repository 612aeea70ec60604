package tltui

import (
	"testing"

	"github.com/clipline/clipline/internal/timeline"
)

func TestSliderZoomEndpoints(t *testing.T) {
	if got := sliderZoom(0); got != timeline.MinZoom {
		t.Errorf("slider left edge = %v, want %v", got, timeline.MinZoom)
	}
	if got := sliderZoom(tbSliderW-1); got != timeline.MaxZoom {
		t.Errorf("slider right edge = %v, want %v", got, timeline.MaxZoom)
	}
}

func TestSliderZoomClampsAndRounds(t *testing.T) {
	if got := sliderZoom(-5); got != timeline.MinZoom {
		t.Errorf("below-range column = %v, want %v", got, timeline.MinZoom)
	}
	if got := sliderZoom(100); got != timeline.MaxZoom {
		t.Errorf("past-range column = %v, want %v", got, timeline.MaxZoom)
	}

	// Every column lands on a step multiple inside the bounds.
	for col := 0; col < tbSliderW; col++ {
		z := sliderZoom(col)
		if z < timeline.MinZoom || z > timeline.MaxZoom {
			t.Fatalf("column %d produced out-of-range zoom %v", col, z)
		}
		steps := z / tbSliderSteps
		if steps != float64(int(steps)) {
			t.Fatalf("column %d produced off-step zoom %v", col, z)
		}
	}

	// Monotonic left to right.
	prev := sliderZoom(0)
	for col := 1; col < tbSliderW; col++ {
		z := sliderZoom(col)
		if z < prev {
			t.Fatalf("slider not monotonic at column %d: %v < %v", col, z, prev)
		}
		prev = z
	}
}

func TestToolbarRegionsMatchGeometry(t *testing.T) {
	st := testState(t)
	lay := computeLayout(testWidthCells, st, 60)

	for _, r := range toolbarRegions(lay) {
		if r.Y != lay.ToolbarRow {
			t.Errorf("region %v on row %d, want %d", r.Kind, r.Y, lay.ToolbarRow)
		}
		if !r.NoSeek {
			t.Errorf("region %v must opt out of click-to-seek", r.Kind)
		}
	}

	if r := lay.RegionAt(tbSliderX+3, lay.ToolbarRow); r == nil || r.Kind != RegionToolbarZoomSlider {
		t.Errorf("slider region lookup = %+v", r)
	}
}
