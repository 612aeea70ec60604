package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestPxToColAndBack(t *testing.T) {
	tests := []struct {
		px   float64
		want int
	}{
		{0, 0},
		{7.9, 0},
		{8, 1},
		{500, 62},
		{-0.1, -1},
	}
	for _, tt := range tests {
		if got := PxToCol(tt.px); got != tt.want {
			t.Errorf("PxToCol(%v) = %d, want %d", tt.px, got, tt.want)
		}
	}

	if got := ColToPx(10); got != 80 {
		t.Errorf("ColToPx(10) = %v, want 80", got)
	}
	if got := ColCenterPx(0); got != 4 {
		t.Errorf("ColCenterPx(0) = %v, want 4", got)
	}
}

func TestRowsForHeight(t *testing.T) {
	tests := []struct {
		px   float64
		want int
	}{
		{20, 1},
		{40, 2},
		{60, 3},
		{120, 6},
		{5, 1},
		{0, 1},
		{50, 3}, // rounds up at the midpoint
	}
	for _, tt := range tests {
		if got := RowsForHeight(tt.px); got != tt.want {
			t.Errorf("RowsForHeight(%v) = %d, want %d", tt.px, got, tt.want)
		}
	}
}

func TestGridBoundsSafety(t *testing.T) {
	g := New(4, 2)

	// None of these may panic or corrupt the buffer.
	g.SetRune(-1, 0, 'x', "")
	g.SetRune(4, 0, 'x', "")
	g.SetRune(0, -1, 'x', "")
	g.SetRune(0, 2, 'x', "")
	g.FillRect(-2, -2, 100, 100, lipgloss.Color("#000000"))
	g.Text(2, 0, "overflowing", "")

	if c := g.Get(5, 5); c.Rune != 0 {
		t.Errorf("out-of-bounds Get = %+v, want zero cell", c)
	}
}

func TestGridRenderPlain(t *testing.T) {
	g := New(5, 2)
	g.Text(0, 0, "ab", "")
	g.Text(1, 1, "cd", "")

	got := g.Render()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	if lines[0] != "ab   " {
		t.Errorf("row 0 = %q", lines[0])
	}
	if lines[1] != " cd  " {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestSetBgPreservesRune(t *testing.T) {
	g := New(3, 1)
	g.SetRune(1, 0, 'x', lipgloss.Color("#ffffff"))
	g.SetBg(1, 0, lipgloss.Color("#000000"))

	c := g.Get(1, 0)
	if c.Rune != 'x' {
		t.Errorf("rune after SetBg = %q, want x", c.Rune)
	}
	if c.Bg != lipgloss.Color("#000000") {
		t.Errorf("bg = %v", c.Bg)
	}
	if c.Fg != lipgloss.Color("#ffffff") {
		t.Errorf("fg = %v", c.Fg)
	}
}

func TestVLine(t *testing.T) {
	g := New(3, 4)
	g.VLine(1, 1, 3, '|', "")
	for y := 0; y < 4; y++ {
		want := rune(0)
		if y >= 1 {
			want = '|'
		}
		if c := g.Get(1, y); c.Rune != want {
			t.Errorf("cell (1,%d) = %q, want %q", y, c.Rune, want)
		}
	}
}
