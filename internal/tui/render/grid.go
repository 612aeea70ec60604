// Package render provides the cell grid the timeline surfaces draw into.
// The timeline model works in virtual pixels; this package owns the
// pixel-to-cell scale (the terminal analog of devicePixelRatio) and the
// final composition pass. Surfaces always redraw their full region; the
// grid is cheap at terminal sizes and full redraw avoids diffing bugs.
package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// CellWidthPx is how many virtual horizontal pixels one terminal cell
	// covers. The snap threshold of 8px is exactly one cell.
	CellWidthPx = 8.0
	// RowHeightPx is how many virtual vertical pixels one terminal row
	// covers. Track heights of 20-120px span 1-6 rows.
	RowHeightPx = 20.0
)

// PxToCol converts a horizontal virtual pixel offset to a column index.
func PxToCol(px float64) int {
	return int(math.Floor(px / CellWidthPx))
}

// ColToPx converts a column index to the pixel offset of its left edge.
func ColToPx(col int) float64 {
	return float64(col) * CellWidthPx
}

// ColCenterPx converts a column index to the pixel offset of its center.
// Click positions resolve through the center so a click maps to the time
// the user sees under the cursor, not the cell's left edge.
func ColCenterPx(col int) float64 {
	return (float64(col) + 0.5) * CellWidthPx
}

// RowsForHeight converts a pixel height to a row count, minimum 1.
func RowsForHeight(px float64) int {
	rows := int(math.Round(px / RowHeightPx))
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Cell is one terminal cell: a rune plus its colors.
type Cell struct {
	Rune rune
	Fg   lipgloss.Color
	Bg   lipgloss.Color
	Bold bool
}

// Grid is a fixed-size cell buffer. Out-of-bounds writes are ignored so
// surfaces can draw without edge checks.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// New creates a cleared grid.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{width: width, height: height, cells: make([]Cell, width*height)}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in rows.
func (g *Grid) Height() int { return g.height }

// Set writes a cell. Writes outside the grid are dropped.
func (g *Grid) Set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = c
}

// Get reads a cell; out-of-bounds reads return the zero cell.
func (g *Grid) Get(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return Cell{}
	}
	return g.cells[y*g.width+x]
}

// SetRune writes a rune keeping the cell's existing background.
func (g *Grid) SetRune(x, y int, r rune, fg lipgloss.Color) {
	c := g.Get(x, y)
	c.Rune = r
	c.Fg = fg
	g.Set(x, y, c)
}

// SetBg recolors a cell's background, preserving its rune.
func (g *Grid) SetBg(x, y int, bg lipgloss.Color) {
	c := g.Get(x, y)
	c.Bg = bg
	g.Set(x, y, c)
}

// FillRect paints a solid background rectangle.
func (g *Grid) FillRect(x, y, w, h int, bg lipgloss.Color) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			g.SetBg(xx, yy, bg)
		}
	}
}

// VLine draws a vertical run of the same rune.
func (g *Grid) VLine(x, y0, y1 int, r rune, fg lipgloss.Color) {
	for y := y0; y <= y1; y++ {
		g.SetRune(x, y, r, fg)
	}
}

// Text writes a string left-to-right starting at (x, y). Multi-cell runes
// are written as-is; callers truncate beforehand if width matters.
func (g *Grid) Text(x, y int, s string, fg lipgloss.Color) {
	for i, r := range []rune(s) {
		g.SetRune(x+i, y, r, fg)
	}
}

// TextOnBg writes a string with both colors set.
func (g *Grid) TextOnBg(x, y int, s string, fg, bg lipgloss.Color) {
	for i, r := range []rune(s) {
		g.Set(x+i, y, Cell{Rune: r, Fg: fg, Bg: bg})
	}
}

// Render emits the grid as styled terminal lines. Adjacent cells sharing
// colors are grouped into one styled run to keep the output compact.
func (g *Grid) Render() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		g.renderRow(&b, y)
	}
	return b.String()
}

func (g *Grid) renderRow(b *strings.Builder, y int) {
	var run []rune
	var cur Cell
	flush := func() {
		if len(run) == 0 {
			return
		}
		style := lipgloss.NewStyle()
		styled := false
		if cur.Fg != "" {
			style = style.Foreground(cur.Fg)
			styled = true
		}
		if cur.Bg != "" {
			style = style.Background(cur.Bg)
			styled = true
		}
		if cur.Bold {
			style = style.Bold(true)
			styled = true
		}
		if styled {
			b.WriteString(style.Render(string(run)))
		} else {
			b.WriteString(string(run))
		}
		run = run[:0]
	}

	for x := 0; x < g.width; x++ {
		c := g.cells[y*g.width+x]
		if c.Rune == 0 {
			c.Rune = ' '
		}
		if len(run) > 0 && (c.Fg != cur.Fg || c.Bg != cur.Bg || c.Bold != cur.Bold) {
			flush()
		}
		if len(run) == 0 {
			cur = c
		}
		run = append(run, c.Rune)
	}
	flush()
}
