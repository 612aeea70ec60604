package tltui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/clipline/clipline/internal/timecode"
	"github.com/clipline/clipline/internal/timeline"
	"github.com/clipline/clipline/internal/tui/theme"
)

type menuAction int

const (
	menuAddMarker menuAction = iota
	menuLoopIn
	menuLoopOut
	menuClearLoop
	menuZoomFit
	menuZoomReset
)

type menuItem struct {
	label    string
	action   menuAction
	disabled bool
}

// contextMenu is the right-click menu. It captures the clip time under the
// click so actions target where the user pointed, not where the playhead is.
type contextMenu struct {
	open   bool
	x, y   int
	time   float64
	cursor int
	items  []menuItem
}

func openContextMenu(x, y int, t float64, st timeline.State) contextMenu {
	hasLoop := st.Loop != nil && st.Loop.Enabled
	m := contextMenu{
		open: true,
		x:    x,
		y:    y,
		time: t,
		items: []menuItem{
			{label: "Add marker at " + timecode.FormatTime(t), action: menuAddMarker},
			{label: "Set loop in point", action: menuLoopIn},
			{label: "Set loop out point", action: menuLoopOut},
			{label: "Clear loop region", action: menuClearLoop, disabled: !hasLoop},
			{label: "Zoom to fit", action: menuZoomFit},
			{label: "Reset zoom", action: menuZoomReset},
		},
	}
	return m
}

// move steps the cursor, skipping disabled items and wrapping.
func (m *contextMenu) move(delta int) {
	n := len(m.items)
	for i := 0; i < n; i++ {
		m.cursor = (m.cursor + delta + n) % n
		if !m.items[m.cursor].disabled {
			return
		}
	}
}

// selected returns the action under the cursor, false when disabled.
func (m *contextMenu) selected() (menuAction, bool) {
	it := m.items[m.cursor]
	if it.disabled {
		return 0, false
	}
	return it.action, true
}

// hit maps a screen cell to an item index. Geometry mirrors render: one
// border row above the items and one border column on the left.
func (m *contextMenu) hit(x, y int) (int, bool) {
	w := m.width()
	row := y - m.y - 1
	if row < 0 || row >= len(m.items) || x < m.x+1 || x >= m.x+1+w {
		return 0, false
	}
	return row, true
}

func (m *contextMenu) width() int {
	w := 0
	for _, it := range m.items {
		if lw := runewidth.StringWidth(it.label); lw > w {
			w = lw
		}
	}
	return w + 2 // cursor gutter
}

func (m *contextMenu) render(th theme.Theme) string {
	w := m.width()
	itemStyle := lipgloss.NewStyle().Foreground(th.Text)
	dimStyle := lipgloss.NewStyle().Foreground(th.Overlay)
	curStyle := lipgloss.NewStyle().Foreground(th.Base).Background(th.Lavender)

	var b strings.Builder
	for i, it := range m.items {
		line := "  " + it.label + strings.Repeat(" ", w-runewidth.StringWidth(it.label)-2)
		switch {
		case it.disabled:
			b.WriteString(dimStyle.Render(line))
		case i == m.cursor:
			b.WriteString(curStyle.Render("▸ " + line[2:]))
		default:
			b.WriteString(itemStyle.Render(line))
		}
		if i < len(m.items)-1 {
			b.WriteByte('\n')
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Surface2).
		Background(th.Surface0)
	return box.Render(b.String())
}

// mergeOverlay splices overlay lines into base at the given cell position,
// padding each spliced line from the left. Lines past the base are dropped.
func mergeOverlay(base, overlay string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(overlay, "\n") {
		target := y + i
		if target < 0 || target >= len(baseLines) {
			continue
		}
		pad := x
		if pad < 0 {
			pad = 0
		}
		baseLines[target] = strings.Repeat(" ", pad) + line
	}
	return strings.Join(baseLines, "\n")
}

// clampMenuPos keeps the menu box inside the grid.
func clampMenuPos(x, y, menuW, menuH, gridW, gridH int) (int, int) {
	if x+menuW > gridW {
		x = gridW - menuW
	}
	if x < 0 {
		x = 0
	}
	if y+menuH > gridH {
		y = gridH - menuH
	}
	if y < 0 {
		y = 0
	}
	return x, y
}
