package tltui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/clipline/clipline/internal/timecode"
	"github.com/clipline/clipline/internal/tui/theme"
)

// shakeDuration is how long the input flashes after a rejected submit.
const shakeDuration = 500 * time.Millisecond

// timecodeInput is the editable timecode readout. Clicking the readout
// opens it prefilled with the current position; Enter seeks, Esc cancels,
// an unparseable value shakes and stays open.
type timecodeInput struct {
	input      textinput.Model
	active     bool
	shakeUntil time.Time
}

func newTimecodeInput(th theme.Theme) timecodeInput {
	ti := textinput.New()
	ti.Placeholder = "00:00.00"
	ti.CharLimit = 12
	ti.Width = 10
	ti.Prompt = "⏱ "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(th.Subtext)
	ti.TextStyle = lipgloss.NewStyle().Foreground(th.Text)
	return timecodeInput{input: ti}
}

func (t *timecodeInput) open(current float64) {
	t.input.SetValue(timecode.FormatTime(current))
	t.input.CursorEnd()
	t.input.Focus()
	t.active = true
	t.shakeUntil = time.Time{}
}

func (t *timecodeInput) close() {
	t.input.Blur()
	t.active = false
	t.shakeUntil = time.Time{}
}

// submit parses the current value. On failure the input shakes and remains
// focused so the user can correct it.
func (t *timecodeInput) submit(now time.Time) (float64, bool) {
	v, ok := timecode.ParseTime(t.input.Value())
	if !ok {
		t.shakeUntil = now.Add(shakeDuration)
		return 0, false
	}
	t.close()
	return v, true
}

func (t *timecodeInput) shaking(now time.Time) bool {
	return now.Before(t.shakeUntil)
}

// view renders the readout line. While inactive it shows the formatted
// position; while shaking the frame alternates offset to read as a wobble.
func (t *timecodeInput) view(current float64, now time.Time, th theme.Theme) string {
	if !t.active {
		style := lipgloss.NewStyle().Foreground(th.Text)
		return lipgloss.NewStyle().Foreground(th.Subtext).Render("⏱ ") +
			style.Render(timecode.FormatTime(current))
	}
	s := t.input.View()
	if t.shaking(now) {
		red := lipgloss.NewStyle().Foreground(th.Red)
		if now.UnixMilli()/80%2 == 0 {
			return " " + red.Render(s)
		}
		return red.Render(s)
	}
	return s
}
