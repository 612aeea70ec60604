// Package theme defines the editor color palette. Colors follow the
// Catppuccin Mocha scheme; a monochrome fallback is selected when the
// terminal opts out of color.
package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds every color role used by the editor surfaces.
type Theme struct {
	Base     lipgloss.Color
	Surface0 lipgloss.Color
	Surface1 lipgloss.Color
	Surface2 lipgloss.Color
	Overlay  lipgloss.Color
	Subtext  lipgloss.Color
	Text     lipgloss.Color

	Blue     lipgloss.Color
	Lavender lipgloss.Color
	Mauve    lipgloss.Color
	Green    lipgloss.Color
	Yellow   lipgloss.Color
	Red      lipgloss.Color
	Peach    lipgloss.Color
	Teal     lipgloss.Color
	Pink     lipgloss.Color
	Sky      lipgloss.Color

	// Semantic roles.
	Playhead   lipgloss.Color
	LoopBand   lipgloss.Color
	WavePlayed lipgloss.Color
	WaveIdle   lipgloss.Color
	VideoFill  lipgloss.Color
}

// Mocha is the default dark theme.
func Mocha() Theme {
	t := Theme{
		Base:     lipgloss.Color("#1e1e2e"),
		Surface0: lipgloss.Color("#313244"),
		Surface1: lipgloss.Color("#45475a"),
		Surface2: lipgloss.Color("#585b70"),
		Overlay:  lipgloss.Color("#6c7086"),
		Subtext:  lipgloss.Color("#a6adc8"),
		Text:     lipgloss.Color("#cdd6f4"),
		Blue:     lipgloss.Color("#89b4fa"),
		Lavender: lipgloss.Color("#b4befe"),
		Mauve:    lipgloss.Color("#cba6f7"),
		Green:    lipgloss.Color("#a6e3a1"),
		Yellow:   lipgloss.Color("#f9e2af"),
		Red:      lipgloss.Color("#f38ba8"),
		Peach:    lipgloss.Color("#fab387"),
		Teal:     lipgloss.Color("#94e2d5"),
		Pink:     lipgloss.Color("#f5c2e7"),
		Sky:      lipgloss.Color("#89dceb"),
	}
	t.Playhead = t.Red
	t.LoopBand = t.Yellow
	t.WavePlayed = t.Teal
	t.WaveIdle = t.Surface2
	t.VideoFill = t.Surface1
	return t
}

// Latte is the light variant.
func Latte() Theme {
	t := Theme{
		Base:     lipgloss.Color("#eff1f5"),
		Surface0: lipgloss.Color("#ccd0da"),
		Surface1: lipgloss.Color("#bcc0cc"),
		Surface2: lipgloss.Color("#acb0be"),
		Overlay:  lipgloss.Color("#9ca0b0"),
		Subtext:  lipgloss.Color("#6c6f85"),
		Text:     lipgloss.Color("#4c4f69"),
		Blue:     lipgloss.Color("#1e66f5"),
		Lavender: lipgloss.Color("#7287fd"),
		Mauve:    lipgloss.Color("#8839ef"),
		Green:    lipgloss.Color("#40a02b"),
		Yellow:   lipgloss.Color("#df8e1d"),
		Red:      lipgloss.Color("#d20f39"),
		Peach:    lipgloss.Color("#fe640b"),
		Teal:     lipgloss.Color("#179299"),
		Pink:     lipgloss.Color("#ea76cb"),
		Sky:      lipgloss.Color("#04a5e5"),
	}
	t.Playhead = t.Red
	t.LoopBand = t.Yellow
	t.WavePlayed = t.Teal
	t.WaveIdle = t.Surface2
	t.VideoFill = t.Surface1
	return t
}

// ByName resolves a configured theme name, falling back to Mocha.
func ByName(name string) Theme {
	switch name {
	case "latte", "light":
		return Latte()
	default:
		return Mocha()
	}
}

// NoColorEnabled reports whether color output should be suppressed, either
// by NO_COLOR/CLIPLINE_NO_COLOR or because the terminal profile is Ascii.
func NoColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CLIPLINE_NO_COLOR") != "" {
		return true
	}
	return termenv.EnvColorProfile() == termenv.Ascii
}
