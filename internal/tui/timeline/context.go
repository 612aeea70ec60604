// Package tltui implements the interactive timeline editor: a zoomable,
// scrollable multi-track view with playhead sync, marker and loop editing,
// snap dragging, keyboard transport, and cell-grid rendering.
package tltui

import (
	"github.com/clipline/clipline/internal/media"
	"github.com/clipline/clipline/internal/player"
	"github.com/clipline/clipline/internal/timeline"
	"github.com/clipline/clipline/internal/tui/theme"
)

// Context is the dependency bundle handed to every render surface and
// interaction handler. Surfaces read state through it and mutate only via
// the store/player action functions, never through local copies.
type Context struct {
	Store  *timeline.Store
	Player *player.Player
	Theme  theme.Theme

	// Media source backing the clip.
	Path   string
	Prober media.Prober
}

// Duration returns the clip duration in seconds.
func (c *Context) Duration() float64 {
	return c.Store.ClipDuration()
}
