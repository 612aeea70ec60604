// Package timeline owns the mutable editing state for a single clip session:
// zoom, scroll, tracks, markers, loop region, and playback preferences. The
// state lives only for the lifetime of one editor; nothing here is persisted.
package timeline

// Zoom and geometry bounds, in virtual pixels.
const (
	MinZoom = 0.5
	MaxZoom = 6.0

	// ZoomStep is the increment used by wheel zoom, toolbar buttons, and
	// the +/- keys.
	ZoomStep = 0.25

	MinTrackHeight = 20.0
	MaxTrackHeight = 120.0

	// TrackLabelWidth is the fixed gutter left of the tracks.
	TrackLabelWidth = 80.0
	// TrackPadding is the remaining horizontal chrome around the track area.
	TrackPadding = 16.0

	// MinLoopGap is the smallest allowed distance between loop points.
	MinLoopGap = 0.1

	// SnapThresholdPx is how close, in virtual pixels, a drag must come to
	// a snap target before it locks on.
	SnapThresholdPx = 8.0
)

// TrackType distinguishes the two default tracks.
type TrackType string

const (
	TrackVideo TrackType = "video"
	TrackAudio TrackType = "audio"
)

// Track is one horizontal lane in the timeline. Order in the state slice is
// rendering order, video above audio.
type Track struct {
	ID      string
	Type    TrackType
	Height  float64
	Visible bool
	Locked  bool
	Muted   bool
}

// Marker is a named point annotation on the timeline.
type Marker struct {
	ID    string
	Time  float64
	Label string
	Color string
}

// LoopRegion is an in/out point pair for looped preview playback.
type LoopRegion struct {
	InPoint  float64
	OutPoint float64
	Enabled  bool
}

// PlaybackSpeeds is the fixed set of allowed playback rates.
var PlaybackSpeeds = []float64{0.25, 0.5, 0.75, 1, 1.25, 1.5, 2}

// MarkerPalette is the set of colors cycled through for unlabeled markers.
// Values are hex colors understood by lipgloss.
var MarkerPalette = []string{
	"#f38ba8", // red
	"#fab387", // peach
	"#f9e2af", // yellow
	"#a6e3a1", // green
	"#94e2d5", // teal
	"#89b4fa", // blue
	"#cba6f7", // mauve
}

// State is a snapshot of the full timeline aggregate. Snapshots returned by
// the store are value copies; render surfaces read them and never mutate.
type State struct {
	ZoomLevel      float64
	ScrollLeft     float64
	ContainerWidth float64
	Tracks         []Track
	Markers        []Marker
	Loop           *LoopRegion
	SnapEnabled    bool
	HoveredTime    float64
	Hovered        bool
	PlaybackSpeed  float64
}

// TrackWidth derives the zoomed pixel width of the track area. It never
// shrinks below the unzoomed base width.
func (s State) TrackWidth() float64 {
	base := s.ContainerWidth - TrackLabelWidth - TrackPadding
	if base < 0 {
		base = 0
	}
	if s.ZoomLevel > 1 {
		return base * s.ZoomLevel
	}
	return base
}

// VisibleTracksHeight sums the heights of visible tracks, used to size the
// playhead line, loop band, and marker guides.
func (s State) VisibleTracksHeight() float64 {
	var h float64
	for _, t := range s.Tracks {
		if t.Visible {
			h += t.Height
		}
	}
	return h
}

// FindTrack returns the track with the given id, or nil.
func (s State) FindTrack(id string) *Track {
	for i := range s.Tracks {
		if s.Tracks[i].ID == id {
			return &s.Tracks[i]
		}
	}
	return nil
}

// FindMarker returns the marker with the given id, or nil.
func (s State) FindMarker(id string) *Marker {
	for i := range s.Markers {
		if s.Markers[i].ID == id {
			return &s.Markers[i]
		}
	}
	return nil
}

// MarkerTimes returns the times of all markers, in insertion order.
func (s State) MarkerTimes() []float64 {
	times := make([]float64, len(s.Markers))
	for i, m := range s.Markers {
		times[i] = m.Time
	}
	return times
}
