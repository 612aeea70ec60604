package timeline

import (
	"math/rand"
	"sync"

	"github.com/clipline/clipline/internal/timecode"
)

// Store is the single writer for timeline state. Every mutation is an
// atomic read-modify-write under the lock; readers get value-copied
// snapshots so a half-applied update can never be observed.
//
// Loop-region invariants (points inside [0, duration], at least MinLoopGap
// apart) are enforced here rather than at each call site, so the toolbar,
// keyboard, overlay, and context menu all share one clamping path.
type Store struct {
	mu           sync.Mutex
	state        State
	clipDuration float64
	rng          *rand.Rand
}

// NewStore creates a store for a clip of the given duration, seeded with the
// default video-over-audio track pair. rng drives marker color assignment;
// pass a seeded source in tests for determinism, or nil for the default.
func NewStore(clipDuration float64, rng *rand.Rand) *Store {
	if clipDuration < 0 {
		clipDuration = 0
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Store{
		clipDuration: clipDuration,
		rng:          rng,
		state: State{
			ZoomLevel:     1,
			SnapEnabled:   true,
			PlaybackSpeed: 1,
			Tracks: []Track{
				{ID: timecode.GenerateID("track"), Type: TrackVideo, Height: 60, Visible: true},
				{ID: timecode.GenerateID("track"), Type: TrackAudio, Height: 40, Visible: true},
			},
		},
	}
}

// Snapshot returns a value copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyState()
}

func (s *Store) copyState() State {
	out := s.state
	out.Tracks = append([]Track(nil), s.state.Tracks...)
	out.Markers = append([]Marker(nil), s.state.Markers...)
	if s.state.Loop != nil {
		loop := *s.state.Loop
		out.Loop = &loop
	}
	return out
}

// ClipDuration returns the immutable duration supplied by the host.
func (s *Store) ClipDuration() float64 {
	return s.clipDuration
}

// SetZoom stores the zoom level clamped into [MinZoom, MaxZoom].
// Out-of-range input is not an error.
func (s *Store) SetZoom(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ZoomLevel = timecode.Clamp(level, MinZoom, MaxZoom)
}

// AdjustZoom changes zoom by delta, clamped.
func (s *Store) AdjustZoom(delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ZoomLevel = timecode.Clamp(s.state.ZoomLevel+delta, MinZoom, MaxZoom)
}

// SetScrollLeft stores a non-negative scroll offset.
func (s *Store) SetScrollLeft(left float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if left < 0 {
		left = 0
	}
	s.state.ScrollLeft = left
}

// SetContainerWidth records the measured viewport width. TrackWidth is
// derived from it on the next snapshot read.
func (s *Store) SetContainerWidth(width float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ContainerWidth = width
}

// AddMarker appends a marker at the given time, clamped into the clip.
// Empty color picks a random palette entry. Returns the stored marker.
func (s *Store) AddMarker(t float64, label, color string) Marker {
	s.mu.Lock()
	defer s.mu.Unlock()
	if color == "" {
		color = MarkerPalette[s.rng.Intn(len(MarkerPalette))]
	}
	m := Marker{
		ID:    timecode.GenerateID("marker"),
		Time:  timecode.Clamp(t, 0, s.clipDuration),
		Label: label,
		Color: color,
	}
	s.state.Markers = append(s.state.Markers, m)
	return m
}

// RemoveMarker deletes the marker with the given id. Unknown ids are a
// no-op; stale ids from a just-finished drag are expected.
func (s *Store) RemoveMarker(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Markers {
		if s.state.Markers[i].ID == id {
			s.state.Markers = append(s.state.Markers[:i], s.state.Markers[i+1:]...)
			return
		}
	}
}

// MarkerPatch holds the fields UpdateMarker may change. Nil fields are
// left untouched.
type MarkerPatch struct {
	Time  *float64
	Label *string
	Color *string
}

// UpdateMarker merges patch into the marker with the given id. Times are
// clamped into the clip. Unknown ids are a no-op.
func (s *Store) UpdateMarker(id string, patch MarkerPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Markers {
		if s.state.Markers[i].ID != id {
			continue
		}
		if patch.Time != nil {
			s.state.Markers[i].Time = timecode.Clamp(*patch.Time, 0, s.clipDuration)
		}
		if patch.Label != nil {
			s.state.Markers[i].Label = *patch.Label
		}
		if patch.Color != nil {
			s.state.Markers[i].Color = *patch.Color
		}
		return
	}
}

// SetLoopRegion stores the region after normalizing it: both points are
// clamped into the clip and pushed apart to at least MinLoopGap. Nil clears
// the region.
func (s *Store) SetLoopRegion(region *LoopRegion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if region == nil {
		s.state.Loop = nil
		return
	}
	loop := s.normalizeLoop(*region)
	s.state.Loop = &loop
}

// SetLoopIn moves only the in point, keeping the existing out point or
// defaulting it to the clip end.
func (s *Store) SetLoopIn(t float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	loop := LoopRegion{InPoint: t, OutPoint: s.clipDuration, Enabled: true}
	if s.state.Loop != nil {
		loop.OutPoint = s.state.Loop.OutPoint
		loop.Enabled = s.state.Loop.Enabled
	}
	loop = s.normalizeLoop(loop)
	s.state.Loop = &loop
}

// SetLoopOut moves only the out point, keeping the existing in point or
// defaulting it to 0.
func (s *Store) SetLoopOut(t float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	loop := LoopRegion{InPoint: 0, OutPoint: t, Enabled: true}
	if s.state.Loop != nil {
		loop.InPoint = s.state.Loop.InPoint
		loop.Enabled = s.state.Loop.Enabled
	}
	loop = s.normalizeLoop(loop)
	s.state.Loop = &loop
}

// normalizeLoop clamps both points into the clip and guarantees the minimum
// gap. The in point wins when the two conflict, except at the clip end
// where the out point is pinned and the in point yields.
func (s *Store) normalizeLoop(loop LoopRegion) LoopRegion {
	dur := s.clipDuration
	loop.InPoint = timecode.Clamp(loop.InPoint, 0, dur)
	loop.OutPoint = timecode.Clamp(loop.OutPoint, 0, dur)
	if loop.OutPoint < loop.InPoint {
		loop.InPoint, loop.OutPoint = loop.OutPoint, loop.InPoint
	}
	if dur <= MinLoopGap {
		loop.InPoint = 0
		loop.OutPoint = dur
		return loop
	}
	if loop.OutPoint-loop.InPoint < MinLoopGap {
		loop.OutPoint = loop.InPoint + MinLoopGap
		if loop.OutPoint > dur {
			loop.OutPoint = dur
			loop.InPoint = dur - MinLoopGap
		}
	}
	return loop
}

// ToggleTrackVisibility flips the visible flag for the given track.
func (s *Store) ToggleTrackVisibility(trackID string) {
	s.toggleTrack(trackID, func(t *Track) { t.Visible = !t.Visible })
}

// ToggleTrackLock flips the locked flag for the given track.
func (s *Store) ToggleTrackLock(trackID string) {
	s.toggleTrack(trackID, func(t *Track) { t.Locked = !t.Locked })
}

// ToggleTrackMute flips the muted flag for the given track.
func (s *Store) ToggleTrackMute(trackID string) {
	s.toggleTrack(trackID, func(t *Track) { t.Muted = !t.Muted })
}

func (s *Store) toggleTrack(trackID string, apply func(*Track)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Tracks {
		if s.state.Tracks[i].ID == trackID {
			apply(&s.state.Tracks[i])
			return
		}
	}
}

// ResizeTrack sets the track height clamped into its bounds. Unknown ids
// are a no-op.
func (s *Store) ResizeTrack(trackID string, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Tracks {
		if s.state.Tracks[i].ID == trackID {
			s.state.Tracks[i].Height = timecode.Clamp(height, MinTrackHeight, MaxTrackHeight)
			return
		}
	}
}

// SetSnapEnabled toggles snap-to-target dragging.
func (s *Store) SetSnapEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SnapEnabled = enabled
}

// SetHoveredTime records the time under the pointer, or clears it.
func (s *Store) SetHoveredTime(t float64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.HoveredTime = t
	s.state.Hovered = ok
}

// SetPlaybackSpeed stores the speed if it is a member of the allowed set;
// anything else is ignored.
func (s *Store) SetPlaybackSpeed(speed float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, allowed := range PlaybackSpeeds {
		if speed == allowed {
			s.state.PlaybackSpeed = speed
			return
		}
	}
}
