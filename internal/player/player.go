// Package player implements the host playback clock the timeline editor is
// wired to: current position, play/pause, frame stepping, playback rate,
// and the JKL shuttle state machine. The clock is advanced by the UI tick;
// there is no background goroutine.
package player

import "github.com/clipline/clipline/internal/timecode"

// DefaultFrameRate is assumed when the media probe does not report one.
const DefaultFrameRate = 30.0

// ShuttleTiers are the speed multipliers a repeated J or L press steps
// through. K resets the ladder.
var ShuttleTiers = []float64{1, 2, 4, 8}

// Player tracks playback position within a clip. All methods are called
// from the UI event loop; the type is deliberately not goroutine safe.
type Player struct {
	duration  float64
	frameRate float64

	current float64
	playing bool
	speed   float64

	// Shuttle session state. Direction and tier persist across a plain
	// play/pause toggle so a resumed J/L press keeps climbing the ladder;
	// only K resets them.
	shuttleActive bool
	shuttleDir    int
	shuttleTier   int
}

// New creates a stopped player at time 0 for a clip of the given duration.
func New(duration, frameRate float64) *Player {
	if duration < 0 {
		duration = 0
	}
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	return &Player{duration: duration, frameRate: frameRate, speed: 1}
}

// Duration returns the clip duration in seconds.
func (p *Player) Duration() float64 { return p.duration }

// FrameDuration returns the length of one frame in seconds.
func (p *Player) FrameDuration() float64 { return 1 / p.frameRate }

// CurrentTime returns the playhead position, always within [0, duration].
func (p *Player) CurrentTime() float64 { return p.current }

// IsPlaying reports whether the clock is moving, by playback or shuttle.
func (p *Player) IsPlaying() bool { return p.playing || p.shuttleActive }

// Speed returns the normal playback rate.
func (p *Player) Speed() float64 { return p.speed }

// SetSpeed sets the normal playback rate.
func (p *Player) SetSpeed(speed float64) {
	if speed > 0 {
		p.speed = speed
	}
}

// Seek moves the playhead to t, clamped into the clip.
func (p *Player) Seek(t float64) {
	p.current = timecode.Clamp(t, 0, p.duration)
}

// SeekBy moves the playhead relative to its current position.
func (p *Player) SeekBy(delta float64) {
	p.Seek(p.current + delta)
}

// StepFrames seeks by n frames (negative steps backward).
func (p *Player) StepFrames(n int) {
	p.SeekBy(float64(n) * p.FrameDuration())
}

// PlayPause toggles playback. It suspends shuttle motion but leaves the
// shuttle session intact, so a Space press does not reset the tier ladder.
func (p *Player) PlayPause() {
	p.playing = !p.playing
	p.shuttleActive = false
}

// ShuttleForward starts or escalates forward shuttle (the L key). Repeated
// presses in the same direction climb the tier ladder; reversing direction
// restarts at the first tier.
func (p *Player) ShuttleForward() { p.shuttle(1) }

// ShuttleBackward starts or escalates backward shuttle (the J key).
func (p *Player) ShuttleBackward() { p.shuttle(-1) }

func (p *Player) shuttle(dir int) {
	if p.shuttleDir == dir {
		if p.shuttleTier < len(ShuttleTiers)-1 {
			p.shuttleTier++
		}
	} else {
		p.shuttleDir = dir
		p.shuttleTier = 0
	}
	p.shuttleActive = true
	p.playing = false
}

// StopShuttle halts any shuttle, resets the tier ladder, and toggles
// play/pause (the K key).
func (p *Player) StopShuttle() {
	p.shuttleActive = false
	p.shuttleDir = 0
	p.shuttleTier = 0
	p.playing = !p.playing
}

// ShuttleRate returns the signed speed multiplier of the active shuttle,
// or 0 when not shuttling.
func (p *Player) ShuttleRate() float64 {
	if !p.shuttleActive || p.shuttleDir == 0 {
		return 0
	}
	return float64(p.shuttleDir) * ShuttleTiers[p.shuttleTier]
}

// ShuttleTier returns the current tier multiplier, 1 when no shuttle
// session is in progress.
func (p *Player) ShuttleTier() float64 {
	if !p.shuttleActive {
		return 1
	}
	return ShuttleTiers[p.shuttleTier]
}

// SkipForward jumps ahead by one second.
func (p *Player) SkipForward() { p.SeekBy(1) }

// SkipBackward jumps back by one second.
func (p *Player) SkipBackward() { p.SeekBy(-1) }

// Home seeks to the clip start.
func (p *Player) Home() { p.Seek(0) }

// End seeks to the clip end.
func (p *Player) End() { p.Seek(p.duration) }

// Advance moves the clock forward by dt wall seconds, applying the playback
// rate or shuttle multiplier. Loop bounds, when given, wrap playback inside
// the region. Returns true if the position changed.
func (p *Player) Advance(dt float64, loopIn, loopOut float64, looping bool) bool {
	var rate float64
	switch {
	case p.shuttleActive:
		rate = p.ShuttleRate()
	case p.playing:
		rate = p.speed
	default:
		return false
	}

	next := p.current + dt*rate
	if looping && loopOut > loopIn {
		if next >= loopOut {
			next = loopIn + (next - loopOut)
			if next >= loopOut {
				next = loopIn
			}
		} else if next < loopIn {
			next = loopIn
		}
	}
	if next >= p.duration {
		next = p.duration
		p.playing = false
		p.shuttleActive = false
	}
	if next < 0 {
		next = 0
		p.shuttleActive = false
	}
	changed := next != p.current
	p.current = next
	return changed
}
