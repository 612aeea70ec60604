package player

import (
	"math"
	"testing"
)

func TestSeekClamps(t *testing.T) {
	p := New(60, 30)

	p.Seek(30)
	if got := p.CurrentTime(); got != 30 {
		t.Errorf("CurrentTime = %v, want 30", got)
	}
	p.Seek(-5)
	if got := p.CurrentTime(); got != 0 {
		t.Errorf("negative seek landed at %v, want 0", got)
	}
	p.Seek(100)
	if got := p.CurrentTime(); got != 60 {
		t.Errorf("overshoot seek landed at %v, want 60", got)
	}
}

func TestStepFrames(t *testing.T) {
	p := New(60, 30)
	p.Seek(10)

	p.StepFrames(1)
	want := 10 + 1.0/30
	if math.Abs(p.CurrentTime()-want) > 1e-9 {
		t.Errorf("after one frame: %v, want %v", p.CurrentTime(), want)
	}
	p.StepFrames(-2)
	want -= 2.0 / 30
	if math.Abs(p.CurrentTime()-want) > 1e-9 {
		t.Errorf("after stepping back: %v, want %v", p.CurrentTime(), want)
	}
}

func TestPlayPauseToggles(t *testing.T) {
	p := New(60, 30)
	if p.IsPlaying() {
		t.Fatal("should start paused")
	}
	p.PlayPause()
	if !p.IsPlaying() {
		t.Error("first toggle should play")
	}
	p.PlayPause()
	if p.IsPlaying() {
		t.Error("second toggle should pause")
	}
}

func TestShuttleTierLadder(t *testing.T) {
	p := New(60, 30)

	// Three presses in the same direction climb to the third tier.
	p.ShuttleForward()
	p.ShuttleForward()
	p.ShuttleForward()
	if got := p.ShuttleTier(); got != 4 {
		t.Errorf("tier after l,l,l = %v, want 4", got)
	}
	if got := p.ShuttleRate(); got != 4 {
		t.Errorf("rate after l,l,l = %v, want 4", got)
	}

	// A fourth press caps at the top tier.
	p.ShuttleForward()
	p.ShuttleForward()
	if got := p.ShuttleRate(); got != 8 {
		t.Errorf("rate should cap at 8, got %v", got)
	}

	// Reversing direction restarts the ladder.
	p.ShuttleBackward()
	if got := p.ShuttleRate(); got != -1 {
		t.Errorf("rate after reversal = %v, want -1", got)
	}
	p.ShuttleBackward()
	if got := p.ShuttleRate(); got != -2 {
		t.Errorf("rate after second reverse press = %v, want -2", got)
	}
}

func TestStopShuttleResetsTierAndTogglesPlay(t *testing.T) {
	p := New(60, 30)
	p.ShuttleForward()
	p.ShuttleForward()

	p.StopShuttle()
	if got := p.ShuttleRate(); got != 0 {
		t.Errorf("rate after stop = %v, want 0", got)
	}
	if !p.IsPlaying() {
		t.Error("K from a paused shuttle should start playback")
	}

	// The ladder restarts from the first tier.
	p.ShuttleForward()
	if got := p.ShuttleRate(); got != 1 {
		t.Errorf("rate after stop then shuttle = %v, want 1", got)
	}
}

func TestPlayPausePreservesShuttleDirection(t *testing.T) {
	p := New(60, 30)
	p.ShuttleForward()
	p.ShuttleForward() // tier 2

	// Space suspends shuttle motion without clearing the session.
	p.PlayPause()
	if got := p.ShuttleRate(); got != 0 {
		t.Errorf("rate during suspension = %v, want 0", got)
	}

	// The next press in the same direction keeps climbing.
	p.ShuttleForward()
	if got := p.ShuttleRate(); got != 4 {
		t.Errorf("rate after resume = %v, want 4", got)
	}
}

func TestAdvanceRespectsRateAndSpeed(t *testing.T) {
	p := New(60, 30)

	// Paused: no motion.
	if p.Advance(1, 0, 0, false) {
		t.Error("paused Advance should not move")
	}

	p.PlayPause()
	p.SetSpeed(2)
	p.Advance(1, 0, 0, false)
	if got := p.CurrentTime(); got != 2 {
		t.Errorf("1s at 2x landed at %v, want 2", got)
	}

	// Shuttle overrides the playback speed.
	p.ShuttleBackward()
	p.Advance(1, 0, 0, false)
	if got := p.CurrentTime(); got != 1 {
		t.Errorf("1s reverse shuttle landed at %v, want 1", got)
	}
}

func TestAdvanceStopsAtClipEnd(t *testing.T) {
	p := New(10, 30)
	p.PlayPause()
	p.Seek(9.5)

	p.Advance(2, 0, 0, false)
	if got := p.CurrentTime(); got != 10 {
		t.Errorf("landed at %v, want pinned 10", got)
	}
	if p.IsPlaying() {
		t.Error("reaching the end should pause")
	}
}

func TestAdvanceStopsAtZeroInReverse(t *testing.T) {
	p := New(10, 30)
	p.Seek(0.5)
	p.ShuttleBackward()

	p.Advance(2, 0, 0, false)
	if got := p.CurrentTime(); got != 0 {
		t.Errorf("landed at %v, want 0", got)
	}
	if p.IsPlaying() {
		t.Error("hitting the start should end the shuttle")
	}
}

func TestAdvanceWrapsInsideLoop(t *testing.T) {
	p := New(60, 30)
	p.PlayPause()
	p.Seek(19.5)

	p.Advance(1, 10, 20, true)
	want := 10.5
	if math.Abs(p.CurrentTime()-want) > 1e-9 {
		t.Errorf("loop wrap landed at %v, want %v", p.CurrentTime(), want)
	}

	// Starting before the loop pulls playback up to the in point.
	p.Seek(2)
	p.Advance(0.1, 10, 20, true)
	if got := p.CurrentTime(); got < 10 {
		t.Errorf("advance below the loop landed at %v, want ≥ 10", got)
	}
}

func TestSetSpeedIgnoresNonPositive(t *testing.T) {
	p := New(60, 30)
	p.SetSpeed(1.5)
	if got := p.Speed(); got != 1.5 {
		t.Errorf("speed = %v, want 1.5", got)
	}
	p.SetSpeed(0)
	if got := p.Speed(); got != 1.5 {
		t.Errorf("zero speed should be ignored, got %v", got)
	}
	p.SetSpeed(-2)
	if got := p.Speed(); got != 1.5 {
		t.Errorf("negative speed should be ignored, got %v", got)
	}
}

func TestHomeEnd(t *testing.T) {
	p := New(60, 30)
	p.Seek(30)
	p.Home()
	if got := p.CurrentTime(); got != 0 {
		t.Errorf("Home landed at %v", got)
	}
	p.End()
	if got := p.CurrentTime(); got != 60 {
		t.Errorf("End landed at %v", got)
	}
}
