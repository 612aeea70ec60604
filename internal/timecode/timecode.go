// Package timecode provides the pure coordinate math underneath the clip
// timeline: time<->position mapping, snapping, tick intervals, and timecode
// formatting/parsing. Everything here is stateless; positions are expressed
// in virtual pixels, which the render layer scales to terminal cells.
package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// SnapThresholdPx is the default snap capture radius in virtual pixels.
const SnapThresholdPx = 8.0

// Clamp restricts v to the inclusive range [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// TimeToX maps a time in seconds to a horizontal position on a track of the
// given width. A non-positive duration maps everything to 0.
func TimeToX(t, duration, trackWidth float64) float64 {
	if duration <= 0 {
		return 0
	}
	return (t / duration) * trackWidth
}

// XToTime is the inverse of TimeToX. The result is clamped into
// [0, duration] so positions outside the track resolve to its edges.
func XToTime(x, duration, trackWidth float64) float64 {
	if trackWidth <= 0 {
		return 0
	}
	return Clamp((x/trackWidth)*duration, 0, duration)
}

// SnapTarget is a candidate position a dragged time can lock onto.
type SnapTarget struct {
	Time  float64
	Label string
}

// BuildSnapTargets returns one target per marker time plus the playhead.
// Labels are informational only.
func BuildSnapTargets(markerTimes []float64, playheadTime float64) []SnapTarget {
	targets := make([]SnapTarget, 0, len(markerTimes)+1)
	for _, t := range markerTimes {
		targets = append(targets, SnapTarget{Time: t, Label: "marker"})
	}
	targets = append(targets, SnapTarget{Time: playheadTime, Label: "playhead"})
	return targets
}

// SnapPoint returns the closest target within thresholdPx of t, or nil when
// no target is in range. Distances are compared in the pixel domain with a
// hair of relative tolerance, so a target sitting exactly on the threshold
// still captures after the time<->pixel round trips. Ties on exact distance
// resolve to the earliest target in the slice, so identical inputs always
// produce identical results.
func SnapPoint(t float64, targets []SnapTarget, duration, trackWidth, thresholdPx float64) *SnapTarget {
	if duration <= 0 || trackWidth <= 0 || len(targets) == 0 {
		return nil
	}
	pxPerSecond := trackWidth / duration
	limit := thresholdPx * (1 + 1e-9)

	var best *SnapTarget
	bestDist := math.Inf(1)
	for i := range targets {
		d := math.Abs(targets[i].Time-t) * pxPerSecond
		if d <= limit && d < bestDist {
			best = &targets[i]
			bestDist = d
		}
	}
	return best
}

// TickInterval is the tick spacing the ruler should use at a given zoom
// density, in seconds.
type TickInterval struct {
	Major float64
	Minor float64
}

// IntervalForDensity maps ruler density (pixels per second) to tick spacing.
// The thresholds form a step function; denser rulers get finer ticks.
func IntervalForDensity(pxPerSecond float64) TickInterval {
	switch {
	case pxPerSecond >= 200:
		return TickInterval{Major: 1, Minor: 0.1}
	case pxPerSecond >= 100:
		return TickInterval{Major: 1, Minor: 0.25}
	case pxPerSecond >= 60:
		return TickInterval{Major: 2, Minor: 0.5}
	case pxPerSecond >= 30:
		return TickInterval{Major: 5, Minor: 1}
	case pxPerSecond >= 15:
		return TickInterval{Major: 10, Minor: 2}
	default:
		return TickInterval{Major: 15, Minor: 5}
	}
}

// FormatTime renders seconds as a zero-padded "MM:SS.cc" timecode.
// Non-finite input renders as "00:00.00".
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "00:00.00"
	}
	if seconds < 0 {
		seconds = 0
	}
	mins := int(seconds) / 60
	secs := int(seconds) % 60
	centis := int(math.Round((seconds - math.Floor(seconds)) * 100))
	if centis >= 100 {
		centis = 0
		secs++
		if secs >= 60 {
			secs = 0
			mins++
		}
	}
	return fmt.Sprintf("%02d:%02d.%02d", mins, secs, centis)
}

// FormatRulerLabel renders a major-tick label: "Ns" for times under a
// minute, full timecode otherwise.
func FormatRulerLabel(seconds float64) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", int(seconds))
	}
	return FormatTime(seconds)
}

// ParseTime parses user-entered timecode text. Accepted forms are
// "MM:SS.cc", "MM:SS", "SS.cc", and plain integer seconds. A single
// fractional digit is treated as tenths ("1:05.3" is 65.30). The second
// return value is false when the input is not a valid timecode; callers
// must not seek on failed parses.
func ParseTime(input string) (float64, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, false
	}

	var minPart, secPart string
	if idx := strings.Index(s, ":"); idx >= 0 {
		minPart, secPart = s[:idx], s[idx+1:]
	} else {
		secPart = s
	}

	minutes := 0
	if minPart != "" {
		m, err := strconv.Atoi(minPart)
		if err != nil || m < 0 {
			return 0, false
		}
		minutes = m
	}

	secStr, fracStr := secPart, ""
	if idx := strings.Index(secPart, "."); idx >= 0 {
		secStr, fracStr = secPart[:idx], secPart[idx+1:]
	}
	if secStr == "" {
		return 0, false
	}
	secs, err := strconv.Atoi(secStr)
	if err != nil || secs < 0 {
		return 0, false
	}
	if minPart != "" && secs >= 60 {
		return 0, false
	}

	frac := 0.0
	if fracStr != "" {
		if len(fracStr) > 2 {
			fracStr = fracStr[:2]
		}
		// Right-pad partial fractions: ".3" means 30 centiseconds.
		for len(fracStr) < 2 {
			fracStr += "0"
		}
		c, err := strconv.Atoi(fracStr)
		if err != nil || c < 0 {
			return 0, false
		}
		frac = float64(c) / 100
	}

	return float64(minutes)*60 + float64(secs) + frac, true
}

var idCounter atomic.Uint64

// GenerateID returns a prefixed identifier that is unique for the lifetime
// of the process. The format is incidental; only uniqueness is contractual.
func GenerateID(prefix string) string {
	n := idCounter.Add(1)
	return fmt.Sprintf("%s-%d-%d", prefix, time.Now().UnixMilli(), n)
}
