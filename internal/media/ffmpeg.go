// Package media shells out to ffmpeg/ffprobe to describe a clip, extract a
// waveform, and sample thumbnail colors for the video track. Every failure
// here is recoverable: callers substitute placeholder visuals instead of
// surfacing errors, so a broken media source degrades rather than blocks.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

const (
	// LoadTimeout bounds the initial probe and full waveform decode.
	LoadTimeout = 15 * time.Second
	// ThumbnailTimeout bounds a single thumbnail frame seek, so one bad
	// frame never blocks the rest of the strip.
	ThumbnailTimeout = 400 * time.Millisecond

	// waveformSampleRate is the mono decode rate used for waveform
	// extraction. Amplitude shape is all that matters, so it is low.
	waveformSampleRate = 8000
)

// ProbeResult describes the media file as reported by ffprobe.
type ProbeResult struct {
	Duration  float64
	Width     int
	Height    int
	FrameRate float64
	HasAudio  bool
	HasVideo  bool
	Codec     string
}

// RGB is an 8-bit color sampled from a video frame.
type RGB struct {
	R, G, B uint8
}

// Hex renders the color as a lipgloss-compatible hex string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Prober extracts metadata and visual samples from a media file.
type Prober interface {
	Probe(ctx context.Context, path string) (*ProbeResult, error)
	Waveform(ctx context.Context, path string, buckets int) ([]float64, error)
	ThumbnailColors(ctx context.Context, path string, times []float64) ([]RGB, error)
}

// FFmpeg is the exec-based Prober. Binary paths are configurable so packaged
// installs can point at bundled builds.
type FFmpeg struct {
	FFmpegPath  string
	FFprobePath string
}

// NewFFmpeg creates a Prober using the given binary paths, defaulting to
// whatever is on PATH.
func NewFFmpeg(ffmpegPath, ffprobePath string) *FFmpeg {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &FFmpeg{FFmpegPath: ffmpegPath, FFprobePath: ffprobePath}
}

// ffprobe JSON payload, trimmed to the fields we read.
type probePayload struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType    string `json:"codec_type"`
		CodecName    string `json:"codec_name"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		AvgFrameRate string `json:"avg_frame_rate"`
	} `json:"streams"`
}

// Probe runs ffprobe and decodes its JSON output.
func (f *FFmpeg) Probe(ctx context.Context, path string) (*ProbeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, LoadTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, f.FFprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	var payload probePayload
	if err := json.Unmarshal(out, &payload); err != nil {
		return nil, fmt.Errorf("ffprobe output: %w", err)
	}

	result := &ProbeResult{}
	result.Duration, _ = strconv.ParseFloat(payload.Format.Duration, 64)
	for _, s := range payload.Streams {
		switch s.CodecType {
		case "video":
			result.HasVideo = true
			result.Width = s.Width
			result.Height = s.Height
			result.Codec = s.CodecName
			if r := parseFrameRate(s.AvgFrameRate); r > 0 {
				result.FrameRate = r
			}
		case "audio":
			result.HasAudio = true
		}
	}
	if result.Duration <= 0 {
		return nil, fmt.Errorf("ffprobe %s: no duration reported", path)
	}
	return result, nil
}

// parseFrameRate parses ffprobe's "num/den" rational frame rate.
func parseFrameRate(s string) float64 {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0
	}
	num, err1 := strconv.ParseFloat(parts[0], 64)
	den, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0
	}
	return num / den
}

// Waveform decodes the audio track to mono 16-bit PCM and downsamples it
// into the requested number of rectified amplitude buckets in [0, 1].
func (f *FFmpeg) Waveform(ctx context.Context, path string, buckets int) ([]float64, error) {
	if buckets <= 0 {
		return nil, fmt.Errorf("waveform: bucket count %d", buckets)
	}
	ctx, cancel := context.WithTimeout(ctx, LoadTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, f.FFmpegPath,
		"-v", "quiet",
		"-i", path,
		"-vn",
		"-ac", "1",
		"-ar", strconv.Itoa(waveformSampleRate),
		"-f", "s16le",
		"-",
	)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg pcm decode %s: %w", path, err)
	}
	samples := decodePCM16(out.Bytes())
	if len(samples) == 0 {
		return nil, fmt.Errorf("ffmpeg pcm decode %s: empty stream", path)
	}
	return Downsample(samples, buckets), nil
}

// ThumbnailColors samples the dominant frame color at each timestamp by
// scaling the frame to a single pixel. Each seek gets its own short
// timeout; a frame that cannot be decoded yields the zero color and the
// rest of the strip proceeds.
func (f *FFmpeg) ThumbnailColors(ctx context.Context, path string, times []float64) ([]RGB, error) {
	deadline, cancel := context.WithTimeout(ctx, LoadTimeout)
	defer cancel()

	colors := make([]RGB, len(times))
	var lastErr error
	for i, t := range times {
		if deadline.Err() != nil {
			lastErr = deadline.Err()
			break
		}
		c, err := f.frameColor(deadline, path, t)
		if err != nil {
			lastErr = err
			continue
		}
		colors[i] = c
	}
	if lastErr != nil && allZero(colors) {
		return nil, fmt.Errorf("thumbnail sampling %s: %w", path, lastErr)
	}
	return colors, nil
}

func (f *FFmpeg) frameColor(ctx context.Context, path string, t float64) (RGB, error) {
	ctx, cancel := context.WithTimeout(ctx, ThumbnailTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, f.FFmpegPath,
		"-v", "quiet",
		"-ss", strconv.FormatFloat(t, 'f', 3, 64),
		"-i", path,
		"-frames:v", "1",
		"-vf", "scale=1:1",
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"-",
	)
	out, err := cmd.Output()
	if err != nil {
		return RGB{}, err
	}
	if len(out) < 3 {
		return RGB{}, fmt.Errorf("short frame read at %.3fs", t)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

func allZero(colors []RGB) bool {
	for _, c := range colors {
		if c != (RGB{}) {
			return false
		}
	}
	return true
}

// decodePCM16 converts little-endian 16-bit PCM bytes to samples.
func decodePCM16(raw []byte) []int16 {
	n := len(raw) / 2
	samples := make([]int16, n)
	for i := 0; i < n; i++ {
		samples[i] = int16(uint16(raw[2*i]) | uint16(raw[2*i+1])<<8)
	}
	return samples
}
