// Package config loads clipline configuration from a TOML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration.
type Config struct {
	Theme       string         `toml:"theme"`        // UI theme (mocha, latte)
	SnapEnabled bool           `toml:"snap_enabled"` // default snap toggle state
	FrameRate   float64        `toml:"frame_rate"`   // fallback frame rate for frame stepping
	Playback    PlaybackConfig `toml:"playback"`
	Media       MediaConfig    `toml:"media"`
	Export      ExportConfig   `toml:"export"`
}

// PlaybackConfig holds transport defaults.
type PlaybackConfig struct {
	Speed float64 `toml:"speed"` // initial playback rate
}

// MediaConfig points at the ffmpeg binaries and controls reload behavior.
type MediaConfig struct {
	FFmpegPath  string `toml:"ffmpeg_path"`
	FFprobePath string `toml:"ffprobe_path"`
	WatchFile   bool   `toml:"watch_file"` // reload waveform/thumbnails on change
}

// ExportConfig controls the CLI-level marker/loop export.
type ExportConfig struct {
	Path string `toml:"path"` // default --export destination, empty disables
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:       "mocha",
		SnapEnabled: true,
		FrameRate:   30,
		Playback:    PlaybackConfig{Speed: 1},
		Media:       MediaConfig{WatchFile: true},
	}
}

// DefaultPath returns the conventional config location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "clipline", "config.toml")
}

// Load reads the config at path, or the default location when path is
// empty. A missing file yields defaults, not an error; a malformed file
// is an error. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays CLIPLINE_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("CLIPLINE_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("CLIPLINE_FFMPEG"); v != "" {
		c.Media.FFmpegPath = v
	}
	if v := os.Getenv("CLIPLINE_FFPROBE"); v != "" {
		c.Media.FFprobePath = v
	}
	if v := os.Getenv("CLIPLINE_FRAME_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			c.FrameRate = f
		}
	}
}

func (c *Config) validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame_rate must be positive, got %v", c.FrameRate)
	}
	if c.Playback.Speed <= 0 {
		return fmt.Errorf("playback.speed must be positive, got %v", c.Playback.Speed)
	}
	return nil
}
