// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/user/gifcast/pkg/orchestrator"
	"github.com/user/gifcast/pkg/ports"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for gifcast.
type Config struct {
	Record RecordConfig `yaml:"record"`
	GIF    GIFConfig    `yaml:"gif"`
	Output OutputConfig `yaml:"output"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// RecordConfig represents capture and recording settings.
type RecordConfig struct {
	FPS          int     `yaml:"fps"`
	DurationSec  float64 `yaml:"duration_sec"`  // 0 means record until the timeout
	CountdownSec int     `yaml:"countdown_sec"` // Delay before a still capture
	TimeoutSec   int     `yaml:"timeout_sec"`
	Command      string  `yaml:"command"`
	Monitor      int     `yaml:"monitor"`
	Region       string  `yaml:"region"` // "WxH+X+Y", empty captures the whole display

	BorderWidth int    `yaml:"border_width"` // 0 disables the border
	BorderColor string `yaml:"border_color"` // Hex RGB, e.g. "3AA431"
	Padding     string `yaml:"padding"`      // "top:right:bottom:left"
}

// GIFConfig represents animation encoding settings.
type GIFConfig struct {
	Repeat  int     `yaml:"repeat"` // Negative means loop forever
	Quality int     `yaml:"quality"`
	Speed   float64 `yaml:"speed"`
	Fast    bool    `yaml:"fast"`
}

// OutputConfig represents output file settings.
type OutputConfig struct {
	Path      string `yaml:"path"` // Empty derives a default name from the format
	Format    string `yaml:"format"`
	Date      bool   `yaml:"date"`      // Append the current date to the file name
	Timestamp bool   `yaml:"timestamp"` // Append the Unix timestamp to the file name
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Record: RecordConfig{
			FPS:          10,
			CountdownSec: 3,
			TimeoutSec:   300,
			BorderWidth:  1,
			BorderColor:  "3AA431",
		},
		GIF: GIFConfig{
			Repeat:  -1,
			Quality: 75,
			Speed:   1.0,
		},
		Output: OutputConfig{
			Format: "gif",
		},
		DebugDir: "./debug",
	}
}

// Load reads a YAML configuration file and merges it over the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ToOrchestratorConfig converts the configuration into the
// orchestrator's flat config value.
func (c Config) ToOrchestratorConfig() (orchestrator.Config, error) {
	oc := orchestrator.DefaultConfig()
	oc.FPS = c.Record.FPS
	oc.Duration = time.Duration(c.Record.DurationSec * float64(time.Second))
	oc.Countdown = time.Duration(c.Record.CountdownSec) * time.Second
	oc.Timeout = time.Duration(c.Record.TimeoutSec) * time.Second
	oc.Command = c.Record.Command

	oc.Format = ports.ParseImageFormat(c.Output.Format)
	oc.OutputPath = c.Output.FileName()
	oc.Quality = c.GIF.Quality
	oc.Repeat = c.GIF.Repeat
	oc.Speed = c.GIF.Speed
	oc.Fast = c.GIF.Fast

	oc.BorderWidth = c.Record.BorderWidth
	if c.Record.BorderColor != "" {
		borderColor, err := ParseHexColor(c.Record.BorderColor)
		if err != nil {
			return oc, fmt.Errorf("border color: %w", err)
		}
		oc.BorderColor = borderColor
	}
	if c.Record.Padding != "" {
		padding, err := ParsePadding(c.Record.Padding)
		if err != nil {
			return oc, fmt.Errorf("padding: %w", err)
		}
		oc.Padding = padding
	}
	return oc, nil
}

// ParseHexColor parses an RGB hex string such as "3AA431" or "#3AA431".
func ParseHexColor(s string) (color.Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return nil, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q", s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}, nil
}

// ParsePadding parses a "top:right:bottom:left" padding value.
func ParsePadding(s string) (ports.Padding, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return ports.Padding{}, fmt.Errorf("invalid padding %q", s)
	}
	values := make([]int, 4)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v < 0 {
			return ports.Padding{}, fmt.Errorf("invalid padding %q", s)
		}
		values[i] = v
	}
	return ports.Padding{
		Top:    values[0],
		Right:  values[1],
		Bottom: values[2],
		Left:   values[3],
	}, nil
}
