// Package simulation provides configuration for the ripple grid.
// Values are loaded from a JSON file layered over built-in defaults.
package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"chosenoffset.com/ripplegrid/internal/core/frame"
	"chosenoffset.com/ripplegrid/internal/core/morph"
	"chosenoffset.com/ripplegrid/internal/core/ripple"
)

// Config holds all tunables for a run
type Config struct {
	Grid   GridConfig   `json:"grid"`
	Morph  MorphConfig  `json:"morph"`
	Ripple RippleConfig `json:"ripple"`
	Style  StyleConfig  `json:"style"`
	Window WindowConfig `json:"window"`
}

// GridConfig defines the tile grid and outline sampling
type GridConfig struct {
	Cols       int     `json:"cols"`
	Rows       int     `json:"rows"`
	Gap        float64 `json:"gap"`         // Pixels between tiles
	Samples    int     `json:"samples"`     // Points per outline (72-120 looks smooth)
	BaseRadius float64 `json:"base_radius"` // Radius outlines are built at
}

// MorphConfig defines the per-tile cycle rhythm
type MorphConfig struct {
	MorphMS int `json:"morph_ms"` // Interpolation time per stage
	HoldMS  int `json:"hold_ms"`  // Hold on the morphed shape per stage
}

// RippleConfig defines the long press and the wavefront
type RippleConfig struct {
	LongPressMS    int     `json:"long_press_ms"`
	WaveSpeed      float64 `json:"wave_speed_px_per_ms"`
	ActivationBand float64 `json:"activation_band"` // |d-R| <= band counts as a hit
}

// StyleConfig defines how outlines are stroked
type StyleConfig struct {
	StrokeWidth float64  `json:"stroke_width"`
	Alpha       uint8    `json:"alpha"`
	Background  [3]uint8 `json:"background"`
	Stroke      [3]uint8 `json:"stroke"`
}

// WindowConfig defines the initial window
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// DefaultConfig returns the stock ripple grid: 6x8 tiles, 0.3s morph + 1.5s hold
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			Cols:       6,
			Rows:       8,
			Gap:        16,
			Samples:    120,
			BaseRadius: 120,
		},
		Morph: MorphConfig{
			MorphMS: 300,
			HoldMS:  1500,
		},
		Ripple: RippleConfig{
			LongPressMS:    350,
			WaveSpeed:      0.8,
			ActivationBand: 40,
		},
		Style: StyleConfig{
			StrokeWidth: 3.0,
			Alpha:       230,
			Background:  [3]uint8{0, 0, 0},
			Stroke:      [3]uint8{255, 255, 255},
		},
		Window: WindowConfig{
			Width:  720,
			Height: 960,
			Title:  "Ripple Morph Grid",
		},
	}
}

// LoadConfig loads config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate rejects values the outline builder or the cycle timing cannot use.
// Grid dimensions are not checked; an empty grid just draws nothing.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.Samples < 3 {
		errs = append(errs, fmt.Errorf("grid.samples must be at least 3, got %d", c.Grid.Samples))
	}
	if c.Grid.BaseRadius <= 0 {
		errs = append(errs, fmt.Errorf("grid.base_radius must be positive, got %g", c.Grid.BaseRadius))
	}
	if c.Morph.MorphMS <= 0 {
		errs = append(errs, fmt.Errorf("morph.morph_ms must be positive, got %d", c.Morph.MorphMS))
	}
	if c.Morph.HoldMS < 0 {
		errs = append(errs, fmt.Errorf("morph.hold_ms must not be negative, got %d", c.Morph.HoldMS))
	}
	if c.Ripple.LongPressMS < 0 {
		errs = append(errs, fmt.Errorf("ripple.long_press_ms must not be negative, got %d", c.Ripple.LongPressMS))
	}
	if c.Ripple.WaveSpeed <= 0 {
		errs = append(errs, fmt.Errorf("ripple.wave_speed_px_per_ms must be positive, got %g", c.Ripple.WaveSpeed))
	}
	if c.Ripple.ActivationBand < 0 {
		errs = append(errs, fmt.Errorf("ripple.activation_band must not be negative, got %g", c.Ripple.ActivationBand))
	}
	return errors.Join(errs...)
}

// Scaled returns a copy with every pixel quantity multiplied by f. Used by
// front ends whose pixels are much coarser than screen pixels.
func (c *Config) Scaled(f float64) *Config {
	out := *c
	out.Grid.Gap *= f
	out.Ripple.WaveSpeed *= f
	out.Ripple.ActivationBand *= f
	out.Style.StrokeWidth *= f
	return &out
}

// MorphTiming returns the per-stage timing as durations
func (c *Config) MorphTiming() morph.Timing {
	return morph.Timing{
		Morph: time.Duration(c.Morph.MorphMS) * time.Millisecond,
		Hold:  time.Duration(c.Morph.HoldMS) * time.Millisecond,
	}
}

// LongPress returns the long-press threshold
func (c *Config) LongPress() time.Duration {
	return time.Duration(c.Ripple.LongPressMS) * time.Millisecond
}

// FrameConfig converts the config into orchestrator constants
func (c *Config) FrameConfig() frame.Config {
	return frame.Config{
		Cols:           c.Grid.Cols,
		Rows:           c.Grid.Rows,
		Gap:            c.Grid.Gap,
		Samples:        c.Grid.Samples,
		BaseRadius:     c.Grid.BaseRadius,
		ActivationBand: c.Ripple.ActivationBand,
		Timing:         c.MorphTiming(),
		Ripple: ripple.Config{
			LongPress: c.LongPress(),
			WaveSpeed: c.Ripple.WaveSpeed,
		},
	}
}

// StrokeColor returns the outline colour with the configured alpha
func (c *Config) StrokeColor() color.NRGBA {
	return color.NRGBA{R: c.Style.Stroke[0], G: c.Style.Stroke[1], B: c.Style.Stroke[2], A: c.Style.Alpha}
}

// BackgroundColor returns the opaque background colour
func (c *Config) BackgroundColor() color.NRGBA {
	return color.NRGBA{R: c.Style.Background[0], G: c.Style.Background[1], B: c.Style.Background[2], A: 255}
}
