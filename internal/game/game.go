package game

import (
	"fmt"
	"time"

	"chosenoffset.com/ripplegrid/internal/core/frame"
	"chosenoffset.com/ripplegrid/internal/core/layout"
	"chosenoffset.com/ripplegrid/internal/render/software"
	"chosenoffset.com/ripplegrid/internal/simulation"
)

// DefaultStep is the scripted frame interval (60Hz).
const DefaultStep = time.Second / 60

// Script describes a headless run: a long press held on Tile from time zero,
// stepped until At has elapsed since the ripple started.
type Script struct {
	Width, Height int
	Tile          layout.Tile
	At            time.Duration
	Step          time.Duration // zero means DefaultStep
}

// Run plays the script and returns the final frame.
func (s Script) Run(cfg *simulation.Config) (*frame.Frame, error) {
	o := frame.New(cfg.FrameConfig(), float64(s.Width), float64(s.Height))
	l := o.Layout()
	if !l.Contains(s.Tile) {
		return nil, fmt.Errorf("tile %d,%d is outside the %dx%d grid", s.Tile.IX, s.Tile.IY, l.Cols, l.Rows)
	}
	if l.Diameter <= 0 {
		return nil, fmt.Errorf("viewport %dx%d leaves no room for tiles", s.Width, s.Height)
	}

	step := s.Step
	if step <= 0 {
		step = DefaultStep
	}
	deadline := cfg.LongPress() + s.At + 2*step

	o.PointerDown(0, l.TileCenter(s.Tile.IX, s.Tile.IY))
	for now := time.Duration(0); ; now += step {
		f := o.Tick(now)
		if f.HasRipple && now-f.Ripple.Start >= s.At {
			return f, nil
		}
		if now > deadline {
			return nil, fmt.Errorf("ripple did not start within %v", deadline)
		}
	}
}

// Snapshot plays the script and paints the final frame on a CPU canvas.
// The caller closes the canvas.
func Snapshot(cfg *simulation.Config, s Script) (*software.Canvas, error) {
	f, err := s.Run(cfg)
	if err != nil {
		return nil, err
	}
	canvas := software.NewCanvas(s.Width, s.Height)
	Paint(canvas, f, StyleFromConfig(cfg))
	if err := canvas.Err(); err != nil {
		canvas.Close()
		return nil, err
	}
	return canvas, nil
}
