// Package ripple detects the long press that seeds a ripple and tracks the
// expanding wavefront.
package ripple

import (
	"time"

	"chosenoffset.com/ripplegrid/internal/core/geom"
	"chosenoffset.com/ripplegrid/internal/core/layout"
)

// Phase is the ripple-level state.
type Phase int

const (
	Dormant Phase = iota
	Expanding
)

func (p Phase) String() string {
	if p == Expanding {
		return "expanding"
	}
	return "dormant"
}

// Config holds the timing constants of the controller.
type Config struct {
	LongPress time.Duration // hold time before a press seeds a ripple
	WaveSpeed float64       // wavefront speed in pixels per millisecond
}

// Pointer is the primary pointer as last reported by input events.
type Pointer struct {
	Down     bool
	DownAt   time.Duration
	Position geom.Point
}

// Ripple records where and when the current ripple started.
type Ripple struct {
	Tile   layout.Tile
	Origin geom.Point
	Start  time.Duration
}

// Radius returns the wavefront radius at now. Time before Start counts as zero.
func (r Ripple) Radius(now time.Duration, speed float64) float64 {
	elapsed := max(now-r.Start, 0)
	return float64(elapsed) / float64(time.Millisecond) * speed
}

// Controller owns pointer tracking and the Dormant/Expanding state machine.
// It is driven from a single goroutine: input methods between frames and
// Update once per frame.
type Controller struct {
	cfg       Config
	pointer   Pointer
	phase     Phase
	ripple    Ripple
	hasRipple bool
}

// NewController creates a dormant controller.
func NewController(cfg Config) *Controller {
	return &Controller{cfg: cfg}
}

// Config returns the controller timing constants.
func (c *Controller) Config() Config {
	return c.cfg
}

// PointerDown records a press. A press while the pointer is already down is
// treated as a move, since only the primary pointer is tracked.
func (c *Controller) PointerDown(now time.Duration, p geom.Point) {
	c.pointer.Position = p
	if c.pointer.Down {
		return
	}
	c.pointer.Down = true
	c.pointer.DownAt = now
}

// PointerMove updates the tracked pointer position.
func (c *Controller) PointerMove(p geom.Point) {
	c.pointer.Position = p
}

// PointerUp releases the pointer and stops wavefront expansion. It reports
// whether an expanding ripple was stopped. The ripple record is kept.
func (c *Controller) PointerUp(now time.Duration) bool {
	c.pointer.Down = false
	if c.phase != Expanding {
		return false
	}
	c.phase = Dormant
	return true
}

// Pointer returns the tracked pointer.
func (c *Controller) Pointer() Pointer {
	return c.pointer
}

// Phase returns the current ripple phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Expanding reports whether the wavefront is growing.
func (c *Controller) Expanding() bool {
	return c.phase == Expanding
}

// Ripple returns the most recent ripple, which outlives expansion until the
// next ripple replaces it.
func (c *Controller) Ripple() (Ripple, bool) {
	return c.ripple, c.hasRipple
}

// Radius returns the wavefront radius at now and false when dormant.
func (c *Controller) Radius(now time.Duration) (float64, bool) {
	if c.phase != Expanding {
		return 0, false
	}
	return c.ripple.Radius(now, c.cfg.WaveSpeed), true
}

// Update checks for a qualifying long press and starts a ripple from the
// centre of the tile under the pointer. It returns true on the frame a new
// ripple starts; the caller must then reset every tile.
func (c *Controller) Update(now time.Duration, l layout.Layout) bool {
	if !c.pointer.Down || c.phase == Expanding {
		return false
	}
	if now-c.pointer.DownAt < c.cfg.LongPress {
		return false
	}
	tile, ok := l.HitTile(c.pointer.Position.X, c.pointer.Position.Y)
	if !ok {
		return false
	}
	c.ripple = Ripple{
		Tile:   tile,
		Origin: l.TileCenter(tile.IX, tile.IY),
		Start:  now,
	}
	c.hasRipple = true
	c.phase = Expanding
	return true
}
