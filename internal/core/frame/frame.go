// Package frame drives one evaluation of the ripple grid per rendered frame.
//
// The Orchestrator owns every piece of mutable state: pointer tracking, the
// ripple controller, the per-tile morph states and the layout. Front ends
// feed it pointer events and viewport sizes and call Tick once per frame
// with a clock value sampled once for that frame.
package frame

import (
	"math"
	"time"

	"chosenoffset.com/ripplegrid/internal/core/geom"
	"chosenoffset.com/ripplegrid/internal/core/layout"
	"chosenoffset.com/ripplegrid/internal/core/morph"
	"chosenoffset.com/ripplegrid/internal/core/ripple"
	"chosenoffset.com/ripplegrid/internal/core/shape"
)

// Config holds the grid, ripple and morph constants.
type Config struct {
	Cols, Rows     int
	Gap            float64
	Samples        int
	BaseRadius     float64
	ActivationBand float64 // |distance - radius| tolerance for activation
	Timing         morph.Timing
	Ripple         ripple.Config
}

// TileFrame is the evaluated state of one tile for one frame.
type TileFrame struct {
	Tile     layout.Tile
	Center   geom.Point
	State    morph.State
	Progress morph.Progress
	Points   []geom.Point // closed outline in screen space
}

// Stats counts tiles per lifecycle variant.
type Stats struct {
	Idle, Morphing, Settled int
}

// Frame is the output of one Tick. Its slices are owned by the Orchestrator
// and stay valid until the next Tick.
type Frame struct {
	Now       time.Duration
	Layout    layout.Layout
	Phase     ripple.Phase
	Radius    float64 // wavefront radius, zero while dormant
	Ripple    ripple.Ripple
	HasRipple bool
	Tiles     []TileFrame
}

// Stats tallies the tile states in the frame.
func (f *Frame) Stats() Stats {
	var s Stats
	for _, t := range f.Tiles {
		switch t.State.(type) {
		case morph.Idle:
			s.Idle++
		case morph.Morphing:
			s.Morphing++
		case morph.Settled:
			s.Settled++
		}
	}
	return s
}

// Orchestrator evaluates the ripple grid frame by frame.
// It is not safe for concurrent use.
type Orchestrator struct {
	cfg    Config
	lib    *shape.Library
	layout layout.Layout
	ctrl   *ripple.Controller
	board  *morph.Board
	points [][]geom.Point
	frame  Frame
}

// New builds the outline library and an all-idle grid for the given viewport.
func New(cfg Config, viewportW, viewportH float64) *Orchestrator {
	o := &Orchestrator{
		cfg:   cfg,
		lib:   shape.NewLibrary(cfg.Samples, cfg.BaseRadius),
		ctrl:  ripple.NewController(cfg.Ripple),
		board: morph.NewBoard(0),
	}
	o.Resize(viewportW, viewportH)
	return o
}

// Config returns the constants the orchestrator was built with.
func (o *Orchestrator) Config() Config {
	return o.cfg
}

// Library returns the cached outlines.
func (o *Orchestrator) Library() *shape.Library {
	return o.lib
}

// Layout returns the current grid layout.
func (o *Orchestrator) Layout() layout.Layout {
	return o.layout
}

// Controller exposes the ripple controller for inspection.
func (o *Orchestrator) Controller() *ripple.Controller {
	return o.ctrl
}

// State returns the morph state of a tile, or nil for tiles outside the grid.
func (o *Orchestrator) State(t layout.Tile) morph.State {
	if !o.layout.Contains(t) {
		return nil
	}
	return o.board.State(o.layout.Index(t))
}

// Resize recomputes the layout for a new viewport. Tile and ripple state are
// left untouched.
func (o *Orchestrator) Resize(viewportW, viewportH float64) {
	next := layout.ComputeWithRadius(viewportW, viewportH, o.cfg.Cols, o.cfg.Rows, o.cfg.Gap, o.cfg.BaseRadius)
	if next == o.layout {
		return
	}
	o.layout = next
	if n := next.TileCount(); n != o.board.Len() {
		o.board.Resize(n)
		o.points = make([][]geom.Point, n)
		for i := range o.points {
			o.points[i] = make([]geom.Point, 0, o.cfg.Samples)
		}
	}
	Logger().Info("layout changed",
		"width", viewportW, "height", viewportH,
		"diameter", next.Diameter, "scale", next.Scale)
}

// PointerDown records a press of the primary pointer.
func (o *Orchestrator) PointerDown(now time.Duration, p geom.Point) {
	o.ctrl.PointerDown(now, p)
}

// PointerMove records the primary pointer position.
func (o *Orchestrator) PointerMove(p geom.Point) {
	o.ctrl.PointerMove(p)
}

// PointerUp releases the primary pointer. An expanding ripple stops growing;
// tiles it already reached keep animating.
func (o *Orchestrator) PointerUp(now time.Duration) {
	if o.ctrl.PointerUp(now) {
		r, _ := o.ctrl.Ripple()
		Logger().Info("ripple stopped",
			"tile_x", r.Tile.IX, "tile_y", r.Tile.IY,
			"radius", r.Radius(now, o.cfg.Ripple.WaveSpeed))
	}
}

// Tick evaluates one frame at now: ripple activation, wavefront hits and
// every tile's morph, in row-major order.
func (o *Orchestrator) Tick(now time.Duration) *Frame {
	if o.ctrl.Update(now, o.layout) {
		o.board.Reset()
		r, _ := o.ctrl.Ripple()
		Logger().Info("ripple started",
			"tile_x", r.Tile.IX, "tile_y", r.Tile.IY,
			"origin_x", r.Origin.X, "origin_y", r.Origin.Y)
	}

	radius, expanding := o.ctrl.Radius(now)
	rip, hasRipple := o.ctrl.Ripple()

	f := &o.frame
	f.Now = now
	f.Layout = o.layout
	f.Phase = o.ctrl.Phase()
	f.Radius = radius
	f.Ripple = rip
	f.HasRipple = hasRipple
	f.Tiles = f.Tiles[:0]

	for iy := 0; iy < o.layout.Rows; iy++ {
		for ix := 0; ix < o.layout.Cols; ix++ {
			tile := layout.Tile{IX: ix, IY: iy}
			i := o.layout.Index(tile)
			center := o.layout.TileCenter(ix, iy)

			if expanding && math.Abs(geom.Distance(center, rip.Origin)-radius) <= o.cfg.ActivationBand {
				if o.board.Activate(i, now) {
					Logger().Debug("tile activated", "tile_x", ix, "tile_y", iy, "radius", radius)
				}
			}

			progress, settled := o.board.Advance(i, now, o.cfg.Timing)
			if settled {
				Logger().Debug("tile settled", "tile_x", ix, "tile_y", iy)
			}

			pts := o.lib.Blend(o.points[i], progress.Stage.Source(), progress.Stage.Target(), progress.K, o.layout.Scale)
			for j := range pts {
				pts[j] = pts[j].Add(center)
			}
			o.points[i] = pts

			f.Tiles = append(f.Tiles, TileFrame{
				Tile:     tile,
				Center:   center,
				State:    o.board.State(i),
				Progress: progress,
				Points:   pts,
			})
		}
	}
	return f
}
