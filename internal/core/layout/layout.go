// Package layout places a fixed grid of square tiles inside a viewport.
package layout

import (
	"math"

	"chosenoffset.com/ripplegrid/internal/core/geom"
)

// DefaultBaseRadius is the radius the shape outlines are built at.
const DefaultBaseRadius = 120.0

// radiusInset keeps rotated strokes clear of neighbouring tiles.
const radiusInset = 0.95 * 0.95

// Tile identifies a grid cell by column and row.
type Tile struct {
	IX, IY int
}

// Layout holds the derived geometry of the grid for one viewport size.
// A Layout is a value; recompute it on resize instead of mutating it.
type Layout struct {
	ViewportW, ViewportH float64
	Cols, Rows           int
	Gap                  float64
	BaseRadius           float64

	Diameter     float64 // tile edge length in pixels
	RenderRadius float64 // radius the outlines are scaled to
	Scale        float64 // RenderRadius / BaseRadius
	MarginX      float64
	MarginY      float64
}

// Compute derives the grid geometry using DefaultBaseRadius.
func Compute(viewportW, viewportH float64, cols, rows int, gap float64) Layout {
	return ComputeWithRadius(viewportW, viewportH, cols, rows, gap, DefaultBaseRadius)
}

// ComputeWithRadius derives the grid geometry for outlines built at
// baseRadius. Degenerate input (empty grid, viewport smaller than the gaps)
// yields a zero tile diameter rather than an error.
func ComputeWithRadius(viewportW, viewportH float64, cols, rows int, gap, baseRadius float64) Layout {
	l := Layout{
		ViewportW:  viewportW,
		ViewportH:  viewportH,
		Cols:       cols,
		Rows:       rows,
		Gap:        gap,
		BaseRadius: baseRadius,
	}

	if cols > 0 && rows > 0 {
		dx := (viewportW - gap*float64(cols-1)) / float64(cols)
		dy := (viewportH - gap*float64(rows-1)) / float64(rows)
		l.Diameter = math.Max(0, math.Min(dx, dy))
	}

	l.RenderRadius = l.Diameter / (2 * math.Sqrt2) * radiusInset
	if baseRadius > 0 {
		l.Scale = l.RenderRadius / baseRadius
	}

	usedW := float64(max(cols, 0))*l.Diameter + float64(max(cols-1, 0))*gap
	usedH := float64(max(rows, 0))*l.Diameter + float64(max(rows-1, 0))*gap
	l.MarginX = (viewportW - usedW) * 0.5
	l.MarginY = (viewportH - usedH) * 0.5
	return l
}

// TileCount returns the number of cells in the grid.
func (l Layout) TileCount() int {
	if l.Cols <= 0 || l.Rows <= 0 {
		return 0
	}
	return l.Cols * l.Rows
}

// Index returns the row-major index of a tile.
func (l Layout) Index(t Tile) int {
	return t.IY*l.Cols + t.IX
}

// Contains reports whether t is a valid cell of the grid.
func (l Layout) Contains(t Tile) bool {
	return t.IX >= 0 && t.IX < l.Cols && t.IY >= 0 && t.IY < l.Rows
}

// TileCenter returns the pixel centre of the tile at (ix, iy).
func (l Layout) TileCenter(ix, iy int) geom.Point {
	return geom.Point{
		X: l.MarginX + l.Diameter*(float64(ix)+0.5) + l.Gap*float64(ix),
		Y: l.MarginY + l.Diameter*(float64(iy)+0.5) + l.Gap*float64(iy),
	}
}

// HitTile maps a pixel position to the tile under it. The second result is
// false when the position lies in a gap between tiles or outside the grid.
func (l Layout) HitTile(px, py float64) (Tile, bool) {
	gx := px - l.MarginX
	gy := py - l.MarginY
	if gx < 0 || gy < 0 {
		return Tile{}, false
	}

	cell := l.Diameter + l.Gap
	if cell <= 0 {
		return Tile{}, false
	}

	// Range-check in float space; NaN fails both comparisons.
	fx, fy := gx/cell, gy/cell
	if !(fx < float64(l.Cols)) || !(fy < float64(l.Rows)) {
		return Tile{}, false
	}
	ix := int(math.Floor(fx))
	iy := int(math.Floor(fy))
	t := Tile{IX: ix, IY: iy}

	localX := gx - float64(ix)*cell
	localY := gy - float64(iy)*cell
	if localX <= l.Diameter && localY <= l.Diameter {
		return t, true
	}
	return Tile{}, false
}
