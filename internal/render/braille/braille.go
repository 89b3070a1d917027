// Package braille implements a drawing surface on Unicode braille cells.
// Each terminal cell holds a 2x4 grid of dots, so a surface of w x h cells
// exposes 2w x 4h dot pixels.
package braille

import (
	"image/color"
	"math"
	"strings"

	"chosenoffset.com/ripplegrid/internal/core/geom"
)

// dotBits maps a dot position within a cell (column, row) to its bit in the
// braille pattern block starting at U+2800.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Canvas is a render.Surface on braille cells. Colour and stroke width are
// ignored; every stroke is one dot wide.
type Canvas struct {
	cols, rows int
	mask       []uint8 // row-major per-cell mask
}

// NewCanvas creates a blank canvas of cols x rows terminal cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize changes the cell dimensions and clears the canvas.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	n := c.cols * c.rows
	if cap(c.mask) >= n {
		c.mask = c.mask[:n]
		clear(c.mask)
		return
	}
	c.mask = make([]uint8, n)
}

// Cells returns the dimensions in terminal cells.
func (c *Canvas) Cells() (cols, rows int) {
	return c.cols, c.rows
}

// Size returns the dimensions in dots.
func (c *Canvas) Size() (width, height int) {
	return c.cols * 2, c.rows * 4
}

// Fill clears every dot.
func (c *Canvas) Fill(color.Color) {
	clear(c.mask)
}

// Set lights the dot at (x, y). Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= c.cols || cy >= c.rows {
		return
	}
	c.mask[cy*c.cols+cx] |= dotBits[x%2][y%4]
}

// Dot reports whether the dot at (x, y) is lit.
func (c *Canvas) Dot(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	cx, cy := x/2, y/4
	if cx >= c.cols || cy >= c.rows {
		return false
	}
	return c.mask[cy*c.cols+cx]&dotBits[x%2][y%4] != 0
}

// Line draws a one-dot line using Bresenham.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// StrokeClosedPolyline draws the outline through pts and back to the first.
func (c *Canvas) StrokeClosedPolyline(pts []geom.Point, _ float64, _ color.Color) {
	if len(pts) < 2 {
		return
	}
	prev := pts[len(pts)-1]
	for _, p := range pts {
		c.Line(round(prev.X), round(prev.Y), round(p.X), round(p.Y))
		prev = p
	}
}

// Lines renders each cell row as a string. Empty cells are spaces.
func (c *Canvas) Lines() []string {
	out := make([]string, c.rows)
	var sb strings.Builder
	for y := 0; y < c.rows; y++ {
		sb.Reset()
		for _, m := range c.mask[y*c.cols : (y+1)*c.cols] {
			if m == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteRune(rune(0x2800 + int(m)))
			}
		}
		out[y] = sb.String()
	}
	return out
}

// String joins Lines with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func round(v float64) int {
	return int(math.Round(v))
}
