// Package software renders grid frames on the CPU using gg. It backs
// headless snapshots and in-window screenshots.
package software

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"chosenoffset.com/ripplegrid/internal/core/geom"
)

// Canvas is a render.Surface backed by a gg context.
type Canvas struct {
	dc  *gg.Context
	err error
}

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.dc.Width(), c.dc.Height()
}

// Fill clears the canvas to clr.
func (c *Canvas) Fill(clr color.Color) {
	c.dc.ClearWithColor(gg.FromColor(clr))
}

// StrokeClosedPolyline strokes a closed outline with round joins and caps.
// Rasteriser errors are kept and reported by Err.
func (c *Canvas) StrokeClosedPolyline(pts []geom.Point, width float64, clr color.Color) {
	if len(pts) < 2 {
		return
	}

	c.dc.SetColor(clr)
	c.dc.SetLineWidth(width)
	c.dc.SetLineJoin(gg.LineJoinRound)
	c.dc.SetLineCap(gg.LineCapRound)

	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	if err := c.dc.Stroke(); err != nil && c.err == nil {
		c.err = fmt.Errorf("failed to stroke outline: %w", err)
	}
}

// Err returns the first stroke error, if any.
func (c *Canvas) Err() error {
	return c.err
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if c.err != nil {
		return c.err
	}
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// Close releases the context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
