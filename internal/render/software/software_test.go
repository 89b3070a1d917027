package software

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"chosenoffset.com/ripplegrid/internal/core/geom"
	"chosenoffset.com/ripplegrid/internal/render"
)

var _ render.Surface = (*Canvas)(nil)

func square(cx, cy, r float64) []geom.Point {
	return []geom.Point{
		{X: cx - r, Y: cy - r},
		{X: cx + r, Y: cy - r},
		{X: cx + r, Y: cy + r},
		{X: cx - r, Y: cy + r},
	}
}

func TestCanvasStrokesOutline(t *testing.T) {
	c := NewCanvas(64, 64)
	defer c.Close()

	c.Fill(color.Black)
	c.StrokeClosedPolyline(square(32, 32, 20), 3, color.White)
	if err := c.Err(); err != nil {
		t.Fatalf("Stroke failed: %v", err)
	}

	img := c.Image()
	// Left edge of the square is at x=12
	r, _, _, _ := img.At(12, 32).RGBA()
	if r < 0x8000 {
		t.Errorf("Expected bright pixel on the outline, got red %#x", r)
	}
	// Centre stays background
	r, _, _, a := img.At(32, 32).RGBA()
	if r != 0 || a != 0xffff {
		t.Errorf("Expected opaque black at centre, got red %#x alpha %#x", r, a)
	}
}

func TestCanvasIgnoresDegenerateOutline(t *testing.T) {
	c := NewCanvas(8, 8)
	defer c.Close()

	c.Fill(color.Black)
	c.StrokeClosedPolyline([]geom.Point{{X: 4, Y: 4}}, 3, color.White)
	c.StrokeClosedPolyline(nil, 3, color.White)
	if err := c.Err(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestCanvasPNGOutput(t *testing.T) {
	c := NewCanvas(40, 30)
	defer c.Close()
	c.Fill(color.Black)
	c.StrokeClosedPolyline(square(20, 15, 10), 2, color.White)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("Expected 40x30 image, got %dx%d", b.Dx(), b.Dy())
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := c.SavePNG(path); err != nil {
		t.Errorf("Failed to save: %v", err)
	}
}

func TestCanvasSize(t *testing.T) {
	c := NewCanvas(12, 34)
	defer c.Close()
	if w, h := c.Size(); w != 12 || h != 34 {
		t.Errorf("Expected 12x34, got %dx%d", w, h)
	}
}
