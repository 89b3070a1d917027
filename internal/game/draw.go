package game

import (
	"fmt"
	"time"

	"chosenoffset.com/ripplegrid/internal/core/frame"
	"chosenoffset.com/ripplegrid/internal/render"
)

// Paint fills the background and strokes every tile outline in f.
func Paint(dst render.Surface, f *frame.Frame, style Style) {
	dst.Fill(style.Background)
	if f == nil {
		return
	}
	for _, t := range f.Tiles {
		dst.StrokeClosedPolyline(t.Points, style.Width, style.Stroke)
	}
}

// DebugLines describes the ripple and tile counts for the overlay.
func DebugLines(f *frame.Frame) []string {
	if f == nil {
		return nil
	}
	s := f.Stats()
	lines := []string{
		fmt.Sprintf("t=%v ripple=%s", f.Now.Truncate(time.Millisecond), f.Phase),
	}
	if f.HasRipple {
		lines = append(lines, fmt.Sprintf("origin=(%d,%d) radius=%.0f",
			f.Ripple.Tile.IX, f.Ripple.Tile.IY, f.Radius))
	}
	lines = append(lines,
		fmt.Sprintf("idle=%d morphing=%d settled=%d", s.Idle, s.Morphing, s.Settled),
		fmt.Sprintf("tile=%.0fpx scale=%.2f", f.Layout.Diameter, f.Layout.Scale),
	)
	return lines
}
