// Package render declares the backend-neutral drawing, input and window
// interfaces the grid front ends are written against.
package render

import (
	"image/color"

	"chosenoffset.com/ripplegrid/internal/core/geom"
)

// Surface is the minimal drawing target the grid needs: a background fill and
// stroked closed outlines. Window, PNG and terminal backends all implement it.
type Surface interface {
	// Size returns the surface dimensions in surface pixels.
	Size() (width, height int)

	// Fill fills the entire surface with the given color.
	Fill(clr color.Color)

	// StrokeClosedPolyline strokes the outline through pts, joining the last
	// point back to the first. Fewer than two points draw nothing.
	StrokeClosedPolyline(pts []geom.Point, width float64, clr color.Color)
}

// TextRenderer draws overlay text on a window surface.
type TextRenderer interface {
	DrawText(dst Surface, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// InputManager reports the keys and pointer the grid reacts to.
type InputManager interface {
	IsKeyJustPressed(key Key) bool

	// PrimaryPointer reports the single pointer the grid reacts to. The first
	// active touch wins; otherwise the mouse cursor and left button are used.
	PrimaryPointer() (x, y int, down bool)
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the grid binds
const (
	KeyD Key = iota // Debug overlay toggle
	KeyP            // Screenshot
	KeyEscape
)

// Game is driven by the Engine once per tick.
type Game interface {
	// Update advances one tick.
	Update() error

	// Draw paints the current state onto the window surface.
	Draw(screen Surface)

	// Layout receives the window size and returns the logical screen size,
	// which is also the coordinate space of pointer input.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the window and the game loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame blocks until the window closes or Update returns an error.
	RunGame(game Game) error
}
