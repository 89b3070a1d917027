package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"chosenoffset.com/ripplegrid/internal/core/frame"
	"chosenoffset.com/ripplegrid/internal/core/geom"
	"chosenoffset.com/ripplegrid/internal/render"
	"chosenoffset.com/ripplegrid/internal/render/software"
	"chosenoffset.com/ripplegrid/internal/simulation"
)

// ErrQuit is returned from Update when the user asks to close the window.
var ErrQuit = errors.New("quit requested")

// Manager drives the grid from the engine's Update/Draw/Layout callbacks.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Config       *simulation.Config
	Grid         *frame.Orchestrator
	Text         render.TextRenderer
	InputMgr     render.InputManager
	Style        Style

	// Clock returns monotonic time since start. Sampled once per Update.
	Clock func() time.Duration

	// ScreenshotDir is where P writes PNGs.
	ScreenshotDir string
	ShowDebug     bool

	frame       *frame.Frame
	pointerDown bool
	pointerX    int
	pointerY    int
	shots       int
}

// NewManager creates a manager for a width x height viewport.
func NewManager(cfg *simulation.Config, text render.TextRenderer, input render.InputManager, width, height int) *Manager {
	start := time.Now()
	return &Manager{
		ScreenWidth:   width,
		ScreenHeight:  height,
		Config:        cfg,
		Grid:          frame.New(cfg.FrameConfig(), float64(width), float64(height)),
		Text:          text,
		InputMgr:      input,
		Style:         StyleFromConfig(cfg),
		Clock:         func() time.Duration { return time.Since(start) },
		ScreenshotDir: ".",
	}
}

// Frame returns the last evaluated frame, or nil before the first Update.
func (m *Manager) Frame() *frame.Frame {
	return m.frame
}

// Update forwards pointer edges to the grid and evaluates one frame.
func (m *Manager) Update() error {
	if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return ErrQuit
	}
	if m.InputMgr.IsKeyJustPressed(render.KeyD) {
		m.ShowDebug = !m.ShowDebug
	}

	now := m.Clock()
	x, y, down := m.InputMgr.PrimaryPointer()
	p := geom.Pt(float64(x), float64(y))
	switch {
	case down && !m.pointerDown:
		m.Grid.PointerDown(now, p)
	case down && (x != m.pointerX || y != m.pointerY):
		m.Grid.PointerMove(p)
	case !down && m.pointerDown:
		m.Grid.PointerUp(now)
	}
	m.pointerDown, m.pointerX, m.pointerY = down, x, y

	m.frame = m.Grid.Tick(now)

	if m.InputMgr.IsKeyJustPressed(render.KeyP) {
		path, err := m.Screenshot()
		if err != nil {
			log.Printf("Screenshot failed: %v", err)
		} else {
			log.Printf("Saved screenshot %s", path)
		}
	}
	return nil
}

// Draw paints the last frame and the debug overlay.
func (m *Manager) Draw(screen render.Surface) {
	Paint(screen, m.frame, m.Style)
	if !m.ShowDebug || m.Text == nil {
		return
	}
	y := 4
	for _, line := range DebugLines(m.frame) {
		m.Text.DrawText(screen, line, 4, y, color.White, 1.0)
		_, h := m.Text.MeasureText(line, 1.0)
		y += h
	}
}

// Layout handles window resize. Tile and ripple state are kept.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		m.Grid.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Screenshot renders the last frame on the CPU and writes it as a PNG.
func (m *Manager) Screenshot() (string, error) {
	if m.frame == nil {
		return "", errors.New("no frame to capture")
	}
	m.shots++
	path := filepath.Join(m.ScreenshotDir, fmt.Sprintf("ripplegrid-%03d.png", m.shots))

	canvas := software.NewCanvas(m.ScreenWidth, m.ScreenHeight)
	defer canvas.Close()
	Paint(canvas, m.frame, m.Style)
	if err := canvas.SavePNG(path); err != nil {
		return "", err
	}
	return path, nil
}
