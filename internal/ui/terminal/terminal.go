// Package terminal runs the ripple grid in a terminal with bubbletea.
// The grid is drawn on braille dots and driven by the mouse: hold the left
// button on a tile to start a ripple.
package terminal

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chosenoffset.com/ripplegrid/internal/core/frame"
	"chosenoffset.com/ripplegrid/internal/core/geom"
	"chosenoffset.com/ripplegrid/internal/game"
	"chosenoffset.com/ripplegrid/internal/render/braille"
	"chosenoffset.com/ripplegrid/internal/simulation"
)

// DotScale converts screen pixel quantities to braille dots. A terminal cell
// is roughly 8x16 pixels and 2x4 dots.
const DotScale = 0.25

// FrameInterval is the tick period.
const FrameInterval = time.Second / 30

const (
	headerHeight = 1
	footerHeight = 2
)

type tickMsg time.Time

// Model is the bubbletea model for the terminal grid.
type Model struct {
	width  int
	height int

	grid   *frame.Orchestrator
	canvas *braille.Canvas
	frame  *frame.Frame
	style  game.Style

	clock       func() time.Duration
	pointerDown bool
	showDebug   bool

	keys keyMap
	help help.Model
}

// New creates a model; pixel quantities in cfg are scaled to dots.
func New(cfg *simulation.Config) Model {
	dots := cfg.Scaled(DotScale)
	start := time.Now()
	return Model{
		grid:   frame.New(dots.FrameConfig(), 0, 0),
		canvas: braille.NewCanvas(0, 0),
		style:  game.StyleFromConfig(dots),
		clock:  func() time.Duration { return time.Since(start) },
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.canvas.Resize(msg.Width, max(msg.Height-headerHeight-footerHeight, 0))
		w, h := m.canvas.Size()
		m.grid.Resize(float64(w), float64(h))
		// Outlines from the previous tick belong to the old layout.
		m.frame = m.grid.Tick(m.clock())
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Debug):
			m.showDebug = !m.showDebug
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tickMsg:
		m.frame = m.grid.Tick(m.clock())
		return m, tick()
	}
	return m, nil
}

// handleMouse maps the left button to the primary pointer. Cells map to the
// centre of their dot block.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	p := geom.Pt(float64(msg.X*2+1), float64((msg.Y-headerHeight)*4+2))
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.grid.PointerDown(m.clock(), p)
			m.pointerDown = true
		}
	case tea.MouseActionMotion:
		if m.pointerDown {
			m.grid.PointerMove(p)
		}
	case tea.MouseActionRelease:
		if m.pointerDown {
			m.grid.PointerUp(m.clock())
			m.pointerDown = false
		}
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	game.Paint(m.canvas, m.frame, m.style)

	header := titleStyle.Render(" ripplegrid ─ hold a tile to send a ripple ")
	header = lipgloss.NewStyle().Width(m.width).Render(header)

	body := gridStyle.Render(m.canvas.String())

	footer := lipgloss.JoinVertical(lipgloss.Left,
		statusStyle.Render(m.status()),
		m.help.View(m.keys),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) status() string {
	if m.frame == nil {
		return "waiting for first frame"
	}
	if m.showDebug {
		return strings.Join(game.DebugLines(m.frame), " | ")
	}
	s := m.frame.Stats()
	return fmt.Sprintf("ripple: %s  morphing: %d  settled: %d", m.frame.Phase, s.Morphing, s.Settled)
}

// Run starts the terminal program and blocks until it exits.
func Run(cfg *simulation.Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run terminal ui: %w", err)
	}
	return nil
}
