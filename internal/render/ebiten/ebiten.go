package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/ripplegrid/internal/core/geom"
	"chosenoffset.com/ripplegrid/internal/render"
)

var (
	_ render.Surface      = (*Surface)(nil)
	_ render.InputManager = (*EbitenInputManager)(nil)
	_ render.Engine       = (*EbitenEngine)(nil)
)

// TextRenderer draws overlay text with ebiten's debug font.
type TextRenderer struct{}

// NewTextRenderer creates the debug-font text renderer.
func NewTextRenderer() render.TextRenderer {
	return TextRenderer{}
}

// DrawText prints str at (x, y). Color and scale are ignored; the debug font
// is always white at a fixed size. Surfaces from other backends are skipped.
func (TextRenderer) DrawText(dst render.Surface, str string, x, y int, clr color.Color, scale float64) {
	img, ok := dst.(*Surface)
	if !ok {
		return
	}
	ebitenutil.DebugPrintAt(img.img, str, x, y)
}

// MeasureText measures the width and height of text with the given scale.
// This is an approximation based on the debug font's character size.
func (TextRenderer) MeasureText(str string, scale float64) (width, height int) {
	// Debug font is approximately 6x16 pixels per character
	charWidth := 6.0
	charHeight := 16.0
	return int(float64(len(str)) * charWidth * scale), int(charHeight * scale)
}

// whiteImg is the 1x1 source for untextured triangles, created on first use.
var whiteImg *ebiten.Image

func whiteImage() *ebiten.Image {
	if whiteImg == nil {
		whiteImg = ebiten.NewImage(1, 1)
		whiteImg.Fill(color.White)
	}
	return whiteImg
}

// Surface wraps the ebiten screen image as a render.Surface.
type Surface struct {
	img *ebiten.Image

	// Scratch buffers reused across strokes
	vertices []ebiten.Vertex
	indices  []uint16
}

// Size returns the width and height of the screen.
func (i *Surface) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill fills the entire screen with the given color.
func (i *Surface) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// StrokeClosedPolyline strokes a closed outline with round joins and caps.
func (i *Surface) StrokeClosedPolyline(pts []geom.Point, width float64, clr color.Color) {
	if len(pts) < 2 {
		return
	}

	path := vector.Path{}
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	i.vertices, i.indices = path.AppendVerticesAndIndicesForStroke(i.vertices[:0], i.indices[:0], op)

	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	for j := range i.vertices {
		i.vertices[j].SrcX = 0
		i.vertices[j].SrcY = 0
		i.vertices[j].ColorR = float32(c.R) / 255
		i.vertices[j].ColorG = float32(c.G) / 255
		i.vertices[j].ColorB = float32(c.B) / 255
		i.vertices[j].ColorA = float32(c.A) / 255
	}

	i.img.DrawTriangles(i.vertices, i.indices, whiteImage(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct {
	touches []ebiten.TouchID
}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	return inpututil.IsKeyJustPressed(keyToEbitenKey(key))
}

// PrimaryPointer returns the first touch if any, else the mouse.
func (m *EbitenInputManager) PrimaryPointer() (x, y int, down bool) {
	m.touches = ebiten.AppendTouchIDs(m.touches[:0])
	if len(m.touches) > 0 {
		x, y = ebiten.TouchPosition(m.touches[0])
		return x, y, true
	}
	x, y = ebiten.CursorPosition()
	return x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyD:
		return ebiten.KeyD
	case render.KeyP:
		return ebiten.KeyP
	case render.KeyEscape:
		return ebiten.KeyEscape
	default:
		return 0
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game   render.Game
	screen Surface
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	return a.game.Update()
}

// Draw implements ebiten.Game. The wrapper is reused so stroke buffers persist.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.screen.img = screen
	a.game.Draw(&a.screen)
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
