package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	"chosenoffset.com/ripplegrid/internal/core/frame"
	"chosenoffset.com/ripplegrid/internal/core/layout"
	"chosenoffset.com/ripplegrid/internal/game"
	ebitenrender "chosenoffset.com/ripplegrid/internal/render/ebiten"
	"chosenoffset.com/ripplegrid/internal/simulation"
)

func main() {
	configPath := flag.String("config", "ripplegrid.json", "Path to JSON config")
	width := flag.Int("width", 0, "Window width (overrides config)")
	height := flag.Int("height", 0, "Window height (overrides config)")
	verbose := flag.Bool("v", false, "Log ripple and tile events")
	snapshot := flag.String("snapshot", "", "Render a scripted ripple to this PNG and exit")
	at := flag.Duration("at", time.Second, "Snapshot time after the ripple starts")
	tile := flag.String("tile", "2,3", "Snapshot tile as col,row")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if *verbose {
		frame.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *snapshot != "" {
		if err := writeSnapshot(cfg, *snapshot, *tile, *at); err != nil {
			log.Fatalf("Snapshot failed: %v", err)
		}
		log.Printf("Wrote %s", *snapshot)
		return
	}

	// Initialize the renderer backend (ebiten)
	text := ebitenrender.NewTextRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	manager := game.NewManager(cfg, text, inputMgr, cfg.Window.Width, cfg.Window.Height)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	log.Printf("Starting %dx%d grid...", cfg.Grid.Cols, cfg.Grid.Rows)
	if err := engine.RunGame(manager); err != nil && !errors.Is(err, game.ErrQuit) {
		log.Fatal(err)
	}
}

func writeSnapshot(cfg *simulation.Config, path, tile string, at time.Duration) error {
	var t layout.Tile
	if _, err := fmt.Sscanf(tile, "%d,%d", &t.IX, &t.IY); err != nil {
		return fmt.Errorf("invalid tile %q: %w", tile, err)
	}

	canvas, err := game.Snapshot(cfg, game.Script{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Tile:   t,
		At:     at,
	})
	if err != nil {
		return err
	}
	defer canvas.Close()
	return canvas.SavePNG(path)
}
