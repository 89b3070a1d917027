package main

import (
	"flag"
	"log"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"chosenoffset.com/ripplegrid/internal/core/frame"
	"chosenoffset.com/ripplegrid/internal/simulation"
	"chosenoffset.com/ripplegrid/internal/ui/terminal"
)

func main() {
	configPath := flag.String("config", "ripplegrid.json", "Path to JSON config")
	logPath := flag.String("log", "", "Write ripple and tile events to this file")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The alternate screen owns stdout and stderr, so events go to a file.
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "ripplegrid")
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		frame.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := terminal.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
