package game

import (
	"image/color"

	"chosenoffset.com/ripplegrid/internal/simulation"
)

// Style is how outlines are painted.
type Style struct {
	Background color.Color
	Stroke     color.Color
	Width      float64
}

// StyleFromConfig builds the paint style from the config.
func StyleFromConfig(cfg *simulation.Config) Style {
	return Style{
		Background: cfg.BackgroundColor(),
		Stroke:     cfg.StrokeColor(),
		Width:      cfg.Style.StrokeWidth,
	}
}
