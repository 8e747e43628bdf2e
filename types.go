package main

import (
	"image"
	"image/color"
)

type model struct {
	width          int
	height         int
	surface        *Controller
	exporter       *Exporter
	preview        *preview
	config         *Config
	help           bool
	confirmAction  ConfirmAction
	exporting      bool
	lastExport     string
	errorMessage   string
	successMessage string
}

// Point is a position in surface-local pixels.
type Point struct {
	X, Y float64
}

// BrushSettings is the color and device-pixel thickness a new stroke starts with.
type BrushSettings struct {
	Color     color.NRGBA
	Thickness float64
}

// Snapshot is an immutable copy of everything the compositor needs. It is
// taken on the event loop and may be handed to another goroutine.
type Snapshot struct {
	Width, Height int
	Background    color.NRGBA
	// BackgroundImage is already scaled to Width x Height and never mutated.
	BackgroundImage image.Image
	Strokes         []Stroke
	InProgress      *Stroke
}

type ExportResult struct {
	Path string
	Err  error
}
