package main

type Mode int

const (
	ModeIdle Mode = iota
	ModeDrawing
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "IDLE"
	case ModeDrawing:
		return "DRAWING"
	default:
		return "UNKNOWN"
	}
}

type ConfirmAction int

const (
	ConfirmNone ConfirmAction = iota
	ConfirmQuit
)

const (
	defaultBrushSize  = 20.0 // brush size units, before density scaling
	pencilBrushSize   = 2.0
	minBrushSize      = 1.0
	maxBrushSize      = 60.0
	defaultColor      = "#000000"
	defaultBackground = "#FFFFFF"
	defaultDensity    = 1.0

	exportPrefix = "DrawingApp_"
	exportExt    = ".png"

	// Each terminal cell covers cellWidth x cellHeight pixels of the surface
	// and is previewed as two stacked half-blocks.
	cellWidth  = 8
	cellHeight = 16
)

// Brush sizes offered by the size chooser (small, medium, large).
var brushSizes = []float64{10, 20, 30}

// Palette bound to the number keys 1-9.
var palette = []string{
	"#000000",
	"#FF0000",
	"#00C853",
	"#2962FF",
	"#FFD600",
	"#FF4081",
	"#8D6E63",
	"#9E9E9E",
	"#FFFFFF",
}
