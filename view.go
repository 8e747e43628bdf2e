package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const halfBlock = "▀"

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Background(lipgloss.Color("236")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#87D787")).Background(lipgloss.Color("236"))
)

// preview caches the terminal rendering of the surface between invalidations.
type preview struct {
	dirty      bool
	cols, rows int
	text       string
}

func (p *preview) invalidate() {
	p.dirty = true
}

func (p *preview) render(c *Controller, cols, rows int) string {
	if !p.dirty && p.cols == cols && p.rows == rows {
		return p.text
	}
	img := c.Render()
	p.text = renderHalfBlocks(img, c.background, cols, rows)
	p.cols, p.rows = cols, rows
	p.dirty = false
	return p.text
}

// renderHalfBlocks draws img as cols x rows cells, each cell showing its top
// and bottom half as the foreground and background of a half-block.
func renderHalfBlocks(img *image.RGBA, bg color.NRGBA, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}

	var out strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			out.WriteString("\n")
		}
		runTop, runBottom, run := "", "", 0
		flush := func() {
			if run == 0 {
				return
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(runTop)).
				Background(lipgloss.Color(runBottom))
			out.WriteString(style.Render(strings.Repeat(halfBlock, run)))
			run = 0
		}
		for col := 0; col < cols; col++ {
			x0 := col * cellWidth
			y0 := row * cellHeight
			top := hexString(samplePixels(img, image.Rect(x0, y0, x0+cellWidth, y0+cellHeight/2), bg))
			bottom := hexString(samplePixels(img, image.Rect(x0, y0+cellHeight/2, x0+cellWidth, y0+cellHeight), bg))
			if run > 0 && (top != runTop || bottom != runBottom) {
				flush()
			}
			runTop, runBottom = top, bottom
			run++
		}
		flush()
	}
	return out.String()
}

// samplePixels picks the pixel in r that stands out most from bg, so thin
// strokes stay visible at terminal resolution.
func samplePixels(img *image.RGBA, r image.Rectangle, bg color.NRGBA) color.NRGBA {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return bg
	}
	best := toNRGBA(img.RGBAAt(r.Min.X, r.Min.Y))
	bestDist := -1
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.RGBAAt(x, y)
			d := absDiff(c.R, bg.R) + absDiff(c.G, bg.G) + absDiff(c.B, bg.B)
			if d > bestDist {
				best = toNRGBA(c)
				bestDist = d
			}
		}
	}
	best.A = 0xFF
	return best
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func (m model) statusLine() string {
	if m.confirmAction == ConfirmQuit {
		return statusStyle.Width(m.width).Render("Quit sketchpad? Unexported drawing will be lost. (y/n)")
	}

	brush := m.surface.Brush()
	active, undone := m.surface.Counts()
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(hexString(brush.Color))).Background(lipgloss.Color("236")).Render("■")
	status := fmt.Sprintf(" Mode: %s | Color: %s | Size: %g | Strokes: %d (undone %d)",
		m.surface.Mode(), hexString(brush.Color), m.surface.BrushSize(),
		active, undone)
	if m.exporting {
		status += " | Exporting..."
	}

	line := statusStyle.Render(status+" ") + swatch
	switch {
	case m.errorMessage != "":
		line += errorStyle.Render(" | ERROR: " + m.errorMessage)
	case m.successMessage != "":
		line += successStyle.Render(" | " + m.successMessage)
	default:
		line += statusStyle.Render(" | ? for help | q to quit")
	}
	return line
}

func (m model) helpView() string {
	helpLines := []string{
		"Sketchpad Help",
		"==============",
		"",
		"Drawing:",
		"--------",
		"  Left mouse drag  Draw a stroke",
		"  Esc              Cancel the stroke being drawn",
		"",
		"Brush:",
		"------",
		"  1-9              Pick a palette color",
		"  p                Pencil (thin brush)",
		"  b                Cycle brush size (small, medium, large)",
		"  +/-              Grow or shrink the brush",
		"",
		"History:",
		"--------",
		"  u                Undo last stroke",
		"  r                Redo last undone stroke",
		"",
		"Files:",
		"------",
		"  s                Export PNG to " + m.config.ExportDirectory,
		"  y                Copy last export path to clipboard",
		"  x                Remove background image",
		"",
		"  ?                Close help",
		"  q                Quit",
	}
	return strings.Join(helpLines, "\n")
}
