package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

var ErrInvalidThickness = errors.New("brush thickness must be positive")

// Controller is the drawing surface state machine. It is the only writer of
// the brush, the open stroke, the history, the background and the surface,
// and is meant to be driven from a single event loop.
type Controller struct {
	mode       Mode
	brush      BrushSettings
	brushSize  float64
	density    float64
	inProgress *Stroke
	history    History

	surface       *Surface
	width, height int

	background       color.NRGBA
	backgroundSource image.Image
	backgroundScaled image.Image

	// OnInvalidate is called whenever the state changed in a way that
	// needs a redraw.
	OnInvalidate func()
}

// NewController creates an idle surface. density converts brush size units
// into device pixels.
func NewController(density float64) *Controller {
	if density <= 0 || math.IsNaN(density) {
		density = defaultDensity
	}
	c := &Controller{
		density:    density,
		background: color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	}
	c.brush.Color = color.NRGBA{A: 0xFF}
	c.brushSize = defaultBrushSize
	c.brush.Thickness = defaultBrushSize * density
	return c
}

func (c *Controller) invalidate() {
	if c.OnInvalidate != nil {
		c.OnInvalidate()
	}
}

func (c *Controller) PointerDown(p Point) {
	if c.mode == ModeIdle {
		c.inProgress = beginStroke(p, c.brush)
		c.mode = ModeDrawing
		logger().Debug("stroke started", "x", p.X, "y", p.Y, "color", hexString(c.brush.Color), "thickness", c.brush.Thickness)
	}
	c.invalidate()
}

func (c *Controller) PointerMove(p Point) {
	if c.mode == ModeDrawing {
		c.inProgress.extend(p)
	}
	c.invalidate()
}

func (c *Controller) PointerUp() {
	if c.mode == ModeDrawing {
		c.history.commit(c.inProgress)
		logger().Debug("stroke committed", "points", len(c.inProgress.Points), "active", len(c.history.active))
		c.inProgress = nil
		c.mode = ModeIdle
	}
	c.invalidate()
}

// PointerCancel drops the open stroke without committing it.
func (c *Controller) PointerCancel() {
	if c.mode == ModeDrawing {
		logger().Debug("stroke cancelled", "points", len(c.inProgress.Points))
		c.inProgress = nil
		c.mode = ModeIdle
	}
	c.invalidate()
}

// SetColor parses value and makes it the brush color. An open stroke is
// recolored as a whole. Unparseable input is rejected and nothing changes.
func (c *Controller) SetColor(value string) error {
	col, err := parseColor(value)
	if err != nil {
		logger().Warn("color rejected", "value", value)
		return err
	}
	c.setColor(col)
	return nil
}

func (c *Controller) SetColorValue(col color.Color) {
	c.setColor(toNRGBA(col))
}

func (c *Controller) setColor(col color.NRGBA) {
	c.brush.Color = col
	if c.inProgress != nil {
		c.inProgress.Color = col
		c.invalidate()
	}
}

// SetBrushThickness stores size units scaled by the density factor. The open
// stroke keeps the thickness it started with.
func (c *Controller) SetBrushThickness(units float64) error {
	if !(units > 0) || math.IsInf(units, 0) {
		logger().Warn("brush size rejected", "units", units)
		return fmt.Errorf("%w: %v", ErrInvalidThickness, units)
	}
	c.brushSize = units
	c.brush.Thickness = units * c.density
	return nil
}

func (c *Controller) Undo() {
	if c.history.undo() {
		c.invalidate()
	}
}

func (c *Controller) Redo() {
	if c.history.redo() {
		c.invalidate()
	}
}

// Resize reallocates the backing buffer only when the size really changed.
func (c *Controller) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if c.surface != nil && width == c.width && height == c.height {
		return
	}

	c.width, c.height = width, height
	if c.surface == nil {
		c.surface = newSurface(width, height)
	} else {
		c.surface.resize(width, height)
	}
	c.backgroundScaled = scaleBackground(c.backgroundSource, width, height)
	logger().Debug("surface resized", "width", width, "height", height)
	c.invalidate()
}

func (c *Controller) SetBackgroundColor(col color.Color) {
	c.background = toNRGBA(col)
	c.invalidate()
}

// SetBackgroundImage places img beneath all strokes, stretched to the viewport.
func (c *Controller) SetBackgroundImage(img image.Image) {
	c.backgroundSource = img
	c.backgroundScaled = scaleBackground(img, c.width, c.height)
	c.invalidate()
}

func (c *Controller) ClearBackgroundImage() {
	c.SetBackgroundImage(nil)
}

func (c *Controller) HasBackgroundImage() bool {
	return c.backgroundSource != nil
}

func (c *Controller) Mode() Mode {
	return c.mode
}

func (c *Controller) Brush() BrushSettings {
	return c.brush
}

// BrushSize is the last size accepted by SetBrushThickness, in size units.
func (c *Controller) BrushSize() float64 {
	return c.brushSize
}

func (c *Controller) Density() float64 {
	return c.density
}

func (c *Controller) Active() []Stroke {
	return c.history.Active()
}

func (c *Controller) Undone() []Stroke {
	return c.history.Undone()
}

// Counts reports how many strokes are painted and how many are undone.
func (c *Controller) Counts() (active, undone int) {
	return len(c.history.active), len(c.history.undone)
}

func (c *Controller) InProgress() *Stroke {
	return c.inProgress
}

func (c *Controller) Size() (int, int) {
	return c.width, c.height
}

// Surface returns the backing buffer, or nil before the first Resize.
func (c *Controller) Surface() *Surface {
	return c.surface
}

// Render composites the current state into the surface and returns it.
func (c *Controller) Render() *image.RGBA {
	if c.surface == nil {
		return nil
	}
	composite(c.surface.context(), c.frame())
	return c.surface.Image()
}

// frame describes the current state without copying point data. It must not
// leave the event loop.
func (c *Controller) frame() Snapshot {
	snap := Snapshot{
		Width:           c.width,
		Height:          c.height,
		Background:      c.background,
		BackgroundImage: c.backgroundScaled,
		Strokes:         make([]Stroke, len(c.history.active)),
		InProgress:      c.inProgress,
	}
	for i, s := range c.history.active {
		snap.Strokes[i] = *s
	}
	return snap
}

// Snapshot returns a copy of the drawing state that stays valid however the
// controller changes afterwards.
func (c *Controller) Snapshot() Snapshot {
	snap := c.frame()
	for i := range snap.Strokes {
		snap.Strokes[i] = snap.Strokes[i].clone()
	}
	if c.inProgress != nil {
		open := c.inProgress.clone()
		snap.InProgress = &open
	}
	return snap
}
