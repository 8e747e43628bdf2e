package main

import (
	"image"
	"image/color"
	"math"
)

// Stroke is one continuous pointer-down to pointer-up polyline. It is
// append-only while open and immutable once sealed.
type Stroke struct {
	Color     color.NRGBA
	Thickness float64
	Points    []Point
	sealed    bool
}

func beginStroke(p Point, brush BrushSettings) *Stroke {
	return &Stroke{
		Color:     brush.Color,
		Thickness: brush.Thickness,
		Points:    []Point{p},
	}
}

func (s *Stroke) extend(p Point) {
	if s.sealed {
		return
	}
	s.Points = append(s.Points, p)
}

func (s *Stroke) seal() {
	s.sealed = true
}

func (s *Stroke) Sealed() bool {
	return s.sealed
}

// IsEmpty reports whether the stroke has no segment to draw.
func (s *Stroke) IsEmpty() bool {
	return len(s.Points) < 2
}

func (s *Stroke) clone() Stroke {
	c := *s
	c.Points = append([]Point(nil), s.Points...)
	return c
}

// Bounds returns the pixel rectangle the stroke can touch, including its
// half thickness on every side.
func (s *Stroke) Bounds() image.Rectangle {
	if len(s.Points) == 0 {
		return image.Rectangle{}
	}
	minX, minY := s.Points[0].X, s.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range s.Points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	pad := s.Thickness / 2
	return image.Rect(
		int(math.Floor(minX-pad)),
		int(math.Floor(minY-pad)),
		int(math.Ceil(maxX+pad)),
		int(math.Ceil(maxY+pad)),
	)
}
