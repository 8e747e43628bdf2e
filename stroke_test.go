package main

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginStrokeCopiesBrush(t *testing.T) {
	brush := BrushSettings{Color: color.NRGBA{R: 0xFF, A: 0xFF}, Thickness: 12}
	s := beginStroke(Point{X: 3, Y: 4}, brush)

	assert.Equal(t, brush.Color, s.Color)
	assert.Equal(t, 12.0, s.Thickness)
	assert.Equal(t, []Point{{X: 3, Y: 4}}, s.Points)
	assert.False(t, s.Sealed())
}

func TestStrokeIsEmpty(t *testing.T) {
	s := beginStroke(Point{}, BrushSettings{Thickness: 1})
	assert.True(t, s.IsEmpty(), "a single point has no segment")

	s.extend(Point{X: 1})
	assert.False(t, s.IsEmpty())
}

func TestSealedStrokeIgnoresExtend(t *testing.T) {
	s := beginStroke(Point{}, BrushSettings{Thickness: 1})
	s.extend(Point{X: 5})
	s.seal()
	s.extend(Point{X: 10})

	assert.True(t, s.Sealed())
	assert.Len(t, s.Points, 2)
}

func TestStrokeCloneIsIndependent(t *testing.T) {
	s := beginStroke(Point{}, BrushSettings{Thickness: 1})
	s.extend(Point{X: 1})

	c := s.clone()
	s.extend(Point{X: 2})
	s.Points[0] = Point{X: 99}

	require.Len(t, c.Points, 2)
	assert.Equal(t, Point{}, c.Points[0])
}

func TestStrokeBounds(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		width  float64
		want   image.Rectangle
	}{
		{"no points", nil, 4, image.Rectangle{}},
		{"single point", []Point{{X: 10, Y: 10}}, 4, image.Rect(8, 8, 12, 12)},
		{"segment", []Point{{X: 0, Y: 0}, {X: 100, Y: 0}}, 20, image.Rect(-10, -10, 110, 10)},
		{"fractional", []Point{{X: 1.5, Y: 2.5}, {X: 3.2, Y: 4.7}}, 1, image.Rect(1, 2, 4, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Stroke{Points: tt.points, Thickness: tt.width}
			assert.Equal(t, tt.want, s.Bounds())
		})
	}
}
