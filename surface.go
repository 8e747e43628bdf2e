package main

import (
	"image"

	"github.com/fogleman/gg"
)

// Surface is the persistent pixel buffer frames are composited into. It is
// sized to the viewport and only reallocated when that size changes.
type Surface struct {
	img *image.RGBA
	dc  *gg.Context
}

func newSurface(width, height int) *Surface {
	s := &Surface{}
	s.allocate(width, height)
	return s
}

func (s *Surface) allocate(width, height int) {
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.dc = gg.NewContextForRGBA(s.img)
}

// resize reports whether a new buffer was allocated.
func (s *Surface) resize(width, height int) bool {
	b := s.img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return false
	}
	s.allocate(width, height)
	return true
}

func (s *Surface) Width() int {
	return s.img.Bounds().Dx()
}

func (s *Surface) Height() int {
	return s.img.Bounds().Dy()
}

func (s *Surface) Image() *image.RGBA {
	return s.img
}

func (s *Surface) context() *gg.Context {
	return s.dc
}
