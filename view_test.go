package main

import (
	"image"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHalfBlocksDimensions(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10*cellWidth, 4*cellHeight))
	out := renderHalfBlocks(img, white, 10, 4)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 10, lipgloss.Width(line))
	}
}

func TestRenderHalfBlocksEmpty(t *testing.T) {
	assert.Empty(t, renderHalfBlocks(nil, white, 10, 4))
	assert.Empty(t, renderHalfBlocks(image.NewRGBA(image.Rect(0, 0, 8, 8)), white, 0, 4))
}

func TestSamplePixelsKeepsThinStrokes(t *testing.T) {
	c := NewController(1)
	c.Resize(cellWidth, cellHeight)
	c.SetColorValue(red)
	require.NoError(t, c.SetBrushThickness(1))
	drawLine(c, Point{X: 0, Y: 3.5}, Point{X: cellWidth, Y: 3.5})
	img := c.Render()

	top := samplePixels(img, image.Rect(0, 0, cellWidth, cellHeight/2), white)
	bottom := samplePixels(img, image.Rect(0, cellHeight/2, cellWidth, cellHeight), white)

	assert.Equal(t, red, top)
	assert.Equal(t, white, bottom)
}

func TestSamplePixelsOutsideImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	assert.Equal(t, blue, samplePixels(img, image.Rect(10, 10, 20, 20), blue))
}

func TestPreviewCachesUntilInvalidated(t *testing.T) {
	c := NewController(1)
	c.Resize(4*cellWidth, 2*cellHeight)
	p := &preview{dirty: true}
	c.OnInvalidate = p.invalidate

	first := p.render(c, 4, 2)
	assert.False(t, p.dirty)
	assert.Equal(t, first, p.render(c, 4, 2))

	c.PointerDown(Point{X: 1, Y: 1})
	assert.True(t, p.dirty)
	p.render(c, 4, 2)
	assert.False(t, p.dirty)
}
