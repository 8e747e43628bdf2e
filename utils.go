package main

import (
	"github.com/atotto/clipboard"
)

// canvasRows is the number of terminal rows left for the drawing once the
// status line is reserved.
func canvasRows(height int) int {
	rows := height - 1
	if rows < 0 {
		return 0
	}
	return rows
}

// cellToPoint maps a terminal cell to the surface pixel at its center.
func cellToPoint(x, y int) Point {
	return Point{
		X: float64(x*cellWidth) + cellWidth/2,
		Y: float64(y*cellHeight) + cellHeight/2,
	}
}

func nextBrushSize(current float64) float64 {
	for _, size := range brushSizes {
		if size > current {
			return size
		}
	}
	return brushSizes[0]
}

func clampBrushSize(size float64) float64 {
	if size < minBrushSize {
		return minBrushSize
	}
	if size > maxBrushSize {
		return maxBrushSize
	}
	return size
}

func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}
