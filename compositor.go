package main

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// composite paints one full frame: background fill, background image, every
// active stroke in drawing order, then the open stroke on top. Nothing is
// baked between frames, so a stroke removed from the history leaves no trace.
func composite(dc *gg.Context, snap Snapshot) {
	dc.SetColor(snap.Background)
	dc.Clear()

	if snap.BackgroundImage != nil {
		dc.DrawImage(snap.BackgroundImage, 0, 0)
	}

	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	for i := range snap.Strokes {
		drawStroke(dc, &snap.Strokes[i])
	}

	if snap.InProgress != nil && !snap.InProgress.IsEmpty() {
		drawStroke(dc, snap.InProgress)
	}
}

func drawStroke(dc *gg.Context, s *Stroke) {
	if s.IsEmpty() {
		return
	}

	dc.SetColor(s.Color)
	dc.SetLineWidth(s.Thickness)
	dc.MoveTo(s.Points[0].X, s.Points[0].Y)
	for _, p := range s.Points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.Stroke()
}

// scaleBackground stretches img over a width x height buffer.
func scaleBackground(img image.Image, width, height int) image.Image {
	if img == nil || width <= 0 || height <= 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}
