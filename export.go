package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var ErrEmptyViewport = errors.New("nothing to export: viewport has no size")

// Exporter renders snapshots to PNG files under Dir.
type Exporter struct {
	Dir     string
	Caption string
	Now     func() time.Time
}

func newExporter(dir, caption string) *Exporter {
	return &Exporter{
		Dir:     dir,
		Caption: caption,
		Now:     time.Now,
	}
}

// CaptureAndEncode renders snap and writes it on a separate goroutine. The
// returned channel delivers exactly one result and is then closed. The
// caller must take the snapshot on its own event loop before calling.
func (e *Exporter) CaptureAndEncode(snap Snapshot) <-chan ExportResult {
	results := make(chan ExportResult, 1)
	go func() {
		defer close(results)
		path, err := e.export(snap)
		if err != nil {
			logger().Error("export failed", "dir", e.Dir, "err", err)
		} else {
			logger().Info("exported drawing", "path", path, "strokes", len(snap.Strokes))
		}
		results <- ExportResult{Path: path, Err: err}
	}()
	return results
}

func (e *Exporter) export(snap Snapshot) (path string, err error) {
	defer func() {
		if r := recover(); r != nil {
			path = ""
			err = fmt.Errorf("export aborted: %v", r)
		}
	}()

	if snap.Width <= 0 || snap.Height <= 0 {
		return "", ErrEmptyViewport
	}

	dc := gg.NewContext(snap.Width, snap.Height)
	composite(dc, snap)
	if e.Caption != "" {
		if err := drawCaption(dc, e.Caption); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	claimed, err := claimExportName(e.Dir, now())
	if err != nil {
		return "", err
	}
	written := false
	defer func() {
		if !written {
			os.Remove(claimed)
		}
	}()

	if err := writePNG(dc, e.Dir, claimed); err != nil {
		return "", err
	}
	written = true
	return claimed, nil
}

// encodePNG is replaced in tests to simulate a failing encoder.
var encodePNG = func(dc *gg.Context, w io.Writer) error {
	return dc.EncodePNG(w)
}

// writePNG encodes into a temporary file in dir and renames it over path, so
// path never holds a partial image.
func writePNG(dc *gg.Context, dir, path string) error {
	tmp, err := os.CreateTemp(dir, "."+exportPrefix+"*"+exportExt)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := encodePNG(dc, tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move png into place: %w", err)
	}
	return nil
}

func exportFileName(t time.Time, attempt int) string {
	name := exportPrefix + strconv.FormatInt(t.Unix(), 10)
	if attempt > 0 {
		name += "_" + strconv.Itoa(attempt)
	}
	return name + exportExt
}

// claimExportName reserves the first free name for t in dir by creating it
// empty. The caller fills it by rename.
func claimExportName(dir string, t time.Time) (string, error) {
	for attempt := 0; attempt < 100; attempt++ {
		path := filepath.Join(dir, exportFileName(t, attempt))
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			file.Close()
			return path, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("failed to create export file: %w", err)
		}
	}
	return "", fmt.Errorf("failed to create export file: too many exports at %d", t.Unix())
}

var captionFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(gomono.TTF)
})

// drawCaption labels the bottom-left corner of the image.
func drawCaption(dc *gg.Context, caption string) error {
	ttfFont, err := captionFont()
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	dc.SetFontFace(face)

	const pad = 6.0
	w, h := dc.MeasureString(caption)
	bottom := float64(dc.Height())

	dc.SetRGBA(1, 1, 1, 0.8)
	dc.DrawRectangle(0, bottom-h-2*pad, w+2*pad, h+2*pad)
	dc.Fill()

	dc.SetRGB(0.2, 0.2, 0.2)
	dc.DrawString(caption, pad, bottom-pad)
	return nil
}
