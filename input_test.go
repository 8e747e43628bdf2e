package main

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	config := defaultConfig()
	config.ExportDirectory = t.TempDir()
	m := initialModel(config)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 11})
	return updated.(model)
}

func press(m *model, x, y int) {
	m.handleMouse(tea.MouseMsg{X: x, Y: y, Type: tea.MouseLeft})
}

func drag(m *model, x, y int) {
	m.handleMouse(tea.MouseMsg{X: x, Y: y, Type: tea.MouseMotion})
}

func release(m *model, x, y int) {
	m.handleMouse(tea.MouseMsg{X: x, Y: y, Type: tea.MouseRelease})
}

func TestInitialModel(t *testing.T) {
	m := newTestModel(t)

	w, h := m.surface.Size()
	assert.Equal(t, 20*cellWidth, w)
	assert.Equal(t, 10*cellHeight, h)
	assert.Equal(t, defaultBrushSize, m.surface.BrushSize())
	assert.Empty(t, m.errorMessage)
}

func TestInitialModelBadBackgroundImage(t *testing.T) {
	config := defaultConfig()
	config.BackgroundImage = "/definitely/missing.png"
	m := initialModel(config)

	assert.NotEmpty(t, m.errorMessage)
	assert.False(t, m.surface.HasBackgroundImage())
}

func TestMouseDrawsStroke(t *testing.T) {
	m := newTestModel(t)

	press(&m, 1, 1)
	drag(&m, 5, 1)
	press(&m, 8, 2)
	release(&m, 8, 2)

	require.Len(t, m.surface.Active(), 1)
	assert.Equal(t, []Point{cellToPoint(1, 1), cellToPoint(5, 1), cellToPoint(8, 2)}, m.surface.Active()[0].Points)
	assert.Equal(t, ModeIdle, m.surface.Mode())
}

func TestMouseIgnoresStatusLine(t *testing.T) {
	m := newTestModel(t)
	press(&m, 3, 10)
	assert.Equal(t, ModeIdle, m.surface.Mode())

	drag(&m, 4, 4)
	release(&m, 4, 4)
	assert.Empty(t, m.surface.Active())
}

func TestKeysBrushAndHistory(t *testing.T) {
	m := newTestModel(t)

	m.handleKey("2")
	assert.Equal(t, "#FF0000", hexString(m.surface.Brush().Color))

	m.handleKey("p")
	assert.Equal(t, pencilBrushSize, m.surface.BrushSize())
	m.handleKey("b")
	assert.Equal(t, 10.0, m.surface.BrushSize())
	m.handleKey("b")
	m.handleKey("b")
	assert.Equal(t, 30.0, m.surface.BrushSize())
	m.handleKey("b")
	assert.Equal(t, 10.0, m.surface.BrushSize())
	m.handleKey("+")
	assert.Equal(t, 12.0, m.surface.BrushSize())
	m.handleKey("-")
	m.handleKey("-")
	assert.Equal(t, 8.0, m.surface.BrushSize())

	press(&m, 1, 1)
	drag(&m, 6, 1)
	release(&m, 6, 1)
	require.Len(t, m.surface.Active(), 1)

	m.handleKey("u")
	assert.Empty(t, m.surface.Active())
	m.handleKey("r")
	assert.Len(t, m.surface.Active(), 1)
}

func TestEscapeCancelsStroke(t *testing.T) {
	m := newTestModel(t)
	press(&m, 1, 1)
	drag(&m, 3, 3)
	m.handleKey("esc")
	release(&m, 3, 3)

	assert.Empty(t, m.surface.Active())
	assert.Equal(t, ModeIdle, m.surface.Mode())
}

func TestQuitAsksWhenThereIsADrawing(t *testing.T) {
	m := newTestModel(t)
	assert.NotNil(t, m.handleKey("q"), "empty drawing quits straight away")

	press(&m, 1, 1)
	drag(&m, 2, 1)
	release(&m, 2, 1)

	assert.Nil(t, m.handleKey("q"))
	assert.Equal(t, ConfirmQuit, m.confirmAction)
	assert.Nil(t, m.handleKey("n"))
	assert.Equal(t, ConfirmNone, m.confirmAction)

	m.handleKey("q")
	assert.NotNil(t, m.handleKey("y"))
}

func TestExportKey(t *testing.T) {
	m := newTestModel(t)
	press(&m, 1, 1)
	drag(&m, 6, 3)
	release(&m, 6, 3)

	cmd := m.handleKey("s")
	require.NotNil(t, cmd)
	assert.True(t, m.exporting)
	assert.Nil(t, m.handleKey("s"), "only one export at a time")

	updated, _ := m.Update(cmd())
	m = updated.(model)
	assert.False(t, m.exporting)
	assert.Empty(t, m.errorMessage)
	assert.FileExists(t, m.lastExport)
	assert.Contains(t, m.successMessage, m.lastExport)
}

func TestExportKeyCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "later", "exports")
	config := defaultConfig()
	config.ExportDirectory = dir
	m := initialModel(config)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 11})
	m = updated.(model)
	assert.Equal(t, dir, m.exporter.Dir)

	cmd := m.handleKey("s")
	require.NotNil(t, cmd)

	updated, _ = m.Update(cmd())
	m = updated.(model)
	require.Empty(t, m.errorMessage)
	assert.FileExists(t, m.lastExport)
	assert.Equal(t, dir, filepath.Dir(m.lastExport))
}

func TestCopyWithoutExport(t *testing.T) {
	m := newTestModel(t)
	m.handleKey("y")
	assert.Equal(t, "Nothing exported yet", m.errorMessage)
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	m.handleKey("?")
	assert.True(t, m.help)
	assert.Contains(t, m.View(), "Sketchpad Help")
	m.handleKey("?")
	assert.False(t, m.help)
}
