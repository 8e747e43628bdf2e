package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// handleMouse turns terminal mouse events into pointer events. Depending on
// the terminal a drag arrives either as motion or as repeated presses, so a
// press while drawing extends the stroke.
func (m *model) handleMouse(msg tea.MouseMsg) {
	p := cellToPoint(msg.X, msg.Y)
	inCanvas := msg.Y < canvasRows(m.height)
	drawing := m.surface.Mode() == ModeDrawing

	switch msg.Type {
	case tea.MouseLeft:
		if drawing {
			m.surface.PointerMove(p)
		} else if inCanvas {
			m.successMessage = ""
			m.surface.PointerDown(p)
		}
	case tea.MouseMotion:
		if drawing {
			m.surface.PointerMove(p)
		}
	case tea.MouseRelease:
		if drawing {
			m.surface.PointerUp()
		}
	}
}

func (m *model) handleKey(key string) tea.Cmd {
	if key == "ctrl+c" {
		return tea.Quit
	}

	if m.confirmAction == ConfirmQuit {
		m.confirmAction = ConfirmNone
		if key == "y" || key == "Y" {
			return tea.Quit
		}
		return nil
	}

	if m.help {
		switch key {
		case "esc", "q", "?":
			m.help = false
		}
		return nil
	}

	m.errorMessage = ""

	switch key {
	case "q":
		if active, _ := m.surface.Counts(); m.config.Confirmations && active > 0 {
			m.confirmAction = ConfirmQuit
			return nil
		}
		return tea.Quit
	case "?":
		m.help = true
	case "esc":
		m.surface.PointerCancel()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		if idx < len(palette) {
			m.setColor(palette[idx])
		}
	case "p":
		m.setBrushSize(pencilBrushSize)
	case "b":
		m.setBrushSize(nextBrushSize(m.surface.BrushSize()))
	case "+", "=":
		m.setBrushSize(clampBrushSize(m.surface.BrushSize() + 2))
	case "-", "_":
		m.setBrushSize(clampBrushSize(m.surface.BrushSize() - 2))
	case "u":
		m.surface.Undo()
	case "r", "ctrl+r":
		m.surface.Redo()
	case "s":
		return m.startExport()
	case "y":
		if m.lastExport == "" {
			m.errorMessage = "Nothing exported yet"
			return nil
		}
		if err := copyToClipboard(m.lastExport); err != nil {
			m.errorMessage = fmt.Sprintf("Error copying path: %s", err.Error())
			return nil
		}
		m.successMessage = "Copied " + m.lastExport
	case "x":
		if m.surface.HasBackgroundImage() {
			m.surface.ClearBackgroundImage()
		}
	}
	return nil
}

func (m *model) setColor(value string) {
	if err := m.surface.SetColor(value); err != nil {
		m.errorMessage = err.Error()
	}
}

func (m *model) setBrushSize(size float64) {
	if err := m.surface.SetBrushThickness(size); err != nil {
		m.errorMessage = err.Error()
	}
}
