package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	config := loadConfig()
	if len(os.Args) > 1 {
		homeDir, _ := os.UserHomeDir()
		config.BackgroundImage = expandPath(os.Args[1], homeDir)
	}

	if config.LogFile != "" {
		logFile, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer logFile.Close()
		setLogger(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	p := tea.NewProgram(
		initialModel(config),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type exportDoneMsg ExportResult

func initialModel(config *Config) model {
	m := model{
		surface:  NewController(config.Density),
		exporter: newExporter(config.ExportDirectory, config.Caption),
		preview:  &preview{dirty: true},
		config:   config,
	}
	m.surface.OnInvalidate = m.preview.invalidate

	if err := m.surface.SetBrushThickness(config.BrushSize); err != nil {
		m.errorMessage = err.Error()
	}
	if err := m.surface.SetColor(config.Color); err != nil {
		m.errorMessage = err.Error()
	}
	if bg, err := parseColor(config.Background); err == nil {
		m.surface.SetBackgroundColor(bg)
	}
	if config.BackgroundImage != "" {
		img, err := loadBackground(config.BackgroundImage)
		if err != nil {
			m.errorMessage = err.Error()
		} else {
			m.surface.SetBackgroundImage(img)
		}
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.surface.Resize(m.width*cellWidth, canvasRows(m.height)*cellHeight)
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg.String())
		return m, cmd

	case exportDoneMsg:
		m.exporting = false
		if msg.Err != nil {
			m.errorMessage = fmt.Sprintf("Error exporting PNG: %s", msg.Err.Error())
			m.successMessage = ""
			return m, nil
		}
		m.lastExport = msg.Path
		absPath, err := filepath.Abs(msg.Path)
		if err != nil {
			absPath = msg.Path
		}
		m.successMessage = fmt.Sprintf("Exported to %s", absPath)
		m.errorMessage = ""
		return m, nil
	}
	return m, nil
}

// startExport snapshots the drawing here, on the event loop, and waits for
// the encoded file off it.
func (m *model) startExport() tea.Cmd {
	if m.exporting {
		return nil
	}
	m.exporting = true
	m.errorMessage = ""
	m.successMessage = ""

	results := m.exporter.CaptureAndEncode(m.surface.Snapshot())
	return func() tea.Msg {
		return exportDoneMsg(<-results)
	}
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	canvas := m.preview.render(m.surface, m.width, canvasRows(m.height))
	if canvas == "" {
		return m.statusLine()
	}
	return canvas + "\n" + m.statusLine()
}
