package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	ExportDirectory string
	Density         float64
	BrushSize       float64
	Color           string
	Background      string
	BackgroundImage string
	Caption         string
	LogFile         string
	Confirmations   bool
}

func defaultConfig() *Config {
	exportDir := filepath.Join(os.TempDir(), "sketchpad")
	if cacheDir, err := os.UserCacheDir(); err == nil {
		exportDir = filepath.Join(cacheDir, "sketchpad")
	}
	return &Config{
		ExportDirectory: exportDir,
		Density:         defaultDensity,
		BrushSize:       defaultBrushSize,
		Color:           defaultColor,
		Background:      defaultBackground,
		Confirmations:   true,
	}
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}
	return loadConfigFrom(filepath.Join(homeDir, ".sketchpadrc"))
}

// loadConfigFrom reads key = value lines. A missing file, unknown keys and
// malformed values leave the defaults in place.
func loadConfigFrom(configPath string) *Config {
	config := defaultConfig()

	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	homeDir, _ := os.UserHomeDir()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "exportdirectory", "export_directory", "exportdir", "savedirectory", "save_directory":
			config.ExportDirectory = expandPath(value, homeDir)
		case "density", "density_scale":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
				config.Density = f
			}
		case "brushsize", "brush_size":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
				config.BrushSize = f
			}
		case "color", "colour":
			if _, err := parseColor(value); err == nil {
				config.Color = value
			}
		case "background", "background_color":
			if _, err := parseColor(value); err == nil {
				config.Background = value
			}
		case "backgroundimage", "background_image":
			config.BackgroundImage = expandPath(value, homeDir)
		case "caption":
			config.Caption = value
		case "logfile", "log_file":
			config.LogFile = expandPath(value, homeDir)
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}
