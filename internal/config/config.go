package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"rf-heatmap.klederson.com/internal/coverage"
)

const (
	// Terminal heatmap display
	AspectRatio = 0.5 // Terminal char aspect correction (chars are ~2:1 tall)
	RingMarks   = 4   // Number of range guide rings drawn on the map

	// Parameter panel adjustment steps
	MaxRangeStep  = 10.0
	MinRangeStep  = 1.0
	PointsStep    = 20
	PointSizeStep = 0.5

	// App
	AppName    = "RF-HEATMAP"
	AppVersion = "1.0"
)

// maxParamsFileSize caps params files at 1MB as a safety check.
const maxParamsFileSize = 1 * 1024 * 1024

// LoadParams reads sample parameters from a JSON file. Fields omitted from
// the file keep their defaults, so partial configs are safe. The result is
// validated; invalid files are rejected, never corrected.
func LoadParams(path string) (coverage.Params, error) {
	params := coverage.DefaultParams()

	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return params, fmt.Errorf("params file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return params, fmt.Errorf("failed to stat params file: %w", err)
	}
	if info.Size() > maxParamsFileSize {
		return params, fmt.Errorf("params file too large: %d bytes (max %d)", info.Size(), maxParamsFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return params, fmt.Errorf("failed to read params file: %w", err)
	}

	if err := json.Unmarshal(data, &params); err != nil {
		return params, fmt.Errorf("failed to parse params JSON: %w", err)
	}

	if err := params.Validate(); err != nil {
		return params, err
	}
	return params, nil
}
