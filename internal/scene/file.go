package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/geo/r3"
)

// maxSceneFileSize caps scene files at 8MB as a safety check.
const maxSceneFileSize = 8 * 1024 * 1024

// fileObject is the on-disk shape of one scene object.
type fileObject struct {
	ID       string     `json:"id,omitempty"`
	Name     string     `json:"name"`
	Position [3]float64 `json:"position"`
	Visible  *bool      `json:"visible,omitempty"` // nil means visible
}

type fileScene struct {
	Objects []fileObject `json:"objects"`
}

// FileSource reads a scene from a JSON file. The file is parsed once per
// Objects call so an edited scene is picked up on the next coverage run.
type FileSource struct {
	Path string
}

// NewFileSource creates a source for the given scene file path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Objects loads and decodes the scene file.
func (f *FileSource) Objects() ([]Object, error) {
	cleanPath := filepath.Clean(f.Path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("scene file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat scene file: %w", err)
	}
	if info.Size() > maxSceneFileSize {
		return nil, fmt.Errorf("scene file too large: %d bytes (max %d)", info.Size(), maxSceneFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var fs fileScene
	if err := json.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("failed to parse scene JSON: %w", err)
	}

	objects := make([]Object, 0, len(fs.Objects))
	for _, fo := range fs.Objects {
		visible := true
		if fo.Visible != nil {
			visible = *fo.Visible
		}
		id := fo.ID
		if id == "" {
			id = fo.Name
		}
		objects = append(objects, Object{
			ID:       id,
			Name:     fo.Name,
			Position: r3.Vector{X: fo.Position[0], Y: fo.Position[1], Z: fo.Position[2]},
			Visible:  visible,
		})
	}
	return objects, nil
}
