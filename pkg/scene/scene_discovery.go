package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "config"
	FilePath    string `json:"filePath"`    // Path to JSON config (config type only)
}

// ListConfigScenes scans dir for JSON scene configs. A missing directory yields
// an empty list.
func ListConfigScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, path := range files {
		scenes = append(scenes, SceneInfo{
			ID:       strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			Type:     "config",
			FilePath: path,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes, nil
}

// ListScenes returns the built-in presets followed by the configs found in dir
func ListScenes(dir string) ([]SceneInfo, error) {
	var scenes []SceneInfo
	for _, p := range Presets() {
		scenes = append(scenes, SceneInfo{ID: p.Name, Description: p.Description, Type: "builtin"})
	}
	configs, err := ListConfigScenes(dir)
	if err != nil {
		return nil, err
	}
	return append(scenes, configs...), nil
}
