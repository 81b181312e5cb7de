package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultPath is the viewer config file, relative to the process working directory.
const DefaultPath = "config/treeviewer.json"

// ViewerPrefs holds viewer preferences (debug overlays, grid, animation speed, window). Persisted across runs.
type ViewerPrefs struct {
	ShowFPS      bool `json:"show_fps"`
	ShowMemAlloc bool `json:"show_memalloc"`
	ShowBBoxes   bool `json:"show_bboxes"`
	GridVisible  bool `json:"grid_visible"`
	StartPaused  bool `json:"start_paused"`

	// FPS is the fixed animation/render rate.
	FPS int `json:"fps"`
	// DegreesPerSecond is the spin speed of the animated nodes.
	DegreesPerSecond float64 `json:"degrees_per_second"`

	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`

	// PrefabsPath is an optional YAML file of primitive definitions; empty uses the built-in scene.
	PrefabsPath string `json:"prefabs_path,omitempty"`
	LogPath     string `json:"log_path"`
}

// Default returns default preferences: 60 fps, one turn per 10 seconds, paused, grid on.
func Default() ViewerPrefs {
	return ViewerPrefs{
		GridVisible:      true,
		ShowBBoxes:       true,
		StartPaused:      true,
		FPS:              60,
		DegreesPerSecond: 36,
		WindowWidth:      1280,
		WindowHeight:     720,
		LogPath:          "logs/treeviewer.txt",
	}
}

// Load reads preferences from path. If the file is missing or invalid, it returns
// Default() and does not create a file. Zero numeric fields fall back to defaults.
func Load(path string) (ViewerPrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	p.fill()
	return p, nil
}

func (p *ViewerPrefs) fill() {
	d := Default()
	if p.FPS <= 0 {
		p.FPS = d.FPS
	}
	if p.WindowWidth <= 0 {
		p.WindowWidth = d.WindowWidth
	}
	if p.WindowHeight <= 0 {
		p.WindowHeight = d.WindowHeight
	}
	if p.LogPath == "" {
		p.LogPath = d.LogPath
	}
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p ViewerPrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create config dir")
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "write config")
}
