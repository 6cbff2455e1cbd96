package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path is the viewer preferences file, relative to the working directory.
const Path = "config/viewer.yaml"

// Prefs holds viewer preferences persisted across runs. This is
// configuration, not viewer state: the loaded structure and active style are
// never saved.
type Prefs struct {
	GridVisible  bool   `yaml:"grid_visible"`
	ShowFPS      bool   `yaml:"show_fps"`
	ShowMemAlloc bool   `yaml:"show_memalloc"`
	// RelayURL, when set, connects the viewer to a load-event relay
	// (e.g. ws://localhost:8080/ws).
	RelayURL string `yaml:"relay_url,omitempty"`
	// StartupID is an optional structure id fetched on launch.
	StartupID string `yaml:"startup_id,omitempty"`
}

// Default returns default preferences (grid on, overlays off, no relay).
func Default() Prefs {
	return Prefs{GridVisible: true}
}

// Load reads preferences from Path. A missing file yields Default() and is
// not an error; no file is created. A file that exists but fails to parse
// also yields Default(), with the parse error returned so the caller can
// report it.
func Load() (Prefs, error) {
	data, err := os.ReadFile(Path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("config %s: %w", Path, err)
	}
	return p, nil
}

// Save writes preferences to Path, creating the config directory if needed.
func Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(Path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(Path, data, 0644)
}
