package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the host-tunable settings for a visualization surface. All
// fields have working defaults; a config file overrides only what it names.
type Config struct {
	// Title is shown in the window title bar and rendered as the scene title.
	Title string `yaml:"title"`

	// Width and Height are the initial window size in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Background is the clear colour, RGBA in [0, 1].
	Background [4]float32 `yaml:"background"`

	// FOV is the perspective field of view in degrees.
	FOV float32 `yaml:"fov"`

	// Near and Far are the clip distances.
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`

	// SceneTranslation is the initial scene offset from the viewer.
	SceneTranslation [3]float32 `yaml:"scene_translation"`

	// LightingEffects enables the shaded look instead of flat colours.
	LightingEffects bool `yaml:"lighting_effects"`

	// StateFile is where the view state is saved and loaded.
	StateFile string `yaml:"state_file"`

	// UserInfo enables chatty feedback on state-changing commands.
	UserInfo bool `yaml:"user_info"`
}

// Default returns the stock configuration: a 640x480 window, off-white
// background, 30 degree field of view and the scene pushed back to z = -5.
//
// Returns:
//   - Config: the defaults
func Default() Config {
	return Config{
		Title:            "visage",
		Width:            640,
		Height:           480,
		Background:       [4]float32{1, 1, 1, 0.5},
		FOV:              30,
		Near:             0.001,
		Far:              300,
		SceneTranslation: [3]float32{0, 0, -5},
		StateFile:        "/tmp/visage-view.json",
		UserInfo:         true,
	}
}

// Load reads a YAML config file over the defaults. A missing file is not an
// error: the defaults apply unchanged. A file that exists but does not parse
// is an error, since silently ignoring a present config would mask typos.
//
// Parameters:
//   - path: the config file path
//
// Returns:
//   - Config: the effective configuration
//   - error: read or parse failure for an existing file
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
