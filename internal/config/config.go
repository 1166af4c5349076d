// Package config provides the runtime settings of the game and editor.
// Settings are loaded from a YAML file so a build can be tuned without
// recompiling.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings
type Config struct {
	// Window is the OS window the game is shown in
	Window WindowConfig `yaml:"window"`

	// Display is the logical surface the game renders to before scaling
	Display DisplayConfig `yaml:"display"`

	// DataDir is the root holding images/, maps/ and sfx/
	DataDir string `yaml:"data_dir"`

	// CameraLag divides the distance the camera moves towards the player
	// each tick. 1 snaps the camera onto the player.
	CameraLag float64 `yaml:"camera_lag"`

	// Clouds is the number of parallax clouds
	Clouds int `yaml:"clouds"`

	Audio AudioConfig `yaml:"audio"`
}

// WindowConfig sets up the OS window
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// DisplayConfig is the size of the logical screen in pixels
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AudioConfig defines music and sound effect playback
type AudioConfig struct {
	Enabled     bool               `yaml:"enabled"`
	Music       string             `yaml:"music"`        // Path relative to DataDir
	MusicVolume float64            `yaml:"music_volume"` // 0..1
	Ambience    string             `yaml:"ambience"`     // Looped effect name, empty for none
	SFX         map[string]float64 `yaml:"sfx"`          // Effect name -> volume 0..1
}

// DefaultConfig returns the settings the game ships with
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  640,
			Height: 480,
			Title:  "ninja game",
		},
		Display: DisplayConfig{
			Width:  320,
			Height: 240,
		},
		DataDir:   "data",
		CameraLag: 1,
		Clouds:    16,
		Audio: AudioConfig{
			Enabled:     true,
			Music:       "music.wav",
			MusicVolume: 0.5,
			Ambience:    "ambience",
			SFX: map[string]float64{
				"jump":     0.7,
				"dash":     0.3,
				"hit":      0.8,
				"shoot":    0.4,
				"ambience": 0.2,
			},
		},
	}
}

// LoadConfig loads the config from a YAML file. A missing file yields the
// defaults; keys present in the file override them.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// A sfx table in the file replaces the default one instead of merging
	// into it, so sounds can be dropped.
	var sfx struct {
		Audio struct {
			SFX map[string]float64 `yaml:"sfx"`
		} `yaml:"audio"`
	}
	if err := yaml.Unmarshal(data, &sfx); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if sfx.Audio.SFX != nil {
		config.Audio.SFX = sfx.Audio.SFX
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.CameraLag < 1 {
		return fmt.Errorf("camera_lag must be at least 1, got %v", c.CameraLag)
	}
	if c.Clouds < 0 {
		return fmt.Errorf("clouds must not be negative, got %d", c.Clouds)
	}
	return nil
}

// SoundVolume returns the configured volume for a sound effect, or 1 if
// the effect has no entry.
func (c *Config) SoundVolume(name string) float64 {
	if v, ok := c.Audio.SFX[name]; ok {
		return v
	}
	return 1
}
