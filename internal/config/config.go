package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the desktop build looks for its config, relative to
// the working directory.
const DefaultPath = "robot.yaml"

// Config holds window, timing, camera, and audio settings.
type Config struct {
	Window   Window `yaml:"window"`
	TickRate int    `yaml:"tick_rate"` // core ticks per second
	Camera   Camera `yaml:"camera"`
	Audio    Audio  `yaml:"audio"`

	// Initial renderer toggles.
	ShowAxes bool `yaml:"show_axes"`
	ShowPath bool `yaml:"show_path"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Camera holds the initial orbit and the projection.
type Camera struct {
	Radius float64 `yaml:"radius"`
	Theta  float64 `yaml:"theta"`
	Phi    float64 `yaml:"phi"`
	FOV    float64 `yaml:"fov"` // vertical, degrees
	Near   float64 `yaml:"near"`
	Far    float64 `yaml:"far"`
}

type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "POLISH ROBOT",
		},
		TickRate: 60,
		Camera: Camera{
			Radius: 7.0,
			Theta:  2.80,
			Phi:    2.0,
			FOV:    65.0,
			Near:   0.1,
			Far:    100.0,
		},
		Audio: Audio{
			Enabled: true,
			Volume:  0.3,
		},
		ShowAxes: true,
	}
}

// Load reads a YAML config file over Default. A missing file is not an
// error; fields absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags carries command-line overrides. Zero values leave the config as is.
type Flags struct {
	Width    int
	Height   int
	TickRate int
	Mute     bool
	Axes     *bool
	Path     *bool
}

// Resolve applies flag overrides.
func (c *Config) Resolve(f Flags) {
	if f.Width > 0 {
		c.Window.Width = f.Width
	}
	if f.Height > 0 {
		c.Window.Height = f.Height
	}
	if f.TickRate > 0 {
		c.TickRate = f.TickRate
	}
	if f.Mute {
		c.Audio.Enabled = false
	}
	if f.Axes != nil {
		c.ShowAxes = *f.Axes
	}
	if f.Path != nil {
		c.ShowPath = *f.Path
	}
}

// Validate rejects settings the shell cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.TickRate <= 0:
		return fmt.Errorf("config: tick_rate %d must be positive", c.TickRate)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("config: camera fov %v must be in (0, 180)", c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("config: camera near %v / far %v invalid", c.Camera.Near, c.Camera.Far)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("config: audio volume %v must be in [0, 1]", c.Audio.Volume)
	}
	return nil
}
