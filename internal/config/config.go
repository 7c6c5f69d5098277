// Package config loads the settings shared by the exercise programs.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the programs look for their config, relative to
// the working directory.
const DefaultPath = "config/gloom.yaml"

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type Camera struct {
	Speed     float32    `yaml:"speed"`      // units per second
	TurnSpeed float32    `yaml:"turn_speed"` // radians per second
	Fov       float32    `yaml:"fov"`        // radians
	Near      float32    `yaml:"near"`
	Far       float32    `yaml:"far"`
	Start     [3]float32 `yaml:"start"`
}

type Scene struct {
	// glTF files; empty means the built-in procedural meshes
	TerrainAsset    string `yaml:"terrain_asset"`
	HelicopterAsset string `yaml:"helicopter_asset"`

	TerrainSize       float32 `yaml:"terrain_size"`
	TerrainResolution int     `yaml:"terrain_resolution"`
	TerrainAmplitude  float32 `yaml:"terrain_amplitude"`

	Helicopters int     `yaml:"helicopters"`
	Altitude    float32 `yaml:"altitude"`
	Spacing     float32 `yaml:"spacing"` // seconds between helicopters on the flight path
}

type Debug struct {
	GLErrors   bool `yaml:"gl_errors"`   // check glGetError after every frame
	PrintGraph bool `yaml:"print_graph"` // dump the scene graph once after loading
}

// Config is the whole settings file.
type Config struct {
	Window Window `yaml:"window"`
	Camera Camera `yaml:"camera"`
	Scene  Scene  `yaml:"scene"`
	Debug  Debug  `yaml:"debug"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "Gloom",
			VSync:  true,
		},
		Camera: Camera{
			Speed:     60,
			TurnSpeed: 1,
			Fov:       1,
			Near:      1,
			Far:       2000,
			Start:     [3]float32{0, 40, 120},
		},
		Scene: Scene{
			TerrainSize:       400,
			TerrainResolution: 128,
			TerrainAmplitude:  12,
			Helicopters:       5,
			Altitude:          25,
			Spacing:           0.8,
		},
		Debug: Debug{
			GLErrors: true,
		},
	}
}

// Load reads path on top of Default(). A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "failed to read config %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %q", path)
	}
	return cfg, nil
}

// Validate rejects settings that cannot produce a picture.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.Errorf("window size %dx%d", c.Window.Width, c.Window.Height)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return errors.Errorf("camera clip range [%v, %v]", c.Camera.Near, c.Camera.Far)
	case c.Camera.Fov <= 0 || c.Camera.Fov >= 3.14:
		return errors.Errorf("camera fov %v", c.Camera.Fov)
	case c.Scene.TerrainResolution < 1:
		return errors.Errorf("terrain resolution %d", c.Scene.TerrainResolution)
	case c.Scene.Helicopters < 0:
		return errors.Errorf("helicopter count %d", c.Scene.Helicopters)
	}
	return nil
}

// Aspect returns the window aspect ratio.
func (c Config) Aspect() float32 {
	return float32(c.Window.Width) / float32(c.Window.Height)
}
