package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Render RenderConfig `yaml:"render"`
	Scene  SceneConfig  `yaml:"scene"`
	Output OutputConfig `yaml:"output"`
}

// RenderConfig contains sampling and parallelism settings
type RenderConfig struct {
	Width           int   `yaml:"width"`
	Height          int   `yaml:"height"`
	SamplesPerPixel int   `yaml:"samples_per_pixel"`
	MaxDepth        int   `yaml:"max_depth"`
	Workers         int   `yaml:"workers"` // 0 means one per CPU
	Seed            int64 `yaml:"seed"`
}

// SceneConfig selects and parameterizes the scene
type SceneConfig struct {
	Name         string `yaml:"name"`
	EarthTexture string `yaml:"earth_texture"` // Optional override for the earth scene
}

// OutputConfig controls where the render lands
type OutputConfig struct {
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:           400,
			Height:          225,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			Workers:         0,
			Seed:            42,
		},
		Scene: SceneConfig{
			Name: "bouncing-spheres",
		},
		Output: OutputConfig{
			Path: "render.png",
		},
	}
}

// Load reads a YAML config file on top of the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the renderer cannot work with
func (c *Config) Validate() error {
	if c.Render.Width < 2 || c.Render.Height < 2 {
		return fmt.Errorf("image dimensions must be at least 2x2, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.SamplesPerPixel < 1 {
		return fmt.Errorf("samples_per_pixel must be positive, got %d", c.Render.SamplesPerPixel)
	}
	if c.Render.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be positive, got %d", c.Render.MaxDepth)
	}
	if c.Scene.Name == "" {
		return fmt.Errorf("scene name must not be empty")
	}
	return nil
}

// AspectRatio returns the width/height ratio of the configured image
func (c *Config) AspectRatio() float64 {
	return float64(c.Render.Width) / float64(c.Render.Height)
}
