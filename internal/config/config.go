package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS   = 30
	DefaultNodes = 48
	MaxFPS       = 120
	MaxNodes     = 400
)

var (
	// ErrInvalidFPS indicates a frame rate outside 1..MaxFPS.
	ErrInvalidFPS = errors.New("config: fps out of range")

	// ErrInvalidNodes indicates a base node count outside 4..MaxNodes.
	ErrInvalidNodes = errors.New("config: nodes out of range")

	// ErrUnknownPreset indicates a preset name with no entry in Presets.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

type Config struct {
	FPS         int    `yaml:"fps"`
	Seed        int64  `yaml:"seed"`
	Nodes       int    `yaml:"nodes"`
	Mouse       bool   `yaml:"mouse"`
	AltScreen   bool   `yaml:"alt_screen"`
	LogFile     string `yaml:"log_file,omitempty"`
	ContentFile string `yaml:"content_file,omitempty"`
	PaletteFile string `yaml:"palette_file,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS:       DefaultFPS,
		Nodes:     DefaultNodes,
		Mouse:     true,
		AltScreen: true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FPS < 1 || c.FPS > MaxFPS {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, c.FPS)
	}
	if c.Nodes < 4 || c.Nodes > MaxNodes {
		return fmt.Errorf("%w: %d", ErrInvalidNodes, c.Nodes)
	}
	return nil
}

// ApplyPreset overwrites the animation settings with a named preset.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	c.FPS = p.FPS
	c.Nodes = p.Nodes
	return nil
}
