// Package config holds the viewer's startup settings. Defaults are compiled
// in; a YAML file and command-line flags may override them.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

// Aspect returns width over height.
func (w Window) Aspect() float32 {
	return float32(w.Width) / float32(w.Height)
}

type Config struct {
	Window     Window `yaml:"window"`
	TextureDir string `yaml:"texture_dir"`
	LogLevel   string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:  "Topiary Garden",
			Width:  1000,
			Height: 800,
			VSync:  true,
		},
		TextureDir: "textures",
		LogLevel:   "info",
	}
}

var ErrInvalid = errors.New("invalid config")

// Load reads path as YAML on top of Default. A missing file is not an error
// and yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("config file not found, using defaults", "path", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps LogLevel onto a slog level.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
}
