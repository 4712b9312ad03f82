package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the renderer cannot work with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Scene.Instances < 0 {
		return fmt.Errorf("invalid instance count %d", c.Scene.Instances)
	}
	if c.Scene.CameraStep <= 0 {
		return fmt.Errorf("camera step must be positive, got %g", c.Scene.CameraStep)
	}
	if c.Scene.Near <= 0 || c.Scene.Far <= c.Scene.Near {
		return fmt.Errorf("invalid clip planes near=%g far=%g", c.Scene.Near, c.Scene.Far)
	}
	if c.Scene.FOV <= 0 || c.Scene.FOV >= 180 {
		return fmt.Errorf("fov out of range: %g", c.Scene.FOV)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "MeshDemo")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "MeshDemo")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "meshdemo")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "meshdemo")
	}
}

// loadFromFile merges a YAML file over the existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
