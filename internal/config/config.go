package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const appDir = "contact-manager"

// Config holds the application configuration
type Config struct {
	Seed       SeedConfig       `toml:"seed"`
	Validation ValidationConfig `toml:"validation"`
	Log        LogConfig        `toml:"log"`
}

// SeedConfig controls where the initial contacts come from
type SeedConfig struct {
	// Path to a SQLite seed database; empty starts with no contacts
	Path     string `toml:"path"`
	Fixtures bool   `toml:"fixtures"`
}

// ValidationConfig holds form validation switches
type ValidationConfig struct {
	RequireState bool `toml:"require_state"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// Default returns the default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Log: LogConfig{
			Path:  filepath.Join(homeDir, ".config", appDir, appDir+".log"),
			Level: "info",
		},
	}
}

// Dir returns the directory holding config.toml
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}
	return filepath.Join(homeDir, ".config", appDir), nil
}

// Load loads configuration from the standard location
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(filepath.Join(dir, "config.toml"))
}

// LoadFrom loads configuration from a specific path
func LoadFrom(configPath string) (*Config, error) {
	cfg := Default()

	// No config file, use defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.Seed.Path = ExpandPath(cfg.Seed.Path)
	cfg.Log.Path = ExpandPath(cfg.Log.Path)

	return cfg, nil
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}

// Save saves the configuration to the standard location
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return c.SaveTo(filepath.Join(dir, "config.toml"))
}

// SaveTo saves the configuration to a specific path
func (c *Config) SaveTo(configPath string) error {
	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return nil
}
