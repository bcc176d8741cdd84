package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the default configuration filename.
	DefaultConfigFile = "roxl.yaml"
)

// Load reads and parses a configuration file from the given path.
// If path is empty, it looks for roxl.yaml in the current directory.
func Load(path string) (*Config, error) {
	path, err := absPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := LoadFromBytes(data)
	if err != nil {
		return nil, err
	}

	cfg.resolvePaths(filepath.Dir(path))
	return cfg, nil
}

// LoadOrDefault behaves like Load, except that a missing default config
// file yields DefaultConfig. An explicitly named file must exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if path == "" && errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return nil, err
}

// LoadFromBytes parses configuration from YAML bytes.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func absPath(path string) (string, error) {
	if path == "" {
		path = DefaultConfigFile
	}
	if filepath.IsAbs(path) {
		return path, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(cwd, path), nil
}

// resolvePaths converts relative paths to absolute paths based on config directory.
func (c *Config) resolvePaths(configDir string) {
	if c.Logging.Path != "" && !filepath.IsAbs(c.Logging.Path) {
		c.Logging.Path = filepath.Join(configDir, c.Logging.Path)
	}
}
