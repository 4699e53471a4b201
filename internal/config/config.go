package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNoHomeDir is returned when the user's home directory cannot be determined.
var ErrNoHomeDir = errors.New("home directory not available")

type Config struct {
	// Target is the file the check command verifies by default
	Target string `yaml:"target"`
	// CreatePath is the file the create command creates by default
	CreatePath    string `yaml:"create_path"`
	CreateParents bool   `yaml:"create_parents"`
	// ExitOnMissing makes a missing target fatal to the process
	ExitOnMissing bool     `yaml:"exit_on_missing"`
	Watch         []string `yaml:"watch"`
	Log           struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func DefaultConfig() *Config {
	cfg := &Config{
		Target:        "testing.csv",
		CreatePath:    filepath.Join("files", "first.txt"),
		CreateParents: true,
		ExitOnMissing: true,
		Watch:         []string{},
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	return cfg
}

func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoHomeDir, err)
	}
	return filepath.Join(home, ".filecheck", "config.yaml"), nil
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Paths returns the target, the create path and every watched path, without duplicates.
func (c *Config) Paths() []string {
	seen := make(map[string]bool)
	var paths []string
	for _, p := range append([]string{c.Target, c.CreatePath}, c.Watch...) {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}
	return paths
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding %s: %w: %v", path, ErrNoHomeDir, err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}
