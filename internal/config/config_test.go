package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.Target != "testing.csv" {
		t.Errorf("Target = %q, expected %q", cfg.Target, "testing.csv")
	}
	if cfg.CreatePath != filepath.Join("files", "first.txt") {
		t.Errorf("CreatePath = %q, expected %q", cfg.CreatePath, filepath.Join("files", "first.txt"))
	}
	if !cfg.CreateParents {
		t.Error("CreateParents should default to true")
	}
	if !cfg.ExitOnMissing {
		t.Error("ExitOnMissing should default to true")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v, expected info/text", cfg.Log)
	}
}

func TestLoadMissingConfig(t *testing.T) {
	// Create a temp dir to use as home (so we can control the config path)
	tempDir, err := os.MkdirTemp("", "filecheck-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	// Save original HOME and restore after
	origHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", origHome)

	// Load config - should return defaults when file missing
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed for missing config: %v", err)
	}

	if cfg.Target != "testing.csv" {
		t.Errorf("Expected default target, got %q", cfg.Target)
	}
}

func TestLoadValidConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	configDir := filepath.Join(tempDir, ".filecheck")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `
target: /data/input.csv
create_path: /data/out/first.txt
create_parents: false
exit_on_missing: false
watch:
  - /etc/hosts
  - /data/other.csv
log:
  level: debug
  format: json
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Target != "/data/input.csv" {
		t.Errorf("Target = %q, expected %q", cfg.Target, "/data/input.csv")
	}
	if cfg.CreatePath != "/data/out/first.txt" {
		t.Errorf("CreatePath = %q, expected %q", cfg.CreatePath, "/data/out/first.txt")
	}
	if cfg.CreateParents {
		t.Error("CreateParents should be false")
	}
	if cfg.ExitOnMissing {
		t.Error("ExitOnMissing should be false")
	}
	if len(cfg.Watch) != 2 {
		t.Errorf("Watch = %v, expected 2 entries", cfg.Watch)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, expected debug/json", cfg.Log)
	}
}

func TestLoadPartialConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	configDir := filepath.Join(tempDir, ".filecheck")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("target: other.csv\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Target != "other.csv" {
		t.Errorf("Target = %q, expected %q", cfg.Target, "other.csv")
	}
	// Unset fields keep their defaults
	if !cfg.ExitOnMissing {
		t.Error("ExitOnMissing should keep its default")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, expected %q", cfg.Log.Level, "info")
	}
}

func TestLoadMalformedConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	configDir := filepath.Join(tempDir, ".filecheck")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("this: is: not: valid: yaml: [[["), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load should fail for malformed YAML")
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	cfg := DefaultConfig()
	cfg.Target = "/my/target.csv"
	cfg.Watch = []string{"/a", "/b"}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	configPath := filepath.Join(tempDir, ".filecheck", "config.yaml")
	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("Config file was not created: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load after save failed: %v", err)
	}
	if loaded.Target != cfg.Target {
		t.Errorf("Target = %q, expected %q", loaded.Target, cfg.Target)
	}
	if !reflect.DeepEqual(loaded.Watch, cfg.Watch) {
		t.Errorf("Watch = %v, expected %v", loaded.Watch, cfg.Watch)
	}
}

func TestPaths(t *testing.T) {
	cfg := &Config{
		Target:     "a.csv",
		CreatePath: "files/first.txt",
		Watch:      []string{"b.csv", "a.csv", "", "c.csv"},
	}

	expected := []string{"a.csv", "files/first.txt", "b.csv", "c.csv"}
	if got := cfg.Paths(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Paths() = %v, expected %v", got, expected)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home dir, skipping test")
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"~/data.csv", filepath.Join(home, "data.csv")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"", ""},
		{"~", home},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ExpandPath(tt.input)
			if err != nil {
				t.Fatalf("ExpandPath(%q) failed: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ExpandPath(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

// ============================================================================
// Tests for error paths when HOME is unavailable
// ============================================================================

func TestConfigPathNoHome(t *testing.T) {
	t.Setenv("HOME", "")

	_, err := ConfigPath()
	if !errors.Is(err, ErrNoHomeDir) {
		t.Errorf("Expected ErrNoHomeDir, got: %v", err)
	}
	if _, err := Load(); err == nil {
		t.Error("Load should fail when HOME is not set")
	}
	if err := DefaultConfig().Save(); err == nil {
		t.Error("Save should fail when HOME is not set")
	}
}

func TestExpandPathNoHome(t *testing.T) {
	t.Setenv("HOME", "")

	if _, err := ExpandPath("~/data.csv"); !errors.Is(err, ErrNoHomeDir) {
		t.Errorf("Expected ErrNoHomeDir, got: %v", err)
	}

	// Non-tilde paths should still work
	result, err := ExpandPath("/absolute/path")
	if err != nil {
		t.Errorf("ExpandPath(/absolute/path) should succeed: %v", err)
	}
	if result != "/absolute/path" {
		t.Errorf("Expected /absolute/path, got %q", result)
	}
}
