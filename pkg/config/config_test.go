package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefault tests that the default configuration is valid
func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() configuration is invalid: %v", err)
	}
	if cfg.Output.Format != "human" {
		t.Errorf("default output format = %q, want %q", cfg.Output.Format, "human")
	}
}

// TestValidate tests configuration validation rules
func TestValidate(t *testing.T) {
	t.Run("InvalidOutputFormat", func(t *testing.T) {
		cfg := Default()
		cfg.Output.Format = "xml"
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject output format 'xml'")
		}
	})

	t.Run("InvalidLogFormat", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.Format = "yaml"
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject log format 'yaml'")
		}
	})

	t.Run("InvalidLogLevel", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.Level = "trace"
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject log level 'trace'")
		}
	})
}

// TestSaveAndLoad tests the YAML round trip
func TestSaveAndLoad(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "sortnorris-config-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Sort.Recursive = true
	cfg.Output.Format = "json"
	cfg.Logging.Level = "debug"

	if err := SaveToFile(cfg, path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if !loaded.Sort.Recursive {
		t.Error("Sort.Recursive not preserved")
	}
	if loaded.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want %q", loaded.Output.Format, "json")
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", loaded.Logging.Level, "debug")
	}
}

// TestLoadFromFileMissing tests loading a non-existent file
func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadFromFile() should fail for a missing file")
	}
}

// TestLoadFromFileInvalid tests that invalid values are rejected on load
func TestLoadFromFileInvalid(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "sortnorris-config-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: csv\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Error("LoadFromFile() should reject an invalid output format")
	}
}
