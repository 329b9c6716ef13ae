package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if config != DefaultConfig() {
		t.Fatalf("missing file should yield defaults, got %+v", config)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"width": 12, "height": 8, "random_density": 0.4, "seed": 42}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Width != 12 || config.Height != 8 {
		t.Fatalf("dimensions = %dx%d, expected 12x8", config.Width, config.Height)
	}
	if config.RandomDensity != 0.4 {
		t.Fatalf("RandomDensity = %v, expected 0.4", config.RandomDensity)
	}
	if config.Seed != 42 {
		t.Fatalf("Seed = %d, expected 42", config.Seed)
	}
	// Fields absent from the file keep their defaults
	if config.FrameRate != 150*time.Millisecond {
		t.Fatalf("FrameRate = %v, expected default %v", config.FrameRate, 150*time.Millisecond)
	}
	if config.MaxGenerations != 1000 {
		t.Fatalf("MaxGenerations = %d, expected default 1000", config.MaxGenerations)
	}
}

func TestLoadConfigMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}
