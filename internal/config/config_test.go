package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	if cfg.TileSize != 0.1 || cfg.PlayerSpeed != 3.0 {
		t.Errorf("Default() tile/speed = %v/%v, want 0.1/3", cfg.TileSize, cfg.PlayerSpeed)
	}
	if cfg.EncounterInterval != time.Second {
		t.Errorf("Default().EncounterInterval = %v, want 1s", cfg.EncounterInterval)
	}
	if got := cfg.FrameDuration(); got != time.Second/30 {
		t.Errorf("FrameDuration() = %v, want %v", got, time.Second/30)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tile size", func(c *Config) { c.TileSize = 0 }},
		{"speed", func(c *Config) { c.PlayerSpeed = -1 }},
		{"interval", func(c *Config) { c.EncounterInterval = 0 }},
		{"frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"frame rate too high", func(c *Config) { c.FrameRate = 2_000_000_000 }},
		{"variant", func(c *Config) { c.Variant = "racing" }},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: Validate() error = %v, want ErrInvalidConfig", tt.name, err)
		}
	}
}

func TestFrameDurationAtMaxRate(t *testing.T) {
	cfg := Default()
	cfg.FrameRate = MaxFrameRate
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if got := cfg.FrameDuration(); got != time.Millisecond {
		t.Errorf("FrameDuration() = %v, want 1ms", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asciiquest.yaml")
	content := "variant: platformer\nencounter_interval: 2s\nplayer_speed: 4.5\nmap_path: maps/cave.txt\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadFile(Default(), path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	if cfg.Variant != VariantPlatformer {
		t.Errorf("Variant = %q, want platformer", cfg.Variant)
	}
	if cfg.EncounterInterval != 2*time.Second {
		t.Errorf("EncounterInterval = %v, want 2s", cfg.EncounterInterval)
	}
	if cfg.PlayerSpeed != 4.5 {
		t.Errorf("PlayerSpeed = %v, want 4.5", cfg.PlayerSpeed)
	}
	if cfg.MapPath != "maps/cave.txt" {
		t.Errorf("MapPath = %q, want maps/cave.txt", cfg.MapPath)
	}
	if cfg.TileSize != 0.1 {
		t.Errorf("TileSize = %v, want default 0.1", cfg.TileSize)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(Default(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile() on a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("frame_rate: [1, 2"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadFile(Default(), path); err == nil {
		t.Error("LoadFile() on malformed YAML should fail")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"ASCIIQUEST_SEED":               "42",
		"ASCIIQUEST_VARIANT":            "platformer",
		"ASCIIQUEST_TILE_SIZE":          "0.25",
		"ASCIIQUEST_SPAWN_COL":          "4",
		"ASCIIQUEST_ENCOUNTER_INTERVAL": "500ms",
		"ASCIIQUEST_TELEMETRY":          "true",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg, err := ApplyEnv(Default(), lookup)
	if err != nil {
		t.Fatalf("ApplyEnv() error: %v", err)
	}

	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.Variant != VariantPlatformer {
		t.Errorf("Variant = %q, want platformer", cfg.Variant)
	}
	if cfg.TileSize != 0.25 {
		t.Errorf("TileSize = %v, want 0.25", cfg.TileSize)
	}
	if cfg.SpawnCol != 4 {
		t.Errorf("SpawnCol = %d, want 4", cfg.SpawnCol)
	}
	if cfg.EncounterInterval != 500*time.Millisecond {
		t.Errorf("EncounterInterval = %v, want 500ms", cfg.EncounterInterval)
	}
	if !cfg.Telemetry {
		t.Error("Telemetry = false, want true")
	}
	if cfg.FrameRate != 30 {
		t.Errorf("FrameRate = %d, want default 30", cfg.FrameRate)
	}
}

func TestApplyEnvErrors(t *testing.T) {
	env := map[string]string{
		"ASCIIQUEST_SEED":       "forty-two",
		"ASCIIQUEST_FRAME_RATE": "fast",
		"ASCIIQUEST_KEY_HOLD":   "1 second",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg, err := ApplyEnv(Default(), lookup)
	if err == nil {
		t.Fatal("ApplyEnv() with malformed values should fail")
	}
	if cfg.FrameRate != 30 {
		t.Errorf("FrameRate = %d, want unchanged 30", cfg.FrameRate)
	}
}
