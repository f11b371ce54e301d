// Package config loads game settings from defaults, a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Movement variants.
const (
	VariantExplore    = "explore"
	VariantPlatformer = "platformer"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ASCIIQUEST_"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. 0 means seed from the clock.
	Seed int64 `yaml:"seed"`

	TileSize    float64 `yaml:"tile_size"`    // World units per tile
	PlayerSpeed float64 `yaml:"player_speed"` // Tiles per second
	SpawnCol    int     `yaml:"spawn_col"`
	SpawnRow    int     `yaml:"spawn_row"`

	// EncounterInterval is the dwell time on encounter tiles before combat starts.
	EncounterInterval time.Duration `yaml:"encounter_interval"`

	Variant      string  `yaml:"variant"`       // explore or platformer
	Gravity      float64 `yaml:"gravity"`       // Tiles per second squared
	JumpStrength float64 `yaml:"jump_strength"` // Tiles per second

	FrameRate int           `yaml:"frame_rate"`
	KeyHold   time.Duration `yaml:"key_hold"`

	// MapPath is a plain-text map file. Empty uses the embedded map.
	MapPath string `yaml:"map_path"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogFile   string `yaml:"log_file"`
	Telemetry bool   `yaml:"telemetry"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TileSize:          0.1,
		PlayerSpeed:       3.0,
		SpawnCol:          2,
		SpawnRow:          2,
		EncounterInterval: time.Second,
		Variant:           VariantExplore,
		Gravity:           9.8,
		JumpStrength:      5.0,
		FrameRate:         30,
		KeyHold:           150 * time.Millisecond,
		LogLevel:          "info",
		LogFormat:         "text",
		LogFile:           "asciiquest.log",
	}
}

// LoadFile overlays the YAML file at path onto cfg. Keys missing from the
// file keep their current values.
func LoadFile(cfg Config, path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays ASCIIQUEST_* variables onto cfg using lookup
// (normally os.LookupEnv).
func ApplyEnv(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	var errs []error

	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	float := func(name string, dst *float64) {
		if v, ok := lookup(EnvPrefix + name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = f
		}
	}
	integer := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}
	duration := func(name string, dst *time.Duration) {
		if v, ok := lookup(EnvPrefix + name); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = d
		}
	}

	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSEED: %w", EnvPrefix, err))
		} else {
			cfg.Seed = seed
		}
	}
	if v, ok := lookup(EnvPrefix + "TELEMETRY"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sTELEMETRY: %w", EnvPrefix, err))
		} else {
			cfg.Telemetry = b
		}
	}

	float("TILE_SIZE", &cfg.TileSize)
	float("PLAYER_SPEED", &cfg.PlayerSpeed)
	integer("SPAWN_COL", &cfg.SpawnCol)
	integer("SPAWN_ROW", &cfg.SpawnRow)
	duration("ENCOUNTER_INTERVAL", &cfg.EncounterInterval)
	str("VARIANT", &cfg.Variant)
	float("GRAVITY", &cfg.Gravity)
	float("JUMP_STRENGTH", &cfg.JumpStrength)
	integer("FRAME_RATE", &cfg.FrameRate)
	duration("KEY_HOLD", &cfg.KeyHold)
	str("MAP_PATH", &cfg.MapPath)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)
	str("LOG_FILE", &cfg.LogFile)

	return cfg, errors.Join(errs...)
}

// MaxFrameRate bounds frame_rate so the frame duration stays positive.
const MaxFrameRate = 1000

// Validate checks that the configuration can run a game.
func (c Config) Validate() error {
	switch {
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile_size must be positive, got %v", ErrInvalidConfig, c.TileSize)
	case c.PlayerSpeed < 0:
		return fmt.Errorf("%w: player_speed must not be negative, got %v", ErrInvalidConfig, c.PlayerSpeed)
	case c.EncounterInterval <= 0:
		return fmt.Errorf("%w: encounter_interval must be positive, got %v", ErrInvalidConfig, c.EncounterInterval)
	case c.FrameRate <= 0 || c.FrameRate > MaxFrameRate:
		return fmt.Errorf("%w: frame_rate must be between 1 and %d, got %d", ErrInvalidConfig, MaxFrameRate, c.FrameRate)
	case c.Variant != VariantExplore && c.Variant != VariantPlatformer:
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, c.Variant)
	}
	return nil
}

// FrameDuration returns the target time between frames.
func (c Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}
