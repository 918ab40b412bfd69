package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// App holds all configuration for the opcalc tool.
type App struct {
	// Input
	RosterPath string `yaml:"roster_path"`

	// Enemy baseline the metrics table is computed against
	Enemy EnemyConfig `yaml:"enemy"`

	// Sweep parameters for curve generation
	Sweep SweepConfig `yaml:"sweep"`

	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// EnemyConfig holds the baseline enemy defensive stats.
type EnemyConfig struct {
	Defense     int     `yaml:"defense"`
	MagicResist float64 `yaml:"magic_resist"` // percent
}

// SweepConfig holds the independent-variable ranges for curve generation.
type SweepConfig struct {
	MaxDefense  int     `yaml:"max_defense"`
	DefenseStep int     `yaml:"defense_step"`
	MaxResist   float64 `yaml:"max_resist"` // percent
	ResistStep  float64 `yaml:"resist_step"`
	Duration    float64 `yaml:"duration"` // seconds, timeline length
}

// Default returns App config with sensible defaults.
func Default() App {
	return App{
		RosterPath: "data/operators.yaml",
		Sweep: SweepConfig{
			MaxDefense:  1000,
			DefenseStep: 25,
			MaxResist:   100,
			ResistStep:  5,
			Duration:    60,
		},
		LogLevel: "info",
	}
}

// Load loads app config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (App, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Level maps the configured log level string to a slog level.
// Unknown values fall back to info.
func (a App) Level() slog.Level {
	switch a.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
