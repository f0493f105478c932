// Package config provides YAML-based configuration loading for seabattle.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config is the full application configuration.
type Config struct {
	Players   PlayersConfig   `yaml:"players"`
	Placement PlacementConfig `yaml:"placement"`
	Display   DisplayConfig   `yaml:"display"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// PlayersConfig selects the combatant for each side.
// Side A is the one whose fleet is shown openly in play mode.
type PlayersConfig struct {
	A PlayerConfig `yaml:"a"`
	B PlayerConfig `yaml:"b"`
}

// PlayerConfig names a registered combatant kind and its display name.
type PlayerConfig struct {
	Kind string `yaml:"kind"` // "human" or "random"
	Name string `yaml:"name"`
}

// PlacementConfig bounds the random fleet layout search.
type PlacementConfig struct {
	AttemptsPerVessel int `yaml:"attempts_per_vessel"`
	MaxRestarts       int `yaml:"max_restarts"`
}

// DisplayConfig controls board symbols and pacing.
type DisplayConfig struct {
	Ship      string        `yaml:"ship"`
	Water     string        `yaml:"water"`
	Hit       string        `yaml:"hit"`
	Miss      string        `yaml:"miss"`
	ShotDelay time.Duration `yaml:"shot_delay"` // pause between replayed computer shots
	ShowEnemy bool          `yaml:"show_enemy"` // reveal side B's fleet too
}

// StorageConfig locates the match history database.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// LogConfig sets the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level"`
}

// TelemetryConfig enables OTLP trace export.
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"` // used when OTEL_EXPORTER_OTLP_ENDPOINT is unset
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Validate checks that the configuration can drive a match.
// knownKind reports whether a combatant kind is registered.
func (c Config) Validate(knownKind func(string) bool) error {
	for side, p := range map[string]PlayerConfig{"a": c.Players.A, "b": c.Players.B} {
		if p.Kind == "" {
			return fmt.Errorf("%w: players.%s.kind is empty", ErrInvalid, side)
		}
		if knownKind != nil && !knownKind(p.Kind) {
			return fmt.Errorf("%w: players.%s.kind %q is not a known combatant", ErrInvalid, side, p.Kind)
		}
	}
	if c.Placement.AttemptsPerVessel <= 0 {
		return fmt.Errorf("%w: placement.attempts_per_vessel must be positive", ErrInvalid)
	}
	if c.Placement.MaxRestarts <= 0 {
		return fmt.Errorf("%w: placement.max_restarts must be positive", ErrInvalid)
	}
	if c.Display.ShotDelay < 0 {
		return fmt.Errorf("%w: display.shot_delay cannot be negative", ErrInvalid)
	}
	if !logLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if c.Storage.Enabled && c.Storage.DBPath == "" {
		return fmt.Errorf("%w: storage.db_path is empty", ErrInvalid)
	}
	return nil
}
