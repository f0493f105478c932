package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/seabattle.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches
// defaults/seabattle.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Players: PlayersConfig{
			A: PlayerConfig{Kind: "human", Name: "You"},
			B: PlayerConfig{Kind: "random", Name: "Computer"},
		},
		Placement: PlacementConfig{
			AttemptsPerVessel: 500,
			MaxRestarts:       1000,
		},
		Display: DisplayConfig{
			Ship:      "■",
			Water:     "O",
			Hit:       "X",
			Miss:      "T",
			ShotDelay: 400 * time.Millisecond,
		},
		Storage: StorageConfig{
			Enabled: true,
			DBPath:  "~/.seabattle/history.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
