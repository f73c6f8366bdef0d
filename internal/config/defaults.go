package config

import (
	_ "embed"
)

//go:embed defaults/fruit2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Spawn:         map[int]float64{2: 0.8, 4: 0.15, 8: 0.05},
		HintThreshold: 2,
		TickRate:      60,
		Animation: AnimationConfig{
			SlideTicks: 8,
			PopTicks:   6,
			ShakeTicks: 12,
		},
		Render: RenderConfig{
			Mode: RenderFruit,
		},
		Storage: StorageConfig{
			DBPath: "~/.fruit2048/scores.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
