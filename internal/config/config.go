// Package config provides YAML-based configuration loading and spawn presets
// for the game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/fruit2048/internal/board"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid")

// Config contains all tunable settings.
type Config struct {
	Preset        string          `yaml:"preset"`         // Named spawn preset; overrides Spawn when set
	Spawn         map[int]float64 `yaml:"spawn"`          // Tile value -> spawn probability
	HintThreshold int             `yaml:"hint_threshold"` // Invalid moves in a row before a hint
	TickRate      int             `yaml:"tick_rate"`      // Playout ticks per second
	Animation     AnimationConfig `yaml:"animation"`
	Render        RenderConfig    `yaml:"render"`
	Storage       StorageConfig   `yaml:"storage"`
}

// AnimationConfig defines playout phase lengths in ticks.
type AnimationConfig struct {
	SlideTicks int `yaml:"slide_ticks"`
	PopTicks   int `yaml:"pop_ticks"`
	ShakeTicks int `yaml:"shake_ticks"`
}

// RenderConfig selects how tiles are drawn.
type RenderConfig struct {
	Mode string `yaml:"mode"` // "fruit" or "number"
}

// StorageConfig locates the scores database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// Render modes.
const (
	RenderFruit  = "fruit"
	RenderNumber = "number"
)

// Distribution resolves the spawn distribution, preferring a named preset.
func (c Config) Distribution() (board.SpawnDistribution, error) {
	weights := c.Spawn
	if c.Preset != "" {
		p, ok := LookupPreset(Preset(c.Preset))
		if !ok {
			return board.SpawnDistribution{}, fmt.Errorf("%w: unknown preset %q", ErrInvalid, c.Preset)
		}
		weights = p
	}
	return board.NewSpawnDistribution(weights)
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if _, err := c.Distribution(); err != nil {
		return fmt.Errorf("%w: spawn: %w", ErrInvalid, err)
	}
	if c.HintThreshold < 1 {
		return fmt.Errorf("%w: hint_threshold must be at least 1, got %d", ErrInvalid, c.HintThreshold)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.TickRate)
	}
	if c.Animation.SlideTicks < 0 || c.Animation.PopTicks < 0 || c.Animation.ShakeTicks < 0 {
		return fmt.Errorf("%w: animation ticks cannot be negative", ErrInvalid)
	}
	switch c.Render.Mode {
	case RenderFruit, RenderNumber:
	default:
		return fmt.Errorf("%w: unknown render mode %q", ErrInvalid, c.Render.Mode)
	}
	return nil
}
