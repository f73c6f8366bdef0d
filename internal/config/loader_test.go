package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() failed: %v", err)
	}
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	def := Default()
	if cfg.HintThreshold != def.HintThreshold || cfg.TickRate != def.TickRate {
		t.Errorf("embedded config = %+v, want %+v", cfg, def)
	}
	if cfg.Animation != def.Animation || cfg.Render != def.Render || cfg.Storage != def.Storage {
		t.Errorf("embedded config = %+v, want %+v", cfg, def)
	}
	if len(cfg.Spawn) != 3 || cfg.Spawn[2] != 0.8 || cfg.Spawn[4] != 0.15 || cfg.Spawn[8] != 0.05 {
		t.Errorf("embedded spawn = %v", cfg.Spawn)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("hint_threshold: 3\nspawn:\n  2: 0.5\n  4: 0.5\nrender:\n  mode: number\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.HintThreshold != 3 {
		t.Errorf("HintThreshold = %d, want 3", cfg.HintThreshold)
	}
	if cfg.Render.Mode != RenderNumber {
		t.Errorf("Render.Mode = %q, want number", cfg.Render.Mode)
	}
	if len(cfg.Spawn) != 2 {
		t.Errorf("spawn map should replace the default, got %v", cfg.Spawn)
	}
	// Unset keys keep their defaults.
	if cfg.TickRate != 60 || cfg.Animation.SlideTicks != 8 {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad spawn sum", "spawn:\n  2: 0.5\n  4: 0.2\n"},
		{"zero threshold", "hint_threshold: 0\n"},
		{"zero tick rate", "tick_rate: 0\n"},
		{"unknown render mode", "render:\n  mode: ascii-art\n"},
		{"unknown preset", "preset: impossible\n"},
		{"negative ticks", "animation:\n  pop_ticks: -1\n"},
		{"malformed yaml", "spawn: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Errorf("Parse(%q) should fail", tt.yaml)
			}
		})
	}
}

func TestValidateWrapsErrInvalid(t *testing.T) {
	cfg := Default()
	cfg.TickRate = -1
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Validate() error = %v, want ErrInvalid", err)
	}
}

func TestPresetOverridesSpawn(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, string(PresetEasy))

	dist, err := cfg.Distribution()
	if err != nil {
		t.Fatalf("Distribution() failed: %v", err)
	}
	w := dist.Weights()
	if len(w) != 2 || w[8] != 0 {
		t.Errorf("easy preset weights = %v", w)
	}

	ApplyPreset(&cfg, "")
	if cfg.Preset != string(PresetEasy) {
		t.Error("empty preset name should leave the config unchanged")
	}
}

func TestPresetsAreValid(t *testing.T) {
	names := PresetNames()
	if len(names) != 3 {
		t.Fatalf("PresetNames() = %v", names)
	}
	for _, name := range names {
		cfg := Default()
		ApplyPreset(&cfg, name)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestLookupPresetReturnsCopy(t *testing.T) {
	w, _ := LookupPreset(PresetNormal)
	w[2] = 0

	again, _ := LookupPreset(PresetNormal)
	if again[2] != 0.8 {
		t.Error("LookupPreset should return a copy")
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/tmp/x.db")
	if err != nil || got != "/tmp/x.db" {
		t.Errorf("ExpandHome(abs) = %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/.fruit2048/scores.db")
	if err != nil || got != filepath.Join(home, ".fruit2048", "scores.db") {
		t.Errorf("ExpandHome(~) = %q, %v", got, err)
	}
}
