package config

import "sort"

// Preset names a spawn distribution.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

var presets = map[Preset]map[int]float64{
	PresetEasy:   {2: 0.9, 4: 0.1},
	PresetNormal: {2: 0.8, 4: 0.15, 8: 0.05},
	PresetHard:   {2: 0.6, 4: 0.3, 8: 0.1},
}

// LookupPreset returns a copy of the weights for a preset.
func LookupPreset(p Preset) (map[int]float64, bool) {
	w, ok := presets[p]
	if !ok {
		return nil, false
	}
	out := make(map[int]float64, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out, true
}

// PresetNames returns all preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for p := range presets {
		names = append(names, string(p))
	}
	sort.Strings(names)
	return names
}

// ApplyPreset switches the config to a named preset.
// An empty name leaves the config unchanged.
func ApplyPreset(cfg *Config, name string) {
	if name == "" {
		return
	}
	cfg.Preset = name
}
