package config

import "sort"

// Presets cover the mass range of observed black holes. Step sizes are
// scaled to each body's Schwarzschild radius so a few thousand steps
// cover dynamically interesting affine-parameter spans; "reference"
// keeps the original model's paper values, which barely advance the
// affine parameter at stellar length scales and therefore exhaust the
// step budget (useful for regression comparisons).
var Presets = map[string]*Config{
	"stellar": {
		MassSolar: 10.0, Particles: 8, Steps: 3000, StepSize: 200, Seed: 1, Integrator: "rk4",
	},
	"intermediate": {
		MassSolar: 1000.0, Particles: 8, Steps: 4000, StepSize: 2.0e4, Seed: 1, Integrator: "rk4",
	},
	"supermassive": {
		MassSolar: 4.3e6, Particles: 12, Steps: 5000, StepSize: 8.0e7, Seed: 1, Integrator: "rk4",
	},
	"reference": {
		MassSolar: 10.0, Particles: 6, Steps: 3000, StepSize: 0.001, Seed: 1, Integrator: "rk4",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	clone := *cfg
	return &clone
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
