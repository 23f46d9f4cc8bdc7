package config

import (
	"math"
	"sort"
)

var Presets = map[string]map[string]*Config{
	ModelPendulum: {
		"small": {
			Model: ModelPendulum, Iterations: 1000, Integrator: "yoshida4",
			Pendulum: PendulumConfig{Theta: 0.1, ThetaDot: 0, Omega: 2 * math.Pi * 0.5, Dt: 1e-2},
		},
		"swing": {
			Model: ModelPendulum, Iterations: 1000, Integrator: "yoshida4",
			Pendulum: PendulumConfig{Theta: 45 * math.Pi / 180, ThetaDot: 0, Omega: 2 * math.Pi * 0.5, Dt: 1e-2},
		},
		"long": {
			Model: ModelPendulum, Iterations: 1_000_000, Integrator: "yoshida4",
			Pendulum: PendulumConfig{Theta: 45 * math.Pi / 180, ThetaDot: 0, Omega: 2 * math.Pi * 0.5, Dt: 1e-2},
		},
		"rotating": {
			Model: ModelPendulum, Iterations: 2000, Integrator: "yoshida4",
			Pendulum: PendulumConfig{Theta: 0, ThetaDot: 8, Omega: 2 * math.Pi * 0.5, Dt: 1e-2},
		},
	},
	ModelStandardMap: {
		"plot": {
			Model: ModelStandardMap, Iterations: 1000,
			StandardMap: StandardMapConfig{Theta: 0.1, P: 0, K: -1},
		},
		"long": {
			Model: ModelStandardMap, Iterations: 1_000_000,
			StandardMap: StandardMapConfig{Theta: 0.15, P: 0, K: -1},
		},
		"island": {
			Model: ModelStandardMap, Iterations: 10_000,
			StandardMap: StandardMapConfig{Theta: 0.15, P: 0, K: -0.5},
			Sweep:       SweepConfig{Count: 20, MaxTheta: math.Pi / 3},
		},
		"chaos": {
			Model: ModelStandardMap, Iterations: 10_000,
			StandardMap: StandardMapConfig{Theta: 0.1, P: 0.2, K: -5},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// ListPresets returns the preset names of a model in lexical order.
func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
