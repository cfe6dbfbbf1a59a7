package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MassSolar <= 0 {
		t.Error("mass should be positive")
	}
	if cfg.StepSize <= 0 {
		t.Error("step size should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero mass", func(c *Config) { c.MassSolar = 0 }},
		{"negative mass", func(c *Config) { c.MassSolar = -10 }},
		{"zero particles", func(c *Config) { c.Particles = 0 }},
		{"negative steps", func(c *Config) { c.Steps = -1 }},
		{"zero step size", func(c *Config) { c.StepSize = 0 }},
		{"unknown integrator", func(c *Config) { c.Integrator = "leapfrog" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestSpinDoesNotFailValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spin = 0.9
	if err := cfg.Validate(); err != nil {
		t.Errorf("spin is ignored, not rejected: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.MassSolar = 4.3e6
	cfg.Seed = 77

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.MassSolar != cfg.MassSolar || loaded.Seed != cfg.Seed {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("stellar")
	if cfg == nil {
		t.Fatal("expected stellar preset")
	}
	if cfg.MassSolar != 10.0 {
		t.Errorf("stellar preset mass: got %g", cfg.MassSolar)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}

	// Mutating a returned preset must not leak into the table.
	cfg.MassSolar = 1
	if Presets["stellar"].MassSolar != 10.0 {
		t.Error("preset table mutated through returned copy")
	}
}
