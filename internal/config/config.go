package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMassSolar = 10.0
	DefaultParticles = 8
	DefaultSteps     = 3000
	DefaultStepSize  = 200.0
	DefaultSeed      = 1
)

// Config describes one simulation run. Spin is accepted for forward
// compatibility with rotating bodies but the Schwarzschild-only core
// ignores it; the CLI warns when it is nonzero rather than dropping it
// silently.
type Config struct {
	MassSolar  float64 `yaml:"mass_solar"`
	Spin       float64 `yaml:"spin"`
	Particles  int     `yaml:"particles"`
	Steps      int     `yaml:"steps"`
	StepSize   float64 `yaml:"step_size"`
	Seed       int64   `yaml:"seed"`
	Integrator string  `yaml:"integrator"`
}

func DefaultConfig() *Config {
	return &Config{
		MassSolar:  DefaultMassSolar,
		Particles:  DefaultParticles,
		Steps:      DefaultSteps,
		StepSize:   DefaultStepSize,
		Seed:       DefaultSeed,
		Integrator: "rk4",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations the core would refuse anyway, so the
// CLI can fail before building a metric or sampling particles.
func (c *Config) Validate() error {
	if c.MassSolar <= 0 {
		return fmt.Errorf("config: mass_solar must be positive, got %g", c.MassSolar)
	}
	if c.Particles <= 0 {
		return fmt.Errorf("config: particles must be positive, got %d", c.Particles)
	}
	if c.Steps < 0 {
		return fmt.Errorf("config: steps must be non-negative, got %d", c.Steps)
	}
	if c.StepSize <= 0 {
		return fmt.Errorf("config: step_size must be positive, got %g", c.StepSize)
	}
	switch c.Integrator {
	case "", "rk4", "euler":
	default:
		return fmt.Errorf("config: unknown integrator %q", c.Integrator)
	}
	return nil
}
