package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/maptrack/internal/dynamo"
)

const (
	ModelPendulum    = "pendulum"
	ModelStandardMap = "standard_map"
)

const (
	DefaultIterations = 1000
	DefaultTheta      = 45 * math.Pi / 180
	DefaultThetaDot   = 0.0
	DefaultOmega      = 2 * math.Pi * 0.5
	DefaultDt         = 1e-2
	DefaultMapTheta   = 0.1
	DefaultMapP       = 0.0
	DefaultK          = -1.0
	DefaultSweepCount = 20
	DefaultMaxTheta   = math.Pi / 3
	DefaultIntegrator = "yoshida4"
)

type Config struct {
	Model       string            `yaml:"model"`
	Iterations  int               `yaml:"iterations"`
	Integrator  string            `yaml:"integrator"`
	Pendulum    PendulumConfig    `yaml:"pendulum"`
	StandardMap StandardMapConfig `yaml:"standard_map"`
	Sweep       SweepConfig       `yaml:"sweep"`
}

type PendulumConfig struct {
	Theta    float64 `yaml:"theta"`
	ThetaDot float64 `yaml:"theta_dot"`
	Omega    float64 `yaml:"omega"`
	Dt       float64 `yaml:"dt"`
}

type StandardMapConfig struct {
	Theta float64 `yaml:"theta"`
	P     float64 `yaml:"p"`
	K     float64 `yaml:"k"`
}

type SweepConfig struct {
	Count    int     `yaml:"count"`
	MaxTheta float64 `yaml:"max_theta"`
	Workers  int     `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      ModelPendulum,
		Iterations: DefaultIterations,
		Integrator: DefaultIntegrator,
		Pendulum: PendulumConfig{
			Theta:    DefaultTheta,
			ThetaDot: DefaultThetaDot,
			Omega:    DefaultOmega,
			Dt:       DefaultDt,
		},
		StandardMap: StandardMapConfig{
			Theta: DefaultMapTheta,
			P:     DefaultMapP,
			K:     DefaultK,
		},
		Sweep: SweepConfig{
			Count:    DefaultSweepCount,
			MaxTheta: DefaultMaxTheta,
		},
	}
}

// Load reads a YAML file on top of DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Merge(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge overwrites the fields of c that the YAML file at path sets. The
// result is not validated.
func (c *Config) Merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects negative counts and unknown models. Physical parameters
// are not range-checked.
func (c *Config) Validate() error {
	var errs []error
	switch c.Model {
	case ModelPendulum, ModelStandardMap:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", dynamo.ErrUnknownModel, c.Model))
	}
	if err := dynamo.CheckCount("iterations", c.Iterations); err != nil {
		errs = append(errs, err)
	}
	if err := dynamo.CheckCount("sweep.count", c.Sweep.Count); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// InitState returns the initial phase-space point of the configured model.
func (c *Config) InitState() dynamo.Point {
	switch c.Model {
	case ModelStandardMap:
		return dynamo.Point{Theta: c.StandardMap.Theta, P: c.StandardMap.P}
	default:
		return dynamo.Point{Theta: c.Pendulum.Theta, P: c.Pendulum.ThetaDot}
	}
}

// Params returns the model parameters recorded with a stored run.
func (c *Config) Params() map[string]float64 {
	switch c.Model {
	case ModelStandardMap:
		return map[string]float64{"k": c.StandardMap.K}
	default:
		return map[string]float64{"omega": c.Pendulum.Omega, "dt": c.Pendulum.Dt}
	}
}
