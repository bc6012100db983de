package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFormulation      = "monaghan"
	DefaultKernelCorrection = 1.0
	DefaultWorkers          = 1
)

// Config selects the momentum formulation and the optional force terms an
// evaluation pass applies.
type Config struct {
	Formulation                   string  `yaml:"formulation"`
	BackgroundPressure            bool    `yaml:"background_pressure"`
	GeneralizedBackgroundPressure bool    `yaml:"generalized_background_pressure"`
	TransportVelocity             bool    `yaml:"transport_velocity"`
	KernelCorrection              float64 `yaml:"kernel_correction"`
	Workers                       int     `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Formulation:      DefaultFormulation,
		KernelCorrection: DefaultKernelCorrection,
		Workers:          DefaultWorkers,
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
