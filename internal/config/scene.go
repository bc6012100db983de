package config

import (
	"fmt"
	"os"

	"github.com/mwerner/sphpair/internal/pairs"
	"github.com/mwerner/sphpair/internal/vecmath"
	"gopkg.in/yaml.v3"
)

// SceneParticle is the yaml form of one particle's state.
type SceneParticle struct {
	Density                    float64     `yaml:"density"`
	Mass                       float64     `yaml:"mass"`
	Pressure                   float64     `yaml:"pressure"`
	Velocity                   [3]float64  `yaml:"velocity"`
	Viscosity                  float64     `yaml:"viscosity"`
	BulkViscosity              float64     `yaml:"bulk_viscosity"`
	BackgroundPressure         float64     `yaml:"background_pressure"`
	ModifiedBackgroundPressure float64     `yaml:"modified_background_pressure"`
	ModifiedVelocity           *[3]float64 `yaml:"modified_velocity,omitempty"`
	Ghost                      bool        `yaml:"ghost,omitempty"`
}

// ScenePair is the yaml form of one interaction.
type ScenePair struct {
	I                int        `yaml:"i"`
	J                int        `yaml:"j"`
	DWdrIJ           float64    `yaml:"dwdr_ij"`
	DWdrJI           float64    `yaml:"dwdr_ji"`
	ModDWdrIJ        float64    `yaml:"mod_dwdr_ij,omitempty"`
	ModDWdrJI        float64    `yaml:"mod_dwdr_ji,omitempty"`
	EIJ              [3]float64 `yaml:"e_ij"`
	AbsDist          float64    `yaml:"abs_dist"`
	KernelCorrection float64    `yaml:"kernel_correction,omitempty"`
}

// Scene is a self-contained evaluation input: particle states plus the
// pair list the surrounding solver would normally supply.
type Scene struct {
	Particles []SceneParticle `yaml:"particles"`
	Pairs     []ScenePair     `yaml:"pairs"`
}

func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	scene := &Scene{}
	if err := yaml.Unmarshal(data, scene); err != nil {
		return nil, err
	}
	return scene, nil
}

func SaveScene(path string, scene *Scene) error {
	data, err := yaml.Marshal(scene)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects particle states the formulations cannot consume.
func (s *Scene) Validate() error {
	for i, p := range s.Particles {
		if p.Density <= 0 {
			return fmt.Errorf("particle %d: density must be positive, got %g", i, p.Density)
		}
		if p.Mass <= 0 {
			return fmt.Errorf("particle %d: mass must be positive, got %g", i, p.Mass)
		}
	}
	for k, p := range s.Pairs {
		if p.I < 0 || p.I >= len(s.Particles) || p.J < 0 || p.J >= len(s.Particles) {
			return fmt.Errorf("pair %d: indices (%d,%d) out of range", k, p.I, p.J)
		}
		if p.AbsDist <= 0 {
			return fmt.Errorf("pair %d: abs_dist must be positive, got %g", k, p.AbsDist)
		}
	}
	return nil
}

// BuildParticles converts the scene to evaluator input.
func (s *Scene) BuildParticles() []pairs.Particle {
	out := make([]pairs.Particle, len(s.Particles))
	for i, p := range s.Particles {
		out[i] = pairs.Particle{
			Density:                    p.Density,
			Mass:                       p.Mass,
			Pressure:                   p.Pressure,
			Velocity:                   vecmath.Vec(p.Velocity),
			Viscosity:                  p.Viscosity,
			BulkViscosity:              p.BulkViscosity,
			BackgroundPressure:         p.BackgroundPressure,
			ModifiedBackgroundPressure: p.ModifiedBackgroundPressure,
			Ghost:                      p.Ghost,
		}
		if p.ModifiedVelocity != nil {
			mv := vecmath.Vec(*p.ModifiedVelocity)
			out[i].ModifiedVelocity = &mv
		}
	}
	return out
}

// BuildPairs converts the scene's pair list, applying the configured
// kernel correction where a pair does not set its own.
func (s *Scene) BuildPairs(kernelCorrection float64) []pairs.Pair {
	out := make([]pairs.Pair, len(s.Pairs))
	for k, p := range s.Pairs {
		kc := p.KernelCorrection
		if kc == 0 {
			kc = kernelCorrection
		}
		out[k] = pairs.Pair{
			I:                p.I,
			J:                p.J,
			DWdrIJ:           p.DWdrIJ,
			DWdrJI:           p.DWdrJI,
			ModDWdrIJ:        p.ModDWdrIJ,
			ModDWdrJI:        p.ModDWdrJI,
			EIJ:              vecmath.Vec(p.EIJ),
			AbsDist:          p.AbsDist,
			KernelCorrection: kc,
		}
	}
	return out
}
