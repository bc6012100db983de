package pairs

import (
	"fmt"

	"github.com/mwerner/sphpair/internal/momentum"
	"github.com/mwerner/sphpair/internal/vecmath"
)

// Evaluator drives a momentum formulation over pair lists. It owns the
// acceleration buffers the formulation accumulates into; Acc is indexed by
// particle id and only ever added to between calls to Reset.
type Evaluator struct {
	form      momentum.Formulation
	particles []Particle
	opts      Options

	// Acc collects the accumulated accelerations, one per particle.
	Acc []vecmath.Vec
}

// NewEvaluator prepares an evaluator for the given particles. The
// formulation's Init/Setup lifecycle runs here, once.
func NewEvaluator(form momentum.Formulation, particles []Particle, opts Options) *Evaluator {
	form.Init()
	form.Setup()

	return &Evaluator{
		form:      form,
		particles: particles,
		opts:      opts,
		Acc:       make([]vecmath.Vec, len(particles)),
	}
}

// Reset zeroes the acceleration buffers for a new evaluation pass.
func (e *Evaluator) Reset() {
	for i := range e.Acc {
		e.Acc[i].Clear()
	}
}

// Evaluate accumulates every pair's force contributions into Acc. The
// first formulation error aborts the pass and is returned with the
// offending pair identified.
func (e *Evaluator) Evaluate(pairList []Pair) error {
	for idx := range pairList {
		if err := e.evaluatePair(&pairList[idx], e.Acc); err != nil {
			return fmt.Errorf("pair %d (%d,%d): %w",
				idx, pairList[idx].I, pairList[idx].J, err)
		}
	}
	return nil
}

// evaluatePair runs the fixed per-pair call sequence: specific coefficient,
// pressure gradient, shear forces, then the optional stabilization and
// transport-velocity terms. acc lets parallel callers redirect the writes
// into private scratch buffers.
func (e *Evaluator) evaluatePair(p *Pair, acc []vecmath.Vec) error {
	if p.I < 0 || p.I >= len(e.particles) || p.J < 0 || p.J >= len(e.particles) {
		return ErrParticleIndex
	}
	if p.AbsDist <= 0 {
		return ErrBadSeparation
	}

	pi := &e.particles[p.I]
	pj := &e.particles[p.J]

	var accI, accJ *vecmath.Vec
	if !pi.Ghost {
		accI = &acc[p.I]
	}
	if !pj.Ghost {
		accJ = &acc[p.J]
	}

	var coeffIJ, coeffJI float64
	e.form.SpecificCoefficient(pi.Density, pj.Density, pi.Mass, pj.Mass,
		p.DWdrIJ, p.DWdrJI, &coeffIJ, &coeffJI)

	e.form.PressureGradient(pi.Density, pj.Density, pi.Pressure, pj.Pressure,
		coeffIJ, coeffJI, p.EIJ, accI, accJ)

	if err := e.form.ShearForces(pi.Density, pj.Density, pi.Velocity, pj.Velocity,
		p.KernelCorrection, pi.Viscosity, pj.Viscosity,
		pi.BulkViscosity, pj.BulkViscosity, p.AbsDist,
		coeffIJ, coeffJI, p.EIJ, accI, accJ); err != nil {
		return err
	}

	if e.opts.BackgroundPressure {
		e.form.StandardBackgroundPressure(pi.Density, pj.Density,
			pi.BackgroundPressure, pj.BackgroundPressure,
			coeffIJ, coeffJI, p.EIJ, accI, accJ)
	}

	if e.opts.GeneralizedBackgroundPressure {
		e.form.GeneralizedBackgroundPressure(pi.Density, pj.Density, pi.Mass, pj.Mass,
			pi.ModifiedBackgroundPressure, pj.ModifiedBackgroundPressure,
			p.ModDWdrIJ, p.ModDWdrJI, p.EIJ, accI, accJ)
	}

	if e.opts.TransportVelocity {
		e.form.ModifiedVelocityContribution(pi.Density, pj.Density,
			pi.Velocity, pj.Velocity, pi.ModifiedVelocity, pj.ModifiedVelocity,
			coeffIJ, coeffJI, p.EIJ, accI, accJ)
	}

	return nil
}
