// Package pairs evaluates momentum exchange over a list of interacting
// particle pairs, accumulating the formulation's force contributions into
// per-particle acceleration buffers. Pair-list construction (neighbor
// search) and kernel evaluation belong to the surrounding solver; this
// package consumes their output.
package pairs

import (
	"errors"

	"github.com/mwerner/sphpair/internal/vecmath"
)

// Domain errors for pair evaluation.
var (
	// ErrParticleIndex indicates a pair referencing a particle outside
	// the evaluator's particle list.
	ErrParticleIndex = errors.New("pairs: particle index out of range")

	// ErrBadSeparation indicates a pair with non-positive separation
	// distance.
	ErrBadSeparation = errors.New("pairs: separation distance must be positive")
)

// Particle holds the per-particle state a formulation reads. The evaluator
// never mutates it.
type Particle struct {
	Density       float64
	Mass          float64
	Pressure      float64
	Velocity      vecmath.Vec
	Viscosity     float64
	BulkViscosity float64

	// Stabilization inputs for the background-pressure terms.
	BackgroundPressure         float64
	ModifiedBackgroundPressure float64

	// ModifiedVelocity is the transport velocity; nil means no
	// transport-velocity correction from this particle's side.
	ModifiedVelocity *vecmath.Vec

	// Ghost marks a particle not owned by this evaluation context; its
	// accumulator is never written, but it still exerts forces.
	Ghost bool
}

// Pair describes one interaction between particles I and J, with the
// kernel-gradient magnitudes for both evaluation directions (kernels need
// not be symmetric under swap).
type Pair struct {
	I, J int

	DWdrIJ, DWdrJI float64

	// Modified kernel gradients for the generalized background-pressure
	// term, which may use a separately evaluated gradient kernel.
	ModDWdrIJ, ModDWdrJI float64

	// EIJ is the unit vector from J to I.
	EIJ vecmath.Vec

	// AbsDist is the separation distance, > 0.
	AbsDist float64

	// KernelCorrection scales the convective part of the shear force.
	KernelCorrection float64
}

// Options selects which optional force terms the evaluator applies on top
// of the always-on pressure gradient and shear forces.
type Options struct {
	BackgroundPressure            bool
	GeneralizedBackgroundPressure bool
	TransportVelocity             bool
}
