package momentum

import (
	"errors"
	"fmt"

	"github.com/mwerner/sphpair/internal/vecmath"
)

// Domain errors for formulation evaluation.
var (
	// ErrNegativeDiffusion indicates a shear/bulk viscosity combination
	// whose diffusion coefficient is negative, which is non-physical.
	ErrNegativeDiffusion = errors.New("momentum: negative diffusion coefficient")

	// ErrUnknownKind indicates a formulation kind with no implementation.
	ErrUnknownKind = errors.New("momentum: unknown formulation kind")
)

// Kind names a momentum formulation variant.
type Kind string

const (
	KindMonaghan Kind = "monaghan"
	KindAdami    Kind = "adami"
)

// Formulation is the capability set every momentum formulation provides.
//
// Output pointers may be nil, meaning the caller does not want that side
// of the pair written (e.g. a ghost particle); a nil output suppresses the
// write and is never an error. Acceleration outputs are accumulated onto
// (+=), never overwritten, because one particle collects contributions
// from many pairs within a solver pass.
type Formulation interface {
	// Init performs one-time initialization before Setup.
	Init()

	// Setup prepares the formulation for pair evaluation. Must be called
	// once after Init and before the first pair.
	Setup()

	// SpecificCoefficient computes the pair's shared multiplicative
	// weights. Evaluate once per pair and reuse for every later term;
	// coeffJI is the i<->j mirror of coeffIJ.
	SpecificCoefficient(densI, densJ, massI, massJ, dWdrIJ, dWdrJI float64,
		coeffIJ, coeffJI *float64)

	// PressureGradient accumulates the physical pressure force.
	PressureGradient(densI, densJ, pressI, pressJ, coeffIJ, coeffJI float64,
		eIJ vecmath.Vec, accI, accJ *vecmath.Vec)

	// ShearForces accumulates the viscous force. Returns
	// ErrNegativeDiffusion if the viscosity combination is non-physical;
	// any error is fatal for the evaluation pass.
	ShearForces(densI, densJ float64, velI, velJ vecmath.Vec,
		kernelFac, viscI, viscJ, bulkViscI, bulkViscJ, absDist,
		coeffIJ, coeffJI float64, eIJ vecmath.Vec, accI, accJ *vecmath.Vec) error

	// StandardBackgroundPressure accumulates the tensile-instability
	// stabilization term built from the background pressures.
	StandardBackgroundPressure(densI, densJ, bgPressI, bgPressJ,
		coeffIJ, coeffJI float64, eIJ vecmath.Vec, accI, accJ *vecmath.Vec)

	// GeneralizedBackgroundPressure accumulates the stabilization term
	// evaluated with separately supplied modified pressures and modified
	// kernel-gradient magnitudes.
	GeneralizedBackgroundPressure(densI, densJ, massI, massJ,
		modBgPressI, modBgPressJ, modDWdrIJ, modDWdrJI float64,
		eIJ vecmath.Vec, accI, accJ *vecmath.Vec)

	// ModifiedVelocityContribution accumulates the transport-velocity
	// correction. A nil modified velocity means no correction from that
	// side of the pair.
	ModifiedVelocityContribution(densI, densJ float64, velI, velJ vecmath.Vec,
		modVelI, modVelJ *vecmath.Vec, coeffIJ, coeffJI float64,
		eIJ vecmath.Vec, accI, accJ *vecmath.Vec)
}

// New returns the formulation implementing kind.
func New(kind Kind) (Formulation, error) {
	switch kind {
	case KindMonaghan:
		return NewMonaghan(), nil
	case KindAdami:
		return NewAdami(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Kinds lists the available formulation kinds.
func Kinds() []Kind {
	return []Kind{KindMonaghan, KindAdami}
}
