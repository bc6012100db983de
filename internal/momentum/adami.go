package momentum

import "github.com/mwerner/sphpair/internal/vecmath"

// Adami is the transport-velocity consistent momentum formulation. The
// mass/density normalization lives entirely in the specific coefficient;
// pressure is averaged with density weights and the viscous force reduces
// to a single diffusion-type term.
type Adami struct{}

// NewAdami returns the transport-velocity momentum formulation.
func NewAdami() *Adami {
	return &Adami{}
}

func (a *Adami) Init() {}

func (a *Adami) Setup() {}

func (a *Adami) SpecificCoefficient(densI, densJ, massI, massJ, dWdrIJ, dWdrJI float64,
	coeffIJ, coeffJI *float64) {
	fac := vecmath.Square(massI/densI) + vecmath.Square(massJ/densJ)

	if coeffIJ != nil {
		*coeffIJ = fac * (dWdrIJ / massI)
	}
	if coeffJI != nil {
		*coeffJI = fac * (dWdrJI / massJ)
	}
}

func (a *Adami) PressureGradient(densI, densJ, pressI, pressJ, coeffIJ, coeffJI float64,
	eIJ vecmath.Vec, accI, accJ *vecmath.Vec) {
	fac := (densI*pressJ + densJ*pressI) / (densI + densJ)

	if accI != nil {
		accI.AddScale(-coeffIJ*fac, eIJ)
	}
	if accJ != nil {
		accJ.AddScale(coeffJI*fac, eIJ)
	}
}

// ShearForces is a deliberate no-op when either viscosity is non-positive:
// the pair simply has no viscous interaction. It never returns an error.
func (a *Adami) ShearForces(densI, densJ float64, velI, velJ vecmath.Vec,
	kernelFac, viscI, viscJ, bulkViscI, bulkViscJ, absDist,
	coeffIJ, coeffJI float64, eIJ vecmath.Vec, accI, accJ *vecmath.Vec) error {
	if viscI <= 0.0 || viscJ <= 0.0 {
		return nil
	}
	viscosity := 2.0 * viscI * viscJ / (viscI + viscJ)

	velIJ := vecmath.Sub(velI, velJ)
	fac := viscosity / absDist

	if accI != nil {
		accI.AddScale(coeffIJ*fac, velIJ)
	}
	if accJ != nil {
		accJ.AddScale(-coeffJI*fac, velIJ)
	}

	return nil
}

func (a *Adami) StandardBackgroundPressure(densI, densJ, bgPressI, bgPressJ,
	coeffIJ, coeffJI float64, eIJ vecmath.Vec, accI, accJ *vecmath.Vec) {
	// density normalization is already folded into the specific coefficient
	if accI != nil {
		accI.AddScale(-coeffIJ*bgPressI, eIJ)
	}
	if accJ != nil {
		accJ.AddScale(coeffJI*bgPressJ, eIJ)
	}
}

func (a *Adami) GeneralizedBackgroundPressure(densI, densJ, massI, massJ,
	modBgPressI, modBgPressJ, modDWdrIJ, modDWdrJI float64,
	eIJ vecmath.Vec, accI, accJ *vecmath.Vec) {
	if accI != nil {
		accI.AddScale(-(modBgPressI*massI*modDWdrIJ)/vecmath.Square(densI), eIJ)
	}
	if accJ != nil {
		accJ.AddScale((modBgPressJ*massJ*modDWdrJI)/vecmath.Square(densJ), eIJ)
	}
}

func (a *Adami) ModifiedVelocityContribution(densI, densJ float64, velI, velJ vecmath.Vec,
	modVelI, modVelJ *vecmath.Vec, coeffIJ, coeffJI float64,
	eIJ vecmath.Vec, accI, accJ *vecmath.Vec) {
	var aij vecmath.Vec

	if modVelI != nil {
		diff := vecmath.Sub(*modVelI, velI)
		aij.AddScale(0.5*densI*diff.Dot(eIJ), velI)
	}
	if modVelJ != nil {
		diff := vecmath.Sub(*modVelJ, velJ)
		aij.AddScale(0.5*densJ*diff.Dot(eIJ), velJ)
	}

	if accI != nil {
		accI.AddScale(coeffIJ, aij)
	}
	if accJ != nil {
		accJ.AddScale(-coeffJI, aij)
	}
}
