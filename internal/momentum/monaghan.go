package momentum

import (
	"fmt"

	"github.com/mwerner/sphpair/internal/vecmath"
)

// Monaghan is the classical SPH momentum formulation. Pressure forces use
// the symmetric pressure-over-density-squared form; the viscous force is
// split into a diffusion term along the relative velocity and a convection
// term along the pair direction.
type Monaghan struct{}

// NewMonaghan returns the classical momentum formulation.
func NewMonaghan() *Monaghan {
	return &Monaghan{}
}

func (m *Monaghan) Init() {}

func (m *Monaghan) Setup() {}

func (m *Monaghan) SpecificCoefficient(densI, densJ, massI, massJ, dWdrIJ, dWdrJI float64,
	coeffIJ, coeffJI *float64) {
	if coeffIJ != nil {
		*coeffIJ = dWdrIJ * massJ
	}
	if coeffJI != nil {
		*coeffJI = dWdrJI * massI
	}
}

func (m *Monaghan) PressureGradient(densI, densJ, pressI, pressJ, coeffIJ, coeffJI float64,
	eIJ vecmath.Vec, accI, accJ *vecmath.Vec) {
	fac := pressI/vecmath.Square(densI) + pressJ/vecmath.Square(densJ)

	if accI != nil {
		accI.AddScale(-coeffIJ*fac, eIJ)
	}
	if accJ != nil {
		accJ.AddScale(coeffJI*fac, eIJ)
	}
}

func (m *Monaghan) ShearForces(densI, densJ float64, velI, velJ vecmath.Vec,
	kernelFac, viscI, viscJ, bulkViscI, bulkViscJ, absDist,
	coeffIJ, coeffJI float64, eIJ vecmath.Vec, accI, accJ *vecmath.Vec) error {
	scaledViscosity := 0.0
	if viscI > 0.0 && viscJ > 0.0 {
		scaledViscosity = 2.0 * viscI * viscJ / (3.0 * (viscI + viscJ))
	}

	bulkViscosity := 0.0
	if bulkViscI > 0.0 && bulkViscJ > 0.0 {
		bulkViscosity = 2.0 * bulkViscI * bulkViscJ / (bulkViscI + bulkViscJ)
	}

	convectionCoeff := kernelFac * (bulkViscosity + scaledViscosity)
	diffusionCoeff := 5.0*scaledViscosity - bulkViscosity

	if diffusionCoeff < 0.0 {
		return fmt.Errorf("%w: %g (shear %g/%g, bulk %g/%g)",
			ErrNegativeDiffusion, diffusionCoeff, viscI, viscJ, bulkViscI, bulkViscJ)
	}

	velIJ := vecmath.Sub(velI, velJ)
	invDensDist := 1.0 / (densI * densJ * absDist)

	// diffusion
	facDiff := diffusionCoeff * invDensDist
	if accI != nil {
		accI.AddScale(coeffIJ*facDiff, velIJ)
	}
	if accJ != nil {
		accJ.AddScale(-coeffJI*facDiff, velIJ)
	}

	// convection
	facConv := convectionCoeff * velIJ.Dot(eIJ) * invDensDist
	if accI != nil {
		accI.AddScale(coeffIJ*facConv, eIJ)
	}
	if accJ != nil {
		accJ.AddScale(-coeffJI*facConv, eIJ)
	}

	return nil
}

func (m *Monaghan) StandardBackgroundPressure(densI, densJ, bgPressI, bgPressJ,
	coeffIJ, coeffJI float64, eIJ vecmath.Vec, accI, accJ *vecmath.Vec) {
	fac := 1.0/vecmath.Square(densI) + 1.0/vecmath.Square(densJ)

	if accI != nil {
		accI.AddScale(-coeffIJ*bgPressI*fac, eIJ)
	}
	if accJ != nil {
		accJ.AddScale(coeffJI*bgPressJ*fac, eIJ)
	}
}

func (m *Monaghan) GeneralizedBackgroundPressure(densI, densJ, massI, massJ,
	modBgPressI, modBgPressJ, modDWdrIJ, modDWdrJI float64,
	eIJ vecmath.Vec, accI, accJ *vecmath.Vec) {
	if accI != nil {
		accI.AddScale(-modBgPressI*(massJ/vecmath.Square(densI))*modDWdrIJ, eIJ)
	}
	if accJ != nil {
		accJ.AddScale(modBgPressJ*(massI/vecmath.Square(densJ))*modDWdrJI, eIJ)
	}
}

func (m *Monaghan) ModifiedVelocityContribution(densI, densJ float64, velI, velJ vecmath.Vec,
	modVelI, modVelJ *vecmath.Vec, coeffIJ, coeffJI float64,
	eIJ vecmath.Vec, accI, accJ *vecmath.Vec) {
	var aij vecmath.Vec

	if modVelI != nil {
		diff := vecmath.Sub(*modVelI, velI)
		aij.AddScale(diff.Dot(eIJ)/densI, velI)
	}
	if modVelJ != nil {
		diff := vecmath.Sub(*modVelJ, velJ)
		aij.AddScale(diff.Dot(eIJ)/densJ, velJ)
	}

	if accI != nil {
		accI.AddScale(coeffIJ, aij)
	}
	if accJ != nil {
		accJ.AddScale(-coeffJI, aij)
	}
}
