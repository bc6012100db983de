package momentum

import (
	"errors"
	"math"
	"testing"

	"github.com/mwerner/sphpair/internal/vecmath"
)

func TestNew(t *testing.T) {
	for _, kind := range Kinds() {
		f, err := New(kind)
		if err != nil {
			t.Fatalf("New(%s): %v", kind, err)
		}
		if f == nil {
			t.Fatalf("New(%s): nil formulation", kind)
		}
		f.Init()
		f.Setup()
	}

	if _, err := New("wendland"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

// pairCase bundles the full per-pair input set for one ordered evaluation.
type pairCase struct {
	densI, densJ   float64
	massI, massJ   float64
	pressI, pressJ float64
	velI, velJ     vecmath.Vec
	viscI, viscJ   float64
	bulkI, bulkJ   float64
	bgI, bgJ       float64
	modBgI, modBgJ float64

	dWij, dWji       float64
	modDWij, modDWji float64

	modVelI, modVelJ *vecmath.Vec

	eIJ       vecmath.Vec
	absDist   float64
	kernelFac float64
}

// swapped returns the same physical pair evaluated from the other side:
// all i/j quantities exchanged and the direction vector negated.
func (c pairCase) swapped() pairCase {
	s := c
	s.densI, s.densJ = c.densJ, c.densI
	s.massI, s.massJ = c.massJ, c.massI
	s.pressI, s.pressJ = c.pressJ, c.pressI
	s.velI, s.velJ = c.velJ, c.velI
	s.viscI, s.viscJ = c.viscJ, c.viscI
	s.bulkI, s.bulkJ = c.bulkJ, c.bulkI
	s.bgI, s.bgJ = c.bgJ, c.bgI
	s.modBgI, s.modBgJ = c.modBgJ, c.modBgI
	s.dWij, s.dWji = c.dWji, c.dWij
	s.modDWij, s.modDWji = c.modDWji, c.modDWij
	s.modVelI, s.modVelJ = c.modVelJ, c.modVelI
	s.eIJ = c.eIJ.Scale(-1)
	return s
}

// evalAll runs the full per-pair call sequence and returns the two
// accumulated accelerations.
func evalAll(f Formulation, c pairCase) (vecmath.Vec, vecmath.Vec, error) {
	var cij, cji float64
	f.SpecificCoefficient(c.densI, c.densJ, c.massI, c.massJ, c.dWij, c.dWji, &cij, &cji)

	var accI, accJ vecmath.Vec
	f.PressureGradient(c.densI, c.densJ, c.pressI, c.pressJ, cij, cji, c.eIJ, &accI, &accJ)

	if err := f.ShearForces(c.densI, c.densJ, c.velI, c.velJ, c.kernelFac,
		c.viscI, c.viscJ, c.bulkI, c.bulkJ, c.absDist, cij, cji, c.eIJ, &accI, &accJ); err != nil {
		return accI, accJ, err
	}

	f.StandardBackgroundPressure(c.densI, c.densJ, c.bgI, c.bgJ, cij, cji, c.eIJ, &accI, &accJ)
	f.GeneralizedBackgroundPressure(c.densI, c.densJ, c.massI, c.massJ,
		c.modBgI, c.modBgJ, c.modDWij, c.modDWji, c.eIJ, &accI, &accJ)
	f.ModifiedVelocityContribution(c.densI, c.densJ, c.velI, c.velJ,
		c.modVelI, c.modVelJ, cij, cji, c.eIJ, &accI, &accJ)

	return accI, accJ, nil
}

func testCase() pairCase {
	modVelI := vecmath.Vec{1.1, -0.2, 0.4}
	modVelJ := vecmath.Vec{-0.3, 0.8, 0.1}
	return pairCase{
		densI: 1.2, densJ: 0.9,
		massI: 0.5, massJ: 0.7,
		pressI: 2.3, pressJ: -1.1,
		velI: vecmath.Vec{1, -0.5, 0.25}, velJ: vecmath.Vec{-0.2, 0.7, 0},
		viscI: 0.3, viscJ: 0.5,
		bulkI: 0.02, bulkJ: 0.03,
		bgI: 1.7, bgJ: 1.4,
		modBgI: 0.9, modBgJ: 1.3,
		dWij: -0.8, dWji: -0.6,
		modDWij: -0.5, modDWji: -0.4,
		modVelI: &modVelI, modVelJ: &modVelJ,
		eIJ:     vecmath.Vec{0.6, 0, 0.8},
		absDist: 0.4, kernelFac: 1.1,
	}
}

// Exchanging the roles of i and j while negating e_ij must reproduce the
// same force pair with the sides swapped: the discrete action-reaction law.
func TestPairwiseSymmetry(t *testing.T) {
	for _, kind := range Kinds() {
		f, err := New(kind)
		if err != nil {
			t.Fatal(err)
		}

		c := testCase()
		accI, accJ, err := evalAll(f, c)
		if err != nil {
			t.Fatalf("%s forward: %v", kind, err)
		}

		swpI, swpJ, err := evalAll(f, c.swapped())
		if err != nil {
			t.Fatalf("%s swapped: %v", kind, err)
		}

		for k := 0; k < 3; k++ {
			if math.Abs(accI[k]-swpJ[k]) > 1e-12 {
				t.Errorf("%s: acc_i[%d] %v != swapped acc_j %v", kind, k, accI[k], swpJ[k])
			}
			if math.Abs(accJ[k]-swpI[k]) > 1e-12 {
				t.Errorf("%s: acc_j[%d] %v != swapped acc_i %v", kind, k, accJ[k], swpI[k])
			}
		}
	}
}

// A nil output pointer suppresses that side's write; the other side must
// still be populated exactly as in a two-sided call.
func TestNilOutputs(t *testing.T) {
	for _, kind := range Kinds() {
		f, err := New(kind)
		if err != nil {
			t.Fatal(err)
		}
		c := testCase()

		var cij, cji float64
		f.SpecificCoefficient(c.densI, c.densJ, c.massI, c.massJ, c.dWij, c.dWji, &cij, &cji)

		var cijOnly float64
		f.SpecificCoefficient(c.densI, c.densJ, c.massI, c.massJ, c.dWij, c.dWji, &cijOnly, nil)
		if cijOnly != cij {
			t.Errorf("%s: one-sided coefficient %v != %v", kind, cijOnly, cij)
		}
		f.SpecificCoefficient(c.densI, c.densJ, c.massI, c.massJ, c.dWij, c.dWji, nil, nil)

		var both, only vecmath.Vec
		var bothJ vecmath.Vec
		f.PressureGradient(c.densI, c.densJ, c.pressI, c.pressJ, cij, cji, c.eIJ, &both, &bothJ)
		f.PressureGradient(c.densI, c.densJ, c.pressI, c.pressJ, cij, cji, c.eIJ, &only, nil)
		if both != only {
			t.Errorf("%s: pressure gradient one-sided %v != %v", kind, only, both)
		}

		both.Clear()
		only.Clear()
		if err := f.ShearForces(c.densI, c.densJ, c.velI, c.velJ, c.kernelFac,
			c.viscI, c.viscJ, c.bulkI, c.bulkJ, c.absDist, cij, cji, c.eIJ, &both, nil); err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if err := f.ShearForces(c.densI, c.densJ, c.velI, c.velJ, c.kernelFac,
			c.viscI, c.viscJ, c.bulkI, c.bulkJ, c.absDist, cij, cji, c.eIJ, nil, &only); err != nil {
			t.Fatalf("%s: %v", kind, err)
		}

		f.StandardBackgroundPressure(c.densI, c.densJ, c.bgI, c.bgJ, cij, cji, c.eIJ, nil, nil)
		f.GeneralizedBackgroundPressure(c.densI, c.densJ, c.massI, c.massJ,
			c.modBgI, c.modBgJ, c.modDWij, c.modDWji, c.eIJ, nil, nil)
		f.ModifiedVelocityContribution(c.densI, c.densJ, c.velI, c.velJ,
			c.modVelI, c.modVelJ, cij, cji, c.eIJ, nil, nil)
	}
}

// Accumulation is linear: the same call twice on a zeroed buffer yields
// exactly double the single-call result.
func TestAccumulationDoubling(t *testing.T) {
	for _, kind := range Kinds() {
		f, err := New(kind)
		if err != nil {
			t.Fatal(err)
		}
		c := testCase()

		var cij, cji float64
		f.SpecificCoefficient(c.densI, c.densJ, c.massI, c.massJ, c.dWij, c.dWji, &cij, &cji)

		var once, twice vecmath.Vec
		f.PressureGradient(c.densI, c.densJ, c.pressI, c.pressJ, cij, cji, c.eIJ, &once, nil)
		f.PressureGradient(c.densI, c.densJ, c.pressI, c.pressJ, cij, cji, c.eIJ, &twice, nil)
		f.PressureGradient(c.densI, c.densJ, c.pressI, c.pressJ, cij, cji, c.eIJ, &twice, nil)

		for k := 0; k < 3; k++ {
			if twice[k] != 2*once[k] {
				t.Errorf("%s: twice[%d] = %v, expected %v", kind, k, twice[k], 2*once[k])
			}
		}
	}
}
