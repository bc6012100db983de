// Package momentum implements the pairwise momentum-exchange formulations
// of a smoothed-particle-hydrodynamics solver.
//
// Each formulation implements the [Formulation] interface, defining the
// force contributions two interacting particles exert on each other:
//
//   - [Monaghan]: classical momentum equation with the artificial viscosity
//     split into diffusion and convection terms
//   - [Adami]: transport-velocity consistent momentum equation with
//     density-weighted pressure averaging
//
// Formulations are stateless strategy objects: select one with [New] at
// setup time, then invoke its methods once per interacting pair. All force
// methods accumulate into caller-owned acceleration buffers and preserve
// pairwise antisymmetry, the discrete form of Newton's third law.
//
// # Call Sequence
//
// For every pair, [Formulation.SpecificCoefficient] must run first; its two
// outputs feed every later term of that pair:
//
//	var cij, cji float64
//	f.SpecificCoefficient(di, dj, mi, mj, dWdrij, dWdrji, &cij, &cji)
//	f.PressureGradient(di, dj, pi, pj, cij, cji, eij, accI, accJ)
//
// # Thread Safety
//
// All methods are pure functions of their arguments; a single formulation
// value may be shared across goroutines. Races can only arise from two
// goroutines accumulating into the same acceleration buffer, which the
// caller must prevent.
package momentum
