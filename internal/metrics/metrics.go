// Package metrics provides diagnostics over a finished acceleration field.
package metrics

import "github.com/mwerner/sphpair/internal/vecmath"

// Metric observes per-particle results and reduces them to one number.
type Metric interface {
	Name() string
	Observe(mass float64, acc vecmath.Vec)
	Value() float64
	Reset()
}

// NetForce accumulates the momentum-balance residual ||sum of m*a||. For a
// symmetric kernel the pairwise forces cancel and the value is near zero;
// growth signals a broken action-reaction pairing upstream.
type NetForce struct {
	sum vecmath.Vec
}

func NewNetForce() *NetForce {
	return &NetForce{}
}

func (n *NetForce) Name() string { return "net_force" }

func (n *NetForce) Observe(mass float64, acc vecmath.Vec) {
	n.sum.AddScale(mass, acc)
}

func (n *NetForce) Value() float64 {
	return n.sum.Norm()
}

func (n *NetForce) Reset() {
	n.sum.Clear()
}

// PeakAcceleration tracks the largest acceleration magnitude seen, a quick
// stability indicator for timestep selection.
type PeakAcceleration struct {
	max float64
}

func NewPeakAcceleration() *PeakAcceleration {
	return &PeakAcceleration{}
}

func (p *PeakAcceleration) Name() string { return "peak_acceleration" }

func (p *PeakAcceleration) Observe(mass float64, acc vecmath.Vec) {
	if norm := acc.Norm(); norm > p.max {
		p.max = norm
	}
}

func (p *PeakAcceleration) Value() float64 {
	return p.max
}

func (p *PeakAcceleration) Reset() {
	p.max = 0
}
