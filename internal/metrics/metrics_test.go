package metrics

import (
	"math"
	"testing"

	"github.com/mwerner/sphpair/internal/vecmath"
)

func TestNetForceCancellation(t *testing.T) {
	m := NewNetForce()

	// equal and opposite forces on equal masses cancel exactly
	m.Observe(2.0, vecmath.Vec{1.5, -0.5, 0.25})
	m.Observe(2.0, vecmath.Vec{-1.5, 0.5, -0.25})

	if m.Value() != 0 {
		t.Errorf("expected zero residual, got %v", m.Value())
	}
}

func TestNetForceResidual(t *testing.T) {
	m := NewNetForce()

	m.Observe(1.0, vecmath.Vec{3, 0, 0})
	m.Observe(2.0, vecmath.Vec{0, 2, 0})

	want := math.Sqrt(9 + 16)
	if math.Abs(m.Value()-want) > 1e-15 {
		t.Errorf("expected %v, got %v", want, m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestPeakAcceleration(t *testing.T) {
	m := NewPeakAcceleration()

	m.Observe(1.0, vecmath.Vec{3, 4, 0})
	m.Observe(1.0, vecmath.Vec{1, 0, 0})

	if math.Abs(m.Value()-5) > 1e-15 {
		t.Errorf("expected 5, got %v", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}
