// Package vecmath provides fixed-size 3-component vector arithmetic for
// particle pair computations. All operations are allocation-free; the
// pointer methods mutate in place, the free functions return new values.
package vecmath

import "math"

// Vec is a 3-component vector.
type Vec [3]float64

// Set overwrites v with w.
func (v *Vec) Set(w Vec) {
	v[0] = w[0]
	v[1] = w[1]
	v[2] = w[2]
}

// Add accumulates w onto v.
func (v *Vec) Add(w Vec) {
	v[0] += w[0]
	v[1] += w[1]
	v[2] += w[2]
}

// Sub subtracts w from v in place.
func (v *Vec) Sub(w Vec) {
	v[0] -= w[0]
	v[1] -= w[1]
	v[2] -= w[2]
}

// AddScale accumulates s*w onto v.
func (v *Vec) AddScale(s float64, w Vec) {
	v[0] += s * w[0]
	v[1] += s * w[1]
	v[2] += s * w[2]
}

// Clear zeroes all components.
func (v *Vec) Clear() {
	v[0] = 0
	v[1] = 0
	v[2] = 0
}

// Dot returns the inner product of v and w.
func (v Vec) Dot(w Vec) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Scale returns s*v.
func (v Vec) Scale(s float64) Vec {
	return Vec{s * v[0], s * v[1], s * v[2]}
}

// Sub returns a - b.
func Sub(a, b Vec) Vec {
	return Vec{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Square returns x*x, avoiding a math.Pow call for the common
// integer-power-two case in the force formulas.
func Square(x float64) float64 {
	return x * x
}
