// Copyright 2025 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
)

// Q is a quaternion of float32.
// It represents a rotation when normalized. The zero Q is not a
// valid rotation; use I to obtain the identity.
type Q struct {
	V V3
	R float32
}

// I makes q an identity quaternion.
func (q *Q) I() { *q = Q{R: 1} }

// Mul sets q to contain l ⋅ r.
func (q *Q) Mul(l, r *Q) {
	var v, w V3
	v.Scale(r.R, &l.V)
	w.Scale(l.R, &r.V)
	v.Add(&v, &w)
	w.Cross(&l.V, &r.V)
	d := l.V.Dot(&r.V)
	q.V.Add(&v, &w)
	q.R = l.R*r.R - d
}

// Conj sets q to contain the conjugate of p.
func (q *Q) Conj(p *Q) {
	q.V.Scale(-1, &p.V)
	q.R = p.R
}

// Dot returns q ⋅ p.
func (q *Q) Dot(p *Q) float32 {
	return q.V.Dot(&p.V) + q.R*p.R
}

// Len returns the length of q.
func (q *Q) Len() float32 {
	return float32(math.Sqrt(float64(q.Dot(q))))
}

// Norm sets q to contain p normalized.
func (q *Q) Norm(p *Q) {
	s := 1 / p.Len()
	q.V.Scale(s, &p.V)
	q.R = s * p.R
}

// Rotate makes q a rotation of angle radians around axis.
// axis must be of unit length.
func (q *Q) Rotate(angle float32, axis *V3) {
	sin, cos := math.Sincos(float64(angle) / 2)
	q.V.Scale(float32(sin), axis)
	q.R = float32(cos)
}

// Slerp sets q to contain the spherical interpolation of l and r
// at t. Interpolation takes the shortest arc, so the result may
// correspond to -r rather than r at t = 1.
func (q *Q) Slerp(l, r *Q, t float32) {
	p := *r
	cos := l.Dot(r)
	if cos < 0 {
		cos = -cos
		p.V.Scale(-1, &p.V)
		p.R = -p.R
	}
	var s0, s1 float32
	if 1-cos > Epsilon {
		omega := math.Acos(float64(cos))
		sin := math.Sin(omega)
		s0 = float32(math.Sin((1 - float64(t)) * omega))
		s1 = float32(math.Sin(float64(t) * omega))
		s0 /= float32(sin)
		s1 /= float32(sin)
	} else {
		// Nearly parallel; sin omega would vanish.
		s0 = 1 - t
		s1 = t
	}
	var v, w V3
	v.Scale(s0, &l.V)
	w.Scale(s1, &p.V)
	q.V.Add(&v, &w)
	q.R = s0*l.R + s1*p.R
}

// FromM4 makes q the rotation of m's upper-left 3x3 block,
// which must contain an unscaled rotation.
// The branch taken depends on which of the trace or diagonal
// entries dominates, so the divisor stays away from zero even
// for rotations near 180 degrees.
func (q *Q) FromM4(m *M4) {
	trace := m[0][0] + m[1][1] + m[2][2]
	switch {
	case trace > 0:
		s := float32(math.Sqrt(float64(trace+1))) * 2
		q.V[0] = (m[1][2] - m[2][1]) / s
		q.V[1] = (m[2][0] - m[0][2]) / s
		q.V[2] = (m[0][1] - m[1][0]) / s
		q.R = s / 4
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := float32(math.Sqrt(float64(1+m[0][0]-m[1][1]-m[2][2]))) * 2
		q.V[0] = s / 4
		q.V[1] = (m[0][1] + m[1][0]) / s
		q.V[2] = (m[2][0] + m[0][2]) / s
		q.R = (m[1][2] - m[2][1]) / s
	case m[1][1] > m[2][2]:
		s := float32(math.Sqrt(float64(1+m[1][1]-m[0][0]-m[2][2]))) * 2
		q.V[0] = (m[0][1] + m[1][0]) / s
		q.V[1] = s / 4
		q.V[2] = (m[1][2] + m[2][1]) / s
		q.R = (m[2][0] - m[0][2]) / s
	default:
		s := float32(math.Sqrt(float64(1+m[2][2]-m[0][0]-m[1][1]))) * 2
		q.V[0] = (m[2][0] + m[0][2]) / s
		q.V[1] = (m[1][2] + m[2][1]) / s
		q.V[2] = s / 4
		q.R = (m[0][1] - m[1][0]) / s
	}
}
