// Copyright 2025 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"errors"
	"math"
)

// ErrZeroAxis means that a rotation axis has no direction.
var ErrZeroAxis = errors.New("linear: zero-length rotation axis")

// Translate makes m a translation matrix.
func (m *M4) Translate(x, y, z float32) {
	*m = M4{{1}, {0, 1}, {0, 0, 1}, {x, y, z, 1}}
}

// Scale makes m a scaling matrix.
func (m *M4) Scale(x, y, z float32) {
	*m = M4{{x}, {0, y}, {0, 0, z}, {0, 0, 0, 1}}
}

// Rotate makes m a rotation of angle radians around axis.
// axis need not be normalized. It returns ErrZeroAxis, leaving m
// unchanged, when the length of axis is below Epsilon.
func (m *M4) Rotate(angle float32, axis *V3) error {
	l := axis.Len()
	if l < Epsilon {
		return ErrZeroAxis
	}
	x, y, z := axis[0]/l, axis[1]/l, axis[2]/l
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)
	t := 1 - c
	*m = M4{
		{x*x*t + c, y*x*t + z*s, z*x*t - y*s, 0},
		{x*y*t - z*s, y*y*t + c, z*y*t + x*s, 0},
		{x*z*t + y*s, y*z*t - x*s, z*z*t + c, 0},
		{0, 0, 0, 1},
	}
	return nil
}

// RotateX makes m a rotation of angle radians around the x axis.
func (m *M4) RotateX(angle float32) {
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)
	*m = M4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateY makes m a rotation of angle radians around the y axis.
func (m *M4) RotateY(angle float32) {
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)
	*m = M4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateZ makes m a rotation of angle radians around the z axis.
func (m *M4) RotateZ(angle float32) {
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)
	*m = M4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// RotateQ makes m the rotation of quaternion q.
// q must be normalized.
func (m *M4) RotateQ(q *Q) {
	x2 := q.V[0] + q.V[0]
	y2 := q.V[1] + q.V[1]
	z2 := q.V[2] + q.V[2]
	xx := q.V[0] * x2
	xy := q.V[0] * y2
	xz := q.V[0] * z2
	yy := q.V[1] * y2
	yz := q.V[1] * z2
	zz := q.V[2] * z2
	wx := q.R * x2
	wy := q.R * y2
	wz := q.R * z2
	*m = M4{
		{1 - yy - zz, xy + wz, xz - wy, 0},
		{xy - wz, 1 - xx - zz, yz + wx, 0},
		{xz + wy, yz - wx, 1 - xx - yy, 0},
		{0, 0, 0, 1},
	}
}

// TranslateRotate makes m the transform that rotates by q and then
// translates by t.
func (m *M4) TranslateRotate(q *Q, t *V3) {
	m.RotateQ(q)
	m[3] = V4{t[0], t[1], t[2], 1}
}

// Compose makes m the transform that scales by s, rotates by q and
// then translates by t. Each basis column is scaled by its own
// component of s.
func (m *M4) Compose(q *Q, t, s *V3) {
	m.RotateQ(q)
	for i := range s {
		m[i].Scale(s[i], &m[i])
	}
	m[3] = V4{t[0], t[1], t[2], 1}
}

// ComposeAt is like Compose with the rotation and scaling pivoting
// around point o instead of the local origin.
func (m *M4) ComposeAt(q *Q, t, s, o *V3) {
	m.Compose(q, t, s)
	for j := range o {
		m[3][j] = t[j] + o[j] - (m[0][j]*o[0] + m[1][j]*o[1] + m[2][j]*o[2])
	}
}

// TranslateBy multiplies m on the right by a translation of v.
func (m *M4) TranslateBy(v *V3) {
	var c, u V4
	c = m[3]
	for i := range v {
		u.Scale(v[i], &m[i])
		c.Add(&c, &u)
	}
	m[3] = c
}

// ScaleBy multiplies m on the right by a scaling of v.
func (m *M4) ScaleBy(v *V3) {
	for i := range v {
		m[i].Scale(v[i], &m[i])
	}
}

// RotateBy multiplies m on the right by a rotation of angle radians
// around axis. The fourth column is left untouched.
// It returns ErrZeroAxis, leaving m unchanged, when the length of
// axis is below Epsilon.
func (m *M4) RotateBy(angle float32, axis *V3) error {
	var r M4
	if err := r.Rotate(angle, axis); err != nil {
		return err
	}
	var n [3]V4
	for i := range n {
		var u V4
		for k := 0; k < 3; k++ {
			u.Scale(r[i][k], &m[k])
			n[i].Add(&n[i], &u)
		}
	}
	m[0], m[1], m[2] = n[0], n[1], n[2]
	return nil
}

// Translation returns the translation of m.
func (m *M4) Translation() V3 {
	return V3{m[3][0], m[3][1], m[3][2]}
}

// Scaling returns the scale of m, taken as the length of each basis
// column. Reflections cannot be recovered: the result is always
// non-negative regardless of the sign of the original scale.
func (m *M4) Scaling() V3 {
	var s V3
	for i := range s {
		v := V3{m[i][0], m[i][1], m[i][2]}
		s[i] = v.Len()
	}
	return s
}

// Rotation sets q to contain the rotation of m, which must be a
// composition of rotation, translation and positive scaling.
// A zero-length basis column makes the result non-finite.
func (m *M4) Rotation(q *Q) {
	s := m.Scaling()
	var n M4
	for i := range s {
		n[i].Scale(1/s[i], &m[i])
	}
	q.FromM4(&n)
}

// Decompose sets q, t and s to contain the rotation, translation
// and scale of m. It is equivalent to calling Rotation, Translation
// and Scaling, in a single pass.
// The rotation is recovered up to sign: q and -q encode the same
// rotation and either may be produced.
func (m *M4) Decompose(q *Q, t, s *V3) {
	*t = m.Translation()
	*s = m.Scaling()
	var n M4
	for i := range s {
		n[i].Scale(1/s[i], &m[i])
	}
	q.FromM4(&n)
}
