// Copyright 2025 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"errors"
)

// ErrSingular means that a matrix has no inverse.
var ErrSingular = errors.New("linear: singular matrix")

// M2 is a column-major 2x2 matrix of float32.
type M2 [2]V2

// I makes m an identity matrix.
func (m *M2) I() { *m = M2{{1}, {0, 1}} }

// Mul sets m to contain l ⋅ r.
func (m *M2) Mul(l, r *M2) {
	n := M2{}
	for i := range n {
		for j := range n {
			for k := range n {
				n[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = n
}

// Transpose sets m to contain the transpose of n.
func (m *M2) Transpose(n *M2) {
	*m = M2{
		{n[0][0], n[1][0]},
		{n[0][1], n[1][1]},
	}
}

// Det returns the determinant of m.
func (m *M2) Det() float32 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Invert sets m to contain the inverse of n.
// It returns ErrSingular, leaving m unchanged, when the determinant
// of n is exactly zero.
func (m *M2) Invert(n *M2) error {
	det := n.Det()
	if det == 0 {
		return ErrSingular
	}
	idet := 1 / det
	*m = M2{
		{n[1][1] * idet, -n[0][1] * idet},
		{-n[1][0] * idet, n[0][0] * idet},
	}
	return nil
}

// M3 is a column-major 3x3 matrix of float32.
type M3 [3]V3

// I makes m an identity matrix.
func (m *M3) I() { *m = M3{{1}, {0, 1}, {0, 0, 1}} }

// Mul sets m to contain l ⋅ r.
func (m *M3) Mul(l, r *M3) {
	n := M3{}
	for i := range n {
		for j := range n {
			for k := range n {
				n[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = n
}

// Transpose sets m to contain the transpose of n.
func (m *M3) Transpose(n *M3) {
	t := M3{}
	for i := range t {
		t[i][i] = n[i][i]
		for j := i + 1; j < len(t); j++ {
			t[i][j], t[j][i] = n[j][i], n[i][j]
		}
	}
	*m = t
}

// Det returns the determinant of m.
func (m *M3) Det() float32 {
	s0 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	s1 := m[1][0]*m[2][2] - m[1][2]*m[2][0]
	s2 := m[1][0]*m[2][1] - m[1][1]*m[2][0]
	return m[0][0]*s0 - m[0][1]*s1 + m[0][2]*s2
}

// Invert sets m to contain the inverse of n.
// It returns ErrSingular, leaving m unchanged, when the determinant
// of n is exactly zero.
func (m *M3) Invert(n *M3) error {
	s0 := n[1][1]*n[2][2] - n[1][2]*n[2][1]
	s1 := n[1][0]*n[2][2] - n[1][2]*n[2][0]
	s2 := n[1][0]*n[2][1] - n[1][1]*n[2][0]
	det := n[0][0]*s0 - n[0][1]*s1 + n[0][2]*s2
	if det == 0 {
		return ErrSingular
	}
	idet := 1 / det
	*m = M3{
		{
			s0 * idet,
			-(n[0][1]*n[2][2] - n[0][2]*n[2][1]) * idet,
			(n[0][1]*n[1][2] - n[0][2]*n[1][1]) * idet,
		},
		{
			-s1 * idet,
			(n[0][0]*n[2][2] - n[0][2]*n[2][0]) * idet,
			-(n[0][0]*n[1][2] - n[0][2]*n[1][0]) * idet,
		},
		{
			s2 * idet,
			-(n[0][0]*n[2][1] - n[0][1]*n[2][0]) * idet,
			(n[0][0]*n[1][1] - n[0][1]*n[1][0]) * idet,
		},
	}
	return nil
}

// M4 is a column-major 4x4 matrix of float32.
type M4 [4]V4

// I makes m an identity matrix.
func (m *M4) I() { *m = M4{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}} }

// Mul sets m to contain l ⋅ r.
func (m *M4) Mul(l, r *M4) {
	n := M4{}
	for i := range n {
		for j := range n {
			for k := range n {
				n[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = n
}

// Transpose sets m to contain the transpose of n.
func (m *M4) Transpose(n *M4) {
	t := M4{}
	for i := range t {
		t[i][i] = n[i][i]
		for j := i + 1; j < len(t); j++ {
			t[i][j], t[j][i] = n[j][i], n[i][j]
		}
	}
	*m = t
}

// Det returns the determinant of m.
func (m *M4) Det() float32 {
	s0 := m[0][0]*m[1][1] - m[0][1]*m[1][0]
	s1 := m[0][0]*m[1][2] - m[0][2]*m[1][0]
	s2 := m[0][0]*m[1][3] - m[0][3]*m[1][0]
	s3 := m[0][1]*m[1][2] - m[0][2]*m[1][1]
	s4 := m[0][1]*m[1][3] - m[0][3]*m[1][1]
	s5 := m[0][2]*m[1][3] - m[0][3]*m[1][2]
	c0 := m[2][0]*m[3][1] - m[2][1]*m[3][0]
	c1 := m[2][0]*m[3][2] - m[2][2]*m[3][0]
	c2 := m[2][0]*m[3][3] - m[2][3]*m[3][0]
	c3 := m[2][1]*m[3][2] - m[2][2]*m[3][1]
	c4 := m[2][1]*m[3][3] - m[2][3]*m[3][1]
	c5 := m[2][2]*m[3][3] - m[2][3]*m[3][2]
	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// Invert sets m to contain the inverse of n.
// It returns ErrSingular, leaving m unchanged, when the determinant
// of n is exactly zero. No pivoting is done, so near-singular input
// degrades accuracy rather than failing.
func (m *M4) Invert(n *M4) error {
	s0 := n[0][0]*n[1][1] - n[0][1]*n[1][0]
	s1 := n[0][0]*n[1][2] - n[0][2]*n[1][0]
	s2 := n[0][0]*n[1][3] - n[0][3]*n[1][0]
	s3 := n[0][1]*n[1][2] - n[0][2]*n[1][1]
	s4 := n[0][1]*n[1][3] - n[0][3]*n[1][1]
	s5 := n[0][2]*n[1][3] - n[0][3]*n[1][2]
	c0 := n[2][0]*n[3][1] - n[2][1]*n[3][0]
	c1 := n[2][0]*n[3][2] - n[2][2]*n[3][0]
	c2 := n[2][0]*n[3][3] - n[2][3]*n[3][0]
	c3 := n[2][1]*n[3][2] - n[2][2]*n[3][1]
	c4 := n[2][1]*n[3][3] - n[2][3]*n[3][1]
	c5 := n[2][2]*n[3][3] - n[2][3]*n[3][2]
	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return ErrSingular
	}
	idet := 1 / det
	*m = M4{
		{
			(c5*n[1][1] - c4*n[1][2] + c3*n[1][3]) * idet,
			(-c5*n[0][1] + c4*n[0][2] - c3*n[0][3]) * idet,
			(s5*n[3][1] - s4*n[3][2] + s3*n[3][3]) * idet,
			(-s5*n[2][1] + s4*n[2][2] - s3*n[2][3]) * idet,
		},
		{
			(-c5*n[1][0] + c2*n[1][2] - c1*n[1][3]) * idet,
			(c5*n[0][0] - c2*n[0][2] + c1*n[0][3]) * idet,
			(-s5*n[3][0] + s2*n[3][2] - s1*n[3][3]) * idet,
			(s5*n[2][0] - s2*n[2][2] + s1*n[2][3]) * idet,
		},
		{
			(c4*n[1][0] - c2*n[1][1] + c0*n[1][3]) * idet,
			(-c4*n[0][0] + c2*n[0][1] - c0*n[0][3]) * idet,
			(s4*n[3][0] - s2*n[3][1] + s0*n[3][3]) * idet,
			(-s4*n[2][0] + s2*n[2][1] - s0*n[2][3]) * idet,
		},
		{
			(-c3*n[1][0] + c1*n[1][1] - c0*n[1][2]) * idet,
			(c3*n[0][0] - c1*n[0][1] + c0*n[0][2]) * idet,
			(-s3*n[3][0] + s1*n[3][1] - s0*n[3][2]) * idet,
			(s3*n[2][0] - s1*n[2][1] + s0*n[2][2]) * idet,
		},
	}
	return nil
}

// Adjoint sets m to contain the adjugate of n, i.e. the inverse
// scaled by the determinant. Unlike Invert, it is defined for
// singular matrices.
func (m *M4) Adjoint(n *M4) {
	s0 := n[0][0]*n[1][1] - n[0][1]*n[1][0]
	s1 := n[0][0]*n[1][2] - n[0][2]*n[1][0]
	s2 := n[0][0]*n[1][3] - n[0][3]*n[1][0]
	s3 := n[0][1]*n[1][2] - n[0][2]*n[1][1]
	s4 := n[0][1]*n[1][3] - n[0][3]*n[1][1]
	s5 := n[0][2]*n[1][3] - n[0][3]*n[1][2]
	c0 := n[2][0]*n[3][1] - n[2][1]*n[3][0]
	c1 := n[2][0]*n[3][2] - n[2][2]*n[3][0]
	c2 := n[2][0]*n[3][3] - n[2][3]*n[3][0]
	c3 := n[2][1]*n[3][2] - n[2][2]*n[3][1]
	c4 := n[2][1]*n[3][3] - n[2][3]*n[3][1]
	c5 := n[2][2]*n[3][3] - n[2][3]*n[3][2]
	*m = M4{
		{
			c5*n[1][1] - c4*n[1][2] + c3*n[1][3],
			-c5*n[0][1] + c4*n[0][2] - c3*n[0][3],
			s5*n[3][1] - s4*n[3][2] + s3*n[3][3],
			-s5*n[2][1] + s4*n[2][2] - s3*n[2][3],
		},
		{
			-c5*n[1][0] + c2*n[1][2] - c1*n[1][3],
			c5*n[0][0] - c2*n[0][2] + c1*n[0][3],
			-s5*n[3][0] + s2*n[3][2] - s1*n[3][3],
			s5*n[2][0] - s2*n[2][2] + s1*n[2][3],
		},
		{
			c4*n[1][0] - c2*n[1][1] + c0*n[1][3],
			-c4*n[0][0] + c2*n[0][1] - c0*n[0][3],
			s4*n[3][0] - s2*n[3][1] + s0*n[3][3],
			-s4*n[2][0] + s2*n[2][1] - s0*n[2][3],
		},
		{
			-c3*n[1][0] + c1*n[1][1] - c0*n[1][2],
			c3*n[0][0] - c1*n[0][1] + c0*n[0][2],
			-s3*n[3][0] + s1*n[3][1] - s0*n[3][2],
			s3*n[2][0] - s1*n[2][1] + s0*n[2][2],
		},
	}
}
