// Copyright 2025 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
)

// Frustum makes m a perspective projection with the given bounds on
// the near plane. It maps depth to the [-1, 1] clip volume.
func (m *M4) Frustum(left, right, bottom, top, near, far float32) {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	nf := 1 / (near - far)
	*m = M4{
		{2 * near * rl, 0, 0, 0},
		{0, 2 * near * tb, 0, 0},
		{(right + left) * rl, (top + bottom) * tb, (far + near) * nf, -1},
		{0, 0, 2 * far * near * nf, 0},
	}
}

// Perspective makes m a symmetric perspective projection. fovy is
// the vertical field of view in radians and aspect the width to
// height ratio. It maps depth to the [-1, 1] clip volume.
// far may be +Inf, in which case the far plane is placed at
// infinity.
func (m *M4) Perspective(fovy, aspect, near, far float32) {
	f := float32(1 / math.Tan(float64(fovy)/2))
	*m = M4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, -1, -1},
		{0, 0, -2 * near, 0},
	}
	if !math.IsInf(float64(far), 1) {
		nf := 1 / (near - far)
		m[2][2] = (far + near) * nf
		m[3][2] = 2 * far * near * nf
	}
}

// PerspectiveZO is like Perspective but maps depth to the [0, 1]
// clip volume.
func (m *M4) PerspectiveZO(fovy, aspect, near, far float32) {
	f := float32(1 / math.Tan(float64(fovy)/2))
	*m = M4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, -1, -1},
		{0, 0, -near, 0},
	}
	if !math.IsInf(float64(far), 1) {
		nf := 1 / (near - far)
		m[2][2] = far * nf
		m[3][2] = far * near * nf
	}
}

// PerspectiveFOV makes m a perspective projection from four
// per-edge field of view angles, given in degrees. The frustum
// need not be symmetric. It maps depth to the [0, 1] clip volume.
func (m *M4) PerspectiveFOV(up, down, left, right, near, far float32) {
	upTan := float32(math.Tan(float64(DegToRad(up))))
	downTan := float32(math.Tan(float64(DegToRad(down))))
	leftTan := float32(math.Tan(float64(DegToRad(left))))
	rightTan := float32(math.Tan(float64(DegToRad(right))))
	xScale := 2 / (leftTan + rightTan)
	yScale := 2 / (upTan + downTan)
	nf := 1 / (near - far)
	*m = M4{
		{xScale, 0, 0, 0},
		{0, yScale, 0, 0},
		{-(leftTan - rightTan) * xScale / 2, (upTan - downTan) * yScale / 2, far * nf, -1},
		{0, 0, far * near * nf, 0},
	}
}

// Ortho makes m an orthographic projection with the given bounds.
// It maps depth to the [-1, 1] clip volume.
func (m *M4) Ortho(left, right, bottom, top, near, far float32) {
	lr := 1 / (left - right)
	bt := 1 / (bottom - top)
	nf := 1 / (near - far)
	*m = M4{
		{-2 * lr, 0, 0, 0},
		{0, -2 * bt, 0, 0},
		{0, 0, 2 * nf, 0},
		{(left + right) * lr, (bottom + top) * bt, (far + near) * nf, 1},
	}
}

// OrthoZO is like Ortho but maps depth to the [0, 1] clip volume.
func (m *M4) OrthoZO(left, right, bottom, top, near, far float32) {
	lr := 1 / (left - right)
	bt := 1 / (bottom - top)
	nf := 1 / (near - far)
	*m = M4{
		{-2 * lr, 0, 0, 0},
		{0, -2 * bt, 0, 0},
		{0, 0, nf, 0},
		{(left + right) * lr, (bottom + top) * bt, near * nf, 1},
	}
}

// LookAt makes m a view matrix for a camera placed at eye and
// facing center, with up orienting the vertical.
// When eye and center coincide within Epsilon on every axis, m is
// set to the identity instead.
func (m *M4) LookAt(center, eye, up *V3) {
	var d V3
	d.Sub(eye, center)
	if abs(d[0]) < Epsilon && abs(d[1]) < Epsilon && abs(d[2]) < Epsilon {
		m.I()
		return
	}
	var z V3
	z.Scale(1/d.Len(), &d)
	var x V3
	x.Cross(up, &z)
	if l := x.Len(); l == 0 {
		x = V3{}
	} else {
		x.Scale(1/l, &x)
	}
	var y V3
	y.Cross(&z, &x)
	if l := y.Len(); l == 0 {
		y = V3{}
	} else {
		y.Scale(1/l, &y)
	}
	*m = M4{
		{x[0], y[0], z[0], 0},
		{x[1], y[1], z[1], 0},
		{x[2], y[2], z[2], 0},
		{-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1},
	}
}

// TargetTo makes m the world transform that orients an object at
// eye towards center. Unlike LookAt, the translation of m is the
// eye position itself.
func (m *M4) TargetTo(eye, center, up *V3) {
	var z V3
	z.Sub(eye, center)
	if l := z.Dot(&z); l > 0 {
		z.Scale(1/float32(math.Sqrt(float64(l))), &z)
	}
	var x V3
	x.Cross(up, &z)
	if l := x.Dot(&x); l > 0 {
		x.Scale(1/float32(math.Sqrt(float64(l))), &x)
	}
	var y V3
	y.Cross(&z, &x)
	*m = M4{
		{x[0], x[1], x[2], 0},
		{y[0], y[1], y[2], 0},
		{z[0], z[1], z[2], 0},
		{eye[0], eye[1], eye[2], 1},
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
