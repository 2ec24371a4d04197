// Copyright 2025 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
	"testing"
)

func TestFrustum(t *testing.T) {
	var m M4
	m.Frustum(-1, 1, -1, 1, 1, 100)
	want := M4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, -101.0 / 99, -1},
		{0, 0, -200.0 / 99, 0},
	}
	if !nearM4(&m, &want, 1e-5) {
		t.Fatalf("M4.Frustum\nhave %v\nwant %v", m, want)
	}

	// A symmetric frustum is a perspective projection.
	var p M4
	p.Perspective(math.Pi/2, 1, 1, 100)
	if !nearM4(&m, &p, 1e-5) {
		t.Fatalf("M4.Frustum\nhave %v\nwant %v", m, p)
	}
}

func TestPerspective(t *testing.T) {
	var m M4
	m.Perspective(math.Pi/2, 2, 0.5, 64)
	want := M4{
		{0.5, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, -64.5 / 63.5, -1},
		{0, 0, -64.0 / 63.5, 0},
	}
	if !nearM4(&m, &want, 1e-5) {
		t.Fatalf("M4.Perspective\nhave %v\nwant %v", m, want)
	}

	// The near plane maps to -1 and the far plane to 1.
	v := V4{0, 0, -0.5, 1}
	v.Mul(&m, &v)
	if z := v[2] / v[3]; !nearF(z, -1, 1e-5) {
		t.Fatalf("M4.Perspective: near depth\nhave %v\nwant -1", z)
	}
	v = V4{0, 0, -64, 1}
	v.Mul(&m, &v)
	if z := v[2] / v[3]; !nearF(z, 1, 1e-5) {
		t.Fatalf("M4.Perspective: far depth\nhave %v\nwant 1", z)
	}
}

func TestPerspectiveZO(t *testing.T) {
	var m M4
	m.PerspectiveZO(math.Pi/2, 2, 0.5, 64)

	// The near plane maps to 0 and the far plane to 1.
	v := V4{0, 0, -0.5, 1}
	v.Mul(&m, &v)
	if z := v[2] / v[3]; !nearF(z, 0, 1e-5) {
		t.Fatalf("M4.PerspectiveZO: near depth\nhave %v\nwant 0", z)
	}
	v = V4{0, 0, -64, 1}
	v.Mul(&m, &v)
	if z := v[2] / v[3]; !nearF(z, 1, 1e-5) {
		t.Fatalf("M4.PerspectiveZO: far depth\nhave %v\nwant 1", z)
	}
}

func TestPerspectiveInf(t *testing.T) {
	inf := float32(math.Inf(1))
	var m M4
	m.Perspective(math.Pi/2, 1, 1, inf)
	if m[2][2] != -1 || m[3][2] != -2 {
		t.Fatalf("M4.Perspective +Inf far\nhave %v, %v\nwant -1, -2", m[2][2], m[3][2])
	}
	m.PerspectiveZO(math.Pi/2, 1, 1, inf)
	if m[2][2] != -1 || m[3][2] != -1 {
		t.Fatalf("M4.PerspectiveZO +Inf far\nhave %v, %v\nwant -1, -1", m[2][2], m[3][2])
	}
}

func TestPerspectiveFOV(t *testing.T) {
	// Symmetric angles match PerspectiveZO.
	var m, p M4
	m.PerspectiveFOV(22.5, 22.5, 30, 30, 0.5, 64)
	fovy := DegToRad(45)
	aspect := float32(math.Tan(float64(DegToRad(30)))) / float32(math.Tan(float64(DegToRad(22.5))))
	p.PerspectiveZO(fovy, aspect, 0.5, 64)
	if !nearM4(&m, &p, 1e-5) {
		t.Fatalf("M4.PerspectiveFOV\nhave %v\nwant %v", m, p)
	}

	// Asymmetric angles shear the frustum off center.
	m.PerspectiveFOV(40, 20, 30, 10, 0.5, 64)
	if m[2][0] == 0 || m[2][1] == 0 {
		t.Fatalf("M4.PerspectiveFOV: centered asymmetric frustum\nhave %v", m)
	}
}

func TestOrtho(t *testing.T) {
	var m M4
	m.Ortho(-2, 2, -1, 1, 0, 10)
	want := M4{
		{0.5, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, -0.2, 0},
		{0, 0, -1, 1},
	}
	if !nearM4(&m, &want, 1e-5) {
		t.Fatalf("M4.Ortho\nhave %v\nwant %v", m, want)
	}

	// Depth range [-near, -far] maps to [-1, 1] (or [0, 1] for ZO).
	v := V4{0, 0, -10, 1}
	v.Mul(&m, &v)
	if !nearF(v[2], 1, 1e-5) {
		t.Fatalf("M4.Ortho: far depth\nhave %v\nwant 1", v[2])
	}
	m.OrthoZO(-2, 2, -1, 1, 0, 10)
	v = V4{0, 0, -10, 1}
	v.Mul(&m, &v)
	if !nearF(v[2], 1, 1e-5) {
		t.Fatalf("M4.OrthoZO: far depth\nhave %v\nwant 1", v[2])
	}
	v = V4{0, 0, 0, 1}
	v.Mul(&m, &v)
	if !nearF(v[2], 0, 1e-5) {
		t.Fatalf("M4.OrthoZO: near depth\nhave %v\nwant 0", v[2])
	}
}

func TestLookAt(t *testing.T) {
	// A camera at the origin facing -z is the identity view.
	var m, id M4
	id.I()
	m.LookAt(&V3{0, 0, -1}, &V3{}, &V3{0, 1, 0})
	if m != id {
		t.Fatalf("M4.LookAt\nhave %v\nwant identity", m)
	}

	// The view transform takes center to a point on the -z axis.
	center := V3{3, -2, 5}
	eye := V3{1, 2, 4}
	m.LookAt(&center, &eye, &V3{0, 1, 0})
	v := V4{center[0], center[1], center[2], 1}
	v.Mul(&m, &v)
	var d V3
	d.Sub(&center, &eye)
	if !nearF(v[0], 0, 1e-5) || !nearF(v[1], 0, 1e-5) || !nearF(v[2], -d.Len(), 1e-5) {
		t.Fatalf("M4.LookAt: transformed center\nhave %v\nwant [0 0 %v]", v, -d.Len())
	}
	// And the eye to the origin.
	v = V4{eye[0], eye[1], eye[2], 1}
	v.Mul(&m, &v)
	if !nearF(v[0], 0, 1e-5) || !nearF(v[1], 0, 1e-5) || !nearF(v[2], 0, 1e-5) {
		t.Fatalf("M4.LookAt: transformed eye\nhave %v\nwant origin", v)
	}
}

func TestLookAtCoincident(t *testing.T) {
	var m, id M4
	id.I()
	p := V3{1, 2, 3}
	m.LookAt(&p, &p, &V3{0, 1, 0})
	if m != id {
		t.Fatalf("M4.LookAt coincident\nhave %v\nwant identity", m)
	}
}

func TestTargetTo(t *testing.T) {
	eye := V3{-1, 3, 2}
	center := V3{4, 0, -5}
	up := V3{0, 1, 0}
	var m M4
	m.TargetTo(&eye, &center, &up)

	// The translation is the eye itself.
	if tv := m.Translation(); tv != eye {
		t.Fatalf("M4.TargetTo: translation\nhave %v\nwant %v", tv, eye)
	}
	// The z basis points from center to eye.
	var z V3
	z.Sub(&eye, &center)
	z.Norm(&z)
	b := V3{m[2][0], m[2][1], m[2][2]}
	if !nearV3(&b, &z, 1e-5) {
		t.Fatalf("M4.TargetTo: z basis\nhave %v\nwant %v", b, z)
	}
	// The basis is orthonormal.
	for i := 0; i < 3; i++ {
		u := V3{m[i][0], m[i][1], m[i][2]}
		if !nearF(u.Len(), 1, 1e-5) {
			t.Fatalf("M4.TargetTo: basis %d not unit\nhave %v", i, u)
		}
		for j := i + 1; j < 3; j++ {
			w := V3{m[j][0], m[j][1], m[j][2]}
			if d := u.Dot(&w); !nearF(d, 0, 1e-5) {
				t.Fatalf("M4.TargetTo: basis %d ⋅ %d\nhave %v\nwant 0", i, j, d)
			}
		}
	}
}
