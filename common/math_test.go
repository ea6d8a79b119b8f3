package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const tol = 1e-4

func TestLookAtQuatFacesTarget(t *testing.T) {
	cases := []struct {
		name string
		eye  mgl32.Vec3
	}{
		{"front", mgl32.Vec3{0, 0, 10}},
		{"right", mgl32.Vec3{10, 0, 0}},
		{"oblique", mgl32.Vec3{0, 10, 20}},
		{"straight down", mgl32.Vec3{0, 10, 0}},
		{"straight up", mgl32.Vec3{0, -10, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := LookAtQuat(tc.eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
			forward := q.Rotate(mgl32.Vec3{0, 0, -1})
			want := tc.eye.Mul(-1).Normalize()
			if !Vec3ApproxEqual(forward, want, 1e-3) {
				t.Fatalf("forward = %v, want %v", forward, want)
			}
		})
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	near, far := float32(0.1), float32(1000)
	p := Perspective(mgl32.DegToRad(75), 1.5, near, far)

	project := func(z float32) float32 {
		clip := p.Mul4x1(mgl32.Vec4{0, 0, -z, 1})
		return clip.Z() / clip.W()
	}
	if d := project(near); math32.Abs(d) > tol {
		t.Fatalf("near plane depth = %v, want 0", d)
	}
	if d := project(far); math32.Abs(d-1) > tol {
		t.Fatalf("far plane depth = %v, want 1", d)
	}
}

func TestRayIntersectTriangle(t *testing.T) {
	a := mgl32.Vec3{-1, -1, 0}
	b := mgl32.Vec3{1, -1, 0}
	c := mgl32.Vec3{0, 1, 0}

	hit := Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}
	dist, ok := hit.IntersectTriangle(a, b, c)
	if !ok || math32.Abs(dist-5) > tol {
		t.Fatalf("hit = (%v, %v), want (5, true)", dist, ok)
	}

	miss := Ray{Origin: mgl32.Vec3{3, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}
	if _, ok := miss.IntersectTriangle(a, b, c); ok {
		t.Fatal("expected miss beside the triangle")
	}

	behind := Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, 1}}
	if _, ok := behind.IntersectTriangle(a, b, c); ok {
		t.Fatal("expected miss behind the ray origin")
	}
}

func TestRayTransformKeepsParameter(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{0, 0, 6}, Direction: mgl32.Vec3{0, 0, -1}}
	m := mgl32.Scale3D(2, 2, 2).Inv()
	local := r.Transform(m)

	if !Vec3ApproxEqual(local.At(4), mgl32.Vec3{0, 0, 1}, tol) {
		t.Fatalf("local.At(4) = %v, want (0, 0, 1)", local.At(4))
	}
	if !Vec3ApproxEqual(r.At(4), local.At(4).Mul(2), tol) {
		t.Fatalf("world and local points disagree: %v vs %v", r.At(4), local.At(4))
	}
}

func TestParseHexColor(t *testing.T) {
	for _, in := range []string{"#202020", "0x202020", "202020"} {
		c, err := ParseHexColor(in)
		if err != nil {
			t.Fatalf("ParseHexColor(%q) error: %v", in, err)
		}
		if c.Hex() != 0x202020 || c.A != 1 {
			t.Fatalf("ParseHexColor(%q) = %+v", in, c)
		}
	}
	if _, err := ParseHexColor("#12"); err == nil {
		t.Fatal("expected error for short color")
	}
	if _, err := ParseHexColor("#zzzzzz"); err == nil {
		t.Fatal("expected error for non-hex digits")
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce(0, 0, 7, 9); got != 7 {
		t.Fatalf("Coalesce = %d, want 7", got)
	}
	if got := Coalesce[float32](); got != 0 {
		t.Fatalf("Coalesce() = %v, want 0", got)
	}
}
