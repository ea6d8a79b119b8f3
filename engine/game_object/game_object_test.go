package game_object

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-viewcube/common"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/model"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/renderer/material"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func newCube() GameObject {
	return NewGameObject(
		WithModel(model.NewBox(1, 1, 1)),
		WithMaterials(
			material.NewBasicMaterial(0xff0000),
			material.NewBasicMaterial(0x00ff00),
			material.NewBasicMaterial(0x0000ff),
			material.NewBasicMaterial(0xffff00),
			material.NewBasicMaterial(0x00ffff),
			material.NewBasicMaterial(0xff00ff),
		),
		WithUniformScale(1.5),
	)
}

func TestRaycastReportsFaceMaterial(t *testing.T) {
	cube := newCube()
	cases := []struct {
		origin mgl32.Vec3
		face   int
	}{
		{mgl32.Vec3{5, 0.1, 0.2}, 0},
		{mgl32.Vec3{-5, 0.1, 0.2}, 1},
		{mgl32.Vec3{0.1, 5, 0.2}, 2},
		{mgl32.Vec3{0.1, -5, 0.2}, 3},
		{mgl32.Vec3{0.1, 0.2, 5}, 4},
		{mgl32.Vec3{0.1, 0.2, -5}, 5},
	}
	for _, tc := range cases {
		dir := mgl32.Vec3{-tc.origin.X(), 0, 0}
		switch {
		case math32.Abs(tc.origin.Y()) == 5:
			dir = mgl32.Vec3{0, -tc.origin.Y(), 0}
		case math32.Abs(tc.origin.Z()) == 5:
			dir = mgl32.Vec3{0, 0, -tc.origin.Z()}
		}
		hit, ok := cube.Raycast(common.Ray{Origin: tc.origin, Direction: dir.Normalize()})
		if !ok {
			t.Fatalf("ray from %v missed", tc.origin)
		}
		if hit.MaterialIndex != tc.face {
			t.Fatalf("ray from %v hit face %d, want %d", tc.origin, hit.MaterialIndex, tc.face)
		}
		if math32.Abs(hit.Distance-(5-0.75)) > 1e-4 {
			t.Fatalf("ray from %v distance = %v, want 4.25", tc.origin, hit.Distance)
		}
	}
}

func TestRaycastFollowsRotation(t *testing.T) {
	cube := newCube()
	// Turning the cube a quarter turn about Y brings its -X face to the front.
	cube.SetQuaternion(mgl32.QuatRotate(math32.Pi/2, mgl32.Vec3{0, 1, 0}))

	hit, ok := cube.Raycast(common.Ray{Origin: mgl32.Vec3{0.1, 0.3, 5}, Direction: mgl32.Vec3{0, 0, -1}})
	if !ok || hit.MaterialIndex != 1 {
		t.Fatalf("hit = (%+v, %v), want face 1", hit, ok)
	}
	if !common.Vec3ApproxEqual(hit.Point, mgl32.Vec3{0.1, 0.3, 0.75}, 1e-4) {
		t.Fatalf("hit point = %v", hit.Point)
	}
}

func TestRaycastMiss(t *testing.T) {
	cube := newCube()
	if _, ok := cube.Raycast(common.Ray{Origin: mgl32.Vec3{2, 2, 5}, Direction: mgl32.Vec3{0, 0, -1}}); ok {
		t.Fatal("expected miss")
	}
	grid := NewGameObject(WithModel(model.NewGrid(10, 10, common.Color{}, common.Color{})))
	if _, ok := grid.Raycast(common.Ray{Origin: mgl32.Vec3{0, 5, 0}, Direction: mgl32.Vec3{0, -1, 0}}); ok {
		t.Fatal("line models must not be hit")
	}
}

func TestWorldVerticesAppliesTransformAndMaterials(t *testing.T) {
	cube := newCube()
	cube.SetPosition(mgl32.Vec3{0, 2, 0})
	verts := cube.WorldVertices()

	if len(verts) != 36 {
		t.Fatalf("len = %d, want 36", len(verts))
	}
	for face, g := range cube.Model().Groups() {
		want := cube.Material(face).Color().Array()
		for _, v := range verts[g.Start : g.Start+g.Count] {
			if v.Color != want {
				t.Fatalf("face %d color = %v, want %v", face, v.Color, want)
			}
			if v.Normal != [3]float32{} {
				t.Fatalf("unlit face %d kept a normal", face)
			}
		}
	}
	top := verts[cube.Model().Groups()[2].Start]
	if math32.Abs(top.Position[1]-2.75) > 1e-5 {
		t.Fatalf("top face y = %v, want 2.75", top.Position[1])
	}
}

func TestMaterialSlotFallback(t *testing.T) {
	bare := NewGameObject()
	if bare.Material(3) == nil {
		t.Fatal("expected default material")
	}
	cube := newCube()
	if cube.Material(99) != cube.Materials()[5] {
		t.Fatal("expected last material for out-of-range slot")
	}
}
