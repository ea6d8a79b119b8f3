package model

import (
	"github.com/Carmen-Shannon/oxy-viewcube/common"
	"github.com/go-gl/mathgl/mgl32"
)

// BoxFace identifies a face of a box and doubles as its material slot.
type BoxFace int

const (
	BoxFacePosX BoxFace = iota
	BoxFaceNegX
	BoxFacePosY
	BoxFaceNegY
	BoxFacePosZ
	BoxFaceNegZ
)

// boxFaceAxes lists, per face, the outward normal and two in-plane axes with u x v = normal.
var boxFaceAxes = [6]struct{ n, u, v mgl32.Vec3 }{
	BoxFacePosX: {n: mgl32.Vec3{1, 0, 0}, u: mgl32.Vec3{0, 0, -1}, v: mgl32.Vec3{0, 1, 0}},
	BoxFaceNegX: {n: mgl32.Vec3{-1, 0, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{0, 1, 0}},
	BoxFacePosY: {n: mgl32.Vec3{0, 1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, -1}},
	BoxFaceNegY: {n: mgl32.Vec3{0, -1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, 1}},
	BoxFacePosZ: {n: mgl32.Vec3{0, 0, 1}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	BoxFaceNegZ: {n: mgl32.Vec3{0, 0, -1}, u: mgl32.Vec3{-1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
}

// NewBox builds an axis-aligned box centered on the origin. Each face is two counter-clockwise
// triangles in its own group, in the order +X, -X, +Y, -Y, +Z, -Z, and the group's material
// index equals its BoxFace.
//
// Parameters:
//   - width: extent along X
//   - height: extent along Y
//   - depth: extent along Z
//
// Returns:
//   - Model: the box model
func NewBox(width, height, depth float32) Model {
	half := mgl32.Vec3{width / 2, height / 2, depth / 2}
	scale := func(v mgl32.Vec3) mgl32.Vec3 {
		return mgl32.Vec3{v[0] * half[0], v[1] * half[1], v[2] * half[2]}
	}

	vertices := make([]Vertex, 0, 36)
	groups := make([]Group, 0, 6)
	white := common.Color{R: 1, G: 1, B: 1, A: 1}.Array()

	for face, axes := range boxFaceAxes {
		center := scale(axes.n)
		u, v := scale(axes.u), scale(axes.v)
		corners := [4]mgl32.Vec3{
			center.Sub(u).Sub(v),
			center.Add(u).Sub(v),
			center.Add(u).Add(v),
			center.Sub(u).Add(v),
		}

		start := len(vertices)
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			vertices = append(vertices, Vertex{Position: corners[i], Normal: axes.n, Color: white})
		}
		groups = append(groups, Group{Start: start, Count: 6, MaterialIndex: face})
	}

	return NewModel(
		WithName("box"),
		WithTopology(TopologyTriangles),
		WithVertices(vertices),
		WithGroups(groups),
	)
}

// NewGrid builds a square grid of lines on the XZ plane centered on the origin. The two lines
// through the center use centerColor and every other line uses gridColor.
//
// Parameters:
//   - size: side length of the grid
//   - divisions: number of cells along each side
//   - centerColor: color of the center lines
//   - gridColor: color of the remaining lines
//
// Returns:
//   - Model: the line model with 2*(divisions+1) segments
func NewGrid(size float32, divisions int, centerColor, gridColor common.Color) Model {
	if divisions < 1 {
		divisions = 1
	}
	center := divisions / 2
	step := size / float32(divisions)
	half := size / 2

	vertices := make([]Vertex, 0, 4*(divisions+1))
	for i := 0; i <= divisions; i++ {
		k := -half + float32(i)*step
		color := gridColor.Array()
		if i == center {
			color = centerColor.Array()
		}
		vertices = append(vertices,
			Vertex{Position: [3]float32{-half, 0, k}, Color: color},
			Vertex{Position: [3]float32{half, 0, k}, Color: color},
			Vertex{Position: [3]float32{k, 0, -half}, Color: color},
			Vertex{Position: [3]float32{k, 0, half}, Color: color},
		)
	}

	return NewModel(
		WithName("grid"),
		WithTopology(TopologyLines),
		WithVertices(vertices),
	)
}
