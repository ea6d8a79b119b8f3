package material

import "github.com/Carmen-Shannon/oxy-viewcube/common"

// material is the implementation of the Material interface.
type material struct {
	name         string
	color        common.Color
	lit          bool
	vertexColors bool
}

// Material describes how a group of vertices is colored.
//
// An unlit material (the default) outputs its color unchanged, so the scene's lights have no
// effect on it. A lit material is shaded by the scene's ambient and directional lights. With
// vertex colors enabled the material color is multiplied by the per-vertex color.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Color retrieves the base color of the material.
	//
	// Returns:
	//   - common.Color: the base color
	Color() common.Color

	// Lit reports whether the material responds to scene lights.
	//
	// Returns:
	//   - bool: true if lighting applies
	Lit() bool

	// VertexColors reports whether per-vertex colors modulate the base color.
	//
	// Returns:
	//   - bool: true if vertex colors are used
	VertexColors() bool

	// Shade resolves the color emitted for a vertex carrying vertexColor.
	//
	// Parameters:
	//   - vertexColor: the vertex's own color
	//
	// Returns:
	//   - [4]float32: the RGBA color to upload
	Shade(vertexColor [4]float32) [4]float32
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
// The default is an unlit opaque white material.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		color: common.Color{R: 1, G: 1, B: 1, A: 1},
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// NewBasicMaterial creates an unlit material of a single hex color.
func NewBasicMaterial(hex uint32) Material {
	return NewMaterial(WithColor(common.ColorFromHex(hex)))
}

// NewLineMaterial creates an unlit material that takes its color from the vertices.
func NewLineMaterial() Material {
	return NewMaterial(WithName("line"), WithVertexColors(true))
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Color() common.Color {
	return m.color
}

func (m *material) Lit() bool {
	return m.lit
}

func (m *material) VertexColors() bool {
	return m.vertexColors
}

func (m *material) Shade(vertexColor [4]float32) [4]float32 {
	base := m.color.Array()
	if !m.vertexColors {
		return base
	}
	return [4]float32{
		base[0] * vertexColor[0],
		base[1] * vertexColor[1],
		base[2] * vertexColor[2],
		base[3] * vertexColor[3],
	}
}
