package material

import "github.com/Carmen-Shannon/oxy-viewcube/common"

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithColor is an option builder that sets the base color of the material.
//
// Parameters:
//   - color: the base color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the color option to a material
func WithColor(color common.Color) MaterialBuilderOption {
	return func(m *material) {
		m.color = color
	}
}

// WithLit is an option builder that makes the material respond to scene lights.
//
// Parameters:
//   - lit: true to enable lighting
//
// Returns:
//   - MaterialBuilderOption: a function that applies the lit option to a material
func WithLit(lit bool) MaterialBuilderOption {
	return func(m *material) {
		m.lit = lit
	}
}

// WithVertexColors is an option builder that multiplies the base color by per-vertex colors.
//
// Parameters:
//   - enabled: true to use vertex colors
//
// Returns:
//   - MaterialBuilderOption: a function that applies the vertex colors option to a material
func WithVertexColors(enabled bool) MaterialBuilderOption {
	return func(m *material) {
		m.vertexColors = enabled
	}
}
