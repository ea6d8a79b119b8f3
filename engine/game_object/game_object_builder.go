package game_object

import (
	"github.com/Carmen-Shannon/oxy-viewcube/engine/model"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the object's identifier.
//
// Parameters:
//   - id: the identifier
//
// Returns:
//   - GameObjectBuilderOption: a function that sets the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.id = id
	}
}

// WithName sets the object's name.
//
// Parameters:
//   - name: the name
//
// Returns:
//   - GameObjectBuilderOption: a function that sets the name
func WithName(name string) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.name = name
	}
}

// WithEnabled sets whether the object is drawn. Objects are enabled by default.
//
// Parameters:
//   - enabled: true to draw the object
//
// Returns:
//   - GameObjectBuilderOption: a function that sets the enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.enabled.Store(enabled)
	}
}

// WithModel sets the object's geometry.
//
// Parameters:
//   - m: the model
//
// Returns:
//   - GameObjectBuilderOption: a function that sets the model
func WithModel(m model.Model) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.mdl = m
	}
}

// WithMaterials sets the material slots, indexed by model group MaterialIndex.
//
// Parameters:
//   - materials: the material slots
//
// Returns:
//   - GameObjectBuilderOption: a function that sets the materials
func WithMaterials(materials ...material.Material) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.materials = materials
	}
}

// WithPosition sets the initial world position.
//
// Parameters:
//   - p: the position
//
// Returns:
//   - GameObjectBuilderOption: a function that sets the position
func WithPosition(p mgl32.Vec3) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.position = p
	}
}

// WithQuaternion sets the initial orientation.
//
// Parameters:
//   - q: the orientation
//
// Returns:
//   - GameObjectBuilderOption: a function that sets the orientation
func WithQuaternion(q mgl32.Quat) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.quaternion = q.Normalize()
	}
}

// WithScale sets the initial per-axis scale.
//
// Parameters:
//   - s: the scale
//
// Returns:
//   - GameObjectBuilderOption: a function that sets the scale
func WithScale(s mgl32.Vec3) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.scale = s
	}
}

// WithUniformScale sets the same scale on every axis.
//
// Parameters:
//   - s: the scale factor
//
// Returns:
//   - GameObjectBuilderOption: a function that sets the scale
func WithUniformScale(s float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.scale = mgl32.Vec3{s, s, s}
	}
}
