package gizmo

// GizmoBuilderOption is a functional option for configuring a Gizmo.
type GizmoBuilderOption func(*gizmo)

// WithOverlayID sets the identifier the overlay is registered under.
//
// Parameters:
//   - id: the overlay identifier
//
// Returns:
//   - GizmoBuilderOption: option function to apply
func WithOverlayID(id string) GizmoBuilderOption {
	return func(g *gizmo) {
		g.overlayID = id
	}
}

// WithCubeScale sets the uniform scale of the view cube.
//
// Parameters:
//   - scale: the scale factor
//
// Returns:
//   - GizmoBuilderOption: option function to apply
func WithCubeScale(scale float32) GizmoBuilderOption {
	return func(g *gizmo) {
		g.cubeScale = scale
	}
}
