package engine

import (
	"github.com/Carmen-Shannon/oxy-viewcube/common"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithSurface sets the window the engine renders into and takes input from. Required.
//
// Parameters:
//   - w: the window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSurface(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithWidth sets the main renderer's initial logical width. Defaults to the surface width.
//
// Parameters:
//   - width: width in logical pixels
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWidth(width int) EngineBuilderOption {
	return func(e *engine) {
		e.width = width
	}
}

// WithHeight sets the main renderer's initial logical height. Defaults to the surface height.
//
// Parameters:
//   - height: height in logical pixels
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithHeight(height int) EngineBuilderOption {
	return func(e *engine) {
		e.height = height
	}
}

// WithBackgroundColor sets the main view's clear color. Defaults to 0x202020.
//
// Parameters:
//   - c: the clear color
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithBackgroundColor(c common.Color) EngineBuilderOption {
	return func(e *engine) {
		e.background = c
	}
}

// WithBackend supplies the GPU backend instead of creating a WebGPU one from the surface.
//
// Parameters:
//   - b: the backend
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithBackend(b renderer.Backend) EngineBuilderOption {
	return func(e *engine) {
		e.backend = b
	}
}

// WithPresentMode sets the present mode of the default WebGPU backend.
//
// Parameters:
//   - mode: the present mode
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithPresentMode(mode renderer.PresentMode) EngineBuilderOption {
	return func(e *engine) {
		e.presentMode = mode
	}
}

// WithMSAA sets the sample count of the default WebGPU backend.
//
// Parameters:
//   - count: the MSAA sample count
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMSAA(count renderer.MSAASampleCount) EngineBuilderOption {
	return func(e *engine) {
		e.msaa = count
	}
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.renderFrameLimit = frameDuration(fps)
	}
}

// WithOverlayRegistry shares an overlay registry between engines so a surface never gets two
// gizmo overlays. Defaults to a registry private to the engine.
//
// Parameters:
//   - r: the overlay registry
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithOverlayRegistry(r *renderer.OverlayRegistry) EngineBuilderOption {
	return func(e *engine) {
		e.registry = r
	}
}
