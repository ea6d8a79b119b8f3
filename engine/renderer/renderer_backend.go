package renderer

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-viewcube/common"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/model"
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// ErrNotConfigured is returned by Backend.Draw before the first successful Configure.
var ErrNotConfigured = errors.New("renderer: backend surface not configured")

// Viewport is a rectangle in physical pixels with the origin at the top-left of the surface.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the viewport covers no pixels.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Clamp restricts v to a surface of the given physical size.
func (v Viewport) Clamp(surfaceWidth, surfaceHeight int) Viewport {
	x0, y0 := max(v.X, 0), max(v.Y, 0)
	x1, y1 := min(v.X+v.Width, surfaceWidth), min(v.Y+v.Height, surfaceHeight)
	if x1 <= x0 || y1 <= y0 {
		return Viewport{}
	}
	return Viewport{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Pass is one draw of a prepared scene into a viewport of the shared surface.
type Pass struct {
	// Label identifies the renderer issuing the pass; backends key per-renderer GPU buffers on it.
	Label string

	// Viewport is the target rectangle in physical pixels.
	Viewport Viewport

	// Clear, when non-nil, clears the color target before drawing. A nil Clear keeps the
	// existing contents, which is how transparent overlays composite over the main view.
	Clear *common.Color

	// Frame carries camera, lighting and fog for the pass.
	Frame GPUFrameUniform

	// Lines and Triangles are world-space vertices.
	Lines     []model.Vertex
	Triangles []model.Vertex
}

// Backend is the GPU side of one drawing surface. Several Renderers may share a Backend;
// each Draw is submitted immediately and Present shows everything drawn since the last Present.
type Backend interface {
	// Configure (re)creates the swapchain and render targets at the given physical size.
	// Zero sizes are ignored.
	//
	// Parameters:
	//   - width: surface width in physical pixels
	//   - height: surface height in physical pixels
	//
	// Returns:
	//   - error: an error if GPU resources could not be created
	Configure(width, height int) error

	// Size returns the configured physical surface size.
	//
	// Returns:
	//   - width, height: the surface size in physical pixels
	Size() (width, height int)

	// Draw renders one pass. The first Draw after a Present acquires a new surface frame.
	//
	// Parameters:
	//   - pass: the pass to render
	//
	// Returns:
	//   - error: an error if the frame could not be acquired or encoded
	Draw(pass Pass) error

	// Present shows the current frame. It does nothing if no pass was drawn.
	Present()

	// Release frees every GPU resource held by the backend.
	Release()
}
