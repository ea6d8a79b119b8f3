package renderer

import "github.com/Carmen-Shannon/oxy-viewcube/common"

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithLabel sets the renderer's identifier. Renderers sharing a backend must use distinct labels.
//
// Parameters:
//   - label: the identifier
//
// Returns:
//   - RendererBuilderOption: a function that applies the label option to a renderer
func WithLabel(label string) RendererBuilderOption {
	return func(r *renderer) {
		r.label = label
	}
}

// WithSize sets the renderer's logical size. Defaults to the surface size.
//
// Parameters:
//   - width: the width in logical pixels
//   - height: the height in logical pixels
//
// Returns:
//   - RendererBuilderOption: a function that applies the size option to a renderer
func WithSize(width, height int) RendererBuilderOption {
	return func(r *renderer) {
		r.width = width
		r.height = height
	}
}

// WithPixelRatio sets the physical-to-logical pixel ratio. Defaults to the surface's ratio.
//
// Parameters:
//   - ratio: the pixel ratio
//
// Returns:
//   - RendererBuilderOption: a function that applies the pixel ratio option to a renderer
func WithPixelRatio(ratio float32) RendererBuilderOption {
	return func(r *renderer) {
		r.pixelRatio = ratio
	}
}

// WithClearColor sets the color the viewport is cleared to.
//
// Parameters:
//   - c: the clear color
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color option to a renderer
func WithClearColor(c common.Color) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = c
	}
}

// WithAlpha makes the renderer draw over existing contents instead of clearing.
//
// Parameters:
//   - alpha: true for a transparent background
//
// Returns:
//   - RendererBuilderOption: a function that applies the alpha option to a renderer
func WithAlpha(alpha bool) RendererBuilderOption {
	return func(r *renderer) {
		r.alpha = alpha
	}
}

// WithAnchor places the viewport on the surface, inset by the given logical margins.
//
// Parameters:
//   - anchor: the corner to pin to, or AnchorFill
//   - marginX: horizontal inset in logical pixels
//   - marginY: vertical inset in logical pixels
//
// Returns:
//   - RendererBuilderOption: a function that applies the anchor option to a renderer
func WithAnchor(anchor Anchor, marginX, marginY int) RendererBuilderOption {
	return func(r *renderer) {
		r.anchor = anchor
		r.marginX = marginX
		r.marginY = marginY
	}
}
