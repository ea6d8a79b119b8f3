package renderer

import "github.com/cogentcore/webgpu/wgpu"

// BackendBuilderOption is a functional option applied to the WebGPU backend during NewWGPUBackend.
type BackendBuilderOption func(*wgpuRendererBackendImpl)

// WithMSAA sets the multisample count for every pass. Defaults to MSAA4x.
//
// Parameters:
//   - count: the sample count (MSAAOff or MSAA4x)
//
// Returns:
//   - BackendBuilderOption: a function that applies the MSAA option to the backend
func WithMSAA(count MSAASampleCount) BackendBuilderOption {
	return func(b *wgpuRendererBackendImpl) {
		if count != MSAAOff && count != MSAA4x {
			count = MSAA4x
		}
		b.sampleCount = count
	}
}

// WithPresentMode sets how frames are delivered to the display. Defaults to PresentModeVSync.
//
// Parameters:
//   - mode: the PresentMode to use
//
// Returns:
//   - BackendBuilderOption: a function that applies the present mode option to the backend
func WithPresentMode(mode PresentMode) BackendBuilderOption {
	return func(b *wgpuRendererBackendImpl) {
		switch mode {
		case PresentModeVSync:
			b.presentMode = wgpu.PresentModeFifo
		default:
			b.presentMode = wgpu.PresentModeImmediate
		}
	}
}

// WithForceSoftwareRenderer requests the fallback (software) adapter.
//
// Parameters:
//   - force: true to force the fallback adapter
//
// Returns:
//   - BackendBuilderOption: a function that applies the adapter option to the backend
func WithForceSoftwareRenderer(force bool) BackendBuilderOption {
	return func(b *wgpuRendererBackendImpl) {
		b.forceFallbackAdapter = force
	}
}
