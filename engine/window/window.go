package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
// Sizes are logical pixels; multiply by PixelRatio for framebuffer pixels.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// OnResize subscribes to size changes. The handler receives the new logical size.
	//
	// Parameters:
	//   - handler: function receiving new width and height in logical pixels
	//
	// Returns:
	//   - Subscription: handle that removes the handler
	OnResize(handler func(width, height int)) Subscription

	// OnPointerDown subscribes to mouse button presses.
	//
	// Parameters:
	//   - handler: function receiving the pointer event
	//
	// Returns:
	//   - Subscription: handle that removes the handler
	OnPointerDown(handler func(PointerEvent)) Subscription

	// OnPointerUp subscribes to mouse button releases.
	//
	// Parameters:
	//   - handler: function receiving the pointer event
	//
	// Returns:
	//   - Subscription: handle that removes the handler
	OnPointerUp(handler func(PointerEvent)) Subscription

	// OnPointerMove subscribes to cursor movement.
	//
	// Parameters:
	//   - handler: function receiving the pointer event
	//
	// Returns:
	//   - Subscription: handle that removes the handler
	OnPointerMove(handler func(PointerEvent)) Subscription

	// OnScroll subscribes to vertical wheel movement.
	//
	// Parameters:
	//   - handler: function receiving scroll delta (positive = up/zoom in, negative = down/zoom out)
	//
	// Returns:
	//   - Subscription: handle that removes the handler
	OnScroll(handler func(delta float32)) Subscription

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current client area width in logical pixels.
	//
	// Returns:
	//   - int: width in logical pixels
	Width() int

	// Height returns the current client area height in logical pixels.
	//
	// Returns:
	//   - int: height in logical pixels
	Height() int

	// PixelRatio returns framebuffer pixels per logical pixel (2 on most high-DPI displays).
	//
	// Returns:
	//   - float32: the pixel ratio
	PixelRatio() float32
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event subscribers.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// maxWidth is the maximum allowed window width during resize.
	maxWidth int

	// maxHeight is the maximum allowed window height during resize.
	maxHeight int

	// minWidth is the minimum allowed window width during resize.
	minWidth int

	// minHeight is the minimum allowed window height during resize.
	minHeight int

	// width is the current client area width in logical pixels.
	width int

	// height is the current client area height in logical pixels.
	height int

	// pixelRatio is framebuffer width divided by logical width.
	pixelRatio float32

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	events events
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured, visible window
//   - error: an error if the platform window could not be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:      "Viewcube",
		maxWidth:   3840,
		maxHeight:  2160,
		minWidth:   320,
		minHeight:  240,
		width:      1280,
		height:     720,
		pixelRatio: 1,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("failed to create platform window: %w", err)
	}
	return w, nil
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) OnResize(handler func(width, height int)) Subscription {
	return w.events.resize.add(handler)
}

func (w *engineWindow) OnPointerDown(handler func(PointerEvent)) Subscription {
	return w.events.pointerDown.add(handler)
}

func (w *engineWindow) OnPointerUp(handler func(PointerEvent)) Subscription {
	return w.events.pointerUp.add(handler)
}

func (w *engineWindow) OnPointerMove(handler func(PointerEvent)) Subscription {
	return w.events.pointerMove.add(handler)
}

func (w *engineWindow) OnScroll(handler func(delta float32)) Subscription {
	return w.events.scroll.add(handler)
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

func (w *engineWindow) PixelRatio() float32 {
	return w.pixelRatio
}
