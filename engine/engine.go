package engine

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-viewcube/common"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/gizmo"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/profiler"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/scene"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoSurface is returned by NewEngine when no surface was supplied with WithSurface.
var ErrNoSurface = errors.New("engine: no surface to render into")

// Main camera defaults.
const (
	MainCameraFov  float32 = 75
	MainCameraNear float32 = 0.1
	MainCameraFar  float32 = 1000

	DampingFactor float32 = 0.05

	// BackgroundColor is the main renderer's clear color.
	BackgroundColor uint32 = 0x202020

	mainRendererLabel = "main"
)

// MainCameraPosition is where the main camera starts, looking at the origin.
var MainCameraPosition = mgl32.Vec3{0, 10, 20}

// pointerState tracks an in-progress drag.
type pointerState struct {
	rotating      bool
	panning       bool
	downInOverlay bool
	lastX, lastY  float64
}

// engine implements the Engine interface.
// Owns the viewport's scenes, cameras and renderers and drives them from the window loop.
type engine struct {
	window   window.Window
	backend  renderer.Backend
	registry *renderer.OverlayRegistry

	width       int
	height      int
	background  common.Color
	presentMode renderer.PresentMode
	msaa        renderer.MSAASampleCount

	profiler         *profiler.Profiler
	profilingEnabled bool
	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	scene      scene.Scene
	camera     camera.Camera
	controller camera.OrbitController
	renderer   renderer.Renderer
	gizmo      gizmo.Gizmo

	pointer       pointerState
	subscriptions []window.Subscription

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once
	closeOnce   sync.Once
}

// Engine is the main entry point for the viewport.
// It owns the main scene, the orbiting main camera, the view-cube gizmo and the renderers,
// routes window input to them and runs the frame loop.
type Engine interface {
	// Window returns the surface the engine renders into.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Scene returns the main scene.
	//
	// Returns:
	//   - scene.Scene: the main scene
	Scene() scene.Scene

	// Camera returns the main camera.
	//
	// Returns:
	//   - camera.Camera: the main camera
	Camera() camera.Camera

	// Controller returns the orbit controller driving the main camera.
	//
	// Returns:
	//   - camera.OrbitController: the orbit controller
	Controller() camera.OrbitController

	// Renderer returns the full-surface main renderer.
	//
	// Returns:
	//   - renderer.Renderer: the main renderer
	Renderer() renderer.Renderer

	// Gizmo returns the view-cube gizmo.
	//
	// Returns:
	//   - gizmo.Gizmo: the gizmo
	Gizmo() gizmo.Gizmo

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Tick renders one frame: it advances the orbit controller, mirrors the camera onto the
	// gizmo cube, renders the main view then the gizmo overlay, and presents. Render errors are
	// logged and the frame continues.
	//
	// Returns:
	//   - error: the joined render errors of this frame, if any
	Tick() error

	// HandleResize applies a new logical surface size to the main camera and main renderer.
	// Zero sizes are ignored.
	//
	// Parameters:
	//   - width: the new width in logical pixels
	//   - height: the new height in logical pixels
	HandleResize(width, height int)

	// HandleClick forwards an overlay-local click to the gizmo.
	//
	// Parameters:
	//   - offsetX, offsetY: click position relative to the overlay's top-left, in logical pixels
	//
	// Returns:
	//   - bool: true if a cube face was hit and the main camera snapped
	HandleClick(offsetX, offsetY float64) bool

	// Run locks the OS thread and drives Tick from the window's message loop.
	// Blocks until the window closes or Quit is called.
	Run()

	// Quit stops Run after the current frame and closes the window.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()

	// Close drops every input subscription. GPU resources and the window stay alive.
	//
	// Returns:
	//   - error: always nil; present for io.Closer compatibility
	Close() error
}

var _ Engine = &engine{}

// NewEngine creates the viewport: main scene, main camera with an orbit controller, main renderer,
// view-cube gizmo and input subscriptions. Without a backend option a WebGPU backend is created
// from the surface.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: ErrNoSurface when no surface was given, or a wrapped backend creation error
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		background:  common.ColorFromHex(BackgroundColor),
		presentMode: renderer.PresentModeVSync,
		msaa:        renderer.MSAA4x,
		profiler:    profiler.NewProfiler(),
		quitChannel: make(chan struct{}),
	}
	for _, opt := range options {
		opt(e)
	}
	if e.window == nil {
		return nil, ErrNoSurface
	}

	e.width = common.Coalesce(e.width, e.window.Width())
	e.height = common.Coalesce(e.height, e.window.Height())
	if e.registry == nil {
		e.registry = renderer.NewOverlayRegistry()
	}
	if e.backend == nil {
		b, err := renderer.NewWGPUBackend(e.window.SurfaceDescriptor(),
			renderer.WithMSAA(e.msaa),
			renderer.WithPresentMode(e.presentMode),
		)
		if err != nil {
			return nil, fmt.Errorf("engine: create backend: %w", err)
		}
		e.backend = b
	}

	e.scene = scene.NewMainScene()
	e.camera = camera.NewCamera(
		camera.WithFovDegrees(MainCameraFov),
		camera.WithAspect(aspect(e.width, e.height)),
		camera.WithNear(MainCameraNear),
		camera.WithFar(MainCameraFar),
		camera.WithPosition(MainCameraPosition),
		camera.WithLookAt(mgl32.Vec3{}),
	)
	e.renderer = renderer.NewRenderer(e.backend, e.window,
		renderer.WithLabel(mainRendererLabel),
		renderer.WithSize(e.width, e.height),
		renderer.WithClearColor(e.background),
	)
	e.controller = camera.NewOrbitController(e.camera,
		camera.WithDamping(true),
		camera.WithDampingFactor(DampingFactor),
	)
	e.gizmo = gizmo.NewGizmo(e.registry, e.backend, e.window)

	e.subscribe()
	return e, nil
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Controller() camera.OrbitController {
	return e.controller
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Gizmo() gizmo.Gizmo {
	return e.gizmo
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameDuration(fps)
}

func (e *engine) Tick() error {
	e.controller.Update()
	e.gizmo.Sync(e.camera)

	var errs []error
	if err := e.renderer.Render(e.scene, e.camera); err != nil {
		log.Printf("[Engine] main render failed: %v", err)
		errs = append(errs, err)
	}
	if err := e.gizmo.Render(); err != nil {
		log.Printf("[Engine] gizmo render failed: %v", err)
		errs = append(errs, err)
	}
	e.renderer.Present()

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
	return errors.Join(errs...)
}

func (e *engine) HandleResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	e.camera.SetAspect(aspect(width, height))
	if ratio := e.window.PixelRatio(); ratio > 0 {
		if ratio != e.renderer.PixelRatio() {
			e.renderer.SetPixelRatio(ratio)
		}
		// The overlay anchors in logical pixels and scales by its own ratio.
		if overlay := e.gizmo.Overlay(); ratio != overlay.PixelRatio() {
			overlay.SetPixelRatio(ratio)
		}
	}
	e.renderer.SetSize(width, height)
}

func (e *engine) HandleClick(offsetX, offsetY float64) bool {
	return e.gizmo.HandleClick(offsetX, offsetY, e.camera, e.controller)
}

func (e *engine) Run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	e.window.SetUpdateCallback(func() {
		select {
		case <-e.quitChannel:
			if err := e.window.Close(); err != nil {
				log.Printf("[Engine] failed to close window: %v", err)
			}
			return
		default:
		}

		start := time.Now()
		_ = e.Tick()

		// Frame rate limiting
		if e.renderFrameLimit > 0 {
			if remaining := e.renderFrameLimit - time.Since(start); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	})
	defer e.window.SetUpdateCallback(nil)

	e.window.ProcessMessages()
}

// Quit signals Run to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

func (e *engine) Close() error {
	e.closeOnce.Do(func() {
		for _, s := range e.subscriptions {
			s.Unsubscribe()
		}
		e.subscriptions = nil
	})
	return nil
}

// subscribe wires window input to the resize handler, the orbit controller and the gizmo.
func (e *engine) subscribe() {
	e.subscriptions = append(e.subscriptions,
		e.window.OnResize(e.HandleResize),
		e.window.OnPointerDown(e.onPointerDown),
		e.window.OnPointerMove(e.onPointerMove),
		e.window.OnPointerUp(e.onPointerUp),
		e.window.OnScroll(e.controller.Zoom),
	)
}

func (e *engine) onPointerDown(ev window.PointerEvent) {
	e.pointer.lastX, e.pointer.lastY = ev.X, ev.Y
	switch ev.Button {
	case window.ButtonPrimary:
		_, _, inside := e.gizmo.Overlay().ToLocal(ev.X, ev.Y)
		e.pointer.downInOverlay = inside
		e.pointer.rotating = !inside
	case window.ButtonSecondary, window.ButtonMiddle:
		e.pointer.panning = true
	}
}

func (e *engine) onPointerMove(ev window.PointerEvent) {
	dx := float32(ev.X - e.pointer.lastX)
	dy := float32(ev.Y - e.pointer.lastY)
	e.pointer.lastX, e.pointer.lastY = ev.X, ev.Y

	switch {
	case e.pointer.rotating:
		e.controller.Rotate(dx, dy, e.dragHeight())
	case e.pointer.panning:
		e.controller.Pan(dx, dy, e.dragHeight())
	}
}

func (e *engine) onPointerUp(ev window.PointerEvent) {
	switch ev.Button {
	case window.ButtonPrimary:
		if e.pointer.downInOverlay {
			if lx, ly, inside := e.gizmo.Overlay().ToLocal(ev.X, ev.Y); inside {
				e.HandleClick(lx, ly)
			}
		}
		e.pointer.rotating = false
		e.pointer.downInOverlay = false
	case window.ButtonSecondary, window.ButtonMiddle:
		e.pointer.panning = false
	}
}

// dragHeight returns the main renderer's logical height for drag scaling.
func (e *engine) dragHeight() int {
	_, h := e.renderer.Size()
	return h
}

func aspect(width, height int) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
