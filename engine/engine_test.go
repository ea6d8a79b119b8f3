package engine

import (
	"errors"
	"slices"
	"testing"

	"github.com/Carmen-Shannon/oxy-viewcube/common"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/gizmo"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/renderer/renderertest"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/window"
	"github.com/chewxy/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// fakeWindow is an in-memory window.Window whose events are fired by the test.
type fakeWindow struct {
	width, height int
	ratio         float32
	running       bool
	closes        int
	maxFrames     int

	onUpdate    func()
	resize      []*func(int, int)
	pointerDown []*func(window.PointerEvent)
	pointerUp   []*func(window.PointerEvent)
	pointerMove []*func(window.PointerEvent)
	scroll      []*func(float32)
}

var _ window.Window = &fakeWindow{}

func newFakeWindow(w, h int) *fakeWindow {
	return &fakeWindow{width: w, height: h, ratio: 1, running: true, maxFrames: 1000}
}

func subscribe[T any](list *[]*T, handler T) window.Subscription {
	p := &handler
	*list = append(*list, p)
	return window.NewSubscription(func() {
		*list = slices.DeleteFunc(*list, func(v *T) bool { return v == p })
	})
}

func (f *fakeWindow) SetUpdateCallback(cb func()) { f.onUpdate = cb }
func (f *fakeWindow) OnResize(h func(int, int)) window.Subscription {
	return subscribe(&f.resize, h)
}
func (f *fakeWindow) OnPointerDown(h func(window.PointerEvent)) window.Subscription {
	return subscribe(&f.pointerDown, h)
}
func (f *fakeWindow) OnPointerUp(h func(window.PointerEvent)) window.Subscription {
	return subscribe(&f.pointerUp, h)
}
func (f *fakeWindow) OnPointerMove(h func(window.PointerEvent)) window.Subscription {
	return subscribe(&f.pointerMove, h)
}
func (f *fakeWindow) OnScroll(h func(float32)) window.Subscription {
	return subscribe(&f.scroll, h)
}
func (f *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (f *fakeWindow) IsRunning() bool                           { return f.running }
func (f *fakeWindow) Close() error {
	f.closes++
	f.running = false
	return nil
}
func (f *fakeWindow) ProcessMessages() {
	for i := 0; f.running && i < f.maxFrames; i++ {
		if f.onUpdate != nil {
			f.onUpdate()
		}
	}
}
func (f *fakeWindow) Width() int          { return f.width }
func (f *fakeWindow) Height() int         { return f.height }
func (f *fakeWindow) PixelRatio() float32 { return f.ratio }

func (f *fakeWindow) fireResize(w, h int) {
	f.width, f.height = w, h
	for _, fn := range f.resize {
		(*fn)(w, h)
	}
}

func (f *fakeWindow) click(x, y float64) {
	ev := window.PointerEvent{X: x, Y: y, Button: window.ButtonPrimary}
	for _, fn := range f.pointerDown {
		(*fn)(ev)
	}
	for _, fn := range f.pointerUp {
		(*fn)(ev)
	}
}

func (f *fakeWindow) drag(x0, y0, x1, y1 float64, button window.PointerButton) {
	for _, fn := range f.pointerDown {
		(*fn)(window.PointerEvent{X: x0, Y: y0, Button: button})
	}
	for _, fn := range f.pointerMove {
		(*fn)(window.PointerEvent{X: x1, Y: y1})
	}
	for _, fn := range f.pointerUp {
		(*fn)(window.PointerEvent{X: x1, Y: y1, Button: button})
	}
}

func (f *fakeWindow) fireScroll(delta float32) {
	for _, fn := range f.scroll {
		(*fn)(delta)
	}
}

func (f *fakeWindow) handlerCount() int {
	return len(f.resize) + len(f.pointerDown) + len(f.pointerUp) + len(f.pointerMove) + len(f.scroll)
}

func newTestEngine(t *testing.T, options ...EngineBuilderOption) (*engine, *fakeWindow, *renderertest.Backend) {
	t.Helper()
	win := newFakeWindow(800, 600)
	backend := renderertest.NewBackend(0, 0)
	opts := append([]EngineBuilderOption{WithSurface(win), WithBackend(backend)}, options...)
	e, err := NewEngine(opts...)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e.(*engine), win, backend
}

func TestNewEngineWithoutSurface(t *testing.T) {
	backend := renderertest.NewBackend(0, 0)
	e, err := NewEngine(WithBackend(backend))
	if !errors.Is(err, ErrNoSurface) || e != nil {
		t.Fatalf("NewEngine() = (%v, %v), want (nil, ErrNoSurface)", e, err)
	}
	if len(backend.Configures) != 0 {
		t.Fatal("nothing may touch the backend before the surface check")
	}
}

func TestNewEngineDefaults(t *testing.T) {
	e, _, backend := newTestEngine(t)

	cam := e.Camera()
	if math32.Abs(cam.Fov()-mgl32.DegToRad(75)) > 1e-6 || cam.Near() != 0.1 || cam.Far() != 1000 {
		t.Fatalf("camera fov/near/far = %v/%v/%v", cam.Fov(), cam.Near(), cam.Far())
	}
	if math32.Abs(cam.Aspect()-800.0/600.0) > 1e-6 {
		t.Fatalf("Aspect() = %v, want 4/3", cam.Aspect())
	}
	if !common.Vec3ApproxEqual(cam.Position(), MainCameraPosition, 1e-4) {
		t.Fatalf("Position() = %v, want %v", cam.Position(), MainCameraPosition)
	}
	if e.Renderer().ClearColor().Hex() != 0x202020 {
		t.Fatalf("ClearColor() = %x", e.Renderer().ClearColor().Hex())
	}
	if !e.Controller().DampingEnabled() || e.Controller().DampingFactor() != 0.05 {
		t.Fatal("orbit damping must be on with factor 0.05")
	}
	if backend.Configures[0] != [2]int{800, 600} {
		t.Fatalf("Configures = %v", backend.Configures)
	}
}

func TestEnginesShareOverlay(t *testing.T) {
	reg := renderer.NewOverlayRegistry()
	a, _, _ := newTestEngine(t, WithOverlayRegistry(reg))
	b, _, _ := newTestEngine(t, WithOverlayRegistry(reg))

	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}
	if a.Gizmo().Overlay() != b.Gizmo().Overlay() {
		t.Fatal("engines must share the single overlay")
	}
}

func TestHandleResize(t *testing.T) {
	e, win, backend := newTestEngine(t)

	win.fireResize(1024, 512)
	if e.Camera().Aspect() != 2 {
		t.Fatalf("Aspect() = %v, want 2", e.Camera().Aspect())
	}
	if w, h := e.Renderer().Size(); w != 1024 || h != 512 {
		t.Fatalf("Size() = %dx%d, want 1024x512", w, h)
	}
	if got := backend.Configures[len(backend.Configures)-1]; got != [2]int{1024, 512} {
		t.Fatalf("last configure = %v", got)
	}

	e.HandleResize(0, 0)
	if e.Camera().Aspect() != 2 {
		t.Fatal("zero size must be ignored")
	}

	win.ratio = 2
	e.HandleResize(1024, 512)
	if got := backend.Configures[len(backend.Configures)-1]; got != [2]int{2048, 1024} {
		t.Fatalf("configure after DPI change = %v, want [2048 1024]", got)
	}
}

func TestHandleResizeKeepsOverlayAlignedAfterDPIChange(t *testing.T) {
	e, win, backend := newTestEngine(t)

	win.ratio = 2
	e.HandleResize(800, 600)
	if got := e.Gizmo().Overlay().PixelRatio(); got != 2 {
		t.Fatalf("overlay PixelRatio() = %v, want 2", got)
	}

	backend.Reset()
	if err := e.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	var overlay *renderer.Pass
	for i := range backend.Passes {
		if backend.Passes[i].Label == gizmo.OverlayID {
			overlay = &backend.Passes[i]
		}
	}
	if overlay == nil {
		t.Fatalf("no overlay pass in %v", backend.Labels())
	}
	want := renderer.Viewport{X: 1380, Y: 20, Width: 200, Height: 200}
	if overlay.Viewport != want {
		t.Fatalf("overlay viewport = %+v, want %+v", overlay.Viewport, want)
	}

	// Clicks are still hit-tested in logical pixels, at the same place the cube is drawn.
	win.click(740, 60)
	if e.Camera().Position() != gizmo.Directions[4] {
		t.Fatalf("Position() = %v, want %v", e.Camera().Position(), gizmo.Directions[4])
	}
}

func TestTickOrder(t *testing.T) {
	e, _, backend := newTestEngine(t)

	if err := e.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	labels := backend.Labels()
	if len(labels) != 2 || labels[0] != "main" || labels[1] != gizmo.OverlayID {
		t.Fatalf("passes = %v, want [main %s]", labels, gizmo.OverlayID)
	}
	if backend.Presents != 1 {
		t.Fatalf("Presents = %d, want 1", backend.Presents)
	}
	want := e.Camera().Quaternion().Inverse()
	if !common.QuatApproxEqual(e.Gizmo().Cube().Quaternion(), want, 1e-6) {
		t.Fatal("cube must mirror the camera at draw time")
	}
}

func TestClickOnOverlaySnapsCamera(t *testing.T) {
	e, win, _ := newTestEngine(t)
	e.Tick()

	// Overlay spans x 690..790, y 10..110 on an 800x600 surface.
	win.click(740, 60)

	if e.Camera().Position() != gizmo.Directions[4] {
		t.Fatalf("Position() = %v, want %v", e.Camera().Position(), gizmo.Directions[4])
	}
}

func TestClickOutsideOverlayDoesNothing(t *testing.T) {
	e, win, _ := newTestEngine(t)
	before := e.Camera().Position()

	win.click(400, 300)
	if e.Camera().Position() != before {
		t.Fatal("a click outside the overlay must not snap the camera")
	}
}

func TestDragRotatesOutsideOverlayOnly(t *testing.T) {
	e, win, _ := newTestEngine(t)
	start := e.Camera().Position()

	win.drag(700, 50, 400, 300, window.ButtonPrimary)
	e.Tick()
	if !common.Vec3ApproxEqual(e.Camera().Position(), start, 1e-4) {
		t.Fatal("a drag that starts on the overlay must not orbit")
	}

	win.drag(100, 300, 200, 300, window.ButtonPrimary)
	e.Tick()
	if common.Vec3ApproxEqual(e.Camera().Position(), start, 1e-4) {
		t.Fatal("a drag on the main view must orbit")
	}
}

func TestScrollZooms(t *testing.T) {
	e, win, _ := newTestEngine(t)
	before := e.Camera().Position().Len()

	win.fireScroll(1)
	e.Tick()
	if after := e.Camera().Position().Len(); after >= before {
		t.Fatalf("distance %v -> %v, want closer", before, after)
	}
}

func TestCloseUnsubscribes(t *testing.T) {
	e, win, _ := newTestEngine(t)
	if win.handlerCount() != 5 {
		t.Fatalf("handlerCount() = %d, want 5", win.handlerCount())
	}

	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	e.Close()
	if win.handlerCount() != 0 {
		t.Fatalf("handlerCount() = %d after Close, want 0", win.handlerCount())
	}

	win.fireResize(1024, 512)
	if w, _ := e.Renderer().Size(); w != 800 {
		t.Fatal("resize after Close must not reach the renderer")
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	e, win, backend := newTestEngine(t)
	win.maxFrames = 3

	e.Run()
	if backend.Presents != 3 {
		t.Fatalf("Presents = %d, want 3", backend.Presents)
	}

	win.running, win.maxFrames = true, 10
	e.Quit()
	e.Quit()
	e.Run()
	if win.closes != 1 || backend.Presents != 3 {
		t.Fatalf("closes = %d, Presents = %d; want 1 and 3", win.closes, backend.Presents)
	}
}
