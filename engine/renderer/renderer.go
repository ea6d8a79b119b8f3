package renderer

import (
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-viewcube/common"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/scene"
)

// Anchor places a renderer's viewport on its surface.
type Anchor int

const (
	// AnchorFill covers the whole surface. A fill renderer owns the backend's surface size.
	AnchorFill Anchor = iota

	// AnchorTopLeft pins the viewport to the top-left corner, inset by the margins.
	AnchorTopLeft

	// AnchorTopRight pins the viewport to the top-right corner, inset by the margins.
	AnchorTopRight

	// AnchorBottomLeft pins the viewport to the bottom-left corner, inset by the margins.
	AnchorBottomLeft

	// AnchorBottomRight pins the viewport to the bottom-right corner, inset by the margins.
	AnchorBottomRight
)

// Surface reports the logical size and pixel density of the area a Renderer draws into.
// window.Window satisfies it.
type Surface interface {
	Width() int
	Height() int
	PixelRatio() float32
}

type renderer struct {
	mu *sync.Mutex

	backend Backend
	surface Surface

	label      string
	width      int
	height     int
	pixelRatio float32
	clearColor common.Color
	alpha      bool

	anchor  Anchor
	marginX int
	marginY int
}

// Renderer draws a Scene through a Camera into a rectangle of a shared Backend surface.
// Sizes are in logical pixels; the pixel ratio converts them to physical pixels.
type Renderer interface {
	// Label returns the renderer's identifier.
	//
	// Returns:
	//   - string: the label
	Label() string

	// Size returns the renderer's logical size.
	//
	// Returns:
	//   - width, height: the size in logical pixels
	Size() (width, height int)

	// SetSize sets the renderer's logical size. A fill renderer also reconfigures the backend
	// surface at the matching physical size.
	//
	// Parameters:
	//   - width: the width in logical pixels
	//   - height: the height in logical pixels
	SetSize(width, height int)

	// PixelRatio returns the physical-to-logical pixel ratio.
	//
	// Returns:
	//   - float32: the pixel ratio
	PixelRatio() float32

	// SetPixelRatio sets the physical-to-logical pixel ratio.
	//
	// Parameters:
	//   - ratio: the pixel ratio (values <= 0 are ignored)
	SetPixelRatio(ratio float32)

	// ClearColor returns the color the viewport is cleared to before drawing.
	//
	// Returns:
	//   - common.Color: the clear color
	ClearColor() common.Color

	// SetClearColor sets the color the viewport is cleared to before drawing.
	//
	// Parameters:
	//   - c: the clear color
	SetClearColor(c common.Color)

	// Alpha reports whether the renderer draws over existing contents without clearing.
	//
	// Returns:
	//   - bool: true for a transparent background
	Alpha() bool

	// Anchor returns where the viewport is placed on the surface.
	//
	// Returns:
	//   - Anchor: the anchor
	Anchor() Anchor

	// Viewport returns the current viewport in physical pixels, clamped to the surface.
	//
	// Returns:
	//   - Viewport: the viewport
	Viewport() Viewport

	// ToLocal converts a surface position in logical pixels into coordinates relative to the
	// renderer's top-left corner.
	//
	// Parameters:
	//   - x, y: the surface position in logical pixels
	//
	// Returns:
	//   - localX, localY: the position relative to the renderer
	//   - bool: true if the position lies inside the renderer
	ToLocal(x, y float64) (localX, localY float64, inside bool)

	// Render draws the scene as seen by cam.
	//
	// Parameters:
	//   - s: the scene to draw
	//   - cam: the camera to draw through
	//
	// Returns:
	//   - error: an error from the backend
	Render(s scene.Scene, cam camera.Camera) error

	// Present shows everything drawn on the shared backend since the last Present.
	Present()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer drawing into backend. Unless overridden the renderer fills the
// surface at the surface's logical size and pixel ratio, clearing to black. A fill renderer
// configures the backend immediately.
//
// Parameters:
//   - backend: the GPU backend to draw with (must not be nil)
//   - surface: the surface the backend presents to (must not be nil)
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(backend Backend, surface Surface, options ...RendererBuilderOption) Renderer {
	if backend == nil {
		panic("renderer: NewRenderer requires a non-nil Backend")
	}
	if surface == nil {
		panic("renderer: NewRenderer requires a non-nil Surface")
	}

	r := &renderer{
		mu:         &sync.Mutex{},
		backend:    backend,
		surface:    surface,
		label:      "renderer",
		clearColor: common.Color{A: 1},
		anchor:     AnchorFill,
	}
	for _, opt := range options {
		opt(r)
	}

	r.width = common.Coalesce(r.width, surface.Width())
	r.height = common.Coalesce(r.height, surface.Height())
	r.pixelRatio = common.Coalesce(r.pixelRatio, surface.PixelRatio(), 1)

	if r.anchor == AnchorFill {
		r.configure()
	}
	return r
}

func (r *renderer) Label() string {
	return r.label
}

func (r *renderer) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) SetSize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width = width
	r.height = height
	if r.anchor == AnchorFill {
		r.configure()
	}
}

func (r *renderer) PixelRatio() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pixelRatio
}

func (r *renderer) SetPixelRatio(ratio float32) {
	if ratio <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pixelRatio = ratio
	if r.anchor == AnchorFill {
		r.configure()
	}
}

func (r *renderer) ClearColor() common.Color {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clearColor
}

func (r *renderer) SetClearColor(c common.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearColor = c
}

func (r *renderer) Alpha() bool {
	return r.alpha
}

func (r *renderer) Anchor() Anchor {
	return r.anchor
}

func (r *renderer) Viewport() Viewport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewport()
}

func (r *renderer) ToLocal(x, y float64) (localX, localY float64, inside bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	left, top := r.origin()
	localX, localY = x-float64(left), y-float64(top)
	inside = localX >= 0 && localY >= 0 && localX < float64(r.width) && localY < float64(r.height)
	return localX, localY, inside
}

func (r *renderer) Render(s scene.Scene, cam camera.Camera) error {
	r.mu.Lock()
	pass := Pass{
		Label:    r.label,
		Viewport: r.viewport(),
	}
	if !r.alpha {
		clear := r.clearColor
		pass.Clear = &clear
	}
	r.mu.Unlock()

	if pass.Viewport.Empty() {
		return nil
	}

	list := s.Prepare()
	pass.Frame = newFrameUniform(cam, s)
	pass.Lines = list.Lines
	pass.Triangles = list.Triangles
	return r.backend.Draw(pass)
}

func (r *renderer) Present() {
	r.backend.Present()
}

// origin returns the viewport's top-left corner in logical pixels. Caller must hold the mutex.
func (r *renderer) origin() (left, top int) {
	sw, sh := r.surface.Width(), r.surface.Height()
	switch r.anchor {
	case AnchorTopLeft:
		return r.marginX, r.marginY
	case AnchorTopRight:
		return sw - r.marginX - r.width, r.marginY
	case AnchorBottomLeft:
		return r.marginX, sh - r.marginY - r.height
	case AnchorBottomRight:
		return sw - r.marginX - r.width, sh - r.marginY - r.height
	default:
		return 0, 0
	}
}

// viewport converts the logical placement into clamped physical pixels. Caller must hold the mutex.
func (r *renderer) viewport() Viewport {
	left, top := r.origin()
	scale := func(v int) int { return int(float32(v)*r.pixelRatio + 0.5) }
	vp := Viewport{X: scale(left), Y: scale(top), Width: scale(r.width), Height: scale(r.height)}

	if r.anchor == AnchorFill {
		return vp
	}
	bw, bh := r.backend.Size()
	if bw == 0 || bh == 0 {
		bw, bh = scale(r.surface.Width()), scale(r.surface.Height())
	}
	return vp.Clamp(bw, bh)
}

// configure resizes the backend surface to the renderer's physical size. Caller must hold the mutex.
func (r *renderer) configure() {
	w := int(float32(r.width)*r.pixelRatio + 0.5)
	h := int(float32(r.height)*r.pixelRatio + 0.5)
	if w <= 0 || h <= 0 {
		return
	}
	if err := r.backend.Configure(w, h); err != nil {
		log.Printf("[Renderer] %s: failed to configure surface %dx%d: %v", r.label, w, h, err)
	}
}
